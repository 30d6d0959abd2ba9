package cmd

import (
	"context"
	"net/url"
	"os"

	"github.com/harwood/mediamap/config"
	"github.com/harwood/mediamap/pkg/catalog"
	mhttp "github.com/harwood/mediamap/pkg/http"
	"github.com/harwood/mediamap/pkg/logger"
	"github.com/harwood/mediamap/pkg/manager"
	"github.com/harwood/mediamap/pkg/scanner"
	"github.com/harwood/mediamap/pkg/storage/sqlite"
	"github.com/harwood/mediamap/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the reconciliation server",
	Long:  `start the reconciliation server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, err := buildManager(context.TODO(), cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		server := server.New(log, m)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

// buildManager wires the catalog client, storage, and configured instances
func buildManager(ctx context.Context, cfg config.Config) (manager.MediaManager, error) {
	catalogURL := url.URL{
		Scheme: cfg.Catalog.Scheme,
		Host:   cfg.Catalog.Host,
	}

	catalogClient, err := catalog.New(catalogURL.String(), cfg.Catalog.APIKey,
		catalog.WithHTTPClient(mhttp.NewRateLimitedHTTPClient(
			mhttp.WithMaxRetries(cfg.Catalog.MaxRetries),
			mhttp.WithBaseBackoff(cfg.Catalog.BaseBackoff),
		)))
	if err != nil {
		return manager.MediaManager{}, err
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return manager.MediaManager{}, err
	}

	if err := store.Init(ctx); err != nil {
		return manager.MediaManager{}, err
	}

	instances := make([]manager.Instance, 0, len(cfg.Instances))
	for _, in := range cfg.Instances {
		roots := make([]scanner.FileSystem, 0, len(in.RootFolders))
		for _, root := range in.RootFolders {
			roots = append(roots, scanner.FileSystem{Path: root, FS: os.DirFS(root)})
		}
		instances = append(instances, manager.Instance{Name: in.Name, Roots: roots})
	}

	return manager.New(catalogClient, store, cfg, instances...), nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
