package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/harwood/mediamap/config"
	"github.com/harwood/mediamap/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var searchYear int

// searchCmd represents the search command: a manual catalog lookup
var searchCmd = &cobra.Command{
	Use:        "search",
	Short:      "search the catalog for a title",
	Long:       `search the catalog for a title`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"query"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		zlog := logger.Get()
		ctx = logger.WithCtx(ctx, zlog)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		m, err := buildManager(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to build manager: %v", err)
		}

		var year *int
		if searchYear != 0 {
			year = &searchYear
		}

		candidates, err := m.SearchCatalog(ctx, args[0], year)
		if err != nil {
			log.Fatalf("failed to search catalog: %v", err)
		}

		for _, c := range candidates {
			yearStr := "?"
			if c.Year != nil {
				yearStr = fmt.Sprintf("%d", *c.Year)
			}
			log.Printf("%d: %s (%s) score %d", c.ExternalID, c.Title, yearStr, c.Score)
		}
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchYear, "year", 0, "release year hint")
	rootCmd.AddCommand(searchCmd)
}
