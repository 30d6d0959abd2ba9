package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediamap",
	Short: "mediamap cli",
	Long:  `mediamap cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MEDIAMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("catalog.scheme", "https")
	viper.SetDefault("catalog.host", "api.themoviedb.org")
	viper.SetDefault("catalog.apiKey", "")
	viper.SetDefault("catalog.timeout", "10s")
	viper.SetDefault("catalog.backoff", "500ms")
	viper.SetDefault("catalog.maxRetries", 5)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("scan.workers", 4)

	viper.SetDefault("storage.filePath", "mediamap.sqlite")
}
