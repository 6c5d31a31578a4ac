package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sp0x/dmhyfeed/config"
	"github.com/sp0x/dmhyfeed/indexer"
	"github.com/sp0x/dmhyfeed/indexer/titles"
)

var rootCmd = &cobra.Command{
	Use:   "dmhyfeed",
	Short: "Gathers torrents from the share.dmhy.org RSS feed and normalizes them.",
}

var configFile string

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "The config file to use")
	var feedURL string
	var verbose bool
	flags.StringVarP(&feedURL, "url", "u", "", "Override the feed endpoint")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	_ = viper.BindPFlag("feed_url", flags.Lookup("url"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.SetEnvPrefix("DMHY")
	_ = viper.BindEnv("feed_url")
}

func newProvider() *indexer.Provider {
	client := &http.Client{Timeout: config.Timeout(&appConfig)}
	return indexer.NewProvider(config.FeedURL(&appConfig), client, titles.NewParser())
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
