package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmdLatest := &cobra.Command{
		Use:   "latest",
		Short: "Fetches the newest torrents from the feed.",
		Run:   latestTorrents,
	}
	rootCmd.AddCommand(cmdLatest)
}

func latestTorrents(_ *cobra.Command, _ []string) {
	provider := newProvider()
	printRecords(provider.Latest())
}
