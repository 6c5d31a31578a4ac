package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sp0x/dmhyfeed/indexer"
	"github.com/sp0x/dmhyfeed/indexer/search"
)

var searchSeries string

func init() {
	cmdSearch := &cobra.Command{
		Use:   "search <query>",
		Short: "Searches the feed for torrents matching a keyword.",
		Args:  cobra.MinimumNArgs(1),
		Run:   searchTorrents,
	}
	cmdSearch.Flags().StringVarP(&searchSeries, "series", "s", "", "Keep only releases of this series")
	rootCmd.AddCommand(cmdSearch)
}

func searchTorrents(_ *cobra.Command, args []string) {
	provider := newProvider()
	records := provider.Search(strings.Join(args, " "))
	if searchSeries != "" {
		records = indexer.FilterBySeries(records, searchSeries)
	}
	printRecords(records)
}

func printRecords(records []search.TorrentRecord) {
	if len(records) == 0 {
		fmt.Println("No results.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tEP\tRES\tGROUP\tHASH")
	for i := range records {
		record := &records[i]
		episode := ""
		if record.Episode != search.UnknownEpisode {
			episode = fmt.Sprintf("%d", record.Episode)
			if record.IsBatch {
				episode += "+"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			record.Name,
			humanize.IBytes(record.SizeBytes),
			episode,
			record.Resolution,
			record.ReleaseGroup,
			record.InfoHash)
	}
	_ = w.Flush()
}
