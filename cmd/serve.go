package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sp0x/dmhyfeed/rss"
)

func init() {
	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Runs the RSS re-export server.",
		Run:   serve,
	}
	port := 5000
	cmdFlags := cmdServe.Flags()
	cmdFlags.IntVarP(&port, "port", "p", 5000, "The port to listen on.")
	viper.SetDefault("port", 5000)
	_ = viper.BindEnv("port")
	_ = viper.BindPFlag("port", cmdFlags.Lookup("port"))
	rootCmd.AddCommand(cmdServe)
}

func serve(_ *cobra.Command, _ []string) {
	provider := newProvider()
	server := rss.NewServer(provider, viper.GetString("hostname"))
	err := server.Listen(viper.GetInt("port"))
	if err != nil {
		fmt.Print(err)
	}
}
