package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commbdecode/internal/app"
)

func main() {
	var config app.Config

	rootCmd := &cobra.Command{
		Use:   "commbdecode",
		Short: "Mode S Comm-B classifier and decoder",
		Long: `commbdecode reads a Beast-protocol Mode S feed, classifies each
DF20/DF21 Comm-B reply's BDS register by scoring every known candidate
layout, and writes the decoded fields to a rotating CSV log.

Example usage:
  commbdecode --source 127.0.0.1:30005
  commbdecode --input-file capture.beast`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion()
				return nil
			}

			application := app.NewApplication(config)
			return application.Start()
		},
	}

	rootCmd.Flags().StringVarP(&config.Source, "source", "s", app.DefaultSource, "Beast-protocol TCP feed (host:port)")
	rootCmd.Flags().StringVarP(&config.InputFile, "input-file", "i", "", "Replay a raw Beast-protocol capture file instead of dialing --source")
	rootCmd.Flags().StringVarP(&config.LogDir, "log-dir", "l", app.DefaultLogDir, "Log directory")
	rootCmd.Flags().BoolVarP(&config.LogRotateUTC, "utc", "u", true, "Use UTC for log rotation")
	rootCmd.Flags().DurationVar(&config.AddressMaxAge, "address-max-age", app.DefaultAddressMaxAge, "How long a learned ICAO address stays eligible for Comm-B resolution")
	rootCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
