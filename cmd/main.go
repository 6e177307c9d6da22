package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital patient-record dashboard backend",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(askCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
