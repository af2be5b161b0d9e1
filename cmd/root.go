package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trading-journal",
	Short: "Personal trading journal and performance aggregation service",
}

func Execute() error {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
	return rootCmd.Execute()
}
