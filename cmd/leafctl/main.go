// Package main provides leafctl, the operator CLI for leafcare.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// flagJSON switches command output to JSON.
	flagJSON bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leafctl",
	Short: "leafctl runs maintenance tasks against the leafcare database",
	Long: `leafctl shares configuration with the leafcare server: config/config.yaml,
an optional .env file and environment overrides such as DATABASE_DRIVER.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(notifyDueCmd)
	rootCmd.AddCommand(scanCmd)
}
