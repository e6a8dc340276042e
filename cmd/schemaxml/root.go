package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schemaxml",
	Short: "A lazy, schema-directed XML reader",
	Long: `schemaxml reads an XML document against a declared schema, pulling
only as much of the input as each field read demands.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
