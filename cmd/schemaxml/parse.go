package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	schemaxml "github.com/wilkmaciej/schemaxml"
)

var chunkSize int

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a person document and print its fields",
	Long: `Parse reads a <person> document (a name, zero or more urls, and an
optional date of birth) and prints the fields it resolves, reading from the
named file or from stdin if no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		source := schemaxml.NewReaderChunkSource(in, chunkSize)
		person, err := schemaxml.NewDocument[Person](context.Background(), source)
		if err != nil {
			return fmt.Errorf("parsing document: %w", err)
		}

		name, err := person.Name()
		if err != nil {
			return fmt.Errorf("reading name: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "name: %s\n", name)

		n, err := person.URLs().Len()
		if err != nil {
			return fmt.Errorf("reading urls: %w", err)
		}
		for i := 0; i < n; i++ {
			u, err := person.URLs().At(i)
			if err != nil {
				return fmt.Errorf("reading url %d: %w", i, err)
			}
			value, err := u.Value()
			if err != nil {
				return fmt.Errorf("reading url %d value: %w", i, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "url[%d]: %s\n", i, value)
		}

		dob, err := person.DOB()
		if err != nil {
			return fmt.Errorf("reading dob: %w", err)
		}
		if dob != nil {
			value, err := dob.Value()
			if err != nil {
				return fmt.Errorf("reading dob value: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dob: %s\n", value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", 4096, "bytes pulled from the input per chunk")
}
