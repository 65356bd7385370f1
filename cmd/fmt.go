/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

func NewFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse a GraphQL document and reprint it canonically",
		Long: `Parses a GraphQL query document and prints it back in canonical form.

The document can be provided as a file path argument or piped via stdin.
Parse errors are reported with a source snippet and the offending position
underlined.

Exit codes:
  0 - Document parsed and printed
  1 - Document has parse errors`,
		Example: `  # Format a file
  gqlb fmt query.graphql

  # Format from stdin
  echo "query{user{id}}" | gqlb fmt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			return printDocument(cmd, doc)
		},
	}

	return cmd
}
