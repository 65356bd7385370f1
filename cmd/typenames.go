/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tkumli/gqlb/pkg/gqlb"
)

func NewTypenamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typenames [file]",
		Short: "Append __typename to every selection set",
		Long: `Appends a __typename field to every selection set in the document,
including the root of each operation and fragment definition. Selection sets
that already contain __typename are left alone, so the command is idempotent.
Leaf fields stay leaves.`,
		Example: `  # Prepare a document for client-side type discrimination
  gqlb typenames query.graphql`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			return printDocument(cmd, gqlb.InjectTypenames(doc))
		},
	}

	return cmd
}
