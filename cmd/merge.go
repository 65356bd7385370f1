/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tkumli/gqlb/pkg/gqlb"
	"github.com/vektah/gqlparser/v2/ast"
)

func NewMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <file> <file> [file...]",
		Short: "Merge GraphQL documents, deduplicating fields and variables",
		Long: `Merges two or more GraphQL documents into one.

Operations are grouped by kind (query, mutation, subscription) and folded
together: variable definitions are unioned by name and selection sets are
concatenated, then deduplicated recursively. Fields with the same identity
and the same arguments merge; fields that differ in arguments stay distinct.
Documents merge left to right.`,
		Example: `  # Merge a base query with per-feature additions
  gqlb merge base.graphql profile.graphql settings.graphql`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var merged *ast.QueryDocument
			for _, path := range args {
				bytes, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read document file: %w", err)
				}
				doc, err := parseDocument(cmd, string(bytes), path)
				if err != nil {
					return err
				}
				if merged == nil {
					merged = doc
					continue
				}
				merged, err = gqlb.Merge(merged, doc)
				if err != nil {
					return err
				}
			}
			return printDocument(cmd, merged)
		},
	}

	return cmd
}
