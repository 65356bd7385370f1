/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tkumli/gqlb/pkg/render"
	"github.com/vektah/gqlparser/v2/ast"
)

func definitionInfos(doc *ast.QueryDocument) []DefinitionInfo {
	var defs []DefinitionInfo
	for _, op := range doc.Operations {
		defs = append(defs, DefinitionInfo{
			Kind:       string(op.Operation),
			Name:       op.Name,
			Detail:     strings.Join(variablesText(op.VariableDefinitions), ", "),
			Selections: len(op.SelectionSet),
		})
	}
	for _, frag := range doc.Fragments {
		defs = append(defs, DefinitionInfo{
			Kind:       "fragment",
			Name:       frag.Name,
			Detail:     "on " + frag.TypeCondition,
			Selections: len(frag.SelectionSet),
		})
	}
	return defs
}

func formatDefinitionText(def DefinitionInfo) string {
	name := def.Name
	if name == "" {
		name = "(anonymous)"
	}
	detail := ""
	if def.Detail != "" {
		detail = " " + def.Detail
	}
	return fmt.Sprintf("%s %s%s: %d selections", def.Kind, name, detail, def.Selections)
}

func formatDefinitionsPretty(defs []DefinitionInfo) string {
	t := makeTable()

	for _, def := range defs {
		t.Row(def.Kind, def.Name, def.Detail, fmt.Sprintf("%d", def.Selections))
	}
	t.Headers("kind", "name", "detail", "selections")

	return t.String()
}

func NewOpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops [file]",
		Short: "Lists the definitions in a document",
		Long: `Lists every definition in a GraphQL document: operations with their kind,
name and variable definitions, and fragments with their type condition.

Output formats:
  text    "query GetUser $id: ID!: 2 selections" (default when piping)
  json    [{"kind": "query", "name": "GetUser", ...}, ...]
  pretty  Formatted table with columns (default in terminal)`,
		Example: `  # See what a document defines
  gqlb ops query.graphql

  # Count operations with jq
  gqlb ops query.graphql -f json | jq 'length'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}

			defs := definitionInfos(doc)
			if len(defs) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No definitions found in the document.")
			}

			renderer := render.Renderer[DefinitionInfo]{
				Data:         defs,
				TextFormat:   formatDefinitionText,
				PrettyFormat: formatDefinitionsPretty,
			}

			output, err := renderer.Render(outputFormat)
			if err != nil {
				return fmt.Errorf("error rendering output: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	return cmd
}
