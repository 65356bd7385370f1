/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tkumli/gqlb/pkg/gqlb"
)

type inlineOptions struct {
	vars []string
}

// parseVarFlag splits "name=value" and decodes the value as JSON, falling
// back to the raw string for unquoted values like --var name=Ada. A whole
// top-level number binds as an integer, so --var id=42 inlines as 42.
func parseVarFlag(flag string) (string, any, error) {
	name, raw, found := strings.Cut(flag, "=")
	if !found || name == "" {
		return "", nil, fmt.Errorf("invalid --var %q, expected name=value", flag)
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}
	if f, ok := value.(float64); ok && f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		value = int64(f)
	}
	return name, value, nil
}

func NewInlineCmd() *cobra.Command {
	opts := &inlineOptions{}

	cmd := &cobra.Command{
		Use:   "inline [file]",
		Short: "Inline fragment spreads, and optionally variables",
		Long: `Replaces every resolvable fragment spread with the fragment's selections
and drops the fragment definitions. Spreads whose fragment is not defined in
the document are left in place.

With --var, the named variables are also inlined: their definitions are
removed and every reference is replaced by the given literal. Values are
read as JSON, so --var id=42 binds a number and --var name='"Ada"' a string;
a value that is not valid JSON is taken as a plain string.`,
		Example: `  # Flatten fragments into the operations
  gqlb inline query.graphql

  # Also bind $id and $name
  gqlb inline query.graphql --var id=42 --var name=Ada`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}

			doc = gqlb.InlineFragments(doc)

			if len(opts.vars) > 0 {
				vars := make(map[string]any, len(opts.vars))
				for _, flag := range opts.vars {
					name, value, err := parseVarFlag(flag)
					if err != nil {
						return err
					}
					vars[name] = value
				}
				doc, err = gqlb.InlineVariables(doc, vars)
				if err != nil {
					return err
				}
			}

			return printDocument(cmd, doc)
		},
	}

	cmd.Flags().StringArrayVar(&opts.vars, "var", nil, "Inline a variable as name=value (value read as JSON; can be specified multiple times)")

	return cmd
}
