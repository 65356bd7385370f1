/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tkumli/gqlb/pkg/render"
	"github.com/vektah/gqlparser/v2/ast"
)

// fieldPathInfos flattens every field the document selects into dotted
// paths. Inline fragments contribute an "on(Type)" segment; spreads appear
// as "...name" leaves.
func fieldPathInfos(doc *ast.QueryDocument) []FieldPathInfo {
	var out []FieldPathInfo

	var walk func(prefix string, set ast.SelectionSet)
	walk = func(prefix string, set ast.SelectionSet) {
		for _, sel := range set {
			switch s := sel.(type) {
			case *ast.Field:
				path := joinPath(prefix, fieldIdentity(s))
				info := FieldPathInfo{
					Path:      path,
					Arguments: argumentsText(s.Arguments),
				}
				if s.Alias != "" && s.Alias != s.Name {
					info.Alias = s.Alias
				}
				out = append(out, info)
				walk(path, s.SelectionSet)
			case *ast.InlineFragment:
				segment := "on()"
				if s.TypeCondition != "" {
					segment = fmt.Sprintf("on(%s)", s.TypeCondition)
				}
				walk(joinPath(prefix, segment), s.SelectionSet)
			case *ast.FragmentSpread:
				out = append(out, FieldPathInfo{Path: joinPath(prefix, "..."+s.Name)})
			}
		}
	}

	for _, op := range doc.Operations {
		walk("", op.SelectionSet)
	}
	for _, frag := range doc.Fragments {
		walk(frag.Name, frag.SelectionSet)
	}
	return out
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}

func formatFieldPathText(info FieldPathInfo) string {
	return info.Path + info.Arguments
}

func formatFieldPathsPretty(infos []FieldPathInfo) string {
	t := makeTable()

	for _, info := range infos {
		t.Row(info.Path, info.Arguments, info.Alias)
	}
	t.Headers("path", "arguments", "alias")

	return t.String()
}

func NewFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields [file]",
		Short: "Lists the field paths a document selects",
		Long: `Lists every field path in a GraphQL document, one dotted path per field.
Fields addressed through an alias show the alias in the path, since the alias
is the field's identity. Fragment spreads appear as "...name" entries and
inline fragments contribute an "on(Type)" path segment.

Output formats:
  text    "user.friends(first: 10)", one per line (default when piping)
  json    [{"path": "user.friends", "arguments": "(first: 10)"}, ...]
  pretty  Formatted table with columns (default in terminal)`,
		Example: `  # See everything a query selects
  gqlb fields query.graphql

  # Diff the shapes of two documents
  diff <(gqlb fields a.graphql) <(gqlb fields b.graphql)`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}

			infos := fieldPathInfos(doc)
			if len(infos) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No fields found in the document.")
			}

			renderer := render.Renderer[FieldPathInfo]{
				Data:         infos,
				TextFormat:   formatFieldPathText,
				PrettyFormat: formatFieldPathsPretty,
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
