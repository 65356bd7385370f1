package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/tkumli/gqlb/pkg/diagnostic"
	"github.com/tkumli/gqlb/pkg/gqlb"
	"github.com/tkumli/gqlb/pkg/render"
	"github.com/vektah/gqlparser/v2/ast"
)

var tableStyle = lipgloss.NewStyle().PaddingRight(1)

func makeTable() *table.Table {
	return table.New().
		Width(120).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return tableStyle
		})
}

// ErrParseFailed is returned when an input document does not parse. The
// diagnostic has already been written to stderr when this is returned.
var ErrParseFailed = errors.New("parse failed")

// readDocumentSource reads the document for a command: from the file named by
// the first positional argument, or from stdin when no argument is given.
func readDocumentSource(cmd *cobra.Command, args []string) (content string, name string, err error) {
	if len(args) >= 1 {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read document file: %w", err)
		}
		return string(bytes), args[0], nil
	}
	bytes, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(bytes), "stdin", nil
}

// loadDocument reads and parses a document, printing a diagnostic snippet to
// stderr when parsing fails.
func loadDocument(cmd *cobra.Command, args []string) (*ast.QueryDocument, error) {
	content, name, err := readDocumentSource(cmd, args)
	if err != nil {
		return nil, err
	}
	return parseDocument(cmd, content, name)
}

func parseDocument(cmd *cobra.Command, content, name string) (*ast.QueryDocument, error) {
	doc, err := gqlb.Parse(content)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), diagnostic.RenderError(err, content, name))
		return nil, ErrParseFailed
	}
	return doc, nil
}

// printDocument writes a transformed document in the selected format. Text
// and pretty both print canonical GraphQL; json wraps it for scripting.
func printDocument(cmd *cobra.Command, doc *ast.QueryDocument) error {
	renderer := render.Single[DocumentInfo]{
		Value: DocumentInfo{Document: gqlb.Format(doc)},
		TextFormat: func(d DocumentInfo) string {
			return strings.TrimRight(d.Document, "\n")
		},
	}
	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// fieldIdentity mirrors the library's matching rule: alias when set,
// otherwise the field name.
func fieldIdentity(f *ast.Field) string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// argumentsText renders an argument list as it appears in a document,
// e.g. "(id: $id, first: 10)".
func argumentsText(args ast.ArgumentList) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%s: %s", arg.Name, arg.Value.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// typeText converts an ast.Type to a human-readable string (e.g., "ID!", "[User!]!").
func typeText(typeDef *ast.Type) string {
	requiredStr := ""
	if typeDef.NonNull {
		requiredStr = "!"
	}
	if typeDef.Elem != nil {
		return fmt.Sprintf("[%s]%s", typeText(typeDef.Elem), requiredStr)
	}
	return typeDef.NamedType + requiredStr
}

// variablesText renders variable definitions as "$id: ID!, $limit: Int".
func variablesText(defs ast.VariableDefinitionList) []string {
	out := make([]string, len(defs))
	for i, def := range defs {
		out[i] = fmt.Sprintf("$%s: %s", def.Variable, typeText(def.Type))
	}
	return out
}
