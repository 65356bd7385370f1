/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"github.com/tkumli/gqlb/pkg/render"
	"golang.org/x/term"
)

var outputFormat render.Format

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gqlb",
		Short: "Build and transform GraphQL documents from the command line",
		Long: `gqlb manipulates GraphQL query documents as structured data.
It parses queries, mutations and subscriptions and applies structural
transformations: merging documents with field deduplication, inlining
fragment spreads, injecting __typename fields, and substituting literals
for variables.

Commands read a document from a file argument or from stdin and print the
transformed document in canonical form. Listing commands (ops, fields) can
output pretty tables (default in terminals), plain text (default when
piping), or JSON for integration with other tools.`,
		Example: `  # Reprint a document canonically
  gqlb fmt query.graphql

  # Merge two documents, deduplicating fields
  gqlb merge base.graphql extra.graphql

  # Inline all fragment spreads and bind $id to 42
  gqlb inline query.graphql --var id=42

  # Add __typename to every selection set
  cat query.graphql | gqlb typenames

  # List the field paths a document selects
  gqlb fields query.graphql -f json | jq '.[].path'`,
	}

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty (default: pretty if interactive, text otherwise)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		return err
	}

	// Add all subcommands
	cmd.AddCommand(NewFmtCmd())
	cmd.AddCommand(NewMergeCmd())
	cmd.AddCommand(NewInlineCmd())
	cmd.AddCommand(NewTypenamesCmd())
	cmd.AddCommand(NewOpsCmd())
	cmd.AddCommand(NewFieldsCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	return ExecuteWithArgsAndStdin(args, nil)
}

// ExecuteWithArgsAndStdin runs the CLI with the given arguments and stdin, returns stdout, stderr, and any error.
// This is useful for testing commands that read from stdin.
func ExecuteWithArgsAndStdin(args []string, stdin *bytes.Buffer) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
