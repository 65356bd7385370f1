package cmd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkumli/gqlb/cmd"
)

func TestTypenames_InjectsEverywhere(t *testing.T) {
	path := writeTestDocument(t, "query.graphql", `query { apple { foo bar { baz } } }`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"typenames", "-f", "text", path})
	require.NoError(t, err)

	// Root, apple and bar each gain one.
	assert.Equal(t, 3, strings.Count(stdout, "__typename"))
}

func TestTypenames_LeafFieldsStayLeaves(t *testing.T) {
	path := writeTestDocument(t, "query.graphql", `query { ping }`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"typenames", "-f", "text", path})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(stdout, "__typename"))
	assert.Contains(t, stdout, "ping")
}
