package cmd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkumli/gqlb/cmd"
)

func TestMerge_TwoDocuments(t *testing.T) {
	a := writeTestDocument(t, "a.graphql", `query { user { id } }`)
	b := writeTestDocument(t, "b.graphql", `query { user { name } }`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"merge", "-f", "text", a, b})
	require.NoError(t, err)

	assert.Contains(t, stdout, "id")
	assert.Contains(t, stdout, "name")
	// The duplicated user field folds into one.
	assert.Equal(t, 1, strings.Count(stdout, "user"))
}

func TestMerge_ThreeDocumentsFoldLeftToRight(t *testing.T) {
	a := writeTestDocument(t, "a.graphql", `query { user { id } }`)
	b := writeTestDocument(t, "b.graphql", `query { user { name } }`)
	c := writeTestDocument(t, "c.graphql", `mutation { ping }`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"merge", "-f", "text", a, b, c})
	require.NoError(t, err)

	assert.Contains(t, stdout, "query")
	assert.Contains(t, stdout, "mutation")
	assert.Contains(t, stdout, "ping")
}

func TestMerge_RequiresTwoFiles(t *testing.T) {
	a := writeTestDocument(t, "a.graphql", `query { user }`)

	_, _, err := cmd.ExecuteWithArgs([]string{"merge", "-f", "text", a})
	assert.Error(t, err)
}

func TestMerge_ParseErrorNamesFile(t *testing.T) {
	a := writeTestDocument(t, "a.graphql", `query { user }`)
	b := writeTestDocument(t, "b.graphql", `query {{{`)

	_, stderr, err := cmd.ExecuteWithArgs([]string{"merge", "-f", "text", a, b})
	require.Error(t, err)
	assert.Contains(t, stderr, "b.graphql")
}
