package cmd_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkumli/gqlb/cmd"
)

func TestFields_Text(t *testing.T) {
	path := writeTestDocument(t, "query.graphql", `query { user(id: 4) { name friends(first: 10) { name } } }`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-f", "text", path})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 4)

	assert.Contains(t, stdout, "user(id: 4)")
	assert.Contains(t, stdout, "user.name")
	assert.Contains(t, stdout, "user.friends(first: 10)")
	assert.Contains(t, stdout, "user.friends.name")
}

func TestFields_AliasIsIdentity(t *testing.T) {
	path := writeTestDocument(t, "query.graphql", `query { me: user { id } }`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-f", "text", path})
	require.NoError(t, err)

	assert.Contains(t, stdout, "me")
	assert.Contains(t, stdout, "me.id")
}

func TestFields_InlineFragmentsAndSpreads(t *testing.T) {
	path := writeTestDocument(t, "query.graphql", `
		query { media { ... on Image { url } ...extra } }
		fragment extra on Media { id }
	`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-f", "text", path})
	require.NoError(t, err)

	assert.Contains(t, stdout, "media.on(Image).url")
	assert.Contains(t, stdout, "media....extra")
	assert.Contains(t, stdout, "extra.id")
}

func TestFields_JSON(t *testing.T) {
	path := writeTestDocument(t, "query.graphql", `query { user(id: 4) { name } }`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-f", "json", path})
	require.NoError(t, err)

	var infos []struct {
		Path      string `json:"path"`
		Arguments string `json:"arguments"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 2)

	assert.Equal(t, "user", infos[0].Path)
	assert.Equal(t, "(id: 4)", infos[0].Arguments)
	assert.Equal(t, "user.name", infos[1].Path)
}
