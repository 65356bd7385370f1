package gqlb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkumli/gqlb/pkg/gqlb"
)

func TestInlineVariables_SubstitutesAndDropsDefinition(t *testing.T) {
	doc := gqlb.MustParse(`query Q($id: ID!) { get(id: $id) { name } }`)

	doc, err := gqlb.InlineVariables(doc, map[string]any{"id": 42})
	require.NoError(t, err)

	assertDocument(t, `query Q { get(id: 42) { name } }`, doc)
}

func TestInlineVariables_InsideListValues(t *testing.T) {
	doc := gqlb.MustParse(`query Q($id: ID!) { get(ids: [$id, 2]) { name } }`)

	doc, err := gqlb.InlineVariables(doc, map[string]any{"id": 1})
	require.NoError(t, err)

	assertDocument(t, `query Q { get(ids: [1, 2]) { name } }`, doc)
}

func TestInlineVariables_InsideObjectValues(t *testing.T) {
	doc := gqlb.MustParse(`query Q($name: String!) { search(filter: {name: $name}) { id } }`)

	doc, err := gqlb.InlineVariables(doc, map[string]any{"name": "Ada"})
	require.NoError(t, err)

	assertDocument(t, `query Q { search(filter: {name: "Ada"}) { id } }`, doc)
}

func TestInlineVariables_DirectiveArguments(t *testing.T) {
	doc := gqlb.MustParse(`query Q($yes: Boolean!) { user { email @include(if: $yes) } }`)

	doc, err := gqlb.InlineVariables(doc, map[string]any{"yes": true})
	require.NoError(t, err)

	assertDocument(t, `query Q { user { email @include(if: true) } }`, doc)
}

func TestInlineVariables_FragmentsRewritten(t *testing.T) {
	doc := gqlb.MustParse(`
		query Q($size: Int!) { user { ...pic } }
		fragment pic on User { avatar(size: $size) }
	`)

	doc, err := gqlb.InlineVariables(doc, map[string]any{"size": 50})
	require.NoError(t, err)

	assertDocument(t, `
		query Q { user { ...pic } }
		fragment pic on User { avatar(size: 50) }
	`, doc)
}

func TestInlineVariables_UnmappedVariablesUntouched(t *testing.T) {
	doc := gqlb.MustParse(`query Q($a: Int!, $b: Int!) { get(a: $a, b: $b) }`)

	doc, err := gqlb.InlineVariables(doc, map[string]any{"a": 1})
	require.NoError(t, err)

	assertDocument(t, `query Q($b: Int!) { get(a: 1, b: $b) }`, doc)
}

func TestInlineVariables_Idempotent(t *testing.T) {
	doc := gqlb.MustParse(`query Q($id: ID!) { get(id: $id) }`)
	vars := map[string]any{"id": 42}

	once, err := gqlb.InlineVariables(doc, vars)
	require.NoError(t, err)
	twice, err := gqlb.InlineVariables(once, vars)
	require.NoError(t, err)

	assert.Equal(t, gqlb.Format(once), gqlb.Format(twice))
}

func TestInlineVariables_EmptyMappingIsIdentity(t *testing.T) {
	doc := gqlb.MustParse(`query Q($id: ID!) { get(id: $id) }`)

	out, err := gqlb.InlineVariables(doc, nil)
	require.NoError(t, err)

	assert.Equal(t, gqlb.Format(doc), gqlb.Format(out))
}
