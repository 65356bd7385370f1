package gqlb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tkumli/gqlb/pkg/gqlb"
)

func TestInjectTypenames_EverySelectionSet(t *testing.T) {
	doc := gqlb.MustParse(`query { apple { foo bar { baz } } }`)

	doc = gqlb.InjectTypenames(doc)

	assertDocument(t, `query {
		apple {
			foo
			bar { baz __typename }
			__typename
		}
		__typename
	}`, doc)
}

func TestInjectTypenames_LeavesStayLeaves(t *testing.T) {
	doc := gqlb.MustParse(`query { ping }`)

	doc = gqlb.InjectTypenames(doc)

	assertDocument(t, `query { ping __typename }`, doc)
}

func TestInjectTypenames_Idempotent(t *testing.T) {
	doc := gqlb.MustParse(`query { apple { foo bar { baz } } }`)

	once := gqlb.InjectTypenames(doc)
	twice := gqlb.InjectTypenames(once)

	assert.Equal(t, gqlb.Format(once), gqlb.Format(twice))
}

func TestInjectTypenames_InlineFragments(t *testing.T) {
	doc := gqlb.MustParse(`query { media { ... on Image { url } } }`)

	doc = gqlb.InjectTypenames(doc)

	assertDocument(t, `query {
		media {
			... on Image { url __typename }
			__typename
		}
		__typename
	}`, doc)
}

func TestInjectTypenames_FragmentDefinitions(t *testing.T) {
	doc := gqlb.MustParse(`query { user { ...a } } fragment a on User { id }`)

	doc = gqlb.InjectTypenames(doc)

	assertDocument(t, `
		query { user { ...a __typename } __typename }
		fragment a on User { id __typename }
	`, doc)
}
