package gqlb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkumli/gqlb/pkg/gqlb"
)

func TestDefineFragment_WithFields(t *testing.T) {
	doc, err := gqlb.AddField(gqlb.New(), "user", &gqlb.FieldOptions{Spread: []string{"userFields"}})
	require.NoError(t, err)
	doc, err = gqlb.DefineFragment(doc, "userFields", "User", &gqlb.FragmentOptions{
		Fields: []gqlb.FieldSpec{{Name: "id"}, {Name: "name"}},
	})
	require.NoError(t, err)

	assertDocument(t, `
		query { user { ...userFields } }
		fragment userFields on User { id name }
	`, doc)
}

func TestDefineFragment_SubfieldWithPathIsError(t *testing.T) {
	_, err := gqlb.DefineFragment(gqlb.New(), "f", "User", &gqlb.FragmentOptions{
		Fields: []gqlb.FieldSpec{
			{Name: "id", Options: gqlb.FieldOptions{Path: gqlb.PathOf("x")}},
		},
	})
	assert.ErrorIs(t, err, gqlb.ErrInvalidSpec)
}

func TestRemoveFragment_ByName(t *testing.T) {
	doc := gqlb.MustParse(`
		query { user { ...a ...b } }
		fragment a on User { id }
		fragment b on User { name }
	`)

	doc = gqlb.RemoveFragment(doc, "a")

	assertDocument(t, `
		query { user { ...a ...b } }
		fragment b on User { name }
	`, doc)
}

func TestRemoveFragment_Idempotent(t *testing.T) {
	doc := gqlb.MustParse(`query { user } fragment a on User { id }`)

	once := gqlb.RemoveFragment(doc, "a")
	twice := gqlb.RemoveFragment(once, "a")

	assert.Equal(t, gqlb.Format(once), gqlb.Format(twice))
}

func TestFragmentFirstRule_EditsGoIntoFragment(t *testing.T) {
	doc := gqlb.MustParse(`
		query { user { ...userFields } }
		fragment userFields on User { id }
	`)

	doc, err := gqlb.AddField(doc, "name", &gqlb.FieldOptions{Path: gqlb.PathOf("userFields")})
	require.NoError(t, err)

	assertDocument(t, `
		query { user { ...userFields } }
		fragment userFields on User { id name }
	`, doc)
}

func TestFragmentFirstRule_DescendsInsideFragment(t *testing.T) {
	doc := gqlb.MustParse(`
		query { user { ...userFields } }
		fragment userFields on User { address { city } }
	`)

	doc, err := gqlb.AddField(doc, "street", &gqlb.FieldOptions{Path: gqlb.PathOf("userFields", "address")})
	require.NoError(t, err)

	assertDocument(t, `
		query { user { ...userFields } }
		fragment userFields on User { address { city street } }
	`, doc)
}

func TestSpreadFragment_AtPath(t *testing.T) {
	doc := gqlb.MustParse(`query { user } fragment extra on User { id }`)

	doc, err := gqlb.SpreadFragment(doc, "extra", gqlb.PathOf("user"))
	require.NoError(t, err)

	assertDocument(t, `query { user { ...extra } } fragment extra on User { id }`, doc)
}

func TestAddInlineFragment_ThenAddressItWithOn(t *testing.T) {
	doc, err := gqlb.AddField(gqlb.New(), "media", nil)
	require.NoError(t, err)
	doc, err = gqlb.AddInlineFragment(doc, "Image", gqlb.PathOf("media"), &gqlb.FragmentOptions{
		Fields: []gqlb.FieldSpec{{Name: "url"}},
	})
	require.NoError(t, err)
	doc, err = gqlb.AddField(doc, "width", &gqlb.FieldOptions{Path: gqlb.PathOf("media", gqlb.On("Image"))})
	require.NoError(t, err)

	assertDocument(t, `query { media { ... on Image { url width } } }`, doc)
}

func TestInlineFragments_ReplacesSpreadInPlace(t *testing.T) {
	doc := gqlb.MustParse(`
		query { user { id ...userFields email } }
		fragment userFields on User { name age }
	`)

	doc = gqlb.InlineFragments(doc)

	assertDocument(t, `query { user { id name age email } }`, doc)
	assert.Empty(t, doc.Fragments)
}

func TestInlineFragments_FlattensChains(t *testing.T) {
	doc := gqlb.MustParse(`
		query { user { ...outer } }
		fragment outer on User { id ...inner }
		fragment inner on User { name }
	`)

	doc = gqlb.InlineFragments(doc)

	assertDocument(t, `query { user { id name } }`, doc)
}

func TestInlineFragments_UnresolvedSpreadLeftInPlace(t *testing.T) {
	doc := gqlb.MustParse(`query { user { ...missing } }`)

	doc = gqlb.InlineFragments(doc)

	assertDocument(t, `query { user { ...missing } }`, doc)
}

func TestInlineFragments_NestedSpreads(t *testing.T) {
	doc := gqlb.MustParse(`
		query { media { ... on Image { ...imageFields } } }
		fragment imageFields on Image { url width }
	`)

	doc = gqlb.InlineFragments(doc)

	assertDocument(t, `query { media { ... on Image { url width } } }`, doc)
}

func TestInlineFragments_CycleLeavesSpread(t *testing.T) {
	doc := gqlb.MustParse(`
		query { user { ...a } }
		fragment a on User { id ...b }
		fragment b on User { ...a }
	`)

	doc = gqlb.InlineFragments(doc)

	// The self-referential spread stays; everything else inlines.
	assertDocument(t, `query { user { id ...a } }`, doc)
	assert.Empty(t, doc.Fragments)
}
