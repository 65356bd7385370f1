package gqlb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkumli/gqlb/pkg/gqlb"
	"github.com/vektah/gqlparser/v2/ast"
)

// assertDocument compares a document against expected GraphQL source by
// formatting both sides, so tests don't depend on whitespace details.
func assertDocument(t *testing.T, want string, doc *ast.QueryDocument) {
	t.Helper()
	require.NotNil(t, doc)
	assert.Equal(t, gqlb.Format(gqlb.MustParse(want)), gqlb.Format(doc))
}
