// Package gqlb builds and transforms GraphQL documents as structured data.
//
// Documents are gqlparser query documents. Every operation takes a document
// and returns a new one; inputs are never mutated, so documents can be shared
// freely between callers. Edits are addressed by paths of field names, with
// missing intermediate fields created on write.
package gqlb
