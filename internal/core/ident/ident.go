// Package ident issues public identifiers for archive entities
// ids are opaque strings: a kind prefix followed by a uuid4 hex suffix
// uniqueness, not structure, is the contract callers rely on
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Kind selects the prefix for a public id
type Kind uint8

const (
	// Contributor ids look like ctr_<32 hex>
	Contributor Kind = iota
	// Clip ids look like clp_<32 hex>
	Clip
	// Submission ids look like sub_<32 hex>
	Submission
)

// Prefix returns the wire prefix for the kind including the underscore
func (k Kind) Prefix() string {
	switch k {
	case Contributor:
		return "ctr_"
	case Clip:
		return "clp_"
	case Submission:
		return "sub_"
	default:
		return "unk_"
	}
}

// New returns a fresh public id for the kind
func New(k Kind) string {
	u := uuid.New()
	return k.Prefix() + strings.ReplaceAll(u.String(), "-", "")
}

// Is reports whether s carries the kind's prefix
// it does not verify the suffix; ids are opaque past the prefix
func Is(k Kind, s string) bool {
	return strings.HasPrefix(s, k.Prefix()) && len(s) > len(k.Prefix())
}
