// Package cursor implements the opaque pagination token used by listings
// the token encodes a row offset; callers must treat it as a black box
package cursor

import (
	"encoding/base64"
	"errors"
	"strconv"
)

// ErrInvalid is returned for tokens this package did not issue
var ErrInvalid = errors.New("Invalid cursor")

// Encode wraps a non-negative offset into an opaque token
func Encode(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// Decode unwraps a token back to its offset
func Decode(tok string) (int, error) {
	b, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return 0, ErrInvalid
	}
	n, err := strconv.Atoi(string(b))
	if err != nil || n < 0 {
		return 0, ErrInvalid
	}
	return n, nil
}
