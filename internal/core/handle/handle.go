// Package handle validates and normalizes creator handles
// Pipeline order
// 1 trim surrounding whitespace
// 2 strip one leading @ if present
// 3 Unicode case folding to a canonical lowercase form
// 4 validate length 1..15 and charset [a-z0-9_]
package handle

import (
	"strings"

	"golang.org/x/text/cases"

	perr "voiceloom/internal/platform/errors"
)

// MaxLen is the longest handle the content source issues
const MaxLen = 15

// folder is stateless and safe for concurrent use via Fold per call
var folder = cases.Fold()

// Normalize returns the canonical lowercase form of a raw handle
// or an invalid input error when the handle cannot be repaired
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "@")
	s = folder.String(s)

	if s == "" {
		return "", perr.InvalidArgf("creator username must not be empty")
	}
	if len(s) > MaxLen {
		return "", perr.InvalidArgf("creator username %q exceeds %d characters", s, MaxLen)
	}
	for _, r := range s {
		if !isHandleRune(r) {
			return "", perr.InvalidArgf("creator username %q contains invalid character %q", s, r)
		}
	}
	return s, nil
}

// Valid reports whether raw normalizes to a legal handle
func Valid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func isHandleRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
