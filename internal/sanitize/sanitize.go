// Package sanitize turns a raw extracted byte slice (still exactly as
// written in the source document) into the string scry prints on stdout.
package sanitize

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/scrycli/scry/internal/pipeline"
)

// Sanitize trims surrounding whitespace, strips a single pair of
// surrounding quotes from scalar string values (leaving any inner escape
// sequences exactly as written), and canonicalizes container values
// (objects and arrays) by compacting their whitespace. Numbers, booleans
// and null pass through trimmed and otherwise unchanged.
func Sanitize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", pipeline.InvalidJSON("empty value", nil)
	}

	switch s[0] {
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(s)); err != nil {
			return "", pipeline.InvalidJSON("matched value is not valid JSON", err)
		}
		return buf.String(), nil
	case '"':
		if len(s) >= 2 && s[len(s)-1] == '"' {
			return s[1 : len(s)-1], nil
		}
		return s, nil
	default:
		return s, nil
	}
}
