package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain string", `"c"`, "c"},
		{"string with inner escaped quotes preserved", `"\"q\""`, `\"q\"`},
		{"number passthrough", "42", "42"},
		{"negative float passthrough", "-1.5e10", "-1.5e10"},
		{"bool passthrough", "true", "true"},
		{"null passthrough", "null", "null"},
		{"object compacted", "{\"c\": \"e\" }", `{"c":"e"}`},
		{"array compacted", " [ 1, 2, 3 ] ", "[1,2,3]"},
		{"surrounding whitespace trimmed", "  \"c\"  ", "c"},
		{"empty object", "{}", "{}"},
		{"empty array", "[]", "[]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sanitize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSanitizeEmptyInput(t *testing.T) {
	_, err := Sanitize("   ")
	require.Error(t, err)
}

func TestSanitizeInvalidContainer(t *testing.T) {
	_, err := Sanitize("{not json")
	require.Error(t, err)
}
