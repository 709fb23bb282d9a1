package fastpath

import (
	"testing"

	"github.com/minio/simdjson-go"
	"github.com/scrycli/scry/internal/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAt(t *testing.T) {
	if !simdjson.SupportedCPU() {
		t.Skip("simdjson: unsupported CPU in this environment")
	}

	cases := []struct {
		name  string
		input string
		path  string
		want  string
	}{
		{"simple key", `{"b":"c"}`, "b", `"c"`},
		{"nested key", `{"a":{"b":{"c":"e"}}}`, "a.b", `{"c":"e"}`},
		{"array index", `[1,2,3]`, "[1]", "2"},
		{"array then key", `[{"p":"q"}]`, "[0].p", `"q"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := ValueAt([]byte(tc.input), mustCompile(t, tc.path))
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, tc.want, got)
		})
	}
}

func TestValueAtDeclinesOnMissingPath(t *testing.T) {
	if !simdjson.SupportedCPU() {
		t.Skip("simdjson: unsupported CPU in this environment")
	}
	_, ok, err := ValueAt([]byte(`{"a":1}`), mustCompile(t, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValueAtDeclinesOnMalformedInput(t *testing.T) {
	if !simdjson.SupportedCPU() {
		t.Skip("simdjson: unsupported CPU in this environment")
	}
	_, ok, err := ValueAt([]byte(`{"a":`), mustCompile(t, "a"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func mustCompile(t *testing.T, s string) path.Path {
	t.Helper()
	p, err := path.Compile(s)
	require.NoError(t, err)
	return p
}
