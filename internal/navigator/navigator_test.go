package navigator

import (
	"strings"
	"testing"

	"github.com/scrycli/scry/internal/path"
	"github.com/scrycli/scry/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, input, rawPath string) string {
	t.Helper()
	p, err := path.Compile(rawPath)
	require.NoError(t, err)
	r := stream.NewSize(strings.NewReader(input), 8) // tiny chunks to force splits
	e, err := Run(r, p)
	require.NoError(t, err)
	got, err := Extract(strings.NewReader(input), e)
	require.NoError(t, err)
	return got
}

func TestRunScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		path  string
		want  string
	}{
		{"simple key", `{"b":"c"}`, "b", `"c"`},
		{"nested key, sibling with same leaf name", `{"b": {"a":"d"},"a":{"b":{"c":"e"}}}`, "a.b", `{"c":"e"}`},
		{"nested array indices", `[[3,[6,7],5],9,1]`, "[0][1][1]", "7"},
		{"array then key, inner quotes preserved", `[{"x":"y"},{"p":"\"q\""}]`, "[1].p", `"\"q\""`},
		{"leading index path", `[{"a":1},{"a":2}]`, "[1].a", "2"},
		{"deeply nested object target", `{"a":{"b":{"c":{"d":42}}}}`, "a.b.c", `{"d":42}`},
		{"empty array element", `[[],1]`, "[0]", "[]"},
		{"empty object element", `[{},1]`, "[0]", "{}"},
		{"first array element", `[1,2,3]`, "[0]", "1"},
		{"last array element", `[1,2,3]`, "[2]", "3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extract(t, tc.input, tc.path)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRunSiblingKeysDoNotMatch(t *testing.T) {
	input := `[{"attributes":[{"shirt":"blue"},{"shirt":"red"}]}]`
	got := extract(t, input, "[0].attributes[1].shirt")
	assert.Equal(t, `"red"`, got)
}

func TestRunNotFound(t *testing.T) {
	p, err := path.Compile("missing")
	require.NoError(t, err)
	r := stream.New(strings.NewReader(`{"b":"c"}`))
	_, err = Run(r, p)
	require.Error(t, err)
}

func TestRunOutOfBoundsIndex(t *testing.T) {
	p, err := path.Compile("[5]")
	require.NoError(t, err)
	r := stream.New(strings.NewReader(`[1,2,3]`))
	_, err = Run(r, p)
	require.Error(t, err)
}

func TestRunMalformedInput(t *testing.T) {
	p, err := path.Compile("a")
	require.NoError(t, err)
	r := stream.New(strings.NewReader(`{"a":`))
	_, err = Run(r, p)
	require.Error(t, err)
}
