package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Path
	}{
		{
			name: "simple key and index",
			in:   "a.b[1]",
			want: Path{{Key: "a"}, {Key: "b"}, {Index: 1, Array: true}},
		},
		{
			name: "leading index",
			in:   "[2].child1[0].arr1",
			want: Path{
				{Index: 2, Array: true},
				{Key: "child1"},
				{Index: 0, Array: true},
				{Key: "arr1"},
			},
		},
		{
			name: "chained brackets without dot",
			in:   "x.y[1][1][1].b[1222]",
			want: Path{
				{Key: "x"},
				{Key: "y"},
				{Index: 1, Array: true},
				{Index: 1, Array: true},
				{Index: 1, Array: true},
				{Key: "b"},
				{Index: 1222, Array: true},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Compile(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []string{"", "a[", "a]", "a[x]", "a..b", "[1]."}
	for _, in := range cases {
		_, err := Compile(in)
		assert.Error(t, err, "path %q should fail to compile", in)
	}
}

func TestCheckpoints(t *testing.T) {
	p, err := Compile("a.b[1]")
	require.NoError(t, err)
	cps := p.Checkpoints()
	require.Len(t, cps, 3)
	assert.Equal(t, Checkpoint{Depth: 0, ArrCount: -1, ObjCount: 0}, cps[0])
	assert.Equal(t, Checkpoint{Depth: 1, ArrCount: -1, ObjCount: 1}, cps[1])
	assert.Equal(t, Checkpoint{Depth: 2, ArrCount: 0, ObjCount: 1}, cps[2])
}

func TestArrayTargetsAndSearchKeys(t *testing.T) {
	p, err := Compile("a.b[1]")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p.ArrayTargets())
	assert.Equal(t, []string{"a", "b"}, p.SearchKeys())

	p2, err := Compile("[2].child1[0].arr1")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, p2.ArrayTargets())
	assert.Equal(t, []string{"child1", "arr1"}, p2.SearchKeys())
}
