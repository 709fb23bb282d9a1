package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFromData(t *testing.T) {
	out, err := Run(context.Background(), Options{
		Data:       []byte(`{"b":"c"}`),
		SearchPath: "b",
		ChunkSize:  1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "c", out)
}

func TestRunFromDataForceStream(t *testing.T) {
	out, err := Run(context.Background(), Options{
		Data:        []byte(`[{"x":"y"},{"p":"\"q\""}]`),
		SearchPath:  "[1].p",
		ChunkSize:   1024,
		ForceStream: true,
	})
	require.NoError(t, err)
	assert.Equal(t, `\"q\"`, out)
}

func TestRunFromFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(fp, []byte(`{"a":{"b":{"c":"e"}}}`), 0o644))

	out, err := Run(context.Background(), Options{
		FilePath:   fp,
		SearchPath: "a.b",
		ChunkSize:  1024,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"c":"e"}`, out)
}

func TestRunBadInput(t *testing.T) {
	_, err := Run(context.Background(), Options{SearchPath: "a"})
	require.Error(t, err)

	_, err = Run(context.Background(), Options{Data: []byte(`{}`), FilePath: "x.json", SearchPath: "a"})
	require.Error(t, err)

	_, err = Run(context.Background(), Options{Data: []byte(`{}`)})
	require.Error(t, err)
}

func TestRunNotFound(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Data:       []byte(`{"b":"c"}`),
		SearchPath: "missing",
		ChunkSize:  1024,
	})
	require.Error(t, err)
}
