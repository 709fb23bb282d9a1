package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, r *Reader) ([][]byte, []int64) {
	t.Helper()
	var chunks [][]byte
	var positions []int64
	for {
		c, pos, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		chunks = append(chunks, c)
		positions = append(positions, pos)
	}
	return chunks, positions
}

func TestReaderSplitsOnLastNewline(t *testing.T) {
	in := "line one\nline two\npartial"
	r := NewSize(strings.NewReader(in), 12)
	chunks, positions := drain(t, r)
	require.NotEmpty(t, chunks)

	var reassembled bytes.Buffer
	for i, c := range chunks {
		if i > 0 {
			assert.Equal(t, positions[i], positions[i-1]+int64(len(chunks[i-1])))
		}
		reassembled.Write(c)
	}
	assert.Equal(t, in+"\n", reassembled.String())
}

func TestReaderAppendsSyntheticNewlineAtEOF(t *testing.T) {
	in := "no newline here"
	r := New(strings.NewReader(in))
	chunks, _ := drain(t, r)
	require.Len(t, chunks, 1)
	assert.Equal(t, in+"\n", string(chunks[0]))
}

func TestReaderSingleLineDegradesToWholeBuffer(t *testing.T) {
	in := strings.Repeat("x", 40)
	r := NewSize(strings.NewReader(in), 10)
	chunks, _ := drain(t, r)
	// No newline anywhere in the input, so the reader must accumulate
	// everything into a single delivered chunk rather than cutting at
	// arbitrary chunkSize boundaries, which could split a token in two.
	require.Len(t, chunks, 1)
	assert.Equal(t, in+"\n", string(chunks[0]))
}

func TestReaderMinifiedJSONWiderThanChunkStaysWhole(t *testing.T) {
	in := `{"attributes":[{"shirt":"blue"},{"shirt":"red"}]}`
	r := NewSize(strings.NewReader(in), 8)
	chunks, _ := drain(t, r)
	require.Len(t, chunks, 1)
	assert.Equal(t, in+"\n", string(chunks[0]))
}
