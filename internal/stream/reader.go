// Package stream implements the chunked, newline-aligned reader the
// navigator feeds into the lexer so that no single token ever straddles a
// delivered chunk (so long as the input contains newlines more often than
// the longest token is long; minified single-line input degrades to one
// buffered read at EOF).
package stream

import (
	"io"

	"github.com/scrycli/scry/internal/pipeline"
)

// DefaultChunkSize is the default number of bytes read per iteration.
const DefaultChunkSize = 1 << 20 // 1 MiB

// Reader reads from an underlying io.Reader in ChunkSize pieces, splitting
// each read at the last newline so the lexer never has to resume a token
// mid-chunk.
type Reader struct {
	src       io.Reader
	chunkSize int

	pending []byte // bytes read but not yet handed to the lexer
	pos     int64  // absolute offset of the first byte of pending, in src
	eof     bool
}

// New wraps src with the default chunk size.
func New(src io.Reader) *Reader {
	return NewSize(src, DefaultChunkSize)
}

// NewSize wraps src with an explicit chunk size.
func NewSize(src io.Reader, chunkSize int) *Reader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Reader{src: src, chunkSize: chunkSize}
}

// Next returns the next newline-aligned chunk and the absolute stream
// offset of its first byte. It returns io.EOF once the underlying reader
// and any buffered remainder are both exhausted.
//
// When the input contains no newline within chunkSize bytes (minified,
// single-line JSON), Next keeps accumulating into a single growing buffer
// across reads instead of handing back an arbitrary non-newline-aligned
// slice, since doing so could split a token across two delivered chunks.
func (r *Reader) Next() (chunk []byte, streamPos int64, err error) {
	if r.eof && len(r.pending) == 0 {
		return nil, r.pos, io.EOF
	}

	full := r.pending
	r.pending = nil

	for {
		if r.eof {
			break
		}
		buf := make([]byte, r.chunkSize)
		n, readErr := io.ReadFull(r.src, buf)
		if readErr == io.ErrUnexpectedEOF || readErr == io.EOF {
			r.eof = true
		} else if readErr != nil {
			return nil, r.pos, pipeline.IOErr("reading input", readErr)
		}
		full = append(full, buf[:n]...)

		if r.eof {
			break
		}
		if lastNewline(full) >= 0 {
			break
		}
		// No newline anywhere yet: keep growing the single buffer rather
		// than returning a cut that could land inside a token.
	}

	if r.eof {
		// Final read: everything remaining is delivered, with a synthetic
		// trailing newline so the last partial line still gets processed.
		if len(full) > 0 && full[len(full)-1] != '\n' {
			full = append(full, '\n')
		}
		streamPos = r.pos
		r.pos += int64(len(full))
		return full, streamPos, nil
	}

	cut := lastNewline(full)
	deliver := full[:cut+1]
	streamPos = r.pos
	r.pos += int64(len(deliver))
	r.pending = append([]byte(nil), full[cut+1:]...)
	return deliver, streamPos, nil
}

func lastNewline(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == '\n' {
			return i
		}
	}
	return -1
}
