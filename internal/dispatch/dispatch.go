// Package dispatch implements the fast-path/fallback decision between the
// in-memory SIMD engine and the streaming navigator.
package dispatch

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/scrycli/scry/internal/fastpath"
	"github.com/scrycli/scry/internal/navigator"
	"github.com/scrycli/scry/internal/path"
	"github.com/scrycli/scry/internal/pipeline"
	"github.com/scrycli/scry/internal/sanitize"
	"github.com/scrycli/scry/internal/stream"
)

// readerAtReader is satisfied by both *os.File and *bytes.Reader: the same
// handle serves as the navigator's forward-only primary cursor (via Read)
// and as the second, independent cursor for value extraction (via ReadAt).
type readerAtReader interface {
	io.Reader
	io.ReaderAt
}

// maxFastPathBytes is the file-size threshold (4 GiB) at or above which the
// fast path is never attempted.
const maxFastPathBytes = 1 << 32

// Options describes a single extraction request. At most one of Data or
// FilePath may be set; when neither is, Run reads the input from os.Stdin.
type Options struct {
	Data        []byte
	FilePath    string
	SearchPath  string
	ChunkSize   int
	ForceStream bool
}

// Run resolves o.SearchPath against the configured input, choosing the
// fast path when eligible and falling back to the streaming navigator
// otherwise. The returned string is the sanitized, printable result.
func Run(ctx context.Context, o Options) (string, error) {
	if len(o.Data) == 0 && o.FilePath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", pipeline.IOErr("reading input from stdin", err)
		}
		o.Data = data
	}
	if len(o.Data) == 0 && o.FilePath == "" {
		return "", pipeline.BadInput("no input provided")
	}
	if len(o.Data) > 0 && o.FilePath != "" {
		return "", pipeline.BadInput("exactly one of data or file path must be set")
	}
	if o.SearchPath == "" {
		return "", pipeline.BadInput("search path must not be empty")
	}

	p, err := path.Compile(o.SearchPath)
	if err != nil {
		return "", err
	}

	useStream := o.ForceStream
	var fileSize int64
	if o.FilePath != "" {
		info, serr := os.Stat(o.FilePath)
		if serr != nil {
			return "", pipeline.IOErr("stating input file", serr)
		}
		fileSize = info.Size()
		if fileSize >= maxFastPathBytes {
			useStream = true
		}
	}

	if !useStream {
		result, ok, ferr := tryFastPath(o, p)
		if ferr != nil {
			return "", ferr
		}
		if ok {
			return result, nil
		}
	}

	return runStreaming(ctx, o, p)
}

func tryFastPath(o Options, p path.Path) (string, bool, error) {
	data := o.Data
	if data == nil {
		f, err := os.ReadFile(o.FilePath)
		if err != nil {
			return "", false, pipeline.IOErr("reading input file", err)
		}
		data = f
	}

	raw, ok, err := fastpath.ValueAt(data, p)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	clean, err := sanitize.Sanitize(raw)
	if err != nil {
		return "", false, nil // fall back rather than fail on a fast-path artifact
	}
	return clean, true, nil
}

func runStreaming(ctx context.Context, o Options, p path.Path) (string, error) {
	var src readerAtReader
	if o.FilePath != "" {
		f, err := os.Open(o.FilePath)
		if err != nil {
			return "", pipeline.IOErr("opening input file", err)
		}
		defer f.Close()
		src = f
	} else {
		src = bytes.NewReader(o.Data)
	}

	r := stream.NewSize(src, o.ChunkSize)
	extent, err := navigator.Run(r, p)
	if err != nil {
		return "", err
	}

	raw, err := navigator.Extract(src, extent)
	if err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	return sanitize.Sanitize(raw)
}
