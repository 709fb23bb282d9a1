package navigator

import (
	"io"

	"github.com/scrycli/scry/internal/pipeline"
)

// Extract seeks a second cursor over src to e.Start and reads exactly
// e.End-e.Start bytes, per spec: the primary reader only ever moves
// forward, so the matched value is re-read through an independent cursor
// over the same logical content (a second file handle, or an
// io.NewSectionReader over the same in-memory buffer).
func Extract(src io.ReaderAt, e Extent) (string, error) {
	n := e.End - e.Start
	if n < 0 {
		return "", pipeline.InvalidJSON("negative extent", nil)
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := src.ReadAt(buf, e.Start); err != nil && err != io.EOF {
			return "", pipeline.IOErr("reading matched value", err)
		}
	}
	return string(buf), nil
}
