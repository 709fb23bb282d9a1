package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scrycli/scry/internal/config"
	"github.com/scrycli/scry/internal/dispatch"
	"github.com/scrycli/scry/internal/schema"
)

// Run executes the scry pipeline: either extracting a single value at
// cfg.Path (dispatching between the SIMD fast path and the streaming
// navigator), or, when cfg.Path is empty, summarizing the input document's
// shape. The result is written to out, followed by a trailing newline.
func Run(ctx context.Context, cfg *config.FlagValues, out io.Writer) error {
	slog.Debug("starting scry pipeline",
		"path", cfg.Path,
		"streaming", cfg.Streaming,
		"unionize", cfg.Unionize,
		"buffsize", cfg.BuffSize,
		"workers", cfg.Workers,
	)

	if cfg.Path != "" {
		return runExtract(ctx, cfg, out)
	}
	return runSummarize(ctx, cfg, out)
}

func runExtract(ctx context.Context, cfg *config.FlagValues, out io.Writer) error {
	result, err := dispatch.Run(ctx, dispatch.Options{
		Data:        []byte(cfg.Data),
		FilePath:    cfg.File,
		SearchPath:  cfg.Path,
		ChunkSize:   cfg.BuffSize,
		ForceStream: cfg.Streaming,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}

func runSummarize(ctx context.Context, cfg *config.FlagValues, out io.Writer) error {
	src, closeFn, err := openInput(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	peek := make([]byte, 4096)
	n, rerr := io.ReadFull(src, peek)
	if rerr != nil && rerr != io.ErrUnexpectedEOF && rerr != io.EOF {
		return IOErr("peeking input for ndjson detection", rerr)
	}
	peek = peek[:n]
	full := io.MultiReader(bytes.NewReader(peek), src)

	var v any
	if schema.IsNDJSON(peek) {
		v, err = schema.SummarizeNDJSON(ctx, full, cfg.Unionize, cfg.Workers)
	} else {
		v, err = schema.SummarizeOne(full, cfg.Unionize)
	}
	if err != nil {
		return err
	}

	return json.NewEncoder(out).Encode(v)
}

func openInput(cfg *config.FlagValues) (io.Reader, func(), error) {
	switch {
	case cfg.Data != "" && cfg.File != "":
		return nil, nil, BadInput("--data and --file are mutually exclusive")
	case cfg.Data != "":
		return bytes.NewReader([]byte(cfg.Data)), func() {}, nil
	case cfg.File != "":
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, nil, IOErr("opening input file", err)
		}
		return f, func() { f.Close() }, nil
	default:
		return os.Stdin, func() {}, nil
	}
}
