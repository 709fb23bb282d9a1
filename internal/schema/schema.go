package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/scrycli/scry/internal/pipeline"
)

// Dedup recursively keeps only the first occurrence of each distinct array
// element by canonical JSON form of its sorted copy (see dedupByCanonical);
// object values and nested arrays are processed the same way.
func Dedup(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Dedup(vv)
		}
		return out
	case []any:
		deduped := make([]any, len(t))
		for i, vv := range t {
			deduped[i] = Dedup(vv)
		}
		return dedupByCanonical(deduped)
	default:
		return v
	}
}

// Sort recursively sorts array elements by canonical JSON form. Object key
// ordering is left to encoding/json, which sorts map[string]any keys on
// marshal.
func Sort(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Sort(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = Sort(vv)
		}
		sort.Slice(out, func(i, j int) bool {
			return canonicalJSON(out[i]) < canonicalJSON(out[j])
		})
		return out
	default:
		return v
	}
}

// Union merges two schema values: object merge is key-wise union (later
// value wins on conflicting primitives, recursing on shared keys), array
// merge is concatenation followed by dedup+sort. Mismatched shapes fall
// back to the later value.
func Union(a, b any) any {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return b
		}
		out := make(map[string]any, len(av)+len(bv))
		for k, v := range av {
			out[k] = v
		}
		for k, v := range bv {
			if existing, ok := out[k]; ok {
				out[k] = Union(existing, v)
			} else {
				out[k] = v
			}
		}
		return out
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return b
		}
		merged := make([]any, 0, len(av)+len(bv))
		merged = append(merged, av...)
		merged = append(merged, bv...)
		return Sort(Dedup(merged))
	default:
		return b
	}
}

// unionArrayElements collapses a root-level array's elements into a single
// representative schema via recursive Union, per union mode.
func unionArrayElements(arr []any) []any {
	if len(arr) == 0 {
		return arr
	}
	acc := arr[0]
	for _, el := range arr[1:] {
		acc = Union(acc, el)
	}
	return []any{Sort(Dedup(acc))}
}

// SummarizeOne produces the type skeleton of a single JSON document: tape
// rewrite, parse, dedup, sort, and (if unionize and the root is an array)
// collapse into one representative element.
func SummarizeOne(src io.Reader, unionize bool) (any, error) {
	tape, err := Tape(src)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(tape, &v); err != nil {
		return nil, pipeline.InvalidJSON("parsing summarized document", err)
	}

	v = Dedup(v)
	v = Sort(v)

	if unionize {
		if arr, ok := v.([]any); ok {
			v = unionArrayElements(arr)
		}
	}

	return v, nil
}

// IsNDJSON reports whether peek looks like newline-delimited JSON objects:
// the input begins with '{' and either contains no newline, or the segment
// before the first newline ends with '}'.
func IsNDJSON(peek []byte) bool {
	trimmed := bytes.TrimLeft(peek, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	idx := bytes.IndexByte(trimmed, '\n')
	if idx < 0 {
		return true
	}
	segment := bytes.TrimRight(trimmed[:idx], " \t\r")
	return len(segment) > 0 && segment[len(segment)-1] == '}'
}

// SummarizeNDJSON summarizes each non-empty line independently across a
// worker pool bounded by workers (defaulting to runtime.NumCPU()),
// deduplicates identical per-line schemas, iteratively unions them into a
// single running schema, post-processes it, and wraps it in a top-level
// array.
func SummarizeNDJSON(ctx context.Context, src io.Reader, unionize bool, workers int) (any, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, pipeline.IOErr("reading ndjson input", err)
	}

	var lines [][]byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		lines = append(lines, trimmed)
	}
	if len(lines) == 0 {
		return nil, pipeline.InvalidJSON("no documents found in ndjson input", nil)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make(chan any, len(lines))
	for _, line := range lines {
		line := line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("ndjson summarization cancelled: %w", err)
			}
			v, err := SummarizeOne(bytes.NewReader(line), unionize)
			if err != nil {
				return err
			}
			results <- v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		close(results)
		return nil, err
	}
	close(results)

	schemas := make([]any, 0, len(lines))
	for v := range results {
		schemas = append(schemas, v)
	}
	schemas = dedupByCanonical(schemas)

	merged := schemas[0]
	for _, s := range schemas[1:] {
		merged = Union(merged, s)
	}
	merged = Sort(Dedup(merged))

	return []any{merged}, nil
}
