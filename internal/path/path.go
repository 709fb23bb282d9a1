// Package path compiles a dotted/bracketed path string into an ordered
// sequence of segments, and precomputes the depth checkpoints the
// navigator walks against.
package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scrycli/scry/internal/pipeline"
)

// Segment is either a Key or an Index. Exactly one of the two forms is
// meaningful for a given Segment; Array reports which.
type Segment struct {
	Key   string
	Index int
	Array bool
}

// Path is a compiled, ordered sequence of segments. A valid Path is never
// empty.
type Path []Segment

// Compile parses "seg(.seg|[n])*" into a Path. seg is any run of characters
// other than '.', '[', ']'; [n] is a non-negative decimal array index. The
// first segment may itself be a bracketed index.
func Compile(s string) (Path, error) {
	if s == "" {
		return nil, pipeline.BadPath("empty path", nil)
	}

	var out Path
	i := 0
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			if i >= len(s) {
				return nil, pipeline.BadPath(fmt.Sprintf("path %q: trailing '.'", s), nil)
			}
			if s[i] == '[' {
				// bracket group follows directly; loop back around.
				continue
			}
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, pipeline.BadPath(fmt.Sprintf("path %q: unmatched '['", s), nil)
			}
			end += i
			digits := s[i+1 : end]
			if digits == "" {
				return nil, pipeline.BadPath(fmt.Sprintf("path %q: empty index", s), nil)
			}
			n, err := strconv.Atoi(digits)
			if err != nil || n < 0 {
				return nil, pipeline.BadPath(fmt.Sprintf("path %q: bad index %q", s, digits), err)
			}
			out = append(out, Segment{Index: n, Array: true})
			i = end + 1
			continue
		}

		// key segment: a key is any run of characters other than '.', '[', ']'.
		start := i
		for i < len(s) && s[i] != '.' && s[i] != '[' && s[i] != ']' {
			i++
		}
		if i == start {
			return nil, pipeline.BadPath(fmt.Sprintf("path %q: zero-length key", s), nil)
		}
		out = append(out, Segment{Key: s[start:i]})
	}

	if len(out) == 0 {
		return nil, pipeline.BadPath(fmt.Sprintf("path %q: no segments", s), nil)
	}
	return out, nil
}

// Checkpoint is the depth triple segment k of the path must see the live
// cursor reach before that segment's match is attempted: Depth is k itself,
// ArrCount and ObjCount are the counts of Array and Key segments among the
// first k+1 segments (this one included), each less one.
type Checkpoint struct {
	Depth    int
	ArrCount int
	ObjCount int
}

// Checkpoints returns one Checkpoint per segment of p, ordered shallowest
// first (index 0 is the shallowest / next-expected level). This is the
// natural "top of stack first" order the navigator pops from.
func (p Path) Checkpoints() []Checkpoint {
	cps := make([]Checkpoint, len(p))
	arr, obj := 0, 0
	for k, seg := range p {
		if seg.Array {
			arr++
		} else {
			obj++
		}
		cps[k] = Checkpoint{Depth: k, ArrCount: arr - 1, ObjCount: obj - 1}
	}
	return cps
}

// ArrayTargets returns the Index of every Array segment in p, in path
// order. The navigator consumes these in step with Checkpoints to decide
// which element of a matched array to descend into.
func (p Path) ArrayTargets() []int {
	var out []int
	for _, seg := range p {
		if seg.Array {
			out = append(out, seg.Index)
		}
	}
	return out
}

// SearchKeys returns the Key of every non-Array segment in p, in path
// order. The navigator consumes these in step with Checkpoints to decide
// which member of a matched object to descend into.
func (p Path) SearchKeys() []string {
	var out []string
	for _, seg := range p {
		if !seg.Array {
			out = append(out, seg.Key)
		}
	}
	return out
}
