// Package navigator implements the streaming structural navigator: it
// drives the lexer over successive chunks from a stream.Reader, tracks
// container depth against the path's precomputed checkpoints, and returns
// the exact absolute byte range of the matched value without ever
// building an in-memory document tree.
package navigator

import (
	"encoding/json"
	"io"

	"github.com/scrycli/scry/internal/lexer"
	"github.com/scrycli/scry/internal/path"
	"github.com/scrycli/scry/internal/pipeline"
	"github.com/scrycli/scry/internal/stream"
)

// Extent is an absolute [Start, End) byte range within the original input.
type Extent struct {
	Start int64
	End   int64
}

type openKind int

const (
	openObj openKind = iota
	openArr
)

// state is the navigator's working state for a single search. It mirrors
// path.Path's checkpoint/array-target/search-key triad: cpPos, arrPos and
// keyPos are forward cursors over those three precomputed slices, each
// advancing in lockstep with the live depth triple as containers are
// entered and matched.
type state struct {
	depthTotal, depthArr, depthObj int

	openStack []openKind
	arrIdx    []int

	checkpoints []path.Checkpoint
	cpPos       int

	arrTargets []int
	arrPos     int

	searchKeys []string
	keyPos     int

	checkpointStart []int64
	keyDelim        bool

	result Extent
	done   bool
}

func newState(p path.Path) *state {
	return &state{
		depthTotal:  -1,
		depthArr:    -1,
		depthObj:    -1,
		checkpoints: p.Checkpoints(),
		arrTargets:  p.ArrayTargets(),
		searchKeys:  p.SearchKeys(),
	}
}

// Run drives r through the lexer, matching tokens against p, and returns
// the absolute extent of the matched value. It returns a *pipeline.ScryError
// with Kind KindNotFound if the input is exhausted before the path is
// satisfied, or KindInvalidJSON on structural errors (mismatched brackets,
// an Invalid lexer token).
func Run(r *stream.Reader, p path.Path) (Extent, error) {
	st := newState(p)

	for {
		chunk, base, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Extent{}, err
		}

		l := lexer.New(chunk)
		for {
			tok, ok := l.Next()
			if !ok {
				break
			}
			if tok.Kind == lexer.Invalid {
				return Extent{}, pipeline.InvalidJSON("unexpected byte in input", nil)
			}
			if err := st.step(tok, base, chunk); err != nil {
				return Extent{}, err
			}
			if st.done {
				return st.result, nil
			}
		}
	}

	return Extent{}, pipeline.NotFound("path not found before input was exhausted")
}

func (s *state) step(tok lexer.Token, base int64, chunk []byte) error {
	switch tok.Kind {
	case lexer.ObjOpen:
		s.depthTotal++
		s.depthObj++
		s.openStack = append(s.openStack, openObj)
	case lexer.ObjClose:
		if len(s.openStack) == 0 || s.openStack[len(s.openStack)-1] != openObj {
			return pipeline.InvalidJSON("unexpected '}'", nil)
		}
		s.depthTotal--
		s.depthObj--
		s.openStack = s.openStack[:len(s.openStack)-1]
	case lexer.ArrOpen:
		s.depthTotal++
		s.depthArr++
		s.arrIdx = append(s.arrIdx, 0)
		s.openStack = append(s.openStack, openArr)
	case lexer.ArrClose:
		if len(s.openStack) == 0 || s.openStack[len(s.openStack)-1] != openArr {
			return pipeline.InvalidJSON("unexpected ']'", nil)
		}
		s.depthTotal--
		s.depthArr--
		s.arrIdx = s.arrIdx[:len(s.arrIdx)-1]
		s.openStack = s.openStack[:len(s.openStack)-1]
	case lexer.Comma:
		if len(s.openStack) > 0 && s.openStack[len(s.openStack)-1] == openArr {
			s.arrIdx[len(s.arrIdx)-1]++
		}
	}

	if s.cpPos >= len(s.checkpoints) || len(s.openStack) == 0 {
		return nil
	}
	cp := s.checkpoints[s.cpPos]
	if s.depthTotal != cp.Depth || s.depthArr != cp.ArrCount || s.depthObj != cp.ObjCount {
		return nil
	}

	start := base + int64(tok.Start)
	end := base + int64(tok.End)

	top := s.openStack[len(s.openStack)-1]

	if top == openArr && len(s.arrTargets) > 0 &&
		s.arrIdx[len(s.arrIdx)-1] == s.arrTargets[min(s.arrPos, len(s.arrTargets)-1)] {
		if s.cpPos == len(s.checkpoints)-1 && len(s.checkpointStart) == len(s.arrTargets) {
			s.result = Extent{Start: s.checkpointStart[len(s.checkpointStart)-1] + 1, End: end}
			s.done = true
			return nil
		}
		s.checkpointStart = append(s.checkpointStart, start)
		if s.arrPos < len(s.arrTargets)-1 {
			s.arrPos++
		}
		if s.cpPos < len(s.checkpoints)-1 {
			s.cpPos++
		}
		return nil
	}

	if top != openObj {
		return nil
	}

	switch {
	case tok.Kind == lexer.String && s.keyDelim:
		key, uerr := unquote(chunk[tok.Start:tok.End])
		if uerr == nil && s.keyPos < len(s.searchKeys) && key == s.searchKeys[s.keyPos] {
			s.keyPos++
			if s.cpPos < len(s.checkpoints)-1 {
				s.cpPos++
			}
		}
		s.keyDelim = false
	case (tok.Kind == lexer.ObjOpen || tok.Kind == lexer.Comma) && s.keyPos < len(s.searchKeys):
		s.keyDelim = true
	case s.keyPos == len(s.searchKeys) && s.cpPos == len(s.checkpoints)-1:
		switch tok.Kind {
		case lexer.String, lexer.Number, lexer.True, lexer.False, lexer.Null:
			s.result = Extent{Start: start, End: end}
			s.done = true
		case lexer.Colon:
			s.checkpointStart = append(s.checkpointStart, start)
		case lexer.ObjClose, lexer.ArrClose:
			s.result = Extent{Start: s.checkpointStart[len(s.checkpointStart)-1] + 1, End: end}
			s.done = true
		}
		s.keyDelim = false
	}

	return nil
}

func unquote(raw []byte) (string, error) {
	var out string
	err := json.Unmarshal(raw, &out)
	return out, err
}
