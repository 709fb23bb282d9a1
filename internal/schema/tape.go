package schema

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/scrycli/scry/internal/lexer"
	"github.com/scrycli/scry/internal/pipeline"
)

// Tape rewrites src into a type skeleton: scalar values are replaced by
// their type name ("string", "number", "boolean"; null widens to
// "string"), structural punctuation and object keys pass through
// unchanged. The result is itself valid JSON.
func Tape(src io.Reader) ([]byte, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, pipeline.IOErr("reading document for summarization", err)
	}

	type frame struct {
		isObj     bool
		expectKey bool
	}
	var stack []frame

	l := lexer.New(data)
	var out bytes.Buffer

	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case lexer.Invalid:
			return nil, pipeline.InvalidJSON("unexpected byte while summarizing", nil)
		case lexer.ObjOpen:
			stack = append(stack, frame{isObj: true, expectKey: true})
			out.WriteByte('{')
		case lexer.ArrOpen:
			stack = append(stack, frame{})
			out.WriteByte('[')
		case lexer.ObjClose:
			if len(stack) == 0 || !stack[len(stack)-1].isObj {
				return nil, pipeline.InvalidJSON("unexpected '}' while summarizing", nil)
			}
			stack = stack[:len(stack)-1]
			out.WriteByte('}')
		case lexer.ArrClose:
			if len(stack) == 0 || stack[len(stack)-1].isObj {
				return nil, pipeline.InvalidJSON("unexpected ']' while summarizing", nil)
			}
			stack = stack[:len(stack)-1]
			out.WriteByte(']')
		case lexer.Comma:
			if len(stack) > 0 && stack[len(stack)-1].isObj {
				stack[len(stack)-1].expectKey = true
			}
			out.WriteByte(',')
		case lexer.Colon:
			out.WriteByte(':')
		case lexer.String:
			top := len(stack) - 1
			if top >= 0 && stack[top].isObj && stack[top].expectKey {
				stack[top].expectKey = false
				out.Write(data[tok.Start:tok.End])
			} else {
				out.WriteString(`"string"`)
			}
		case lexer.Number:
			out.WriteString(`"number"`)
		case lexer.True, lexer.False:
			out.WriteString(`"boolean"`)
		case lexer.Null:
			out.WriteString(`"string"`)
		}
	}

	if len(stack) != 0 {
		return nil, pipeline.InvalidJSON("unterminated container in document", nil)
	}
	if !json.Valid(out.Bytes()) {
		return nil, pipeline.InvalidJSON("summarized tape is not valid JSON", nil)
	}
	return out.Bytes(), nil
}
