// Package fastpath resolves a compiled path against an in-memory buffer
// using the SIMD JSON parser, for inputs small enough to fit in memory and
// CPUs that support it. It never reports an error for a path it cannot
// resolve; it declines instead, and the caller falls back to the
// streaming navigator.
package fastpath

import (
	"github.com/minio/simdjson-go"
	"github.com/scrycli/scry/internal/path"
)

// ValueAt walks p against data using simdjson. The bool return reports
// whether the fast path produced an answer: false means decline (malformed
// input, unsupported CPU, or a traversal step the fast path can't satisfy)
// and the caller should retry with the streaming navigator.
func ValueAt(data []byte, p path.Path) (string, bool, error) {
	if !simdjson.SupportedCPU() {
		return "", false, nil
	}

	pj, err := simdjson.Parse(data, nil)
	if err != nil {
		return "", false, nil
	}

	it := pj.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return "", false, nil
	}
	typ, cur, err := it.Root(nil)
	if err != nil {
		return "", false, nil
	}

	for _, seg := range p {
		if seg.Array {
			typ, cur, err = stepArray(cur, typ, seg.Index)
		} else {
			typ, cur, err = stepObject(cur, typ, seg.Key)
		}
		if err != nil {
			return "", false, nil
		}
	}

	b, err := cur.MarshalJSON()
	if err != nil {
		return "", false, nil
	}
	return string(b), true, nil
}

func stepArray(cur *simdjson.Iter, typ simdjson.Type, index int) (simdjson.Type, *simdjson.Iter, error) {
	if typ != simdjson.TypeArray {
		return simdjson.TypeNone, nil, errWrongShape
	}
	var arr simdjson.Array
	if _, err := cur.Array(&arr); err != nil {
		return simdjson.TypeNone, nil, err
	}
	ai := arr.Iter()
	var elem simdjson.Iter
	var elemType simdjson.Type
	var err error
	for i := 0; i <= index; i++ {
		elemType, err = ai.AdvanceIter(&elem)
		if err != nil {
			return simdjson.TypeNone, nil, err
		}
		if elemType == simdjson.TypeNone {
			return simdjson.TypeNone, nil, errNotFound
		}
	}
	return elemType, &elem, nil
}

func stepObject(cur *simdjson.Iter, typ simdjson.Type, key string) (simdjson.Type, *simdjson.Iter, error) {
	if typ != simdjson.TypeObject {
		return simdjson.TypeNone, nil, errWrongShape
	}
	var obj simdjson.Object
	if _, err := cur.Object(&obj); err != nil {
		return simdjson.TypeNone, nil, err
	}
	var el simdjson.Element
	found := obj.FindKey(key, &el)
	if found == nil {
		return simdjson.TypeNone, nil, errNotFound
	}
	return el.Type, &el.Iter, nil
}
