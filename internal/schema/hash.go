package schema

import (
	"encoding/json"

	"github.com/zeebo/xxh3"
)

// canonicalJSON returns v's deterministic JSON form. encoding/json already
// sorts map[string]any keys on marshal, which is what gives sort-object-keys
// its lexicographic ordering for free once the tree is rebuilt this way.
func canonicalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// dedupByCanonical keeps the first occurrence of each distinct element,
// comparing elements by the canonical JSON form of their Sort-ed copy, so
// elements that differ only in array element order count as duplicates.
// An xxh3 hash buckets candidates so only elements that collide on the
// (cheap) hash pay for a definitive string compare, avoiding an O(n^2)
// stringify-and-compare pass over large arrays.
func dedupByCanonical(items []any) []any {
	buckets := make(map[uint64][]string)
	out := make([]any, 0, len(items))
	for _, it := range items {
		s := canonicalJSON(Sort(it))
		h := xxh3.HashString(s)
		dup := false
		for _, prev := range buckets[h] {
			if prev == s {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		buckets[h] = append(buckets[h], s)
		out = append(out, it)
	}
	return out
}
