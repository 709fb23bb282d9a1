package fastpath

import "errors"

var (
	errWrongShape = errors.New("fastpath: container shape mismatch")
	errNotFound   = errors.New("fastpath: path segment not found")
)
