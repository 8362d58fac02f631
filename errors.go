package hashmap

import "errors"

var (
	// ErrNilKey is the panic value (wrapped) when a nil pointer, channel or
	// interface is used as a key.
	ErrNilKey = errors.New("hashmap: nil key")

	// ErrTableFull is the panic value when an open-addressed store has no
	// free slot left. The resize policies never let this happen.
	ErrTableFull = errors.New("hashmap: table is full")

	ErrInvalidConfig       = errors.New("hashmap: invalid config")
	ErrUnsupportedStrategy = errors.New("hashmap: unsupported strategy combination")
)
