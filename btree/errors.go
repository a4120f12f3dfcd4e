package btree

import "errors"

var (
	// ErrDuplicateKey signals an Add of a key already present.
	ErrDuplicateKey = errors.New("btree: duplicate key")
	// ErrKeyNotFound signals that NextNearest found no key at or after the
	// one given. TryGet and Remove report an absent key without an error.
	ErrKeyNotFound = errors.New("btree: key not found")
	// ErrEmptyCollection signals an operation requiring at least one entry
	// (First, Last, RemoveFirst, RemoveLast) on an empty tree.
	ErrEmptyCollection = errors.New("btree: collection is empty")
	// ErrInvalidArgument signals a malformed Config or a nil comparator.
	ErrInvalidArgument = errors.New("btree: invalid argument")
	// ErrConcurrentModification signals that a Tree was mutated while an
	// Iterator derived from it was still in use.
	ErrConcurrentModification = errors.New("btree: concurrent modification")
)
