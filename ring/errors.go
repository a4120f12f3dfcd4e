package ring

import "errors"

var (
	// ErrIndexOutOfRange signals an access or insertion index outside the
	// legal range for the current operation.
	ErrIndexOutOfRange = errors.New("ring: index out of range")
	// ErrInvalidArgument signals a capacity below the minimum, or a
	// negative size, passed to a constructor.
	ErrInvalidArgument = errors.New("ring: invalid argument")
	// ErrEmptyCollection signals Pop on an empty ring.
	ErrEmptyCollection = errors.New("ring: collection is empty")
	// ErrReadOnlyViolation signals a mutation attempted on a ReadOnly ring.
	ErrReadOnlyViolation = errors.New("ring: read-only violation")
	// ErrFixedSizeViolation signals an insert/remove attempted on a
	// FixedSize ring, which only permits element replacement.
	ErrFixedSizeViolation = errors.New("ring: fixed-size violation")
	// ErrFixedCapacityViolation signals a growth attempt on a
	// FixedCapacity ring once it is full.
	ErrFixedCapacityViolation = errors.New("ring: fixed-capacity violation")
	// ErrConcurrentModification signals that an Enumerator observed a
	// version change since it was created.
	ErrConcurrentModification = errors.New("ring: concurrent modification")
)
