package xf8

import "errors"

// Slot is the integer type of one filter slot. The false-positive
// probability of a filter is 1/2^bits of its slot type.
type Slot interface {
	uint8 | uint16 | uint32
}

// Filter[T] is a static XOR filter over 64-bit fingerprints.
//
// A filter is sized by Create, filled once by Populate and then only
// queried. Contains may be called from many goroutines at once; Populate
// must not run concurrently with anything else on the same filter.
type Filter[T Slot] struct {
	XorFilterCommon
	Slots []T
}

// XorFilterCommon gets embedded into Filter[T]
type XorFilterCommon struct {
	// Seed selects the hash family. It must travel with the slots.
	Seed uint32

	// Count is the number of elements the filter was sized for.
	Count uint64

	// BlockLength is the length of each of the three partitions.
	BlockLength uint64

	family *mixer
}

// Xor8 offers a 1/256 (~0.39%) false-positive probability
type Xor8 = Filter[uint8]

// Xor16 offers a 1/65536 (~0.0015%) false-positive probability
type Xor16 = Filter[uint16]

// Xor32 offers a 1/2^32 false-positive probability
type Xor32 = Filter[uint32]

type Membership interface {
	Contains(key uint64) bool
}

var (
	// ErrTooManyIterations is returned by Populate when no seed within
	// Builder.MaxIterations produced a peelable key set.
	ErrTooManyIterations = errors.New("too many iterations, you probably have duplicate keys")

	// ErrCountOverflow is returned when an element count is negative or
	// too large to size a filter for.
	ErrCountOverflow = errors.New("xf8: element count overflow")

	// ErrIndexOverflow is returned when a filter is too large for the
	// 32-bit indices used during construction.
	ErrIndexOverflow = errors.New("xf8: index overflow")

	// ErrOutOfMemory is returned when the runtime refuses an allocation.
	ErrOutOfMemory = errors.New("xf8: out of memory")

	// ErrDuplicateKey is returned by Populate when Builder.CheckDuplicates
	// is set and a key appears more than once.
	ErrDuplicateKey = errors.New("xf8: duplicate key")

	// ErrTooManyKeys is returned when more keys are given than the filter
	// was sized for.
	ErrTooManyKeys = errors.New("xf8: more keys than the filter was sized for")

	// ErrNotSized is returned when populating a filter that was not
	// created by Create or read from its binary form.
	ErrNotSized = errors.New("xf8: filter has not been sized")

	// ErrSeedOverflow is returned when a seed does not fit the one-byte
	// field of the binary layout.
	ErrSeedOverflow = errors.New("xf8: seed does not fit in one byte")

	// ErrInvalidData is returned when serialized data is truncated or
	// otherwise malformed.
	ErrInvalidData = errors.New("xf8: invalid serialized data")
)
