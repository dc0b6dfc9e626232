package xf8

import (
	"fmt"
	"math"
	"unsafe"
)

// Length returns the number of slots a filter for count elements uses:
// ceil(1.23*count) + 32, rounded up to a multiple of 3.
func Length(count uint64) (uint64, error) {
	if count > (math.MaxUint64-99)/123 {
		return 0, fmt.Errorf("%w: %d elements", ErrCountOverflow, count)
	}
	length := (123*count+99)/100 + 32
	length += (3 - length%3) % 3 // round up to divisible by 3
	return length, nil
}

// Create allocates an empty filter for count elements. The filter must
// be filled with Populate before it is queried.
func Create[T Slot](count int) (*Filter[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrCountOverflow, count)
	}
	return create[T](uint64(count))
}

func create[T Slot](count uint64) (*Filter[T], error) {
	length, err := Length(count)
	if err != nil {
		return nil, err
	}
	var zero T
	if length > uint64(math.MaxInt)/uint64(unsafe.Sizeof(zero)) {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrCountOverflow, length, unsafe.Sizeof(zero))
	}
	slots, err := allocate[T](length)
	if err != nil {
		return nil, err
	}
	filter := &Filter[T]{Slots: slots}
	filter.Count = count
	filter.BlockLength = length / 3
	return filter, nil
}

// allocate turns a refused makeslice into ErrOutOfMemory.
func allocate[T any](n uint64) (s []T, err error) {
	if n > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %d elements", ErrOutOfMemory, n)
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]T, n), nil
}

// slotBits is the width of T in bits.
func slotBits[T Slot]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// BitsPerEntry is the storage cost per sized element.
func (filter *Filter[T]) BitsPerEntry() float64 {
	if filter.Count == 0 {
		return 0
	}
	return float64(len(filter.Slots)*slotBits[T]()) / float64(filter.Count)
}

// FalsePositiveRate is the probability that Contains reports a key that
// was not populated.
func (filter *Filter[T]) FalsePositiveRate() float64 {
	return math.Ldexp(1, -slotBits[T]())
}
