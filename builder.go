package xf8

import (
	"fmt"
	"slices"
)

// DefaultMaxIterations is the number of seeds Populate tries when
// Builder.MaxIterations is zero.
const DefaultMaxIterations = 100

// maxSeeds is the number of seeds the one-byte persisted seed can hold.
const maxSeeds = 256

// Builder holds allocated structures so that repeated filter construction can have a lower garbage collection overhead
type Builder struct {
	// MaxIterations bounds the number of seeds tried before Populate
	// gives up with ErrTooManyIterations. Values above 256 are treated
	// as 256.
	MaxIterations int

	// CheckDuplicates makes Populate sort a copy of the keys and fail
	// with ErrDuplicateKey instead of retrying until MaxIterations.
	CheckDuplicates bool

	// Attempts is the number of seeds the last successful Populate used.
	Attempts int

	scratch []uint32
	sorted  []uint64

	// stall, when set, rejects a fully peeled seed as if a cycle
	// remained.
	stall func(seed uint32) bool
}

type buildState int

const (
	stateInitializing buildState = iota
	statePeeling
	stateCommitting
	stateReseed
	stateDone
)

func (bld *Builder) maxIterations() int {
	switch {
	case bld.MaxIterations <= 0:
		return DefaultMaxIterations
	case bld.MaxIterations > maxSeeds:
		return maxSeeds
	}
	return bld.MaxIterations
}

func (bld *Builder) getScratch(words uint64) ([]uint32, error) {
	if uint64(cap(bld.scratch)) >= words {
		return bld.scratch[:words], nil
	}
	buf, err := allocate[uint32](words)
	if err != nil {
		return nil, err
	}
	bld.scratch = buf
	return buf, nil
}

func (bld *Builder) checkDuplicates(keys []uint64) error {
	bld.sorted = append(bld.sorted[:0], keys...)
	slices.Sort(bld.sorted)
	for i := 1; i < len(bld.sorted); i++ {
		if bld.sorted[i] == bld.sorted[i-1] {
			return fmt.Errorf("%w: %#x", ErrDuplicateKey, bld.sorted[i])
		}
	}
	return nil
}

// Populate fills the filter with provided keys.
// The caller is responsible to ensure that there are no duplicate keys.
// The filter is left unchanged when an error is returned.
func (filter *Filter[T]) Populate(keys []uint64) error {
	var bld Builder
	return filter.PopulateWith(&bld, keys)
}

// PopulateWith is Populate using the scratch space and settings of bld.
func (filter *Filter[T]) PopulateWith(bld *Builder, keys []uint64) error {
	if uint64(len(keys)) > filter.Count {
		return fmt.Errorf("%w: %d keys, sized for %d", ErrTooManyKeys, len(keys), filter.Count)
	}
	length := uint64(len(filter.Slots))
	if length == 0 || length%3 != 0 || filter.BlockLength != length/3 {
		return ErrNotSized
	}
	words, err := scratchWords(length, uint64(len(keys)))
	if err != nil {
		return fmt.Errorf("%w: %d slots, %d keys", err, length, len(keys))
	}
	if bld.CheckDuplicates {
		if err := bld.checkDuplicates(keys); err != nil {
			return err
		}
	}
	buf, err := bld.getScratch(words)
	if err != nil {
		return err
	}

	p := newPeeler(&filter.XorFilterCommon, keys, buf)
	limit := bld.maxIterations()
	attempts := 0
	var seed uint32
	state := stateInitializing
	for state != stateDone {
		switch state {
		case stateInitializing:
			attempts++
			if attempts > limit {
				return ErrTooManyIterations
			}
			p.reset(seed)
			state = statePeeling
		case statePeeling:
			state = stateReseed
			if p.peel() == len(keys) && (bld.stall == nil || !bld.stall(seed)) {
				state = stateCommitting
			}
		case stateReseed:
			seed++
			state = stateInitializing
		case stateCommitting:
			filter.commit(p)
			state = stateDone
		}
	}
	bld.Attempts = attempts
	return nil
}

// commit assigns the slots by walking the peel order backwards. Each key
// owns the slot it was peeled from, and its other two slots are final by
// the time it is reached.
func (filter *Filter[T]) commit(p *peeler) {
	clear(filter.Slots)
	slots := filter.Slots
	for {
		k, i, ok := p.pop()
		if !ok {
			break
		}
		key := p.keys[k]
		c := filter.indices(key, p.seed)
		slots[i] = slots[c[0]] ^ slots[c[1]] ^ slots[c[2]] ^ T(key)
	}
	filter.Seed = p.seed
}

func newFilter[T Slot](bld *Builder, keys []uint64) (*Filter[T], error) {
	filter, err := Create[T](len(keys))
	if err != nil {
		return nil, err
	}
	if err := filter.PopulateWith(bld, keys); err != nil {
		return nil, err
	}
	return filter, nil
}
