package xf8

// Populate sizes an Xor8 for keys and fills it.
// The caller is responsible to ensure that there are no duplicate keys.
// The function may return an error after too many iterations: it is almost
// surely an indication that you have duplicate keys.
func Populate(keys []uint64) (*Xor8, error) {
	var bld Builder
	return bld.Populate(keys)
}

func (bld *Builder) Populate(keys []uint64) (*Xor8, error) {
	return newFilter[uint8](bld, keys)
}

// Contains tell you whether the key is likely part of the set
func (filter *Filter[T]) Contains(key uint64) bool {
	if filter.BlockLength == 0 {
		return false
	}
	c := filter.indices(key, filter.Seed)
	b := filter.Slots
	return T(key) == b[c[0]]^b[c[1]]^b[c[2]]
}
