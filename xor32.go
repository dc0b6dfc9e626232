package xf8

func Populate32(keys []uint64) (*Xor32, error) {
	var bld Builder
	return bld.Populate32(keys)
}

func (bld *Builder) Populate32(keys []uint64) (*Xor32, error) {
	return newFilter[uint32](bld, keys)
}
