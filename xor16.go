package xf8

func Populate16(keys []uint64) (*Xor16, error) {
	var bld Builder
	return bld.Populate16(keys)
}

func (bld *Builder) Populate16(keys []uint64) (*Xor16, error) {
	return newFilter[uint16](bld, keys)
}
