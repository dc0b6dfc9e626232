package xf8

const (
	mixA = 0xc6629b183fbdc9a7
	mixB = 0xc029435c0845c0b3
)

// mixer is a multiply-xorshift avalanche. A seed picks the hash family
// by offsetting the input, so one pair of multipliers serves every seed.
type mixer struct {
	a, b uint64
}

var defaultMixer = mixer{a: mixA, b: mixB}

func (m *mixer) hash(x uint64) uint64 {
	x ^= x >> 32
	x *= m.a
	x ^= x >> 32
	x *= m.b
	x ^= x >> 32
	return x
}

func (filter *XorFilterCommon) hashFamily() *mixer {
	if filter.family == nil {
		return &defaultMixer
	}
	return filter.family
}

// indices returns the slot of key in each of the three partitions under
// the hash family selected by seed.
func (filter *XorFilterCommon) indices(key uint64, seed uint32) [3]uint64 {
	m := filter.hashFamily()
	n := filter.BlockLength
	key += uint64(seed) * 3
	return [3]uint64{
		m.hash(key)%n + 0*n,
		m.hash(key+1)%n + 1*n,
		m.hash(key+2)%n + 2*n,
	}
}
