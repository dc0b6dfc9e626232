package xf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasic16(t *testing.T) {
	var bld Builder
	testPopulateN := func(keys []uint64, bits int) (Membership, error) {
		return bld.Populate16(keys)
	}
	_testBasicN(t, 16, testPopulateN)
}

func TestSlotWidths(t *testing.T) {
	keys := randomKeys(3000)
	f8, err := Populate(keys)
	require.NoError(t, err)
	f16, err := Populate16(keys)
	require.NoError(t, err)

	// Same sizing and hash family, so the widths only differ in how much
	// of each fingerprint they keep.
	assert.Equal(t, len(f8.Slots), len(f16.Slots))
	assert.Equal(t, 1.0/256, f8.FalsePositiveRate())
	assert.Equal(t, 1.0/65536, f16.FalsePositiveRate())
	assert.InDelta(t, 2*f8.BitsPerEntry(), f16.BitsPerEntry(), 1e-9)
	for _, k := range keys {
		assert.True(t, f16.Contains(k))
	}
}

func BenchmarkPopulate16b10000Builder(b *testing.B) {
	var bu Builder
	innerBenchmarkPopulate10000(b, func(keys []uint64) (Membership, error) {
		return bu.Populate16(keys)
	})
}

func BenchmarkContains16b10000(b *testing.B) {
	innerBenchmarkContains10000(b, func(keys []uint64) (Membership, error) {
		return Populate16(keys)
	})
}
