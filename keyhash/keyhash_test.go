package keyhash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"multiply", "murmur3", "siphash", "xxh3", "xxhash"}, Names())

	_, err := ByName("md5", DefaultKey)
	assert.ErrorContains(t, err, `unknown hasher "md5"`)
}

func TestHashers(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			h, err := ByName(name, DefaultKey)
			require.NoError(t, err)
			other, err := ByName(name, DefaultKey+1)
			require.NoError(t, err)

			seen := map[uint64]bool{}
			for i := 0; i < 10000; i++ {
				word := []byte(fmt.Sprintf("word-%d", i))
				fp := h.Sum64(word)
				assert.Equal(t, fp, h.Sum64(word), "not deterministic")
				assert.False(t, seen[fp], "collision at %s", word)
				seen[fp] = true
				if i < 100 {
					assert.NotEqual(t, fp, other.Sum64(word), "key ignored for %s", word)
				}
			}
		})
	}
}

func TestMultiplyEmpty(t *testing.T) {
	// With no data only the finalizer runs.
	h := uint64(DefaultKey)
	h ^= h >> 32
	h *= 0x2330e1453ed4b9b9
	assert.Equal(t, h, Multiply(DefaultKey).Sum64(nil))
}

func TestUnique(t *testing.T) {
	fps := []uint64{5, 3, 5, 1, 3, 3, 9}
	assert.Equal(t, []uint64{1, 3, 5, 9}, Unique(fps))
	assert.Empty(t, Unique(nil))
}

func TestFingerprints(t *testing.T) {
	h := XXH3(1)
	keys := [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}
	fps := Fingerprints(h, keys)
	require.Len(t, fps, 3)
	for i, k := range keys {
		assert.Equal(t, h.Sum64(k), fps[i])
	}
	assert.Len(t, Unique(fps), 3)
}
