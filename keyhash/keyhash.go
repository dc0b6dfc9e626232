// Package keyhash turns application keys into the 64-bit fingerprints an
// xf8 filter is built from.
//
// A filter never sees the original keys, so the same Hasher with the same
// key must be used to build a filter and to query it.
package keyhash

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// DefaultKey seeds the hashers when no key is configured.
const DefaultKey = 0x648aaecaca11a629

// Hasher maps a key to a 64-bit fingerprint.
type Hasher interface {
	Sum64(data []byte) uint64
}

// Func adapts a function to Hasher.
type Func func(data []byte) uint64

func (fn Func) Sum64(data []byte) uint64 {
	return fn(data)
}

// Multiply is a byte-at-a-time multiplicative hash. It is small and has
// no dependencies, which makes it easy to reproduce in other tools.
func Multiply(key uint64) Hasher {
	return Func(func(data []byte) uint64 {
		h := key
		for _, b := range data {
			h ^= uint64(b)
			h *= 0x25b751109e05be63
		}
		h ^= h >> 32
		h *= 0x2330e1453ed4b9b9
		return h
	})
}

func XXH3(key uint64) Hasher {
	return Func(func(data []byte) uint64 {
		return xxh3.HashSeed(data, key)
	})
}

// XXHash feeds key ahead of the data since xxhash.Digest is unseeded.
func XXHash(key uint64) Hasher {
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], key)
	return Func(func(data []byte) uint64 {
		d := xxhash.New()
		d.Write(prefix[:])
		d.Write(data)
		return d.Sum64()
	})
}

// Murmur3 folds key to the 32-bit murmur seed.
func Murmur3(key uint64) Hasher {
	seed := uint32(key ^ key>>32)
	return Func(func(data []byte) uint64 {
		return murmur3.Sum64WithSeed(data, seed)
	})
}

// SipHash is keyed with key and its 32-bit rotation. Prefer it when the
// keys come from an untrusted source.
func SipHash(key uint64) Hasher {
	k1 := bits.RotateLeft64(key, 32)
	return Func(func(data []byte) uint64 {
		return siphash.Hash(key, k1, data)
	})
}

var hashers = map[string]func(key uint64) Hasher{
	"multiply": Multiply,
	"xxh3":     XXH3,
	"xxhash":   XXHash,
	"murmur3":  Murmur3,
	"siphash":  SipHash,
}

// ByName returns the hasher registered as name, keyed with key.
func ByName(name string, key uint64) (Hasher, error) {
	newHasher, ok := hashers[name]
	if !ok {
		return nil, fmt.Errorf("keyhash: unknown hasher %q (want one of %v)", name, Names())
	}
	return newHasher(key), nil
}

// Names lists the registered hashers in sorted order.
func Names() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Fingerprints hashes every key.
func Fingerprints(h Hasher, keys [][]byte) []uint64 {
	out := make([]uint64, len(keys))
	for i, k := range keys {
		out[i] = h.Sum64(k)
	}
	return out
}

// Unique sorts fingerprints and drops repeats in place, returning the
// shortened slice. Filters must be populated with distinct fingerprints.
func Unique(fingerprints []uint64) []uint64 {
	slices.Sort(fingerprints)
	return slices.Compact(fingerprints)
}
