package xf8_test

import (
	"bytes"
	"fmt"

	"github.com/brianolson/xf8"
	"github.com/brianolson/xf8/keyhash"
)

// This example builds a filter from three words and checks them.
func Example() {
	h := keyhash.XXH3(keyhash.DefaultKey)
	words := [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}

	filter, err := xf8.Create[uint8](len(words))
	if err != nil {
		panic(err)
	}
	if err := filter.Populate(keyhash.Fingerprints(h, words)); err != nil {
		panic(err)
	}

	for _, w := range words {
		fmt.Printf("%s: %v\n", w, filter.Contains(h.Sum64(w)))
	}
	fmt.Printf("false positive rate: %.4f\n", filter.FalsePositiveRate())

	// Output:
	// apple: true
	// banana: true
	// cherry: true
	// false positive rate: 0.0039
}

// This example saves a filter and loads it back.
func Example_persistence() {
	h := keyhash.Multiply(keyhash.DefaultKey)
	words := [][]byte{[]byte("red"), []byte("green"), []byte("blue")}

	filter, err := xf8.Populate16(keyhash.Fingerprints(h, words))
	if err != nil {
		panic(err)
	}
	var buf bytes.Buffer
	if _, err := filter.WriteTo(&buf); err != nil {
		panic(err)
	}
	fmt.Println("bytes:", buf.Len())

	var loaded xf8.Xor16
	if _, err := loaded.ReadFrom(&buf); err != nil {
		panic(err)
	}
	fmt.Println("green:", loaded.Contains(h.Sum64([]byte("green"))))

	// Output:
	// bytes: 77
	// green: true
}
