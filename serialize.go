package xf8

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// headerSize covers the little-endian uint32 count and the seed byte.
const headerSize = 5

func (filter *Filter[T]) header() ([headerSize]byte, error) {
	var h [headerSize]byte
	if filter.Count > math.MaxUint32 {
		return h, fmt.Errorf("%w: %d elements do not fit the header", ErrCountOverflow, filter.Count)
	}
	if filter.Seed > math.MaxUint8 {
		return h, fmt.Errorf("%w: %d", ErrSeedOverflow, filter.Seed)
	}
	binary.LittleEndian.PutUint32(h[:4], uint32(filter.Count))
	h[4] = uint8(filter.Seed)
	return h, nil
}

// MarshalBinary serializes the filter:
//   - Count (4 bytes, little-endian)
//   - Seed (1 byte)
//   - Slots (each little-endian)
//
// The slot count is not stored; it is derived from Count on read.
func (filter *Filter[T]) MarshalBinary() ([]byte, error) {
	h, err := filter.header()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, headerSize+len(filter.Slots)*slotBits[T]()/8)
	buf = append(buf, h[:]...)
	return binary.Append(buf, binary.LittleEndian, filter.Slots)
}

// UnmarshalBinary replaces the filter with the one serialized in data.
func (filter *Filter[T]) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: data too short (got %d bytes, need at least %d)", ErrInvalidData, len(data), headerSize)
	}
	length, err := Length(uint64(binary.LittleEndian.Uint32(data)))
	if err != nil {
		return err
	}
	if want := uint64(headerSize) + length*uint64(slotBits[T]()/8); uint64(len(data)) != want {
		return fmt.Errorf("%w: data length mismatch (got %d bytes, expected %d)", ErrInvalidData, len(data), want)
	}
	_, err = filter.ReadFrom(bytes.NewReader(data))
	return err
}

// WriteTo writes the binary form of the filter to w.
func (filter *Filter[T]) WriteTo(w io.Writer) (int64, error) {
	buf, err := filter.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrom replaces the filter with one read from r. It reads exactly
// the header and the slots the header implies.
func (filter *Filter[T]) ReadFrom(r io.Reader) (int64, error) {
	var h [headerSize]byte
	n, err := io.ReadFull(r, h[:])
	if err != nil {
		return int64(n), fmt.Errorf("%w: header: %w", ErrInvalidData, err)
	}
	read, err := create[T](uint64(binary.LittleEndian.Uint32(h[:4])))
	if err != nil {
		return int64(n), err
	}
	read.Seed = uint32(h[4])
	if err := binary.Read(r, binary.LittleEndian, read.Slots); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return int64(n), fmt.Errorf("%w: slots: %w", ErrInvalidData, err)
	}
	*filter = *read
	return int64(n) + int64(len(read.Slots)*slotBits[T]()/8), nil
}
