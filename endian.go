// Package binlayout describes fixed binary record formats and reads or
// writes their fields directly against an in-memory byte buffer.
//
// A Layout is an ordered list of named, typed fields with a byte order.
// Field offsets are computed once, at definition time, by a single
// left-to-right scan. A View pairs a Layout with a Storage buffer and
// hands out per-field accessors that operate on the buffer in place,
// without copying.
package binlayout

import (
	"encoding/binary"
	"fmt"
)

// Endianness selects the byte order used for every integer field of a
// layout.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("Endianness(%d)", int(e))
	}
}

// Order returns the encoding/binary codec for this byte order.
func (e Endianness) Order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseEndianness converts "little" or "big" to an Endianness.
func ParseEndianness(s string) (Endianness, error) {
	switch s {
	case "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	default:
		return 0, fmt.Errorf("endian must be 'little' or 'big', got: %s", s)
	}
}
