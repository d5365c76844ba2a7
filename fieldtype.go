package binlayout

import "fmt"

// Kind discriminates the three shapes a field can have.
type Kind int

const (
	// KindInteger is a fixed-width two's-complement integer.
	KindInteger Kind = iota
	// KindFixedBytes is a fixed-length opaque byte array.
	KindFixedBytes
	// KindOpenBytes is an unbounded trailing byte region whose size is
	// the remaining buffer length. Valid only as the last field.
	KindOpenBytes
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFixedBytes:
		return "fixed bytes"
	case KindOpenBytes:
		return "open bytes"
	default:
		return "unknown"
	}
}

// FieldType describes one field's shape. Integer widths are 1, 2, 4, 8,
// or 16 bytes. FixedBytes and OpenBytes have no numeric codec; they are
// accessed as raw byte slices only.
type FieldType struct {
	Kind   Kind
	Width  int  // integer width in bytes
	Signed bool // integers only
	Length int  // fixed-bytes length
}

// Supported integer field types.
var (
	Uint8Type   = FieldType{Kind: KindInteger, Width: 1}
	Uint16Type  = FieldType{Kind: KindInteger, Width: 2}
	Uint32Type  = FieldType{Kind: KindInteger, Width: 4}
	Uint64Type  = FieldType{Kind: KindInteger, Width: 8}
	Uint128Type = FieldType{Kind: KindInteger, Width: 16}
	Int8Type    = FieldType{Kind: KindInteger, Width: 1, Signed: true}
	Int16Type   = FieldType{Kind: KindInteger, Width: 2, Signed: true}
	Int32Type   = FieldType{Kind: KindInteger, Width: 4, Signed: true}
	Int64Type   = FieldType{Kind: KindInteger, Width: 8, Signed: true}
	Int128Type  = FieldType{Kind: KindInteger, Width: 16, Signed: true}
)

// OpenBytesType is the unbounded trailing byte region type.
var OpenBytesType = FieldType{Kind: KindOpenBytes}

// FixedBytesType returns the type of an opaque byte array of n bytes.
func FixedBytesType(n int) FieldType {
	return FieldType{Kind: KindFixedBytes, Length: n}
}

// Size returns the fixed byte size of the type. ok is false for
// OpenBytes, whose size is known only against a concrete buffer.
func (t FieldType) Size() (size int, ok bool) {
	switch t.Kind {
	case KindInteger:
		return t.Width, true
	case KindFixedBytes:
		return t.Length, true
	default:
		return 0, false
	}
}

// Valid reports whether the type is well-formed: a supported integer
// width, a non-negative fixed length, or open bytes.
func (t FieldType) Valid() bool {
	switch t.Kind {
	case KindInteger:
		switch t.Width {
		case 1, 2, 4, 8, 16:
			return true
		}
		return false
	case KindFixedBytes:
		return t.Length >= 0
	case KindOpenBytes:
		return true
	default:
		return false
	}
}

func (t FieldType) String() string {
	switch t.Kind {
	case KindInteger:
		if t.Signed {
			return fmt.Sprintf("i%d", t.Width*8)
		}
		return fmt.Sprintf("u%d", t.Width*8)
	case KindFixedBytes:
		return fmt.Sprintf("bytes[%d]", t.Length)
	case KindOpenBytes:
		return "bytes"
	default:
		return "unknown"
	}
}
