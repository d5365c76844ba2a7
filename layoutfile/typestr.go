package layoutfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avreth/binlayout"
)

// ParseType parses a field type string.
//
// Semantics:
//   - "u8" / "u16" / "u32" / "u64" / "u128" : unsigned integer
//   - "i8" / "i16" / "i32" / "i64" / "i128" : signed integer
//   - "bytes[N]"                            : fixed byte array of N bytes
//   - "bytes"                               : open trailing byte region
//
// Examples:
//
//	"u16"      → 2-byte unsigned integer
//	"i64"      → 8-byte signed integer
//	"bytes[4]" → 4-byte opaque array
//	"bytes"    → open region matching the rest of the buffer
func ParseType(s string) (binlayout.FieldType, error) {
	switch s {
	case "":
		return binlayout.FieldType{}, fmt.Errorf("empty type")
	case "u8":
		return binlayout.Uint8Type, nil
	case "u16":
		return binlayout.Uint16Type, nil
	case "u32":
		return binlayout.Uint32Type, nil
	case "u64":
		return binlayout.Uint64Type, nil
	case "u128":
		return binlayout.Uint128Type, nil
	case "i8":
		return binlayout.Int8Type, nil
	case "i16":
		return binlayout.Int16Type, nil
	case "i32":
		return binlayout.Int32Type, nil
	case "i64":
		return binlayout.Int64Type, nil
	case "i128":
		return binlayout.Int128Type, nil
	case "bytes":
		return binlayout.OpenBytesType, nil
	}

	// Fixed byte array: bytes[N]
	if strings.HasPrefix(s, "bytes[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "bytes["), "]")
		n, err := strconv.Atoi(inner)
		if err != nil {
			return binlayout.FieldType{}, fmt.Errorf("invalid byte array length: %s", inner)
		}
		if n < 0 {
			return binlayout.FieldType{}, fmt.Errorf("byte array length must be non-negative, got: %d", n)
		}
		return binlayout.FixedBytesType(n), nil
	}

	return binlayout.FieldType{}, fmt.Errorf("unknown type: %s", s)
}

// FormatType renders a field type in the same notation ParseType reads.
func FormatType(t binlayout.FieldType) string {
	return t.String()
}
