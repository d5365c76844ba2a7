package binlayout

import "github.com/pkg/errors"

// Field is one field's metadata within a layout: its declared type, its
// byte offset, and its fixed size. Fields are created by layout
// construction and never change afterwards.
//
// Field also carries the stateless accessor API: every typed operation
// takes the full buffer and works directly on the field's byte range,
// with no per-access state.
type Field struct {
	name   string
	typ    FieldType
	endian Endianness
	offset int
	size   int // -1 for open bytes
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// Type returns the field's declared type.
func (f *Field) Type() FieldType { return f.typ }

// Offset returns the field's byte offset within the layout.
func (f *Field) Offset() int { return f.offset }

// Size returns the field's fixed byte size. ok is false for an open
// bytes field; use SizeIn for its size against a concrete buffer.
func (f *Field) Size() (size int, ok bool) {
	if f.size < 0 {
		return 0, false
	}
	return f.size, true
}

// SizeIn returns the field's size against a buffer of length buflen.
// For an open bytes field this is buflen - offset.
func (f *Field) SizeIn(buflen int) (int, error) {
	if f.size >= 0 {
		return f.size, nil
	}
	if buflen < f.offset {
		return 0, errors.Wrapf(ErrOutOfBounds,
			"field %s at offset %d, buffer length %d", f.name, f.offset, buflen)
	}
	return buflen - f.offset, nil
}

// slice bounds-checks buf against the field's byte range and returns the
// sub-slice buf[offset:offset+size] (buf[offset:] for open bytes). The
// returned slice aliases buf.
func (f *Field) slice(buf []byte) ([]byte, error) {
	if f.size < 0 {
		if len(buf) < f.offset {
			return nil, errors.Wrapf(ErrOutOfBounds,
				"field %s at offset %d, buffer length %d", f.name, f.offset, len(buf))
		}
		return buf[f.offset:], nil
	}
	end := f.offset + f.size
	if len(buf) < end {
		return nil, errors.Wrapf(ErrOutOfBounds,
			"field %s spans [%d, %d), buffer length %d", f.name, f.offset, end, len(buf))
	}
	return buf[f.offset:end], nil
}

// checkInt verifies the field is an integer of the given width and
// signedness before a typed access touches the buffer.
func (f *Field) checkInt(width int, signed bool) error {
	if f.typ.Kind != KindInteger || f.typ.Width != width || f.typ.Signed != signed {
		return errors.Wrapf(ErrTypeMismatch,
			"field %s is %s, not %s", f.name, f.typ,
			FieldType{Kind: KindInteger, Width: width, Signed: signed})
	}
	return nil
}

func (f *Field) intSlice(buf []byte, width int, signed bool) ([]byte, error) {
	if err := f.checkInt(width, signed); err != nil {
		return nil, err
	}
	return f.slice(buf)
}

// Uint8 reads the field from buf. The field must be declared u8.
func (f *Field) Uint8(buf []byte) (uint8, error) {
	b, err := f.intSlice(buf, 1, false)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads the field from buf. The field must be declared u16.
func (f *Field) Uint16(buf []byte) (uint16, error) {
	b, err := f.intSlice(buf, 2, false)
	if err != nil {
		return 0, err
	}
	return f.endian.Order().Uint16(b), nil
}

// Uint32 reads the field from buf. The field must be declared u32.
func (f *Field) Uint32(buf []byte) (uint32, error) {
	b, err := f.intSlice(buf, 4, false)
	if err != nil {
		return 0, err
	}
	return f.endian.Order().Uint32(b), nil
}

// Uint64 reads the field from buf. The field must be declared u64.
func (f *Field) Uint64(buf []byte) (uint64, error) {
	b, err := f.intSlice(buf, 8, false)
	if err != nil {
		return 0, err
	}
	return f.endian.Order().Uint64(b), nil
}

// Uint128 reads the field from buf. The field must be declared u128.
func (f *Field) Uint128(buf []byte) (U128, error) {
	b, err := f.intSlice(buf, 16, false)
	if err != nil {
		return U128{}, err
	}
	return getU128(f.endian, b), nil
}

// Int8 reads the field from buf. The field must be declared i8.
func (f *Field) Int8(buf []byte) (int8, error) {
	b, err := f.intSlice(buf, 1, true)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// Int16 reads the field from buf. The field must be declared i16.
func (f *Field) Int16(buf []byte) (int16, error) {
	b, err := f.intSlice(buf, 2, true)
	if err != nil {
		return 0, err
	}
	return int16(f.endian.Order().Uint16(b)), nil
}

// Int32 reads the field from buf. The field must be declared i32.
func (f *Field) Int32(buf []byte) (int32, error) {
	b, err := f.intSlice(buf, 4, true)
	if err != nil {
		return 0, err
	}
	return int32(f.endian.Order().Uint32(b)), nil
}

// Int64 reads the field from buf. The field must be declared i64.
func (f *Field) Int64(buf []byte) (int64, error) {
	b, err := f.intSlice(buf, 8, true)
	if err != nil {
		return 0, err
	}
	return int64(f.endian.Order().Uint64(b)), nil
}

// Int128 reads the field from buf. The field must be declared i128.
func (f *Field) Int128(buf []byte) (I128, error) {
	b, err := f.intSlice(buf, 16, true)
	if err != nil {
		return I128{}, err
	}
	return getI128(f.endian, b), nil
}

// PutUint8 writes v into buf. The field must be declared u8.
func (f *Field) PutUint8(buf []byte, v uint8) error {
	b, err := f.intSlice(buf, 1, false)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// PutUint16 writes v into buf. The field must be declared u16.
func (f *Field) PutUint16(buf []byte, v uint16) error {
	b, err := f.intSlice(buf, 2, false)
	if err != nil {
		return err
	}
	f.endian.Order().PutUint16(b, v)
	return nil
}

// PutUint32 writes v into buf. The field must be declared u32.
func (f *Field) PutUint32(buf []byte, v uint32) error {
	b, err := f.intSlice(buf, 4, false)
	if err != nil {
		return err
	}
	f.endian.Order().PutUint32(b, v)
	return nil
}

// PutUint64 writes v into buf. The field must be declared u64.
func (f *Field) PutUint64(buf []byte, v uint64) error {
	b, err := f.intSlice(buf, 8, false)
	if err != nil {
		return err
	}
	f.endian.Order().PutUint64(b, v)
	return nil
}

// PutUint128 writes v into buf. The field must be declared u128.
func (f *Field) PutUint128(buf []byte, v U128) error {
	b, err := f.intSlice(buf, 16, false)
	if err != nil {
		return err
	}
	putU128(f.endian, b, v)
	return nil
}

// PutInt8 writes v into buf. The field must be declared i8.
func (f *Field) PutInt8(buf []byte, v int8) error {
	b, err := f.intSlice(buf, 1, true)
	if err != nil {
		return err
	}
	b[0] = uint8(v)
	return nil
}

// PutInt16 writes v into buf. The field must be declared i16.
func (f *Field) PutInt16(buf []byte, v int16) error {
	b, err := f.intSlice(buf, 2, true)
	if err != nil {
		return err
	}
	f.endian.Order().PutUint16(b, uint16(v))
	return nil
}

// PutInt32 writes v into buf. The field must be declared i32.
func (f *Field) PutInt32(buf []byte, v int32) error {
	b, err := f.intSlice(buf, 4, true)
	if err != nil {
		return err
	}
	f.endian.Order().PutUint32(b, uint32(v))
	return nil
}

// PutInt64 writes v into buf. The field must be declared i64.
func (f *Field) PutInt64(buf []byte, v int64) error {
	b, err := f.intSlice(buf, 8, true)
	if err != nil {
		return err
	}
	f.endian.Order().PutUint64(b, uint64(v))
	return nil
}

// PutInt128 writes v into buf. The field must be declared i128.
func (f *Field) PutInt128(buf []byte, v I128) error {
	b, err := f.intSlice(buf, 16, true)
	if err != nil {
		return err
	}
	putI128(f.endian, b, v)
	return nil
}

// Bytes returns the field's byte range within buf. The slice aliases
// buf; mutations through it are visible to every other accessor of the
// same buffer. For an open bytes field the slice runs to the end of buf.
func (f *Field) Bytes(buf []byte) ([]byte, error) {
	return f.slice(buf)
}

// PutBytes copies src into the field's byte range within buf. For a
// fixed-size field (fixed bytes or integer) src must match the field's
// size exactly; for an open bytes field src must fit in the remaining
// buffer.
func (f *Field) PutBytes(buf, src []byte) error {
	dst, err := f.slice(buf)
	if err != nil {
		return err
	}
	if f.size >= 0 {
		if len(src) != f.size {
			return errors.Wrapf(ErrSizeMismatch,
				"field %s is %d bytes, source is %d", f.name, f.size, len(src))
		}
	} else if len(src) > len(dst) {
		return errors.Wrapf(ErrOutOfBounds,
			"field %s has %d bytes remaining, source is %d", f.name, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}
