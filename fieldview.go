package binlayout

import "github.com/pkg/errors"

// FieldView is a handle scoped to one field's byte range within a
// view's storage. It carries the access mode of the accessor it came
// from: View.Field yields a read-only handle, View.FieldMut a mutable
// one, and View.IntoField a handle holding the storage itself.
//
// FieldView is short-lived: obtain it, perform the access, let it go.
// Extract consumes it; a consumed field view rejects all further use.
type FieldView struct {
	storage  Storage
	field    *Field
	consumed bool
}

// Field returns the field's metadata.
func (fv *FieldView) Field() *Field { return fv.field }

func (fv *FieldView) buf() ([]byte, error) {
	if fv.consumed {
		return nil, errors.Wrapf(ErrConsumed, "field %s", fv.field.name)
	}
	return fv.storage.buf, nil
}

func (fv *FieldView) bufMut() ([]byte, error) {
	if fv.consumed {
		return nil, errors.Wrapf(ErrConsumed, "field %s", fv.field.name)
	}
	if !fv.storage.CanWrite() {
		return nil, errors.Wrapf(ErrReadOnly, "field %s", fv.field.name)
	}
	return fv.storage.buf, nil
}

// Uint8 decodes the field. The field must be declared u8.
func (fv *FieldView) Uint8() (uint8, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Uint8(buf)
}

// Uint16 decodes the field. The field must be declared u16.
func (fv *FieldView) Uint16() (uint16, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Uint16(buf)
}

// Uint32 decodes the field. The field must be declared u32.
func (fv *FieldView) Uint32() (uint32, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Uint32(buf)
}

// Uint64 decodes the field. The field must be declared u64.
func (fv *FieldView) Uint64() (uint64, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Uint64(buf)
}

// Uint128 decodes the field. The field must be declared u128.
func (fv *FieldView) Uint128() (U128, error) {
	buf, err := fv.buf()
	if err != nil {
		return U128{}, err
	}
	return fv.field.Uint128(buf)
}

// Int8 decodes the field. The field must be declared i8.
func (fv *FieldView) Int8() (int8, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Int8(buf)
}

// Int16 decodes the field. The field must be declared i16.
func (fv *FieldView) Int16() (int16, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Int16(buf)
}

// Int32 decodes the field. The field must be declared i32.
func (fv *FieldView) Int32() (int32, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Int32(buf)
}

// Int64 decodes the field. The field must be declared i64.
func (fv *FieldView) Int64() (int64, error) {
	buf, err := fv.buf()
	if err != nil {
		return 0, err
	}
	return fv.field.Int64(buf)
}

// Int128 decodes the field. The field must be declared i128.
func (fv *FieldView) Int128() (I128, error) {
	buf, err := fv.buf()
	if err != nil {
		return I128{}, err
	}
	return fv.field.Int128(buf)
}

// PutUint8 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutUint8(v uint8) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutUint8(buf, v)
}

// PutUint16 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutUint16(v uint16) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutUint16(buf, v)
}

// PutUint32 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutUint32(v uint32) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutUint32(buf, v)
}

// PutUint64 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutUint64(v uint64) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutUint64(buf, v)
}

// PutUint128 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutUint128(v U128) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutUint128(buf, v)
}

// PutInt8 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutInt8(v int8) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutInt8(buf, v)
}

// PutInt16 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutInt16(v int16) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutInt16(buf, v)
}

// PutInt32 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutInt32(v int32) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutInt32(buf, v)
}

// PutInt64 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutInt64(v int64) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutInt64(buf, v)
}

// PutInt128 encodes v into the field. Requires mutable access.
func (fv *FieldView) PutInt128(v I128) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutInt128(buf, v)
}

// Data returns the field's byte range. The slice aliases the storage
// buffer and must not be written through when the field view is
// read-only. For an open bytes field the slice length is the remaining
// buffer length at call time.
func (fv *FieldView) Data() ([]byte, error) {
	buf, err := fv.buf()
	if err != nil {
		return nil, err
	}
	return fv.field.Bytes(buf)
}

// DataMut returns the field's byte range for in-place mutation.
// Requires mutable access.
func (fv *FieldView) DataMut() ([]byte, error) {
	buf, err := fv.bufMut()
	if err != nil {
		return nil, err
	}
	return fv.field.Bytes(buf)
}

// SetData copies src into the field's byte range. A fixed-size field
// requires len(src) to match the field size exactly; an open bytes
// field accepts any src that fits in the remaining buffer. Requires
// mutable access.
func (fv *FieldView) SetData(src []byte) error {
	buf, err := fv.bufMut()
	if err != nil {
		return err
	}
	return fv.field.PutBytes(buf, src)
}

// Extract consumes the field view and returns the field's byte range
// as a standalone slice. The slice aliases the storage buffer, so it
// stays valid after the originating view and field view are gone: the
// buffer is kept reachable by the slice itself. This is the way to
// return field data out of a scope that tears the view down.
func (fv *FieldView) Extract() ([]byte, error) {
	buf, err := fv.buf()
	if err != nil {
		return nil, err
	}
	b, err := fv.field.Bytes(buf)
	if err != nil {
		return nil, err
	}
	fv.consumed = true
	return b, nil
}
