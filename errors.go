package binlayout

import "github.com/pkg/errors"

// Definition errors are reported when a layout is constructed; a layout
// with any definition error is never created. Access errors are reported
// by the individual read/write operation that hit them.
var (
	// ErrDuplicateField reports a field name that appears twice in a
	// layout definition.
	ErrDuplicateField = errors.New("binlayout: duplicate field name")

	// ErrOpenFieldNotLast reports an open (unbounded) byte field declared
	// anywhere but the last position of a layout.
	ErrOpenFieldNotLast = errors.New("binlayout: open byte field must be the last field")

	// ErrOutOfBounds reports a buffer shorter than the byte range of the
	// field being accessed.
	ErrOutOfBounds = errors.New("binlayout: buffer too short for field")

	// ErrTypeMismatch reports a typed read or write whose width or
	// signedness does not match the field's declared type, or a numeric
	// access on a byte field.
	ErrTypeMismatch = errors.New("binlayout: access does not match declared field type")

	// ErrReadOnly reports a mutable access through read-only storage.
	ErrReadOnly = errors.New("binlayout: storage is read-only")

	// ErrConsumed reports any use of a view or field view after it was
	// consumed by IntoStorage, IntoField, or Extract.
	ErrConsumed = errors.New("binlayout: view already consumed")

	// ErrUnknownField reports a field name not present in the layout.
	ErrUnknownField = errors.New("binlayout: no such field")

	// ErrSizeMismatch reports a byte write whose source length differs
	// from the fixed field's declared length.
	ErrSizeMismatch = errors.New("binlayout: source length does not match field size")
)
