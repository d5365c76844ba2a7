package binlayout

import "github.com/pkg/errors"

// FieldSpec is one entry of a layout definition: a name and a type, in
// declaration order.
type FieldSpec struct {
	Name string
	Type FieldType
}

// F is shorthand for a FieldSpec.
func F(name string, typ FieldType) FieldSpec {
	return FieldSpec{Name: name, Type: typ}
}

// Layout is a named, ordered, byte-order-tagged list of fields
// describing a fixed binary record shape. Offsets are assigned by a
// single left-to-right scan at construction. A Layout is immutable and
// may be shared by any number of views.
type Layout struct {
	name    string
	endian  Endianness
	fields  []Field
	byName  map[string]int
	minSize int
	open    bool
}

// New computes a layout from an ordered field list. Construction is
// all-or-nothing: a duplicate field name, an open bytes field anywhere
// but last, or a malformed field type rejects the whole layout.
func New(name string, endian Endianness, fields []FieldSpec) (*Layout, error) {
	l := &Layout{
		name:   name,
		endian: endian,
		fields: make([]Field, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}

	offset := 0
	for i, spec := range fields {
		if !spec.Type.Valid() {
			return nil, errors.Errorf("binlayout: field %s has invalid type %s", spec.Name, spec.Type)
		}
		if _, ok := l.byName[spec.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateField, "%s", spec.Name)
		}
		if l.open {
			// A previous field was open bytes, so it was not last.
			return nil, errors.Wrapf(ErrOpenFieldNotLast, "%s", fields[i-1].Name)
		}

		f := Field{
			name:   spec.Name,
			typ:    spec.Type,
			endian: endian,
			offset: offset,
			size:   -1,
		}
		if size, ok := spec.Type.Size(); ok {
			f.size = size
			offset += size
		} else {
			l.open = true
		}

		l.byName[spec.Name] = len(l.fields)
		l.fields = append(l.fields, f)
	}
	l.minSize = offset

	return l, nil
}

// Must returns l or panics if err is non-nil. Intended for layouts
// defined as package-level variables and for generated code, where a
// definition error is a programming error.
func Must(l *Layout, err error) *Layout {
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the layout's name.
func (l *Layout) Name() string { return l.name }

// Endianness returns the byte order used by every integer field.
func (l *Layout) Endianness() Endianness { return l.endian }

// NumFields returns the number of fields.
func (l *Layout) NumFields() int { return len(l.fields) }

// FieldAt returns the i-th field in declaration order.
func (l *Layout) FieldAt(i int) *Field { return &l.fields[i] }

// FieldByName returns the named field, or ok=false if the layout has no
// field with that name.
func (l *Layout) FieldByName(name string) (*Field, bool) {
	i, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return &l.fields[i], true
}

// MinSize returns the sum of all fixed field sizes: the minimum buffer
// length a view over this layout can fully address. A layout with a
// trailing open bytes field accepts any buffer of at least this length.
func (l *Layout) MinSize() int { return l.minSize }

// HasOpenField reports whether the last field is an open bytes field.
func (l *Layout) HasOpenField() bool { return l.open }

// Builder accumulates a field list for a layout. Errors are deferred to
// Build, so definitions read as a single chain:
//
//	l, err := binlayout.NewBuilder("icmp_packet", binlayout.BigEndian).
//		Uint8("packet_type").
//		Uint8("code").
//		Uint16("checksum").
//		FixedBytes("rest_of_header", 4).
//		OpenBytes("data_section").
//		Build()
type Builder struct {
	name   string
	endian Endianness
	fields []FieldSpec
}

// NewBuilder starts a layout definition.
func NewBuilder(name string, endian Endianness) *Builder {
	return &Builder{name: name, endian: endian}
}

// Field appends a field with an explicit type.
func (b *Builder) Field(name string, typ FieldType) *Builder {
	b.fields = append(b.fields, FieldSpec{Name: name, Type: typ})
	return b
}

func (b *Builder) Uint8(name string) *Builder   { return b.Field(name, Uint8Type) }
func (b *Builder) Uint16(name string) *Builder  { return b.Field(name, Uint16Type) }
func (b *Builder) Uint32(name string) *Builder  { return b.Field(name, Uint32Type) }
func (b *Builder) Uint64(name string) *Builder  { return b.Field(name, Uint64Type) }
func (b *Builder) Uint128(name string) *Builder { return b.Field(name, Uint128Type) }
func (b *Builder) Int8(name string) *Builder    { return b.Field(name, Int8Type) }
func (b *Builder) Int16(name string) *Builder   { return b.Field(name, Int16Type) }
func (b *Builder) Int32(name string) *Builder   { return b.Field(name, Int32Type) }
func (b *Builder) Int64(name string) *Builder   { return b.Field(name, Int64Type) }
func (b *Builder) Int128(name string) *Builder  { return b.Field(name, Int128Type) }

// FixedBytes appends an opaque byte array field of n bytes.
func (b *Builder) FixedBytes(name string, n int) *Builder {
	return b.Field(name, FixedBytesType(n))
}

// OpenBytes appends the unbounded trailing byte field. Build fails if
// any field follows it.
func (b *Builder) OpenBytes(name string) *Builder {
	return b.Field(name, OpenBytesType)
}

// Build computes the layout.
func (b *Builder) Build() (*Layout, error) {
	return New(b.name, b.endian, b.fields)
}

// MustBuild computes the layout and panics on a definition error.
func (b *Builder) MustBuild() *Layout {
	return Must(b.Build())
}
