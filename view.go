package binlayout

import "github.com/pkg/errors"

// View pairs a layout with a concrete storage buffer and hands out
// per-field accessors. Creating a view never copies or validates the
// buffer; bounds are checked by each field access, so a short buffer
// fails on the field that overruns it rather than at construction.
//
// A view is consumed by IntoStorage or IntoField. Every operation on a
// consumed view fails with ErrConsumed.
type View struct {
	layout   *Layout
	storage  Storage
	consumed bool
}

// NewView attaches storage to the layout.
func (l *Layout) NewView(storage Storage) *View {
	return &View{layout: l, storage: storage}
}

// Layout returns the layout this view was created from.
func (v *View) Layout() *Layout { return v.layout }

func (v *View) lookup(name string) (*Field, error) {
	if v.consumed {
		return nil, errors.Wrapf(ErrConsumed, "layout %s", v.layout.name)
	}
	f, ok := v.layout.FieldByName(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownField, "layout %s has no field %s", v.layout.name, name)
	}
	return f, nil
}

// Field returns a read-only field view borrowing this view's storage.
// Any storage mode qualifies.
func (v *View) Field(name string) (*FieldView, error) {
	f, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	return &FieldView{
		storage: Readonly(v.storage.buf),
		field:   f,
	}, nil
}

// FieldMut returns a mutable field view borrowing this view's storage
// exclusively. The storage must be writable or owned; on read-only
// storage this fails with ErrReadOnly.
func (v *View) FieldMut(name string) (*FieldView, error) {
	f, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	if !v.storage.CanWrite() {
		return nil, errors.Wrapf(ErrReadOnly, "field %s", name)
	}
	return &FieldView{
		storage: Writable(v.storage.buf),
		field:   f,
	}, nil
}

// IntoField consumes the view and returns a field view that takes over
// the storage handle, carrying the same access mode the view had. The
// field view can outlive the view; it is the path to Extract, which
// returns the field's bytes decoupled from the view's lifetime.
func (v *View) IntoField(name string) (*FieldView, error) {
	f, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	v.consumed = true
	return &FieldView{
		storage: v.storage,
		field:   f,
	}, nil
}

// IntoStorage consumes the view and returns the storage unchanged,
// preserving any mutations made through field views.
func (v *View) IntoStorage() (Storage, error) {
	if v.consumed {
		return Storage{}, errors.Wrapf(ErrConsumed, "layout %s", v.layout.name)
	}
	v.consumed = true
	return v.storage, nil
}
