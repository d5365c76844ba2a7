package binlayout

// AccessMode is the contract under which a view holds its buffer.
type AccessMode int

const (
	// ModeReadonly is a shared read-only reference. Any number of
	// concurrent read-only views over the same buffer are safe.
	ModeReadonly AccessMode = iota
	// ModeWritable is an exclusive mutable reference. The caller must
	// ensure no other accessor touches the buffer for the storage's
	// lifetime; this is a contract, not a runtime check.
	ModeWritable
	// ModeOwned transfers the buffer to the view. The buffer comes back
	// out through IntoStorage or stays reachable through an extracted
	// field slice.
	ModeOwned
)

func (m AccessMode) String() string {
	switch m {
	case ModeReadonly:
		return "readonly"
	case ModeWritable:
		return "writable"
	case ModeOwned:
		return "owned"
	default:
		return "unknown"
	}
}

// Storage is the byte buffer a view operates over, tagged with its
// access mode. Storage never copies the buffer.
//
// Go cannot enforce reference exclusivity at compile time, so the
// writable and owned modes carry a caller obligation: while a writable
// or owned view is alive, it must be the buffer's sole accessor.
// Violating that is unchecked and yields torn reads, exactly as with
// any other aliased slice.
type Storage struct {
	buf  []byte
	mode AccessMode
}

// Readonly wraps buf as shared read-only storage.
func Readonly(buf []byte) Storage {
	return Storage{buf: buf, mode: ModeReadonly}
}

// Writable wraps buf as exclusive mutable storage.
func Writable(buf []byte) Storage {
	return Storage{buf: buf, mode: ModeWritable}
}

// Owned wraps buf as storage owned by the view.
func Owned(buf []byte) Storage {
	return Storage{buf: buf, mode: ModeOwned}
}

// Bytes returns the underlying buffer.
func (s Storage) Bytes() []byte { return s.buf }

// Len returns the buffer length.
func (s Storage) Len() int { return len(s.buf) }

// Mode returns the access mode.
func (s Storage) Mode() AccessMode { return s.mode }

// CanWrite reports whether the mode admits mutation.
func (s Storage) CanWrite() bool { return s.mode != ModeReadonly }
