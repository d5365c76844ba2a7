package example

import (
	"encoding/binary"
	"testing"

	"github.com/avreth/binlayout"
)

func TestIcmpPacketRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	view := NewIcmpPacketView(binlayout.Writable(buf))

	if err := view.SetPacketType(8); err != nil { // echo request
		t.Fatalf("SetPacketType failed: %v", err)
	}
	if err := view.SetCode(0); err != nil {
		t.Fatalf("SetCode failed: %v", err)
	}
	if err := view.SetChecksum(0x1234); err != nil {
		t.Fatalf("SetChecksum failed: %v", err)
	}
	if err := view.SetRestOfHeader([]byte{0, 1, 0, 42}); err != nil {
		t.Fatalf("SetRestOfHeader failed: %v", err)
	}
	payload := []byte("ping payload")
	if err := view.SetDataSection(payload); err != nil {
		t.Fatalf("SetDataSection failed: %v", err)
	}

	// Read back through the same view.
	pt, err := view.PacketType()
	if err != nil || pt != 8 {
		t.Errorf("PacketType: got (%d, %v), want 8", pt, err)
	}
	sum, err := view.Checksum()
	if err != nil || sum != 0x1234 {
		t.Errorf("Checksum: got (%#x, %v), want 0x1234", sum, err)
	}
	data, err := view.DataSection()
	if err != nil {
		t.Fatalf("DataSection failed: %v", err)
	}
	if len(data) != 64-IcmpPacketDataSectionOffset {
		t.Errorf("DataSection length: got %d, want %d", len(data), 64-IcmpPacketDataSectionOffset)
	}
	if string(data[:len(payload)]) != string(payload) {
		t.Errorf("DataSection: got %q", data[:len(payload)])
	}

	// The raw bytes follow the big-endian wire format at the generated
	// offsets.
	if buf[IcmpPacketPacketTypeOffset] != 8 {
		t.Errorf("raw packet_type: got %d", buf[IcmpPacketPacketTypeOffset])
	}
	if got := binary.BigEndian.Uint16(buf[IcmpPacketChecksumOffset:]); got != 0x1234 {
		t.Errorf("raw checksum: got %#x", got)
	}
}

func TestIcmpPacketReadonlyView(t *testing.T) {
	buf := make([]byte, IcmpPacketMinSize)
	buf[IcmpPacketCodeOffset] = 3
	binary.BigEndian.PutUint16(buf[IcmpPacketChecksumOffset:], 500)

	view := NewIcmpPacketView(binlayout.Readonly(buf))

	code, err := view.Code()
	if err != nil || code != 3 {
		t.Errorf("Code: got (%d, %v), want 3", code, err)
	}
	sum, err := view.Checksum()
	if err != nil || sum != 500 {
		t.Errorf("Checksum: got (%d, %v), want 500", sum, err)
	}

	// Writes are rejected on read-only storage.
	if err := view.SetCode(1); err == nil {
		t.Error("SetCode on read-only storage: expected error")
	}

	// Minimum-size packet has an empty data section.
	data, err := view.DataSection()
	if err != nil {
		t.Fatalf("DataSection failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("DataSection length: got %d, want 0", len(data))
	}
}

func TestIcmpPacketExtractDataSection(t *testing.T) {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = byte(i)
	}

	extracted := func() []byte {
		view := NewIcmpPacketView(binlayout.Readonly(buf))
		fv, err := view.IntoDataSection()
		if err != nil {
			t.Fatalf("IntoDataSection failed: %v", err)
		}
		b, err := fv.Extract()
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		return b
	}()

	if len(extracted) != 32-IcmpPacketDataSectionOffset {
		t.Fatalf("extracted length: got %d", len(extracted))
	}
	for i, b := range extracted {
		if b != byte(i+IcmpPacketDataSectionOffset) {
			t.Fatalf("extracted[%d]: got %d", i, b)
		}
	}
}

func TestIcmpPacketTooShort(t *testing.T) {
	view := NewIcmpPacketView(binlayout.Readonly(make([]byte, 3)))

	// Fields inside the short buffer still read.
	if _, err := view.Code(); err != nil {
		t.Errorf("Code on 3-byte buffer: %v", err)
	}
	// Fields past the end fail with a bounds error.
	if _, err := view.Checksum(); err == nil {
		t.Error("Checksum on 3-byte buffer: expected bounds error")
	}
	if _, err := view.DataSection(); err == nil {
		t.Error("DataSection on 3-byte buffer: expected bounds error")
	}
}
