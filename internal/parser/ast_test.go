package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avreth/binlayout"
)

func TestParseFileExtractsAnnotatedStructs(t *testing.T) {
	layouts, err := ParseFile("testdata/simple.go")
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(layouts) != 2 {
		t.Fatalf("expected 2 layouts, got %d", len(layouts))
	}

	icmp := layouts[0]
	if icmp.Name() != "icmp_packet" {
		t.Errorf("name: expected icmp_packet, got %q", icmp.Name())
	}
	if icmp.Endianness() != binlayout.BigEndian {
		t.Errorf("endianness: expected big, got %v", icmp.Endianness())
	}
	if icmp.MinSize() != 8 {
		t.Errorf("min size: expected 8, got %d", icmp.MinSize())
	}
	if !icmp.HasOpenField() {
		t.Error("expected open trailing field")
	}

	offsets := []struct {
		name   string
		offset int
	}{
		{"PacketType", 0},
		{"Code", 1},
		{"Checksum", 2},
		{"RestOfHeader", 4},
		{"DataSection", 8},
	}
	for _, tt := range offsets {
		f, ok := icmp.FieldByName(tt.name)
		if !ok {
			t.Fatalf("missing field %s", tt.name)
		}
		if f.Offset() != tt.offset {
			t.Errorf("%s: offset expected %d, got %d", tt.name, tt.offset, f.Offset())
		}
	}

	record := layouts[1]
	if record.Name() != "Record" {
		t.Errorf("name: expected Record (struct name default), got %q", record.Name())
	}
	if record.Endianness() != binlayout.LittleEndian {
		t.Errorf("endianness: expected little, got %v", record.Endianness())
	}
	if record.MinSize() != 11 {
		t.Errorf("min size: expected 11, got %d", record.MinSize())
	}
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.go")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFileRejectsOpenFieldNotLast(t *testing.T) {
	path := writeSource(t, `package p

// @binlayout
type Bad struct {
	Tail    []byte
	Trailer uint16
}
`)
	if _, err := ParseFile(path); err == nil {
		t.Fatal("expected error for non-last open field")
	}
}

func TestParseFileRejectsUnsupportedTypes(t *testing.T) {
	sources := []string{
		`package p

// @binlayout
type Bad struct {
	Name string
}
`,
		`package p

// @binlayout
type Bad struct {
	Ptr *uint32
}
`,
		`package p

// @binlayout
type Bad struct {
	Words []uint16
}
`,
	}
	for _, src := range sources {
		if _, err := ParseFile(writeSource(t, src)); err == nil {
			t.Errorf("expected error for source:\n%s", src)
		}
	}
}

func TestParseFileMultipleNamesOneType(t *testing.T) {
	path := writeSource(t, `package p

// @binlayout
type Pair struct {
	A, B uint16
}
`)
	layouts, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(layouts) != 1 {
		t.Fatalf("expected 1 layout, got %d", len(layouts))
	}
	b, ok := layouts[0].FieldByName("B")
	if !ok {
		t.Fatal("missing field B")
	}
	if b.Offset() != 2 {
		t.Errorf("B offset: expected 2, got %d", b.Offset())
	}
}

func TestParseFileNoAnnotations(t *testing.T) {
	path := writeSource(t, `package p

type Plain struct {
	X uint32
}
`)
	layouts, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(layouts) != 0 {
		t.Fatalf("expected no layouts, got %d", len(layouts))
	}
}
