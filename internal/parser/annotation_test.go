package parser

import "testing"

func TestParseAnnotationDefaults(t *testing.T) {
	anno, err := ParseAnnotation("@binlayout")
	if err != nil {
		t.Fatalf("ParseAnnotation failed: %v", err)
	}
	if anno.Name != "" {
		t.Errorf("Name: expected empty, got %q", anno.Name)
	}
	if anno.Endian != "little" {
		t.Errorf("Endian: expected little, got %q", anno.Endian)
	}
}

func TestParseAnnotationParams(t *testing.T) {
	tests := []struct {
		comment string
		name    string
		endian  string
	}{
		{"@binlayout endian=big", "", "big"},
		{"@binlayout endian=little", "", "little"},
		{"@binlayout name=icmp_packet", "icmp_packet", "little"},
		{"@binlayout name=icmp_packet endian=big", "icmp_packet", "big"},
	}

	for _, tt := range tests {
		anno, err := ParseAnnotation(tt.comment)
		if err != nil {
			t.Fatalf("%q: %v", tt.comment, err)
		}
		if anno.Name != tt.name {
			t.Errorf("%q: Name: expected %q, got %q", tt.comment, tt.name, anno.Name)
		}
		if anno.Endian != tt.endian {
			t.Errorf("%q: Endian: expected %q, got %q", tt.comment, tt.endian, anno.Endian)
		}
	}
}

func TestParseAnnotationErrors(t *testing.T) {
	tests := []string{
		"@binlayout endian=middle",
		"@binlayout size=4096",
		"no annotation here",
	}

	for _, comment := range tests {
		if _, err := ParseAnnotation(comment); err == nil {
			t.Errorf("%q: expected error", comment)
		}
	}
}

func TestFindAnnotation(t *testing.T) {
	comments := []string{
		"Packet is an ICMP packet header.",
		"@binlayout endian=big",
	}
	anno, err := FindAnnotation(comments)
	if err != nil {
		t.Fatalf("FindAnnotation failed: %v", err)
	}
	if anno == nil {
		t.Fatal("expected annotation, got nil")
	}
	if anno.Endian != "big" {
		t.Errorf("Endian: expected big, got %q", anno.Endian)
	}

	anno, err = FindAnnotation([]string{"just a comment"})
	if err != nil {
		t.Fatalf("FindAnnotation failed: %v", err)
	}
	if anno != nil {
		t.Errorf("expected no annotation, got %+v", anno)
	}

	// A malformed annotation is an error, not a silent skip.
	if _, err := FindAnnotation([]string{"@binlayout endian=weird"}); err == nil {
		t.Error("expected error for malformed annotation")
	}
}

func TestCleanComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"// @binlayout endian=big", "@binlayout endian=big"},
		{"/* @binlayout */", "@binlayout"},
		{"  //   @binlayout  ", "@binlayout"},
		{"@binlayout", "@binlayout"},
	}

	for _, tt := range tests {
		if got := CleanComment(tt.in); got != tt.want {
			t.Errorf("CleanComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
