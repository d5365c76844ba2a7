package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Annotation holds a parsed @binlayout annotation.
type Annotation struct {
	Name   string // layout name; defaults to the struct name
	Endian string // "little" or "big"
}

var (
	annoRe = regexp.MustCompile(`@binlayout(?:\s+(.+))?$`)
	pairRe = regexp.MustCompile(`(\w+)=(\w+)`)
)

// ParseAnnotation parses a @binlayout annotation from comment text.
//
// Expected format:
//
//	// @binlayout
//	// @binlayout endian=big
//	// @binlayout name=icmp_packet endian=big
//
// Params are space-separated key=value pairs. The layout name defaults
// to the annotated struct's name and the byte order to little-endian.
func ParseAnnotation(comment string) (*Annotation, error) {
	matches := annoRe.FindStringSubmatch(comment)
	if matches == nil {
		return nil, fmt.Errorf("no @binlayout annotation found")
	}

	anno := &Annotation{Endian: "little"}
	if len(matches) < 2 || matches[1] == "" {
		return anno, nil
	}

	for _, pair := range pairRe.FindAllStringSubmatch(matches[1], -1) {
		key, value := pair[1], pair[2]
		switch key {
		case "name":
			anno.Name = value
		case "endian":
			if value != "little" && value != "big" {
				return nil, fmt.Errorf("endian must be 'little' or 'big', got: %s", value)
			}
			anno.Endian = value
		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	return anno, nil
}

// FindAnnotation searches comment lines for a @binlayout annotation.
// Returns nil with no error when none of the lines carries one.
func FindAnnotation(comments []string) (*Annotation, error) {
	for _, comment := range comments {
		if !strings.Contains(comment, "@binlayout") {
			continue
		}
		return ParseAnnotation(comment)
	}
	return nil, nil
}

// CleanComment removes comment markers from a line.
// "// @binlayout endian=big" → "@binlayout endian=big"
// "/* @binlayout */" → "@binlayout"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "//") {
		return strings.TrimSpace(strings.TrimPrefix(line, "//"))
	}

	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		return strings.TrimSpace(line)
	}

	return line
}
