// Package parser extracts binary layout definitions from Go source.
//
// A struct type annotated with @binlayout declares a layout: its fields,
// in declaration order, become the layout's fields, and their Go types
// select the field types. Offsets are assigned by the binlayout core's
// left-to-right scan, so the struct's order is the wire order.
package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/avreth/binlayout"
)

// ParseFile parses a Go source file and builds a layout for every
// struct type carrying a @binlayout annotation. Definition errors (an
// unsupported field type, a []byte field that is not last) fail the
// whole file.
func ParseFile(filename string) ([]*binlayout.Layout, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return extractLayouts(file)
}

func extractLayouts(file *ast.File) ([]*binlayout.Layout, error) {
	var layouts []*binlayout.Layout

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue // Not a struct
			}

			anno, err := extractAnnotation(genDecl.Doc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}
			if anno == nil {
				continue // No @binlayout, skip this type
			}

			l, err := buildLayout(typeSpec.Name.Name, anno, structType)
			if err != nil {
				return nil, err
			}
			layouts = append(layouts, l)
		}
	}

	return layouts, nil
}

func extractAnnotation(doc *ast.CommentGroup) (*Annotation, error) {
	if doc == nil {
		return nil, nil
	}

	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	return FindAnnotation(lines)
}

func buildLayout(structName string, anno *Annotation, structType *ast.StructType) (*binlayout.Layout, error) {
	name := anno.Name
	if name == "" {
		name = structName
	}

	endian, err := binlayout.ParseEndianness(anno.Endian)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", structName, err)
	}

	var specs []binlayout.FieldSpec
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%s: embedded fields are not supported", structName)
		}

		typ, err := fieldType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", structName, field.Names[0].Name, err)
		}

		// A field list like "a, b uint16" declares two layout fields.
		for _, ident := range field.Names {
			specs = append(specs, binlayout.F(ident.Name, typ))
		}
	}

	l, err := binlayout.New(name, endian, specs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", structName, err)
	}
	return l, nil
}

// fieldType maps a Go type expression to a layout field type. Supported
// types: uint8..uint64, int8..int64, byte, [N]byte, and []byte for the
// open trailing region.
func fieldType(expr ast.Expr) (binlayout.FieldType, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "uint8", "byte":
			return binlayout.Uint8Type, nil
		case "uint16":
			return binlayout.Uint16Type, nil
		case "uint32":
			return binlayout.Uint32Type, nil
		case "uint64":
			return binlayout.Uint64Type, nil
		case "int8":
			return binlayout.Int8Type, nil
		case "int16":
			return binlayout.Int16Type, nil
		case "int32":
			return binlayout.Int32Type, nil
		case "int64":
			return binlayout.Int64Type, nil
		default:
			return binlayout.FieldType{}, fmt.Errorf("unsupported type: %s", t.Name)
		}

	case *ast.ArrayType:
		elem, ok := t.Elt.(*ast.Ident)
		if !ok || (elem.Name != "byte" && elem.Name != "uint8") {
			return binlayout.FieldType{}, fmt.Errorf("only byte arrays and slices are supported")
		}
		if t.Len == nil {
			// Slice: open trailing region.
			return binlayout.OpenBytesType, nil
		}
		lit, ok := t.Len.(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return binlayout.FieldType{}, fmt.Errorf("array length must be an integer literal")
		}
		n, err := strconv.Atoi(lit.Value)
		if err != nil {
			return binlayout.FieldType{}, fmt.Errorf("invalid array length: %s", lit.Value)
		}
		return binlayout.FixedBytesType(n), nil

	case *ast.StarExpr:
		return binlayout.FieldType{}, fmt.Errorf("pointer types are not supported")

	default:
		return binlayout.FieldType{}, fmt.Errorf("unsupported type expression")
	}
}
