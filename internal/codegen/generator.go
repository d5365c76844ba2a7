// Package codegen emits Go source for a layout: the layout variable,
// per-field offset and size constants, and a typed view wrapper whose
// accessor methods delegate to the binlayout runtime. The output is the
// static, name-checked surface for a record format that is known at
// build time.
package codegen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/avreth/binlayout"
)

// Generator generates the accessor file for one or more layouts.
type Generator struct {
	pkg     string
	layouts []*binlayout.Layout
}

// NewGenerator creates a generator targeting the given package name.
func NewGenerator(pkg string, layouts ...*binlayout.Layout) *Generator {
	return &Generator{pkg: pkg, layouts: layouts}
}

// Generate returns a complete gofmt-formatted Go source file.
func (g *Generator) Generate() ([]byte, error) {
	if g.pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if len(g.layouts) == 0 {
		return nil, fmt.Errorf("no layouts to generate")
	}

	var out strings.Builder
	out.WriteString("// Code generated by binlayout gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", g.pkg)
	out.WriteString("import (\n\t\"github.com/avreth/binlayout\"\n)\n\n")

	for _, l := range g.layouts {
		g.generateLayout(&out, l)
	}

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func (g *Generator) generateLayout(out *strings.Builder, l *binlayout.Layout) {
	prefix := exportName(l.Name())

	g.generateLayoutVar(out, l, prefix)
	g.generateConstants(out, l, prefix)
	g.generateViewType(out, l, prefix)

	for i := 0; i < l.NumFields(); i++ {
		g.generateFieldAccessors(out, l.FieldAt(i), prefix)
	}
}

// generateLayoutVar emits the package-level layout definition. Must is
// safe here: the layout already built once when the generator ran.
func (g *Generator) generateLayoutVar(out *strings.Builder, l *binlayout.Layout, prefix string) {
	fmt.Fprintf(out, "// %sLayout describes the %s record format.\n", prefix, l.Name())
	fmt.Fprintf(out, "var %sLayout = binlayout.Must(binlayout.New(%q, %s, []binlayout.FieldSpec{\n",
		prefix, l.Name(), endianExpr(l.Endianness()))
	for i := 0; i < l.NumFields(); i++ {
		f := l.FieldAt(i)
		fmt.Fprintf(out, "\tbinlayout.F(%q, %s),\n", f.Name(), typeExpr(f.Type()))
	}
	out.WriteString("}))\n\n")
}

// generateConstants emits offset and size constants so callers can
// address raw buffers without consulting the layout at runtime.
func (g *Generator) generateConstants(out *strings.Builder, l *binlayout.Layout, prefix string) {
	fmt.Fprintf(out, "// Byte offsets and sizes of %s fields.\n", l.Name())
	out.WriteString("const (\n")
	for i := 0; i < l.NumFields(); i++ {
		f := l.FieldAt(i)
		fieldName := prefix + exportName(f.Name())
		fmt.Fprintf(out, "\t%sOffset = %d\n", fieldName, f.Offset())
		if size, ok := f.Size(); ok {
			fmt.Fprintf(out, "\t%sSize = %d\n", fieldName, size)
		}
	}
	out.WriteString(")\n\n")
	fmt.Fprintf(out, "// %sMinSize is the minimum buffer length for a %s view.\n", prefix, l.Name())
	fmt.Fprintf(out, "const %sMinSize = %d\n\n", prefix, l.MinSize())
}

func (g *Generator) generateViewType(out *strings.Builder, l *binlayout.Layout, prefix string) {
	fmt.Fprintf(out, "// %sView wraps a storage buffer with %s field accessors.\n", prefix, l.Name())
	fmt.Fprintf(out, "type %sView struct {\n\tview *binlayout.View\n}\n\n", prefix)

	fmt.Fprintf(out, "// New%sView attaches storage to the %s layout without copying.\n", prefix, l.Name())
	fmt.Fprintf(out, "func New%sView(storage binlayout.Storage) %sView {\n", prefix, prefix)
	fmt.Fprintf(out, "\treturn %sView{view: %sLayout.NewView(storage)}\n}\n\n", prefix, prefix)

	fmt.Fprintf(out, "// IntoStorage consumes the view and returns the storage unchanged.\n")
	fmt.Fprintf(out, "func (v %sView) IntoStorage() (binlayout.Storage, error) {\n", prefix)
	out.WriteString("\treturn v.view.IntoStorage()\n}\n\n")
}

func (g *Generator) generateFieldAccessors(out *strings.Builder, f *binlayout.Field, prefix string) {
	name := exportName(f.Name())
	typ := f.Type()

	if typ.Kind == binlayout.KindInteger {
		goType := intGoType(typ)
		method := intMethod(typ)

		fmt.Fprintf(out, "// %s reads the %s field.\n", name, f.Name())
		fmt.Fprintf(out, "func (v %sView) %s() (%s, error) {\n", prefix, name, goType)
		fmt.Fprintf(out, "\tfv, err := v.view.Field(%q)\n", f.Name())
		fmt.Fprintf(out, "\tif err != nil {\n\t\treturn %s, err\n\t}\n", intZero(typ))
		fmt.Fprintf(out, "\treturn fv.%s()\n}\n\n", method)

		fmt.Fprintf(out, "// Set%s writes the %s field. Requires writable or owned storage.\n", name, f.Name())
		fmt.Fprintf(out, "func (v %sView) Set%s(x %s) error {\n", prefix, name, goType)
		fmt.Fprintf(out, "\tfv, err := v.view.FieldMut(%q)\n", f.Name())
		out.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
		fmt.Fprintf(out, "\treturn fv.Put%s(x)\n}\n\n", method)
	} else {
		fmt.Fprintf(out, "// %s returns the %s bytes. The slice aliases the storage buffer.\n", name, f.Name())
		fmt.Fprintf(out, "func (v %sView) %s() ([]byte, error) {\n", prefix, name)
		fmt.Fprintf(out, "\tfv, err := v.view.Field(%q)\n", f.Name())
		out.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		out.WriteString("\treturn fv.Data()\n}\n\n")

		fmt.Fprintf(out, "// Set%s copies src into the %s bytes. Requires writable or owned storage.\n", name, f.Name())
		fmt.Fprintf(out, "func (v %sView) Set%s(src []byte) error {\n", prefix, name)
		fmt.Fprintf(out, "\tfv, err := v.view.FieldMut(%q)\n", f.Name())
		out.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
		out.WriteString("\treturn fv.SetData(src)\n}\n\n")
	}

	fmt.Fprintf(out, "// Into%s consumes the view and returns a field view holding the\n// storage, for binlayout.FieldView.Extract.\n", name)
	fmt.Fprintf(out, "func (v %sView) Into%s() (*binlayout.FieldView, error) {\n", prefix, name)
	fmt.Fprintf(out, "\treturn v.view.IntoField(%q)\n}\n\n", f.Name())
}

func endianExpr(e binlayout.Endianness) string {
	if e == binlayout.BigEndian {
		return "binlayout.BigEndian"
	}
	return "binlayout.LittleEndian"
}

func typeExpr(t binlayout.FieldType) string {
	switch t.Kind {
	case binlayout.KindInteger:
		sign := "Uint"
		if t.Signed {
			sign = "Int"
		}
		return fmt.Sprintf("binlayout.%s%dType", sign, t.Width*8)
	case binlayout.KindFixedBytes:
		return fmt.Sprintf("binlayout.FixedBytesType(%d)", t.Length)
	default:
		return "binlayout.OpenBytesType"
	}
}

func intGoType(t binlayout.FieldType) string {
	if t.Width == 16 {
		if t.Signed {
			return "binlayout.I128"
		}
		return "binlayout.U128"
	}
	if t.Signed {
		return fmt.Sprintf("int%d", t.Width*8)
	}
	return fmt.Sprintf("uint%d", t.Width*8)
}

func intMethod(t binlayout.FieldType) string {
	if t.Signed {
		return fmt.Sprintf("Int%d", t.Width*8)
	}
	return fmt.Sprintf("Uint%d", t.Width*8)
}

func intZero(t binlayout.FieldType) string {
	if t.Width == 16 {
		return intGoType(t) + "{}"
	}
	return "0"
}

// exportName converts a layout or field name to an exported Go
// identifier: "rest_of_header" → "RestOfHeader", "icmp_packet" →
// "IcmpPacket". Names that are already CamelCase pass through.
func exportName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(toUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
