// Package layoutfile loads binary layout definitions from YAML
// documents and turns them into binlayout layouts at startup time.
//
// A definition document looks like:
//
//	name: icmp_packet
//	endian: big
//	fields:
//	  - name: packet_type
//	    type: u8
//	  - name: code
//	    type: u8
//	  - name: checksum
//	    type: u16
//	  - name: rest_of_header
//	    type: bytes[4]
//	  - name: data_section
//	    type: bytes
//
// A file may hold several definitions separated by "---". Definition
// errors (bad type string, duplicate field, open field not last) are
// all reported at load time; a loaded layout is always usable.
package layoutfile

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/avreth/binlayout"
)

// Definition is the unmarshalled form of one layout document.
type Definition struct {
	Name   string      `yaml:"name"`
	Endian string      `yaml:"endian"`
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec is one field entry of a definition.
type FieldSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Layout builds the binlayout layout described by the definition.
func (d *Definition) Layout() (*binlayout.Layout, error) {
	if d.Name == "" {
		return nil, errors.New("layout definition has no name")
	}

	endian := binlayout.LittleEndian
	if d.Endian != "" {
		var err error
		endian, err = binlayout.ParseEndianness(d.Endian)
		if err != nil {
			return nil, errors.Wrapf(err, "layout %s", d.Name)
		}
	}

	specs := make([]binlayout.FieldSpec, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return nil, errors.Errorf("layout %s: field with no name", d.Name)
		}
		if !validIdent(f.Name) {
			return nil, errors.Errorf("layout %s: field name %q is not a valid identifier", d.Name, f.Name)
		}
		typ, err := ParseType(f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "layout %s: field %s", d.Name, f.Name)
		}
		specs = append(specs, binlayout.F(f.Name, typ))
	}

	l, err := binlayout.New(d.Name, endian, specs)
	if err != nil {
		return nil, errors.Wrapf(err, "layout %s", d.Name)
	}
	return l, nil
}

// Load reads every definition document from r and builds its layout.
func Load(r io.Reader) ([]*binlayout.Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)

	var layouts []*binlayout.Layout
	for {
		var def Definition
		if err := dec.Decode(&def); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "decode layout definition")
		}
		l, err := def.Layout()
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}

	if len(layouts) == 0 {
		return nil, errors.New("no layout definitions found")
	}
	return layouts, nil
}

// LoadFile reads definitions from the file at path.
func LoadFile(path string) ([]*binlayout.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open layout file")
	}
	defer f.Close()

	layouts, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return layouts, nil
}

func validIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
