package schemas

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JonMunkholm/pricelist/internal/core"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MinPriceToken as a field's min is replaced by the configured minimum price.
const MinPriceToken = "min_price"

// File is the on-disk form of a schema.
type File struct {
	Key          string      `toml:"key" yaml:"key"`
	Title        string      `toml:"title" yaml:"title"`
	SheetName    string      `toml:"sheet_name" yaml:"sheet_name"`
	EndOfData    []string    `toml:"end_of_data" yaml:"end_of_data"`
	PriceField   string      `toml:"price_field" yaml:"price_field"`
	Instructions string      `toml:"instructions" yaml:"instructions"`
	Example      [][]string  `toml:"example" yaml:"example"`
	Fields       []FieldFile `toml:"fields" yaml:"fields"`
}

// FieldFile is the on-disk form of a field.
type FieldFile struct {
	Name           string   `toml:"name" yaml:"name"`
	Title          string   `toml:"title" yaml:"title"`
	Type           string   `toml:"type" yaml:"type"` // text, integer or decimal
	Required       bool     `toml:"required" yaml:"required"`
	Coercer        string   `toml:"coercer" yaml:"coercer"`
	Min            string   `toml:"min" yaml:"min"`
	MinMessage     string   `toml:"min_message" yaml:"min_message"`
	Choices        []string `toml:"choices" yaml:"choices"`
	ChoicesMessage string   `toml:"choices_message" yaml:"choices_message"`
}

// LoadFile reads a .toml, .yaml or .yml schema file.
func LoadFile(path, minPrice string) (*core.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Parse(data, filepath.Ext(path), minPrice)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes schema file contents in the format named by ext.
// Unknown keys are rejected so that typos do not silently drop constraints.
func Parse(data []byte, ext, minPrice string) (*core.Schema, error) {
	var f File

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse schema TOML: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported schema file type %q", ext)
	}

	return f.Schema(minPrice)
}

// Schema converts the file form into a checked core.Schema.
func (f *File) Schema(minPrice string) (*core.Schema, error) {
	if minPrice == "" {
		minPrice = DefaultMinPrice
	}

	s := &core.Schema{
		Key:          f.Key,
		Title:        f.Title,
		SheetName:    f.SheetName,
		EndOfData:    f.EndOfData,
		PriceField:   f.PriceField,
		Instructions: f.Instructions,
		Example:      f.Example,
	}
	if s.Title == "" {
		s.Title = s.Key
	}

	for _, ff := range f.Fields {
		spec, err := ff.spec(minPrice)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", f.Key, err)
		}
		s.Fields = append(s.Fields, spec)
	}

	if len(s.Example) == 0 {
		s.Example = [][]string{headings(s)}
	}

	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

func (ff FieldFile) spec(minPrice string) (core.FieldSpec, error) {
	spec := core.FieldSpec{
		Name:           ff.Name,
		Title:          ff.Title,
		Required:       ff.Required,
		CoercerName:    ff.Coercer,
		Min:            ff.Min,
		MinMessage:     ff.MinMessage,
		Choices:        ff.Choices,
		ChoicesMessage: ff.ChoicesMessage,
	}

	switch strings.ToLower(ff.Type) {
	case "", "text":
		spec.Type = core.FieldText
	case "integer", "int":
		spec.Type = core.FieldInteger
	case "decimal", "number":
		spec.Type = core.FieldDecimal
	default:
		return spec, fmt.Errorf("field %q: unknown type %q", ff.Name, ff.Type)
	}

	if ff.Coercer != "" {
		c, ok := core.LookupCoercer(ff.Coercer)
		if !ok {
			return spec, fmt.Errorf("field %q: unknown coercer %q (known: %s)",
				ff.Name, ff.Coercer, strings.Join(core.CoercerNames(), ", "))
		}
		spec.Coercer = c
	}

	if spec.Min == MinPriceToken {
		spec.Min = minPrice
	}
	return spec, nil
}

func headings(s *core.Schema) []string {
	row := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		row[i] = f.Title
	}
	return row
}

// LoadDir loads every schema file in dir, in file name order.
func LoadDir(dir, minPrice string) ([]*core.Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".toml", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]*core.Schema, 0, len(names))
	for _, name := range names {
		s, err := LoadFile(filepath.Join(dir, name), minPrice)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// NewRegistry builds a registry holding the built-in schemas plus any
// schema files in dir. An empty dir registers only the built-ins.
func NewRegistry(minPrice, dir string) (*core.Registry, error) {
	reg := core.NewRegistry()

	if err := reg.Register(Region10(minPrice)); err != nil {
		return nil, err
	}

	if dir == "" {
		return reg, nil
	}

	loaded, err := LoadDir(dir, minPrice)
	if err != nil {
		return nil, err
	}
	for _, s := range loaded {
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
