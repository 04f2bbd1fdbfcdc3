package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Catalog is the full set of unit declarations for one generated package.
type Catalog struct {
	Units       []Unit       `toml:"unit" yaml:"unit"`
	Quotients   []Quotient   `toml:"quotient" yaml:"quotient"`
	Conversions []Conversion `toml:"conversion" yaml:"conversion"`
}

// Unit declares one wrapper type and its sub-units.
type Unit struct {
	Name           string     `toml:"name" yaml:"name"`
	Doc            string     `toml:"doc" yaml:"doc"`
	Representation string     `toml:"representation" yaml:"representation"`
	Canonical      string     `toml:"canonical" yaml:"canonical"`
	Format         string     `toml:"format" yaml:"format"`
	Aliases        []Alias    `toml:"alias" yaml:"alias"`
	Subs           []SubUnit  `toml:"sub" yaml:"sub"`
	Constants      []Constant `toml:"constant" yaml:"constant"`
}

// SubUnit is one named scale of a unit. Factor is a Go constant expression
// for the canonical magnitude of one SubUnit.
type SubUnit struct {
	Name     string `toml:"name" yaml:"name"`
	Accessor string `toml:"accessor" yaml:"accessor"`
	Symbol   string `toml:"symbol" yaml:"symbol"`
	Factor   string `toml:"factor" yaml:"factor"`
}

type Alias struct {
	Name string `toml:"name" yaml:"name"`
	Doc  string `toml:"doc" yaml:"doc"`
}

// Constant is a named physical value of a unit, in canonical magnitude.
type Constant struct {
	Name  string `toml:"name" yaml:"name"`
	Value string `toml:"value" yaml:"value"`
	Doc   string `toml:"doc" yaml:"doc"`
}

// Quotient declares Dividend / Divisor = Result.
type Quotient struct {
	Dividend string `toml:"dividend" yaml:"dividend"`
	Divisor  string `toml:"divisor" yaml:"divisor"`
	Result   string `toml:"result" yaml:"result"`
	Method   string `toml:"method" yaml:"method"`
}

// Conversion declares From * Factor = To. The inverse is derived from the
// same factor and never declared on its own.
type Conversion struct {
	From    string `toml:"from" yaml:"from"`
	To      string `toml:"to" yaml:"to"`
	Factor  string `toml:"factor" yaml:"factor"`
	Method  string `toml:"method" yaml:"method"`
	Inverse string `toml:"inverse" yaml:"inverse"`
}

const (
	FormatSI    = "si"
	FormatPlain = "plain"
)

// Load reads a TOML or YAML catalog, fills defaults and validates it.
func Load(path string) (Catalog, error) {
	var cat Catalog
	if err := decodeFile(path, &cat); err != nil {
		return Catalog{}, err
	}
	ApplyDefaults(&cat)
	if err := Validate(cat); err != nil {
		return Catalog{}, fmt.Errorf("catalog invalid (%s): %w", path, err)
	}
	log.Debug().
		Str("path", path).
		Int("units", len(cat.Units)).
		Int("quotients", len(cat.Quotients)).
		Int("conversions", len(cat.Conversions)).
		Msg("catalog loaded")
	return cat, nil
}

func decodeFile(path string, out *Catalog) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = DecodeTOML(data, out)
	case ".yaml", ".yml":
		err = DecodeYAML(data, out)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("catalog parse failed (%s): %w", path, err)
	}
	return nil
}

// DecodeTOML decodes a TOML catalog and rejects keys it does not know, so
// a misspelled "factor" cannot silently drop a sub-unit scale.
func DecodeTOML(data []byte, out *Catalog) error {
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

func DecodeYAML(data []byte, out *Catalog) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmpty
		}
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("%w: %v", ErrUnknownKey, err)
		}
		return err
	}
	return nil
}

// ApplyDefaults fills the optional fields of every declaration.
func ApplyDefaults(cat *Catalog) {
	for i := range cat.Units {
		u := &cat.Units[i]
		if strings.TrimSpace(u.Representation) == "" {
			u.Representation = RepBase
		}
		if strings.TrimSpace(u.Format) == "" {
			u.Format = FormatSI
		}
		for j := range u.Subs {
			s := &u.Subs[j]
			if s.Accessor == "" {
				s.Accessor = s.Name + "s"
			}
		}
	}
	for i := range cat.Quotients {
		q := &cat.Quotients[i]
		if q.Method == "" {
			q.Method = "Per" + q.Divisor
		}
	}
	for i := range cat.Conversions {
		c := &cat.Conversions[i]
		if c.Method == "" {
			c.Method = "To" + c.To
		}
		if c.Inverse == "" {
			c.Inverse = "To" + c.From
		}
	}
}

// Unit returns the declaration named name.
func (c Catalog) Unit(name string) (Unit, bool) {
	for _, u := range c.Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// CanonicalSub returns the sub-unit named by u.Canonical.
func (u Unit) CanonicalSub() (SubUnit, bool) {
	for _, s := range u.Subs {
		if s.Name == u.Canonical {
			return s, true
		}
	}
	return SubUnit{}, false
}
