package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template returns a starter catalog in the format named by ext.
func Template(ext string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")) {
	case "toml":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteTemplate writes a starter catalog to path, picking the format from
// its extension. An existing file is kept unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	template, err := Template(filepath.Ext(path))
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("catalog already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o644)
}

const tomlTemplate = `# Factors are Go constant expressions for one sub-unit in canonical units.

[[unit]]
name = "Time"
doc = "Time is a span of time stored in seconds."
canonical = "Second"
format = "plain"

  [[unit.sub]]
  name = "Millisecond"
  symbol = "ms"
  factor = "1e-3"

  [[unit.sub]]
  name = "Second"
  symbol = "s"
  factor = "1"

[[unit]]
name = "Length"
doc = "Length is a distance stored in meters."
canonical = "Meter"

  [[unit.sub]]
  name = "Meter"
  symbol = "m"
  factor = "1"

  [[unit.sub]]
  name = "Kilometer"
  symbol = "km"
  factor = "1e3"

[[unit]]
name = "Velocity"
canonical = "MeterPerSecond"

  [[unit.sub]]
  name = "MeterPerSecond"
  accessor = "MetersPerSecond"
  symbol = "m/s"
  factor = "1"

[[quotient]]
dividend = "Length"
divisor = "Time"
result = "Velocity"
`

const yamlTemplate = `# Factors are Go constant expressions for one sub-unit in canonical units.
unit:
  - name: Time
    doc: Time is a span of time stored in seconds.
    canonical: Second
    format: plain
    sub:
      - {name: Millisecond, symbol: ms, factor: "1e-3"}
      - {name: Second, symbol: s, factor: "1"}
  - name: Length
    doc: Length is a distance stored in meters.
    canonical: Meter
    sub:
      - {name: Meter, symbol: m, factor: "1"}
      - {name: Kilometer, symbol: km, factor: "1e3"}
  - name: Velocity
    canonical: MeterPerSecond
    sub:
      - {name: MeterPerSecond, accessor: MetersPerSecond, symbol: m/s, factor: "1"}
quotient:
  - {dividend: Length, divisor: Time, result: Velocity}
`
