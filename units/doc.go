// Package units provides type-safe scientific units and constants.
//
// Each unit is a distinct named scalar type, so seconds cannot be added to
// meters without an explicit conversion, and a unit value has the same size
// and machine representation as Base. Values are built by scaling a sub-unit
// constant:
//
//	timeout := 5 * units.Minute
//	v := (1 * units.Kilometer).PerTime(timeout) // units.Velocity
//	timeout.Seconds()                          // 300
//
// Everything in zz_generated_units.go comes from catalog.toml; edit the
// catalog and run go generate to add units or relations.
package units

//go:generate go run ../cmd/unitgen --catalog catalog.toml --output zz_generated_units.go --package units
