// Package dim owns the operator set shared by every generated unit type.
//
// Ownership boundary:
// - numeric constraints for unit representations
// - same-unit arithmetic, quotient and conversion primitives
// - text encoding and parsing of unit values
//
// Unit packages are produced by cmd/unitgen from a catalog; their methods are
// one-line wrappers over the generic functions here, so a unit value costs
// nothing beyond its raw scalar.
package dim
