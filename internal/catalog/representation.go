package catalog

type Kind int

const (
	KindFloat Kind = iota
	KindSigned
	KindUnsigned
)

const RepBase = "base"

// Representation describes the Go scalar a unit wraps.
type Representation struct {
	GoType string
	Kind   Kind
	// Bits is the Go expression passed to strconv-style parsers; "0" selects
	// the platform int size.
	Bits string
	// Width bounds catalog constants. Base is checked as float32, its
	// narrowest build, and int/uint as 64 bits.
	Width int
}

var representations = map[string]Representation{
	RepBase:   {GoType: "Base", Kind: KindFloat, Bits: "baseBits", Width: 32},
	"float32": {GoType: "float32", Kind: KindFloat, Bits: "32", Width: 32},
	"float64": {GoType: "float64", Kind: KindFloat, Bits: "64", Width: 64},
	"int":     {GoType: "int", Kind: KindSigned, Bits: "0", Width: 64},
	"int8":    {GoType: "int8", Kind: KindSigned, Bits: "8", Width: 8},
	"int16":   {GoType: "int16", Kind: KindSigned, Bits: "16", Width: 16},
	"int32":   {GoType: "int32", Kind: KindSigned, Bits: "32", Width: 32},
	"int64":   {GoType: "int64", Kind: KindSigned, Bits: "64", Width: 64},
	"uint":    {GoType: "uint", Kind: KindUnsigned, Bits: "0", Width: 64},
	"uint8":   {GoType: "uint8", Kind: KindUnsigned, Bits: "8", Width: 8},
	"uint16":  {GoType: "uint16", Kind: KindUnsigned, Bits: "16", Width: 16},
	"uint32":  {GoType: "uint32", Kind: KindUnsigned, Bits: "32", Width: 32},
	"uint64":  {GoType: "uint64", Kind: KindUnsigned, Bits: "64", Width: 64},
}

// LookupRepresentation resolves a catalog representation name.
func LookupRepresentation(name string) (Representation, bool) {
	r, ok := representations[name]
	return r, ok
}

// Rep returns the resolved representation of u. Call after Validate.
func (u Unit) Rep() Representation {
	return representations[u.Representation]
}
