package catalog

import "unicode"

// SymbolTable names the unexported symbol table generated for unit.
func SymbolTable(unit string) string {
	return LowerFirst(unit) + "Symbols"
}

// FactorConst names the unexported factor constant generated for c.
func FactorConst(c Conversion) string {
	return LowerFirst(c.From) + "To" + c.To
}

// LowerFirst unexports name. Leading acronyms lower as a block: LSB -> lsb,
// HTTPRate -> httpRate.
func LowerFirst(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
