package catalog

import (
	"fmt"
	"go/constant"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// methodsPerUnit are emitted for every unit and cannot be reused by
// accessors or relations.
var methodsPerUnit = []string{
	"Canonical", "Add", "Sub", "Mul", "Div", "Ratio", "Less",
	"String", "MarshalText", "UnmarshalText",
}

// reservedIdents are declared next to the generated file.
var reservedIdents = map[string]bool{"Base": true, "baseBits": true}

// Validate checks the whole catalog and returns the first problem found.
// It expects defaults to be applied.
func Validate(cat Catalog) error {
	if len(cat.Units) == 0 {
		return ErrEmpty
	}
	idents := make(map[string]string)
	claim := func(name, owner string) error {
		if reservedIdents[name] {
			return fmt.Errorf("%w: %s is reserved", ErrDuplicate, name)
		}
		if prev, ok := idents[name]; ok {
			return fmt.Errorf("%w: %s declared by %s and %s", ErrDuplicate, name, prev, owner)
		}
		idents[name] = owner
		return nil
	}

	methods := make(map[string]map[string]string, len(cat.Units))
	for i, u := range cat.Units {
		if err := validateUnit(u); err != nil {
			return fmt.Errorf("unit[%d] %s invalid: %w", i, u.Name, err)
		}
		owner := "unit " + u.Name
		names := []string{u.Name, "New" + u.Name, "Parse" + u.Name, SymbolTable(u.Name)}
		for _, a := range u.Aliases {
			names = append(names, a.Name)
		}
		for _, s := range u.Subs {
			names = append(names, s.Name)
		}
		for _, c := range u.Constants {
			names = append(names, c.Name)
		}
		for _, name := range names {
			if err := claim(name, owner); err != nil {
				return fmt.Errorf("unit[%d] %s invalid: %w", i, u.Name, err)
			}
		}

		set := make(map[string]string)
		for _, m := range methodsPerUnit {
			set[m] = "builtin"
		}
		for _, s := range u.Subs {
			if prev, ok := set[s.Accessor]; ok {
				return fmt.Errorf("unit[%d] %s invalid: %w: %s used by %s and accessor of %s",
					i, u.Name, ErrMethodCollision, s.Accessor, prev, s.Name)
			}
			set[s.Accessor] = "accessor of " + s.Name
		}
		methods[u.Name] = set
	}

	for i, q := range cat.Quotients {
		if err := validateQuotient(cat, q, methods); err != nil {
			return fmt.Errorf("quotient[%d] %s/%s invalid: %w", i, q.Dividend, q.Divisor, err)
		}
	}

	pairs := make(map[[2]string]bool)
	for i, c := range cat.Conversions {
		key := [2]string{c.From, c.To}
		if c.From > c.To {
			key = [2]string{c.To, c.From}
		}
		if pairs[key] {
			return fmt.Errorf("conversion[%d] %s->%s invalid: %w: pair already converts",
				i, c.From, c.To, ErrDuplicate)
		}
		pairs[key] = true
		if err := validateConversion(cat, c, methods); err != nil {
			return fmt.Errorf("conversion[%d] %s->%s invalid: %w", i, c.From, c.To, err)
		}
		if err := claim(FactorConst(c), fmt.Sprintf("conversion %s->%s", c.From, c.To)); err != nil {
			return fmt.Errorf("conversion[%d] %s->%s invalid: %w", i, c.From, c.To, err)
		}
	}
	return nil
}

func validateUnit(u Unit) error {
	if !exportedIdent(u.Name) {
		return fmt.Errorf("%w: unit name %q", ErrInvalidName, u.Name)
	}
	rep, ok := LookupRepresentation(u.Representation)
	if !ok {
		return fmt.Errorf("%w: %q", ErrRepresentation, u.Representation)
	}
	switch u.Format {
	case FormatSI, FormatPlain:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidName, u.Format)
	}
	if len(u.Subs) == 0 {
		return fmt.Errorf("%w: no sub-units declared", ErrCanonical)
	}
	for _, a := range u.Aliases {
		if !exportedIdent(a.Name) {
			return fmt.Errorf("%w: alias %q", ErrInvalidName, a.Name)
		}
	}

	symbols := make(map[string]bool, len(u.Subs))
	canonical := false
	for _, s := range u.Subs {
		if !exportedIdent(s.Name) {
			return fmt.Errorf("%w: sub-unit %q", ErrInvalidName, s.Name)
		}
		if !exportedIdent(s.Accessor) {
			return fmt.Errorf("%w: accessor %q of %s", ErrInvalidName, s.Accessor, s.Name)
		}
		if err := validateSymbol(s.Symbol); err != nil {
			return fmt.Errorf("sub-unit %s: %w", s.Name, err)
		}
		if symbols[s.Symbol] {
			return fmt.Errorf("%w: symbol %q", ErrDuplicate, s.Symbol)
		}
		symbols[s.Symbol] = true

		f, err := ParseFactor(s.Factor)
		if err != nil {
			return fmt.Errorf("sub-unit %s: %w", s.Name, err)
		}
		if !f.Positive() {
			return fmt.Errorf("sub-unit %s: %w: %q must be positive", s.Name, ErrInvalidFactor, s.Factor)
		}
		if rep.Kind != KindFloat && !f.Integral() {
			return fmt.Errorf("sub-unit %s: %w: %q is not integral for %s",
				s.Name, ErrInvalidFactor, s.Factor, u.Representation)
		}
		if !f.FitsIn(rep) {
			return fmt.Errorf("sub-unit %s: %w: %q overflows %s",
				s.Name, ErrInvalidFactor, s.Factor, u.Representation)
		}
		if s.Name == u.Canonical {
			if !f.IsOne() {
				return fmt.Errorf("%w: %s has factor %q, want 1", ErrCanonical, s.Name, s.Factor)
			}
			canonical = true
		}
	}
	if !canonical {
		return fmt.Errorf("%w: %q is not a declared sub-unit", ErrCanonical, u.Canonical)
	}

	for _, c := range u.Constants {
		if !exportedIdent(c.Name) {
			return fmt.Errorf("%w: constant %q", ErrInvalidName, c.Name)
		}
		f, err := ParseFactor(c.Value)
		if err != nil {
			return fmt.Errorf("constant %s: %w", c.Name, err)
		}
		if rep.Kind != KindFloat && !f.Integral() {
			return fmt.Errorf("constant %s: %w: %q is not integral", c.Name, ErrInvalidFactor, c.Value)
		}
		if rep.Kind == KindUnsigned && f.Sign() < 0 {
			return fmt.Errorf("constant %s: %w: %q is negative", c.Name, ErrInvalidFactor, c.Value)
		}
		if !f.FitsIn(rep) {
			return fmt.Errorf("constant %s: %w: %q overflows %s", c.Name, ErrInvalidFactor, c.Value, u.Representation)
		}
	}
	return nil
}

func validateQuotient(cat Catalog, q Quotient, methods map[string]map[string]string) error {
	d, err := lookupUnit(cat, q.Dividend)
	if err != nil {
		return err
	}
	v, err := lookupUnit(cat, q.Divisor)
	if err != nil {
		return err
	}
	o, err := lookupUnit(cat, q.Result)
	if err != nil {
		return err
	}
	if d.Representation != v.Representation || d.Representation != o.Representation {
		return fmt.Errorf("%w: %s, %s and %s must share one representation",
			ErrMismatchedRep, d.Name, v.Name, o.Name)
	}
	return claimMethod(methods, d.Name, q.Method, fmt.Sprintf("quotient %s/%s", q.Dividend, q.Divisor))
}

func validateConversion(cat Catalog, c Conversion, methods map[string]map[string]string) error {
	from, err := lookupUnit(cat, c.From)
	if err != nil {
		return err
	}
	to, err := lookupUnit(cat, c.To)
	if err != nil {
		return err
	}
	if from.Name == to.Name {
		return fmt.Errorf("%w: %s converts to itself", ErrDuplicate, from.Name)
	}
	f, err := ParseFactor(c.Factor)
	if err != nil {
		return err
	}
	if f.Sign() == 0 {
		return fmt.Errorf("%w: %q is zero", ErrInvalidFactor, c.Factor)
	}
	// Counts may scale into a float unit by any factor; scaling into an
	// integer unit needs a whole factor. The inverse into an integer unit
	// truncates.
	if to.Rep().Kind != KindFloat && !f.Integral() {
		return fmt.Errorf("%w: %q is not integral for integer unit %s", ErrInvalidFactor, c.Factor, to.Name)
	}
	if !conversionFits(f, from.Rep(), to.Rep()) {
		return fmt.Errorf("%w: %q overflows the conversion arithmetic", ErrInvalidFactor, c.Factor)
	}
	owner := fmt.Sprintf("conversion %s->%s", c.From, c.To)
	if err := claimMethod(methods, from.Name, c.Method, owner); err != nil {
		return err
	}
	return claimMethod(methods, to.Name, c.Inverse, owner)
}

// IntegerConversion reports whether a conversion between from and to stays
// in integer arithmetic.
func IntegerConversion(from, to Representation) bool {
	return from.Kind != KindFloat && to.Kind != KindFloat
}

var (
	int64Rep   = Representation{GoType: "int64", Kind: KindSigned, Bits: "64", Width: 64}
	float64Rep = Representation{GoType: "float64", Kind: KindFloat, Bits: "64", Width: 64}
)

// conversionFits checks the factor against the arithmetic it is used in. An
// integer conversion passes it as int64 and converts it to both units; a
// float conversion uses it as an untyped constant defaulting to int or
// float64.
func conversionFits(f Factor, from, to Representation) bool {
	if IntegerConversion(from, to) {
		return f.FitsIn(int64Rep) && f.FitsIn(from) && f.FitsIn(to)
	}
	if f.Value.Kind() == constant.Int && !f.FitsIn(int64Rep) {
		return false
	}
	return f.FitsIn(float64Rep)
}

func claimMethod(methods map[string]map[string]string, unit, method, owner string) error {
	if !exportedIdent(method) {
		return fmt.Errorf("%w: method %q", ErrInvalidName, method)
	}
	set := methods[unit]
	if prev, ok := set[method]; ok {
		return fmt.Errorf("%w: %s.%s used by %s and %s", ErrMethodCollision, unit, method, prev, owner)
	}
	set[method] = owner
	return nil
}

func lookupUnit(cat Catalog, name string) (Unit, error) {
	u, ok := cat.Unit(name)
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

func validateSymbol(sym string) error {
	if sym == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSymbol)
	}
	if strings.IndexFunc(sym, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidSymbol, sym)
	}
	r, _ := utf8.DecodeRuneInString(sym)
	if unicode.IsDigit(r) || strings.ContainsRune("+-.", r) {
		return fmt.Errorf("%w: %q starts like a number", ErrInvalidSymbol, sym)
	}
	return nil
}

func exportedIdent(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}
