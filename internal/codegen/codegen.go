// Package codegen expands a validated unit catalog into Go source.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/dimunit/internal/catalog"
)

const DefaultDimImport = "github.com/danmuck/dimunit/dim"

type Options struct {
	Package string
	// Source is the catalog path recorded in the generated header.
	Source string
	// DimImport overrides the import path of the dim package.
	DimImport string
}

type fileData struct {
	Source      string
	Package     string
	DimImport   string
	UsesMath    bool
	Units       []unitData
	Conversions []conversionConst
}

type unitData struct {
	Name      string
	Doc       []string
	Recv      string
	Other     string
	Scalar    string
	GoType    string
	Bits      string
	Kind      catalog.Kind
	Format    string
	Symbol    string
	SymbolVar string
	Aliases   []aliasData
	Subs      []catalog.SubUnit
	Symbols   []catalog.SubUnit
	Constants []constData
	Quotients []quotientData
	Converts  []convertData

	rep catalog.Representation
}

type aliasData struct {
	Name string
	Doc  []string
}

type constData struct {
	Name  string
	Value string
	Doc   []string
}

type quotientData struct {
	Method  string
	Divisor string
	Param   string
	Result  string
}

type convertData struct {
	Method  string
	Target  string
	Const   string
	Invert  bool
	Integer bool
}

type conversionConst struct {
	Name   string
	From   string
	To     string
	Factor string
}

// Generate renders and gofmts the unit source for cat. cat must already be
// validated.
func Generate(cat catalog.Catalog, opts Options) ([]byte, error) {
	data, err := buildFileData(cat, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format: %w", err)
	}
	log.Debug().
		Str("package", data.Package).
		Int("units", len(data.Units)).
		Int("bytes", len(src)).
		Msg("units generated")
	return src, nil
}

func buildFileData(cat catalog.Catalog, opts Options) (fileData, error) {
	data := fileData{
		Source:    opts.Source,
		Package:   opts.Package,
		DimImport: opts.DimImport,
	}
	if data.Package == "" {
		data.Package = "units"
	}
	if data.Source == "" {
		data.Source = "catalog"
	}
	if data.DimImport == "" {
		data.DimImport = DefaultDimImport
	}

	noteMath := func(expr string) error {
		f, err := catalog.ParseFactor(expr)
		if err != nil {
			return err
		}
		data.UsesMath = data.UsesMath || f.UsesMath
		return nil
	}

	index := make(map[string]int, len(cat.Units))
	for _, u := range cat.Units {
		canon, ok := u.CanonicalSub()
		if !ok {
			return fileData{}, fmt.Errorf("codegen: unit %s: %w", u.Name, catalog.ErrCanonical)
		}
		rep := u.Rep()
		ud := unitData{
			Name:      u.Name,
			Doc:       docLines(u.Doc, fmt.Sprintf("%s is a unit value stored in %s.", u.Name, canon.Symbol)),
			Recv:      receiver(u.Name),
			GoType:    rep.GoType,
			Bits:      rep.Bits,
			Kind:      rep.Kind,
			Format:    u.Format,
			Symbol:    canon.Symbol,
			SymbolVar: catalog.SymbolTable(u.Name),
			Subs:      u.Subs,
			rep:       rep,
		}
		ud.Other = "u"
		if ud.Recv == "u" {
			ud.Other = "w"
		}
		ud.Scalar = "k"
		if ud.Recv == "k" {
			ud.Scalar = "n"
		}
		for _, a := range u.Aliases {
			ud.Aliases = append(ud.Aliases, aliasData{
				Name: a.Name,
				Doc:  docLines(a.Doc, fmt.Sprintf("%s is the same unit as %s.", a.Name, u.Name)),
			})
		}
		for _, s := range u.Subs {
			if err := noteMath(s.Factor); err != nil {
				return fileData{}, fmt.Errorf("codegen: unit %s: %w", u.Name, err)
			}
		}
		for _, c := range u.Constants {
			if err := noteMath(c.Value); err != nil {
				return fileData{}, fmt.Errorf("codegen: unit %s: %w", u.Name, err)
			}
			ud.Constants = append(ud.Constants, constData{
				Name:  c.Name,
				Value: c.Value,
				Doc:   docLines(c.Doc, fmt.Sprintf("%s is a named %s.", c.Name, u.Name)),
			})
		}
		ud.Symbols = append([]catalog.SubUnit(nil), u.Subs...)
		sort.SliceStable(ud.Symbols, func(i, j int) bool {
			return len(ud.Symbols[i].Symbol) > len(ud.Symbols[j].Symbol)
		})
		index[u.Name] = len(data.Units)
		data.Units = append(data.Units, ud)
	}

	for _, q := range cat.Quotients {
		i, ok := index[q.Dividend]
		if !ok {
			return fileData{}, fmt.Errorf("codegen: quotient %s: %w", q.Dividend, catalog.ErrUnknownUnit)
		}
		param := receiver(q.Divisor)
		if param == data.Units[i].Recv {
			param = "by"
		}
		data.Units[i].Quotients = append(data.Units[i].Quotients, quotientData{
			Method:  q.Method,
			Divisor: q.Divisor,
			Param:   param,
			Result:  q.Result,
		})
	}

	for _, c := range cat.Conversions {
		from, ok := index[c.From]
		if !ok {
			return fileData{}, fmt.Errorf("codegen: conversion %s: %w", c.From, catalog.ErrUnknownUnit)
		}
		to, ok := index[c.To]
		if !ok {
			return fileData{}, fmt.Errorf("codegen: conversion %s: %w", c.To, catalog.ErrUnknownUnit)
		}
		if err := noteMath(c.Factor); err != nil {
			return fileData{}, fmt.Errorf("codegen: conversion %s->%s: %w", c.From, c.To, err)
		}
		name := catalog.FactorConst(c)
		integer := catalog.IntegerConversion(data.Units[from].rep, data.Units[to].rep)
		data.Conversions = append(data.Conversions, conversionConst{
			Name:   name,
			From:   c.From,
			To:     c.To,
			Factor: c.Factor,
		})
		data.Units[from].Converts = append(data.Units[from].Converts, convertData{
			Method: c.Method, Target: c.To, Const: name, Integer: integer,
		})
		data.Units[to].Converts = append(data.Units[to].Converts, convertData{
			Method: c.Inverse, Target: c.From, Const: name, Invert: true, Integer: integer,
		})
	}
	return data, nil
}

// localNames are identifiers the generated methods use besides their
// receiver.
var localNames = map[string]bool{"dim": true, "math": true, "text": true, "parsed": true, "err": true}

// receiver abbreviates a type name to its lowercased capitals, e.g.
// AngularFrequency -> af, LSB -> lsb. Abbreviations that would shadow a
// keyword, a predeclared name or a local fall back to x.
func receiver(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	r := b.String()
	if r == "" || token.IsKeyword(r) || types.Universe.Lookup(r) != nil || localNames[r] {
		return "x"
	}
	return r
}

func docLines(doc, fallback string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		doc = fallback
	}
	return strings.Split(doc, "\n")
}
