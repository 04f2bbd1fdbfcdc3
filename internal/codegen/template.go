package codegen

import (
	"fmt"
	"text/template"

	"github.com/danmuck/dimunit/internal/catalog"
)

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"formatCall": formatCall,
	"appendCall": appendCall,
	"parseFunc":  parseFunc,
}).Parse(fileText + unitText))

func formatCall(u unitData) string {
	switch u.Kind {
	case catalog.KindSigned:
		return fmt.Sprintf("dim.FormatInt(int64(%s), %q)", u.Recv, u.Symbol)
	case catalog.KindUnsigned:
		return fmt.Sprintf("dim.FormatUint(uint64(%s), %q)", u.Recv, u.Symbol)
	}
	if u.Format == catalog.FormatPlain {
		return fmt.Sprintf("dim.FormatPlain(float64(%s), %q)", u.Recv, u.Symbol)
	}
	return fmt.Sprintf("dim.FormatSI(float64(%s), %q)", u.Recv, u.Symbol)
}

func appendCall(u unitData) string {
	switch u.Kind {
	case catalog.KindSigned:
		return fmt.Sprintf("dim.AppendInt(nil, int64(%s), %q)", u.Recv, u.Symbol)
	case catalog.KindUnsigned:
		return fmt.Sprintf("dim.AppendUint(nil, uint64(%s), %q)", u.Recv, u.Symbol)
	default:
		return fmt.Sprintf("dim.AppendFloat(nil, float64(%s), %s, %q)", u.Recv, u.Bits, u.Symbol)
	}
}

func parseFunc(u unitData) string {
	switch u.Kind {
	case catalog.KindSigned:
		return "dim.ParseSigned"
	case catalog.KindUnsigned:
		return "dim.ParseUnsigned"
	default:
		return "dim.ParseFloat"
	}
}

const fileText = `// Code generated by unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
{{- if .UsesMath}}
	"math"
{{end}}
	"{{.DimImport}}"
)
{{if .Conversions}}
// Conversion factors. Each is declared once and used in both directions.
const (
{{- range .Conversions}}
	{{.Name}} = {{.Factor}}
{{- end}}
)
{{end}}
{{- range .Units}}
{{template "unit" .}}
{{- end}}
`

const unitText = `{{define "unit"}}
{{range .Doc}}// {{.}}
{{end}}type {{.Name}} {{.GoType}}
{{range .Aliases}}
{{range .Doc}}// {{.}}
{{end}}type {{.Name}} = {{$.Name}}
{{end}}
// {{.Name}} sub-units.
const (
{{- range .Subs}}
	{{.Name}} {{$.Name}} = {{.Factor}}
{{- end}}
)
{{if .Constants}}
const (
{{- range .Constants}}
{{range .Doc}}	// {{.}}
{{end}}	{{.Name}} {{$.Name}} = {{.Value}}
{{- end}}
)
{{end}}
var {{.SymbolVar}} = []dim.Symbol[{{.Name}}]{
{{- range .Symbols}}
	{Name: {{printf "%q" .Symbol}}, Unit: {{.Name}}},
{{- end}}
}

// New{{.Name}} returns a {{.Name}} of v {{.Symbol}}.
func New{{.Name}}(v {{.GoType}}) {{.Name}} {
	return {{.Name}}(v)
}

// Canonical returns {{.Recv}} in {{.Symbol}} without its unit.
func ({{.Recv}} {{.Name}}) Canonical() {{.GoType}} {
	return {{.GoType}}({{.Recv}})
}
{{range .Subs}}
// {{.Accessor}} returns {{$.Recv}} in {{.Symbol}}.
func ({{$.Recv}} {{$.Name}}) {{.Accessor}}() {{$.GoType}} {
	return dim.Ratio[{{$.GoType}}]({{$.Recv}}, {{.Name}})
}
{{end}}
// Add returns {{.Recv}}+{{.Other}}.
func ({{.Recv}} {{.Name}}) Add({{.Other}} {{.Name}}) {{.Name}} {
	return dim.Add({{.Recv}}, {{.Other}})
}

// Sub returns {{.Recv}}-{{.Other}}.
func ({{.Recv}} {{.Name}}) Sub({{.Other}} {{.Name}}) {{.Name}} {
	return dim.Sub({{.Recv}}, {{.Other}})
}

// Mul scales {{.Recv}} by the dimensionless {{.Scalar}}.
func ({{.Recv}} {{.Name}}) Mul({{.Scalar}} {{.GoType}}) {{.Name}} {
	return dim.Scale({{.Scalar}}, {{.Recv}})
}

// Div divides {{.Recv}} by the dimensionless {{.Scalar}}.
func ({{.Recv}} {{.Name}}) Div({{.Scalar}} {{.GoType}}) {{.Name}} {
	return dim.Div({{.Recv}}, {{.Scalar}})
}

// Ratio returns {{.Recv}}/{{.Other}}. The unit cancels.
func ({{.Recv}} {{.Name}}) Ratio({{.Other}} {{.Name}}) {{.GoType}} {
	return dim.Ratio[{{.GoType}}]({{.Recv}}, {{.Other}})
}

// Less reports whether {{.Recv}} < {{.Other}}.
func ({{.Recv}} {{.Name}}) Less({{.Other}} {{.Name}}) bool {
	return dim.Less({{.Recv}}, {{.Other}})
}
{{range .Quotients}}
// {{.Method}} returns the {{.Result}} {{$.Recv}}/{{.Param}}.
func ({{$.Recv}} {{$.Name}}) {{.Method}}({{.Param}} {{.Divisor}}) {{.Result}} {
	return dim.Quotient[{{.Result}}]({{$.Recv}}, {{.Param}})
}
{{end}}
{{- range .Converts}}
{{if .Invert}}
// {{.Method}} converts {{$.Recv}} to {{.Target}}, dividing by {{.Const}}.
func ({{$.Recv}} {{$.Name}}) {{.Method}}() {{.Target}} {
	return dim.Invert{{if .Integer}}Integer{{end}}[{{.Target}}]({{$.Recv}}, {{.Const}})
}
{{else}}
// {{.Method}} converts {{$.Recv}} to {{.Target}}, multiplying by {{.Const}}.
func ({{$.Recv}} {{$.Name}}) {{.Method}}() {{.Target}} {
	return dim.Convert{{if .Integer}}Integer{{end}}[{{.Target}}]({{$.Recv}}, {{.Const}})
}
{{end}}
{{- end}}
// String formats {{.Recv}} for display.
func ({{.Recv}} {{.Name}}) String() string {
	return {{formatCall .}}
}

// MarshalText encodes {{.Recv}} losslessly in {{.Symbol}}.
func ({{.Recv}} {{.Name}}) MarshalText() ([]byte, error) {
	return {{appendCall .}}, nil
}

// UnmarshalText decodes text written with any {{.Name}} symbol.
func ({{.Recv}} *{{.Name}}) UnmarshalText(text []byte) error {
	parsed, err := Parse{{.Name}}(string(text))
	if err != nil {
		return err
	}
	*{{.Recv}} = parsed
	return nil
}

// Parse{{.Name}} reads "<number> <symbol>" or "<number><symbol>" for any
// {{.Name}} sub-unit.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	return {{parseFunc .}}(s, {{printf "%q" .Name}}, {{.Bits}}, {{.SymbolVar}})
}
{{end}}`
