package catalog

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"math"
)

// Factor is a parsed Go constant expression from the catalog.
type Factor struct {
	Expr     string
	Value    constant.Value
	UsesMath bool
}

var mathConstants = map[string]float64{
	"E":       math.E,
	"Pi":      math.Pi,
	"Phi":     math.Phi,
	"Sqrt2":   math.Sqrt2,
	"SqrtE":   math.SqrtE,
	"SqrtPi":  math.SqrtPi,
	"SqrtPhi": math.SqrtPhi,
	"Ln2":     math.Ln2,
	"Log2E":   math.Log2E,
	"Ln10":    math.Ln10,
	"Log10E":  math.Log10E,
}

// ParseFactor evaluates expr with Go constant semantics. Only numeric
// literals, parentheses, unary and binary + - * / and the math package
// constants are accepted, so the text can be emitted verbatim as a Go
// constant. Integer division truncates as it does in Go.
func ParseFactor(expr string) (Factor, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return Factor{}, fmt.Errorf("%w: %q: %v", ErrInvalidFactor, expr, err)
	}
	f := Factor{Expr: expr}
	v, err := f.eval(node)
	if err != nil {
		return Factor{}, fmt.Errorf("%w: %q: %v", ErrInvalidFactor, expr, err)
	}
	f.Value = v
	return f, nil
}

func (f *Factor) eval(node ast.Expr) (constant.Value, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return nil, fmt.Errorf("unsupported literal %s", n.Value)
		}
		v := constant.MakeFromLiteral(n.Value, n.Kind, 0)
		if v.Kind() == constant.Unknown {
			return nil, fmt.Errorf("malformed literal %s", n.Value)
		}
		return v, nil
	case *ast.ParenExpr:
		return f.eval(n.X)
	case *ast.UnaryExpr:
		if n.Op != token.ADD && n.Op != token.SUB {
			return nil, fmt.Errorf("unsupported operator %s", n.Op)
		}
		x, err := f.eval(n.X)
		if err != nil {
			return nil, err
		}
		return constant.UnaryOp(n.Op, x, 0), nil
	case *ast.BinaryExpr:
		x, err := f.eval(n.X)
		if err != nil {
			return nil, err
		}
		y, err := f.eval(n.Y)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case token.ADD, token.SUB, token.MUL:
			return constant.BinaryOp(x, n.Op, y), nil
		case token.QUO:
			if constant.Sign(y) == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			if x.Kind() == constant.Int && y.Kind() == constant.Int {
				return constant.BinaryOp(x, token.QUO_ASSIGN, y), nil
			}
			return constant.BinaryOp(x, token.QUO, y), nil
		default:
			return nil, fmt.Errorf("unsupported operator %s", n.Op)
		}
	case *ast.SelectorExpr:
		pkg, ok := n.X.(*ast.Ident)
		if !ok || pkg.Name != "math" {
			return nil, fmt.Errorf("unsupported selector")
		}
		c, ok := mathConstants[n.Sel.Name]
		if !ok {
			return nil, fmt.Errorf("unsupported constant math.%s", n.Sel.Name)
		}
		f.UsesMath = true
		return constant.MakeFloat64(c), nil
	default:
		return nil, fmt.Errorf("unsupported expression %T", node)
	}
}

// Sign returns -1, 0 or 1 for negative, zero and positive factors.
func (f Factor) Sign() int {
	return constant.Sign(f.Value)
}

func (f Factor) Positive() bool {
	return f.Sign() > 0
}

// Integral reports whether the factor has no fractional part.
func (f Factor) Integral() bool {
	return constant.ToInt(f.Value).Kind() == constant.Int
}

// IsOne reports whether the factor is exactly one.
func (f Factor) IsOne() bool {
	return constant.Compare(f.Value, token.EQL, constant.MakeInt64(1))
}

// FitsIn reports whether the factor can be declared as a constant of rep
// without overflowing or rounding a non-zero value to zero.
func (f Factor) FitsIn(rep Representation) bool {
	switch rep.Kind {
	case KindFloat:
		v := constant.ToFloat(f.Value)
		var x float64
		if rep.Width == 32 {
			x32, _ := constant.Float32Val(v)
			x = float64(x32)
		} else {
			x, _ = constant.Float64Val(v)
		}
		return !math.IsInf(x, 0) && (x != 0 || constant.Sign(v) == 0)
	case KindSigned:
		v := constant.ToInt(f.Value)
		if v.Kind() != constant.Int {
			return false
		}
		x, exact := constant.Int64Val(v)
		if !exact {
			return false
		}
		hi := int64(1)<<(rep.Width-1) - 1
		return x <= hi && x >= -hi-1
	case KindUnsigned:
		v := constant.ToInt(f.Value)
		if v.Kind() != constant.Int || constant.Sign(v) < 0 {
			return false
		}
		x, exact := constant.Uint64Val(v)
		return exact && (rep.Width == 64 || x < 1<<rep.Width)
	}
	return false
}
