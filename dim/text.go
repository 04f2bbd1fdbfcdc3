package dim

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// Symbol binds a textual sub-unit symbol to the unit value of one of it.
type Symbol[U any] struct {
	Name string
	Unit U
}

const displayDigits = 3

// smallestPlain is the least magnitude FtoaWithDigits shows without
// rounding it to zero.
const smallestPlain = 1e-3

// FormatSI renders v with an SI prefix on symbol, e.g. "10 kHz".
func FormatSI(v float64, symbol string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatPlain(v, symbol)
	}
	return humanize.SIWithDigits(v, displayDigits, symbol)
}

// FormatPlain renders v in symbol without rescaling, e.g. "3600 s".
func FormatPlain(v float64, symbol string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64) + " " + symbol
	}
	if v != 0 && math.Abs(v) < smallestPlain {
		return strconv.FormatFloat(v, 'g', displayDigits, 64) + " " + symbol
	}
	return humanize.FtoaWithDigits(v, displayDigits) + " " + symbol
}

func FormatInt(v int64, symbol string) string {
	return humanize.Comma(v) + " " + symbol
}

func FormatUint(v uint64, symbol string) string {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10) + " " + symbol
	}
	return humanize.Comma(int64(v)) + " " + symbol
}

// AppendFloat appends the lossless text form of a canonical magnitude. bits
// is the width of the representation so float32 values stay short.
func AppendFloat(dst []byte, v float64, bits int, symbol string) []byte {
	dst = strconv.AppendFloat(dst, v, 'g', -1, bits)
	dst = append(dst, ' ')
	return append(dst, symbol...)
}

func AppendInt(dst []byte, v int64, symbol string) []byte {
	dst = strconv.AppendInt(dst, v, 10)
	dst = append(dst, ' ')
	return append(dst, symbol...)
}

func AppendUint(dst []byte, v uint64, symbol string) []byte {
	dst = strconv.AppendUint(dst, v, 10)
	dst = append(dst, ' ')
	return append(dst, symbol...)
}

// ParseFloat reads "<number> <symbol>" or "<number><symbol>" into a float
// unit. kind names the unit in errors and bits is the representation width.
func ParseFloat[U Float](s, kind string, bits int, symbols []Symbol[U]) (U, error) {
	isNumber := func(num string) bool {
		_, err := strconv.ParseFloat(num, bits)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}
	num, unit, err := split(s, kind, symbols, isNumber)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(num, bits)
	if err != nil {
		return 0, numError(s, kind, err)
	}
	scaled := U(v) * unit
	if math.IsInf(float64(scaled), 0) && !math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse %s %q: %w", kind, s, ErrRange)
	}
	return scaled, nil
}

// ParseSigned is ParseFloat for signed integer units. bits of 0 means int.
func ParseSigned[U Signed](s, kind string, bits int, symbols []Symbol[U]) (U, error) {
	isNumber := func(num string) bool {
		_, err := strconv.ParseInt(num, 10, bits)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}
	num, unit, err := split(s, kind, symbols, isNumber)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(num, 10, bits)
	if err != nil {
		return 0, numError(s, kind, err)
	}
	if u := int64(unit); u > 1 {
		hi, lo := signedBounds(bits)
		if v > hi/u || v < lo/u {
			return 0, fmt.Errorf("parse %s %q: %w", kind, s, ErrRange)
		}
	}
	return U(v) * unit, nil
}

// ParseUnsigned is ParseFloat for unsigned integer units. bits of 0 means uint.
func ParseUnsigned[U Unsigned](s, kind string, bits int, symbols []Symbol[U]) (U, error) {
	isNumber := func(num string) bool {
		_, err := strconv.ParseUint(num, 10, bits)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}
	num, unit, err := split(s, kind, symbols, isNumber)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(num, 10, bits)
	if err != nil {
		return 0, numError(s, kind, err)
	}
	if u := uint64(unit); u > 1 && v > unsignedBound(bits)/u {
		return 0, fmt.Errorf("parse %s %q: %w", kind, s, ErrRange)
	}
	return U(v) * unit, nil
}

// split separates the number from the symbol. With whitespace the symbol must
// match exactly; without it the longest symbol suffix that leaves a number wins.
func split[U any](s, kind string, symbols []Symbol[U], isNumber func(string) bool) (string, U, error) {
	var zero U
	text := strings.TrimSpace(s)
	if text == "" {
		return "", zero, fmt.Errorf("parse %s %q: %w", kind, s, ErrSyntax)
	}
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		num, name := text[:i], strings.TrimSpace(text[i:])
		for _, sym := range symbols {
			if sym.Name == name {
				return num, sym.Unit, nil
			}
		}
		return "", zero, fmt.Errorf("parse %s %q: %w", kind, s, ErrUnknownSymbol)
	}

	best := -1
	matched := false
	for i, sym := range symbols {
		num, ok := strings.CutSuffix(text, sym.Name)
		if !ok || num == "" {
			continue
		}
		matched = true
		if isNumber(num) && (best < 0 || len(sym.Name) > len(symbols[best].Name)) {
			best = i
		}
	}
	if best >= 0 {
		return strings.TrimSuffix(text, symbols[best].Name), symbols[best].Unit, nil
	}
	if matched {
		return "", zero, fmt.Errorf("parse %s %q: %w", kind, s, ErrSyntax)
	}
	return "", zero, fmt.Errorf("parse %s %q: %w", kind, s, ErrUnknownSymbol)
}

// signedBounds returns the largest and smallest values of a bits wide
// signed integer. bits of 0 means int.
func signedBounds(bits int) (int64, int64) {
	if bits == 0 {
		bits = strconv.IntSize
	}
	hi := int64(1)<<(bits-1) - 1
	return hi, -hi - 1
}

func unsignedBound(bits int) uint64 {
	if bits == 0 {
		bits = strconv.IntSize
	}
	if bits == 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}

func numError(s, kind string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("parse %s %q: %w", kind, s, ErrRange)
	}
	return fmt.Errorf("parse %s %q: %w", kind, s, ErrSyntax)
}
