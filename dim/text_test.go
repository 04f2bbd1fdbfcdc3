package dim

import (
	"errors"
	"math"
	"testing"
)

var meterSymbols = []Symbol[meters]{
	{Name: "m", Unit: 1},
	{Name: "mm", Unit: 0.001},
	{Name: "km", Unit: 1000},
}

var countSymbols = []Symbol[counts]{
	{Name: "LSB", Unit: 1},
	{Name: "kLSB", Unit: 1000},
}

type offset int32

var offsetSymbols = []Symbol[offset]{
	{Name: "step", Unit: 1},
	{Name: "page", Unit: 4096},
}

func TestParseFloatAcceptsSpacedAndJoinedForms(t *testing.T) {
	cases := []struct {
		in   string
		want meters
	}{
		{"5 m", 5},
		{"5m", 5},
		{"  2.5 km ", 2500},
		{"2.5km", 2500},
		{"-3mm", meters(float32(-3) * 0.001)},
		{"1e3 mm", meters(float32(1e3) * 0.001)},
		{"0 km", 0},
	}
	for _, tc := range cases {
		got, err := ParseFloat(tc.in, "Length", 32, meterSymbols)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseFloatPrefersLongestSymbol(t *testing.T) {
	// "mm" and "m" both suffix "7mm"; "7m" is a number only for "mm".
	got, err := ParseFloat("7mm", "Length", 32, meterSymbols)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != meters(float32(7)*0.001) {
		t.Fatalf("expected 7 mm, got %v", got)
	}
}

func TestParseFloatErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrSyntax},
		{"5", ErrUnknownSymbol},
		{"5 ft", ErrUnknownSymbol},
		{"5ft", ErrUnknownSymbol},
		{"five m", ErrSyntax},
		{"5xm", ErrSyntax},
		{"1e99 m", ErrRange},
	}
	for _, tc := range cases {
		_, err := ParseFloat(tc.in, "Length", 32, meterSymbols)
		if !errors.Is(err, tc.want) {
			t.Fatalf("parse %q: expected %v, got %v", tc.in, tc.want, err)
		}
	}
}

func TestParseIntegerUnits(t *testing.T) {
	got, err := ParseUnsigned("3 kLSB", "LSB", 0, countSymbols)
	if err != nil {
		t.Fatalf("parse unsigned: %v", err)
	}
	if got != 3000 {
		t.Fatalf("expected 3000, got %d", got)
	}
	if _, err := ParseUnsigned("-1 LSB", "LSB", 0, countSymbols); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax for negative count, got %v", err)
	}
	if _, err := ParseUnsigned("1.5 LSB", "LSB", 0, countSymbols); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax for fraction, got %v", err)
	}

	off, err := ParseSigned("-2page", "offset", 32, offsetSymbols)
	if err != nil {
		t.Fatalf("parse signed: %v", err)
	}
	if off != -8192 {
		t.Fatalf("expected -8192, got %d", off)
	}
	if _, err := ParseSigned("3000000000 step", "offset", 32, offsetSymbols); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
}

func TestParseDetectsOverflowAfterScaling(t *testing.T) {
	if _, err := ParseFloat("1e38 km", "Length", 32, meterSymbols); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange for 1e38 km, got %v", err)
	}
	if _, err := ParseFloat("1e35km", "Length", 32, meterSymbols); err != nil {
		t.Fatalf("expected 1e35 km to fit float32, got %v", err)
	}
	if v, err := ParseFloat("+Inf m", "Length", 32, meterSymbols); err != nil || !math.IsInf(float64(v), 1) {
		t.Fatalf("expected explicit infinity to parse, got %v, %v", v, err)
	}
	if _, err := ParseUnsigned("18446744073709552 kLSB", "LSB", 64, countSymbols); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange for wrapped count, got %v", err)
	}
	if v, err := ParseUnsigned("18446744073709551 kLSB", "LSB", 64, countSymbols); err != nil || v != 18446744073709551000 {
		t.Fatalf("expected largest scaled count, got %v, %v", v, err)
	}
	if _, err := ParseSigned("524288 page", "offset", 32, offsetSymbols); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange for 2^31 steps, got %v", err)
	}
	if _, err := ParseSigned("-524289 page", "offset", 32, offsetSymbols); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange below int32, got %v", err)
	}
	if v, err := ParseSigned("-524288 page", "offset", 32, offsetSymbols); err != nil || v != math.MinInt32 {
		t.Fatalf("expected MinInt32, got %v, %v", v, err)
	}
}

func TestAppendTextIsLossless(t *testing.T) {
	v := float32(1) / 3
	text := AppendFloat(nil, float64(v), 32, "m")
	back, err := ParseFloat(string(text), "Length", 32, meterSymbols)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	if float32(back) != v {
		t.Fatalf("round trip of %q: got %v want %v", text, back, v)
	}
	if got := string(AppendUint(nil, 42, "LSB")); got != "42 LSB" {
		t.Fatalf("unexpected uint text %q", got)
	}
	if got := string(AppendInt(nil, -42, "step")); got != "-42 step" {
		t.Fatalf("unexpected int text %q", got)
	}
}

func TestFormatForHumans(t *testing.T) {
	if got := FormatSI(10000, "Hz"); got != "10 kHz" {
		t.Fatalf("unexpected SI form %q", got)
	}
	if got := FormatPlain(3600, "s"); got != "3600 s" {
		t.Fatalf("unexpected plain form %q", got)
	}
	if got := FormatUint(1024, "LSB"); got != "1,024 LSB" {
		t.Fatalf("unexpected count form %q", got)
	}
	if got := FormatInt(-1500, "step"); got != "-1,500 step" {
		t.Fatalf("unexpected signed form %q", got)
	}
	if got := FormatPlain(1e-6, "s"); got != "1e-06 s" {
		t.Fatalf("unexpected small plain form %q", got)
	}
	if got := FormatPlain(0.0004, "rad"); got != "0.0004 rad" {
		t.Fatalf("unexpected small plain form %q", got)
	}
	if got := FormatPlain(-0.0004, "rad"); got != "-0.0004 rad" {
		t.Fatalf("unexpected small plain form %q", got)
	}
	if got := FormatPlain(0, "s"); got != "0 s" {
		t.Fatalf("unexpected zero form %q", got)
	}
	if got := FormatSI(math.Inf(1), "m"); got != "+Inf m" {
		t.Fatalf("unexpected infinite form %q", got)
	}
}
