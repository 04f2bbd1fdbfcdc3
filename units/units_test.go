package units

import (
	"math"
	"testing"
	"unsafe"

	"github.com/danmuck/dimunit/dim"
	"github.com/danmuck/dimunit/internal/testutil/approx"
)

var magnitudes = []Base{0, 1, -1, 0.5, 2.75, -12.5, 1e3}

func checkSubUnit[U ~float32 | ~float64](t *testing.T, name string, sub U, read func(U) Base) {
	t.Helper()
	for _, n := range magnitudes {
		v := dim.Scale(n, sub)
		if Base(v) != n*Base(sub) {
			t.Fatalf("%s: canonical of %v units = %v, want %v", name, n, Base(v), n*Base(sub))
		}
		if got := read(v); !approx.Equal(got, n, approx.RelTol) {
			t.Fatalf("%s: accessor of %v units = %v", name, n, got)
		}
	}
}

func TestSubUnitConstantsAndAccessors(t *testing.T) {
	checkSubUnit(t, "Microsecond", Microsecond, Time.Microseconds)
	checkSubUnit(t, "Millisecond", Millisecond, Time.Milliseconds)
	checkSubUnit(t, "Second", Second, Time.Seconds)
	checkSubUnit(t, "Minute", Minute, Time.Minutes)
	checkSubUnit(t, "Hour", Hour, Time.Hours)
	checkSubUnit(t, "Millimeter", Millimeter, Length.Millimeters)
	checkSubUnit(t, "Centimeter", Centimeter, Length.Centimeters)
	checkSubUnit(t, "Meter", Meter, Length.Meters)
	checkSubUnit(t, "Kilometer", Kilometer, Length.Kilometers)
	checkSubUnit(t, "Hertz", Hertz, Frequency.Hertz)
	checkSubUnit(t, "Kilohertz", Kilohertz, Frequency.Kilohertz)
	checkSubUnit(t, "Megahertz", Megahertz, Frequency.Megahertz)
	checkSubUnit(t, "SamplePerSecond", SamplePerSecond, Frequency.SamplesPerSecond)
	checkSubUnit(t, "KilosamplePerSecond", KilosamplePerSecond, Frequency.KilosamplesPerSecond)
	checkSubUnit(t, "RadianPerSecond", RadianPerSecond, AngularFrequency.RadiansPerSecond)
	checkSubUnit(t, "DegreePerSecond", DegreePerSecond, AngularFrequency.DegreesPerSecond)
	checkSubUnit(t, "RevolutionPerMinute", RevolutionPerMinute, AngularFrequency.RevolutionsPerMinute)
	checkSubUnit(t, "Radian", Radian, Angle.Radians)
	checkSubUnit(t, "Degree", Degree, Angle.Degrees)
	checkSubUnit(t, "Revolution", Revolution, Angle.Revolutions)
	checkSubUnit(t, "MeterPerSecond", MeterPerSecond, Velocity.MetersPerSecond)
	checkSubUnit(t, "KilometerPerHour", KilometerPerHour, Velocity.KilometersPerHour)
	checkSubUnit(t, "MeterPerSecondSquared", MeterPerSecondSquared, Acceleration.MetersPerSecondSquared)
	checkSubUnit(t, "GravityUnit", GravityUnit, Acceleration.Gs)
	checkSubUnit(t, "Byte", Byte, ByteSize.Bytes)
	checkSubUnit(t, "Kilobyte", Kilobyte, ByteSize.Kilobytes)
	checkSubUnit(t, "Megabyte", Megabyte, ByteSize.Megabytes)
	checkSubUnit(t, "Kibibyte", Kibibyte, ByteSize.Kibibytes)
	checkSubUnit(t, "Mebibyte", Mebibyte, ByteSize.Mebibytes)
	checkSubUnit(t, "Bit", Bit, BitSize.Bits)
	checkSubUnit(t, "Kilobit", Kilobit, BitSize.Kilobits)
	checkSubUnit(t, "Megabit", Megabit, BitSize.Megabits)
	checkSubUnit(t, "BitPerSecond", BitPerSecond, BitRate.BitsPerSecond)
	checkSubUnit(t, "KilobitPerSecond", KilobitPerSecond, BitRate.KilobitsPerSecond)
	checkSubUnit(t, "MegabitPerSecond", MegabitPerSecond, BitRate.MegabitsPerSecond)
}

func TestExactAccessorsForIntegralFactors(t *testing.T) {
	for _, n := range magnitudes {
		if got := Minute.Mul(n).Minutes(); got != n {
			t.Fatalf("minutes of %v min = %v", n, got)
		}
		if got := Kibibyte.Mul(n).Kibibytes(); got != n {
			t.Fatalf("KiB of %v KiB = %v", n, got)
		}
	}
}

func TestConstructorAndCanonical(t *testing.T) {
	for _, n := range magnitudes {
		if NewTime(n).Canonical() != n || NewTime(n) != Time(n) {
			t.Fatalf("NewTime(%v) did not keep its magnitude", n)
		}
	}
	if NewLength(5) != 5*Meter {
		t.Fatalf("expected canonical length in meters")
	}
	if NewLSB(7).Canonical() != 7 {
		t.Fatalf("expected raw LSB count")
	}
}

func TestAddSubFollowCanonicalMagnitudes(t *testing.T) {
	for _, x := range magnitudes {
		for _, y := range magnitudes {
			a, b := NewLength(x), NewLength(y)
			if a.Add(b) != NewLength(x+y) {
				t.Fatalf("%v+%v: got %v", x, y, a.Add(b))
			}
			if a.Sub(b) != NewLength(x-y) {
				t.Fatalf("%v-%v: got %v", x, y, a.Sub(b))
			}
			if a.Add(b) != b.Add(a) {
				t.Fatalf("add not commutative for %v, %v", x, y)
			}
		}
	}
	if Hour.Sub(Minute) == Minute.Sub(Hour) {
		t.Fatalf("expected subtraction to depend on operand order")
	}
}

func TestScalarMultiplyBothOrders(t *testing.T) {
	for _, x := range magnitudes {
		for _, k := range magnitudes {
			a := NewVelocity(x)
			want := x * k
			if a.Mul(k).Canonical() != want {
				t.Fatalf("(%v).Mul(%v) = %v, want %v", x, k, a.Mul(k), want)
			}
			if dim.Scale(k, a).Canonical() != want {
				t.Fatalf("Scale(%v, %v) = %v, want %v", k, x, dim.Scale(k, a), want)
			}
		}
	}
	// Untyped constants scale natively in either order.
	if 5*Minute != Minute*5 || (5 * Minute).Minutes() != 5 {
		t.Fatalf("expected 5 min")
	}
}

func TestDivisionByScalarAndSameUnit(t *testing.T) {
	if got := Hour.Div(4); got != 15*Minute {
		t.Fatalf("expected 15 min, got %v", got)
	}
	if got := Hour.Ratio(Minute); got != 60 {
		t.Fatalf("expected ratio 60, got %v", got)
	}
	var ratio Base = Kilometer.Ratio(Meter)
	if ratio != 1000 {
		t.Fatalf("expected dimensionless 1000, got %v", ratio)
	}
	if got := NewLSB(10).Ratio(NewLSB(4)); got != 2 {
		t.Fatalf("expected integer ratio 2, got %d", got)
	}
}

func TestOrderingAndEquality(t *testing.T) {
	if !Second.Less(Minute) || Minute.Less(Second) || !(Second < Minute) {
		t.Fatalf("unexpected ordering of second and minute")
	}
	if Minute != 60*Second {
		t.Fatalf("expected 60 s to equal 1 min")
	}
	nan := NewTime(Base(math.NaN()))
	if nan == nan || nan.Less(Second) || Second.Less(nan) {
		t.Fatalf("NaN must compare unequal and unordered")
	}
}

func TestQuotientLaw(t *testing.T) {
	for _, x := range magnitudes {
		for _, y := range []Base{1, -2, 0.25, 60, 3600} {
			d, v := NewLength(x), NewTime(y)
			if d.PerTime(v) != NewVelocity(x/y) {
				t.Fatalf("%v m / %v s = %v", x, y, d.PerTime(v))
			}
			if NewVelocity(x).PerTime(v) != NewAcceleration(x/y) {
				t.Fatalf("%v m/s / %v s = %v", x, y, NewVelocity(x).PerTime(v))
			}
			if NewAngle(x).PerTime(v) != NewAngularFrequency(x/y) {
				t.Fatalf("%v rad / %v s mismatch", x, y)
			}
			if NewBitSize(x).PerTime(v) != NewBitRate(x/y) {
				t.Fatalf("%v bit / %v s mismatch", x, y)
			}
		}
	}
}

func TestQuotientByZeroPropagatesIEEE(t *testing.T) {
	v := Meter.PerTime(0)
	if !math.IsInf(float64(v), 1) {
		t.Fatalf("expected +Inf velocity, got %v", v)
	}
	if a := v.PerTime(Second); !math.IsInf(float64(a), 1) {
		t.Fatalf("expected Inf to propagate, got %v", a)
	}
	if z := NewLength(0).PerTime(0); !math.IsNaN(float64(z)) {
		t.Fatalf("expected NaN, got %v", z)
	}
}

func TestConversionLaw(t *testing.T) {
	factor := float64(frequencyToAngularFrequency)
	for _, x := range magnitudes {
		f := NewFrequency(x)
		w := f.ToAngularFrequency()
		if want := Base(float64(x) * factor); w.Canonical() != want {
			t.Fatalf("%v Hz -> %v rad/s, want %v", x, w, want)
		}
		if back := w.ToFrequency(); !approx.Equal(back.Canonical(), x, approx.RelTol) {
			t.Fatalf("%v Hz round trip = %v", x, back)
		}

		b := NewByteSize(x)
		if b.ToBitSize().Canonical() != x*8 {
			t.Fatalf("%v B -> %v", x, b.ToBitSize())
		}
		if b.ToBitSize().ToByteSize() != b {
			t.Fatalf("%v B round trip not exact", x)
		}
	}
}

func TestScenarioKilohertzInHertz(t *testing.T) {
	if got := (10 * Kilohertz).Hertz(); got != 10000 {
		t.Fatalf("expected 10000 Hz, got %v", got)
	}
}

func TestScenarioMetersPerSecond(t *testing.T) {
	var v Speed = (1 * Meter).PerTime(1 * Second)
	if v != 1*MeterPerSecond {
		t.Fatalf("expected 1 m/s, got %v", v)
	}
}

func TestScenarioMetersPerSecondSquared(t *testing.T) {
	a := (1 * Meter).PerTime(Second).PerTime(Second)
	if a != 1*MeterPerSecondSquared {
		t.Fatalf("expected 1 m/s², got %v", a)
	}
}

func TestScenarioKilometerPerMinuteEqualsSixtyPerHour(t *testing.T) {
	a := (1 * Kilometer).PerTime(1 * Minute)
	b := (60 * Kilometer).PerTime(1 * Hour)
	if a != b {
		t.Fatalf("expected equal velocities, got %v and %v", a, b)
	}
	if !approx.Equal(a.Canonical(), 1000.0/60.0, approx.RelTol) {
		t.Fatalf("unexpected canonical velocity %v", a.Canonical())
	}
	if !approx.Equal(a.KilometersPerHour(), 60, approx.RelTol) {
		t.Fatalf("expected 60 km/h, got %v", a.KilometersPerHour())
	}
}

func TestScenarioHertzToAngularFrequency(t *testing.T) {
	var w AngularSpeed = (50 * Hertz).ToAngularFrequency()
	if !approx.Equal(w.RadiansPerSecond(), 100*math.Pi, approx.RelTol) {
		t.Fatalf("expected 100π rad/s, got %v", w)
	}
	if !approx.Equal(w.RevolutionsPerMinute(), 3000, approx.RelTol) {
		t.Fatalf("expected 3000 rpm, got %v", w.RevolutionsPerMinute())
	}
}

func TestScenarioByteToBits(t *testing.T) {
	bits := (1 * Byte).ToBitSize()
	if bits != 8*Bit || bits.Bits() != 8 {
		t.Fatalf("expected 8 bit, got %v", bits)
	}
	if back := bits.ToByteSize(); back != 1*Byte {
		t.Fatalf("expected 1 B back, got %v", back)
	}
}

func TestDerivedRelations(t *testing.T) {
	rpm := (1 * Revolution).PerTime(1 * Minute)
	if !approx.Equal(rpm.RevolutionsPerMinute(), 1, approx.RelTol) {
		t.Fatalf("expected 1 rpm, got %v", rpm.RevolutionsPerMinute())
	}
	if !approx.Equal((180 * Degree).Radians(), math.Pi, approx.RelTol) {
		t.Fatalf("expected π rad")
	}
	rate := (1 * Megabit).PerTime(1 * Second)
	if rate != 1*MegabitPerSecond {
		t.Fatalf("expected 1 Mbit/s, got %v", rate)
	}
	if (1 * Kibibyte).ToBitSize().Bits() != 8192 {
		t.Fatalf("expected 8192 bits in a KiB")
	}
}

func TestPhysicalConstants(t *testing.T) {
	if !approx.Equal(SpeedOfLight.MetersPerSecond(), 299792458, approx.RelTol) {
		t.Fatalf("unexpected c: %v", SpeedOfLight)
	}
	if StandardGravity.Gs() != 1 {
		t.Fatalf("expected 1 g0, got %v", StandardGravity.Gs())
	}
	fall := NewVelocity(StandardGravity.Mul(2).Canonical())
	if !approx.Equal(fall.Canonical(), 2*9.80665, approx.RelTol) {
		t.Fatalf("unexpected fall speed %v", fall)
	}
}

func TestAliasesAreTheSameType(t *testing.T) {
	var fs SamplingFrequency = 48 * KilosamplePerSecond
	var f Frequency = fs
	if f.Kilohertz() != 48 {
		t.Fatalf("expected 48 kHz, got %v", f.Kilohertz())
	}
}

func TestIntegerUnit(t *testing.T) {
	a := 3 * LeastSignificantBit
	b := NewLSB(4)
	if a.Add(b) != 7 || b.Sub(a) != 1 {
		t.Fatalf("unexpected LSB arithmetic")
	}
	if a.Mul(5).Counts() != 15 || NewLSB(15).Div(4) != 3 {
		t.Fatalf("unexpected LSB scaling")
	}
	if !a.Less(b) {
		t.Fatalf("expected 3 < 4")
	}
}

func TestUnitValuesHaveScalarRepresentation(t *testing.T) {
	if unsafe.Sizeof(Second) != unsafe.Sizeof(Base(0)) {
		t.Fatalf("Time is not the size of Base")
	}
	if unsafe.Sizeof(LeastSignificantBit) != unsafe.Sizeof(uint(0)) {
		t.Fatalf("LSB is not the size of uint")
	}
	if unsafe.Sizeof([4]Velocity{}) != 4*unsafe.Sizeof(Base(0)) {
		t.Fatalf("arrays of units are padded")
	}
}
