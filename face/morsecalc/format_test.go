package morsecalc

import (
	"math"
	"testing"

	"morsewatch/hal"
)

// fakeDisplay records the 10 character positions like the real drivers do.
type fakeDisplay struct {
	chars [hal.DisplayWidth]byte
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{}
	for i := range d.chars {
		d.chars[i] = ' '
	}
	return d
}

func (d *fakeDisplay) WriteString(s string, pos int) {
	for i := 0; i < len(s); i++ {
		p := pos + i
		if p < 0 || p >= hal.DisplayWidth {
			continue
		}
		d.chars[p] = s[i]
	}
}

func (d *fakeDisplay) WriteChar(c byte, pos int) {
	if pos < 0 || pos >= hal.DisplayWidth {
		return
	}
	d.chars[pos] = c
}

func (d *fakeDisplay) String() string {
	return string(d.chars[:])
}

func format(v float64) string {
	d := newFakeDisplay()
	printFloat(d, v)
	return d.String()
}

func TestPrintFloatSpecials(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "         0"},
		{"negative zero", math.Copysign(0, -1), "         0"},
		{"nan", math.NaN(), "       nan"},
		{"+inf", math.Inf(1), "       inf"},
		{"-inf", math.Inf(-1), " -     inf"},
	}

	for _, c := range cases {
		if got := format(c.v); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}

func TestPrintFloatGeneral(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{123.456, "    123502"},   // 1.235e2
		{-0.001, " -  100003"},    // -1.000e-3
		{1, "    100000"},         // 1.000e0
		{-1, " -  100000"},        //
		{42, "    420001"},        // 4.200e1
		{0.5, "    500001"},       // 5.000e-1
		{9.9999, "    100001"},    // rounds up across the decade
		{99995, "    100005"},     // same, further out
		{6.022e23, "    602223"},  // 6.022e23
		{1.5e-7, "    150007"},    // exponent sign column stays blank
	}

	for _, c := range cases {
		if got := format(c.v); got != c.want {
			t.Errorf("format(%v): expected %q, got %q", c.v, c.want, got)
		}
	}
}

func TestPrintFloatOverflowUnderflow(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1e120, "    0120of"},
		{2.5e305, "    0305of"},
		{1e-120, "    0120uf"},
		{-1e-120, " -  0120uf"},
	}

	for _, c := range cases {
		if got := format(c.v); got != c.want {
			t.Errorf("format(%v): expected %q, got %q", c.v, c.want, got)
		}
	}
}

// TestPrintFloatRoundTrip checks that the rendered mantissa and exponent
// reconstruct the value to within four significant digits.
func TestPrintFloatRoundTrip(t *testing.T) {
	values := []float64{
		1, -1, 2, 3.14159, -2.71828, 123.456, 99999, 0.001,
		-0.001, 7.5e10, -8.25e-11, 1.0001, 9.999, 4.5e42, 6.7e-33,
	}

	for _, v := range values {
		field := format(v)

		digits := 0
		for i := 4; i <= 7; i++ {
			digits = digits*10 + int(field[i]-'0')
		}
		om := int(field[8]-'0')*10 + int(field[9]-'0')

		// The exponent sign is not rendered; recover it from the value.
		if math.Abs(v) < 1 {
			om = -om
		}

		got := float64(digits) * math.Pow(10, float64(om-3))
		if field[1] == '-' {
			got = -got
		}

		rel := math.Abs(got-v) / math.Abs(v)
		if rel > 5e-4 {
			t.Errorf("round trip %v: field %q reconstructs to %v (rel err %v)", v, field, got, rel)
		}
	}
}
