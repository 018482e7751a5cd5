package morsecalc

import (
	"math"

	"morsewatch/hal"
)

// printFloat renders a value into display positions 4-9 with four
// significant digits and a two-digit decimal exponent, plus the value's
// sign at position 1. Layout:
//
//	pos 1    value sign ('-' or blank)
//	pos 2    reserved exponent-sign column, always blank: positive and
//	         negative exponents render identically
//	pos 4-7  four significant digits, rounded half away from zero
//	pos 8-9  magnitude of the decimal exponent
//
// Zero, NaN and the infinities render as literal fields. When the exponent
// magnitude exceeds two digits the whole field degrades to an overflow or
// underflow marker with the exponent magnitude in the digit positions.
func printFloat(d hal.Display, v float64) {
	switch {
	case v == 0:
		d.WriteString("     0", 4)
		return
	case math.IsNaN(v):
		d.WriteString("   nan", 4)
		return
	case math.IsInf(v, 1):
		d.WriteString("   inf", 4)
		return
	case math.IsInf(v, -1):
		d.WriteChar('-', 1)
		d.WriteString("   inf", 4)
		return
	}

	neg := v < 0
	if neg {
		v = -v
	}

	om := int(math.Floor(math.Log10(v)))
	omNeg := om < 0

	// First four significant digits as an integer in [1000, 9999].
	digits := int(math.Round(v * math.Pow(10, float64(3-om))))
	if digits > 9999 {
		// Rounding crossed a power-of-ten boundary.
		digits = 1000
		om++
	}

	if neg {
		d.WriteChar('-', 1)
	} else {
		d.WriteChar(' ', 1)
	}
	d.WriteChar(' ', 2)

	d.WriteChar('0'+byte(digits/1000%10), 4)
	d.WriteChar('0'+byte(digits/100%10), 5)
	d.WriteChar('0'+byte(digits/10%10), 6)
	d.WriteChar('0'+byte(digits%10), 7)

	if omNeg {
		om = -om
	}
	if om <= 99 {
		d.WriteChar('0'+byte(om/10%10), 8)
		d.WriteChar('0'+byte(om%10), 9)
		return
	}

	// Exponent does not fit on two digits: show an overflow/underflow
	// marker and reuse the digit positions for the exponent magnitude,
	// which always fits four digits for a representable double.
	if omNeg {
		d.WriteString("    uf", 4)
	} else {
		d.WriteString("    of", 4)
	}
	if om < 9999 {
		d.WriteChar('0'+byte(om/1000%10), 4)
		d.WriteChar('0'+byte(om/100%10), 5)
		d.WriteChar('0'+byte(om/10%10), 6)
		d.WriteChar('0'+byte(om%10), 7)
	}
}
