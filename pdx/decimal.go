package pdx

import (
	"fmt"
	"strings"
)

// MaxFractionalDigits is the highest precision a Decimal can carry.
const MaxFractionalDigits = 9

var pow10 = [MaxFractionalDigits + 1]int32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// Decimal is a fixed-point number with a fixed count of fractional
// digits, stored exactly as an int32 scaled by 10^precision. Arithmetic
// is intentionally not provided; convert through Float64 when needed.
type Decimal struct {
	m    int32
	prec uint8
}

func (d Decimal) Precision() int { return int(d.prec) }

func (d Decimal) Scale() int32 { return pow10[d.prec] }

// Integral returns the digits before the radix point, signed.
func (d Decimal) Integral() int32 { return d.m / d.Scale() }

// Fractional returns the scaled digits after the radix point; its sign
// follows the value's sign.
func (d Decimal) Fractional() int32 { return d.m % d.Scale() }

func (d Decimal) Float64() float64 {
	return float64(d.m) / float64(d.Scale())
}

func (d Decimal) String() string {
	m := int64(d.m)
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	scale := int64(d.Scale())
	if f := m % scale; f != 0 {
		return fmt.Sprintf("%s%d.%0*d", sign, m/scale, int(d.prec), f)
	}
	return fmt.Sprintf("%s%d", sign, m/scale)
}

// integralBounds derives the symmetric representable range of the
// integral component for a given scale.
func integralBounds(scale int32) (min, max int64) {
	const i32max, i32min = int64(1<<31 - 1), int64(-1 << 31)
	s := int64(scale)
	max = (i32max - s - i32max%s) / s
	min = (i32min + s - i32min%s) / s
	return min, max
}

// ParseDecimal decodes a decimal token already known to match -?\d+\.\d*
// into a fixed-point value with prec fractional digits (1..9).
//
// Range and precision violations are common in large hand-edited data
// sets, so unlike dates they never abort the parse: an integral value
// outside the representable range is clamped and queued at normal
// severity, and fractional digits past prec are discarded with a queued
// warning.
func ParseDecimal(text string, prec int, loc FileLocation, q *ErrorQueue) Decimal {
	if prec < 1 || prec > MaxFractionalDigits {
		panic(fmt.Sprintf("pdx: decimal precision %d out of range [1, %d]", prec, MaxFractionalDigits))
	}
	scale := pow10[prec]
	intMin, intMax := integralBounds(scale)

	src := text
	negative := false
	if src[0] == '-' {
		negative = true
		src = src[1:]
	}
	dot := strings.IndexByte(src, '.')
	ip, fp := src[:dot], src[dot+1:]

	// Integral part, least-significant digit first, into a wide
	// accumulator so out-of-range values can still be reported.
	digits := strings.TrimLeft(ip, "0")
	var i int64
	overflow := len(digits) > 18 // would overflow even the accumulator
	if !overflow {
		power := int64(1)
		for k := len(digits) - 1; k >= 0; k-- {
			i += power * int64(digits[k]-'0')
			power *= 10
		}
		overflow = i < intMin || i > intMax
	}
	if overflow {
		q.Enqueue(SeverityNormal, loc,
			"integral value %s is too big (supported range: [%d, %d]) in decimal number",
			digits, intMin, intMax)
		i = intMax
	}

	// Fractional part, most-significant digit first, at most prec digits
	// weighted by descending powers of ten; absent digits are zero.
	var f int32
	for k := 0; k < prec && k < len(fp); k++ {
		f += pow10[prec-1-k] * int32(fp[k]-'0')
	}
	if len(fp) > prec {
		q.Enqueue(SeverityWarning, loc,
			"truncated decimal number '%s' past %d fractional digits (representable fractional range: [0, %d])",
			text, prec, scale-1)
	}

	m := int32(i)*scale + f
	if negative {
		m = -m
	}
	return Decimal{m: m, prec: uint8(prec)}
}
