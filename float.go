package numfmt

import (
	"math"
	"math/bits"
)

const (
	// sizeFloat covers a sign, the widest grouped uint64 integer part, a
	// decimal point, and eight fractional digits.
	sizeFloat = 36

	// floatDot is the fixed index of the decimal point within the buffer.
	floatDot = 27

	// floatDigits is the stored fractional precision. The ninth decimal
	// digit rounds half away from zero.
	floatDigits = 8

	floatScale = 100_000_000
)

// Sentinel renderings for the non-normal classifications. Overflow marks
// magnitudes whose integer part exceeds a uint64; the full bound is always
// rendered, never truncated.
const (
	floatNaN         = "NaN"
	floatInf         = "∞"
	floatNegInf      = "-∞"
	floatOverflow    = "> 18,446,744,073,709,551,615"
	floatNegOverflow = "< -18,446,744,073,709,551,615"
)

// Float renders a float32 or float64 as comma-grouped decimal text with a
// fixed eight-digit fraction, e.g. "1,234.56780000". [Float.CompactString]
// trims trailing fractional zeros and [Float.PreciseString] selects a
// shorter fraction. NaN renders "NaN", infinities render "∞" and "-∞", and
// magnitudes beyond uint64 render an overflow bound.
//
// The zero value renders as an empty string; use [NewFloat].
type Float struct {
	inner [sizeFloat]byte
	used  uint8
}

// NewFloat renders v.
func NewFloat(v float64) Float {
	var f Float
	f.Replace(v)
	return f
}

// NewFloat32 renders v. The conversion to float64 is lossless, so the
// rendering reflects the value the float32 actually stores.
func NewFloat32(v float32) Float { return NewFloat(float64(v)) }

// Replace re-renders the buffer in place with v.
func (f *Float) Replace(v float64) {
	kind, top, frac, neg := classifyFloat(v)
	switch kind {
	case kindNaN:
		f.setTail(floatNaN)
	case kindInfinity:
		if neg {
			f.setTail(floatNegInf)
		} else {
			f.setTail(floatInf)
		}
	case kindOverflow:
		if neg {
			f.setTail(floatNegOverflow)
		} else {
			f.setTail(floatOverflow)
		}
	default:
		// Zero and normal share the digit path; zero is unsigned.
		start := groupDigits(f.inner[:floatDot], top)
		if neg && kind == kindNormal {
			start--
			f.inner[start] = '-'
		}
		f.inner[floatDot] = '.'
		for i := sizeFloat - 1; i > floatDot; i-- {
			f.inner[i] = '0' + byte(frac%10)
			frac /= 10
		}
		f.used = uint8(sizeFloat - start)
	}
}

func (f *Float) setTail(s string) {
	copy(f.inner[sizeFloat-len(s):], s)
	f.used = uint8(len(s))
}

// String returns the full fixed-precision rendering.
func (f Float) String() string { return string(f.inner[sizeFloat-int(f.used):]) }

// Bytes returns the full fixed-precision rendering as a view into the owned
// buffer. The slice is valid until the next Replace.
func (f *Float) Bytes() []byte { return f.inner[sizeFloat-int(f.used):] }

// CompactString returns the rendering with trailing fractional zeros
// removed, and the decimal point too when nothing remains after it:
// "12,345.678", "12,345". Sentinel renderings pass through whole.
func (f Float) CompactString() string { return string(f.CompactBytes()) }

// CompactBytes is the byte-view counterpart of [Float.CompactString].
func (f *Float) CompactBytes() []byte {
	b := f.Bytes()
	if !f.hasDot() {
		return b
	}
	end := len(b)
	for end > 0 && b[end-1] == '0' {
		end--
	}
	if end > 0 && b[end-1] == '.' {
		end--
	}
	return b[:end]
}

// PreciseString returns the rendering truncated to precision fractional
// digits. Zero drops the decimal point entirely; precisions of eight or
// more return the full form. The stored digits are not re-rounded.
// Sentinel renderings pass through whole.
func (f Float) PreciseString(precision int) string { return string(f.PreciseBytes(precision)) }

// PreciseBytes is the byte-view counterpart of [Float.PreciseString].
func (f *Float) PreciseBytes(precision int) []byte {
	if precision >= floatDigits || !f.hasDot() {
		return f.Bytes()
	}
	start := sizeFloat - int(f.used)
	if precision <= 0 {
		return f.inner[start:floatDot]
	}
	return f.inner[start : floatDot+1+precision]
}

// hasDot reports whether the buffer holds a normal rendering with a decimal
// point, as opposed to a NaN/infinity/overflow sentinel.
func (f *Float) hasDot() bool {
	start := sizeFloat - int(f.used)
	if start >= floatDot {
		return false
	}
	return f.inner[start] != '>' && f.inner[start] != '<'
}

type floatKind uint8

const (
	kindZero floatKind = iota
	kindNormal
	kindOverflow
	kindInfinity
	kindNaN
)

// classifyFloat splits a float64 into its rendering classification. Normal
// values decompose into an integer part and a fraction scaled to exactly
// eight decimal digits. The split manipulates the IEEE-754 bits directly so
// no precision is lost before the final rounding.
func classifyFloat(v float64) (kind floatKind, top uint64, frac uint32, neg bool) {
	neg = math.Signbit(v)
	if math.IsNaN(v) {
		return kindNaN, 0, 0, false
	}
	if math.IsInf(v, 0) {
		return kindInfinity, 0, 0, neg
	}

	const (
		mantMask = 1<<52 - 1
		expMask  = 1<<11 - 1
	)
	b := math.Float64bits(math.Abs(v))
	mant := b&mantMask | (mantMask + 1)
	exp := int(b>>52&expMask) - 1023

	switch {
	case exp < -31:
		// Too small to contribute even a rounded eighth decimal.
		return kindZero, 0, 0, false
	case exp < 0:
		// Fraction only. Shift the mantissa into a 96-bit fixed-point
		// fraction before scaling.
		shift := uint(44 + exp)
		frac = roundFrac96(mant>>(64-shift), mant<<shift)
		if frac == floatScale {
			top, frac = 1, 0
		}
	case exp < 52:
		top = mant >> uint(52-exp)
		frac = roundFrac52(mant << uint(exp) & mantMask)
		if frac == floatScale {
			top++
			frac = 0
		}
	case exp < 64:
		top = mant << uint(exp-52)
	default:
		return kindOverflow, 0, 0, neg
	}

	if top == 0 && frac == 0 {
		return kindZero, 0, 0, false
	}
	return kindNormal, top, frac, neg
}

// roundFrac52 scales a 52-bit binary fraction to eight decimal digits,
// rounding half away from zero.
func roundFrac52(x uint64) uint32 {
	hi, lo := bits.Mul64(x, floatScale)
	out := uint32(hi<<12 | lo>>52)
	if lo&(1<<51) != 0 {
		out++
	}
	return out
}

// roundFrac96 scales a 96-bit binary fraction, given as high and low words,
// to eight decimal digits, rounding half away from zero.
func roundFrac96(hi, lo uint64) uint32 {
	phi, _ := bits.Mul64(lo, floatScale)
	phi += hi * floatScale
	out := uint32(phi >> 32)
	if phi&(1<<31) != 0 {
		out++
	}
	return out
}
