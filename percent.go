package numfmt

import (
	"fmt"
	"math"
)

// sizePercent covers the widest rendering, "42,949,672.95%".
const sizePercent = 14

// Percent renders a fraction of 1.0 as a percentage with two fractional
// digits and a trailing "%": 0.5 renders "50.00%". Values above 1.0 render
// above 100% and group with commas. The percentage is held as hundredths of
// a percent in a uint32, so the representable range runs from "0.00%" to
// "42,949,672.95%"; normal inputs clamp into it, NaN and -Inf take the
// minimum, +Inf takes the maximum.
//
// Ties at the third decimal round half up: 0.12345 renders "12.35%".
//
// The zero value renders as an empty string; use [NewPercent].
type Percent struct {
	inner [sizePercent]byte
	used  uint8
}

// NewPercent renders v.
func NewPercent(v float64) Percent {
	var p Percent
	p.Replace(v)
	return p
}

// PercentFromRatio renders num/den as a percentage. It fails with
// [ErrInvalidRatio] when den is zero.
func PercentFromRatio[T Integer](num, den T) (Percent, error) {
	if den == 0 {
		return Percent{}, fmt.Errorf("%w: %v/0", ErrInvalidRatio, num)
	}
	return NewPercent(float64(num) / float64(den)), nil
}

// Replace re-renders the buffer in place with v.
func (p *Percent) Replace(v float64) {
	h := percentHundredths(v)
	p.inner[sizePercent-1] = '%'
	writePair(p.inner[sizePercent-3:], uint8(h%100))
	p.inner[sizePercent-4] = '.'
	start := groupDigits(p.inner[:sizePercent-4], uint64(h/100))
	p.used = uint8(sizePercent - start)
}

// percentHundredths scales a fraction to hundredths of a percent, clamping
// into the representable range. Ties round half up.
func percentHundredths(v float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	r := math.Round(v * 10_000)
	if r >= 1<<32 { // catches +Inf too
		return math.MaxUint32
	}
	return uint32(r)
}

// String returns the rendered percentage.
func (p Percent) String() string { return string(p.inner[sizePercent-int(p.used):]) }

// Bytes returns the rendered percentage as a view into the owned buffer.
// The slice is valid until the next Replace.
func (p *Percent) Bytes() []byte { return p.inner[sizePercent-int(p.used):] }
