package numfmt

import (
	"math"
	"time"
)

// sizeElapsed covers the widest rendering,
// "49,709 days, 23 hours, 59 minutes, and 59.99 seconds".
const sizeElapsed = 52

// Elapsed renders a time span as an Oxford-joined English phrase of its
// nonzero units: "1 hour, 2 minutes, and 3 seconds". Unit words pluralize
// unless the value is exactly one; two items join with "and", three or more
// take a serial comma. Spans built from a [time.Duration] keep sub-second
// hundredths on the seconds unit ("1 minute and 0.34 seconds"); a zero span
// renders "0 seconds".
//
// Seconds saturate at the uint32 maximum, so the longest span renders
// "49,710 days, 6 hours, 28 minutes, and 15 seconds".
//
// The zero value renders as an empty string; use [NewElapsed].
type Elapsed struct {
	inner [sizeElapsed]byte
	used  uint8
}

// NewElapsed renders d. Negative durations render as zero.
func NewElapsed(d time.Duration) Elapsed {
	var e Elapsed
	e.Replace(d)
	return e
}

// NewElapsedSeconds renders a whole number of seconds.
func NewElapsedSeconds(secs uint32) Elapsed {
	var e Elapsed
	e.replaceParts(secs, 0)
	return e
}

// ElapsedSince renders the time elapsed since t.
func ElapsedSince(t time.Time) Elapsed { return NewElapsed(time.Since(t)) }

// Replace re-renders the buffer in place with d.
func (e *Elapsed) Replace(d time.Duration) {
	secs, hund := splitDuration(d)
	e.replaceParts(secs, hund)
}

// ReplaceSeconds re-renders the buffer in place with a whole number of
// seconds.
func (e *Elapsed) ReplaceSeconds(secs uint32) { e.replaceParts(secs, 0) }

// String returns the rendered phrase.
func (e Elapsed) String() string { return string(e.inner[:e.used]) }

// Bytes returns the rendered phrase as a view into the owned buffer. The
// slice is valid until the next Replace.
func (e *Elapsed) Bytes() []byte { return e.inner[:e.used] }

func (e *Elapsed) replaceParts(secs uint32, hund uint8) {
	if secs == 0 && hund == 0 {
		e.used = uint8(copy(e.inner[:], "0 seconds"))
		return
	}

	d, h, m, s := SplitSeconds(secs)
	hasSec := s > 0 || hund > 0

	total := 0
	if d > 0 {
		total++
	}
	if h > 0 {
		total++
	}
	if m > 0 {
		total++
	}
	if hasSec {
		total++
	}

	n, done := 0, 0
	if d > 0 {
		var buf [6]byte
		start := groupDigits(buf[:], uint64(d))
		n += copy(e.inner[n:], buf[start:])
		done++
		n += appendUnit(e.inner[n:], "day", d == 1, done, total)
	}
	if h > 0 {
		n += writeTens(e.inner[n:], h)
		done++
		n += appendUnit(e.inner[n:], "hour", h == 1, done, total)
	}
	if m > 0 {
		n += writeTens(e.inner[n:], m)
		done++
		n += appendUnit(e.inner[n:], "minute", m == 1, done, total)
	}
	if hasSec {
		n += writeTens(e.inner[n:], s)
		if hund > 0 {
			e.inner[n] = '.'
			writePair(e.inner[n+1:], hund)
			n += 3
		}
		done++
		n += appendUnit(e.inner[n:], "second", s == 1 && hund == 0, done, total)
	}
	e.used = uint8(n)
}

// writeTens writes v as one or two digits with no padding. v must be < 100.
func writeTens(dst []byte, v uint8) int {
	if v > 9 {
		dst[0] = '0' + v/10
		dst[1] = '0' + v%10
		return 2
	}
	dst[0] = '0' + v
	return 1
}

// appendUnit writes the unit word, pluralized unless singular, plus the
// joining glue owed at this position: nothing after the last item, " and "
// between exactly two items, ", " mid-list, and ", and " before the last of
// three or more.
func appendUnit(dst []byte, word string, singular bool, done, total int) int {
	n := copy(dst, " ")
	n += copy(dst[n:], word)
	if !singular {
		dst[n] = 's'
		n++
	}
	switch left := total - done; {
	case left == 0:
	case left > 1:
		n += copy(dst[n:], ", ")
	case total == 2:
		n += copy(dst[n:], " and ")
	default:
		n += copy(dst[n:], ", and ")
	}
	return n
}

// SplitSeconds decomposes a second count into days, hours, minutes, and
// seconds. Hours, minutes, and seconds stay within their clock ranges; days
// absorb the rest, topping out at 49,710 for the uint32 maximum.
func SplitSeconds(secs uint32) (days uint16, hours, minutes, seconds uint8) {
	days = uint16(secs / 86_400)
	rem := secs % 86_400
	hours = uint8(rem / 3_600)
	rem %= 3_600
	minutes = uint8(rem / 60)
	seconds = uint8(rem % 60)
	return days, hours, minutes, seconds
}

// splitDuration reduces a duration to saturated whole seconds and truncated
// sub-second hundredths.
func splitDuration(d time.Duration) (uint32, uint8) {
	if d <= 0 {
		return 0, 0
	}
	secs := uint64(d / time.Second)
	hund := uint8(d % time.Second / (10 * time.Millisecond))
	if secs > math.MaxUint32 {
		secs = math.MaxUint32
	}
	return uint32(secs), hund
}
