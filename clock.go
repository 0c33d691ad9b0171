package numfmt

import "time"

// sizeClock covers the widest rendering, "49,709d 23:59:59.99".
const sizeClock = 19

// Clock renders a time span as zero-padded "HH:MM:SS" fields. Spans of a
// day or more gain a comma-grouped day prefix ("1d 00:00:00",
// "49,710d 06:28:15"); spans built from a [time.Duration] append nonzero
// sub-second hundredths ("00:00:00.05"). Seconds saturate at the uint32
// maximum.
//
// The zero value renders as an empty string; use [NewClock].
type Clock struct {
	inner [sizeClock]byte
	used  uint8
	hund  uint8
	secs  uint32
}

// NewClock renders d. Negative durations render as "00:00:00".
func NewClock(d time.Duration) Clock {
	var c Clock
	c.Replace(d)
	return c
}

// NewClockSeconds renders a whole number of seconds.
func NewClockSeconds(secs uint32) Clock {
	var c Clock
	c.replaceParts(secs, 0)
	return c
}

// ClockSince renders the time elapsed since t.
func ClockSince(t time.Time) Clock { return NewClock(time.Since(t)) }

// Replace re-renders the buffer in place with d.
func (c *Clock) Replace(d time.Duration) {
	secs, hund := splitDuration(d)
	c.replaceParts(secs, hund)
}

// ReplaceSeconds re-renders the buffer in place with a whole number of
// seconds.
func (c *Clock) ReplaceSeconds(secs uint32) { c.replaceParts(secs, 0) }

func (c *Clock) replaceParts(secs uint32, hund uint8) {
	c.secs, c.hund = secs, hund
	d, h, m, s := SplitSeconds(secs)

	n := 0
	if d > 0 {
		var buf [6]byte
		start := groupDigits(buf[:], uint64(d))
		n += copy(c.inner[n:], buf[start:])
		c.inner[n] = 'd'
		c.inner[n+1] = ' '
		n += 2
	}
	writePair(c.inner[n:], h)
	c.inner[n+2] = ':'
	writePair(c.inner[n+3:], m)
	c.inner[n+5] = ':'
	writePair(c.inner[n+6:], s)
	n += 8
	if hund > 0 {
		c.inner[n] = '.'
		writePair(c.inner[n+1:], hund)
		n += 3
	}
	c.used = uint8(n)
}

// String returns the rendered clock.
func (c Clock) String() string { return string(c.inner[:c.used]) }

// Bytes returns the rendered clock as a view into the owned buffer. The
// slice is valid until the next Replace.
func (c *Clock) Bytes() []byte { return c.inner[:c.used] }

// Days returns the day count.
func (c Clock) Days() uint16 {
	d, _, _, _ := SplitSeconds(c.secs)
	return d
}

// Hours returns the hour field, 0-23.
func (c Clock) Hours() uint8 {
	_, h, _, _ := SplitSeconds(c.secs)
	return h
}

// Minutes returns the minute field, 0-59.
func (c Clock) Minutes() uint8 {
	_, _, m, _ := SplitSeconds(c.secs)
	return m
}

// Seconds returns the second field, 0-59.
func (c Clock) Seconds() uint8 {
	_, _, _, s := SplitSeconds(c.secs)
	return s
}

// Hundredths returns the sub-second field, 0-99. It is nonzero only for
// clocks built from a [time.Duration] with a sub-second remainder.
func (c Clock) Hundredths() uint8 { return c.hund }
