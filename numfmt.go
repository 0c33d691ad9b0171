package numfmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrEmpty        = errors.New("empty input")
	ErrInvalidDigit = errors.New("invalid digit")
	ErrOverflow     = errors.New("value overflows target type")
	ErrInvalidRatio = errors.New("invalid ratio")
)

// Align controls text alignment for [Pad] and for fmt verbs with a width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Unsigned constrains the unsigned integer types accepted by the parsing
// functions and [PercentFromRatio].
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed constrains the signed integer types accepted by the parsing
// functions and [PercentFromRatio].
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Integer is any integer type, signed or unsigned.
type Integer interface {
	Unsigned | Signed
}

// groupDigits writes v into the tail of buf as decimal digits with a comma
// every three digits, counting from the least significant. It returns the
// index of the first written byte. Zero writes a single "0". buf must be at
// least as long as the widest grouped rendering of v.
func groupDigits(buf []byte, v uint64) int {
	i := len(buf)
	if v == 0 {
		i--
		buf[i] = '0'
		return i
	}
	for n := 0; v > 0; n++ {
		if n > 0 && n%3 == 0 {
			i--
			buf[i] = ','
		}
		i--
		buf[i] = '0' + byte(v%10)
		v /= 10
	}
	return i
}

// writePair writes v as exactly two zero-padded digits. v must be < 100.
func writePair(dst []byte, v uint8) {
	dst[0] = '0' + v/10
	dst[1] = '0' + v%10
}
