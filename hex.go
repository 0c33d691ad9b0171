package numfmt

import "fmt"

// ParseHexUint parses b as an unsigned hexadecimal integer. Upper and lower
// case digits both work, mixed freely; a "0x" prefix does not. Values are
// rejected once they carry more significant digits than T holds, so leading
// zeros cost nothing.
func ParseHexUint[T Unsigned](b []byte) (T, error) {
	v, err := parseHexMag(b, unsignedBits[T]())
	return T(v), err
}

// ParseHexInt parses b as the two's-complement bit pattern of T, so "fb"
// yields int8(-5). No sign character is accepted; the high bit of a
// full-width value is the sign.
func ParseHexInt[T Signed](b []byte) (T, error) {
	bits := signedBits[T]()
	v, err := parseHexMag(b, bits)
	if err != nil {
		return 0, err
	}
	shift := 64 - bits
	return T(int64(v<<shift) >> shift), nil
}

// parseHexMag accumulates hex digits into a uint64, allowing at most bits/4
// significant digits.
func parseHexMag(b []byte, bits uint) (uint64, error) {
	if len(b) == 0 {
		return 0, ErrEmpty
	}
	maxDigits := int(bits / 4)
	var v uint64
	var digits int
	for _, c := range b {
		d, ok := hexDigit(c)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}
		if v > 0 || d > 0 {
			digits++
		}
		if digits > maxDigits {
			return 0, ErrOverflow
		}
		v = v<<4 | uint64(d)
	}
	return v, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// unsignedBits reports the width of T in bits.
func unsignedBits[T Unsigned]() uint {
	bits := uint(8)
	for ^T(0)>>bits != 0 {
		bits <<= 1
	}
	return bits
}
