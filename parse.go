package numfmt

import "fmt"

// ParseUint parses b as an unsigned decimal integer. Only ASCII digits are
// accepted: no sign, no separators, no surrounding space. Leading zeros are
// fine.
func ParseUint[T Unsigned](b []byte) (T, error) {
	v, err := parseMag(b, uint64(^T(0)))
	return T(v), err
}

// ParseInt parses b as a signed decimal integer. A single leading '+' or
// '-' is accepted; the digits that follow obey the [ParseUint] rules.
func ParseInt[T Signed](b []byte) (T, error) {
	if len(b) == 0 {
		return 0, ErrEmpty
	}

	var neg bool
	switch b[0] {
	case '-':
		neg = true
		b = b[1:]
	case '+':
		b = b[1:]
	}
	if len(b) == 0 {
		return 0, ErrEmpty
	}

	max := uint64(1)<<(signedBits[T]()-1) - 1
	if neg {
		max++
	}
	v, err := parseMag(b, max)
	if err != nil {
		return 0, err
	}
	if neg {
		return -T(v), nil
	}
	return T(v), nil
}

// parseMag accumulates decimal digits into a uint64, refusing anything that
// is not an ASCII digit and any value past max.
func parseMag(b []byte, max uint64) (uint64, error) {
	if len(b) == 0 {
		return 0, ErrEmpty
	}
	var v uint64
	for _, c := range b {
		d := uint64(c) - '0'
		if d > 9 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}
		if v > (max-d)/10 {
			return 0, ErrOverflow
		}
		v = v*10 + d
	}
	return v, nil
}

// signedBits reports the width of T in bits.
func signedBits[T Signed]() uint {
	bits := uint(8)
	for T(1)<<bits != 0 {
		bits <<= 1
	}
	return bits
}
