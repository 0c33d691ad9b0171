package numfmt

import (
	"bytes"
	"fmt"
)

// parseGroupedUint parses digits that may carry the renderer's own comma
// grouping: the leading group is 1-3 digits, every following group exactly
// 3. Plain ungrouped digits also pass.
func parseGroupedUint[T Unsigned](b []byte) (T, error) {
	if bytes.IndexByte(b, ',') < 0 {
		return ParseUint[T](b)
	}
	plain := make([]byte, 0, len(b))
	run := 0
	first := true
	for _, c := range b {
		if c != ',' {
			plain = append(plain, c)
			run++
			continue
		}
		if first && (run < 1 || run > 3) || !first && run != 3 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}
		first = false
		run = 0
	}
	if run != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, ',')
	}
	return ParseUint[T](plain)
}

// MarshalText implements [encoding.TextMarshaler].
func (n U8) MarshalText() ([]byte, error) { return n.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (n U8) AppendText(b []byte) ([]byte, error) { return append(b, n.Bytes()...), nil }

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the plain
// and comma-grouped digit forms.
func (n *U8) UnmarshalText(b []byte) error {
	v, err := parseGroupedUint[uint8](b)
	if err != nil {
		return err
	}
	n.Replace(v)
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (n U16) MarshalText() ([]byte, error) { return n.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (n U16) AppendText(b []byte) ([]byte, error) { return append(b, n.Bytes()...), nil }

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the plain
// and comma-grouped digit forms.
func (n *U16) UnmarshalText(b []byte) error {
	v, err := parseGroupedUint[uint16](b)
	if err != nil {
		return err
	}
	n.Replace(v)
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (n U32) MarshalText() ([]byte, error) { return n.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (n U32) AppendText(b []byte) ([]byte, error) { return append(b, n.Bytes()...), nil }

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the plain
// and comma-grouped digit forms.
func (n *U32) UnmarshalText(b []byte) error {
	v, err := parseGroupedUint[uint32](b)
	if err != nil {
		return err
	}
	n.Replace(v)
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (n U64) MarshalText() ([]byte, error) { return n.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (n U64) AppendText(b []byte) ([]byte, error) { return append(b, n.Bytes()...), nil }

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the plain
// and comma-grouped digit forms.
func (n *U64) UnmarshalText(b []byte) error {
	v, err := parseGroupedUint[uint64](b)
	if err != nil {
		return err
	}
	n.Replace(v)
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (f Float) MarshalText() ([]byte, error) { return f.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (f Float) AppendText(b []byte) ([]byte, error) { return append(b, f.Bytes()...), nil }

// MarshalText implements [encoding.TextMarshaler].
func (p Percent) MarshalText() ([]byte, error) { return p.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (p Percent) AppendText(b []byte) ([]byte, error) { return append(b, p.Bytes()...), nil }

// MarshalText implements [encoding.TextMarshaler].
func (e Elapsed) MarshalText() ([]byte, error) { return e.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (e Elapsed) AppendText(b []byte) ([]byte, error) { return append(b, e.Bytes()...), nil }

// MarshalText implements [encoding.TextMarshaler].
func (c Clock) MarshalText() ([]byte, error) { return c.AppendText(nil) }

// AppendText implements [encoding.TextAppender].
func (c Clock) AppendText(b []byte) ([]byte, error) { return append(b, c.Bytes()...), nil }
