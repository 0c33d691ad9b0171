package numfmt

// Buffer capacities are the exact worst-case rendered widths, grouping
// commas included.
const (
	sizeU8  = 3  // 255
	sizeU16 = 6  // 65,535
	sizeU32 = 13 // 4,294,967,295
	sizeU64 = 26 // 18,446,744,073,709,551,615
)

// U8 renders a uint8 as decimal text. Values this small never need grouping
// commas, but U8 additionally offers zero-padded two- and three-digit views
// ([U8.String2], [U8.String3]) for clock-style output.
//
// The zero value renders as an empty string; use [NewU8].
type U8 struct {
	inner [sizeU8]byte
	used  uint8
}

// NewU8 renders v.
func NewU8(v uint8) U8 {
	var n U8
	n.Replace(v)
	return n
}

// Replace re-renders the buffer in place with v. The backing storage is
// reused; the visible region shrinks or grows to fit.
func (n *U8) Replace(v uint8) {
	n.inner = [sizeU8]byte{'0', '0', '0'}
	i := sizeU8
	for {
		i--
		n.inner[i] = '0' + v%10
		v /= 10
		if v == 0 {
			break
		}
	}
	n.used = uint8(sizeU8 - i)
}

// String returns the rendered value.
func (n U8) String() string { return string(n.inner[sizeU8-int(n.used):]) }

// Bytes returns the rendered value as a view into the owned buffer. The
// slice is valid until the next Replace.
func (n *U8) Bytes() []byte { return n.inner[sizeU8-int(n.used):] }

// String2 returns the value zero-padded to at least two digits: "02", "50",
// "113".
func (n U8) String2() string { return string(n.inner[min(int(sizeU8-n.used), 1):]) }

// Bytes2 is the byte-view counterpart of [U8.String2].
func (n *U8) Bytes2() []byte { return n.inner[min(int(sizeU8-n.used), 1):] }

// String3 returns the value zero-padded to three digits: "002", "050",
// "113".
func (n U8) String3() string { return string(n.inner[:]) }

// Bytes3 is the byte-view counterpart of [U8.String3].
func (n *U8) Bytes3() []byte { return n.inner[:] }

// U16 renders a uint16 as comma-grouped decimal text, e.g. "65,535".
//
// The zero value renders as an empty string; use [NewU16].
type U16 struct {
	inner [sizeU16]byte
	used  uint8
}

// NewU16 renders v.
func NewU16(v uint16) U16 {
	var n U16
	n.Replace(v)
	return n
}

// Replace re-renders the buffer in place with v.
func (n *U16) Replace(v uint16) {
	n.used = uint8(sizeU16 - groupDigits(n.inner[:], uint64(v)))
}

// String returns the rendered value.
func (n U16) String() string { return string(n.inner[sizeU16-int(n.used):]) }

// Bytes returns the rendered value as a view into the owned buffer. The
// slice is valid until the next Replace.
func (n *U16) Bytes() []byte { return n.inner[sizeU16-int(n.used):] }

// U32 renders a uint32 as comma-grouped decimal text, e.g. "4,294,967,295".
//
// The zero value renders as an empty string; use [NewU32].
type U32 struct {
	inner [sizeU32]byte
	used  uint8
}

// NewU32 renders v.
func NewU32(v uint32) U32 {
	var n U32
	n.Replace(v)
	return n
}

// Replace re-renders the buffer in place with v.
func (n *U32) Replace(v uint32) {
	n.used = uint8(sizeU32 - groupDigits(n.inner[:], uint64(v)))
}

// String returns the rendered value.
func (n U32) String() string { return string(n.inner[sizeU32-int(n.used):]) }

// Bytes returns the rendered value as a view into the owned buffer. The
// slice is valid until the next Replace.
func (n *U32) Bytes() []byte { return n.inner[sizeU32-int(n.used):] }

// U64 renders a uint64 as comma-grouped decimal text, up to
// "18,446,744,073,709,551,615". It also serves platform-word values via
// [NewUint].
//
// The zero value renders as an empty string; use [NewU64].
type U64 struct {
	inner [sizeU64]byte
	used  uint8
}

// NewU64 renders v.
func NewU64(v uint64) U64 {
	var n U64
	n.Replace(v)
	return n
}

// NewUint renders a platform-word value through the 64-bit formatter.
func NewUint(v uint) U64 { return NewU64(uint64(v)) }

// Replace re-renders the buffer in place with v.
func (n *U64) Replace(v uint64) {
	n.used = uint8(sizeU64 - groupDigits(n.inner[:], v))
}

// String returns the rendered value.
func (n U64) String() string { return string(n.inner[sizeU64-int(n.used):]) }

// Bytes returns the rendered value as a view into the owned buffer. The
// slice is valid until the next Replace.
func (n *U64) Bytes() []byte { return n.inner[sizeU64-int(n.used):] }
