// Package numfmt renders numbers and time spans as human-readable text
// without allocating per render.
//
// Each rendering type owns a small fixed-capacity byte array sized for the
// widest value it can hold and writes digits into it directly. Construct
// once with a New* function, re-render in place with Replace, and read the
// text with String or, allocation-free, with Bytes:
//
//	n := numfmt.NewU32(1234567)
//	n.String()  // "1,234,567"
//	n.Replace(42)
//	n.Bytes()   // []byte("42"), a view into n
//
// Bytes views stay valid until the next Replace. The zero value of every
// type renders as an empty string.
//
// # Integers
//
// [U8], [U16], [U32], and [U64] render unsigned integers with commas
// grouping each run of three digits. [NewUint] renders a plain uint via
// [U64]. [U8] additionally offers zero-padded views for column layouts:
//
//	n := numfmt.NewU8(3)
//	n.String()   // "3"
//	n.String2()  // "03"
//	n.String3()  // "003"
//
// # Floats
//
// [Float] renders a float64 (or float32 via [NewFloat32]) with a grouped
// integer part and exactly eight fractional digits, rounding the ninth
// half away from zero. Values that cannot be rendered as digits become
// sentinels: "NaN", "∞", "-∞", and the over- and underflow markers
// "> 18,446,744,073,709,551,615" and "< -18,446,744,073,709,551,615".
//
// [Float.CompactString] trims trailing fractional zeros and
// [Float.PreciseString] cuts the stored text to a fixed number of decimal
// places:
//
//	f := numfmt.NewFloat(1234.5)
//	f.String()         // "1,234.50000000"
//	f.CompactString()  // "1,234.5"
//	f.PreciseString(2) // "1,234.50"
//
// # Percentages
//
// [Percent] renders a fraction as a percentage with two decimal places,
// rounding half away from zero. Inputs at or below zero, and NaN, clamp to
// "0.00%"; anything past the representable range clamps to
// "42,949,672.95%". [PercentFromRatio] divides two integers first:
//
//	numfmt.NewPercent(0.7566).String()        // "75.66%"
//	numfmt.PercentFromRatio(1, 3)             // "33.33%", nil
//
// # Durations
//
// [Elapsed] spells a time span out in prose, joining the nonzero units
// with commas and a final "and":
//
//	numfmt.NewElapsedSeconds(3723).String()
//	// "1 hour, 2 minutes, and 3 seconds"
//
// [Clock] renders the same span as zero-padded "HH:MM:SS" fields, with a
// grouped day prefix once the span reaches a day:
//
//	numfmt.NewClockSeconds(86401).String() // "1d 00:00:01"
//
// Both accept a [time.Duration], carrying sub-second hundredths, or a
// whole number of seconds; [ElapsedSince] and [ClockSince] measure from a
// [time.Time]. Seconds saturate at the uint32 maximum.
//
// # Parsing
//
// [ParseUint] and [ParseInt] convert ASCII decimal digits into any
// integer type, and [ParseHexUint] and [ParseHexInt] do the same for
// hexadecimal in either case, without a "0x" prefix:
//
//	v, err := numfmt.ParseUint[uint16]([]byte("65535"))
//	h, err := numfmt.ParseHexInt[int8]([]byte("fb")) // -5
//
// # Padding
//
// Every rendering type implements [fmt.Stringer] and [fmt.Formatter], so
// widths and the '-' flag work with the 'v', 's', and 'q' verbs:
//
//	fmt.Printf("%8v|", numfmt.NewU16(1234)) // "   1,234|"
//
// Padding counts display columns rather than bytes, so "∞" pads as one
// column. [Pad] exposes the same alignment directly, with a configurable
// fill rune and [AlignLeft], [AlignCenter], or [AlignRight].
//
// # Encoding
//
// Every rendering type implements [encoding.TextMarshaler],
// [encoding.TextAppender], and yaml.Marshaler, emitting its rendered
// text. The integer types also implement [encoding.TextUnmarshaler] and
// yaml.Unmarshaler, accepting plain or comma-grouped digits, so a value
// marshaled through encoding/json or yaml round-trips.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrEmpty] — no digits to parse
//   - [ErrInvalidDigit] — a byte outside the expected digit set
//   - [ErrOverflow] — the value does not fit the target type
//   - [ErrInvalidRatio] — a ratio with a zero denominator
package numfmt
