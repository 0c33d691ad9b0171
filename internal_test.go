package numfmt

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input uint64
		want  string
	}{
		"zero":  {input: 0, want: "0"},
		"one":   {input: 1, want: "1"},
		"three": {input: 999, want: "999"},
		"four":  {input: 1000, want: "1,000"},
		"seven": {input: 1234567, want: "1,234,567"},
		"max":   {input: math.MaxUint64, want: "18,446,744,073,709,551,615"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf [sizeU64]byte
			start := groupDigits(buf[:], tt.input)
			assert.Equal(t, tt.want, string(buf[start:]))
		})
	}
}

func TestWritePair(t *testing.T) {
	t.Parallel()
	var dst [2]byte
	writePair(dst[:], 0)
	assert.Equal(t, "00", string(dst[:]))
	writePair(dst[:], 7)
	assert.Equal(t, "07", string(dst[:]))
	writePair(dst[:], 99)
	assert.Equal(t, "99", string(dst[:]))
}

func TestWriteTens(t *testing.T) {
	t.Parallel()
	var dst [2]byte
	n := writeTens(dst[:], 0)
	assert.Equal(t, "0", string(dst[:n]))
	n = writeTens(dst[:], 9)
	assert.Equal(t, "9", string(dst[:n]))
	n = writeTens(dst[:], 10)
	assert.Equal(t, "10", string(dst[:n]))
	n = writeTens(dst[:], 59)
	assert.Equal(t, "59", string(dst[:n]))
}

func TestAppendUnitGlue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		word        string
		singular    bool
		done, total int
		want        string
	}{
		"mid list":      {word: "day", done: 1, total: 3, want: " days, "},
		"pair joiner":   {word: "hour", singular: true, done: 1, total: 2, want: " hour and "},
		"serial comma":  {word: "minute", done: 2, total: 3, want: " minutes, and "},
		"last item":     {word: "second", done: 3, total: 3, want: " seconds"},
		"last singular": {word: "second", singular: true, done: 2, total: 2, want: " second"},
		"only item":     {word: "day", singular: true, done: 1, total: 1, want: " day"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var dst [16]byte
			n := appendUnit(dst[:], tt.word, tt.singular, tt.done, tt.total)
			assert.Equal(t, tt.want, string(dst[:n]))
		})
	}
}

func TestSplitSeconds(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input                   uint32
		days                    uint16
		hours, minutes, seconds uint8
	}{
		"zero":       {input: 0},
		"last tick":  {input: 86399, hours: 23, minutes: 59, seconds: 59},
		"all ones":   {input: 90061, days: 1, hours: 1, minutes: 1, seconds: 1},
		"saturation": {input: math.MaxUint32, days: 49710, hours: 6, minutes: 28, seconds: 15},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d, h, m, s := SplitSeconds(tt.input)
			assert.Equal(t, tt.days, d)
			assert.Equal(t, tt.hours, h)
			assert.Equal(t, tt.minutes, m)
			assert.Equal(t, tt.seconds, s)
		})
	}
}

func TestSplitDuration(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input time.Duration
		secs  uint32
		hund  uint8
	}{
		"negative":        {input: -5 * time.Second},
		"below hundredth": {input: 9 * time.Millisecond},
		"one hundredth":   {input: 10 * time.Millisecond, hund: 1},
		"second and half": {input: 1500 * time.Millisecond, secs: 1, hund: 50},
		"saturates":       {input: time.Duration(math.MaxInt64), secs: math.MaxUint32, hund: 85},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			secs, hund := splitDuration(tt.input)
			assert.Equal(t, tt.secs, secs)
			assert.Equal(t, tt.hund, hund)
		})
	}
}

func TestClassifyFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input float64
		kind  floatKind
		top   uint64
		frac  uint32
		neg   bool
	}{
		"zero":         {input: 0, kind: kindZero},
		"subnormal":    {input: 5e-324, kind: kindZero},
		"below scale":  {input: 1e-10, kind: kindZero},
		"half":         {input: 0.5, kind: kindNormal, frac: 50000000},
		"two and half": {input: 2.5, kind: kindNormal, top: 2, frac: 50000000},
		"negative":     {input: -2.5, kind: kindNormal, top: 2, frac: 50000000, neg: true},
		"whole":        {input: 1, kind: kindNormal, top: 1},
		"big integer":  {input: float64(1 << 63), kind: kindNormal, top: 1 << 63},
		"overflow":     {input: 1e20, kind: kindOverflow},
		"neg overflow": {input: -1e20, kind: kindOverflow, neg: true},
		"infinity":     {input: math.Inf(1), kind: kindInfinity},
		"neg infinity": {input: math.Inf(-1), kind: kindInfinity, neg: true},
		"nan":          {input: math.NaN(), kind: kindNaN},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			kind, top, frac, neg := classifyFloat(tt.input)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.top, top)
			assert.Equal(t, tt.frac, frac)
			assert.Equal(t, tt.neg, neg)
		})
	}
}

func TestClassifyFloatFractionCarry(t *testing.T) {
	t.Parallel()
	// Just below 3: the fraction rounds up to a full unit and carries into
	// the integer part.
	kind, top, frac, _ := classifyFloat(math.Nextafter(3, 0))
	assert.Equal(t, kindNormal, kind)
	assert.Equal(t, uint64(3), top)
	assert.Equal(t, uint32(0), frac)

	// Same carry on the fraction-only path, just below 1.
	kind, top, frac, _ = classifyFloat(math.Nextafter(1, 0))
	assert.Equal(t, kindNormal, kind)
	assert.Equal(t, uint64(1), top)
	assert.Equal(t, uint32(0), frac)
}

func TestRoundFrac52(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint32(0), roundFrac52(0))
	assert.Equal(t, uint32(50000000), roundFrac52(1<<51))
	// All ones rounds up to a full unit; the caller carries it.
	assert.Equal(t, uint32(floatScale), roundFrac52(1<<52-1))
}

func TestRoundFrac96(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint32(0), roundFrac96(0, 0))
	assert.Equal(t, uint32(50000000), roundFrac96(1<<31, 0))
	// 2^-9 scales to 195312.5 exactly; the tie rounds away from zero.
	assert.Equal(t, uint32(195313), roundFrac96(1<<23, 0))
}

func TestPercentHundredths(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input float64
		want  uint32
	}{
		"nan":      {input: math.NaN(), want: 0},
		"negative": {input: -1, want: 0},
		"zero":     {input: 0, want: 0},
		"tie":      {input: 0.03125, want: 313},
		"whole":    {input: 1, want: 10000},
		"clamped":  {input: 1e12, want: math.MaxUint32},
		"infinity": {input: math.Inf(1), want: math.MaxUint32},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, percentHundredths(tt.input))
		})
	}
}

func TestFloatHasDot(t *testing.T) {
	t.Parallel()
	f := NewFloat(1.5)
	assert.True(t, f.hasDot())
	f = NewFloat(math.NaN())
	assert.False(t, f.hasDot())
	f = NewFloat(1e20)
	assert.False(t, f.hasDot())
	f = NewFloat(-1e20)
	assert.False(t, f.hasDot())
}

func TestHexDigit(t *testing.T) {
	t.Parallel()
	for c, want := range map[byte]uint8{
		'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15,
	} {
		d, ok := hexDigit(c)
		assert.True(t, ok, "digit %q", c)
		assert.Equal(t, want, d, "digit %q", c)
	}
	for _, c := range []byte{'g', 'G', '`', ':', '/', ' '} {
		_, ok := hexDigit(c)
		assert.False(t, ok, "non-digit %q", c)
	}
}

func TestTypeBits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint(8), signedBits[int8]())
	assert.Equal(t, uint(16), signedBits[int16]())
	assert.Equal(t, uint(32), signedBits[int32]())
	assert.Equal(t, uint(64), signedBits[int64]())
	assert.Equal(t, uint(strconv.IntSize), signedBits[int]())

	assert.Equal(t, uint(8), unsignedBits[uint8]())
	assert.Equal(t, uint(16), unsignedBits[uint16]())
	assert.Equal(t, uint(32), unsignedBits[uint32]())
	assert.Equal(t, uint(64), unsignedBits[uint64]())
	assert.Equal(t, uint(strconv.IntSize), unsignedBits[uint]())
}
