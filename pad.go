package numfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pad grows s to width columns, filling the gap with fill and positioning
// the text per align. Width counts display columns rather than bytes, so
// "∞" takes one column. Strings already at or beyond width come back
// unchanged.
func Pad(s string, width int, align Align, fill rune) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(string(fill), gap) + s
	case AlignCenter:
		left := gap / 2
		right := gap - left
		return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
	default:
		return s + strings.Repeat(string(fill), gap)
	}
}

// formatText drives fmt verbs for the rendering types. The text is already
// rendered, so only padding and quoting remain to be done.
func formatText(st fmt.State, verb rune, s string) {
	switch verb {
	case 'v', 's':
	case 'q':
		s = strconv.Quote(s)
	default:
		fmt.Fprintf(st, "%%!%c(%s)", verb, s)
		return
	}
	if width, ok := st.Width(); ok {
		align := AlignRight
		if st.Flag('-') {
			align = AlignLeft
		}
		s = Pad(s, width, align, ' ')
	}
	io.WriteString(st, s)
}

// Format implements [fmt.Formatter]. The 'v', 's', and 'q' verbs are
// supported, along with width and the '-' flag.
func (n U8) Format(st fmt.State, verb rune) { formatText(st, verb, n.String()) }

// Format implements [fmt.Formatter].
func (n U16) Format(st fmt.State, verb rune) { formatText(st, verb, n.String()) }

// Format implements [fmt.Formatter].
func (n U32) Format(st fmt.State, verb rune) { formatText(st, verb, n.String()) }

// Format implements [fmt.Formatter].
func (n U64) Format(st fmt.State, verb rune) { formatText(st, verb, n.String()) }

// Format implements [fmt.Formatter].
func (f Float) Format(st fmt.State, verb rune) { formatText(st, verb, f.String()) }

// Format implements [fmt.Formatter].
func (p Percent) Format(st fmt.State, verb rune) { formatText(st, verb, p.String()) }

// Format implements [fmt.Formatter].
func (e Elapsed) Format(st fmt.State, verb rune) { formatText(st, verb, e.String()) }

// Format implements [fmt.Formatter].
func (c Clock) Format(st fmt.State, verb rune) { formatText(st, verb, c.String()) }
