package drum

import "fmt"

// The glyph strip is the drawn equivalent of the printed band wrapped
// around a counter wheel: the ten digits stacked vertically at a constant
// pitch, viewed through a window one glyph tall. Offsets are in rows,
// negative going down the strip, so digit d sits in the window when the
// strip is shifted to OffsetOf(d).
const (
	// GlyphWidth and GlyphHeight are the cell dimensions of one digit glyph.
	GlyphWidth  = 3
	GlyphHeight = 5

	// stripGapRows is the blank band between adjacent glyphs on the strip.
	stripGapRows = 1

	// stripPitchRows is the row spacing between the tops of adjacent glyphs.
	stripPitchRows = GlyphHeight + stripGapRows

	// DigitCount is the number of glyphs on the strip.
	DigitCount = 10
)

// StripPitch is the offset step between adjacent digits, in rows.
const StripPitch = float64(stripPitchRows)

// stripOffsets maps digit -> vertical strip offset. Built once at process
// start, immutable afterwards, shared by every widget instance.
var stripOffsets = buildStripOffsets()

func buildStripOffsets() [DigitCount]float64 {
	var offsets [DigitCount]float64
	for d := 0; d < DigitCount; d++ {
		offsets[d] = -float64(d) * StripPitch
	}
	return offsets
}

// OffsetOf returns the strip offset at which digit d is centered in the
// window. Pure lookup with no error path: callers range-check d before
// resolving, per the widget's transition policy.
func OffsetOf(d int) float64 {
	return stripOffsets[d]
}

// stripGlyphs holds the glyph rows for each digit, GlyphHeight rows of
// GlyphWidth runes each.
var stripGlyphs = [DigitCount][GlyphHeight]string{
	{"███", "█ █", "█ █", "█ █", "███"}, // 0
	{" █ ", "██ ", " █ ", " █ ", "███"}, // 1
	{"███", "  █", "███", "█  ", "███"}, // 2
	{"███", "  █", "███", "  █", "███"}, // 3
	{"█ █", "█ █", "███", "  █", "  █"}, // 4
	{"███", "█  ", "███", "  █", "███"}, // 5
	{"███", "█  ", "███", "█ █", "███"}, // 6
	{"███", "  █", "  █", "  █", "  █"}, // 7
	{"███", "█ █", "███", "█ █", "███"}, // 8
	{"███", "█ █", "███", "  █", "███"}, // 9
}

func init() {
	// The render path indexes the strip without bounds checks; a malformed
	// glyph table is a programming error, caught here at process start.
	if err := validateStrip(); err != nil {
		panic(err)
	}
}

// validateStrip checks the structural contract between the strip data and
// the renderer: ten glyphs, uniform height and width.
func validateStrip() error {
	for d, glyph := range stripGlyphs {
		for row, line := range glyph {
			if n := len([]rune(line)); n != GlyphWidth {
				return fmt.Errorf("drum: glyph %d row %d is %d cells wide, want %d", d, row, n, GlyphWidth)
			}
		}
	}
	return nil
}
