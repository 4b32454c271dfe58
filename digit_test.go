package drum

import (
	"strings"
	"testing"
)

func TestDigitRoll(t *testing.T) {
	t.Run("AnimatesToTarget", func(t *testing.T) {
		an, advance := testAnimator()
		d := NewDigit(an)

		d.Value.Set(3)
		tl := d.Timeline()
		if tl == nil {
			t.Fatal("expected a timeline after first animated change")
		}
		if tl.From() != OffsetOf(0) || tl.To() != OffsetOf(3) {
			t.Errorf("endpoints = (%v, %v), want (%v, %v)",
				tl.From(), tl.To(), OffsetOf(0), OffsetOf(3))
		}

		advance(RollDuration)
		if got := d.Offset.Get(); got != OffsetOf(3) {
			t.Errorf("settled offset = %v, want %v", got, OffsetOf(3))
		}
	})

	t.Run("ReusesSingleTimeline", func(t *testing.T) {
		an, advance := testAnimator()
		d := NewDigit(an)

		d.Value.Set(3)
		first := d.Timeline()
		advance(RollDuration)

		d.Value.Set(7)
		if d.Timeline() != first {
			t.Error("second change created a new timeline")
		}
		if got := len(an.timelines); got != 1 {
			t.Errorf("animator holds %d timelines, want 1", got)
		}
		if first.From() != OffsetOf(3) || first.To() != OffsetOf(7) {
			t.Errorf("endpoints = (%v, %v), want (%v, %v)",
				first.From(), first.To(), OffsetOf(3), OffsetOf(7))
		}
	})

	t.Run("MidFlightOffsetIsBetween", func(t *testing.T) {
		an, advance := testAnimator()
		d := NewDigit(an)

		d.Value.Set(3)
		advance(RollDuration)
		d.Value.Set(7)
		advance(RollDuration / 2)

		got := d.Offset.Get()
		if got >= OffsetOf(3) || got <= OffsetOf(7) {
			t.Errorf("mid-flight offset %v not strictly between %v and %v",
				got, OffsetOf(3), OffsetOf(7))
		}
	})

	t.Run("RetargetMidFlight", func(t *testing.T) {
		an, advance := testAnimator()
		d := NewDigit(an)

		d.Value.Set(3)
		advance(RollDuration)

		d.Value.Set(7)
		advance(RollDuration / 2)
		d.Value.Set(2)

		tl := d.Timeline()
		if got := len(an.timelines); got != 1 {
			t.Fatalf("animator holds %d timelines, want 1", got)
		}
		// The abandoned 3 -> 7 leg leaves no trace: the restarted timeline
		// runs from the old value's offset, not the mid-flight position.
		if tl.From() != OffsetOf(7) || tl.To() != OffsetOf(2) {
			t.Errorf("endpoints = (%v, %v), want (%v, %v)",
				tl.From(), tl.To(), OffsetOf(7), OffsetOf(2))
		}

		advance(RollDuration)
		if got := d.Offset.Get(); got != OffsetOf(2) {
			t.Errorf("settled offset = %v, want %v", got, OffsetOf(2))
		}
	})

	t.Run("OutOfRangeIsSilentNoOp", func(t *testing.T) {
		an, _ := testAnimator()
		d := NewDigit(an)

		d.Value.Set(12)
		if d.Timeline() != nil {
			t.Error("out-of-range change created a timeline")
		}
		if got := d.Offset.Get(); got != OffsetOf(0) {
			t.Errorf("offset moved to %v on out-of-range change", got)
		}

		// The stored value is now 12, so the next change has an invalid
		// old digit and is skipped too.
		d.Value.Set(5)
		if d.Timeline() != nil {
			t.Error("change from out-of-range value created a timeline")
		}
		if got := d.Offset.Get(); got != OffsetOf(0) {
			t.Errorf("offset moved to %v, want %v", got, OffsetOf(0))
		}
	})

	t.Run("PreviewSnaps", func(t *testing.T) {
		an, _ := testAnimator()
		d := NewDigit(an).Preview(true)

		d.Value.Set(1)
		if got := d.Offset.Get(); got != OffsetOf(1) {
			t.Errorf("offset = %v, want %v", got, OffsetOf(1))
		}

		d.Value.Set(9)
		if got := d.Offset.Get(); got != OffsetOf(9) {
			t.Errorf("offset = %v, want %v", got, OffsetOf(9))
		}
		if d.Timeline() != nil {
			t.Error("preview change created a timeline")
		}
		if len(an.timelines) != 0 {
			t.Error("preview change registered with the animator")
		}
	})

	t.Run("SameValueRestarts", func(t *testing.T) {
		an, advance := testAnimator()
		d := NewDigit(an)

		d.Value.Set(4)
		advance(RollDuration)

		d.Value.Set(4)
		tl := d.Timeline()
		if !tl.Running() {
			t.Error("re-setting the current value should restart the roll")
		}
		if tl.From() != OffsetOf(4) || tl.To() != OffsetOf(4) {
			t.Errorf("endpoints = (%v, %v), want both %v",
				tl.From(), tl.To(), OffsetOf(4))
		}

		advance(RollDuration)
		if got := d.Offset.Get(); got != OffsetOf(4) {
			t.Errorf("settled offset = %v, want %v", got, OffsetOf(4))
		}
	})

	t.Run("DisposeDetaches", func(t *testing.T) {
		an, _ := testAnimator()
		d := NewDigit(an)

		d.Dispose()
		d.Value.Set(5)
		if d.Timeline() != nil {
			t.Error("disposed wheel still reacts to value changes")
		}
	})
}

func TestDigitRender(t *testing.T) {
	t.Run("SettledGlyph", func(t *testing.T) {
		an, _ := testAnimator()
		d := NewDigit(an).Preview(true)
		d.Value.Set(8)

		buf := NewBuffer(GlyphWidth, GlyphHeight)
		d.Render(buf, 0, 0)

		for row := 0; row < GlyphHeight; row++ {
			if got, want := buf.Line(row), stripGlyphs[8][row]; got != want {
				t.Errorf("row %d = %q, want %q", row, got, want)
			}
		}
	})

	t.Run("MidRollShowsStripWindow", func(t *testing.T) {
		an, _ := testAnimator()
		d := NewDigit(an)

		// Halfway between 0 and 1 on the strip: two bottom rows of the 0
		// glyph, the gap band, then two top rows of the 1 glyph.
		d.Offset.Set(-3)
		buf := NewBuffer(GlyphWidth, GlyphHeight)
		d.Render(buf, 0, 0)

		want := []string{
			stripGlyphs[0][3],
			stripGlyphs[0][4],
			"",
			stripGlyphs[1][0],
			stripGlyphs[1][1],
		}
		for row, w := range want {
			if got := buf.Line(row); got != strings.TrimRight(w, " ") {
				t.Errorf("row %d = %q, want %q", row, got, w)
			}
		}
	})

	t.Run("EdgeRowsShaded", func(t *testing.T) {
		an, _ := testAnimator()
		d := NewDigit(an).Preview(true).Themed(ThemeOdometer)
		d.Value.Set(8)

		buf := NewBuffer(GlyphWidth, GlyphHeight)
		d.Render(buf, 0, 0)

		top := buf.Get(0, 0).Style.FG
		mid := buf.Get(0, 2).Style.FG
		if top == mid {
			t.Error("expected edge row to be shaded differently from the face")
		}
	})
}
