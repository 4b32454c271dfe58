package drum

import "math"

// Digit is a single rolling counter wheel. It owns three bindable
// properties: the target digit (Value), the glyph paint (Fill), and the
// live strip offset (Offset) that the render path reads every frame.
//
// Value is the discrete target; Offset is the continuously changing state
// the animation drives between targets. Hosts normally only touch Value.
// Offset is externally settable for initial mounting and for preview
// hosts, but while a roll is in flight it belongs to the timeline.
type Digit struct {
	Base

	Value  *Property[uint8]
	Fill   *Property[Color]
	Offset *Property[float64]

	animator *Animator
	anim     *Timeline // zero-or-one; created lazily, then only retargeted
	theme    Theme
	preview  bool
	unsub    func()
}

// NewDigit creates a wheel showing digit 0, animated by the given
// animator.
func NewDigit(animator *Animator) *Digit {
	d := &Digit{
		animator: animator,
		theme:    ThemeOdometer,
	}
	d.Value = NewProperty[uint8](0)
	d.Fill = NewProperty(d.theme.Face)
	d.Offset = NewProperty(OffsetOf(0))
	d.unsub = d.Value.Subscribe(d.roll)
	d.SetMinSize(GlyphWidth, GlyphHeight)
	d.SetSize(GlyphWidth, GlyphHeight)
	return d
}

// Preview puts the wheel in non-interactive preview mode: value changes
// snap the strip into place without creating or touching any timeline.
// Meant for authoring and snapshot hosts that never pump an animator.
func (d *Digit) Preview(on bool) *Digit {
	d.preview = on
	return d
}

// Themed applies a theme and resets Fill to the theme's face color.
func (d *Digit) Themed(t Theme) *Digit {
	d.theme = t
	d.Fill.Set(t.Face)
	return d
}

// Timeline returns the wheel's animation timeline, or nil if no animated
// transition has happened yet.
func (d *Digit) Timeline() *Timeline {
	return d.anim
}

// Dispose detaches the wheel from its Value property.
func (d *Digit) Dispose() {
	if d.unsub != nil {
		d.unsub()
	}
}

// roll is the value-change handler: resolve both digits to strip offsets,
// validate, and drive the timeline.
func (d *Digit) roll(old, new uint8) {
	from, to := int(old), int(new)

	// Out-of-range values reach us through transient binding states
	// (uninitialized hosts, partial updates). The strip is left exactly
	// where it is: a silent no-op, deliberately not an error.
	if from < 0 || to < 0 || from >= DigitCount || to >= DigitCount {
		return
	}

	if d.preview {
		d.Offset.Set(OffsetOf(to))
		return
	}

	if d.anim == nil {
		d.anim = NewTimeline(d.Offset, OffsetOf(from), OffsetOf(to), RollDuration)
		d.animator.Start(d.anim)
		return
	}

	// A change arrived mid-flight. Retarget the running timeline in place
	// and restart it; intermediate targets are superseded, never queued.
	d.anim.Retarget(OffsetOf(from), OffsetOf(to))
}

// Render draws the window onto the buffer: GlyphHeight rows of the strip
// at the current offset, with the top and bottom rows shaded to suggest
// the drum curving away.
func (d *Digit) Render(buf *Buffer, x, y int) {
	fill := d.Fill.Get()
	face := Style{FG: fill, BG: d.theme.Plate.BG}
	edge := d.theme.edgeStyle(fill)

	// The strip row visible at the top of the window. Offsets run
	// negative down the strip, so negate.
	top := int(math.Round(-d.Offset.Get()))

	for row := 0; row < GlyphHeight; row++ {
		stripRow := top + row
		glyph := stripRow / stripPitchRows
		inner := stripRow % stripPitchRows

		if stripRow < 0 || glyph >= DigitCount || inner >= GlyphHeight {
			// Gap band between glyphs, or off the end of the strip.
			for col := 0; col < GlyphWidth; col++ {
				buf.Set(x+col, y+row, NewCell(' ', d.theme.Plate))
			}
			continue
		}

		style := face
		if row == 0 || row == GlyphHeight-1 {
			style = edge
		}

		col := 0
		for _, r := range stripGlyphs[glyph][inner] {
			if r == ' ' {
				buf.Set(x+col, y+row, NewCell(' ', d.theme.Plate))
			} else {
				buf.Set(x+col, y+row, NewCell(r, style))
			}
			col++
		}
	}
}
