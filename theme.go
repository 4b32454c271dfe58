package drum

import colorful "github.com/lucasb-eyer/go-colorful"

// Theme groups the paint choices for a counter window: the glyph face,
// the plate behind the strip, the bezel drawn around the window, and how
// strongly the window's edge rows are shaded to suggest drum curvature.
type Theme struct {
	Face  Color   // default glyph fill
	Plate Style   // background behind and between glyphs
	Bezel Style   // frame around the window
	Shade float64 // 0..1 darkening of the window's top and bottom rows
}

// Pre-defined themes

// ThemeOdometer is cream-on-black, the classic dashboard wheel.
var ThemeOdometer = Theme{
	Face:  Hex(0xF2E7C9),
	Plate: Style{FG: DefaultColor(), BG: Hex(0x1A1A14)},
	Bezel: Style{FG: Hex(0x8A8068), BG: Hex(0x1A1A14)},
	Shade: 0.55,
}

// ThemeFuelPump is the red-on-dark gallon counter.
var ThemeFuelPump = Theme{
	Face:  Hex(0xE8402A),
	Plate: Style{FG: DefaultColor(), BG: Hex(0x201512)},
	Bezel: Style{FG: Hex(0x6B4A3A), BG: Hex(0x201512)},
	Shade: 0.5,
}

// ThemeMono works on terminals without true color, using attributes
// instead of blended shades.
var ThemeMono = Theme{
	Face:  DefaultColor(),
	Plate: DefaultStyle(),
	Bezel: Style{FG: BrightBlack, BG: DefaultColor()},
	Shade: 0,
}

// EdgeFill returns the fill color darkened toward black by the theme's
// shade factor. Only RGB colors can be blended; others are returned
// unchanged (edgeStyle falls back to the dim attribute for those).
func (t Theme) EdgeFill(fill Color) Color {
	if t.Shade <= 0 || fill.Mode != ColorRGB {
		return fill
	}
	c := colorful.Color{
		R: float64(fill.R) / 255,
		G: float64(fill.G) / 255,
		B: float64(fill.B) / 255,
	}
	shaded := c.BlendLab(colorful.Color{}, t.Shade).Clamped()
	r, g, b := shaded.RGB255()
	return RGB(r, g, b)
}

// edgeStyle is the style for the window's top and bottom rows.
func (t Theme) edgeStyle(fill Color) Style {
	if fill.Mode == ColorRGB && t.Shade > 0 {
		return Style{FG: t.EdgeFill(fill), BG: t.Plate.BG}
	}
	return Style{FG: fill, BG: t.Plate.BG, Attr: AttrDim}
}
