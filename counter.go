package drum

// Counter is a row of rolling digit wheels showing a non-negative
// integer, like the full register of an odometer. Each wheel animates
// independently, so a 199 -> 200 step rolls three wheels at once.
type Counter struct {
	BaseContainer

	wheels []*Digit // most significant first
	value  int
	modulo int // 10^len(wheels)
	theme  Theme
	framed bool
}

// NewCounter creates a counter with the given number of wheels, all
// showing 0.
func NewCounter(animator *Animator, wheels int) *Counter {
	if wheels < 1 {
		wheels = 1
	}
	c := &Counter{modulo: 1, theme: ThemeOdometer}
	c.gap = 1
	for i := 0; i < wheels; i++ {
		d := NewDigit(animator)
		c.wheels = append(c.wheels, d)
		c.AddChild(d)
		c.modulo *= 10
	}
	w, h := c.contentSize()
	c.SetMinSize(w, h)
	c.SetSize(w, h)
	return c
}

// Set rolls the counter to n. Values wrap at the register's capacity the
// way a mechanical counter does; negative input leaves the counter
// unchanged, matching the wheels' fail-silent policy.
func (c *Counter) Set(n int) {
	if n < 0 {
		return
	}
	n %= c.modulo
	c.value = n

	for i := len(c.wheels) - 1; i >= 0; i-- {
		digit := uint8(n % 10)
		// Binding hosts only raise real changes; do the same so steady
		// wheels don't restart their timelines on every Set.
		if c.wheels[i].Value.Get() != digit {
			c.wheels[i].Value.Set(digit)
		}
		n /= 10
	}
}

// Value returns the last value set.
func (c *Counter) Value() int {
	return c.value
}

// Wheels returns the digit wheels, most significant first.
func (c *Counter) Wheels() []*Digit {
	return c.wheels
}

// Preview puts every wheel in preview mode.
func (c *Counter) Preview(on bool) *Counter {
	for _, d := range c.wheels {
		d.Preview(on)
	}
	return c
}

// Themed applies a theme to every wheel and to the counter's bezel.
func (c *Counter) Themed(t Theme) *Counter {
	c.theme = t
	for _, d := range c.wheels {
		d.Themed(t)
	}
	return c
}

// Framed draws a bezel around the wheels in the theme's bezel style,
// growing the counter by one cell on each side.
func (c *Counter) Framed(on bool) *Counter {
	c.framed = on
	w, h := c.contentSize()
	c.SetMinSize(w, h)
	c.SetSize(w, h)
	return c
}

func (c *Counter) contentSize() (int, int) {
	n := len(c.wheels)
	w, h := n*GlyphWidth+(n-1)*c.gap, GlyphHeight
	if c.framed {
		w += 2
		h += 2
	}
	return w, h
}

// MinSize implements Component.
func (c *Counter) MinSize() (int, int) {
	return c.contentSize()
}

// Size implements Component.
func (c *Counter) Size() (int, int) {
	return c.contentSize()
}

// Render implements Component, drawing the wheels left to right inside
// the bezel when framed.
func (c *Counter) Render(buf *Buffer, x, y int) {
	if c.framed {
		w, h := c.contentSize()
		buf.DrawBorder(x, y, w, h, BorderSingle, c.theme.Bezel)
		x++
		y++
	}
	for i, d := range c.wheels {
		d.Render(buf, x+i*(GlyphWidth+c.gap), y)
	}
}

// Dispose detaches every wheel from its properties.
func (c *Counter) Dispose() {
	for _, d := range c.wheels {
		d.Dispose()
	}
}
