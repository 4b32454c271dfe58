package drum

// Component is the interface all display components implement.
// Components are display-only: they lay out within the constraints their
// parent hands down and draw themselves into a buffer.
type Component interface {
	// Layout
	SetConstraints(width, height int) // Parent tells us available space
	MinSize() (width, height int)     // Minimum size we need
	Size() (width, height int)        // Our actual size after layout

	// Rendering
	Render(buf *Buffer, x, y int)

	// Styling
	GetStyle() Style
	SetStyle(Style)
}

// Base provides common functionality for all components.
// Embed this in your component structs.
type Base struct {
	style         Style
	width, height int // Actual size
	minW, minH    int // Minimum size
	constraintW   int // Available width from parent
	constraintH   int // Available height from parent
}

// GetStyle returns the component's style.
func (b *Base) GetStyle() Style {
	return b.style
}

// SetStyle sets the component's style.
func (b *Base) SetStyle(s Style) {
	b.style = s
}

// SetConstraints is called by the parent to tell us available space.
func (b *Base) SetConstraints(width, height int) {
	b.constraintW = width
	b.constraintH = height
}

// Constraints returns the current constraints.
func (b *Base) Constraints() (width, height int) {
	return b.constraintW, b.constraintH
}

// MinSize returns the minimum size needed.
func (b *Base) MinSize() (int, int) {
	return b.minW, b.minH
}

// Size returns the actual size.
func (b *Base) Size() (int, int) {
	return b.width, b.height
}

// SetSize sets the actual size.
func (b *Base) SetSize(w, h int) {
	b.width = w
	b.height = h
}

// SetMinSize sets the minimum size.
func (b *Base) SetMinSize(w, h int) {
	b.minW = w
	b.minH = h
}

// BaseContainer provides common functionality for components that hold
// children. Embed this in container structs.
type BaseContainer struct {
	Base
	children []Component
	gap      int // Space between children
}

// Children returns the child components.
func (c *BaseContainer) Children() []Component {
	return c.children
}

// AddChild adds a single child to the container.
func (c *BaseContainer) AddChild(child Component) {
	c.children = append(c.children, child)
}

// Gap returns the gap between children.
func (c *BaseContainer) Gap() int {
	return c.gap
}

// SetGap sets the gap between children.
func (c *BaseContainer) SetGap(g int) {
	c.gap = g
}
