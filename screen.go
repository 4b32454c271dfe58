package drum

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Screen manages the terminal display with double buffering and
// diff-based updates.
type Screen struct {
	front  *Buffer   // What's currently displayed
	back   *Buffer   // What we're drawing to
	writer io.Writer // Output destination (usually os.Stdout)
	fd     int       // File descriptor for terminal operations

	width  int
	height int

	// Terminal state
	oldState  *term.State
	inRawMode bool

	// Resize handling
	resizeChan chan Size
	sigChan    chan os.Signal

	// Rendering state
	lastStyle Style        // Last style we emitted (for optimization)
	buf       bytes.Buffer // Reusable buffer for building output

	// Protects buffer access during resize
	mu sync.Mutex
}

// Size represents dimensions.
type Size struct {
	Width  int
	Height int
}

// NewScreen creates a new screen writing to the given writer.
// Pass nil to use os.Stdout.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	width, height, err := term.GetSize(fd)
	if err != nil {
		// Default fallback
		width, height = 80, 24
	}

	return &Screen{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
		lastStyle:  DefaultStyle(),
	}, nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// ResizeChan returns a channel that receives size updates on terminal
// resize.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode, switches to the alternate
// screen and hides the cursor.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	s.oldState = state
	s.inRawMode = true

	notifyResize(s.sigChan)
	go s.handleSignals()

	s.writeString("\x1b[?1049h") // Enter alternate screen
	s.writeString("\x1b[2J")     // Clear (front buffer now matches the terminal)
	s.writeString("\x1b[H")      // Home
	s.writeString("\x1b[?25l")   // Hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[?25h")   // Show cursor
	s.writeString("\x1b[?1049l") // Exit alternate screen

	signal.Stop(s.sigChan)

	if s.oldState != nil {
		if err := term.Restore(s.fd, s.oldState); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// handleSignals processes resize signals.
func (s *Screen) handleSignals() {
	for range s.sigChan {
		width, height, err := term.GetSize(s.fd)
		if err != nil {
			continue
		}
		if width != s.width || height != s.height {
			s.mu.Lock()
			s.width = width
			s.height = height
			s.front.Resize(width, height)
			s.back.Resize(width, height)
			// Clear BOTH buffers to avoid stale content
			s.front.Clear()
			s.back.Clear()
			s.writeString("\x1b[2J")
			s.mu.Unlock()
			// Non-blocking send (outside lock to avoid potential deadlock)
			select {
			case s.resizeChan <- Size{Width: width, Height: height}:
			default:
			}
		}
	}
}

// debugFlush enables flush diagnostics via the DRUM_DEBUG_FLUSH env var.
var debugFlush = os.Getenv("DRUM_DEBUG_FLUSH") != ""

// Flush renders the back buffer to the terminal using per-cell diff.
// Only cells that actually changed are written, with cursor positioning
// per run. Rows not written to since the last flush are skipped entirely.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()

	changed := 0
	cursorX, cursorY := -1, -1

	for y := 0; y < s.height; y++ {
		if !s.back.RowDirty(y) {
			continue
		}

		for x := 0; x < s.width; x++ {
			backCell := s.back.Get(x, y)
			if backCell == s.front.Get(x, y) {
				continue
			}
			changed++

			// Position cursor if not already there
			if cursorX != x || cursorY != y {
				s.buf.WriteString("\x1b[")
				writeInt(&s.buf, y+1)
				s.buf.WriteByte(';')
				writeInt(&s.buf, x+1)
				s.buf.WriteByte('H')
			}

			s.writeCell(&s.buf, backCell)
			s.front.Set(x, y, backCell)

			// cursor advances by the display width of the character
			rw := runewidth.RuneWidth(backCell.Rune)
			if rw == 0 {
				rw = 1
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if changed > 0 {
		s.buf.WriteString("\x1b[0m")
		s.lastStyle = DefaultStyle()
	}
	if debugFlush {
		fmt.Fprintf(os.Stderr, "Flush: %d changed cells, buf size %d\n", changed, s.buf.Len())
	}

	s.back.ClearDirtyFlags()
	s.front.ClearDirtyFlags()

	if s.buf.Len() > 0 {
		s.writer.Write(s.buf.Bytes())
	}
}

// writeCell writes a cell's style and rune to the buffer.
func (s *Screen) writeCell(buf *bytes.Buffer, cell Cell) {
	// Only emit style changes
	if !cell.Style.Equal(s.lastStyle) {
		s.writeStyle(buf, cell.Style)
		s.lastStyle = cell.Style
	}
	buf.WriteRune(cell.Rune)
}

// writeStyle writes ANSI escape codes for the given style.
func (s *Screen) writeStyle(buf *bytes.Buffer, style Style) {
	// Reset first so stale attributes don't leak between cells
	buf.WriteString("\x1b[0")

	if style.Attr.Has(AttrBold) {
		buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		buf.WriteString(";2")
	}
	if style.Attr.Has(AttrUnderline) {
		buf.WriteString(";4")
	}
	if style.Attr.Has(AttrInverse) {
		buf.WriteString(";7")
	}

	s.writeColor(buf, style.FG, true)
	s.writeColor(buf, style.BG, false)

	buf.WriteString("m")
}

// writeColor writes the ANSI escape code for a color (allocation-free).
func (s *Screen) writeColor(buf *bytes.Buffer, c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			buf.WriteString(";39")
		} else {
			buf.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		buf.WriteByte(';')
		if c.Index >= 8 {
			// Bright colors
			writeInt(buf, base+60+int(c.Index-8))
		} else {
			writeInt(buf, base+int(c.Index))
		}
	case Color256:
		if fg {
			buf.WriteString(";38;5;")
		} else {
			buf.WriteString(";48;5;")
		}
		writeInt(buf, int(c.Index))
	case ColorRGB:
		if fg {
			buf.WriteString(";38;2;")
		} else {
			buf.WriteString(";48;2;")
		}
		writeInt(buf, int(c.R))
		buf.WriteByte(';')
		writeInt(buf, int(c.G))
		buf.WriteByte(';')
		writeInt(buf, int(c.B))
	}
}

// writeInt appends an integer to the buffer without allocation.
func writeInt(buf *bytes.Buffer, n int) {
	if n == 0 {
		buf.WriteByte('0')
		return
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	buf.Write(scratch[i:])
}

// writeString is a helper to write a string directly to the terminal.
func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}

// Clear clears the back buffer.
func (s *Screen) Clear() {
	s.back.Clear()
}
