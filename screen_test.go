package drum

import (
	"bytes"
	"strings"
	"testing"
)

func TestScreenFlush(t *testing.T) {
	t.Run("WritesChangedCells", func(t *testing.T) {
		var out bytes.Buffer
		s, err := NewScreen(&out)
		if err != nil {
			t.Fatal(err)
		}

		s.Buffer().Set(0, 0, NewCell('X', DefaultStyle().Foreground(Red)))
		s.Flush()

		got := out.String()
		if !strings.Contains(got, "\x1b[1;1H") {
			t.Errorf("output missing cursor positioning: %q", got)
		}
		if !strings.Contains(got, "X") {
			t.Errorf("output missing cell content: %q", got)
		}
		if !strings.Contains(got, ";31") {
			t.Errorf("output missing foreground color: %q", got)
		}
	})

	t.Run("SkipsUnchangedFrames", func(t *testing.T) {
		var out bytes.Buffer
		s, err := NewScreen(&out)
		if err != nil {
			t.Fatal(err)
		}

		s.Buffer().Set(0, 0, NewCell('X', DefaultStyle()))
		s.Flush()
		out.Reset()

		s.Buffer().Set(0, 0, NewCell('X', DefaultStyle()))
		s.Flush()
		if out.Len() != 0 {
			t.Errorf("unchanged frame produced output: %q", out.String())
		}
	})

	t.Run("PaletteColorSequence", func(t *testing.T) {
		var out bytes.Buffer
		s, err := NewScreen(&out)
		if err != nil {
			t.Fatal(err)
		}

		s.Buffer().Set(0, 0, NewCell('X', DefaultStyle().Foreground(PaletteColor(137))))
		s.Flush()

		if got := out.String(); !strings.Contains(got, ";38;5;137") {
			t.Errorf("output missing palette sequence: %q", got)
		}
	})

	t.Run("RGBColorSequence", func(t *testing.T) {
		var out bytes.Buffer
		s, err := NewScreen(&out)
		if err != nil {
			t.Fatal(err)
		}

		s.Buffer().Set(0, 0, NewCell('█', DefaultStyle().Foreground(RGB(242, 231, 201))))
		s.Flush()

		if got := out.String(); !strings.Contains(got, ";38;2;242;231;201") {
			t.Errorf("output missing truecolor sequence: %q", got)
		}
	})
}
