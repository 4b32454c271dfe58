// Command counter embeds the rolling-digit widget in a bubbletea program,
// for hosts that already live inside the bubbletea render loop rather
// than the drum screen.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"drum"
)

const (
	wheels    = 4
	frameRate = 30
)

var frame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("137")).
	Foreground(lipgloss.Color("223")).
	Padding(0, 2)

var caption = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	MarginTop(1)

type frameMsg time.Time
type stepMsg struct{}

type model struct {
	counter  *drum.Counter
	animator *drum.Animator
	buf      *drum.Buffer
	value    int
}

func newModel() model {
	animator := drum.NewAnimator()
	counter := drum.NewCounter(animator, wheels).Themed(drum.ThemeMono)
	w, h := counter.Size()
	return model{
		counter:  counter,
		animator: animator,
		buf:      drum.NewBuffer(w, h),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tick(), step())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func step() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return stepMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.animator.Advance(time.Time(msg))
		return m, tick()
	case stepMsg:
		m.value++
		m.counter.Set(m.value)
		return m, step()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	m.buf.Clear()
	m.counter.Render(m.buf, 0, 0)
	return frame.Render(m.buf.String()) + "\n" +
		caption.Render("q to quit")
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "counter: %v\n", err)
		os.Exit(1)
	}
}
