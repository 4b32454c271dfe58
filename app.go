package drum

import (
	"sync"
	"time"
)

// App is a minimal frame-loop host for drum components: it owns a screen
// and an animator, pumps the animator at a fixed frame rate, and flushes
// the root component to the terminal. The widgets are display-only, so
// the loop is purely timer driven; input is the embedding program's
// business.
//
// The animator and every property it drives belong to the frame loop.
// Other goroutines must not touch them directly; they hand work to the
// loop with Post.
type App struct {
	screen   *Screen
	animator *Animator
	root     Component
	fps      int
	post     chan func()
	quit     chan struct{}
	stopOnce sync.Once
}

// NewApp creates an app with a fresh screen and animator.
func NewApp() (*App, error) {
	screen, err := NewScreen(nil)
	if err != nil {
		return nil, err
	}
	return &App{
		screen:   screen,
		animator: NewAnimator(),
		fps:      30,
		post:     make(chan func(), 8),
		quit:     make(chan struct{}),
	}, nil
}

// SetRoot sets the component drawn each frame.
func (a *App) SetRoot(c Component) *App {
	a.root = c
	return a
}

// FPS sets the frame rate. Values below 1 are ignored.
func (a *App) FPS(fps int) *App {
	if fps >= 1 {
		a.fps = fps
	}
	return a
}

// Animator returns the app's animator, for wiring into widgets.
func (a *App) Animator() *Animator {
	return a.animator
}

// Screen returns the app's screen.
func (a *App) Screen() *Screen {
	return a.screen
}

// Run enters raw mode and blocks, rendering frames until Stop is called.
func (a *App) Run() error {
	if err := a.screen.EnterRawMode(); err != nil {
		return err
	}
	defer a.screen.ExitRawMode()

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	a.renderFrame(time.Now())

	for {
		select {
		case <-a.quit:
			return nil
		case fn := <-a.post:
			fn()
		case <-a.screen.ResizeChan():
			a.renderFrame(time.Now())
		case now := <-ticker.C:
			a.renderFrame(now)
		}
	}
}

// Post hands fn to the frame loop, which runs it before the next frame.
// This is the only way for another goroutine to mutate properties or
// timelines owned by a running app. Returns without running fn if the
// app has been stopped.
func (a *App) Post(fn func()) {
	select {
	case a.post <- fn:
	case <-a.quit:
	}
}

// Stop signals the run loop to exit. Safe to call from any goroutine,
// any number of times.
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// renderFrame advances animations to now and redraws the root.
func (a *App) renderFrame(now time.Time) {
	a.animator.Advance(now)
	if a.root == nil {
		return
	}

	buf := a.screen.Buffer()
	size := a.screen.Size()
	a.root.SetConstraints(size.Width, size.Height)

	// Center the root in the window.
	w, h := a.root.Size()
	x := (size.Width - w) / 2
	y := (size.Height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	a.root.Render(buf, x, y)
	a.screen.Flush()
}
