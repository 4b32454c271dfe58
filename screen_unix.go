//go:build unix

package drum

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize subscribes the channel to terminal resize signals.
func notifyResize(ch chan os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}
