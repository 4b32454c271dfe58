//go:build !unix

package drum

import "os"

// notifyResize is a no-op on platforms without SIGWINCH; the screen keeps
// its initial size.
func notifyResize(ch chan os.Signal) {}
