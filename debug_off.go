//go:build nodebug

package amqpdebug

// Enabled indicates whether debug output is compiled in.
const Enabled = false

// Print is a no-op in nodebug builds. Its arguments are still evaluated.
func Print(args ...any) {
	// No output in nodebug builds
}

// Printf is a no-op in nodebug builds. Its arguments are still evaluated.
func Printf(format string, args ...any) {
	// No output in nodebug builds
}

// Do is a no-op in nodebug builds; f is never invoked.
func Do(f func()) {
}
