//go:build !nodebug

package amqpdebug

import "fmt"

// Enabled indicates whether debug output is compiled in.
const Enabled = true

// Print writes its operands to Output exactly as fmt.Fprint would.
// No newline is added.
func Print(args ...any) {
	fmt.Fprint(Output, args...)
}

// Printf writes a formatted message to Output. No newline is added.
func Printf(format string, args ...any) {
	fmt.Fprintf(Output, format, args...)
}

// Do runs f. Use it for debug work whose evaluation must not happen in
// nodebug builds.
func Do(f func()) {
	f()
}
