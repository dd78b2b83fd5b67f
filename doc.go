// Package amqpdebug provides compile-time toggleable debug output for
// AMQP wire-format serialization code.
//
// Debug output is enabled by default. Building with the nodebug tag
// compiles a no-op implementation instead, so disabled builds carry no
// output calls and no runtime checks:
//
//	go build -tags nodebug
//
// Print and Printf write verbatim to Output with no added newline,
// prefix, or timestamp; callers own all formatting. Go evaluates call
// arguments unconditionally, so arguments passed to Print and Printf
// are evaluated even in nodebug builds. Work that must be compiled out
// entirely belongs inside a Do closure or an "if Enabled" block, both
// of which the compiler eliminates when disabled.
package amqpdebug

import (
	"io"
	"os"
)

// Output is the stream debug output is written to. The package does no
// buffering, flushing, or locking around it: concurrent emissions may
// interleave their bytes, and write errors are not observed.
var Output io.Writer = os.Stdout
