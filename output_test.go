package amqpdebug

import (
	"bytes"
	"testing"
)

// swapOutput points Output at a buffer for the duration of the test.
func swapOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	t.Cleanup(func() { Output = prev })
	return &buf
}
