package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	EchoTo(os.Stderr, msg, args...)
}

// EchoTo is like Echo, but writes to out.
// A trailing newline is added if msg doesn't already end with one.
func EchoTo(out io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(out, msg, args...)
}
