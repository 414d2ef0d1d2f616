// Package console prepares the process's standard output for UTF-8 text.
package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// CodePageUTF8 is the Windows code page identifier for UTF-8.
const CodePageUTF8 = 65001

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return IsTerminalWriter(os.Stdout)
}

// IsTerminalWriter reports whether w is a file attached to a terminal.
// Buffers, pipes and other writers report false.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetUTF8 makes the console behind w render UTF-8 bytes. On Windows this
// switches the console output code page, which is process-wide; elsewhere
// UTF-8 is already the norm and it does nothing. Writers that are not a
// terminal are left alone on every platform.
func SetUTF8(w io.Writer) error {
	if !IsTerminalWriter(w) {
		return nil
	}
	return setOutputCodePage(CodePageUTF8)
}

// SetStdoutUTF8 is SetUTF8 for os.Stdout.
func SetStdoutUTF8() error {
	return SetUTF8(os.Stdout)
}
