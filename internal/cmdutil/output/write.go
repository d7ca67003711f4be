package output

import (
	"io"
	"os"
)

// Write formats data with the formatter for the given format and writes it
// to w. Table-oriented callers pass a Data value; everything else renders
// through the reflection or JSON paths.
func Write(w io.Writer, format Format, data any) error {
	return NewFormatter(format).Format(w, data)
}

// Print formats data to stdout. An empty format string auto-detects based
// on whether stdout is a terminal.
func Print(format string, data any) error {
	return Write(os.Stdout, DetectFormat(format), data)
}
