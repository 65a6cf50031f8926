// Package debug has helpers for human readable dumps of nested structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultIndent = 2

// TreeWriter accumulates indented lines, one level of depth per indent.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return NewTreeWriterIndent(defaultIndent)
}

// NewTreeWriterIndent returns writer using width spaces per level, values
// below 1 fall back to default.
func NewTreeWriterIndent(width int) *TreeWriter {
	if width < 1 {
		width = defaultIndent
	}
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: strings.Repeat(" ", width),
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes "label: value" with value quoted, empty value is left
// as is.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
