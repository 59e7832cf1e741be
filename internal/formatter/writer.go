// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package formatter provides an indentation-aware writer for assembling
// generated source text.
package formatter

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// Writer accumulates generated source, tracking the current indentation
// depth and any active line prefixes (used to comment out whole blocks).
type Writer struct {
	b           strings.Builder
	depth       int
	prefixes    []string
	atLineStart bool
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{atLineStart: true}
}

// Printf appends formatted text. Newlines inside the text restart
// indentation for the following line.
func (w *Writer) Printf(format string, args ...any) {
	w.write(fmt.Sprintf(format, args...))
}

// Indent runs fn with the indentation depth increased by one level.
func (w *Writer) Indent(fn func()) {
	w.depth++
	fn()
	w.depth--
}

// PushLinePrefix prepends prefix to every subsequent line until the
// matching PopLinePrefix.
func (w *Writer) PushLinePrefix(prefix string) {
	w.prefixes = append(w.prefixes, prefix)
}

// PopLinePrefix removes the most recent line prefix.
func (w *Writer) PopLinePrefix() {
	if len(w.prefixes) > 0 {
		w.prefixes = w.prefixes[:len(w.prefixes)-1]
	}
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.b.String()
}

func (w *Writer) write(s string) {
	for len(s) > 0 {
		chunk := s
		newline := false
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			chunk, s, newline = s[:i], s[i+1:], true
		} else {
			s = ""
		}
		if chunk != "" {
			w.beginLine()
			w.b.WriteString(chunk)
		}
		if newline {
			if w.atLineStart && len(w.prefixes) > 0 {
				// Prefixes still apply to blank lines, trimmed of
				// trailing space.
				for _, p := range w.prefixes {
					w.b.WriteString(strings.TrimRight(p, " "))
				}
			}
			w.b.WriteByte('\n')
			w.atLineStart = true
		}
	}
}

func (w *Writer) beginLine() {
	if !w.atLineStart {
		return
	}
	for i := 0; i < w.depth; i++ {
		w.b.WriteString(indentUnit)
	}
	for _, p := range w.prefixes {
		w.b.WriteString(p)
	}
	w.atLineStart = false
}
