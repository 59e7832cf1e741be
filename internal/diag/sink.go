// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package diag collects the human-readable notes a conversion run
// produces: field collisions, unknown types, and unsupported constructs.
// A Sink is passed explicitly through every stage so that repeated or
// parallel runs within one process never share state by accident.
package diag

import (
	"fmt"
	"strings"
	"sync"
)

// Sink is an append-only collection of conversion notes.
type Sink struct {
	mu    sync.Mutex
	notes []string
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Notef appends one formatted note.
func (s *Sink) Notef(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, fmt.Sprintf(format, args...))
}

// Notes returns a copy of all notes in append order.
func (s *Sink) Notes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.notes...)
}

// Empty reports whether no notes were recorded.
func (s *Sink) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes) == 0
}

// Render produces the conversion log: a header line, every note, and a
// closing marker.
func (s *Sink) Render(header string) string {
	var b strings.Builder
	b.WriteString(header)
	if !strings.HasSuffix(header, "\n") {
		b.WriteByte('\n')
	}
	for _, n := range s.Notes() {
		b.WriteString(n)
		if !strings.HasSuffix(n, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString("END OF LOG\n")
	return b.String()
}
