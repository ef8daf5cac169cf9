// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"sync"
)

// DefaultRingSize is the number of entries kept by a [RingBuffer] created
// with a non-positive size.
const DefaultRingSize = 500

// RingBuffer is an io.Writer sink that keeps the last N log entries in
// memory. zerolog writes one entry per Write call.
type RingBuffer struct {
	mu      sync.Mutex
	entries []string
	next    int
	full    bool
}

// NewRingBuffer creates a ring buffer holding up to size entries.
func NewRingBuffer(size int) *RingBuffer {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &RingBuffer{entries: make([]string, size)}
}

// Write implements io.Writer. The trailing newline of the entry is dropped.
func (r *RingBuffer) Write(p []byte) (int, error) {
	entry := string(bytes.TrimRight(p, "\n"))

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}

	return len(p), nil
}

// Lines returns the buffered entries from oldest to newest.
func (r *RingBuffer) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		out := make([]string, r.next)
		copy(out, r.entries[:r.next])
		return out
	}

	out := make([]string, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	out = append(out, r.entries[:r.next]...)
	return out
}

// Len returns the number of buffered entries.
func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.full {
		return len(r.entries)
	}
	return r.next
}
