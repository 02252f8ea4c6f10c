// seehuhn.de/go/plotting - rasterize implicit curves
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package history keeps the previously computed snapshots of a viewer, for
// "back" navigation.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"seehuhn.de/go/plotting"
)

// Entry is a snapshot on the stack.
type Entry struct {
	ID       uuid.UUID
	Created  time.Time
	Snapshot *plotting.Snapshot
}

// Stack is a last-in first-out list of snapshots.  The top of the stack is
// the snapshot currently shown.
//
// The zero value is an empty stack.  A Stack is safe for concurrent use.
type Stack struct {
	mu      sync.Mutex
	entries []Entry
}

// Push adds a snapshot on top of the stack and returns the new entry.
func (s *Stack) Push(snap *plotting.Snapshot) Entry {
	e := Entry{
		ID:       uuid.New(),
		Created:  time.Now(),
		Snapshot: snap,
	}

	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	return e
}

// Pop removes and returns the top entry.
// The second return value is false if the stack is empty.
func (s *Stack) Pop() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if n == 0 {
		return Entry{}, false
	}
	e := s.entries[n-1]
	s.entries[n-1] = Entry{}
	s.entries = s.entries[:n-1]
	return e, true
}

// Peek returns the top entry without removing it.
// The second return value is false if the stack is empty.
func (s *Stack) Peek() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if n == 0 {
		return Entry{}, false
	}
	return s.entries[n-1], true
}

// Back discards the top entry and returns the entry below it, which
// becomes the new top.  The bottom entry is never discarded: if fewer than
// two entries are present, the stack is left unchanged and the second
// return value is false.
func (s *Stack) Back() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if n < 2 {
		return Entry{}, false
	}
	s.entries[n-1] = Entry{}
	s.entries = s.entries[:n-1]
	return s.entries[n-2], true
}

// CanGoBack reports whether [Stack.Back] would succeed.
func (s *Stack) CanGoBack() bool {
	return s.Len() > 1
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns a copy of the entries, starting at the bottom.
func (s *Stack) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]Entry, len(s.entries))
	copy(res, s.entries)
	return res
}
