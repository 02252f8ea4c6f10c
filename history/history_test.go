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

package history

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/plotting"
)

func snapshots(t *testing.T, n int) []*plotting.Snapshot {
	t.Helper()
	never := plotting.PredicateFunc(func(x, y, tolerance float64) bool { return false })
	s, err := plotting.New(never, 1, 4, 1)
	require.NoError(t, err)

	res := []*plotting.Snapshot{s}
	for len(res) < n {
		s, err = s.Zoom(plotting.ZoomIn)
		require.NoError(t, err)
		res = append(res, s)
	}
	return res
}

func TestEmpty(t *testing.T) {
	var s Stack
	assert.Equal(t, 0, s.Len())

	_, ok := s.Peek()
	assert.False(t, ok)
	_, ok = s.Pop()
	assert.False(t, ok)
	_, ok = s.Back()
	assert.False(t, ok)
	assert.False(t, s.CanGoBack())
	assert.Empty(t, s.Entries())
}

func TestLIFO(t *testing.T) {
	snaps := snapshots(t, 3)
	var s Stack

	var entries []Entry
	for _, snap := range snaps {
		entries = append(entries, s.Push(snap))
	}
	assert.Equal(t, 3, s.Len())
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, entries, s.Entries())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, snaps[2], top.Snapshot)
	assert.Equal(t, 3, s.Len())

	for i := 2; i >= 0; i-- {
		e, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, entries[i], e)
	}
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestBack(t *testing.T) {
	snaps := snapshots(t, 3)
	var s Stack
	for _, snap := range snaps {
		s.Push(snap)
	}

	e, ok := s.Back()
	require.True(t, ok)
	assert.Same(t, snaps[1], e.Snapshot)
	assert.Equal(t, 2, s.Len())

	e, ok = s.Back()
	require.True(t, ok)
	assert.Same(t, snaps[0], e.Snapshot)

	// the first snapshot stays
	assert.False(t, s.CanGoBack())
	_, ok = s.Back()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, snaps[0], top.Snapshot)
}

func TestConcurrentPush(t *testing.T) {
	snap := snapshots(t, 1)[0]
	var s Stack

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Push(snap)
			s.Peek()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
