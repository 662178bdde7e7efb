// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package session

import (
	"sync"
	"testing"
	"time"
)

func TestSchedulerCoalescesBurst(t *testing.T) {
	s := NewScheduler()
	var mu sync.Mutex
	var fired []uint64

	for i := 0; i < 5; i++ {
		s.Schedule("k", 30*time.Millisecond, func(seq uint64) {
			mu.Lock()
			fired = append(fired, seq)
			mu.Unlock()
		})
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 1 {
		t.Fatalf("fired %d times, want 1", len(fired))
	}
	if fired[0] != 5 {
		t.Errorf("fired seq = %d, want 5", fired[0])
	}
	if !s.Current("k", fired[0]) {
		t.Error("final seq not current")
	}
}

func TestSchedulerCancelPreventsRun(t *testing.T) {
	s := NewScheduler()
	done := make(chan uint64, 1)

	seq := s.Schedule("k", 20*time.Millisecond, func(seq uint64) { done <- seq })
	s.Cancel("k")

	select {
	case got := <-done:
		t.Fatalf("cancelled run fired with seq %d", got)
	case <-time.After(80 * time.Millisecond):
	}
	if s.Current("k", seq) {
		t.Error("cancelled seq still current")
	}
}

func TestSchedulerSequencesAreStale(t *testing.T) {
	s := NewScheduler()
	first := s.Schedule("k", time.Millisecond, func(uint64) {})
	second := s.Schedule("k", time.Millisecond, func(uint64) {})

	if s.Current("k", first) {
		t.Error("superseded seq reported current")
	}
	if !s.Current("k", second) {
		t.Error("latest seq not current")
	}
	if s.Current("other", 1) {
		t.Error("unknown key reported current")
	}
}
