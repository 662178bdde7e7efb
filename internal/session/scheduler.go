// Lonestar - Streaming Catalog and Recommendation Service
// Copyright (C) 2025 Tom F https://github.com/tomtom215
//
// Licensed under AGPL-3.0 or later

package session

import (
	"sync"
	"time"
)

// Scheduler coalesces bursts of work into a single delayed execution
// per key. Every Schedule call bumps the key's sequence number and
// resets its timer, so only the last request in a burst ever fires.
// The sequence number is handed to the callback; callers compare it
// against Current before applying results, which makes results that
// were in flight when a newer request arrived detectable as stale.
type Scheduler struct {
	mu      sync.Mutex
	entries map[string]*schedulerEntry
}

type schedulerEntry struct {
	seq   uint64
	timer *time.Timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{entries: make(map[string]*schedulerEntry)}
}

// Schedule arranges for fn to run after delay, cancelling any earlier
// pending run for the same key. fn receives the sequence number that
// was current when it was scheduled.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func(seq uint64)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		entry = &schedulerEntry{}
		s.entries[key] = entry
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.seq++
	seq := entry.seq
	entry.timer = time.AfterFunc(delay, func() { fn(seq) })
	return seq
}

// Cancel stops any pending run for key and bumps its sequence so that
// results from an already-fired run are treated as stale.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return
	}
	if entry.timer != nil {
		entry.timer.Stop()
		entry.timer = nil
	}
	entry.seq++
}

// Current reports whether seq is still the latest sequence for key.
func (s *Scheduler) Current(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	return ok && entry.seq == seq
}
