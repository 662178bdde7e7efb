// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/lonestar/internal/logging"
	"github.com/tomtom215/lonestar/internal/models"
)

// DownloadStore owns the persisted download ledger. At most one record
// exists per content ID. Nothing removes records on expiry; expiry is
// computed at read time by the callers.
type DownloadStore struct {
	db *badger.DB

	mu      sync.Mutex
	records []models.DownloadRecord
}

// NewDownloadStore loads the ledger, starting empty when the stored
// document is absent or unparseable.
func NewDownloadStore(db *badger.DB) (*DownloadStore, error) {
	s := &DownloadStore{db: db}

	data, ok, err := readDocument(db, downloadsKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(data, &s.records); err != nil {
			logging.Warn().Msg("stored downloads unparseable, falling back to empty ledger")
			s.records = nil
		}
	}
	return s, nil
}

// All returns the ledger in insertion order.
func (s *DownloadStore) All() []models.DownloadRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.DownloadRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record for contentID, if one exists.
func (s *DownloadStore) Get(contentID string) (models.DownloadRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.ContentID == contentID {
			return rec, true
		}
	}
	return models.DownloadRecord{}, false
}

// Toggle flips download state for contentID: an existing record is removed,
// otherwise a new one is created expiring models.DownloadTTL after now.
// added reports the direction of the flip.
func (s *DownloadStore) Toggle(contentID string, now time.Time) (rec models.DownloadRecord, added bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.ContentID == contentID {
			next := make([]models.DownloadRecord, 0, len(s.records)-1)
			next = append(next, s.records[:i]...)
			next = append(next, s.records[i+1:]...)
			prev := s.records
			s.records = next
			if err := s.persistLocked(); err != nil {
				s.records = prev
				return models.DownloadRecord{}, false, err
			}
			return existing, false, nil
		}
	}

	rec = models.NewDownloadRecord(contentID, now)
	s.records = append(s.records, rec)
	if err := s.persistLocked(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return models.DownloadRecord{}, false, err
	}
	return rec, true, nil
}

func (s *DownloadStore) persistLocked() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("marshal downloads: %w", err)
	}
	return writeDocument(s.db, downloadsKey, data)
}
