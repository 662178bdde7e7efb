// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package store

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/lonestar/internal/logging"
	"github.com/tomtom215/lonestar/internal/models"
)

// SeedProfiles returns the fixed first-run profile set.
func SeedProfiles() []models.Profile {
	return []models.Profile{
		{ID: "1", Name: "James", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=James", MaxRating: models.RatingR, Watchlist: []string{}, History: []string{}},
		{ID: "2", Name: "Sarah", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah", MaxRating: models.RatingPG13, Watchlist: []string{}, History: []string{}},
		{ID: "3", Name: "Liberia Kids", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Kids", MaxRating: models.RatingG, Watchlist: []string{}, History: []string{}},
	}
}

// ProfileStore owns the persisted profile collection. All mutation goes
// through its methods under one mutex; readers receive clones, so persisted
// state can never be mutated in place. Every mutation rewrites the whole
// collection in a single transaction, so a reader can never observe a
// half-applied toggle.
type ProfileStore struct {
	db *badger.DB

	mu       sync.Mutex
	profiles []models.Profile
}

// NewProfileStore loads the profile collection, seeding it when the stored
// document is absent or unparseable.
func NewProfileStore(db *badger.DB) (*ProfileStore, error) {
	s := &ProfileStore{db: db}

	data, ok, err := readDocument(db, profilesKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(data, &s.profiles); err == nil && len(s.profiles) > 0 {
			return s, nil
		}
		logging.Warn().Msg("stored profiles unparseable, falling back to seed")
	}

	s.profiles = SeedProfiles()
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// All returns clones of every profile, in stored order.
func (s *ProfileStore) All() []models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Profile, len(s.profiles))
	for i := range s.profiles {
		out[i] = *s.profiles[i].Clone()
	}
	return out
}

// Get returns a clone of the profile with the given ID.
func (s *ProfileStore) Get(id string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return s.profiles[i].Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
}

// Create adds a new profile and persists the collection.
func (s *ProfileStore) Create(name, avatar string, maxRating models.Rating) (*models.Profile, error) {
	if !maxRating.Valid() {
		return nil, fmt.Errorf("unknown rating ceiling %q", maxRating)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Profile{
		ID:        uuid.New().String(),
		Name:      name,
		Avatar:    avatar,
		MaxRating: maxRating,
		Watchlist: []string{},
		History:   []string{},
	}
	s.profiles = append(s.profiles, p)
	if err := s.persistLocked(); err != nil {
		s.profiles = s.profiles[:len(s.profiles)-1]
		return nil, err
	}
	return p.Clone(), nil
}

// ToggleWatchlist flips watchlist membership of contentID for the profile:
// add when absent, remove when present. The updated profile is persisted
// and returned in one step. added reports the direction of the flip.
func (s *ProfileStore) ToggleWatchlist(profileID, contentID string) (p *models.Profile, added bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(profileID)
	if idx < 0 {
		return nil, false, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}

	prof := &s.profiles[idx]
	if prof.InWatchlist(contentID) {
		next := make([]string, 0, len(prof.Watchlist)-1)
		for _, id := range prof.Watchlist {
			if id != contentID {
				next = append(next, id)
			}
		}
		prof.Watchlist = next
	} else {
		prof.Watchlist = append(prof.Watchlist, contentID)
		added = true
	}

	if err := s.persistLocked(); err != nil {
		return nil, false, err
	}
	return prof.Clone(), added, nil
}

// RecordHistory appends contentID to the profile's watch history if not
// already present, and persists.
func (s *ProfileStore) RecordHistory(profileID, contentID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(profileID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}

	prof := &s.profiles[idx]
	if !prof.InHistory(contentID) {
		prof.History = append(prof.History, contentID)
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
	}
	return prof.Clone(), nil
}

func (s *ProfileStore) indexLocked(id string) int {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ProfileStore) persistLocked() error {
	data, err := json.Marshal(s.profiles)
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	return writeDocument(s.db, profilesKey, data)
}
