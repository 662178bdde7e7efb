// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package session owns the viewing session: which profile is active,
// which page and filter are showing, the current query and selection,
// and the AI suggestion state. All mutation goes through the Manager
// under one mutex, and all debounced AI work flows through a Scheduler
// whose sequence numbers make stale completions detectable.
package session

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/lonestar/internal/catalog"
	"github.com/tomtom215/lonestar/internal/logging"
	"github.com/tomtom215/lonestar/internal/metrics"
	"github.com/tomtom215/lonestar/internal/models"
	"github.com/tomtom215/lonestar/internal/search"
	"github.com/tomtom215/lonestar/internal/store"
	"github.com/tomtom215/lonestar/internal/suggest"
	"github.com/tomtom215/lonestar/internal/websocket"
)

// Page identifies a top-level screen.
type Page string

// Pages navigable from the session.
const (
	PageHome      Page = "home"
	PageDownloads Page = "downloads"
	PageSearch    Page = "search"
)

// Valid reports whether p is a navigable page.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageDownloads, PageSearch:
		return true
	}
	return false
}

// Scheduler keys, doubling as the kind label on the supersession metric.
const (
	keySearch      = "search"
	keyPersonalize = "personalize"
)

// Default debounce windows. Search reacts faster than personalization
// because the user is actively typing; profile-driven pick refreshes
// can afford to settle longer.
const (
	DefaultSearchDebounce      = 400 * time.Millisecond
	DefaultPersonalizeDebounce = 800 * time.Millisecond
)

// Session errors surfaced to the API layer.
var (
	ErrNoProfile      = errors.New("session: no active profile")
	ErrUnknownContent = errors.New("session: content not in current view")
	ErrInvalidPage    = errors.New("session: invalid page")
	ErrInvalidFilter  = errors.New("session: invalid filter")
)

// Broadcaster pushes completion events to connected clients. It is
// satisfied by *websocket.Hub; tests substitute a recorder.
type Broadcaster interface {
	Broadcast(eventType string, data interface{})
}

// Config tunes the Manager's debounce windows.
type Config struct {
	SearchDebounce      time.Duration
	PersonalizeDebounce time.Duration
}

// Manager is the session state machine. One instance serves the whole
// process; the mutex serializes mutations the way a single UI event
// loop would.
type Manager struct {
	catalog   *catalog.Store
	profiles  *store.ProfileStore
	downloads *store.DownloadStore
	suggester suggest.Suggester
	hub       Broadcaster
	sched     *Scheduler
	cfg       Config

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	rng        *rand.Rand
	profile    *models.Profile
	page       Page
	filter     string
	query      string
	selectedID string
	view       catalog.View

	picks         []string
	picksLoading  bool
	searchAI      []string
	searchLoading bool
}

// NewManager wires the session over its collaborators. Zero debounce
// values in cfg fall back to the defaults.
func NewManager(cat *catalog.Store, profiles *store.ProfileStore, downloads *store.DownloadStore, suggester suggest.Suggester, hub Broadcaster, cfg Config) *Manager {
	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = DefaultSearchDebounce
	}
	if cfg.PersonalizeDebounce <= 0 {
		cfg.PersonalizeDebounce = DefaultPersonalizeDebounce
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		catalog:   cat,
		profiles:  profiles,
		downloads: downloads,
		suggester: suggester,
		hub:       hub,
		sched:     NewScheduler(),
		cfg:       cfg,
		ctx:       ctx,
		cancel:    cancel,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		page:      PageHome,
		filter:    catalog.FilterAll,
	}
	m.view = cat.ViewFor(nil, catalog.FilterAll, m.rng)
	return m
}

// Close cancels any in-flight AI work.
func (m *Manager) Close() {
	m.cancel()
	m.sched.Cancel(keySearch)
	m.sched.Cancel(keyPersonalize)
}

// Snapshot is a consistent read of the session state.
type Snapshot struct {
	Profile       *models.Profile `json:"profile"`
	Page          Page            `json:"page"`
	Filter        string          `json:"filter"`
	Query         string          `json:"query"`
	SelectedID    string          `json:"selected_id,omitempty"`
	PicksLoading  bool            `json:"picks_loading"`
	SearchLoading bool            `json:"search_loading"`
}

// State returns a snapshot. The profile is a clone; callers cannot
// reach session-owned state through it.
func (m *Manager) State() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Page:          m.page,
		Filter:        m.filter,
		Query:         m.query,
		SelectedID:    m.selectedID,
		PicksLoading:  m.picksLoading,
		SearchLoading: m.searchLoading,
	}
	if m.profile != nil {
		s.Profile = m.profile.Clone()
	}
	return s
}

// SelectProfile activates a profile and resets the session to the home
// page with no filter, query or selection. Activation kicks off the
// debounced personalized-picks fetch.
func (m *Manager) SelectProfile(profileID string) error {
	profile, err := m.profiles.Get(profileID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = profile
	m.page = PageHome
	m.filter = catalog.FilterAll
	m.query = ""
	m.selectedID = ""
	m.picks = nil
	m.searchAI = nil
	m.searchLoading = false
	m.rebuildViewLocked()
	m.schedulePicksLocked()
	return nil
}

// SignOut drops back to the profile picker. Pending AI work is
// cancelled so late completions cannot resurrect state.
func (m *Manager) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = nil
	m.page = PageHome
	m.filter = catalog.FilterAll
	m.query = ""
	m.selectedID = ""
	m.picks = nil
	m.picksLoading = false
	m.searchAI = nil
	m.searchLoading = false
	m.sched.Cancel(keySearch)
	m.sched.Cancel(keyPersonalize)
	m.rebuildViewLocked()
}

// Navigate switches the active page. The query survives navigation,
// so returning to the search page picks up where the viewer left off.
func (m *Manager) Navigate(page Page) error {
	if !page.Valid() {
		return ErrInvalidPage
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return ErrNoProfile
	}
	m.page = page
	return nil
}

// SetFilter narrows the catalog to one content type, or widens it back
// with "all". The view is recomputed, which rolls a fresh hero.
func (m *Manager) SetFilter(filter string) error {
	if filter == "" {
		filter = catalog.FilterAll
	}
	if filter != catalog.FilterAll && !models.ContentType(filter).Valid() {
		return ErrInvalidFilter
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return ErrNoProfile
	}
	m.filter = filter
	m.selectedID = ""
	m.rebuildViewLocked()
	m.schedulePicksLocked()
	return nil
}

// SetQuery updates the search query. A non-empty query schedules the
// debounced AI augmentation; clearing the query cancels it so an
// in-flight completion for the old text is discarded as stale.
func (m *Manager) SetQuery(query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return ErrNoProfile
	}
	m.query = query
	if strings.TrimSpace(query) == "" {
		m.clearQueryLocked()
		return nil
	}

	m.searchLoading = true
	library := m.view.Items()
	m.sched.Schedule(keySearch, m.cfg.SearchDebounce, func(seq uint64) {
		ids, err := m.suggester.SearchMatches(m.ctx, query, library)
		m.applySearch(seq, query, ids, err)
	})
	return nil
}

// SearchResults merges local substring matches with the AI-augmented
// set, local first, first occurrence winning.
func (m *Manager) SearchResults() []models.ContentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil || strings.TrimSpace(m.query) == "" {
		return nil
	}
	local := search.Local(m.view.Items(), m.query)
	ai := search.Resolve(m.view.Items(), m.searchAI)
	return search.MergeByID(local, ai)
}

// SelectItem opens the detail overlay for an item the session can
// reach: anything in the current view, or a saved download outside it.
func (m *Manager) SelectItem(contentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return ErrNoProfile
	}
	if !m.accessibleLocked(contentID) {
		return ErrUnknownContent
	}
	m.selectedID = contentID
	return nil
}

// Accessible reports whether the item can be opened in this session.
func (m *Manager) Accessible(contentID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile != nil && m.accessibleLocked(contentID)
}

// accessibleLocked is the reachability rule for opening and playing
// items. The downloads page joins the ledger against the full catalog,
// so a saved item stays reachable while a type filter hides it from
// the home view. The profile's rating ceiling still applies.
func (m *Manager) accessibleLocked(contentID string) bool {
	if m.view.Contains(contentID) {
		return true
	}
	if _, saved := m.downloads.Get(contentID); !saved {
		return false
	}
	item, ok := m.catalog.Get(contentID)
	return ok && item.Rating.AllowedUnder(m.profile.MaxRating)
}

// ClearSelection closes the detail overlay.
func (m *Manager) ClearSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedID = ""
}

// Play records the item on the active profile's history and returns
// the item for playback. History changes feed the next picks refresh.
func (m *Manager) Play(contentID string) (models.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return models.ContentItem{}, ErrNoProfile
	}
	if !m.accessibleLocked(contentID) {
		return models.ContentItem{}, ErrUnknownContent
	}
	updated, err := m.profiles.RecordHistory(m.profile.ID, contentID)
	if err != nil {
		return models.ContentItem{}, err
	}
	*m.profile = *updated
	m.schedulePicksLocked()
	m.broadcast(websocket.EventProfileUpdated, updated)
	content, _ := m.catalog.Get(contentID)
	return content, nil
}

// ToggleWatchlist flips the item's membership on the active profile's
// watchlist. Toggling twice restores the original state.
func (m *Manager) ToggleWatchlist(contentID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return false, ErrNoProfile
	}
	if !m.catalog.Has(contentID) {
		return false, ErrUnknownContent
	}
	updated, added, err := m.profiles.ToggleWatchlist(m.profile.ID, contentID)
	if err != nil {
		return false, err
	}
	// The view keeps a pointer to the session's profile, so updating
	// the struct in place is what keeps MyList current without a view
	// rebuild. A rebuild would reroll the hero for no view change.
	*m.profile = *updated
	m.schedulePicksLocked()
	m.broadcast(websocket.EventProfileUpdated, updated)
	return added, nil
}

// ToggleDownload flips the item's saved-for-offline state.
func (m *Manager) ToggleDownload(contentID string) (models.DownloadRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return models.DownloadRecord{}, false, ErrNoProfile
	}
	if !m.catalog.Has(contentID) {
		return models.DownloadRecord{}, false, ErrUnknownContent
	}
	rec, added, err := m.downloads.Toggle(contentID, time.Now().UTC())
	if err != nil {
		return models.DownloadRecord{}, false, err
	}
	m.broadcast(websocket.EventDownloadToggled, map[string]interface{}{
		"content_id": contentID,
		"added":      added,
	})
	return rec, added, nil
}

// DownloadEntry joins a download record with its catalog item for the
// downloads page.
type DownloadEntry struct {
	Item     models.ContentItem    `json:"item"`
	Record   models.DownloadRecord `json:"record"`
	TimeLeft string                `json:"time_left"`
	Expired  bool                  `json:"expired"`
}

// Downloads lists saved items with their remaining shelf life, newest
// records last, unknown catalog ids skipped.
func (m *Manager) Downloads() []DownloadEntry {
	now := time.Now().UTC()
	var entries []DownloadEntry
	for _, rec := range m.downloads.All() {
		item, ok := m.catalog.Get(rec.ContentID)
		if !ok {
			continue
		}
		entries = append(entries, DownloadEntry{
			Item:     item,
			Record:   rec,
			TimeLeft: rec.TimeLeft(now),
			Expired:  rec.Expired(now),
		})
	}
	return entries
}

// Download looks up the saved record for one item.
func (m *Manager) Download(contentID string) (models.DownloadRecord, bool) {
	return m.downloads.Get(contentID)
}

// View returns the current catalog view for row derivation.
func (m *Manager) View() catalog.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// PersonalPicks resolves the current AI picks against the view. Picks
// only surface when no type filter is active.
func (m *Manager) PersonalPicks() []models.ContentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil || !m.view.IsAll() {
		return nil
	}
	return search.Resolve(m.view.Items(), m.picks)
}

func (m *Manager) rebuildViewLocked() {
	m.view = m.catalog.ViewFor(m.profile, m.filter, m.rng)
}

func (m *Manager) clearQueryLocked() {
	m.query = ""
	m.searchAI = nil
	m.searchLoading = false
	m.sched.Cancel(keySearch)
}

// schedulePicksLocked queues the debounced personalized fetch. The
// fetch only runs with no type filter active; otherwise any pending
// run is cancelled so its completion lands stale.
func (m *Manager) schedulePicksLocked() {
	if m.profile == nil || m.filter != catalog.FilterAll {
		m.sched.Cancel(keyPersonalize)
		m.picksLoading = false
		return
	}
	m.picksLoading = true
	profile := m.profile.Clone()
	library := m.view.Items()
	m.sched.Schedule(keyPersonalize, m.cfg.PersonalizeDebounce, func(seq uint64) {
		ids, err := m.suggester.PersonalPicks(m.ctx, profile, library)
		m.applyPicks(seq, ids, err)
	})
}

func (m *Manager) applySearch(seq uint64, query string, ids []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.sched.Current(keySearch, seq) {
		metrics.DebounceSuperseded.WithLabelValues(keySearch).Inc()
		return
	}
	m.searchLoading = false
	if err != nil {
		// Degrade to local-only results.
		logging.Warn().Err(err).Str("query", query).Msg("Search augmentation failed")
		m.searchAI = nil
		return
	}
	m.searchAI = ids
	m.broadcast(websocket.EventSearchAugmented, map[string]interface{}{
		"query": query,
		"ids":   ids,
	})
}

func (m *Manager) applyPicks(seq uint64, ids []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.sched.Current(keyPersonalize, seq) {
		metrics.DebounceSuperseded.WithLabelValues(keyPersonalize).Inc()
		return
	}
	m.picksLoading = false
	if err != nil {
		logging.Warn().Err(err).Msg("Personalized picks fetch failed")
		m.picks = nil
		return
	}
	m.picks = ids
	m.broadcast(websocket.EventAIPicks, ids)
}

func (m *Manager) broadcast(eventType string, data interface{}) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(eventType, data)
}
