// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/lonestar/internal/catalog"
	"github.com/tomtom215/lonestar/internal/models"
	"github.com/tomtom215/lonestar/internal/store"
	"github.com/tomtom215/lonestar/internal/suggest"
)

// fakeSuggester is a concurrency-safe Suggester whose output and
// blocking behavior tests can steer per call.
type fakeSuggester struct {
	mu            sync.Mutex
	searchText    string
	personalText  string
	err           error
	searchCalls   int
	personalCalls int
	block         chan struct{}
}

func (f *fakeSuggester) set(searchText, personalText string, err error, block chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchText = searchText
	f.personalText = personalText
	f.err = err
	f.block = block
}

func (f *fakeSuggester) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls, f.personalCalls
}

func (f *fakeSuggester) SearchMatches(_ context.Context, _ string, library []models.ContentItem) ([]string, error) {
	f.mu.Lock()
	f.searchCalls++
	text, err, block := f.searchText, f.err, f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return suggest.ParseIDList(text, library), nil
}

func (f *fakeSuggester) PersonalPicks(_ context.Context, _ *models.Profile, library []models.ContentItem) ([]string, error) {
	f.mu.Lock()
	f.personalCalls++
	text, err, block := f.personalText, f.err, f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return suggest.ParseIDList(text, library), nil
}

// recorder captures hub broadcasts.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) Broadcast(eventType string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
}

func (r *recorder) has(eventType string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == eventType {
			return true
		}
	}
	return false
}

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	cat, err := catalog.NewStore([]models.ContentItem{
		{ID: "a", Title: "Query One", Category: "Drama", Rating: models.RatingG, Type: models.TypeMovie},
		{ID: "b", Title: "Query Two", Category: "Drama", Rating: models.RatingG, Type: models.TypeMovie},
		{ID: "c", Title: "Other", Category: "Comedy", Rating: models.RatingG, Type: models.TypeSeries},
		{ID: "d", Title: "Grown Up", Category: "Thriller", Rating: models.RatingR, Type: models.TypeMovie},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return cat
}

func newTestManager(t *testing.T, cat *catalog.Store, sugg suggest.Suggester, hub Broadcaster) *Manager {
	t.Helper()
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	profiles, err := store.NewProfileStore(db)
	if err != nil {
		t.Fatalf("NewProfileStore: %v", err)
	}
	downloads, err := store.NewDownloadStore(db)
	if err != nil {
		t.Fatalf("NewDownloadStore: %v", err)
	}
	m := NewManager(cat, profiles, downloads, sugg, hub, Config{
		SearchDebounce:      5 * time.Millisecond,
		PersonalizeDebounce: 5 * time.Millisecond,
	})
	t.Cleanup(m.Close)
	return m
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func ids(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSelectProfileResetsAndSchedulesPicks(t *testing.T) {
	sugg := &fakeSuggester{}
	sugg.set("", "b, c", nil, nil)
	m := newTestManager(t, testCatalog(t), sugg, nil)

	// Seed profile 1 is the adult profile.
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	state := m.State()
	if state.Profile == nil || state.Profile.ID != "1" {
		t.Fatalf("profile = %+v, want id 1", state.Profile)
	}
	if state.Page != PageHome || state.Filter != catalog.FilterAll || state.Query != "" {
		t.Errorf("state not reset: %+v", state)
	}

	waitFor(t, "personal picks", func() bool {
		return equal(ids(m.PersonalPicks()), []string{"b", "c"})
	})
}

func TestNilProfileOperationsRejected(t *testing.T) {
	m := newTestManager(t, testCatalog(t), &fakeSuggester{}, nil)

	if err := m.Navigate(PageSearch); !errors.Is(err, ErrNoProfile) {
		t.Errorf("Navigate err = %v, want ErrNoProfile", err)
	}
	if err := m.SetQuery("x"); !errors.Is(err, ErrNoProfile) {
		t.Errorf("SetQuery err = %v, want ErrNoProfile", err)
	}
	if _, err := m.ToggleWatchlist("a"); !errors.Is(err, ErrNoProfile) {
		t.Errorf("ToggleWatchlist err = %v, want ErrNoProfile", err)
	}
	if got := m.View().Items(); len(got) != 0 {
		t.Errorf("nil-profile view has %d items, want 0", len(got))
	}
}

func TestSearchMergesLocalAndAugmented(t *testing.T) {
	sugg := &fakeSuggester{}
	sugg.set("b, c", "", nil, nil)
	m := newTestManager(t, testCatalog(t), sugg, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}

	if err := m.SetQuery("query"); err != nil {
		t.Fatalf("SetQuery: %v", err)
	}
	// Local matches [a b], augmentation adds [b c]; merged keeps first
	// occurrences in order.
	waitFor(t, "merged results", func() bool {
		return equal(ids(m.SearchResults()), []string{"a", "b", "c"})
	})
}

func TestStaleSearchResultDiscarded(t *testing.T) {
	sugg := &fakeSuggester{}
	m := newTestManager(t, testCatalog(t), sugg, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}

	// Hold the first augmentation in flight.
	gate := make(chan struct{})
	sugg.set("b", "", nil, gate)
	if err := m.SetQuery("zzz first"); err != nil {
		t.Fatalf("SetQuery: %v", err)
	}
	waitFor(t, "first call in flight", func() bool {
		calls, _ := sugg.counts()
		return calls == 1
	})

	// A newer query supersedes it before it completes.
	sugg.set("c", "", nil, nil)
	if err := m.SetQuery("zzz second"); err != nil {
		t.Fatalf("SetQuery: %v", err)
	}
	waitFor(t, "second result applied", func() bool {
		return equal(ids(m.SearchResults()), []string{"c"})
	})

	// Releasing the stale call must not overwrite the newer result.
	close(gate)
	time.Sleep(50 * time.Millisecond)
	if got := ids(m.SearchResults()); !equal(got, []string{"c"}) {
		t.Errorf("results = %v after stale completion, want [c]", got)
	}
}

func TestClearedQueryCancelsPendingAugmentation(t *testing.T) {
	sugg := &fakeSuggester{}
	sugg.set("b", "", nil, nil)
	m := newTestManager(t, testCatalog(t), sugg, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}

	if err := m.SetQuery("zzz"); err != nil {
		t.Fatalf("SetQuery: %v", err)
	}
	if err := m.SetQuery(""); err != nil {
		t.Fatalf("SetQuery clear: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	searchCalls, _ := sugg.counts()
	if searchCalls != 0 {
		t.Errorf("search calls = %d, want 0 after cancel", searchCalls)
	}
	if got := m.SearchResults(); got != nil {
		t.Errorf("results = %v, want nil for empty query", got)
	}
}

func TestPicksOnlyFetchedWithoutTypeFilter(t *testing.T) {
	sugg := &fakeSuggester{}
	sugg.set("", "a", nil, nil)
	m := newTestManager(t, testCatalog(t), sugg, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	waitFor(t, "initial picks", func() bool {
		return equal(ids(m.PersonalPicks()), []string{"a"})
	})
	_, callsAfterSelect := sugg.counts()

	if err := m.SetFilter("series"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	_, callsAfterFilter := sugg.counts()
	if callsAfterFilter != callsAfterSelect {
		t.Errorf("picks fetched under type filter: %d calls, want %d", callsAfterFilter, callsAfterSelect)
	}
	if got := m.PersonalPicks(); got != nil {
		t.Errorf("PersonalPicks = %v under type filter, want nil", got)
	}

	if err := m.SetFilter(catalog.FilterAll); err != nil {
		t.Fatalf("SetFilter all: %v", err)
	}
	waitFor(t, "picks refetched", func() bool {
		_, calls := sugg.counts()
		return calls == callsAfterSelect+1
	})
}

func TestPicksClearedOnSuggesterFailure(t *testing.T) {
	sugg := &fakeSuggester{}
	sugg.set("", "a, b", nil, nil)
	m := newTestManager(t, testCatalog(t), sugg, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	waitFor(t, "initial picks", func() bool {
		return len(m.PersonalPicks()) == 2
	})

	sugg.set("", "", errors.New("model unavailable"), nil)
	if _, err := m.ToggleWatchlist("a"); err != nil {
		t.Fatalf("ToggleWatchlist: %v", err)
	}
	waitFor(t, "picks cleared", func() bool {
		return m.PersonalPicks() == nil
	})
}

func TestToggleWatchlistKeepsHeroStable(t *testing.T) {
	m := newTestManager(t, testCatalog(t), &fakeSuggester{}, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	heroBefore, ok := m.View().Hero()
	if !ok {
		t.Fatal("no hero")
	}

	added, err := m.ToggleWatchlist("b")
	if err != nil || !added {
		t.Fatalf("ToggleWatchlist = %v, %v", added, err)
	}
	if got := ids(m.View().MyList()); !equal(got, []string{"b"}) {
		t.Errorf("MyList = %v, want [b]", got)
	}
	heroAfter, _ := m.View().Hero()
	if heroAfter.ID != heroBefore.ID {
		t.Errorf("hero changed %q -> %q on watchlist toggle", heroBefore.ID, heroAfter.ID)
	}

	// Second toggle restores the original state.
	added, err = m.ToggleWatchlist("b")
	if err != nil || added {
		t.Fatalf("second ToggleWatchlist = %v, %v", added, err)
	}
	if got := m.View().MyList(); len(got) != 0 {
		t.Errorf("MyList = %v after double toggle, want empty", got)
	}
}

func TestPlayRecordsHistory(t *testing.T) {
	hub := &recorder{}
	m := newTestManager(t, testCatalog(t), &fakeSuggester{}, hub)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}

	item, err := m.Play("a")
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if item.ID != "a" {
		t.Errorf("played item = %q, want a", item.ID)
	}
	if !m.State().Profile.InHistory("a") {
		t.Error("history missing played item")
	}
	if !hub.has("profile_updated") {
		t.Error("no profile_updated broadcast")
	}
}

func TestToggleDownloadBroadcasts(t *testing.T) {
	hub := &recorder{}
	m := newTestManager(t, testCatalog(t), &fakeSuggester{}, hub)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}

	rec, added, err := m.ToggleDownload("c")
	if err != nil || !added {
		t.Fatalf("ToggleDownload = %v, %v", added, err)
	}
	if rec.ContentID != "c" {
		t.Errorf("record id = %q, want c", rec.ContentID)
	}
	if !hub.has("download_toggled") {
		t.Error("no download_toggled broadcast")
	}

	entries := m.Downloads()
	if len(entries) != 1 || entries[0].Item.ID != "c" || entries[0].Expired {
		t.Fatalf("downloads = %+v, want one fresh entry for c", entries)
	}

	if _, added, err = m.ToggleDownload("c"); err != nil || added {
		t.Fatalf("second ToggleDownload = %v, %v", added, err)
	}
	if got := m.Downloads(); len(got) != 0 {
		t.Errorf("downloads = %v after double toggle, want empty", got)
	}
}

func TestRatingCeilingAppliesToView(t *testing.T) {
	m := newTestManager(t, testCatalog(t), &fakeSuggester{}, nil)
	// Seed profile 3 is the kids profile with a G ceiling.
	if err := m.SelectProfile("3"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	for _, item := range m.View().Items() {
		if item.Rating != models.RatingG {
			t.Errorf("item %s rated %s visible under G ceiling", item.ID, item.Rating)
		}
	}
	if err := m.SelectItem("d"); !errors.Is(err, ErrUnknownContent) {
		t.Errorf("SelectItem over ceiling err = %v, want ErrUnknownContent", err)
	}
}

func TestSignOutCancelsPendingWork(t *testing.T) {
	sugg := &fakeSuggester{}
	gate := make(chan struct{})
	sugg.set("", "a", nil, gate)
	m := newTestManager(t, testCatalog(t), sugg, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	waitFor(t, "picks call in flight", func() bool {
		_, calls := sugg.counts()
		return calls == 1
	})

	m.SignOut()
	close(gate)
	time.Sleep(50 * time.Millisecond)

	state := m.State()
	if state.Profile != nil {
		t.Fatal("profile still set after sign out")
	}
	if got := m.PersonalPicks(); got != nil {
		t.Errorf("picks = %v after sign out, want nil", got)
	}
}

func TestNavigateKeepsQuery(t *testing.T) {
	sugg := &fakeSuggester{}
	sugg.set("b", "", nil, nil)
	m := newTestManager(t, testCatalog(t), sugg, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	if err := m.Navigate(PageSearch); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if err := m.SetQuery("query"); err != nil {
		t.Fatalf("SetQuery: %v", err)
	}
	if err := m.Navigate(PageHome); err != nil {
		t.Fatalf("Navigate home: %v", err)
	}
	state := m.State()
	if state.Page != PageHome {
		t.Errorf("page = %q, want %q", state.Page, PageHome)
	}
	if state.Query != "query" {
		t.Errorf("query = %q after leaving search, want %q", state.Query, "query")
	}
	if err := m.Navigate("nowhere"); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("Navigate invalid err = %v, want ErrInvalidPage", err)
	}
}

func TestDownloadedItemReachableOutsideFilter(t *testing.T) {
	m := newTestManager(t, testCatalog(t), &fakeSuggester{}, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	if _, _, err := m.ToggleDownload("a"); err != nil {
		t.Fatalf("ToggleDownload: %v", err)
	}
	if err := m.SetFilter("series"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}

	// The view no longer holds the movie, but the download ledger does.
	if m.View().Contains("a") {
		t.Fatal("movie survived the series filter")
	}
	if err := m.SelectItem("a"); err != nil {
		t.Errorf("SelectItem downloaded movie: %v", err)
	}
	item, err := m.Play("a")
	if err != nil {
		t.Fatalf("Play downloaded movie: %v", err)
	}
	if item.ID != "a" {
		t.Errorf("played %q, want a", item.ID)
	}

	// A movie without a download record stays out of reach.
	if _, err := m.Play("b"); !errors.Is(err, ErrUnknownContent) {
		t.Errorf("Play undownloaded err = %v, want ErrUnknownContent", err)
	}
	if err := m.SelectItem("b"); !errors.Is(err, ErrUnknownContent) {
		t.Errorf("SelectItem undownloaded err = %v, want ErrUnknownContent", err)
	}
}

func TestDownloadedItemStillCappedByCeiling(t *testing.T) {
	m := newTestManager(t, testCatalog(t), &fakeSuggester{}, nil)
	if err := m.SelectProfile("1"); err != nil {
		t.Fatalf("SelectProfile: %v", err)
	}
	// Downloads are device scoped, so the R-rated record persists
	// across the profile switch.
	if _, _, err := m.ToggleDownload("d"); err != nil {
		t.Fatalf("ToggleDownload: %v", err)
	}
	if err := m.SelectProfile("3"); err != nil {
		t.Fatalf("SelectProfile kids: %v", err)
	}

	if m.Accessible("d") {
		t.Error("R-rated download accessible under G ceiling")
	}
	if _, err := m.Play("d"); !errors.Is(err, ErrUnknownContent) {
		t.Errorf("Play err = %v, want ErrUnknownContent", err)
	}
}
