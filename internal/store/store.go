// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package store persists the two mutable collections - viewer profiles and
// the download ledger - in a local BadgerDB. Each collection is serialized
// as a single JSON document and rewritten on every mutation; on startup a
// missing or unparseable document falls back silently to its seed value.
//
// Best-effort local persistence only: there is no replication and no
// durability guarantee beyond what Badger provides on local disk.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/lonestar/internal/metrics"
)

// Collection keys. Profiles and downloads are independent documents.
const (
	profilesKey  = "lonestar:profiles"
	downloadsKey = "lonestar:downloads"
)

// ErrProfileNotFound indicates the profile ID is not in the store.
var ErrProfileNotFound = errors.New("profile not found")

// Open opens (or creates) the Badger database at path. Badger's own logger
// is disabled; the store logs through the logging package instead.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", path, err)
	}
	return db, nil
}

// OpenInMemory opens an ephemeral in-memory Badger database, used in tests
// and when persistence is disabled.
func OpenInMemory() (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}
	return db, nil
}

// writeDocument rewrites a whole collection document in one transaction.
func writeDocument(db *badger.DB, key string, data []byte) error {
	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	metrics.StoreWritesTotal.WithLabelValues(strings.TrimPrefix(key, "lonestar:")).Inc()
	return nil
}

// readDocument loads a collection document. ok is false when the key has
// never been written.
func readDocument(db *badger.DB, key string) (data []byte, ok bool, err error) {
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		ok = true
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, ok, nil
}
