// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/lonestar/internal/models"
)

// catalogFile is the on-disk catalog shape. Item fields use the same
// key names as the API wire format.
type catalogFile struct {
	Items []models.ContentItem `json:"items"`
}

// NewFileStore builds the catalog from a YAML file with a top-level
// items list. The file replaces the compiled-in seed entirely.
func NewFileStore(path string) (*Store, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var doc catalogFile
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("catalog file %s has no items", path)
	}
	return NewStore(doc.Items)
}
