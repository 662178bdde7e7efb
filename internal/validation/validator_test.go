// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package validation

import (
	"strings"
	"testing"
)

type createProfileRequest struct {
	Name      string `validate:"required,min=1,max=50"`
	Avatar    string `validate:"omitempty,url"`
	MaxRating string `validate:"required,rating"`
}

func TestValidateStructPasses(t *testing.T) {
	req := createProfileRequest{
		Name:      "Sarah",
		Avatar:    "https://example.com/avatar.svg",
		MaxRating: "PG-13",
	}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("ValidateStruct: %v", err)
	}
}

func TestValidateStructRejectsBadRating(t *testing.T) {
	req := createProfileRequest{Name: "Sarah", MaxRating: "NC-17"}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("accepted unknown rating")
	}
	if !strings.Contains(err.Error(), "G, PG, PG-13, R") {
		t.Errorf("error = %q, want rating tiers listed", err)
	}
}

func TestValidateStructCollectsAllFailures(t *testing.T) {
	req := createProfileRequest{Avatar: "not-a-url", MaxRating: ""}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("accepted invalid request")
	}
	if got := len(err.Fields()); got != 3 {
		t.Errorf("failures = %d, want 3", got)
	}
	details := err.Details()
	if _, ok := details["fields"]; !ok {
		t.Error("details missing fields list")
	}
}

func TestContentTypeRule(t *testing.T) {
	type filterRequest struct {
		Filter string `validate:"required,contenttype"`
	}
	if err := ValidateStruct(&filterRequest{Filter: "music-video"}); err != nil {
		t.Fatalf("valid type rejected: %v", err)
	}
	if err := ValidateStruct(&filterRequest{Filter: "podcast"}); err == nil {
		t.Fatal("unknown type accepted")
	}
}
