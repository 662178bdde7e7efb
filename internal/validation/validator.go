// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package validation wraps go-playground/validator v10 behind a
// thread-safe singleton with Lonestar-specific rules. Request structs
// declare their constraints with validate tags; handlers call
// ValidateStruct and translate failures into the API error envelope.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/lonestar/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// RequestError is the collection of failures for one request struct.
type RequestError struct {
	fields []FieldError
}

// Fields returns the individual failures.
func (e *RequestError) Fields() []FieldError {
	return e.fields
}

func (e *RequestError) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(e.fields))
	for i, f := range e.fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// Details returns the failure list in the shape the API envelope
// carries under error.details.
func (e *RequestError) Details() map[string]interface{} {
	fields := make([]map[string]interface{}, len(e.fields))
	for i, f := range e.fields {
		fields[i] = map[string]interface{}{
			"field": f.Field,
			"tag":   f.Tag,
		}
	}
	return map[string]interface{}{"fields": fields}
}

// GetValidator returns the singleton validator with custom rules
// registered. Thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// rating: one of the four content-rating tiers.
		_ = validate.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
			return models.Rating(fl.Field().String()).Valid()
		})

		// contenttype: movie, series or music-video.
		_ = validate.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
			return models.ContentType(fl.Field().String()).Valid()
		})
	})
	return validate
}

// ValidateStruct validates s, returning nil on success.
func ValidateStruct(s interface{}) *RequestError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestError{fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: messageFor(fe),
		}
	}
	return &RequestError{fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "rating":
		return fmt.Sprintf("%s must be one of G, PG, PG-13, R", fe.Field())
	case "contenttype":
		return fmt.Sprintf("%s must be one of movie, series, music-video", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
