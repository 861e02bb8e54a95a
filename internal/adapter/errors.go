// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from filtering-service HTTP status codes by
// mapHTTPError. The wrapped message carries the response body.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	ErrServerError     = errors.New("server error")
)

var (
	// ErrInvalidResponse is returned when a 2xx response body cannot be
	// interpreted.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidDefinition is returned when a definition document lacks a
	// required field or is not valid JSON.
	ErrInvalidDefinition = errors.New("invalid folder definition")
)

// DuplicateRuleError reports that a rule creation call was rejected because
// a hostname already has a rule in the profile.
type DuplicateRuleError struct {
	// Hostname is the conflicting hostname extracted from the response. It
	// may be empty when the response did not name it.
	Hostname string

	// Err is the mapped HTTP error.
	Err error
}

func (e *DuplicateRuleError) Error() string {
	if e.Hostname == "" {
		return fmt.Sprintf("duplicate rule: %v", e.Err)
	}
	return fmt.Sprintf("duplicate rule for %s: %v", e.Hostname, e.Err)
}

func (e *DuplicateRuleError) Unwrap() error {
	return e.Err
}

// IsDuplicateRule reports whether err is or wraps a [DuplicateRuleError] and
// returns it.
func IsDuplicateRule(err error) (*DuplicateRuleError, bool) {
	var dup *DuplicateRuleError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}
