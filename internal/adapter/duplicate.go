// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// DuplicateClassifier decides whether a failed rule creation response means
// "this hostname already has a rule" and, if so, which hostname.
type DuplicateClassifier interface {
	// Classify inspects a non-2xx response. batch is the list of hostnames
	// that was sent; it is used to pick the conflicting hostname when the
	// message mentions several candidates. hostname may be empty when
	// duplicate is true but the response did not name one.
	Classify(statusCode int, body []byte, batch []string) (hostname string, duplicate bool)
}

var (
	duplicateText   = regexp.MustCompile(`(?i)already\s+exists?|duplicate`)
	hostnamePattern = regexp.MustCompile(`(?i)(?:[a-z0-9_](?:[a-z0-9_-]{0,61}[a-z0-9_])?\.)+[a-z0-9][a-z0-9-]{0,62}`)
)

type duplicateClassifier struct {
	codes map[string]struct{}
}

// NewDuplicateClassifier returns the default classifier. A response is a
// duplicate when its JSON "error.code" is one of codes; otherwise, when its
// message text says the rule already exists.
func NewDuplicateClassifier(codes ...string) DuplicateClassifier {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			set[c] = struct{}{}
		}
	}
	return &duplicateClassifier{codes: set}
}

func (c *duplicateClassifier) Classify(statusCode int, body []byte, batch []string) (string, bool) {
	if statusCode < http.StatusBadRequest || statusCode >= http.StatusInternalServerError {
		return "", false
	}

	message := string(body)
	matched := false
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		if code := parsed.Get("error.code"); code.Exists() {
			_, matched = c.codes[code.String()]
		}
		if m := parsed.Get("error.message"); m.Exists() {
			message = m.String()
		}
	}

	if !matched && !duplicateText.MatchString(message) {
		return "", false
	}
	return extractHostname(message, batch), true
}

// extractHostname returns the hostname-looking token of message that belongs
// to batch, or the first such token when none does.
func extractHostname(message string, batch []string) string {
	candidates := hostnamePattern.FindAllString(message, -1)
	if len(candidates) == 0 {
		return ""
	}

	for _, candidate := range candidates {
		for _, h := range batch {
			if strings.EqualFold(candidate, h) {
				return h
			}
		}
	}
	return strings.ToLower(candidates[0])
}
