// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controldtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Definition is a folder definition document served by [DefinitionServer].
type Definition struct {
	Name      string
	Action    int
	Status    int
	Hostnames []string
}

// Document renders d in the published definition format.
func (d Definition) Document() []byte {
	rules := make([]map[string]string, 0, len(d.Hostnames))
	for _, h := range d.Hostnames {
		rules = append(rules, map[string]string{"PK": h})
	}
	payload, _ := json.Marshal(map[string]any{
		"group": map[string]any{
			"group":  d.Name,
			"action": map[string]int{"do": d.Action, "status": d.Status},
		},
		"rules": rules,
	})
	return payload
}

// DefinitionServer hosts definition documents under /{name}.json.
type DefinitionServer struct {
	*httptest.Server

	mu      sync.Mutex
	docs    map[string][]byte
	hits    map[string]int
	failing map[string]int
}

// NewDefinitionServer starts a server with no documents.
func NewDefinitionServer() *DefinitionServer {
	s := &DefinitionServer{
		docs:    make(map[string][]byte),
		hits:    make(map[string]int),
		failing: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/{file}", s.serve)
	s.Server = httptest.NewServer(r)
	return s
}

// Add publishes def under file and returns its URL.
func (s *DefinitionServer) Add(file string, def Definition) string {
	return s.AddRaw(file, def.Document())
}

// AddRaw publishes an arbitrary body under file and returns its URL.
func (s *DefinitionServer) AddRaw(file string, body []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[file] = body
	return s.URL + "/" + file
}

// Fail makes every request for file answer with status.
func (s *DefinitionServer) Fail(file string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[file] = status
}

// Hits returns how many times file was requested.
func (s *DefinitionServer) Hits(file string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[file]
}

func (s *DefinitionServer) serve(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")

	s.mu.Lock()
	s.hits[file]++
	status, failing := s.failing[file]
	body, ok := s.docs[file]
	s.mu.Unlock()

	switch {
	case failing:
		w.WriteHeader(status)
	case !ok:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
