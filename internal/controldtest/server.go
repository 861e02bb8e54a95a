// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controldtest provides an in-memory fake of the DNS-filtering
// service REST API for tests.
//
// The fake keeps folders and rules per profile and records every call it
// receives. Failures can be queued per method and path suffix. Rule uploads
// are rejected as a whole with HTTP 400 when any hostname already has a rule
// in the profile, mirroring the duplicate behaviour of the real service.
package controldtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Folder is a folder held by the fake.
type Folder struct {
	ID     string
	Name   string
	Action int
	Status int
}

// Rule is a hostname rule held by the fake.
type Rule struct {
	Hostname string
	FolderID string
	Action   int
	Status   int
}

// Call is one request received by the fake.
type Call struct {
	Method string
	Path   string
	Form   url.Values
}

type failure struct {
	method string
	suffix string
	status int
	body   string
	times  int
}

type profile struct {
	folders []Folder
	rules   map[string]Rule
}

// Server is the fake filtering service. Create it with [NewServer] and close
// it with Close.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	token    string
	nextID   int
	profiles map[string]*profile
	calls    []Call
	failures []*failure
	hideNew  bool
}

// NewServer starts a fake that accepts only the given bearer token.
func NewServer(token string) *Server {
	s := &Server{
		token:    token,
		nextID:   1000,
		profiles: make(map[string]*profile),
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record, s.authenticate, s.inject)

	r.Route("/profiles/{profileID}", func(r chi.Router) {
		r.Get("/groups", s.listGroups)
		r.Post("/groups", s.createGroup)
		r.Delete("/groups/{folderID}", s.deleteGroup)
		r.Post("/rules", s.createRules)
		r.Delete("/rules/{hostname}", s.deleteRule)
	})
	return r
}

// ── test controls ────────────────────────────────────────────────────────────

// AddFolder seeds a folder and returns its id.
func (s *Server) AddFolder(profileID, name string, action, status int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addFolderLocked(profileID, name, action, status)
}

// AddRule seeds a rule.
func (s *Server) AddRule(profileID, hostname, folderID string, action, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(profileID)
	p.rules[strings.ToLower(hostname)] = Rule{Hostname: hostname, FolderID: folderID, Action: action, Status: status}
}

// Folders returns the folders of a profile in creation order.
func (s *Server) Folders(profileID string) []Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(profileID)
	out := make([]Folder, len(p.folders))
	copy(out, p.folders)
	return out
}

// FoldersNamed returns the folders of a profile whose name is exactly name.
func (s *Server) FoldersNamed(profileID, name string) []Folder {
	var out []Folder
	for _, f := range s.Folders(profileID) {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// Rules returns the rules of a profile sorted by hostname.
func (s *Server) Rules(profileID string) []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(profileID)
	out := make([]Rule, 0, len(p.rules))
	for _, r := range p.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hostname < out[j].Hostname })
	return out
}

// RulesIn returns the sorted hostnames held by one folder.
func (s *Server) RulesIn(profileID, folderID string) []string {
	var out []string
	for _, r := range s.Rules(profileID) {
		if r.FolderID == folderID {
			out = append(out, r.Hostname)
		}
	}
	return out
}

// Calls returns every recorded call in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CountCalls counts recorded calls with the given method whose path ends
// with suffix.
func (s *Server) CountCalls(method, suffix string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && strings.HasSuffix(c.Path, suffix) {
			n++
		}
	}
	return n
}

// FailNext makes the next times calls matching method and path suffix
// respond with status and a JSON error body.
func (s *Server) FailNext(method, suffix string, status, times int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, &failure{
		method: method,
		suffix: suffix,
		status: status,
		body:   errorBody(0, "injected failure"),
		times:  times,
	})
}

// HideCreatedFolders makes folder creation succeed without the folder ever
// showing up in listings.
func (s *Server) HideCreatedFolders(hide bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hideNew = hide
}

// ── middleware ───────────────────────────────────────────────────────────────

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var form url.Values
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err == nil {
				form = r.PostForm
			}
		}

		s.mu.Lock()
		s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Form: form})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			writeJSON(w, http.StatusUnauthorized, errorBody(0, "unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var hit *failure
		for _, f := range s.failures {
			if f.times > 0 && f.method == r.Method && strings.HasSuffix(r.URL.Path, f.suffix) {
				f.times--
				hit = f
				break
			}
		}
		s.mu.Unlock()

		if hit != nil {
			writeJSON(w, hit.status, hit.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ── handlers ─────────────────────────────────────────────────────────────────

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p := s.profileLocked(chi.URLParam(r, "profileID"))
	groups := make([]map[string]any, 0, len(p.folders))
	for _, f := range p.folders {
		id, _ := strconv.Atoi(f.ID)
		groups = append(groups, map[string]any{
			"PK":     id,
			"group":  f.Name,
			"action": map[string]int{"do": f.Action, "status": f.Status},
		})
	}
	s.mu.Unlock()

	payload, _ := json.Marshal(map[string]any{
		"success": true,
		"body":    map[string]any{"groups": groups},
	})
	writeJSON(w, http.StatusOK, string(payload))
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	name := r.PostForm.Get("name")
	action, errDo := strconv.Atoi(r.PostForm.Get("do"))
	status, errStatus := strconv.Atoi(r.PostForm.Get("status"))
	if name == "" || errDo != nil || errStatus != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(0, "name, do and status are required"))
		return
	}

	s.mu.Lock()
	profileID := chi.URLParam(r, "profileID")
	if s.hideNew {
		s.nextID++
	} else {
		s.addFolderLocked(profileID, name, action, status)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, `{"success":true,"body":{}}`)
}

func (s *Server) deleteGroup(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderID")

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(chi.URLParam(r, "profileID"))
	for i, f := range p.folders {
		if f.ID != folderID {
			continue
		}
		p.folders = append(p.folders[:i], p.folders[i+1:]...)
		for key, rule := range p.rules {
			if rule.FolderID == folderID {
				delete(p.rules, key)
			}
		}
		writeJSON(w, http.StatusOK, `{"success":true,"body":{}}`)
		return
	}
	writeJSON(w, http.StatusNotFound, errorBody(0, "folder not found"))
}

func (s *Server) createRules(w http.ResponseWriter, r *http.Request) {
	hostnames := formHostnames(r.PostForm)
	folderID := r.PostForm.Get("group")
	action, errDo := strconv.Atoi(r.PostForm.Get("do"))
	status, errStatus := strconv.Atoi(r.PostForm.Get("status"))
	if len(hostnames) == 0 || errDo != nil || errStatus != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(0, "do, status and hostnames are required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(chi.URLParam(r, "profileID"))

	if folderID != "" && !hasFolder(p, folderID) {
		writeJSON(w, http.StatusBadRequest, errorBody(0, "folder does not exist"))
		return
	}
	for _, h := range hostnames {
		if _, exists := p.rules[strings.ToLower(h)]; exists {
			writeJSON(w, http.StatusBadRequest, errorBody(40003, fmt.Sprintf("Rule for %s already exists", h)))
			return
		}
	}
	for _, h := range hostnames {
		p.rules[strings.ToLower(h)] = Rule{Hostname: h, FolderID: folderID, Action: action, Status: status}
	}
	writeJSON(w, http.StatusOK, `{"success":true,"body":{}}`)
}

func (s *Server) deleteRule(w http.ResponseWriter, r *http.Request) {
	hostname := strings.ToLower(chi.URLParam(r, "hostname"))

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(chi.URLParam(r, "profileID"))
	if _, ok := p.rules[hostname]; !ok {
		writeJSON(w, http.StatusNotFound, errorBody(0, "rule not found"))
		return
	}
	delete(p.rules, hostname)
	writeJSON(w, http.StatusOK, `{"success":true,"body":{}}`)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (s *Server) profileLocked(profileID string) *profile {
	p, ok := s.profiles[profileID]
	if !ok {
		p = &profile{rules: make(map[string]Rule)}
		s.profiles[profileID] = p
	}
	return p
}

func (s *Server) addFolderLocked(profileID, name string, action, status int) string {
	s.nextID++
	id := strconv.Itoa(s.nextID)
	p := s.profileLocked(profileID)
	p.folders = append(p.folders, Folder{ID: id, Name: name, Action: action, Status: status})
	return id
}

func hasFolder(p *profile, folderID string) bool {
	for _, f := range p.folders {
		if f.ID == folderID {
			return true
		}
	}
	return false
}

// formHostnames accepts both the repeated "hostnames[]" key and the indexed
// "hostnames[0]", "hostnames[1]", ... keys.
func formHostnames(form url.Values) []string {
	if hs := form["hostnames[]"]; len(hs) > 0 {
		return hs
	}

	var out []string
	for i := 0; ; i++ {
		h := form.Get(fmt.Sprintf("hostnames[%d]", i))
		if h == "" {
			return out
		}
		out = append(out, h)
	}
}

func errorBody(code int, message string) string {
	payload, _ := json.Marshal(map[string]any{
		"success": false,
		"error":   map[string]any{"code": code, "message": message},
	})
	return string(payload)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
