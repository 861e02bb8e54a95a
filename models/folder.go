// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FolderDefinition is the desired state of one rule folder, parsed from a
// remotely hosted definition document.
//
// A definition is immutable after parsing and lives for a single run.
type FolderDefinition struct {
	// Name is the whitespace-trimmed folder name.
	Name string `json:"name"`

	// Action is the rule action code ("do") applied to the folder and every
	// rule pushed into it.
	Action int `json:"do"`

	// Status is the enabled/disabled flag of the folder and its rules.
	Status int `json:"status"`

	// Hostnames lists the rule hostnames in source order. Duplicates are kept.
	Hostnames []string `json:"hostnames"`

	// SourceURL is the URL the definition was fetched from.
	SourceURL string `json:"source_url,omitempty"`
}

// ExistingFolder is a folder as currently reported by the filtering service.
type ExistingFolder struct {
	Name string `json:"group"`
	ID   string `json:"PK"`
}

// FolderRequest carries the form fields of a folder creation call.
type FolderRequest struct {
	Name   string
	Action int
	Status int
}

// NewFolderRequest builds the creation request for def.
func NewFolderRequest(def FolderDefinition) FolderRequest {
	return FolderRequest{Name: def.Name, Action: def.Action, Status: def.Status}
}
