// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// FolderDirectory is a snapshot of the folders that exist in one profile.
//
// Names are stored trimmed. Lookups trim the queried name and compare
// case-insensitively. The service does not enforce unique names, so one name
// may map to several folders.
type FolderDirectory struct {
	folders []ExistingFolder
}

// NewFolderDirectory builds a directory from a folder listing. Entries with an
// empty name or id are skipped.
func NewFolderDirectory(folders []ExistingFolder) FolderDirectory {
	dir := FolderDirectory{folders: make([]ExistingFolder, 0, len(folders))}
	for _, f := range folders {
		name := strings.TrimSpace(f.Name)
		id := strings.TrimSpace(f.ID)
		if name == "" || id == "" {
			continue
		}
		dir.folders = append(dir.folders, ExistingFolder{Name: name, ID: id})
	}
	return dir
}

// Len returns the number of folders in the snapshot.
func (d FolderDirectory) Len() int {
	return len(d.folders)
}

// Matching returns every folder named name, in listing order.
func (d FolderDirectory) Matching(name string) []ExistingFolder {
	var out []ExistingFolder
	for _, f := range d.folders {
		if SameFolderName(f.Name, name) {
			out = append(out, f)
		}
	}
	return out
}

// ContainsID reports whether a folder with the given id is in the snapshot.
func (d FolderDirectory) ContainsID(id string) bool {
	for _, f := range d.folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

// SameFolderName reports whether a and b name the same folder.
func SameFolderName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
