// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the folder sync process runtime.
//
// It ties a validated configuration, the sync services and the run journal
// into a single run that processes every configured profile and reports a
// summary.
package client
