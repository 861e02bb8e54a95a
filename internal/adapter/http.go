// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/internal/utils"
	"github.com/MKhiriev/go-folder-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	groupsPath = "/profiles/{profileID}/groups"
	groupPath  = "/profiles/{profileID}/groups/{folderID}"
	rulesPath  = "/profiles/{profileID}/rules"
	rulePath   = "/profiles/{profileID}/rules/{hostname}"
)

type httpFilteringAdapter struct {
	client     *utils.HTTPClient
	retrier    *Retrier
	classifier DuplicateClassifier

	logger *logger.Logger
}

// NewHTTPFilteringAdapter constructs the REST implementation of
// [FilteringAdapter]. It normalises cfg.APIURL, sets the per-call timeout and
// attaches the bearer token and JSON Accept header to every request.
//
// Returns an error if the API URL is empty or unparsable, or if the token is
// empty.
func NewHTTPFilteringAdapter(cfg config.SyncAdapter, log *logger.Logger) (FilteringAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid filtering api url: %w", err)
	}
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, fmt.Errorf("filtering api token is empty")
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout).WithLogging(log)
	client.
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Accept", "application/json")

	return &httpFilteringAdapter{
		client:     client,
		retrier:    NewRetrier(cfg.RetryAttempts, cfg.RetryDelay, log),
		classifier: NewDuplicateClassifier(cfg.DuplicateCodes...),
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListFolders implements [FilteringAdapter]. It GETs
// /profiles/{id}/groups and reads body.groups[].group / body.groups[].PK.
// Entries missing either field are skipped.
func (h *httpFilteringAdapter) ListFolders(ctx context.Context, profileID string) ([]models.ExistingFolder, error) {
	var resp *resty.Response
	err := h.retrier.Do(ctx, "list folders", func(ctx context.Context) error {
		var err error
		resp, err = h.request(ctx, profileID).Get(groupsPath)
		if err != nil {
			return fmt.Errorf("list folders request: %w", err)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return nil, err
	}

	groups := gjson.GetBytes(resp.Body(), "body.groups")
	if !groups.IsArray() {
		return nil, fmt.Errorf("%w: list folders: body.groups is missing", ErrInvalidResponse)
	}

	var folders []models.ExistingFolder
	for _, g := range groups.Array() {
		name, id := g.Get("group"), g.Get("PK")
		if name.String() == "" || id.String() == "" {
			continue
		}
		folders = append(folders, models.ExistingFolder{
			Name: strings.TrimSpace(name.String()),
			ID:   id.String(),
		})
	}
	return folders, nil
}

// CreateFolder implements [FilteringAdapter]. It POSTs the form fields
// name, do and status to /profiles/{id}/groups.
func (h *httpFilteringAdapter) CreateFolder(ctx context.Context, profileID string, req models.FolderRequest) error {
	form := url.Values{
		"name":   {req.Name},
		"do":     {strconv.Itoa(req.Action)},
		"status": {strconv.Itoa(req.Status)},
	}

	return h.retrier.Do(ctx, "create folder", func(ctx context.Context) error {
		resp, err := h.request(ctx, profileID).
			SetFormDataFromValues(form).
			Post(groupsPath)
		if err != nil {
			return fmt.Errorf("create folder request: %w", err)
		}
		return mapHTTPError(resp)
	})
}

// DeleteFolder implements [FilteringAdapter]. It sends
// DELETE /profiles/{id}/groups/{folderID}.
func (h *httpFilteringAdapter) DeleteFolder(ctx context.Context, profileID, folderID string) error {
	return h.retrier.Do(ctx, "delete folder", func(ctx context.Context) error {
		resp, err := h.request(ctx, profileID).
			SetPathParam("folderID", folderID).
			Delete(groupPath)
		if err != nil {
			return fmt.Errorf("delete folder request: %w", err)
		}
		return mapHTTPError(resp)
	})
}

// CreateRules implements [FilteringAdapter]. It POSTs do, status, group and
// one repeated hostnames[] field per hostname to /profiles/{id}/rules.
func (h *httpFilteringAdapter) CreateRules(ctx context.Context, profileID string, batch models.RuleBatch) error {
	form := url.Values{
		"do":          {strconv.Itoa(batch.Action)},
		"status":      {strconv.Itoa(batch.Status)},
		"group":       {batch.FolderID},
		"hostnames[]": batch.Hostnames,
	}

	return h.retrier.Do(ctx, "create rules", func(ctx context.Context) error {
		resp, err := h.request(ctx, profileID).
			SetFormDataFromValues(form).
			Post(rulesPath)
		if err != nil {
			return fmt.Errorf("create rules request: %w", err)
		}
		if resp.IsSuccess() {
			return nil
		}

		mapped := mapHTTPError(resp)
		if hostname, dup := h.classifier.Classify(resp.StatusCode(), resp.Body(), batch.Hostnames); dup {
			return &DuplicateRuleError{Hostname: hostname, Err: mapped}
		}
		return mapped
	})
}

// DeleteRule implements [FilteringAdapter]. It sends
// DELETE /profiles/{id}/rules/{hostname}.
func (h *httpFilteringAdapter) DeleteRule(ctx context.Context, profileID, hostname string) error {
	return h.retrier.Do(ctx, "delete rule", func(ctx context.Context) error {
		resp, err := h.request(ctx, profileID).
			SetPathParam("hostname", hostname).
			Delete(rulePath)
		if err != nil {
			return fmt.Errorf("delete rule request: %w", err)
		}
		return mapHTTPError(resp)
	})
}

func (h *httpFilteringAdapter) request(ctx context.Context, profileID string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParam("profileID", profileID)
}
