// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/go-resty/resty/v2"
)

// DefaultRequestTimeout is the per-call ceiling applied when no timeout is
// configured.
const DefaultRequestTimeout = 30 * time.Second

// userAgent identifies the sync client to remote services.
const userAgent = "go-folder-sync"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with the given per-call timeout.
// A non-positive timeout falls back to [DefaultRequestTimeout].
//
// Each call returns an independent client with its own connection pool.
// resty's built-in retry is left disabled; callers that need retries wrap
// calls explicitly.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}

// WithLogging logs every completed call at debug level with its method,
// URL, status, duration and body size.
func (c *HTTPClient) WithLogging(log *logger.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("uri", resp.Request.URL).
			Str("method", resp.Request.Method).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int64("size", resp.Size()).
			Msg("http call")
		return nil
	})
	return c
}
