// Package ebird provides a client for the eBird API v2 recent-observations
// endpoints used by the sightings pipeline.
package ebird

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const apiKeyHeader = "X-eBirdApiToken"

// Errors returned by API calls.
var (
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("ebird api key rejected")
	// ErrUnknownRegion indicates the region or species code was not
	// recognized by the API.
	ErrUnknownRegion = errors.New("unknown region or species code")
	// ErrRequestFailed indicates a non-success response outside the
	// specifically mapped cases.
	ErrRequestFailed = errors.New("ebird request failed")
)

// Client calls the eBird API. Create one with New; the zero value is not
// usable.
type Client struct {
	base     string
	apiKey   string
	backDays int
	http     *http.Client
	logger   *slog.Logger
}

// New creates a Client from the given configuration.
func New(cfg *Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ebird base url: %w", err)
	}

	return &Client{
		base:     strings.TrimRight(base.String(), "/"),
		apiKey:   cfg.APIKey,
		backDays: cfg.BackDays,
		http:     &http.Client{Timeout: cfg.TimeoutDuration()},
		logger:   logger.With("system", "ebird"),
	}, nil
}

// RecentSpeciesObservations fetches recent observations of one species in a
// region (GET /data/obs/{regionCode}/recent/{speciesCode}), looking back the
// configured number of days.
func (c *Client) RecentSpeciesObservations(ctx context.Context, regionCode, speciesCode string) ([]Observation, error) {
	if regionCode == "" || speciesCode == "" {
		return nil, fmt.Errorf("%w: region and species codes required", ErrRequestFailed)
	}

	endpoint := fmt.Sprintf(
		"%s/data/obs/%s/recent/%s?back=%s",
		c.base,
		url.PathEscape(regionCode),
		url.PathEscape(speciesCode),
		strconv.Itoa(c.backDays),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build ebird request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ebird request: %w", err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		io.Copy(io.Discard, resp.Body)
		c.logger.Warn(
			"ebird request failed",
			"region", regionCode,
			"species", speciesCode,
			"status", resp.StatusCode,
		)
		return nil, err
	}

	var observations []Observation
	if err := json.NewDecoder(resp.Body).Decode(&observations); err != nil {
		return nil, fmt.Errorf("decode ebird response: %w", err)
	}

	return observations, nil
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusForbidden || code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusNotFound || code == http.StatusBadRequest:
		return ErrUnknownRegion
	default:
		return fmt.Errorf("%w: status %d", ErrRequestFailed, code)
	}
}
