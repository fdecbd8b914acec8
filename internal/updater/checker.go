// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package updater performs a non-blocking, once-a-day check for newer
// captain releases.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	version "github.com/hashicorp/go-version"
)

const (
	// GitHubAPIURL is the endpoint for fetching the latest release
	GitHubAPIURL = "https://api.github.com/repos/solfleet/captain/releases/latest"
	// CheckInterval is how often we check for updates
	CheckInterval = 24 * time.Hour
	// RequestTimeout is the maximum time to wait for the GitHub API
	RequestTimeout = 5 * time.Second
)

// Checker handles update checking logic
type Checker struct {
	currentVersion string
	cacheDir       string
}

// GitHubRelease represents the GitHub API response for a release
type GitHubRelease struct {
	TagName string `json:"tag_name"`
}

// CacheData stores the last check timestamp and latest version
type CacheData struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
}

// NewChecker creates a new update checker
func NewChecker(currentVersion string) *Checker {
	cacheDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".captain")
	}
	return &Checker{
		currentVersion: currentVersion,
		cacheDir:       cacheDir,
	}
}

// CheckForUpdates performs the update check. Failures are silent; a CLI must
// never get in the operator's way over a version banner.
func (c *Checker) CheckForUpdates() {
	if os.Getenv("CAPTAIN_NO_UPDATE_CHECK") != "" || c.cacheDir == "" {
		return
	}

	if !c.shouldCheck() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	defer cancel()

	latest, err := c.fetchLatestVersion(ctx)
	if err != nil {
		return
	}

	if err := c.updateCache(latest); err != nil {
		return
	}

	newer, err := c.compareVersions(c.currentVersion, latest)
	if err != nil || !newer {
		return
	}

	fmt.Fprintf(os.Stderr,
		"\nA new version (%s) is available! Run 'go install github.com/solfleet/captain@latest' to update.\n\n",
		latest,
	)
}

func (c *Checker) shouldCheck() bool {
	data, err := os.ReadFile(filepath.Join(c.cacheDir, "last_update_check"))
	if err != nil {
		return true
	}
	var cache CacheData
	if err := json.Unmarshal(data, &cache); err != nil {
		return true
	}
	return time.Since(cache.LastCheck) >= CheckInterval
}

func (c *Checker) fetchLatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", GitHubAPIURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "captain-cli")
	req.Header.Set("Accept", "application/vnd.github+json")

	client := &http.Client{Timeout: RequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var release GitHubRelease
	if err := json.Unmarshal(body, &release); err != nil {
		return "", err
	}
	return release.TagName, nil
}

func (c *Checker) compareVersions(current, latest string) (bool, error) {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")

	// Dev builds never prompt for updates.
	if current == "dev" || current == "" {
		return false, nil
	}

	currentVer, err := version.NewVersion(current)
	if err != nil {
		return false, err
	}
	latestVer, err := version.NewVersion(latest)
	if err != nil {
		return false, err
	}
	return latestVer.GreaterThan(currentVer), nil
}

func (c *Checker) updateCache(latest string) error {
	if err := os.MkdirAll(c.cacheDir, 0755); err != nil {
		return err
	}
	data, err := json.Marshal(CacheData{LastCheck: time.Now(), LatestVersion: latest})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.cacheDir, "last_update_check"), data, 0644)
}
