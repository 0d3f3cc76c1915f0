// Package wordfreq builds easy-word lists from the wordfreq frequency dataset.
package wordfreq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultEndpoint is the PyPI metadata URL for the wordfreq package.
const DefaultEndpoint = "https://pypi.org/pypi/wordfreq/json"

// Wheel describes a cached wordfreq wheel.
type Wheel struct {
	Version  string
	Path     string
	Filename string
	Cached   bool
}

// Fetcher downloads wordfreq wheels into a cache directory.
type Fetcher struct {
	Client   *http.Client
	Endpoint string
	CacheDir string
}

// NewFetcher returns a fetcher for the public PyPI endpoint.
func NewFetcher(cacheDir string) *Fetcher {
	return &Fetcher{
		Client:   &http.Client{Timeout: 60 * time.Second},
		Endpoint: DefaultEndpoint,
		CacheDir: cacheDir,
	}
}

type release struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []artifact `json:"urls"`
}

type artifact struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Packagetype string `json:"packagetype"`
}

// Latest returns the newest wheel, downloading it unless already cached.
func (f *Fetcher) Latest(ctx context.Context) (Wheel, error) {
	if f.CacheDir == "" {
		return Wheel{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return Wheel{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	var rel release
	if err := f.getJSON(ctx, f.Endpoint, &rel); err != nil {
		return Wheel{}, err
	}
	if rel.Info.Version == "" {
		return Wheel{}, fmt.Errorf("missing version in pypi response")
	}
	art, ok := pickWheel(rel.URLs)
	if !ok {
		return Wheel{}, fmt.Errorf("no suitable wordfreq wheel found")
	}

	wheel := Wheel{Version: rel.Info.Version, Filename: art.Filename, Path: filepath.Join(f.CacheDir, art.Filename)}
	if _, err := os.Stat(wheel.Path); err == nil {
		wheel.Cached = true
		return wheel, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Wheel{}, fmt.Errorf("failed to stat cached wheel: %w", err)
	}
	if err := f.download(ctx, art.URL, wheel.Path); err != nil {
		return Wheel{}, err
	}
	return wheel, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status from %s: %s", url, resp.Status)
	}
	return resp, nil
}

func (f *Fetcher) getJSON(ctx context.Context, url string, v any) error {
	resp, err := f.get(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode pypi response: %w", err)
	}
	return nil
}

// download streams url into a temp file and renames it into place.
func (f *Fetcher) download(ctx context.Context, url, dest string) error {
	resp, err := f.get(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	tmp, err := os.CreateTemp(filepath.Dir(dest), "wordfreq-*.whl")
	if err != nil {
		return fmt.Errorf("failed to create temp wheel: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return fmt.Errorf("failed to download wheel: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp wheel: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move wheel into cache: %w", err)
	}
	return nil
}

// pickWheel prefers the pure-python wheel.
func pickWheel(arts []artifact) (artifact, bool) {
	var fallback *artifact
	for i, a := range arts {
		if a.Packagetype != "bdist_wheel" {
			continue
		}
		if strings.HasSuffix(a.Filename, "py3-none-any.whl") {
			return a, true
		}
		if fallback == nil {
			fallback = &arts[i]
		}
	}
	if fallback == nil {
		return artifact{}, false
	}
	return *fallback, true
}
