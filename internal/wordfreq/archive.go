package wordfreq

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"
)

const dataPrefix = "wordfreq/data/"

// List sizes published by wordfreq, most complete first.
const (
	Large = "large"
	Small = "small"
)

// Archive reads frequency lists out of a wordfreq wheel.
type Archive struct {
	zr    *zip.ReadCloser
	lists map[string]map[string]*zip.File
}

// Open indexes the frequency lists of the wheel at path.
func Open(path string) (*Archive, error) {
	if path == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	a := &Archive{zr: zr, lists: map[string]map[string]*zip.File{}}
	for _, f := range zr.File {
		lang, size, ok := parseListName(f.Name)
		if !ok {
			continue
		}
		if a.lists[lang] == nil {
			a.lists[lang] = map[string]*zip.File{}
		}
		a.lists[lang][size] = f
	}
	if len(a.lists) == 0 {
		_ = zr.Close()
		return nil, fmt.Errorf("no languages found in wordfreq wheel")
	}
	return a, nil
}

// Close releases the wheel.
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Languages returns the sorted wordfreq language codes present in the wheel.
func (a *Archive) Languages() []string {
	out := make([]string, 0, len(a.lists))
	for lang := range a.lists {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Sizes returns the list sizes available for lang.
func (a *Archive) Sizes(lang string) []string {
	var out []string
	for _, size := range []string{Large, Small} {
		if _, ok := a.lists[lang][size]; ok {
			out = append(out, size)
		}
	}
	return out
}

// Ranked returns the words of lang from most to least frequent, using the
// large list when present. It reports which size was read.
func (a *Archive) Ranked(lang string) ([]string, string, error) {
	sizes := a.Sizes(lang)
	if len(sizes) == 0 {
		return nil, "", fmt.Errorf("no word list available for %s", lang)
	}
	f := a.lists[lang][sizes[0]]
	rc, err := f.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer func() {
		_ = rc.Close()
	}()
	words, err := decodeList(f.Name, rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	return words, sizes[0], nil
}

// License returns the license text shipped in the wheel.
func (a *Archive) License() ([]byte, error) {
	for _, f := range a.zr.File {
		if !strings.Contains(strings.ToLower(f.Name), "license") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open license: %w", err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read license: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("license file not found in wheel")
}

// parseListName recognizes data/large_en.msgpack.gz style entries.
func parseListName(name string) (lang, size string, ok bool) {
	name = strings.ToLower(name)
	base, found := strings.CutPrefix(name, dataPrefix)
	if !found {
		return "", "", false
	}
	base = strings.TrimSuffix(base, ".gz")
	base, found = strings.CutSuffix(base, ".msgpack")
	if !found {
		return "", "", false
	}
	for _, s := range []string{Large, Small} {
		if lang, found := strings.CutPrefix(base, s+"_"); found && lang != "" {
			return lang, s, true
		}
	}
	return "", "", false
}

type header struct {
	Format  string `msgpack:"format"`
	Version int    `msgpack:"version"`
}

// decodeList reads a cBpack document: an array whose first element is a
// header map and whose remaining elements are bins of words. Bin i holds
// words with a frequency of -i centibels, so earlier bins are more common.
func decodeList(name string, r io.Reader) ([]string, error) {
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		r = gz
	}
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("frequency list is empty")
	}
	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}
	if h.Format != "cB" {
		return nil, fmt.Errorf("unsupported frequency list format %q", h.Format)
	}
	var words []string
	for i := 1; i < n; i++ {
		var bin []string
		if err := dec.Decode(&bin); err != nil {
			return nil, fmt.Errorf("failed to decode bin %d: %w", i-1, err)
		}
		words = append(words, bin...)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("frequency list contained no words")
	}
	return words, nil
}
