package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/readgrade/internal/config"
	"github.com/verte-zerg/readgrade/internal/locale"
	"github.com/verte-zerg/readgrade/internal/wordfreq"
)

const defaultWordlistSize = 10000

var (
	wordlistLang  string
	wordlistSize  int
	wordlistForce bool
)

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Build easy-word lists from wordfreq",
		Args:  cobra.NoArgs,
		RunE:  runWordlistCmd,
	}
	cmd.Flags().StringVar(&wordlistLang, "for", "", "locale id, comma-separated ids or 'all' (default: --lang)")
	cmd.Flags().IntVar(&wordlistSize, "size", defaultWordlistSize, "number of words")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite existing files")
	return cmd
}

func runWordlistCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if wordlistSize <= 0 {
		return fmt.Errorf("--size must be greater than 0")
	}
	registry, err := locale.DefaultRegistry()
	if err != nil {
		return err
	}
	ids, allRequested, err := resolveWordlistLocales(wordlistLang, cfg.Lang, registry.IDs())
	if err != nil {
		return err
	}

	logErrln("Fetching wordfreq metadata...")
	wheel, err := wordfreq.NewFetcher(config.DefaultWordfreqCacheDir()).Latest(context.Background())
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	if wheel.Cached {
		logErrf("Using cached wheel %s\n", wheel.Filename)
	} else {
		logErrf("Downloaded wheel %s\n", wheel.Filename)
	}
	archive, err := wordfreq.Open(wheel.Path)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.Close()
	}()

	outDir := config.DefaultWordListDir()
	for _, id := range ids {
		outPath := config.DefaultWordListPath(id)
		if !wordlistForce {
			if _, err := os.Stat(outPath); err == nil {
				if allRequested {
					logErrf("Skipping %s (exists)\n", id)
					continue
				}
				return fmt.Errorf("word list already exists: %s (use --force to overwrite)", outPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat word list: %w", err)
			}
		}

		lang := wordfreq.Lang(id)
		ranked, size, err := archive.Ranked(lang)
		if err != nil {
			if allRequested {
				logErrf("Skipping %s: %v\n", id, err)
				continue
			}
			return err
		}
		if size != wordfreq.Large {
			logErrf("Using %s list for %s (no %s list)\n", size, id, wordfreq.Large)
		}
		words, err := wordfreq.EasyWords(ranked, lang, wordlistSize)
		if err != nil {
			if allRequested {
				logErrf("Skipping %s: %v\n", id, err)
				continue
			}
			return err
		}
		if err := writeWordList(outPath, words); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		logErrf("Wrote %s (%d words)\n", outPath, len(words))
	}

	if err := wordfreq.WriteAttribution(archive, outDir); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	logErrln("Wrote ATTRIBUTION.txt and LICENSE.txt")
	return nil
}

// resolveWordlistLocales expands the --for value against the known locales.
func resolveWordlistLocales(value, fallback string, known []string) ([]string, bool, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return []string{fallback}, false, nil
	}
	if value == "all" {
		return append([]string(nil), known...), true, nil
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, id := range known {
		knownSet[id] = struct{}{}
	}
	var ids []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := knownSet[part]; !ok {
			return nil, false, fmt.Errorf("unknown locale %q (available: %s)", part, strings.Join(known, ", "))
		}
		ids = append(ids, part)
	}
	if len(ids) == 0 {
		return nil, false, fmt.Errorf("--for must not be empty")
	}
	return ids, false, nil
}

func writeWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}
