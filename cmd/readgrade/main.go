// Package main provides the CLI entrypoint for readgrade.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/readgrade/internal/config"
	"github.com/verte-zerg/readgrade/internal/dictstore"
	"github.com/verte-zerg/readgrade/internal/model"
	"github.com/verte-zerg/readgrade/internal/wordfreq"
	"github.com/verte-zerg/readgrade/internal/wordlist"
	"github.com/verte-zerg/readgrade/readability"
)

var (
	globalLang         string
	globalRound        bool
	globalPrecision    int
	globalRmApostrophe bool
	globalDebug        bool
	globalConfigPath   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := model.DefaultConfig()
	rootCmd := &cobra.Command{
		Use:           "readgrade",
		Short:         "Readability metrics for text in several languages",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalLang, "lang", defaults.Lang, "locale id (en, de, es, fr, it, nl, pl, ru, hu, ar)")
	flags.BoolVar(&globalRound, "round", defaults.Rounding, "round presented scores")
	flags.IntVar(&globalPrecision, "precision", defaults.Precision, "decimal places when rounding")
	flags.BoolVar(&globalRmApostrophe, "rm-apostrophe", defaults.RmApostrophe, "strip apostrophes when splitting words")
	flags.BoolVar(&globalDebug, "debug", false, "log engine events to stderr")
	flags.StringVar(&globalConfigPath, "config", config.DefaultConfigPath(), "config file path")

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newStandardCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newDictCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newWordlistCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// resolveConfig layers flags over environment over the config file over defaults.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.Load(globalConfigPath)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &globalLang, fileCfg.Engine.Lang)
	applyBoolConfig(cmd, "round", &globalRound, fileCfg.Engine.Rounding)
	applyIntConfig(cmd, "precision", &globalPrecision, fileCfg.Engine.Precision)
	applyBoolConfig(cmd, "rm-apostrophe", &globalRmApostrophe, fileCfg.Engine.RmApostrophe)

	cfg := model.DefaultConfig()
	cfg.Lang = globalLang
	cfg.Rounding = globalRound
	cfg.Precision = globalPrecision
	cfg.RmApostrophe = globalRmApostrophe
	setIfPresent(&cfg.CacheSize, fileCfg.Engine.CacheSize)
	setIfPresent(&cfg.TopN, fileCfg.Verbose.TopN)
	setIfPresent(&cfg.WordAnalysis, fileCfg.Verbose.WordAnalysis)
	setIfPresent(&cfg.Suggestions, fileCfg.Verbose.Suggestions)
	setIfPresent(&cfg.DictBackend, fileCfg.Dictionary.Backend)
	setIfPresent(&cfg.DictPath, fileCfg.Dictionary.Path)
	if err := cfg.Validate(); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if globalDebug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// openStore returns the configured dictionary backend and its closer.
func openStore(cfg model.Config) (dictstore.Store, func(), error) {
	noop := func() {}
	switch cfg.DictBackend {
	case model.BackendMemory:
		return dictstore.NewMemoryStore(), noop, nil
	case model.BackendSQLite:
		path := cfg.DictPath
		if path == "" {
			path = config.DefaultDBPath()
		}
		st, err := dictstore.OpenSQL(path)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open dictionary db: %w", err)
		}
		return st, func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close dictionary db: %v\n", cerr)
			}
		}, nil
	default:
		dir := cfg.DictPath
		if dir == "" {
			dir = config.DefaultDictionaryDir()
		}
		return dictstore.NewFileStore(dir), noop, nil
	}
}

// easyWordLists loads every generated list from the word list directory.
func easyWordLists(logger zerolog.Logger) []readability.EngineOption {
	dir := config.DefaultWordListDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var opts []readability.EngineOption
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") || wordfreq.ReservedFiles[name] {
			continue
		}
		path := filepath.Join(dir, name)
		words, err := wordlist.LoadWords(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping easy-word list")
			continue
		}
		opts = append(opts, readability.WithEasyWordList(strings.TrimSuffix(name, ".txt"), path, words))
	}
	return opts
}

// buildEngine resolves the configuration and constructs an engine with the
// configured dictionary store and generated easy-word lists.
func buildEngine(cmd *cobra.Command) (*readability.Engine, model.Config, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, model.Config{}, nil, err
	}
	logger := newLogger()
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, model.Config{}, nil, err
	}
	opts := []readability.EngineOption{
		readability.WithLang(cfg.Lang),
		readability.WithRoundingPolicy(cfg.Rounding, cfg.Precision),
		readability.WithRmApostrophe(cfg.RmApostrophe),
		readability.WithCacheSize(cfg.CacheSize),
		readability.WithLogger(logger),
		readability.WithDictionaryStore(st),
	}
	opts = append(opts, easyWordLists(logger)...)
	e, err := readability.New(opts...)
	if err != nil {
		closeStore()
		return nil, model.Config{}, nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return e, cfg, closeStore, nil
}

// readInput reads the named file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func setIfPresent[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
