package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/readgrade/internal/generator"
	"github.com/verte-zerg/readgrade/internal/inspectui"
	"github.com/verte-zerg/readgrade/internal/model"
	"github.com/verte-zerg/readgrade/internal/report"
	"github.com/verte-zerg/readgrade/readability"
)

var (
	scoreMetric        string
	scoreVerbose       bool
	scoreTopN          int
	scoreNoWords       bool
	scoreNoSuggestions bool
	scoreVariant       int
	scoreInteger       bool

	standardVerbose bool
	standardFloat   bool

	statsMetric string
	statsSmooth int

	sampleSentences int
	sampleMinWords  int
	sampleMaxWords  int
	sampleLongBias  float64
	sampleSeed      int64
)

func addVerboseFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&scoreTopN, "top-n", readability.DefaultTopN, "sentences kept in verbose output")
	cmd.Flags().BoolVar(&scoreNoWords, "no-words", false, "skip difficult-word analysis")
	cmd.Flags().BoolVar(&scoreNoSuggestions, "no-suggestions", false, "skip improvement suggestions")
}

// verboseOptions merges the verbose flags with the resolved configuration.
func verboseOptions(cmd *cobra.Command, cfg model.Config) []readability.CallOption {
	topN := cfg.TopN
	if cmd.Flags().Changed("top-n") {
		topN = scoreTopN
	}
	noWords, noSuggestions := !cfg.WordAnalysis, !cfg.Suggestions
	if cmd.Flags().Changed("no-words") {
		noWords = scoreNoWords
	}
	if cmd.Flags().Changed("no-suggestions") {
		noSuggestions = scoreNoSuggestions
	}
	opts := []readability.CallOption{readability.WithTopN(topN)}
	if noWords {
		opts = append(opts, readability.WithoutWordAnalysis())
	}
	if noSuggestions {
		opts = append(opts, readability.WithoutSuggestions())
	}
	return opts
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [FILE|-]",
		Short: "Score text with every metric for the locale",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreMetric, "metric", "", "score a single metric")
	cmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "rank the sentences that drive the score (requires --metric)")
	cmd.Flags().IntVar(&scoreVariant, "variant", 1, "formula variant (wiener_sachtextformel: 1-4)")
	cmd.Flags().BoolVar(&scoreInteger, "integer", false, "truncate scores to integers")
	addVerboseFlags(cmd)
	return cmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	e, cfg, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	opts := []readability.CallOption{readability.WithVariant(scoreVariant)}
	if scoreInteger {
		opts = append(opts, readability.WithIntegerOutput())
	}
	out := cmd.OutOrStdout()
	if scoreMetric == "" {
		if scoreVerbose {
			return fmt.Errorf("--verbose requires --metric")
		}
		scores, err := report.Scores(e, text, opts...)
		if err != nil {
			return err
		}
		return report.WriteScores(out, scores)
	}

	metric, err := readability.ParseMetric(scoreMetric)
	if err != nil {
		return err
	}
	if scoreVerbose {
		rep, err := e.Report(metric, text, append(opts, verboseOptions(cmd, cfg)...)...)
		if err != nil {
			return err
		}
		return report.WriteVerbose(out, rep, report.TerminalWidth(out))
	}
	v, err := e.Score(metric, text, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, v)
	return err
}

func newStandardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standard [FILE|-]",
		Short: "Estimate the school grade level by consensus",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStandardCmd,
	}
	cmd.Flags().BoolVar(&standardVerbose, "verbose", false, "show individual scores and flagged sentences")
	cmd.Flags().BoolVar(&standardFloat, "float", false, "print the consensus grade as a number")
	addVerboseFlags(cmd)
	return cmd
}

func runStandardCmd(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	e, cfg, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	out := cmd.OutOrStdout()
	if standardFloat {
		_, err := fmt.Fprintln(out, e.TextStandardScore(text))
		return err
	}
	rep, err := e.TextStandardReport(text, verboseOptions(cmd, cfg)...)
	if err != nil {
		return err
	}
	return report.WriteStandard(out, rep, report.TerminalWidth(out), standardVerbose)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [FILE|-]",
		Short: "Show text statistics and per-sentence complexity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsMetric, "metric", string(readability.FleschKincaidGrade), "metric for the per-sentence sparkline")
	cmd.Flags().IntVar(&statsSmooth, "smooth", 1, "moving average window for the sparkline")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	out := cmd.OutOrStdout()
	if err := report.WriteStatistics(out, e.Statistics(text)); err != nil {
		return err
	}
	metric, err := readability.ParseMetric(statsMetric)
	if err != nil {
		return err
	}
	scores, err := e.SentenceScores(metric, text)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		return nil
	}
	line := report.Sparkline(report.MovingAverage(scores, statsSmooth), report.TerminalWidth(out))
	_, err = fmt.Fprintf(out, "\n%s per sentence\n%s\n", metric, line)
	return err
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [FILE|-]",
		Short: "Explore scores and difficult sentences interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspectCmd,
	}
	cmd.Flags().IntVar(&scoreVariant, "variant", 1, "formula variant (wiener_sachtextformel: 1-4)")
	return cmd
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	e, cfg, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	m := inspectui.NewModel(e, text, inspectui.Options{
		TopN:         cfg.TopN,
		WordAnalysis: cfg.WordAnalysis,
		Suggestions:  cfg.Suggestions,
		Variant:      scoreVariant,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run inspector: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List locales and their locale-specific formulas",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	current := e.Lang()
	var rows [][]string
	for _, id := range e.Locales() {
		if err := e.SetLang(id); err != nil {
			return err
		}
		var specific []string
		for _, m := range readability.MetricsFor(id) {
			if !m.Universal() {
				specific = append(specific, string(m))
			}
		}
		cfg := e.Locale()
		rows = append(rows, []string{
			id,
			fmt.Sprint(cfg.EasyWordCount()),
			cfg.EasyWordSource(),
			strings.Join(specific, ", "),
		})
	}
	if err := e.SetLang(current); err != nil {
		return err
	}
	lines := report.FormatTable([]string{"Locale", "Easy words", "Source", "Locale formulas"}, rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newSampleCmd() *cobra.Command {
	defaults := generator.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate sample text from the locale's easy words",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	cmd.Flags().IntVar(&sampleSentences, "sentences", defaults.Sentences, "number of sentences")
	cmd.Flags().IntVar(&sampleMinWords, "min-words", defaults.MinWords, "minimum words per sentence")
	cmd.Flags().IntVar(&sampleMaxWords, "max-words", defaults.MaxWords, "maximum words per sentence")
	cmd.Flags().Float64Var(&sampleLongBias, "long-bias", 0, "weight toward longer words (0 picks uniformly)")
	cmd.Flags().Int64Var(&sampleSeed, "seed", 0, "random seed (0 uses the clock)")
	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	if sampleSentences <= 0 {
		return fmt.Errorf("--sentences must be > 0")
	}
	if sampleMinWords <= 0 || sampleMaxWords < sampleMinWords {
		return fmt.Errorf("--min-words must be > 0 and <= --max-words")
	}
	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	words := e.Locale().EasyWords()
	if len(words) == 0 {
		return fmt.Errorf("locale %s has no easy words; build a list with: readgrade wordlist --lang %s", e.Lang(), e.Lang())
	}
	gen := generator.New()
	if sampleSeed != 0 {
		gen = generator.NewSeeded(sampleSeed)
	}
	opts := generator.DefaultOptions()
	opts.Sentences = sampleSentences
	opts.MinWords = sampleMinWords
	opts.MaxWords = sampleMaxWords
	opts.LongBias = sampleLongBias
	_, err = fmt.Fprintln(cmd.OutOrStdout(), gen.Text(words, opts))
	return err
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := globalConfigPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	d := model.DefaultConfig()
	return fmt.Sprintf(`# readgrade configuration
# Uncomment a value to enable it. READGRADE_* environment variables override
# this file and CLI flags override both.

[engine]
# lang = %q            # Locale id
# rounding = %t          # Round presented scores
# precision = %d            # Decimal places when rounding
# rm-apostrophe = %t     # Strip apostrophes when splitting words
# cache-size = %d         # Entries per statistics cache

[verbose]
# top-n = %d                # Sentences kept in verbose reports
# word-analysis = %t      # List difficult words per sentence
# suggestions = %t        # Offer improvement suggestions

[dictionary]
# backend = %q       # file, sqlite or memory
# path = ""              # Directory (file) or database path (sqlite)
`,
		d.Lang,
		d.Rounding,
		d.Precision,
		d.RmApostrophe,
		d.CacheSize,
		d.TopN,
		d.WordAnalysis,
		d.Suggestions,
		d.DictBackend,
	)
}
