package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/readgrade/internal/dictstore"
	"github.com/verte-zerg/readgrade/internal/report"
)

var dictShowDefaults bool

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the user syllable dictionary of a locale",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "List user dictionary entries",
		Args:  cobra.NoArgs,
		RunE:  runDictShowCmd,
	}
	show.Flags().BoolVar(&dictShowDefaults, "defaults", false, "list the packaged dictionary instead")

	cmd.AddCommand(show)
	cmd.AddCommand(&cobra.Command{
		Use:   "add WORD SYLLABLES",
		Short: "Set the syllable count of a word",
		Args:  cobra.ExactArgs(2),
		RunE:  runDictAddCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Merge a CUSTOM_SYLLABLE_DICT document into the user dictionary",
		Args:  cobra.ExactArgs(1),
		RunE:  runDictImportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write the user dictionary as a CUSTOM_SYLLABLE_DICT document",
		Args:  cobra.NoArgs,
		RunE:  runDictExportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "revert",
		Short: "Drop the user dictionary of the locale",
		Args:  cobra.NoArgs,
		RunE:  runDictRevertCmd,
	})
	return cmd
}

func runDictShowCmd(cmd *cobra.Command, _ []string) error {
	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	terms := e.UserDictionary()
	if dictShowDefaults {
		terms = e.DefaultDictionary()
	}
	if len(terms) == 0 {
		logErrf("No entries for %s\n", e.Lang())
		return nil
	}
	words := make([]string, 0, len(terms))
	for w := range terms {
		words = append(words, w)
	}
	sort.Strings(words)
	rows := make([][]string, len(words))
	for i, w := range words {
		rows[i] = []string{w, strconv.Itoa(terms[w])}
	}
	for _, line := range report.FormatTable([]string{"Word", "Syllables"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runDictAddCmd(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("syllable count must be an integer: %q", args[1])
	}
	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	if err := e.AddTerm(context.Background(), args[0], n); err != nil {
		return err
	}
	logErrf("Set %s = %d for %s\n", args[0], n, e.Lang())
	return nil
}

func runDictImportCmd(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() {
		_ = f.Close()
	}()
	terms, err := dictstore.DecodePayload(args[0], f)
	if err != nil {
		return err
	}

	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	if err := e.AddTerms(context.Background(), terms); err != nil {
		return err
	}
	logErrf("Imported %d entries for %s\n", len(terms), e.Lang())
	return nil
}

func runDictExportCmd(cmd *cobra.Command, _ []string) error {
	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()
	return dictstore.EncodePayload(cmd.OutOrStdout(), e.UserDictionary())
}

func runDictRevertCmd(cmd *cobra.Command, _ []string) error {
	e, _, closeEngine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeEngine()

	if err := e.RevertDictionary(context.Background()); err != nil {
		return err
	}
	logErrf("Reverted %s to the packaged dictionary\n", e.Lang())
	return nil
}
