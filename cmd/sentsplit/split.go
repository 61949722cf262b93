package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sentsplit/internal/cache/noop"
	"sentsplit/internal/config"
	"sentsplit/internal/csvexport"
	"sentsplit/internal/domain"
	"sentsplit/internal/service"
	"sentsplit/internal/splitter"
)

type splitOptions struct {
	mathOnly     bool
	asJSON       bool
	asCSV        bool
	engine       string
	trainingPath string
}

func newSplitCmd() *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "split FILE...",
		Short: "Split one or more files and print their sentences in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.asJSON && opts.asCSV {
				return errors.New("--json and --csv are mutually exclusive")
			}
			return runSplit(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.mathOnly, "math-only", false, "Keep only sentences containing <math> or </math>")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, `Print {"sentences": [...]} instead of one sentence per line`)
	cmd.Flags().BoolVar(&opts.asCSV, "csv", false, "Print CSV rows of document, sentence number, sentence and math flag")
	cmd.Flags().StringVar(&opts.engine, "engine", string(domain.EngineRegex), "Splitter engine: "+strings.Join(splitter.Engines(), ", "))
	cmd.Flags().StringVar(&opts.trainingPath, "punkt-training", "", "Punkt training JSON (default: bundled English model)")
	return cmd
}

func runSplit(cmd *cobra.Command, opts *splitOptions, args []string) error {
	sp, err := splitter.New(&config.SplitterConfig{
		Engine:            strings.ToLower(opts.engine),
		PunktTrainingPath: opts.trainingPath,
	})
	if err != nil {
		return err
	}

	docs := make([]domain.Document, 0, len(args))
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		docs = append(docs, domain.Document{Name: filepath.Base(name), Content: data})
	}

	svc := service.NewSentenceService(sp, noop.NewNoopCache(), nil, nil, nil)
	out := cmd.OutOrStdout()

	if opts.asCSV {
		return writeCSV(cmd, svc, docs, opts.mathOnly, out)
	}

	batch, err := svc.Split(cmd.Context(), service.SplitInput{Documents: docs, MathOnly: opts.mathOnly})
	if err != nil {
		return err
	}
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		return enc.Encode(batch)
	}
	for _, s := range batch.Sentences {
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	return nil
}

// writeCSV splits each document separately so rows keep their document
// name. Nothing is written until every document has been split.
func writeCSV(cmd *cobra.Command, svc service.SentenceService, docs []domain.Document, mathOnly bool, out io.Writer) error {
	batches := make([]*domain.SentenceBatch, len(docs))
	for i := range docs {
		batch, err := svc.Split(cmd.Context(), service.SplitInput{Documents: docs[i : i+1], MathOnly: mathOnly})
		if err != nil {
			return err
		}
		batches[i] = batch
	}

	w := csvexport.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for i, batch := range batches {
		if err := w.WriteSentences(docs[i].Name, batch.Sentences); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
