package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// readFENLines reads one FEN per line. Blank lines and lines starting with
// '#' are skipped; line numbers are kept for error reports. Indexes
// continue from firstIndex so several inputs share one numbering.
func readFENLines(r io.Reader, firstIndex int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Index: firstIndex + len(items),
			ID:    uuid.NewString(),
			FEN:   line,
			Line:  lineNo,
		})
	}
	return items, scanner.Err()
}

// batchInput is one named source of FEN lines.
type batchInput struct {
	name  string
	items []worker.WorkItem
}

// cmdBatch analyses every FEN in the named files, or stdin if none.
func (a *App) cmdBatch(ctx context.Context, files []string) error {
	inputs, err := a.readBatchInputs(files)
	if err != nil {
		return err
	}

	var detector *hashing.ThreadSafeDuplicateDetector
	if dup := a.cfg.Batch.Duplicates; dup.Enabled {
		detector = hashing.NewThreadSafeDuplicateDetector(dup.ExactMatch, dup.MaxCapacity)
	}

	w := output.New(a.stdout, a.cfg.Output)
	start := time.Now()
	var summary output.Summary

	for _, in := range inputs {
		analyzer := &worker.Analyzer{
			PerftDepth: a.cfg.Batch.PerftDepth,
			Detector:   detector,
			Source:     in.name,
			Logger:     a.log,
		}
		pool := worker.NewPool(analyzer.Process,
			worker.WithWorkers(a.cfg.Batch.Workers),
			worker.WithLogger(a.log))
		a.log.Info("batch started",
			zap.String("source", in.name),
			zap.Int("positions", len(in.items)),
			zap.Int("workers", pool.Workers()))

		results, runErr := pool.Run(ctx, in.items)
		for _, r := range results {
			summary.Add(r)
			if r.Error != nil {
				a.log.Warn("position failed", zap.String("id", r.ID), zap.Error(r.Error))
			}
			if err := w.WriteResult(r); err != nil {
				return err
			}
		}
		if runErr != nil {
			_ = w.Close()
			return runErr
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	fields := []zap.Field{
		zap.Int("positions", summary.Positions),
		zap.Int("errors", summary.Errors),
		zap.Int("duplicates", summary.Duplicates),
		zap.Duration("elapsed", time.Since(start)),
	}
	if detector != nil {
		fields = append(fields, zap.Int("unique", detector.UniqueCount()), zap.Bool("detector_full", detector.IsFull()))
	}
	a.log.Info("batch finished", fields...)
	return nil
}

func (a *App) readBatchInputs(files []string) ([]batchInput, error) {
	if len(files) == 0 {
		items, err := readFENLines(a.stdin, 0)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		return []batchInput{{name: "stdin", items: items}}, nil
	}

	var inputs []batchInput
	next := 0
	for _, name := range files {
		f, err := os.Open(name) //nolint:gosec // G304: user-specified input file
		if err != nil {
			return nil, err
		}
		items, err := readFENLines(f, next)
		_ = f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		next += len(items)
		inputs = append(inputs, batchInput{name: name, items: items})
	}
	return inputs, nil
}
