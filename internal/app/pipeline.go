package app

import (
	"fmt"

	"go.uber.org/zap"
)

// Result describes one build of the holiday CSV
type Result struct {
	Rows   []Row
	CSV    []byte
	Digest string
}

// Build loads the source document and produces the sorted rows and CSV text.
// Nothing is written.
func Build(source string, logger *zap.Logger) (*Result, error) {
	doc, err := LoadSource(source, logger)
	if err != nil {
		return nil, err
	}

	events, err := Events(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	rows := ExpandAll(events)
	csv := RenderCSV(rows)

	logger.Debug("Expanded holidays",
		zap.Int("events", len(events)),
		zap.Int("rows", len(rows)))

	return &Result{Rows: rows, CSV: csv, Digest: Digest(csv)}, nil
}

// Run builds the CSV and writes it to cfg.OutputFile
func Run(cfg Config, logger *zap.Logger) (*Result, error) {
	res, err := Build(cfg.SourceFile, logger)
	if err != nil {
		return nil, err
	}

	if err := WriteOutput(cfg.OutputFile, res.CSV); err != nil {
		return nil, err
	}

	logger.Info("Wrote holiday CSV",
		zap.String("path", cfg.OutputFile),
		zap.Int("rows", len(res.Rows)),
		zap.String("blake2b", res.Digest))
	return res, nil
}

// Verify rebuilds the CSV in memory and compares it with cfg.OutputFile
func Verify(cfg Config, logger *zap.Logger) (*Result, error) {
	res, err := Build(cfg.SourceFile, logger)
	if err != nil {
		return nil, err
	}

	existing, err := ReadOutput(cfg.OutputFile)
	if err != nil {
		return nil, err
	}

	if got := Digest(existing); got != res.Digest {
		return res, fmt.Errorf("%w: %s has %s, expected %s", ErrDigestMismatch, cfg.OutputFile, got, res.Digest)
	}
	return res, nil
}

// StatusLine is the message printed after a successful write
func StatusLine(count int, path string) string {
	return fmt.Sprintf("Wrote %d holidays to %s", count, path)
}
