package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suporteverde/invoice-batch/internal/entity"
	"github.com/suporteverde/invoice-batch/internal/invoice"
	"github.com/suporteverde/invoice-batch/internal/render"
)

var (
	inFile     string
	outDir     string
	dateMode   string
	customDate string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process one spreadsheet into invoice workbooks",
	Long: `Reads the input file, builds one invoice record per row and writes
each rendered workbook into the output directory, named after the
invoice display name. The run is all-or-nothing: a failing row aborts
the batch before anything is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&inFile, "file", "", "input spreadsheet (.csv or .xlsx)")
	processCmd.Flags().StringVar(&outDir, "out", "", "output directory (default: alongside the input file)")
	processCmd.Flags().StringVar(&dateMode, "date-mode", "atual", "emission date mode: atual, venda or escolher")
	processCmd.Flags().StringVar(&customDate, "date", "", "custom emission date YYYY-MM-DD (with --date-mode escolher)")
	_ = processCmd.MarkFlagRequired("file")
}

func runProcess() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if outDir == "" {
		outDir = filepath.Dir(inFile)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Open(inFile)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	policy := entity.DatePolicy{
		Mode:       entity.ParseDateMode(dateMode),
		CustomDate: customDate,
	}

	renderer := render.NewRenderer(render.DefaultStyles())
	processor := invoice.NewService(renderer, logger)

	records, err := processor.ProcessUpload(context.Background(), f, filepath.Base(inFile), policy)
	if err != nil {
		return fmt.Errorf("process %s: %w", inFile, err)
	}

	for _, rec := range records {
		blob, err := base64.StdEncoding.DecodeString(rec.DocumentBlob)
		if err != nil {
			return fmt.Errorf("decode document for %q: %w", rec.DisplayName, err)
		}
		name := sanitizeFilename(rec.DisplayName) + ".xlsx"
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, blob, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debug("wrote invoice", "path", path)
	}

	fmt.Printf("%d notas geradas em %s\n", len(records), outDir)
	return nil
}

// sanitizeFilename strips path separators and other characters that are
// unsafe in file names.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}
