// Copyright Fieber IT, 2026. All rights reserved.

// Package pipeline orchestrates batch vCard-to-PDF conversion: directory
// scanning, per-file status reporting, output naming, and skip detection.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fieberit/vcard2pdf/internal/vcard"
	"github.com/fieberit/vcard2pdf/pkg/types"
)

// Renderer lays out one parsed card as a PDF document.
type Renderer interface {
	// Render writes the PDF for card to w. sourceName is the source file
	// name, used for the title fallback and error messages.
	Render(card *types.Card, sourceName string, w io.Writer) error
}

// Ledger answers whether a source file is already rendered and records
// completed renders. A nil Ledger falls back to an output existence check.
type Ledger interface {
	ShouldSkip(source string, modTime time.Time) bool
	Record(source, output string, modTime time.Time) error
}

// BatchResult holds the outcome of a batch rendering run.
type BatchResult struct {
	Rendered int
	Skipped  int
	Failed   int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Rendered + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed to render.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ScanDir returns the .vcf files in dir (non-recursive), sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".vcf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// OutputName derives the PDF file name for a card: the formatted name when
// present, the source file stem otherwise, with filesystem-hostile
// characters replaced.
func OutputName(card *types.Card, sourcePath string) string {
	base := card.FormattedName
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	}
	return sanitizeName(base) + ".pdf"
}

// sanitizeName replaces characters that are unsafe in file names on at
// least one supported platform.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

// RenderFile converts a single .vcf file to a PDF in cfg.OutDir, returning
// the status. Up-to-date files are skipped unless cfg.Force is set; skip
// detection uses led when non-nil and a plain output existence check
// otherwise.
func RenderFile(r Renderer, led Ledger, vcfPath string, cfg types.RenderConfig, w io.Writer) types.RenderStatus {
	base := filepath.Base(vcfPath)

	card, err := vcard.ParseFile(vcfPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	outName := OutputName(card, vcfPath)
	outPath := filepath.Join(cfg.OutDir, outName)

	var modTime time.Time
	if info, err := os.Stat(vcfPath); err == nil {
		modTime = info.ModTime()
	}

	if !cfg.Force {
		if led != nil {
			if led.ShouldSkip(vcfPath, modTime) {
				fmt.Fprintf(w, "skipped: %s (up to date)\n", base)
				return types.RenderNone
			}
		} else if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (output exists)\n", base)
			return types.RenderNone
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	var pdf bytes.Buffer
	if err := r.Render(card, base, &pdf); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	if err := os.WriteFile(outPath, pdf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	if led != nil {
		if err := led.Record(vcfPath, outPath, modTime); err != nil {
			fmt.Fprintf(w, "warning: %s not recorded in ledger: %v\n", base, err)
		}
	}

	fmt.Fprintf(w, "rendered: %s -> %s\n", base, outName)
	return types.RenderDone
}

// RenderBatch processes a list of .vcf files, printing per-file status to w
// and returning a summary. A failed file never aborts the batch.
func RenderBatch(r Renderer, led Ledger, vcfPaths []string, cfg types.RenderConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, path := range vcfPaths {
		switch RenderFile(r, led, path, cfg, w) {
		case types.RenderDone:
			result.Rendered++
		case types.RenderNone:
			result.Skipped++
		case types.RenderFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d rendered, %d skipped, %d failed (total: %d)\n",
		result.Rendered, result.Skipped, result.Failed, result.Total())
	return result
}
