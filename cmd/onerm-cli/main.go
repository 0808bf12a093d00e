package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/console"
	"github.com/bodythrive/onerm/internal/onerm"
	"github.com/bodythrive/onerm/internal/render"
	"github.com/bodythrive/onerm/internal/workoutlog"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	weight := flag.Float64("weight", calculator.DefaultWeight, "weight lifted in kg")
	reps := flag.Int("reps", calculator.DefaultReps, "repetitions performed (1-20)")
	formula := flag.String("formula", calculator.DefaultFormula.String(), "Epley, Brzycki or Lombardi")
	width := flag.Int("width", render.DefaultTextWidth, "bar chart width in cells")
	xlsxPath := flag.String("xlsx", "", "write an Excel workbook to this path")
	pdfPath := flag.String("pdf", "", "write a PDF to this path")
	importPath := flag.String("import", "", "estimate per-exercise maxes from an Alpha Progression CSV export")
	interactive := flag.Bool("i", false, "interactive mode")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("onerm-cli", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	calc := calculator.New()
	// Out-of-range numbers are kept and rendered as "--".
	_ = calc.SetWeight(*weight)
	_ = calc.SetReps(*reps)
	if err := calc.SetFormulaName(*formula); err != nil {
		log.Error("invalid formula", "formula", *formula, "error", err)
		os.Exit(1)
	}

	if *importPath != "" {
		if err := importExport(*importPath, calc.Formula()); err != nil {
			log.Error("import failed", "path", *importPath, "error", err)
			os.Exit(1)
		}
		return
	}

	if *interactive {
		if err := console.NewSession(calc, os.Stdin, os.Stdout, *width).Run(); err != nil {
			log.Error("session failed", "error", err)
			os.Exit(1)
		}
		return
	}

	view := calc.View()
	doc := render.FromView(view)
	if err := render.Text(os.Stdout, doc, *width); err != nil {
		log.Error("render failed", "error", err)
		os.Exit(1)
	}

	if *xlsxPath != "" {
		if err := export(*xlsxPath, doc, render.XLSX); err != nil {
			log.Error("xlsx export failed", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		log.Info("wrote workbook", "path", *xlsxPath)
	}
	if *pdfPath != "" {
		if err := export(*pdfPath, doc, render.PDF); err != nil {
			log.Error("pdf export failed", "path", *pdfPath, "error", err)
			os.Exit(1)
		}
		log.Info("wrote pdf", "path", *pdfPath)
	}

	if !view.Valid {
		os.Exit(2)
	}
}

// export renders doc in memory and writes path only on success.
func export(path string, doc render.Document, fn func(io.Writer, render.Document) error) error {
	var buf bytes.Buffer
	if err := fn(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// importExport prints the best estimated max per exercise in an export.
func importExport(path string, f onerm.Formula) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	defer file.Close()

	sessions, err := workoutlog.Parse(file)
	if err != nil {
		return err
	}
	sum, err := workoutlog.Estimate(sessions, f)
	if err != nil {
		return err
	}

	fmt.Printf("%d sessions, %d sets (%d skipped), %s formula\n\n", sum.Sessions, sum.SetsSeen, sum.SetsSkipped, f)
	for _, r := range sum.Records {
		fmt.Printf("%-32s %10s  %s x %d  %s\n", r.Exercise, r.Display,
			strconv.FormatFloat(r.Weight, 'f', -1, 64), r.Reps, r.Date.Format("2006-01-02"))
	}
	return nil
}
