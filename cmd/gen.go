package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jakub-m/sudoku-generator/internal/config"
	"github.com/jakub-m/sudoku-generator/internal/driller"
	"github.com/jakub-m/sudoku-generator/internal/puzzle"
	"github.com/jakub-m/sudoku-generator/internal/render"
	"github.com/jakub-m/sudoku-generator/internal/solver"
	"github.com/jakub-m/sudoku-generator/internal/template"
)

var (
	templateFile string
	symbolsFlag  string
	cutoff       float64
	seed         int64
	numPuzzles   int
	outputFile   string
	configFile   string
	letters      bool
)

var heading = color.New(color.FgCyan, color.Bold)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles",
		Long: `Generate one or more puzzles from a board template.

Without a template file the standard 9x9 board is used. Drilling stops once
the fraction of filled fields drops to the cutoff; a low cutoff on a large
board may search for a very long time and must be interrupted externally.

Examples:
  sudoku-generator gen
  sudoku-generator gen --cutoff 0.4 --seed 7
  sudoku-generator gen -t board.txt -n 4 -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&templateFile, "template", "t", "", "Path to template file")
	genCmd.Flags().StringVar(&symbolsFlag, "symbols", "", "Symbol alphabet, one glyph per symbol")
	genCmd.Flags().Float64VarP(&cutoff, "cutoff", "c", 0.5, "Fill-ratio cutoff in (0,1] at which drilling stops")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (.html or .json; console otherwise)")
	genCmd.Flags().StringVar(&configFile, "config", "", "Path to YAML run configuration")
	genCmd.Flags().BoolVar(&letters, "letters", false, "Display symbols as capital letters")

	rootCmd.AddCommand(genCmd)
}

// resolveConfig merges the optional config file with the flags; flags that
// were set explicitly win over file values.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("template") {
		cfg.TemplateFile = templateFile
		cfg.Template = ""
	}
	if flags.Changed("symbols") {
		cfg.Symbols = symbolsFlag
	}
	if flags.Changed("cutoff") || cfg.Cutoff == 0 {
		cfg.Cutoff = cutoff
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("number") || cfg.Count == 0 {
		cfg.Count = numPuzzles
	}
	if flags.Changed("output") {
		cfg.Output = outputFile
	}
	if flags.Changed("letters") {
		cfg.Letters = letters
	}
	return cfg, nil
}

// resolveTemplate picks the template text and symbol alphabet from the
// configuration, falling back to the standard 9x9 preset.
func resolveTemplate(cfg *config.Config) (text string, symbols []rune, err error) {
	switch {
	case cfg.Template != "":
		text = cfg.Template
		symbols = []rune(template.Standard9x9Symbols)
	case cfg.TemplateFile != "":
		text, symbols, err = template.LoadFile(cfg.TemplateFile)
		if err != nil {
			return "", nil, err
		}
	default:
		text = template.Standard9x9
		symbols = []rune(template.Standard9x9Symbols)
	}
	if cfg.Symbols != "" {
		symbols = []rune(cfg.Symbols)
	}
	return text, symbols, nil
}

func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	text, symbols, err := resolveTemplate(cfg)
	if err != nil {
		return err
	}
	grid, err := template.Parse(text)
	if err != nil {
		return err
	}
	empty, err := grid.Compile(symbols)
	if err != nil {
		return err
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))
	logger.Info("compiled template",
		zap.Int("height", empty.Height()),
		zap.Int("width", empty.Width()),
		zap.Int("segments", len(empty.Segments())),
		zap.Int("fields", empty.InPlayCount()),
		zap.Int64("seed", runSeed))

	d, err := driller.New(cfg.Cutoff, rng, logger)
	if err != nil {
		return err
	}

	mapper := render.Identity
	if cfg.Letters {
		mapper = render.Letters(empty.Symbols())
	}

	var pages []render.Page
	var records []*puzzle.Puzzle
	for i := 0; i < cfg.Count; i++ {
		logger.Info("solving template", zap.Int("puzzle", i+1))
		search := solver.NewSearch(empty, rng)
		solution, ok := search.Next()
		if !ok {
			return errors.New("template has no solution")
		}

		logger.Info("drilling solution", zap.Int("puzzle", i+1))
		drilled, err := d.Drill(solution)
		if err != nil {
			return err
		}
		logger.Info("drilled puzzle",
			zap.Int("puzzle", i+1),
			zap.Int("filled", drilled.FilledCount()),
			zap.Float64("fillRatio", drilled.FillRatio()))

		switch outputKind(cfg.Output) {
		case outputHTML:
			pages = append(pages, render.Page{
				Title:    fmt.Sprintf("Puzzle #%d", i+1),
				Puzzle:   drilled,
				Solution: solution,
			})
		case outputJSON:
			records = append(records, puzzle.New(text, drilled, solution, runSeed))
		default:
			heading.Printf("Puzzle #%d (%d of %d fields filled)\n", i+1, drilled.FilledCount(), drilled.InPlayCount())
			fmt.Println(drilled)
			fmt.Println("\nSolution:")
			fmt.Println(solution)
			fmt.Println()
		}
	}

	switch outputKind(cfg.Output) {
	case outputHTML:
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		if err := render.HTML(f, grid, pages, mapper); err != nil {
			return fmt.Errorf("write HTML: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", cfg.Count, cfg.Output)
	case outputJSON:
		if err := puzzle.Save(cfg.Output, records); err != nil {
			return fmt.Errorf("write puzzles: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", cfg.Count, cfg.Output)
	}
	return nil
}

type outKind int

const (
	outputConsole outKind = iota
	outputHTML
	outputJSON
)

func outputKind(path string) outKind {
	switch filepath.Ext(path) {
	case ".html":
		return outputHTML
	case ".json":
		return outputJSON
	default:
		return outputConsole
	}
}
