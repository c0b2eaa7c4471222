// SPDX-License-Identifier: MIT

// Package cli implements the braidnf command: it reads a braid or a
// factorization, applies the requested operations and prints the normal form
// with its complexity measures.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/garside/braid"
	"github.com/katalvlaran/garside/factorization"
)

// Config is the parsed command line.
type Config struct {
	Width    int
	Artin    []int
	Band     []string
	Braid    string
	File     string
	Random   int
	Seed     int64
	Power    int
	Invert   bool
	Twists   []int
	Search   string
	Bridge   string
	Measure  string
	Steps    int
	YAML     bool
	Color    string
	LogLevel string
}

// Search modes accepted by --search.
const (
	SearchRandom   = "random"
	SearchWeighted = "weighted"
)

// Run executes braidnf with args (without the program name). Reports go to
// stdout; logs and usage go to stderr. The returned error, if any, has an
// ExitCode method.
func Run(args []string, stdout, stderr io.Writer) error {
	cfg, flagSet, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}
	if flagSet.NArg() > 0 {
		return usagef("unexpected argument: %s", flagSet.Arg(0))
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	pal, err := newPalette(cfg.Color, stdout)
	if err != nil {
		return err
	}

	r := &runner{cfg: cfg, out: stdout, log: logger, pal: pal}
	if cfg.File != "" {
		return r.factorization()
	}

	return r.braid()
}

// parseFlags fills a Config from args.
func parseFlags(args []string, stderr io.Writer) (Config, *pflag.FlagSet, error) {
	var cfg Config
	flagSet := pflag.NewFlagSet("braidnf", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.IntVarP(&cfg.Width, "width", "n", 0, "number of strands")
	flagSet.IntSliceVar(&cfg.Artin, "artin", nil, "Artin word, e.g. 1,2,-1 (σ1 σ2 σ1⁻¹)")
	flagSet.StringSliceVar(&cfg.Band, "band", nil, "band word as t:s pairs, e.g. 2:1,4:3")
	flagSet.StringVar(&cfg.Braid, "braid", "", `canonical string, e.g. "[3] D^(1) * [0, 2, 1]"`)
	flagSet.StringVar(&cfg.File, "file", "", "YAML factorization document")
	flagSet.IntVar(&cfg.Random, "random", 0, "random Artin word of this length")
	flagSet.Int64Var(&cfg.Seed, "seed", 0, "seed for --random and --search (0 = default seed)")
	flagSet.IntVar(&cfg.Power, "power", 1, "raise the braid to this power")
	flagSet.BoolVar(&cfg.Invert, "invert", false, "invert the braid (after --power)")
	flagSet.IntSliceVar(&cfg.Twists, "twist", nil, "generator to multiply on the right, or Hurwitz move with --file; repeatable")
	flagSet.StringVar(&cfg.Search, "search", "", "with --file: simplify by Hurwitz moves (random|weighted)")
	flagSet.StringVar(&cfg.Bridge, "bridge", "", "with --file: search for Hurwitz moves joining it to this YAML factorization")
	flagSet.StringVar(&cfg.Measure, "measure", "mixed", "complexity measure (canonical|transpositions|mixed)")
	flagSet.IntVar(&cfg.Steps, "steps", factorization.DefaultMaxSteps, "search step limit")
	flagSet.BoolVar(&cfg.YAML, "yaml", false, "with --file: print the resulting factorization as YAML")
	flagSet.StringVar(&cfg.Color, "color", ColorAuto, "colour output (auto|always|never)")
	flagSet.StringVar(&cfg.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "braidnf: left-greedy normal form of braids.\n\nUsage:\n  braidnf -n N --artin 1,2,-1 [--power P] [--invert] [--twist I]...\n  braidnf --braid \"[n] D^(p) * [..]\"\n  braidnf --file doc.yaml [--twist I]... [--search weighted] [--bridge other.yaml]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cfg, flagSet, err
		}

		return cfg, flagSet, usagef("%v", err)
	}

	return cfg, flagSet, nil
}

// newLogger builds a text slog.Logger on w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, usagef("--log-level: %v", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// runner carries the state of one invocation.
type runner struct {
	cfg Config
	out io.Writer
	log *slog.Logger
	pal palette
}

// braid handles the single-braid modes.
func (r *runner) braid() error {
	b, err := r.input()
	if err != nil {
		return err
	}
	r.log.Debug("input", "width", b.Width(), "power", b.Power(), "factors", b.Len())

	if r.cfg.Power != 1 {
		b = b.Pow(r.cfg.Power)
		r.log.Debug("power", "exponent", r.cfg.Power, "factors", b.Len())
	}
	if r.cfg.Invert {
		b = b.Inverse()
		r.log.Debug("inverse", "factors", b.Len())
	}
	for _, i := range r.cfg.Twists {
		if b, err = b.Twist(i); err != nil {
			return failure(err)
		}
		r.log.Debug("twist", "generator", i, "factors", b.Len())
	}

	r.printBraid(b)
	r.printf("p", "%d", b.Power())
	r.printf("k", "%d", b.Len())
	r.printf("canonical", "%d", b.CanonicalLength())
	r.printf("transpositions", "%d", b.NumTranspositions())
	r.printf("mixed", "%d", b.NumMixedTranspositions())
	r.printf("permutation", "%v", b.Permutation())

	return nil
}

// input builds the braid named by exactly one of the input flags.
func (r *runner) input() (*braid.Braid, error) {
	c := r.cfg
	sources := 0
	for _, set := range []bool{c.Artin != nil, c.Band != nil, c.Braid != "", c.Random > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, usagef("exactly one of --artin, --band, --braid, --random or --file is required")
	}
	if c.Search != "" || c.Bridge != "" || c.YAML {
		return nil, usagef("--search, --bridge and --yaml need --file")
	}
	if c.Braid == "" && c.Width < 1 {
		return nil, usagef("--width must be at least 1")
	}

	var (
		b   *braid.Braid
		err error
	)
	switch {
	case c.Artin != nil:
		b, err = braid.FromArtin(c.Artin, c.Width)
	case c.Band != nil:
		var pairs [][2]int
		if pairs, err = parseBand(c.Band); err != nil {
			return nil, err
		}
		b, err = braid.FromBand(pairs, c.Width)
	case c.Random > 0:
		b, err = braid.Random(c.Width, c.Random, braid.WithSeed(c.Seed))
	default:
		b, err = braid.Parse(c.Braid)
		if err == nil && c.Width != 0 && b.Width() != c.Width {
			err = fmt.Errorf("--braid has width %d, --width is %d: %w", b.Width(), c.Width, braid.ErrIncompatibleWidth)
		}
	}
	if err != nil {
		return nil, failure(err)
	}

	return b, nil
}

// parseBand reads "t:s" pairs.
func parseBand(items []string) ([][2]int, error) {
	pairs := make([][2]int, len(items))
	for i, item := range items {
		ts := strings.Split(strings.TrimSpace(item), ":")
		if len(ts) != 2 {
			return nil, usagef("--band item %q is not t:s", item)
		}
		t, errT := strconv.Atoi(ts[0])
		s, errS := strconv.Atoi(ts[1])
		if errT != nil || errS != nil {
			return nil, usagef("--band item %q is not t:s", item)
		}
		pairs[i] = [2]int{t, s}
	}

	return pairs, nil
}

// factorization handles --file.
func (r *runner) factorization() error {
	c := r.cfg
	if c.Artin != nil || c.Band != nil || c.Braid != "" || c.Random > 0 {
		return usagef("--file cannot be combined with another input")
	}
	if c.Power != 1 || c.Invert {
		return usagef("--power and --invert apply to a single braid, not --file")
	}
	measure, err := factorization.ParseMeasure(c.Measure)
	if err != nil {
		return usagef("--measure: %v", err)
	}

	f, err := factorization.LoadFile(c.File)
	if err != nil {
		return failure(err)
	}
	r.log.Debug("loaded", "file", c.File, "width", f.Width(), "braids", f.Len())

	if f, err = f.Apply(c.Twists...); err != nil {
		return failure(err)
	}
	distance := -1
	switch {
	case c.Bridge != "":
		if f, distance, err = r.bridge(f, measure); err != nil {
			return err
		}
	case c.Search != "":
		if f, err = r.search(f, measure); err != nil {
			return err
		}
	}

	if c.YAML {
		if err := f.Encode(r.out); err != nil {
			return failure(err)
		}

		return nil
	}

	for _, b := range f.Braids() {
		r.printBraid(b)
	}
	p := f.Product()
	fmt.Fprint(r.out, r.pal.key("%s=", "product"))
	r.printBraid(p)
	r.printf("braids", "%d", f.Len())
	r.printf("canonical", "%d", f.Complexity(factorization.MeasureCanonical))
	r.printf("transpositions", "%d", f.Complexity(factorization.MeasureTranspositions))
	r.printf("mixed", "%d", f.Complexity(factorization.MeasureMixed))
	r.printf("components", "%d", f.NumComponents())
	r.printf("boundary", "%d", f.NumBoundaryComponents())
	if distance >= 0 {
		r.printf("distance", "%d", distance)
	}

	return nil
}

// searchOptions maps the flags onto factorization.SearchOptions.
func (r *runner) searchOptions(m factorization.Measure) factorization.SearchOptions {
	opts := factorization.DefaultSearchOptions()
	opts.Ctx = context.Background()
	opts.Measure = m
	opts.MaxSteps = r.cfg.Steps
	opts.Seed = r.cfg.Seed

	return opts
}

// searcher resolves --search; an empty value selects the weighted search.
func (r *runner) searcher() (factorization.Searcher, error) {
	switch r.cfg.Search {
	case SearchRandom:
		return factorization.RandomSearch, nil
	case SearchWeighted, "":
		return factorization.WeightedSearch, nil
	}

	return nil, usagef("--search must be %s or %s, got %q", SearchRandom, SearchWeighted, r.cfg.Search)
}

// search runs the selected Hurwitz search.
func (r *runner) search(f *factorization.Factorization, m factorization.Measure) (*factorization.Factorization, error) {
	search, err := r.searcher()
	if err != nil {
		return nil, err
	}
	res, err := search(f, r.searchOptions(m))
	if err != nil {
		return nil, failure(err)
	}
	r.log.Info("search finished",
		"mode", r.cfg.Search,
		"measure", m.String(),
		"from", f.Complexity(m),
		"to", res.Complexity,
		"steps", res.Steps,
		"moves", res.Moves,
	)

	return res.Best, nil
}

// bridge looks for moves joining f and the --bridge factorization. It
// returns the best factorization reached and its distance to the other end.
func (r *runner) bridge(f *factorization.Factorization, m factorization.Measure) (*factorization.Factorization, int, error) {
	search, err := r.searcher()
	if err != nil {
		return nil, 0, err
	}
	other, err := factorization.LoadFile(r.cfg.Bridge)
	if err != nil {
		return nil, 0, failure(err)
	}

	res, err := factorization.Bridge(f, other, search, r.searchOptions(m))
	if err != nil {
		return nil, 0, failure(err)
	}
	moved := "bridge"
	if res.Source == f {
		moved = "file"
	}
	r.log.Info("bridge finished",
		"mode", r.cfg.Search,
		"measure", m.String(),
		"moved", moved,
		"distance", res.Complexity,
		"steps", res.Steps,
		"moves", res.Moves,
	)

	return res.Best, res.Complexity, nil
}

// printBraid writes b's canonical string with the D-power and factors coloured.
func (r *runner) printBraid(b *braid.Braid) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d] %s", b.Width(), r.pal.power("D^(%d)", b.Power()))
	for _, f := range b.Factors() {
		sb.WriteString(" * ")
		sb.WriteString(r.pal.factor("%s", f.String()))
	}
	fmt.Fprintln(r.out, sb.String())
}

// printf writes one key=value line.
func (r *runner) printf(key, format string, args ...any) {
	fmt.Fprintf(r.out, "%s%s\n", r.pal.key("%s=", key), fmt.Sprintf(format, args...))
}
