package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degdiam/internal/config"
	"github.com/katalvlaran/degdiam/metrics"
	"github.com/katalvlaran/degdiam/report"
	"github.com/katalvlaran/degdiam/search"
	"github.com/katalvlaran/degdiam/seed"
)

// flags holds raw command-line values; only flags the user set override
// the run file.
type flags struct {
	configPath string
	logLevel   string
	seedName   string
	size       int
	maxDegree  int
	report     string
	metrics    bool
	check      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:          "ddsearch",
		Short:        "Enumerate one-vertex extensions of small graphs under a degree bound",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "YAML run file")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&f.seedName, "seed", "sample", "base graph seed, see the seeds command")
	root.PersistentFlags().IntVar(&f.size, "size", 0, "seed vertex count (ignored by fixed seeds)")
	root.PersistentFlags().IntVar(&f.maxDegree, "max-degree", search.DefaultMaxDegree, "maximum vertex degree")

	run := &cobra.Command{
		Use:   "run",
		Short: "Extend the base graph by one vertex in every admissible way",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd, f)
			if err != nil {
				return err
			}

			return runSearch(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
	run.Flags().StringVar(&f.report, "report", config.ReportBest, "candidate output: best, all, none")
	run.Flags().BoolVar(&f.metrics, "metrics", false, "print Prometheus metric totals after the search")
	run.Flags().BoolVar(&f.check, "check", false, "validate graph invariants at every search node")

	count := &cobra.Command{
		Use:   "count",
		Short: "Print how many candidates a run would report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd, f)
			if err != nil {
				return err
			}
			base, err := cfg.Base()
			if err != nil {
				return err
			}
			if base.MaxDegree() > cfg.MaxDegree {
				return fmt.Errorf("base max degree %d > %d: %w", base.MaxDegree(), cfg.MaxDegree, search.ErrDegreeBound)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), search.CountExtensions(base, cfg.MaxDegree))

			return err
		},
	}

	seeds := &cobra.Command{
		Use:   "seeds",
		Short: "List built-in base graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range seed.Names() {
				kind := "sized"
				if seed.Fixed(name) {
					kind = "fixed"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, kind); err != nil {
					return err
				}
			}

			return nil
		},
	}

	root.AddCommand(run, count, seeds)

	return root
}

// resolve loads the run file (or the defaults) and applies explicitly set flags.
func resolve(cmd *cobra.Command, f *flags) (config.RunConfig, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.RunConfig{}, err
		}
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("seed") {
		cfg.Seed.Name = f.seedName
		cfg.Vertices, cfg.Edges = 0, nil
	}
	if changed("size") {
		cfg.Seed.Size = f.size
	}
	if changed("max-degree") {
		cfg.MaxDegree = f.maxDegree
	}
	if changed("report") {
		cfg.Report = strings.ToLower(f.report)
	}
	if changed("metrics") {
		cfg.Metrics = f.metrics
	}
	if changed("check") {
		cfg.Check = f.check
	}

	if err := cfg.Validate(); err != nil {
		return config.RunConfig{}, err
	}

	return cfg, nil
}

// runSearch builds the base graph, wires reporters and runs one search.
func runSearch(stdout, stderr io.Writer, cfg config.RunConfig) error {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	base, err := cfg.Base()
	if err != nil {
		return err
	}
	logger.Info("base graph",
		"vertices", base.N(),
		"edges", base.Edges(),
		"max_degree", base.MaxDegree(),
		"diameter", base.Diameter(),
		"expected_candidates", search.CountExtensions(base, cfg.MaxDegree))

	var (
		best     report.Best
		text     *report.Text
		recorder *metrics.Recorder
	)
	reporters := []search.Reporter{&best, report.NewLog(logger)}
	if cfg.Report == config.ReportAll {
		text = report.NewText(stdout)
		reporters = append(reporters, text)
	}
	if cfg.Metrics {
		recorder = metrics.NewRecorder()
		reporters = append(reporters, recorder)
	}

	opts := []search.Option{
		search.WithMaxDegree(cfg.MaxDegree),
		search.WithReporter(report.Multi(reporters...)),
		search.WithLogger(logger),
	}
	if cfg.Check {
		opts = append(opts, search.WithInvariantChecks())
	}

	stats, err := search.Extend(base, opts...)
	if err != nil {
		return err
	}
	if text != nil {
		if err = text.Flush(); err != nil {
			return fmt.Errorf("write candidates: %w", err)
		}
	}

	if cfg.Report != config.ReportNone {
		if err = writeBest(stdout, &best); err != nil {
			return err
		}
	}
	if recorder != nil {
		recorder.Observe(stats)
		if err = recorder.WriteSummary(stdout); err != nil {
			return err
		}
	}

	return nil
}

func writeBest(w io.Writer, best *report.Best) error {
	c, ok := best.Candidate()
	if !ok {
		_, err := fmt.Fprintln(w, "no candidate: every base vertex is at the degree bound")
		return err
	}
	if _, err := fmt.Fprintf(w, "best of %d candidates: attach to %v\n", best.Seen(), c.Neighbors); err != nil {
		return err
	}

	return report.WriteCandidate(w, c)
}
