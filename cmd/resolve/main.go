// Command resolve is the command-line front end for the resolution
// theorem prover: it wires a problem encoding or config file to the
// kernel, logs the run, and emits a report.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resolvekanren/resolvekanren/internal/config"
	"github.com/resolvekanren/resolvekanren/internal/logicerr"
	"github.com/resolvekanren/resolvekanren/internal/obslog"
	"github.com/resolvekanren/resolvekanren/internal/problems"
	"github.com/resolvekanren/resolvekanren/internal/report"
	"github.com/resolvekanren/resolvekanren/internal/runner"
)

var (
	verbose              bool
	configPath           string
	budget               int
	tautologyElimination bool
	canonicalSort        bool
	jsonOut              string
	textOut              string
	logger               *zap.Logger
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resolve",
		Short: "A first-order resolution theorem prover",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := obslog.New(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().IntVar(&budget, "budget", 0, "override the step budget")
	root.PersistentFlags().BoolVar(&tautologyElimination, "tautology-elimination", true, "override tautology elimination")
	root.PersistentFlags().BoolVar(&canonicalSort, "canonical-sort", true, "override canonical duplicate-suppression sorting")

	root.AddCommand(runCmd(), reportCmd(), batchCmd())
	return root
}

// loadConfig starts from the YAML config file (or the kernel's own
// defaults when none is given) and applies any flag the caller actually
// set on the command line on top, per SPEC_FULL.md's "a YAML file (or
// flags)" configuration surface.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath == "" {
		cfg = config.Default()
	} else {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("budget") {
		cfg.Budget = budget
	}
	if cmd.Flags().Changed("tautology-elimination") {
		cfg.TautologyElimination = tautologyElimination
	}
	if cmd.Flags().Changed("canonical-sort") {
		cfg.CanonicalSort = canonicalSort
	}
	return cfg, nil
}

// runProblem loads a named problem encoding, runs it to completion with
// the given config, and returns the log holding the resulting experiment.
// Both "run" and "report" are thin wrappers around this: the former
// prints a one-line summary, the latter renders the full experiment.
func runProblem(name string, cfg config.Config) (*report.Log, report.Experiment, error) {
	clauses, ok := problems.ByName(name)
	if !ok {
		return nil, report.Experiment{}, fmt.Errorf("%w: %s", logicerr.ErrUnknownProblem, name)
	}
	if len(clauses) == 0 {
		return nil, report.Experiment{}, logicerr.ErrEmptyProblem
	}
	if err := logicerr.Validate(clauses...); err != nil {
		logger.Warn("input validation failed", zap.Error(err))
	}

	l := report.NewLog()
	start := time.Now()
	exp := l.Run(name, name, clauses, cfg.EngineConfig(), start, time.Now(), obslog.StepObserver(logger))
	obslog.LogOutcome(logger, exp.Outcome, exp.Statistics)
	return l, exp, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "run [problem]",
		Short:     "Run a single named problem encoding to completion",
		Args:      cobra.ExactArgs(1),
		ValidArgs: problems.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			_, exp, err := runProblem(args[0], cfg)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s (%d steps, %d clauses)\n",
				exp.ProblemName, exp.Outcome, exp.Statistics.TotalSteps, exp.Statistics.TotalClauses)
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:       "report [problem]",
		Short:     "Run a problem and render its full experiment report",
		Args:      cobra.ExactArgs(1),
		ValidArgs: problems.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			l, _, err := runProblem(args[0], cfg)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				data, err := l.JSON()
				if err != nil {
					return fmt.Errorf("rendering JSON report: %w", err)
				}
				fmt.Println(string(data))
			case "text", "":
				fmt.Print(l.Text())
			default:
				return fmt.Errorf("unknown report format %q (want json or text)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "report format: json or text")
	return cmd
}

func batchCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch [problem...]",
		Short: "Run several problem encodings concurrently and report on all of them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			jobs := make([]runner.Job, 0, len(args))
			for _, name := range args {
				clauses, ok := problems.ByName(name)
				if !ok {
					return fmt.Errorf("%w: %s", logicerr.ErrUnknownProblem, name)
				}
				jobs = append(jobs, runner.Job{
					Name:        name,
					Description: name,
					Clauses:     clauses,
					Config:      cfg.EngineConfig(),
				})
			}

			r := runner.New(workers)
			start := time.Now()
			results, err := r.Run(context.Background(), jobs)
			if err != nil {
				logger.Error("batch run did not complete cleanly", zap.Error(err))
			}

			l := report.NewLog()
			for _, res := range results {
				clauseStrs := make([]string, len(res.Job.Clauses))
				for i, c := range res.Job.Clauses {
					clauseStrs[i] = c.String()
				}
				end := start.Add(res.Duration)
				l.Record(res.Job.Name, res.Job.Description, clauseStrs, res.History, res.Outcome.String(), res.Statistics, start, end)
			}

			logger.Info("batch complete", zap.String("stats", r.Stats().String()))
			return emitReport(l)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default: number of CPUs)")
	cmd.Flags().StringVar(&jsonOut, "json", "", "write a JSON report to this path")
	cmd.Flags().StringVar(&textOut, "text", "", "write a text report to this path")
	return cmd
}

func emitReport(l *report.Log) error {
	if textOut != "" {
		if err := os.WriteFile(textOut, []byte(l.Text()), 0o644); err != nil {
			return fmt.Errorf("writing text report: %w", err)
		}
	}
	if jsonOut != "" {
		data, err := l.JSON()
		if err != nil {
			return fmt.Errorf("rendering JSON report: %w", err)
		}
		if err := os.WriteFile(jsonOut, data, 0o644); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}
	}
	if textOut == "" && jsonOut == "" {
		fmt.Print(l.Text())
	}
	return nil
}
