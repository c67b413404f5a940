// Package cli implements the scout command-line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/hoopscout/internal/adapters/http/api"
	"github.com/okian/hoopscout/internal/adapters/mq/queue"
	"github.com/okian/hoopscout/internal/adapters/mq/worker"
	service "github.com/okian/hoopscout/internal/app"
	"github.com/okian/hoopscout/internal/config"
	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/report"
	"github.com/okian/hoopscout/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// ErrBatchFailed is returned when at least one report in a batch failed.
var ErrBatchFailed = errors.New("batch incomplete")

// Calculator is the set of operations the commands run, either in-process
// or against a server.
type Calculator interface {
	api.Dependencies
	Template(ctx context.Context) (string, error)
}

type localCalculator struct {
	*service.Service
}

func (localCalculator) Template(context.Context) (string, error) {
	return report.Placeholder, nil
}

type globalFlags struct {
	url      string
	json     bool
	timeout  time.Duration
	logLevel string
}

type app struct {
	flags globalFlags
	calc  Calculator
}

// NewRootCmd builds the scout command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "scout",
		Short: "Basketball scouting calculators",
		Long: `scout rates basketball prospects from the command line.

Calculations run in-process using the same configuration as the server
(SCOUT_CONFIG and SCOUT_* environment variables), or against a running
hoopscout server when --url is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.url, "url", "", "base URL of a hoopscout server (default: compute locally)")
	pf.BoolVar(&a.flags.json, "json", false, "print results as JSON")
	pf.DurationVar(&a.flags.timeout, "timeout", defaultTimeout, "request timeout in remote mode")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newAthleticismCmd(a),
		newProspectCmd(a),
		newReportCmd(a),
		newTemplateCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := logger.Init(logger.WithOutput(cmd.ErrOrStderr())); err != nil {
		return err
	}
	if err := logger.SetLevelString(a.flags.logLevel); err != nil {
		return err
	}

	if a.flags.url != "" {
		a.calc = NewClient(a.flags.url, a.flags.timeout)
		return nil
	}

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	svc := service.New(
		service.WithLogger(logger.Named("scout")),
		service.WithBands(cfg.Bands()),
		service.WithWeights(cfg.Weights()),
	)
	a.calc = localCalculator{Service: svc}
	return nil
}

func (a *app) renderer(cmd *cobra.Command) *renderer {
	return newRenderer(cmd.OutOrStdout(), a.flags.json)
}

func newAthleticismCmd(a *app) *cobra.Command {
	var in model.AthleticismInput
	cmd := &cobra.Command{
		Use:   "athleticism",
		Short: "Convert speed, agility and vertical test scores to percentiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.calc.Athleticism(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.renderer(cmd).athleticism(res)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.Speed, "speed", 0, "speed test score (45-95)")
	f.Float64Var(&in.Agility, "agility", 0, "agility test score (45-95)")
	f.Float64Var(&in.Vertical, "vertical", 0, "vertical test score (50-99)")
	for _, name := range []string{"speed", "agility", "vertical"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newProspectCmd(a *app) *cobra.Command {
	var (
		age                   float64
		height, wingspan, pos string
	)
	cmd := &cobra.Command{
		Use:     "prospect",
		Short:   "Rate a prospect from age, height, wingspan and position",
		Example: `  scout prospect --age 19 --height "6'5" --wingspan "6'10.5" --position SG`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := prospectInput(age, height, wingspan, pos)
			if err != nil {
				return err
			}
			rating, err := a.calc.Prospect(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.renderer(cmd).prospect(rating)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&age, "age", 0, "age in years (17-30)")
	f.StringVar(&height, "height", "", `height without shoes, feet'inches (e.g. 6'5)`)
	f.StringVar(&wingspan, "wingspan", "", `wingspan, feet'inches (e.g. 6'10.5)`)
	f.StringVar(&pos, "position", "", "position (PG, SG, SF, PF, C)")
	for _, name := range []string{"age", "height", "wingspan", "position"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func prospectInput(age float64, height, wingspan, pos string) (model.ProspectInput, error) {
	h, err := parseLength("height", height)
	if err != nil {
		return model.ProspectInput{}, err
	}
	w, err := parseLength("wingspan", wingspan)
	if err != nil {
		return model.ProspectInput{}, err
	}
	p, err := model.ParsePosition(pos)
	if err != nil {
		return model.ProspectInput{}, err
	}
	return model.ProspectInput{Age: age, Height: h, Wingspan: w, Position: p}, nil
}

func newReportCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "report [file...]",
		Short: "Average the ratings in one or more scouting reports",
		Long: `Average the ratings in a markdown scouting report.

The report is read from file, or from stdin when file is omitted or "-".
Several files are averaged concurrently and printed in the order given.
Run "scout template" for the expected layout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return a.reportBatch(cmd, args, workers)
			}
			text, err := readReport(cmd, args)
			if err != nil {
				return err
			}
			avg, err := a.calc.Report(cmd.Context(), text)
			if err != nil {
				return err
			}
			return a.renderer(cmd).report(avg)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "reports averaged in parallel when several files are given")
	return cmd
}

func (a *app) reportBatch(cmd *cobra.Command, paths []string, workers int) error {
	jobs := make([]queue.Job, 0, len(paths))
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read report: %w", err)
		}
		jobs = append(jobs, queue.Job{Source: path, Text: string(b)})
	}

	results := worker.Process(cmd.Context(), a.calc, jobs, workers)
	if err := a.renderer(cmd).batch(results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", r.Source, describe(r.Err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d reports failed", ErrBatchFailed, failed, len(results))
	}
	return nil
}

func readReport(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(b), nil
}

func newTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the scouting report template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := a.calc.Template(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderer(cmd).text(text)
		},
	}
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", describe(err))
		return exitCode(err)
	}
	return 0
}

// describe turns domain failures into the messages a scout should see.
func describe(err error) string {
	switch {
	case errors.Is(err, report.ErrParseReport):
		return "invalid report format: " + err.Error()
	case errors.Is(err, report.ErrNoRatings):
		return "no valid numeric data found in the scouting report"
	}
	return err.Error()
}

func exitCode(err error) int {
	if errors.Is(err, model.ErrInvalidInput) ||
		errors.Is(err, report.ErrParseReport) ||
		errors.Is(err, report.ErrNoRatings) {
		return 2
	}
	return 1
}
