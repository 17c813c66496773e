package audit

import (
	"log/slog"

	"github.com/nao1215/stkscan/internal/model"
)

// Loader reads a world file into its decoded shape.
type Loader interface {
	Load(path string) (*model.World, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (*model.World, error)

// Load implements Loader.
func (f LoaderFunc) Load(path string) (*model.World, error) {
	return f(path)
}

// Runner audits a list of worlds one after another.
// Worlds share nothing but the read-only palette table inside the scanner.
type Runner struct {
	loader   Loader
	scanner  *Scanner
	observer Observer
	logger   *slog.Logger

	// onReport is called after each world, failed or not.
	onReport func(*model.WorldReport)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerObserver sets the receiver of world start and failure events.
// It should be the same observer the scanner reports to.
func WithRunnerObserver(o Observer) RunnerOption {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithRunnerLogger sets a custom logger for the runner.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithReportCallback registers fn to receive each report as soon as its
// world is done.
func WithReportCallback(fn func(*model.WorldReport)) RunnerOption {
	return func(r *Runner) {
		r.onReport = fn
	}
}

// NewRunner creates a Runner reading worlds through loader.
func NewRunner(loader Loader, scanner *Scanner, opts ...RunnerOption) *Runner {
	r := &Runner{
		loader:   loader,
		scanner:  scanner,
		observer: NopObserver{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.scanner == nil {
		r.scanner = NewScanner(nil, WithObserver(r.observer), WithLogger(r.logger))
	}

	return r
}

// Run audits every target in order and returns one report per target.
// A world that cannot be read gets a report with Error set and the run
// moves on to the next target.
func (r *Runner) Run(targets []model.Target) []*model.WorldReport {
	reports := make([]*model.WorldReport, 0, len(targets))

	for _, target := range targets {
		report := r.runOne(target)
		reports = append(reports, report)
		if r.onReport != nil {
			r.onReport(report)
		}
	}

	return reports
}

// runOne loads and aggregates a single world.
func (r *Runner) runOne(target model.Target) *model.WorldReport {
	r.observer.WorldStarted(target)
	r.logger.Info("checking world", "world", target.Name, "path", target.Path)

	world, err := r.loader.Load(target.Path)
	if err != nil {
		r.logger.Debug("failed to read world",
			"world", target.Name,
			"path", target.Path,
			"error", err,
		)
		r.observer.WorldFailed(target, err)

		report := model.NewWorldReport(target.Name)
		report.Path = target.Path
		report.Error = err.Error()
		return report
	}

	report := r.scanner.Aggregate(target.Name, world)
	report.Path = target.Path
	return report
}
