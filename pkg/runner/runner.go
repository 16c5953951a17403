package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdstyle/pkg/lint"
)

// Runner orchestrates checking many files through a lint.Engine.
type Runner struct {
	Engine *lint.Engine
}

// New creates a Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and checks them concurrently.
// Outcomes come back in discovery order (sorted by path) regardless of
// which worker finished first.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Each worker writes to its own slot, so ordering by path survives
	// concurrency without extra bookkeeping.
	outcomes := make([]FileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			outcomes[i] = r.checkOne(gctx, path, opts)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result, nil
}

// checkOne reads and checks a single file.
func (r *Runner) checkOne(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Err = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	fr, err := r.Engine.CheckFile(ctx, path, content, opts.Config)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Result = fr
	return outcome
}
