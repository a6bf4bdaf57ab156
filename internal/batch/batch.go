// Package batch solves many triangle files concurrently.
//
// Each job parses its own Triangle, so workers share no mutable state and
// the in-place memory mode stays safe under concurrency.
package batch

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trisum"
	"github.com/katalvlaran/trisum/pathsum"
)

// Result is the outcome for one file. Err is per-file and never aborts the batch.
type Result struct {
	File    string
	Result  pathsum.Result
	Err     error
	Elapsed time.Duration
}

// Runner fans files out to at most Workers goroutines.
type Runner struct {
	Workers int
	Options []pathsum.Option
	Log     zerolog.Logger
}

// Run solves files and returns results in input order. The returned error
// is non-nil only if ctx is cancelled; file failures live in Result.Err.
func (r *Runner) Run(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res, err := trisum.Solve(f, r.Options...)
			results[i] = Result{File: f, Result: res, Err: err, Elapsed: time.Since(start)}

			ev := r.Log.Debug()
			if err != nil {
				ev = r.Log.Warn().Err(err)
			}
			ev.Str("file", f).Int64("sum", res.Sum).Dur("elapsed", results[i].Elapsed).Msg("solved")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Failed counts results with a per-file error.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
