package scenario

import (
	"context"
	"runtime"

	"github.com/osuushi/gjk"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Report struct {
	Case Case
	Got  bool
	Err  error
}

// A case passes when it produced the expected verdict, or when it expected an
// error and got one.
func (r Report) Passed() bool {
	if r.Case.Expect == nil {
		return r.Err != nil
	}
	return r.Err == nil && r.Got == *r.Case.Expect
}

type Runner struct {
	Logger *zap.Logger
	// Maximum cases checked at once. Zero means GOMAXPROCS.
	Concurrency int
}

// Check every case and report in file order. Cases are independent, so they
// run concurrently. Only context cancellation stops the run early; individual
// case failures are reported, not returned.
func (r *Runner) Run(ctx context.Context, f *File) ([]Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	reports := make([]Report, len(f.Cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range f.Cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = check(c, f.Options(), logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func check(c Case, opts gjk.Options, logger *zap.Logger) Report {
	report := Report{Case: c}
	polygons, err := c.Polygons()
	if err != nil {
		report.Err = err
		return report
	}
	opts.Logger = logger.With(zap.String("case", c.Name))
	report.Got, report.Err = gjk.IntersectWithOptions(polygons[0], polygons[1], opts)

	fields := []zap.Field{zap.String("case", c.Name), zap.Bool("got", report.Got)}
	if c.Expect != nil {
		fields = append(fields, zap.Boolp("expect", c.Expect))
	}
	if report.Err != nil {
		fields = append(fields, zap.Error(report.Err))
	}
	if report.Passed() {
		logger.Debug("case passed", fields...)
	} else {
		logger.Warn("case failed", fields...)
	}
	return report
}
