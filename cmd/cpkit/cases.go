package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cpkit/internal/fastio"
)

// emitFunc writes one case's answer. Emitters run sequentially, in input order.
type emitFunc func(out *fastio.Writer)

// solveFunc solves one parsed case and returns how to print its answer.
// It must only touch storage it owns.
type solveFunc func() (emitFunc, error)

// emitInts prints vs on one line.
func emitInts(vs ...int64) emitFunc {
	return func(out *fastio.Writer) { out.Int64s(vs...) }
}

// emitLine prints s on its own line.
func emitLine(s string) emitFunc {
	return func(out *fastio.Writer) { out.Line(s) }
}

// parseFunc reads one case from in and returns its solver.
type parseFunc func(in *fastio.Reader) (solveFunc, error)

// runCases reads t, parses t cases in order, solves them on up to workers
// goroutines and prints the answers in input order.
func (a *app) runCases(ctx context.Context, r io.Reader, w io.Writer, parse parseFunc) error {
	in := fastio.NewReader(r)
	t, err := in.Int()
	if err != nil {
		return fmt.Errorf("read test count: %w", err)
	}
	if t < 0 {
		return fmt.Errorf("negative test count %d", t)
	}

	// t is untrusted: grow with the cases actually read instead of preallocating.
	var solvers []solveFunc
	for i := 0; i < t; i++ {
		solve, err := parse(in)
		if err != nil {
			return fmt.Errorf("case %d: %w", i+1, err)
		}
		solvers = append(solvers, solve)
	}

	start := time.Now()
	answers := make([]emitFunc, len(solvers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, solve := range solvers {
		i, solve := i, solve
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ans, err := solve()
			if err != nil {
				return fmt.Errorf("case %d: %w", i+1, err)
			}
			answers[i] = ans
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Debug("cases solved",
		zap.Int("cases", t),
		zap.Int("workers", a.cfg.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	out := fastio.NewWriter(w)
	for _, emit := range answers {
		emit(out)
	}

	return out.Flush()
}
