package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Input is one named submission for ComputeAll.
type Input struct {
	Name string
	Text string
}

// Outcome pairs an Input name with its Result or error. Exactly one of
// Result and Err is set; inputs the batch never reached carry the
// cancellation error.
type Outcome struct {
	Name   string
	Result *Result
	Err    error
}

// ComputeAll runs Compute for every input with at most workers in flight
// (workers < 1 means one). Outcomes keep the input order. Per-input failures
// are reported in their Outcome; the returned error is non-nil only when ctx
// is cancelled.
func ComputeAll(ctx context.Context, inputs []Input, workers int, opts ...Option) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]Outcome, len(inputs))
	for i, in := range inputs {
		out[i].Name = in.Name
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := Compute(gctx, in.Text, opts...)
			out[i] = Outcome{Name: in.Name, Result: res, Err: err}

			// only cancellation stops the batch
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}

			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		for i := range out {
			if out[i].Result == nil && out[i].Err == nil {
				out[i].Err = err
			}
		}
		return out, err
	}

	return out, nil
}
