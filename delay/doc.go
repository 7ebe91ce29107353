// Package delay drives sequential squaring in a group of unknown order,
// the evaluation step of a verifiable delay function.
//
// An [Evaluator] wraps any [group.Group] and computes x^(2^t) by t
// successive doublings. The computation is inherently sequential; the
// evaluator only adds cancellation between steps, progress logging and
// parallelism across independent inputs:
//
//	ev := delay.New[*classgroup.QuadraticForm](classgroup.New(d),
//		delay.WithLogger(logger),
//		delay.WithProgressInterval(1<<16),
//	)
//
//	// Hash the challenge to a group element and square it 2^20 times.
//	y, err := ev.Evaluate(ctx, challenge, 8, 1<<20)
//	if err != nil {
//		return err
//	}
//
// # Cancellation
//
// The context is checked between doublings only. A single doubling is
// never interrupted, so cancellation latency is bounded by the cost of
// one group operation.
//
// # Batches
//
// [Evaluator.EvaluateBatch] evaluates independent seeds concurrently,
// bounded by [WithParallelism]. Each evaluation stays sequential, and
// results are returned in the order of the seeds.
package delay
