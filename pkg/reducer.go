package reducer

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	f "github.com/rprtr258/poolreuse/flow/fun"
	"github.com/rprtr258/poolreuse/flow/pool"
	r "github.com/rprtr258/poolreuse/flow/result"
	s "github.com/rprtr258/poolreuse/flow/stream"
)

// DefaultWorkers is the size of the pool ComputeOwned creates.
const DefaultWorkers = 10

// Input is the sequence every computation folds over: 1..10.
func Input() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
}

// Double is the default Transform.
func Double(x int) (int, error) {
	return x * 2, nil
}

// Reducer maps Input with Transform in parallel and sums the results.
type Reducer struct {
	Input     []int
	Transform func(int) (int, error)
	Log       *log.Entry
}

// Default doubles Input.
func Default() Reducer {
	return Reducer{
		Input:     Input(),
		Transform: Double,
		Log:       log.WithField("component", "reducer"),
	}
}

// NewPoolFunc builds the pool an owned computation runs on.
type NewPoolFunc func(size int) (pool.Pool, error)

// NativePool is the NewPoolFunc used by ComputeOwned.
func NativePool(size int) (pool.Pool, error) {
	return pool.New(pool.Native, size)
}

// Compute runs the default computation on p. p is left running.
func Compute(ctx context.Context, p pool.Pool) (int, error) {
	return Default().Run(ctx, p)
}

// ComputeOwned runs the default computation on a pool of its own, shut down before returning.
func ComputeOwned(ctx context.Context) (int, error) {
	return ComputeOwnedWith(ctx, NativePool)
}

// ComputeOwnedWith is ComputeOwned on a pool built by newPool.
func ComputeOwnedWith(ctx context.Context, newPool NewPoolFunc) (int, error) {
	return Default().RunOwned(ctx, newPool)
}

// RunOwned creates a pool with newPool, runs on it and closes it on every exit path.
// An interrupted call returns without waiting for tasks still running on the pool.
func (rd Reducer) RunOwned(ctx context.Context, newPool NewPoolFunc) (int, error) {
	p, err := newPool(DefaultWorkers)
	if err != nil {
		return 0, errors.Wrap(err, "create pool")
	}
	defer p.Close()
	return rd.Run(ctx, p)
}

// Run splits Input into one chunk per worker, sums each transformed chunk on p
// and adds up the partial sums. It blocks until every submitted chunk finished
// or ctx is done.
func (rd Reducer) Run(ctx context.Context, p pool.Pool) (int, error) {
	chunks := s.Indexed(s.Chunked(s.FromSlice(rd.Input), chunkSize(len(rd.Input), p.Size())))

	futures := make([]*pool.Future[int], 0, p.Size())
	var submitErr error
	s.ForEach(chunks, func(chunk f.Pair[int, []int]) {
		if submitErr != nil {
			return
		}
		fut, err := pool.Submit(p, func() (int, error) {
			return rd.partialSum(chunk.Right).Get()
		})
		if err != nil {
			rd.logger().WithField("chunk", chunk.Left).WithError(err).Warn("submit failed")
			submitErr = &ExecutionError{Chunk: chunk.Left, Err: err}
			return
		}
		futures = append(futures, fut)
	})

	partials, err := rd.await(ctx, futures)
	if err == nil {
		err = submitErr
	}
	if err != nil {
		return 0, err
	}
	return s.Sum(s.FromSlice(partials)), nil
}

func (rd Reducer) partialSum(chunk []int) r.Result[int] {
	transformed := s.Map(s.FromSlice(chunk), func(x int) r.Result[int] {
		return r.FromGoResult(rd.Transform(x))
	})
	return s.Reduce(
		r.Success(0),
		func(acc, y r.Result[int]) r.Result[int] {
			return r.FlatMap(acc, func(sum int) r.Result[int] {
				return r.Map(y, func(v int) int { return sum + v })
			})
		},
		transformed,
	)
}

// await waits for futures in submission order and returns the first task failure.
// Remaining futures are still awaited after a failure.
func (rd Reducer) await(ctx context.Context, futures []*pool.Future[int]) ([]int, error) {
	partials := make([]int, 0, len(futures))
	var firstErr error
	for i, fut := range futures {
		v, err := fut.Get(ctx)
		switch {
		case err != nil && err == ctx.Err():
			return nil, &InterruptedError{Err: err}
		case err != nil:
			rd.logger().WithField("chunk", i).WithError(err).Warn("task failed")
			if firstErr == nil {
				firstErr = &ExecutionError{Chunk: i, Err: err}
			}
		default:
			partials = append(partials, v)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return partials, nil
}

func (rd Reducer) logger() *log.Entry {
	if rd.Log == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return rd.Log
}

func chunkSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	return (n + workers - 1) / workers
}
