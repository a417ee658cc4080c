package bench

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rangecache"
	"github.com/dmitrymomot/rangecache/pkg/logger"
	"github.com/dmitrymomot/rangecache/pkg/workload"
)

// cancelCheckEvery is how many ops run between context checks.
const cancelCheckEvery = 1024

// Executor answers range queries and applies updates over values.
// *rangecache.RangeCache[int64] and Direct both implement it.
type Executor interface {
	RangeSum(values []int64, left, right int) (int64, error)
	Update(values []int64, index int, value int64) error
}

// Direct is the uncached baseline: every query is summed from scratch.
type Direct struct{}

func (Direct) RangeSum(values []int64, left, right int) (int64, error) {
	if left < 0 || left > right || right >= len(values) {
		return 0, fmt.Errorf("%w: [%d, %d] over %d elements", rangecache.ErrInvalidRange, left, right, len(values))
	}
	return rangecache.LinearSum(values, left, right), nil
}

func (Direct) Update(values []int64, index int, value int64) error {
	if index < 0 || index >= len(values) {
		return fmt.Errorf("%w: %d over %d elements", rangecache.ErrInvalidIndex, index, len(values))
	}
	values[index] = value
	return nil
}

// Result is the outcome of replaying one workload through one executor.
type Result struct {
	Name     string        `json:"name" yaml:"name"`
	Elapsed  time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Queries  int           `json:"queries" yaml:"queries"`
	Updates  int           `json:"updates" yaml:"updates"`
	Checksum int64         `json:"checksum" yaml:"checksum"`
}

// Run applies ops to values in order and measures the wall-clock time.
// The checksum is the sum of every query answer, so two executors that
// agree on every query produce the same checksum.
func Run(ctx context.Context, name string, exec Executor, values []int64, ops []workload.Op) (Result, error) {
	res := Result{Name: name}
	start := time.Now()

	for i, op := range ops {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		switch op.Kind {
		case workload.KindRange:
			sum, err := exec.RangeSum(values, op.Left, op.Right)
			if err != nil {
				return Result{}, fmt.Errorf("%s: op %d (%s): %w", name, i, op.Kind, err)
			}
			res.Checksum += sum
			res.Queries++
		case workload.KindUpdate:
			if err := exec.Update(values, op.Index, op.Value); err != nil {
				return Result{}, fmt.Errorf("%s: op %d (%s): %w", name, i, op.Kind, err)
			}
			res.Updates++
		default:
			return Result{}, fmt.Errorf("%s: op %d: unsupported kind %s", name, i, op.Kind)
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

// Compare generates the configured workload, replays it without a cache and
// then through a fresh RangeCache, each on its own copy of the values, and
// reports both timings. Extra options are passed to rangecache.New.
func Compare(ctx context.Context, cfg Config, log *slog.Logger, opts ...rangecache.Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}

	runID := uuid.NewString()
	log = log.With(logger.RunID(runID))

	rng := workload.NewRNG(cfg.Seed)
	values := workload.NewValues(rng, cfg.Size, cfg.MaxValue)
	ops, err := workload.Generate(rng, cfg.Params())
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "workload generated", logger.Count("values", len(values)), logger.Count("ops", len(ops)))

	baseline, err := Run(ctx, "no-cache", Direct{}, slices.Clone(values), ops)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "baseline finished", logger.Duration(baseline.Elapsed))

	rc, err := rangecache.New[int64](cfg.Capacity, append([]rangecache.Option{rangecache.WithLogger(log)}, opts...)...)
	if err != nil {
		return nil, err
	}
	cached, err := Run(ctx, "lru-cache", rc, slices.Clone(values), ops)
	if err != nil {
		return nil, err
	}
	stats := rc.Stats()
	log.InfoContext(ctx, "cached run finished",
		logger.Duration(cached.Elapsed),
		slog.Float64("hit_ratio", stats.HitRatio()),
	)

	if baseline.Checksum != cached.Checksum {
		return nil, fmt.Errorf("%w: checksum %d != %d", ErrChecksumMismatch, cached.Checksum, baseline.Checksum)
	}

	return &Report{
		RunID:    runID,
		Config:   cfg,
		Baseline: baseline,
		Cached:   cached,
		Speedup:  speedup(baseline.Elapsed, cached.Elapsed),
		Stats:    stats,
	}, nil
}

func speedup(baseline, cached time.Duration) float64 {
	if cached <= 0 {
		return 0
	}
	return float64(baseline) / float64(cached)
}
