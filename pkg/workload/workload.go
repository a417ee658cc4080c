package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidParams is returned when generation parameters are out of range.
var ErrInvalidParams = errors.New("invalid workload parameters")

// Kind distinguishes the two operations of a workload.
type Kind uint8

const (
	KindRange Kind = iota
	KindUpdate
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindUpdate:
		return "update"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Op is one workload step. Range ops use Left and Right; update ops use
// Index and Value.
type Op struct {
	Kind  Kind
	Left  int
	Right int
	Index int
	Value int64
}

// Params shapes a generated workload.
type Params struct {
	// Size is the length of the slice the ops address.
	Size int
	// Queries is the number of ops to generate.
	Queries int
	// HotPool is the number of distinct ranges that receive most traffic.
	HotPool int
	// PHot is the probability that a range op picks from the hot pool.
	PHot float64
	// PUpdate is the probability that an op is an update.
	PUpdate float64
	// MaxValue bounds element and update values to [1, MaxValue].
	MaxValue int64
}

// DefaultParams returns the mix used by the reference benchmark:
// 100k elements, 50k ops, 30 hot ranges, 95% hot, 3% updates.
func DefaultParams() Params {
	return Params{
		Size:     100_000,
		Queries:  50_000,
		HotPool:  30,
		PHot:     0.95,
		PUpdate:  0.03,
		MaxValue: 100,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidParams, p.Size)
	case p.Queries < 0:
		return fmt.Errorf("%w: queries must not be negative, got %d", ErrInvalidParams, p.Queries)
	case p.HotPool <= 0:
		return fmt.Errorf("%w: hot pool must be positive, got %d", ErrInvalidParams, p.HotPool)
	case p.PHot < 0 || p.PHot > 1:
		return fmt.Errorf("%w: p_hot must be within [0, 1], got %g", ErrInvalidParams, p.PHot)
	case p.PUpdate < 0 || p.PUpdate > 1:
		return fmt.Errorf("%w: p_update must be within [0, 1], got %g", ErrInvalidParams, p.PUpdate)
	case p.MaxValue <= 0:
		return fmt.Errorf("%w: max value must be positive, got %d", ErrInvalidParams, p.MaxValue)
	}
	return nil
}

// NewRNG returns a deterministic generator for seed.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewValues returns n values drawn uniformly from [1, maxValue].
func NewValues(rng *rand.Rand, n int, maxValue int64) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = 1 + rng.Int64N(maxValue)
	}
	return values
}

// Generate builds a workload. Hot ranges start in the first half of the
// slice and end in the second half; cold ranges are uniform.
func Generate(rng *rand.Rand, p Params) ([]Op, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Size
	hot := make([]Op, p.HotPool)
	for i := range hot {
		hot[i] = Op{
			Kind:  KindRange,
			Left:  rng.IntN(n/2 + 1),
			Right: n/2 + rng.IntN(n-n/2),
		}
	}

	ops := make([]Op, 0, p.Queries)
	for range p.Queries {
		if rng.Float64() < p.PUpdate {
			ops = append(ops, Op{
				Kind:  KindUpdate,
				Index: rng.IntN(n),
				Value: 1 + rng.Int64N(p.MaxValue),
			})
			continue
		}
		if rng.Float64() < p.PHot {
			ops = append(ops, hot[rng.IntN(len(hot))])
			continue
		}
		left := rng.IntN(n)
		ops = append(ops, Op{
			Kind:  KindRange,
			Left:  left,
			Right: left + rng.IntN(n-left),
		})
	}
	return ops, nil
}
