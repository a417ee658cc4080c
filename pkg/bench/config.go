package bench

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/rangecache/pkg/workload"
)

// Config describes one benchmark run. Field tags map it to environment
// variables; callers usually add a prefix such as RANGEBENCH_.
type Config struct {
	Size     int     `env:"SIZE" envDefault:"100000" json:"size" yaml:"size"`
	Queries  int     `env:"QUERIES" envDefault:"50000" json:"queries" yaml:"queries"`
	Capacity int     `env:"CAPACITY" envDefault:"1000" json:"capacity" yaml:"capacity"`
	HotPool  int     `env:"HOT_POOL" envDefault:"30" json:"hot_pool" yaml:"hot_pool"`
	PHot     float64 `env:"P_HOT" envDefault:"0.95" json:"p_hot" yaml:"p_hot"`
	PUpdate  float64 `env:"P_UPDATE" envDefault:"0.03" json:"p_update" yaml:"p_update"`
	MaxValue int64   `env:"MAX_VALUE" envDefault:"100" json:"max_value" yaml:"max_value"`
	Seed     uint64  `env:"SEED" envDefault:"1" json:"seed" yaml:"seed"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	p := workload.DefaultParams()
	return Config{
		Size:     p.Size,
		Queries:  p.Queries,
		Capacity: 1000,
		HotPool:  p.HotPool,
		PHot:     p.PHot,
		PUpdate:  p.PUpdate,
		MaxValue: p.MaxValue,
		Seed:     1,
	}
}

// Params returns the workload part of the config.
func (c Config) Params() workload.Params {
	return workload.Params{
		Size:     c.Size,
		Queries:  c.Queries,
		HotPool:  c.HotPool,
		PHot:     c.PHot,
		PUpdate:  c.PUpdate,
		MaxValue: c.MaxValue,
	}
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if err := c.Params().Validate(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
