package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	files    []string
	optional bool
	prefix   string
}

// WithEnvFiles loads the given .env files before parsing. Variables already
// present in the process environment win over file values. A missing file is
// an error unless the file list came from WithOptionalEnvFiles.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithOptionalEnvFiles is like WithEnvFiles but silently skips files that do
// not exist. Load uses it with ".env" when no files are given.
func WithOptionalEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
		o.optional = true
	}
}

// WithPrefix restricts parsing to variables starting with prefix; the tags
// on the struct are written without it.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load parses environment variables into v using its `env` struct tags.
//
// Example:
//
//	type Settings struct {
//		Capacity int `env:"CAPACITY" envDefault:"1000"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("RANGEBENCH_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.files) == 0 {
		o.files = []string{".env"}
		o.optional = true
	}

	for _, path := range o.files {
		if err := godotenv.Load(path); err != nil {
			if o.optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
