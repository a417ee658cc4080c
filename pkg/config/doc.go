// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are merged into the process environment first (real
// environment variables take precedence), then the environment is parsed into
// a struct using `env` and `envDefault` field tags.
//
// # Usage
//
//	type Settings struct {
//		Capacity int     `env:"CAPACITY" envDefault:"1000"`
//		PUpdate  float64 `env:"P_UPDATE" envDefault:"0.03"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("RANGEBENCH_")); err != nil {
//		return err
//	}
//
// Without options Load reads `.env` from the working directory if it exists.
// WithEnvFiles makes the listed files mandatory.
//
// # Error Handling
//
// Errors are joined with one of the sentinels ErrNilPointer,
// ErrLoadingEnvFile or ErrParsingConfig and can be checked with errors.Is.
package config
