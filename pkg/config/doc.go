// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their environment bindings with `env` struct
// tags (github.com/caarlos0/env) and are populated with Load or MustLoad. A
// .env file in the working directory is loaded once per process if present,
// so local development does not need exported variables.
//
// Each distinct configuration type is parsed exactly once and cached;
// repeated Load calls for the same type return the cached value, which keeps
// configuration stable for the process lifetime even if the environment
// changes underneath it.
//
// # Usage
//
//	type CLIConfig struct {
//	    Words int `env:"BRAINWALLET_WORDS" envDefault:"12"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
