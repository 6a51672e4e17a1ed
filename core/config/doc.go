// Package config provides type-safe environment variable loading with
// per-type caching. Struct fields are parsed with caarlos0/env tags, and a
// .env file in the working directory is loaded once before the first parse.
//
// Basic usage:
//
//	type ServerConfig struct {
//		Addr         string        `env:"SERVER_ADDR" envDefault:":8080"`
//		ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// or panic on failure during startup
//	config.MustLoad(&cfg)
//
// Each configuration type is read from the environment at most once per
// process; repeated loads of the same type return the cached value.
package config
