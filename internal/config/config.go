// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
// A .env file in the working directory is loaded first, so secrets can be
// kept out of the shell profile during development.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// DatabaseDSN holds the Postgres connection string. When empty the
	// service falls back to the in-memory store.
	DatabaseDSN string

	// JWTSecret signs and verifies bearer tokens. Required.
	JWTSecret string

	// CORSOrigin is the allowed cross-origin value for browsers.
	CORSOrigin string

	// FetchTimeout bounds a single page download.
	FetchTimeout time.Duration

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.CORSOrigin, "o", "*", "allowed CORS origin")
	flag.DurationVar(&options.FetchTimeout, "t", 15*time.Second, "page fetch timeout")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. Environment variables win over flags. It returns
// a pointer to the Options struct containing the parsed configuration.
func Parse() *Options {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	flag.Parse()

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		options.CORSOrigin = origin
	}

	if timeout := os.Getenv("FETCH_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err == nil {
			options.FetchTimeout = d
		}
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpsMode
	}

	return options
}
