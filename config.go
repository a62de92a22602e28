package paillier

import "github.com/getamis/sirius/log"

// Config bounds key generation and names the collaborators a Paillier
// instance is built with.
type Config struct {
	// Bits is the bit length of each of the two generated primes.
	Bits int
	// MRRounds is the Miller-Rabin witness count used while searching for
	// primes.
	MRRounds int
	// SmallPrimeSieveCap is the trial-division cutoff applied before each
	// Miller-Rabin pass during prime generation.
	SmallPrimeSieveCap uint64
	// MaxKeygenAttempts bounds every bounded retry loop in key generation
	// (prime search, g/mu selection).
	MaxKeygenAttempts int
	// Logger receives the structured message emitted when key material is
	// derived from the primes. Prime generation logs to the module-wide
	// logger of the logger package instead. Defaults to a discard logger.
	Logger log.Logger
}

// DefaultConfig returns production-sized parameters: 2048-bit primes, 20
// Miller-Rabin rounds, a 349 small-prime sieve cap, and 1000 retries per
// bounded loop.
func DefaultConfig() Config {
	return Config{
		Bits:               2048,
		MRRounds:           20,
		SmallPrimeSieveCap: 349,
		MaxKeygenAttempts:  1000,
		Logger:             log.Discard(),
	}
}

// TestConfig returns small, fast parameters suitable only for deterministic
// tests; it is not safe for production use.
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Bits = 16
	return cfg
}

func (cfg Config) withDefaults() Config {
	if cfg.Bits <= 0 {
		cfg.Bits = DefaultConfig().Bits
	}
	if cfg.MRRounds <= 0 {
		cfg.MRRounds = DefaultConfig().MRRounds
	}
	if cfg.SmallPrimeSieveCap == 0 {
		cfg.SmallPrimeSieveCap = DefaultConfig().SmallPrimeSieveCap
	}
	if cfg.MaxKeygenAttempts <= 0 {
		cfg.MaxKeygenAttempts = DefaultConfig().MaxKeygenAttempts
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Discard()
	}
	return cfg
}
