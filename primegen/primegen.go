// Package primegen produces the distinct prime pair a Paillier keypair is
// built from: two bits-bit primes p != q such that
// gcd(p*q, (p-1)*(q-1)) = 1.
package primegen

import (
	"context"
	"errors"
	"math/big"

	"github.com/otiai10/primes"

	"github.com/kotelifelif/paillier/bignum"
	"github.com/kotelifelif/paillier/logger"
	"github.com/kotelifelif/paillier/rng"
)

// DefaultSmallPrimeSieveCap is the threshold below which candidates are
// trial-divided before Miller-Rabin is invoked at all. This is an
// optimization, not a correctness requirement.
const DefaultSmallPrimeSieveCap = 349

// DefaultMaxAttempts bounds each retry loop (the search for a single prime
// and the outer (p, q) loop) so key generation terminates instead of
// looping forever on an unlucky sample sequence.
const DefaultMaxAttempts = 1000

// ErrKeygenExhausted is returned when the configured retry cap is reached
// without finding a compatible (p, q) pair.
var ErrKeygenExhausted = errors.New("primegen: exceeded max attempts generating a compatible prime pair")

// Config bounds the search for a candidate prime pair.
type Config struct {
	// Bits is the bit length of each of p and q.
	Bits int
	// MRRounds is the number of Miller-Rabin witnesses per candidate.
	MRRounds int
	// SmallPrimeSieveCap is the trial-division cutoff before Miller-Rabin.
	SmallPrimeSieveCap uint64
	// MaxAttempts bounds each single-prime search and the outer (p, q)
	// retry loop.
	MaxAttempts int
}

// sieve caches the small primes up to cap, used to cheaply reject
// candidates with a tiny factor before paying for Miller-Rabin.
func sievePrimes(cap uint64) []int64 {
	if cap == 0 {
		cap = DefaultSmallPrimeSieveCap
	}
	return primes.Until(int64(cap)).List()
}

func divisibleBySmallPrime(candidate *big.Int, table []int64) bool {
	for _, p := range table {
		if p < 2 {
			continue
		}
		if new(big.Int).Mod(candidate, big.NewInt(p)).Sign() == 0 && candidate.Cmp(big.NewInt(p)) != 0 {
			return true
		}
	}
	return false
}

// generateOne samples a single bits-bit probable prime <= maxBig, sieving
// against small primes before each Miller-Rabin pass.
func generateOne(ctx context.Context, src rng.Source, cfg Config, table []int64, maxBig *big.Int) (*big.Int, error) {
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		upper := new(big.Int).Lsh(big.NewInt(1), uint(cfg.Bits))
		candidate, err := src.Int(upper)
		if err != nil {
			return nil, err
		}
		// Set the top bit so the candidate is at least 2^(bits-1).
		if cfg.Bits > 0 {
			candidate.SetBit(candidate, cfg.Bits-1, 1)
		}
		if candidate.Bit(0) == 0 {
			candidate.Add(candidate, big.NewInt(1))
		}
		for divisibleBySmallPrime(candidate, table) {
			candidate.Add(candidate, big.NewInt(2))
		}
		candidate = bignum.NextProbablePrime(candidate, cfg.MRRounds)
		if candidate.Cmp(maxBig) > 0 {
			continue
		}
		return candidate, nil
	}
	return nil, ErrKeygenExhausted
}

// GeneratePair samples two distinct bits-bit primes p, q such that
// gcd(p*q, (p-1)*(q-1)) = 1, the Paillier compatibility condition.
func GeneratePair(ctx context.Context, src rng.Source, cfg Config) (p, q *big.Int, err error) {
	if cfg.MRRounds <= 0 {
		cfg.MRRounds = bignum.DefaultMRRounds
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	table := sievePrimes(cfg.SmallPrimeSieveCap)
	maxBig := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(cfg.Bits)), big.NewInt(1))

	log := logger.Logger()

	p, err = generateOne(ctx, src, cfg, table, maxBig)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("generated candidate prime p", "bits", cfg.Bits)

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		candidate, err := generateOne(ctx, src, cfg, table, maxBig)
		if err != nil {
			return nil, nil, err
		}
		if candidate.Cmp(p) == 0 {
			continue
		}
		pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
		qMinus1 := new(big.Int).Sub(candidate, big.NewInt(1))
		n := new(big.Int).Mul(p, candidate)
		phi := new(big.Int).Mul(pMinus1, qMinus1)
		if bignum.IsRelativePrime(n, phi) {
			log.Debug("generated compatible prime pair", "bits", cfg.Bits)
			return p, candidate, nil
		}
	}
	return nil, nil, ErrKeygenExhausted
}
