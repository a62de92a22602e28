// Package paillier implements a partially-homomorphic, probabilistic
// public-key cryptosystem whose security rests on the decisional composite
// residuosity assumption: keypair generation, encryption modulo n,
// decryption modulo n^2, and a Paillier-style signature scheme.
//
// All operations are pure functions of immutable key material and an
// injected rng.Source; no key material is held in process-wide state.
package paillier

import (
	"context"
	"math/big"

	"github.com/kotelifelif/paillier/bignum"
	"github.com/kotelifelif/paillier/primegen"
	"github.com/kotelifelif/paillier/rng"
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// PublicKey is the public half of a keypair: (n, g).
type PublicKey struct {
	n       *big.Int
	g       *big.Int
	nSquare *big.Int
}

// N returns a copy of the Paillier modulus.
func (pub *PublicKey) N() *big.Int { return new(big.Int).Set(pub.n) }

// G returns a copy of the generator g.
func (pub *PublicKey) G() *big.Int { return new(big.Int).Set(pub.g) }

// NSquare returns a copy of n^2.
func (pub *PublicKey) NSquare() *big.Int { return new(big.Int).Set(pub.nSquare) }

// PrivateKey is the private half of a keypair: (lambda, mu, n, g). g is
// kept here too because the signature scheme needs it.
type PrivateKey struct {
	lambda *big.Int
	mu     *big.Int
	n      *big.Int
	g      *big.Int
}

// N returns a copy of the Paillier modulus.
func (priv *PrivateKey) N() *big.Int { return new(big.Int).Set(priv.n) }

// G returns a copy of the generator g.
func (priv *PrivateKey) G() *big.Int { return new(big.Int).Set(priv.g) }

// Lambda returns a copy of lambda = lcm(p-1, q-1).
func (priv *PrivateKey) Lambda() *big.Int { return new(big.Int).Set(priv.lambda) }

// Mu returns a copy of mu = (L(g^lambda mod n^2))^-1 mod n.
func (priv *PrivateKey) Mu() *big.Int { return new(big.Int).Set(priv.mu) }

// Paillier is a generated (or reconstructed) keypair.
type Paillier struct {
	pub  *PublicKey
	priv *PrivateKey
}

// PublicKey returns the public half of the keypair.
func (p *Paillier) PublicKey() *PublicKey { return p.pub }

// PrivateKey returns the private half of the keypair.
func (p *Paillier) PrivateKey() *PrivateKey { return p.priv }

// Generate produces a fresh keypair: it samples a compatible prime pair at
// cfg.Bits and derives (n, g, lambda, mu) from them.
func Generate(ctx context.Context, cfg Config, src rng.Source) (*Paillier, error) {
	cfg = cfg.withDefaults()
	p, q, err := primegen.GeneratePair(ctx, src, primegen.Config{
		Bits:               cfg.Bits,
		MRRounds:           cfg.MRRounds,
		SmallPrimeSieveCap: cfg.SmallPrimeSieveCap,
		MaxAttempts:        cfg.MaxKeygenAttempts,
	})
	if err != nil {
		return nil, err
	}
	return derive(p, q, cfg, src)
}

// FromPrimes deterministically builds a keypair from caller-supplied
// primes p and q, primarily for tests. It still validates the Paillier
// compatibility condition gcd(p*q, (p-1)*(q-1)) = 1 and p != q.
func FromPrimes(p, q *big.Int, cfg Config, src rng.Source) (*Paillier, error) {
	cfg = cfg.withDefaults()
	if p.Cmp(q) == 0 {
		return nil, ErrDistinctPrimesRequired
	}
	pMinus1 := new(big.Int).Sub(p, big1)
	qMinus1 := new(big.Int).Sub(q, big1)
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(pMinus1, qMinus1)
	if !bignum.IsRelativePrime(n, phi) {
		return nil, ErrIncompatiblePrimes
	}
	return derive(p, q, cfg, src)
}

// derive computes n, lambda, g, and mu from a compatible prime pair,
// returning the assembled keypair. The g-selection loop tests the
// candidate g produced in *this* iteration, never a stale value from a
// previous rejected attempt.
func derive(p, q *big.Int, cfg Config, src rng.Source) (*Paillier, error) {
	pMinus1 := new(big.Int).Sub(p, big1)
	qMinus1 := new(big.Int).Sub(q, big1)
	n := new(big.Int).Mul(p, q)
	nSquare := new(big.Int).Mul(n, n)
	lambda, err := bignum.Lcm(pMinus1, qMinus1)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger

	var g, mu *big.Int
	for attempt := 0; attempt < cfg.MaxKeygenAttempts; attempt++ {
		candidate, err := bignum.RandomPositiveInt(src, nSquare)
		if err != nil {
			return nil, err
		}
		x := bignum.ModPow(candidate, lambda, nSquare)
		l, err := lFunction(x, n)
		if err != nil {
			continue
		}
		candidateMu, err := bignum.ModInverse(l, n)
		if err != nil {
			continue
		}
		g, mu = candidate, candidateMu
		break
	}
	if g == nil {
		return nil, primegen.ErrKeygenExhausted
	}
	log.Debug("derived paillier key material", "bits", cfg.Bits)

	pub := &PublicKey{n: n, g: g, nSquare: nSquare}
	priv := &PrivateKey{lambda: lambda, mu: mu, n: new(big.Int).Set(n), g: new(big.Int).Set(g)}
	return &Paillier{pub: pub, priv: priv}, nil
}

// lFunction computes L(u) = (u-1)/n, valid only when u is congruent to 1
// mod n (the division is then exact).
func lFunction(u, n *big.Int) (*big.Int, error) {
	t := new(big.Int).Sub(u, big1)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(t, n, r)
	if r.Sign() != 0 {
		return nil, bignum.ErrNotInRange
	}
	return q, nil
}

// Add implements homomorphic addition of two ciphertext elements:
// Dec(Add(E(m1), E(m2))) = m1 + m2 mod n. It does not re-randomize the
// result; callers that need IND-CPA security for the sum should multiply
// in a fresh encryption of 0.
func (pub *PublicKey) Add(c1, c2 *big.Int) (*big.Int, error) {
	if err := bignum.InRange(c1, big0, pub.nSquare); err != nil {
		return nil, ErrCiphertextOutOfRange
	}
	if err := bignum.InRange(c2, big0, pub.nSquare); err != nil {
		return nil, ErrCiphertextOutOfRange
	}
	sum := new(big.Int).Mul(c1, c2)
	return sum.Mod(sum, pub.nSquare), nil
}

// MulConst implements homomorphic multiplication of a ciphertext by a
// plaintext scalar: Dec(MulConst(E(m), k)) = m*k mod n.
func (pub *PublicKey) MulConst(c, scalar *big.Int) (*big.Int, error) {
	if err := bignum.InRange(c, big0, pub.nSquare); err != nil {
		return nil, ErrCiphertextOutOfRange
	}
	k := new(big.Int).Mod(scalar, pub.n)
	return bignum.ModPow(c, k, pub.nSquare), nil
}
