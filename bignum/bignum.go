// Package bignum is a *big.Int facade specialized for the arithmetic the
// Paillier cryptosystem needs: modular exponentiation and inversion,
// gcd/lcm, uniform sampling in a range, and probable-primality testing.
//
// All modular operations return a non-negative canonical representative
// smaller than the modulus.
package bignum

import (
	"errors"
	"math/big"

	"github.com/kotelifelif/paillier/rng"
)

var (
	// ErrInverseDoesNotExist is returned by ModInverse when gcd(a, m) != 1.
	ErrInverseDoesNotExist = errors.New("bignum: modular inverse does not exist")
	// ErrInvalidRange is returned when a range's floor is not smaller than its ceiling.
	ErrInvalidRange = errors.New("bignum: invalid range")
	// ErrNotInRange is returned when a value falls outside a checked range.
	ErrNotInRange = errors.New("bignum: value not in range")
	// ErrNonPositiveModulus is returned by Lcm when either operand is non-positive.
	ErrNonPositiveModulus = errors.New("bignum: non-positive modulus")
	// ErrExceedMaxRetry is returned when a bounded rejection-sampling loop runs out of tries.
	ErrExceedMaxRetry = errors.New("bignum: exceeded max retries")

	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// ModPow computes base^exp mod m, returning a non-negative result < m.
// exp must be >= 0.
func ModPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// ModInverse computes the multiplicative inverse of a modulo m.
// It fails with ErrInverseDoesNotExist if gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrInverseDoesNotExist
	}
	return inv, nil
}

// Gcd returns the greatest common divisor of a and b via the Euclidean algorithm.
func Gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// IsRelativePrime reports whether a and b are coprime.
func IsRelativePrime(a, b *big.Int) bool {
	return Gcd(a, b).Cmp(big1) == 0
}

// Lcm returns the least common multiple of a and b. Both must be positive.
func Lcm(a, b *big.Int) (*big.Int, error) {
	if a.Cmp(big0) <= 0 || b.Cmp(big0) <= 0 {
		return nil, ErrNonPositiveModulus
	}
	g := Gcd(a, b)
	t := new(big.Int).Div(a, g)
	return t.Mul(t, b), nil
}

// InRange checks that floor <= checkValue < ceil.
func InRange(checkValue, floor, ceil *big.Int) error {
	if ceil.Cmp(floor) <= 0 {
		return ErrInvalidRange
	}
	if checkValue.Cmp(floor) < 0 || checkValue.Cmp(ceil) >= 0 {
		return ErrNotInRange
	}
	return nil
}

// BitLen returns the length of the absolute value of x in bits.
func BitLen(x *big.Int) int {
	return x.BitLen()
}

// DecimalString renders x in base 10, the canonical form used when
// signing (see Canonicalize in the root paillier package).
func DecimalString(x *big.Int) string {
	return x.Text(10)
}

// FromDecimalString parses a base-10 rendering of a non-negative integer.
func FromDecimalString(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 10)
}

// FromHex parses a lowercase (or mixed-case) hexadecimal rendering of a
// non-negative integer, as used to turn a hash digest into a scalar.
func FromHex(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 16)
}

// Bytes returns the big-endian byte encoding of x.
func Bytes(x *big.Int) []byte {
	return x.Bytes()
}

// FromBytes interprets buf as a big-endian unsigned integer.
func FromBytes(buf []byte) *big.Int {
	return new(big.Int).SetBytes(buf)
}

// RandomInt samples uniformly from [0, n) using the given source.
func RandomInt(src rng.Source, n *big.Int) (*big.Int, error) {
	return src.Int(n)
}

// RandomPositiveInt samples uniformly from [1, n) using the given source.
func RandomPositiveInt(src rng.Source, n *big.Int) (*big.Int, error) {
	x, err := src.Int(new(big.Int).Sub(n, big1))
	if err != nil {
		return nil, err
	}
	return x.Add(x, big1), nil
}

// RandomCoprimeInt samples a uniformly random value in [1, n) that is
// coprime to n, retrying rejected samples up to maxTries times.
func RandomCoprimeInt(src rng.Source, n *big.Int, maxTries int) (*big.Int, error) {
	for i := 0; i < maxTries; i++ {
		r, err := RandomPositiveInt(src, n)
		if err != nil {
			return nil, err
		}
		if IsRelativePrime(r, n) {
			return r, nil
		}
	}
	return nil, ErrExceedMaxRetry
}
