// Package field implements the plaintext-boundary "field value" type from
// the Paillier data model: plaintext messages are field elements whose
// canonical integer representative lies in [0, field_modulus).
// PublicKey.Encrypt itself takes plain scalars and neither converts nor
// checks field values; FromScalar and CheckPlaintextBound do. Internally the Paillier core only ever works with
// plain scalars modulo n or n^2 — field reduction must never leak into key
// material, which is exactly the bug the source this scheme is derived
// from committed (n, g, lambda, mu silently reduced modulo a field order).
package field

import (
	"errors"
	"math/big"

	"github.com/fentec-project/bn256"
)

// Modulus is the field order messages are drawn from at the public
// plaintext boundary: the group order of the BN256 pairing-friendly curve
// (bn256.Order), not the curve's base field prime.
var Modulus = new(big.Int).Set(bn256.Order)

// ErrOutOfField is returned when a scalar's canonical representative does
// not fit in [0, Modulus).
var ErrOutOfField = errors.New("field: value is not a canonical field element")

// Value is an integer modulo Modulus.
type Value struct {
	v *big.Int
}

// New reduces x modulo Modulus and returns the resulting field Value.
func New(x *big.Int) Value {
	return Value{v: new(big.Int).Mod(x, Modulus)}
}

// FromScalar validates that x is already a canonical field element (i.e.
// 0 <= x < Modulus) without silently reducing it, and returns it as a
// Value. Paillier plaintexts must pass through here, not through New,
// so that an out-of-field scalar is rejected rather than quietly wrapped.
func FromScalar(x *big.Int) (Value, error) {
	if x.Sign() < 0 || x.Cmp(Modulus) >= 0 {
		return Value{}, ErrOutOfField
	}
	return Value{v: new(big.Int).Set(x)}, nil
}

// ToScalar returns the field element's canonical integer representative.
// The Paillier boundary additionally requires m < n < Modulus; callers
// must check that separately since n is a property of the keypair, not of
// the field.
func (v Value) ToScalar() *big.Int {
	return new(big.Int).Set(v.v)
}

// CheckPlaintextBound verifies the invariant spec.md requires at the
// public plaintext boundary: the message's integer representative must be
// smaller than the Paillier modulus n, which must in turn be smaller than
// the field modulus.
func CheckPlaintextBound(m, n *big.Int) error {
	if n.Cmp(Modulus) >= 0 {
		return errors.New("field: paillier modulus n does not fit under the field modulus")
	}
	if m.Sign() < 0 || m.Cmp(n) >= 0 {
		return errors.New("field: message is not in [0, n)")
	}
	return nil
}
