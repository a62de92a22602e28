package paillier

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"

	"github.com/kotelifelif/paillier/bignum"
	"github.com/kotelifelif/paillier/rng"
)

// Ciphertext is an ordered sequence of scalars, each in [0, n^2). Position
// i corresponds to the i-th plaintext element; Paillier has no built-in
// chaining between elements.
type Ciphertext []*big.Int

// Encrypt maps each element of message to a ciphertext element using fresh
// randomness per element: c_i = (g^m_i * r_i^n) mod n^2. If any element is
// out of [0, n), the whole operation fails with ErrMessageOutOfRange and no
// partial ciphertext is returned; every offending index is collected
// before the error is surfaced.
func (pub *PublicKey) Encrypt(src rng.Source, message []*big.Int) (Ciphertext, error) {
	var merr *multierror.Error
	for i, m := range message {
		if err := bignum.InRange(m, big0, pub.n); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: element %d", ErrMessageOutOfRange, i))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	ct := make(Ciphertext, len(message))
	for i, m := range message {
		r, err := bignum.RandomPositiveInt(src, pub.n)
		if err != nil {
			return nil, err
		}
		gm := bignum.ModPow(pub.g, m, pub.nSquare)
		rn := bignum.ModPow(r, pub.n, pub.nSquare)
		c := new(big.Int).Mul(gm, rn)
		ct[i] = c.Mod(c, pub.nSquare)
	}
	return ct, nil
}
