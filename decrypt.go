package paillier

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/kotelifelif/paillier/bignum"
)

// Decrypt inverts Encrypt using the private trapdoor: for each ciphertext
// element c_i, computes u = c_i^lambda mod n^2, L(u), and
// m_i = L(u)*mu mod n. If any element is out of [0, n^2), the whole
// operation fails with ErrCiphertextOutOfRange and no partial plaintext is
// returned.
func (priv *PrivateKey) Decrypt(ct Ciphertext) ([]*big.Int, error) {
	nSquare := new(big.Int).Mul(priv.n, priv.n)

	var merr *multierror.Error
	for i, c := range ct {
		if err := bignum.InRange(c, big0, nSquare); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: element %d", ErrCiphertextOutOfRange, i))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	message := make([]*big.Int, len(ct))
	for i, c := range ct {
		u := bignum.ModPow(c, priv.lambda, nSquare)
		l, err := lFunction(u, priv.n)
		if err != nil {
			return nil, errors.Wrapf(err, "paillier: decrypt element %d", i)
		}
		m := new(big.Int).Mul(l, priv.mu)
		message[i] = m.Mod(m, priv.n)
	}
	return message, nil
}
