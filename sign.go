package paillier

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/kotelifelif/paillier/bignum"
	"github.com/kotelifelif/paillier/digest"
)

// Signature is a Paillier-style signature over a hash of a canonicalized
// message: a pair (s1, s2), both in [0, n).
type Signature struct {
	S1 *big.Int
	S2 *big.Int
}

// Canonicalize renders a scalar sequence as the byte string the signer and
// verifier hash: each element in decimal, joined by a single space, with
// no trailing separator.
func Canonicalize(message []*big.Int) []byte {
	tokens := make([]string, len(message))
	for i, m := range message {
		tokens[i] = bignum.DecimalString(m)
	}
	return []byte(strings.Join(tokens, " "))
}

// hashToScalar hashes the canonical message and interprets the digest's
// hex rendering as a base-16 integer, per the signing scheme's definition
// of h.
func hashToScalar(h digest.Hasher, message []*big.Int) *big.Int {
	sum := h.Sum(Canonicalize(message))
	hexDigest := hex.EncodeToString(sum)
	scalar, _ := bignum.FromHex(hexDigest)
	return scalar
}

// Sign produces a Paillier signature over message using hasher as the hash
// collaborator. It fails with ErrSignatureKeyInvalid if any intermediate
// modular inverse does not exist.
func (priv *PrivateKey) Sign(hasher digest.Hasher, message []*big.Int) (Signature, error) {
	nSquare := new(big.Int).Mul(priv.n, priv.n)
	h := hashToScalar(hasher, message)

	hLambda := bignum.ModPow(h, priv.lambda, nSquare)
	num, err := lFunction(hLambda, priv.n)
	if err != nil {
		return Signature{}, ErrSignatureKeyInvalid
	}
	num.Mod(num, priv.n)

	gLambda := bignum.ModPow(priv.g, priv.lambda, nSquare)
	den, err := lFunction(gLambda, priv.n)
	if err != nil {
		return Signature{}, ErrSignatureKeyInvalid
	}
	den.Mod(den, priv.n)

	denInv, err := bignum.ModInverse(den, priv.n)
	if err != nil {
		return Signature{}, ErrSignatureKeyInvalid
	}
	s1 := new(big.Int).Mul(num, denInv)
	s1.Mod(s1, priv.n)

	invN, err := bignum.ModInverse(priv.n, priv.lambda)
	if err != nil {
		return Signature{}, ErrSignatureKeyInvalid
	}

	gS1 := bignum.ModPow(priv.g, s1, priv.n)
	invG, err := bignum.ModInverse(gS1, priv.n)
	if err != nil {
		return Signature{}, ErrSignatureKeyInvalid
	}
	base := new(big.Int).Mul(h, invG)
	base.Mod(base, priv.n)
	s2 := bignum.ModPow(base, invN, priv.n)

	return Signature{S1: s1, S2: s2}, nil
}

// Verify reports whether sig is a valid Paillier signature over message
// under pub. It never fails: malformed input simply yields false.
func (pub *PublicKey) Verify(hasher digest.Hasher, sig Signature, message []*big.Int) bool {
	if sig.S1 == nil || sig.S2 == nil {
		return false
	}
	h := hashToScalar(hasher, message)
	// v is a residue mod n^2, so h is compared in the same range.
	h.Mod(h, pub.nSquare)

	gS1 := bignum.ModPow(pub.g, sig.S1, pub.nSquare)
	s2N := bignum.ModPow(sig.S2, pub.n, pub.nSquare)
	v := new(big.Int).Mul(gS1, s2N)
	v.Mod(v, pub.nSquare)

	return h.Cmp(v) == 0
}
