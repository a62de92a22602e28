package bignum

import "math/big"

// Ring is a modulus that performs all of its arithmetic with modular
// reduction. It lets Paillier code fix a modulus once (n or n^2) instead of
// re-specifying it at every call site.
type Ring big.Int

// NewRing returns a Ring fixed to modulus m.
func NewRing(m *big.Int) *Ring {
	return (*Ring)(new(big.Int).Set(m))
}

func (r *Ring) modulus() *big.Int {
	return (*big.Int)(r)
}

// Add returns x+y mod the ring's modulus.
func (r *Ring) Add(x, y *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	return z.Mod(z, r.modulus())
}

// Sub returns x-y mod the ring's modulus.
func (r *Ring) Sub(x, y *big.Int) *big.Int {
	z := new(big.Int).Sub(x, y)
	return z.Mod(z, r.modulus())
}

// Mul returns x*y mod the ring's modulus.
func (r *Ring) Mul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, r.modulus())
}

// Exp returns x^y mod the ring's modulus. y must be >= 0.
func (r *Ring) Exp(x, y *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, r.modulus())
}

// ModInverse returns x^-1 mod the ring's modulus, or ErrInverseDoesNotExist.
func (r *Ring) ModInverse(x *big.Int) (*big.Int, error) {
	return ModInverse(x, r.modulus())
}

// Modulus returns a copy of the ring's modulus.
func (r *Ring) Modulus() *big.Int {
	return new(big.Int).Set(r.modulus())
}
