package paillier

import "errors"

var (
	// ErrMessageOutOfRange is returned by Encrypt when a plaintext element
	// is not in [0, n).
	ErrMessageOutOfRange = errors.New("paillier: message out of range")
	// ErrCiphertextOutOfRange is returned by Decrypt when a ciphertext
	// element is not in [0, n^2).
	ErrCiphertextOutOfRange = errors.New("paillier: ciphertext out of range")
	// ErrSignatureKeyInvalid is returned by Sign when an intermediate
	// modular inverse fails, meaning the key material cannot produce a
	// signature.
	ErrSignatureKeyInvalid = errors.New("paillier: key material cannot produce a signature")
	// ErrDistinctPrimesRequired is returned by FromPrimes when p == q.
	ErrDistinctPrimesRequired = errors.New("paillier: p and q must be distinct")
	// ErrIncompatiblePrimes is returned by FromPrimes when
	// gcd(p*q, (p-1)*(q-1)) != 1.
	ErrIncompatiblePrimes = errors.New("paillier: gcd(p*q, (p-1)*(q-1)) != 1")
)
