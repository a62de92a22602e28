// Package digest adapts the hash collaborator spec.md treats as external
// (the Paillier core only ever consumes a hash(bytes) -> fixed-length
// digest capability) to a small interface the signer/verifier can depend
// on without caring which concrete primitive produced the bytes.
package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
)

// Hasher is the hash collaborator interface: Sum maps an input byte string
// to a fixed-length digest.
type Hasher interface {
	Sum(data []byte) []byte
}

// Blake2b256 is the default Hasher: it matches the hash this scheme's
// teacher package (getamis/alice) uses for its own internal hashing, and
// gives a fixed-length 32-byte digest with no known practical collisions.
type Blake2b256 struct{}

// Sum implements Hasher.
func (Blake2b256) Sum(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// SHA256 wraps the stdlib SHA-256 implementation. SHA-256/SHA-512/MD5 are
// named in spec.md as external collaborators the core merely consumes; no
// ecosystem replacement is needed for them, so they're adapted directly
// from the standard library.
type SHA256 struct{}

// Sum implements Hasher.
func (SHA256) Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA512 wraps the stdlib SHA-512 implementation.
type SHA512 struct{}

// Sum implements Hasher.
func (SHA512) Sum(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

// MD5 wraps the stdlib MD5 implementation. Included only because spec.md's
// test scenarios (S6) exercise it; MD5 is not recommended for new designs.
type MD5 struct{}

// Sum implements Hasher.
func (MD5) Sum(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}
