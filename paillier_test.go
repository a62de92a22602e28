package paillier

import (
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kotelifelif/paillier/digest"
	"github.com/kotelifelif/paillier/rng"
)

var _ = Describe("Paillier", func() {
	var src rng.Source

	BeforeEach(func() {
		src = rng.NewMathSource(1)
	})

	Context("key material from a small known-good prime pair", func() {
		It("derives a usable keypair for p=11, q=13", func() {
			kp, err := FromPrimes(big.NewInt(11), big.NewInt(13), TestConfig(), src)
			Expect(err).Should(BeNil())
			Expect(kp.PublicKey().N().Cmp(big.NewInt(143))).Should(BeZero())
		})

		It("derives a usable keypair for p=17, q=19", func() {
			kp, err := FromPrimes(big.NewInt(17), big.NewInt(19), TestConfig(), src)
			Expect(err).Should(BeNil())
			Expect(kp.PublicKey().N().Cmp(big.NewInt(323))).Should(BeZero())
		})

		It("rejects equal primes", func() {
			_, err := FromPrimes(big.NewInt(11), big.NewInt(11), TestConfig(), src)
			Expect(err).Should(Equal(ErrDistinctPrimesRequired))
		})

		It("rejects an incompatible prime pair", func() {
			// p=3, q=11: phi = 2*10 = 20, n = 33; gcd(33, 20) = 1 actually, so
			// pick a pair that shares a factor between n and phi instead:
			// p=5, q=11: n=55, phi=4*10=40, gcd(55,40)=5 != 1.
			_, err := FromPrimes(big.NewInt(5), big.NewInt(11), TestConfig(), src)
			Expect(err).Should(Equal(ErrIncompatiblePrimes))
		})
	})

	Context("encryption and decryption round trips", func() {
		var kp *Paillier

		BeforeEach(func() {
			var err error
			kp, err = FromPrimes(big.NewInt(11), big.NewInt(13), TestConfig(), src)
			Expect(err).Should(BeNil())
		})

		It("round-trips a single in-range message", func() {
			m := []*big.Int{big.NewInt(42)}
			ct, err := kp.PublicKey().Encrypt(src, m)
			Expect(err).Should(BeNil())
			Expect(ct[0].Cmp(m[0])).ShouldNot(BeZero())

			got, err := kp.PrivateKey().Decrypt(ct)
			Expect(err).Should(BeNil())
			Expect(got[0].Cmp(m[0])).Should(BeZero())
		})

		It("round-trips the zero message", func() {
			m := []*big.Int{big.NewInt(0)}
			ct, err := kp.PublicKey().Encrypt(src, m)
			Expect(err).Should(BeNil())
			got, err := kp.PrivateKey().Decrypt(ct)
			Expect(err).Should(BeNil())
			Expect(got[0].Cmp(m[0])).Should(BeZero())
		})

		It("round-trips n-1", func() {
			nMinus1 := new(big.Int).Sub(kp.PublicKey().N(), big1)
			m := []*big.Int{nMinus1}
			ct, err := kp.PublicKey().Encrypt(src, m)
			Expect(err).Should(BeNil())
			got, err := kp.PrivateKey().Decrypt(ct)
			Expect(err).Should(BeNil())
			Expect(got[0].Cmp(nMinus1)).Should(BeZero())
		})

		It("round-trips a multi-element message sequence independently", func() {
			m := []*big.Int{big.NewInt(3), big.NewInt(0), big.NewInt(140)}
			ct, err := kp.PublicKey().Encrypt(src, m)
			Expect(err).Should(BeNil())
			got, err := kp.PrivateKey().Decrypt(ct)
			Expect(err).Should(BeNil())
			for i := range m {
				Expect(got[i].Cmp(m[i])).Should(BeZero())
			}
		})

		It("rejects a negative message with no partial result", func() {
			ct, err := kp.PublicKey().Encrypt(src, []*big.Int{big.NewInt(-5)})
			Expect(err).Should(HaveOccurred())
			Expect(ct).Should(BeNil())
		})

		It("rejects a message equal to n", func() {
			_, err := kp.PublicKey().Encrypt(src, []*big.Int{kp.PublicKey().N()})
			Expect(err).Should(HaveOccurred())
		})

		It("rejects a ciphertext out of [0, n^2)", func() {
			_, err := kp.PrivateKey().Decrypt(Ciphertext{kp.PublicKey().NSquare()})
			Expect(err).Should(HaveOccurred())
		})

		It("aggregates every offending index in a multi-element message", func() {
			_, err := kp.PublicKey().Encrypt(src, []*big.Int{big.NewInt(-1), big.NewInt(5), big.NewInt(-2)})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("element 0"))
			Expect(err.Error()).Should(ContainSubstring("element 2"))
			Expect(err.Error()).ShouldNot(ContainSubstring("element 1"))
		})
	})

	Context("homomorphic operations", func() {
		var kp *Paillier

		BeforeEach(func() {
			var err error
			kp, err = FromPrimes(big.NewInt(17), big.NewInt(19), TestConfig(), src)
			Expect(err).Should(BeNil())
		})

		It("adds two ciphertexts to a ciphertext of the sum", func() {
			m1, m2 := big.NewInt(50), big.NewInt(70)
			ct, err := kp.PublicKey().Encrypt(src, []*big.Int{m1, m2})
			Expect(err).Should(BeNil())

			sum, err := kp.PublicKey().Add(ct[0], ct[1])
			Expect(err).Should(BeNil())

			got, err := kp.PrivateKey().Decrypt(Ciphertext{sum})
			Expect(err).Should(BeNil())

			want := new(big.Int).Mod(new(big.Int).Add(m1, m2), kp.PublicKey().N())
			Expect(got[0].Cmp(want)).Should(BeZero())
		})

		It("multiplies a ciphertext by a plaintext scalar", func() {
			m := big.NewInt(11)
			k := big.NewInt(4)
			ct, err := kp.PublicKey().Encrypt(src, []*big.Int{m})
			Expect(err).Should(BeNil())

			scaled, err := kp.PublicKey().MulConst(ct[0], k)
			Expect(err).Should(BeNil())

			got, err := kp.PrivateKey().Decrypt(Ciphertext{scaled})
			Expect(err).Should(BeNil())

			want := new(big.Int).Mod(new(big.Int).Mul(m, k), kp.PublicKey().N())
			Expect(got[0].Cmp(want)).Should(BeZero())
		})
	})

	Context("signing and verification", func() {
		var kp *Paillier

		BeforeEach(func() {
			var err error
			kp, err = FromPrimes(big.NewInt(11), big.NewInt(13), TestConfig(), src)
			Expect(err).Should(BeNil())
		})

		It("verifies a signature produced over the same message", func() {
			message := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
			sig, err := kp.PrivateKey().Sign(digest.Blake2b256{}, message)
			Expect(err).Should(BeNil())
			Expect(kp.PublicKey().Verify(digest.Blake2b256{}, sig, message)).Should(BeTrue())
		})

		It("rejects a signature checked against a tampered message", func() {
			message := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
			sig, err := kp.PrivateKey().Sign(digest.Blake2b256{}, message)
			Expect(err).Should(BeNil())

			tampered := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(4)}
			Expect(kp.PublicKey().Verify(digest.Blake2b256{}, sig, tampered)).Should(BeFalse())
		})

		It("rejects a signature with a tampered component", func() {
			message := []*big.Int{big.NewInt(7)}
			sig, err := kp.PrivateKey().Sign(digest.Blake2b256{}, message)
			Expect(err).Should(BeNil())

			sig.S1 = new(big.Int).Add(sig.S1, big1)
			Expect(kp.PublicKey().Verify(digest.Blake2b256{}, sig, message)).Should(BeFalse())
		})

		It("never errors on a malformed signature, it just fails to verify", func() {
			Expect(kp.PublicKey().Verify(digest.Blake2b256{}, Signature{}, []*big.Int{big1})).Should(BeFalse())
		})

		DescribeTable("round-trips under every supported hash collaborator",
			func(h digest.Hasher) {
				message := []*big.Int{big.NewInt(9), big.NewInt(99)}
				sig, err := kp.PrivateKey().Sign(h, message)
				Expect(err).Should(BeNil())
				Expect(kp.PublicKey().Verify(h, sig, message)).Should(BeTrue())
			},
			Entry("blake2b-256", digest.Blake2b256{}),
			Entry("sha-256", digest.SHA256{}),
			Entry("sha-512", digest.SHA512{}),
			Entry("md5", digest.MD5{}),
		)

		It("produces different hashes (and thus different signatures) across collaborators", func() {
			message := []*big.Int{big.NewInt(55)}
			a, err := kp.PrivateKey().Sign(digest.SHA256{}, message)
			Expect(err).Should(BeNil())
			b, err := kp.PrivateKey().Sign(digest.MD5{}, message)
			Expect(err).Should(BeNil())
			Expect(a.S1.Cmp(b.S1)).ShouldNot(BeZero())
		})
	})

	Context("Canonicalize", func() {
		It("joins decimal elements with a single space and no trailing separator", func() {
			got := Canonicalize([]*big.Int{big.NewInt(1), big.NewInt(22), big.NewInt(333)})
			Expect(string(got)).Should(Equal("1 22 333"))
		})

		It("renders the empty sequence as the empty string", func() {
			got := Canonicalize(nil)
			Expect(string(got)).Should(Equal(""))
		})
	})
})
