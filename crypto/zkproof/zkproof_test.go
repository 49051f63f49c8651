// Copyright © 2024 Cipheritall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package zkproof

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

func TestZkProof(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ZkProof Suite")
}

func testGqGroup() *group.GqGroup {
	g, err := group.NewGqGroup(big.NewInt(47), big.NewInt(23), big.NewInt(2))
	Expect(err).Should(BeNil())
	return g
}

func smallGqGroup() *group.GqGroup {
	g, err := group.NewGqGroup(big.NewInt(11), big.NewInt(5), big.NewInt(3))
	Expect(err).Should(BeNil())
	return g
}

func zqOf(g *group.GqGroup, v int64) *group.ZqElement {
	e, err := group.NewZqElement(big.NewInt(v), group.ZqGroupSameOrderAs(g))
	Expect(err).Should(BeNil())
	return e
}

func gqOf(g *group.GqGroup, v int64) *group.GqElement {
	e, err := group.NewGqElement(big.NewInt(v), g)
	Expect(err).Should(BeNil())
	return e
}

var _ = Describe("Schnorr proof", func() {
	var g *group.GqGroup
	var rs *random.RandomService
	var hs *hashing.HashService

	BeforeEach(func() {
		g = testGqGroup()
		rs = random.NewRandomService()
		hs = hashing.NewHashService()
	})

	DescribeTable("generates and verifies", func(secret int64, aux []string) {
		x := zqOf(g, secret)
		y, err := g.Generator().Exponentiate(x)
		Expect(err).Should(BeNil())
		proof, err := GenSchnorrProof(rs, hs, x, y, aux)
		Expect(err).Should(BeNil())
		ok, err := VerifySchnorrProof(hs, proof, y, aux)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	},
		Entry("no auxiliary information", int64(5), nil),
		Entry("with auxiliary information", int64(5), []string{"aux", "info"}),
		Entry("another secret", int64(17), []string{"mixing"}),
	)

	It("satisfies z = b + e*x with a fixed commitment exponent", func() {
		// x = 5, y = g^5 = 32, b pinned to 2.
		x := zqOf(g, 5)
		y := gqOf(g, 32)
		b := zqOf(g, 2)
		proof, err := genSchnorrProof(hs, b, x, y, []string{"aux", "info"})
		Expect(err).Should(BeNil())
		ex, err := proof.E().Multiply(x)
		Expect(err).Should(BeNil())
		expectedZ, err := b.Add(ex)
		Expect(err).Should(BeNil())
		Expect(proof.Z().Equal(expectedZ)).Should(BeTrue())
		ok, err := VerifySchnorrProof(hs, proof, y, []string{"aux", "info"})
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	})

	It("rejects a tampered response", func() {
		x := zqOf(g, 5)
		y, _ := g.Generator().Exponentiate(x)
		proof, err := GenSchnorrProof(rs, hs, x, y, nil)
		Expect(err).Should(BeNil())
		one := zqOf(g, 1)
		tamperedZ, err := proof.Z().Add(one)
		Expect(err).Should(BeNil())
		tampered, err := NewSchnorrProof(proof.E(), tamperedZ)
		Expect(err).Should(BeNil())
		ok, err := VerifySchnorrProof(hs, tampered, y, nil)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("rejects a different statement", func() {
		x := zqOf(g, 5)
		y, _ := g.Generator().Exponentiate(x)
		proof, err := GenSchnorrProof(rs, hs, x, y, nil)
		Expect(err).Should(BeNil())
		other, _ := g.Generator().Exponentiate(zqOf(g, 6))
		ok, err := VerifySchnorrProof(hs, proof, other, nil)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("rejects different auxiliary information", func() {
		x := zqOf(g, 5)
		y, _ := g.Generator().Exponentiate(x)
		proof, err := GenSchnorrProof(rs, hs, x, y, []string{"a"})
		Expect(err).Should(BeNil())
		ok, err := VerifySchnorrProof(hs, proof, y, []string{"b"})
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})
})

var _ = Describe("Phi plaintext equality", func() {
	It("matches the fixed evaluation", func() {
		// Gq = {1, 3, 4, 5, 9} mod 11, preimage (0, 3), h = 4, h' = 9.
		g := smallGqGroup()
		image, err := PhiPlaintextEquality(zqOf(g, 0), zqOf(g, 3), gqOf(g, 4), gqOf(g, 9))
		Expect(err).Should(BeNil())
		first, _ := image.Get(0)
		second, _ := image.Get(1)
		third, _ := image.Get(2)
		Expect(first.Value().Int64()).Should(Equal(int64(1)))
		Expect(second.Value().Int64()).Should(Equal(int64(5)))
		Expect(third.Value().Int64()).Should(Equal(int64(4)))
	})
})

var _ = Describe("Plaintext-equality proof", func() {
	var g *group.GqGroup
	var rs *random.RandomService
	var hs *hashing.HashService
	var h, hPrime *group.GqElement
	var c, cPrime *elgamal.Ciphertext
	var x, xPrime *group.ZqElement

	BeforeEach(func() {
		g = testGqGroup()
		rs = random.NewRandomService()
		hs = hashing.NewHashService()

		// Two encryptions of the message 9 under h and h'.
		h = gqOf(g, 32)      // g^5
		hPrime = gqOf(g, 34) // g^7
		x = zqOf(g, 11)
		xPrime = zqOf(g, 19)
		message := gqOf(g, 9)

		encrypt := func(key *group.GqElement, r *group.ZqElement) *elgamal.Ciphertext {
			gamma, err := g.Generator().Exponentiate(r)
			Expect(err).Should(BeNil())
			mask, err := key.Exponentiate(r)
			Expect(err).Should(BeNil())
			phi, err := message.Multiply(mask)
			Expect(err).Should(BeNil())
			phis, err := matrix.NewGqVector([]*group.GqElement{phi})
			Expect(err).Should(BeNil())
			ciphertext, err := elgamal.NewCiphertext(gamma, phis)
			Expect(err).Should(BeNil())
			return ciphertext
		}
		c = encrypt(h, x)
		cPrime = encrypt(hPrime, xPrime)
	})

	It("generates and verifies", func() {
		proof, err := GenPlaintextEqualityProof(rs, hs, c, cPrime, h, hPrime, x, xPrime, []string{"ballot"})
		Expect(err).Should(BeNil())
		ok, err := VerifyPlaintextEqualityProof(hs, proof, c, cPrime, h, hPrime, []string{"ballot"})
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	})

	It("rejects a tampered challenge", func() {
		proof, err := GenPlaintextEqualityProof(rs, hs, c, cPrime, h, hPrime, x, xPrime, nil)
		Expect(err).Should(BeNil())
		tamperedE, err := proof.E().Add(zqOf(g, 1))
		Expect(err).Should(BeNil())
		tampered, err := NewPlaintextEqualityProof(tamperedE, proof.Z())
		Expect(err).Should(BeNil())
		ok, err := VerifyPlaintextEqualityProof(hs, tampered, c, cPrime, h, hPrime, nil)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("rejects swapped public keys", func() {
		proof, err := GenPlaintextEqualityProof(rs, hs, c, cPrime, h, hPrime, x, xPrime, nil)
		Expect(err).Should(BeNil())
		ok, err := VerifyPlaintextEqualityProof(hs, proof, c, cPrime, hPrime, h, nil)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("rejects ciphertexts with more than one phi", func() {
		phis, err := matrix.NewGqVector([]*group.GqElement{gqOf(g, 4), gqOf(g, 9)})
		Expect(err).Should(BeNil())
		wide, err := elgamal.NewCiphertext(gqOf(g, 2), phis)
		Expect(err).Should(BeNil())
		_, err = GenPlaintextEqualityProof(rs, hs, wide, cPrime, h, hPrime, x, xPrime, nil)
		Expect(err).Should(Equal(ErrSizeMismatch))
	})
})

var _ = Describe("Exponentiation proof", func() {
	var g *group.GqGroup
	var rs *random.RandomService
	var hs *hashing.HashService
	var bases, y *matrix.GqVector
	var x *group.ZqElement

	BeforeEach(func() {
		g = testGqGroup()
		rs = random.NewRandomService()
		hs = hashing.NewHashService()
		x = zqOf(g, 13)
		baseElements := []*group.GqElement{g.Generator(), gqOf(g, 9), gqOf(g, 16)}
		var err error
		bases, err = matrix.NewGqVector(baseElements)
		Expect(err).Should(BeNil())
		y, err = PhiExponentiation(x, bases)
		Expect(err).Should(BeNil())
	})

	It("generates and verifies", func() {
		proof, err := GenExponentiationProof(rs, hs, x, bases, y, []string{"decryption"})
		Expect(err).Should(BeNil())
		ok, err := VerifyExponentiationProof(hs, proof, bases, y, []string{"decryption"})
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	})

	It("rejects a tampered statement", func() {
		proof, err := GenExponentiationProof(rs, hs, x, bases, y, nil)
		Expect(err).Should(BeNil())
		tamperedY, err := y.Exponentiate(zqOf(g, 2))
		Expect(err).Should(BeNil())
		ok, err := VerifyExponentiationProof(hs, proof, bases, tamperedY, nil)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("rejects mismatched statement sizes", func() {
		proof, err := GenExponentiationProof(rs, hs, x, bases, y, nil)
		Expect(err).Should(BeNil())
		shortY, err := matrix.NewGqVector(y.Elements()[:2])
		Expect(err).Should(BeNil())
		_, err = VerifyExponentiationProof(hs, proof, bases, shortY, nil)
		Expect(err).Should(Equal(ErrSizeMismatch))
	})
})
