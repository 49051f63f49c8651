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
package elgamal

import (
	"encoding/json"
	"math/big"
	"os"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

func TestElGamal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ElGamal Suite")
}

func testGqGroup() *group.GqGroup {
	g, err := group.NewGqGroup(big.NewInt(47), big.NewInt(23), big.NewInt(2))
	Expect(err).Should(BeNil())
	return g
}

func gqVector(g *group.GqGroup, values ...int64) *matrix.GqVector {
	elements := make([]*group.GqElement, len(values))
	for i, v := range values {
		e, err := group.NewGqElement(big.NewInt(v), g)
		Expect(err).Should(BeNil())
		elements[i] = e
	}
	vector, err := matrix.NewGqVector(elements)
	Expect(err).Should(BeNil())
	return vector
}

func zqElement(v int64, z *group.ZqGroup) *group.ZqElement {
	e, err := group.NewZqElement(big.NewInt(v), z)
	Expect(err).Should(BeNil())
	return e
}

var _ = Describe("GenKeyPair", func() {
	It("derives the public key from secrets in [2, q-1]", func() {
		g := testGqGroup()
		rs := random.NewRandomService()
		for trial := 0; trial < 20; trial++ {
			kp, err := GenKeyPair(g, 3, rs)
			Expect(err).Should(BeNil())
			Expect(kp.PrivateKey().Size()).Should(Equal(3))
			Expect(kp.PublicKey().Size()).Should(Equal(3))
			for i := 0; i < 3; i++ {
				x, err := kp.PrivateKey().Exponents().Get(i)
				Expect(err).Should(BeNil())
				Expect(x.Value().Int64()).Should(BeNumerically(">=", 2))
				Expect(x.Value().Int64()).Should(BeNumerically("<=", 22))
				h, err := kp.PublicKey().Elements().Get(i)
				Expect(err).Should(BeNil())
				expected, err := g.Generator().Exponentiate(x)
				Expect(err).Should(BeNil())
				Expect(h.Equal(expected)).Should(BeTrue())
			}
		}
	})

	It("rejects a non-positive size", func() {
		_, err := GenKeyPair(testGqGroup(), 0, random.NewRandomService())
		Expect(err).Should(Equal(ErrNonPositiveKeySize))
	})
})

var _ = Describe("Encrypt and decrypt", func() {
	var g *group.GqGroup
	var zq *group.ZqGroup
	var rs *random.RandomService

	BeforeEach(func() {
		g = testGqGroup()
		zq = group.ZqGroupSameOrderAs(g)
		rs = random.NewRandomService()
	})

	It("round trips random messages", func() {
		kp, err := GenKeyPair(g, 3, rs)
		Expect(err).Should(BeNil())
		for trial := 0; trial < 10; trial++ {
			elements := make([]*group.GqElement, 3)
			for i := range elements {
				e, err := rs.GenRandomZqElement(zq)
				Expect(err).Should(BeNil())
				elements[i], err = g.Generator().Exponentiate(e)
				Expect(err).Should(BeNil())
			}
			vector, err := matrix.NewGqVector(elements)
			Expect(err).Should(BeNil())
			message, err := NewMessage(vector)
			Expect(err).Should(BeNil())
			r, err := rs.GenRandomZqElement(zq)
			Expect(err).Should(BeNil())
			ciphertext, err := GetCiphertext(message, r, kp.PublicKey())
			Expect(err).Should(BeNil())
			decrypted, err := GetMessage(ciphertext, kp.PrivateKey())
			Expect(err).Should(BeNil())
			Expect(decrypted.Equal(message)).Should(BeTrue())
		}
	})

	It("matches the fixed vector", func() {
		// x = 5, h = 2^5 = 32, m = 4, r = 3: gamma = 8, phi = 4 * 32^3 = 36.
		pk, err := NewPublicKey(gqVector(g, 32))
		Expect(err).Should(BeNil())
		message, err := NewMessage(gqVector(g, 4))
		Expect(err).Should(BeNil())
		ciphertext, err := GetCiphertext(message, zqElement(3, zq), pk)
		Expect(err).Should(BeNil())
		Expect(ciphertext.Gamma().Value().Int64()).Should(Equal(int64(8)))
		phi, err := ciphertext.Phis().Get(0)
		Expect(err).Should(BeNil())
		Expect(phi.Value().Int64()).Should(Equal(int64(36)))
	})

	It("rejects a message longer than the key", func() {
		kp, err := GenKeyPair(g, 1, rs)
		Expect(err).Should(BeNil())
		message, err := NewMessage(gqVector(g, 4, 9))
		Expect(err).Should(BeNil())
		r, err := rs.GenRandomZqElement(zq)
		Expect(err).Should(BeNil())
		_, err = GetCiphertext(message, r, kp.PublicKey())
		Expect(err).Should(Equal(ErrMessageTooLong))
	})

	It("requires key size to match ciphertext size on decryption", func() {
		kp3, err := GenKeyPair(g, 3, rs)
		Expect(err).Should(BeNil())
		kp2, err := GenKeyPair(g, 2, rs)
		Expect(err).Should(BeNil())
		message, err := NewMessage(gqVector(g, 4, 9))
		Expect(err).Should(BeNil())
		r, err := rs.GenRandomZqElement(zq)
		Expect(err).Should(BeNil())
		ciphertext, err := GetCiphertext(message, r, kp3.PublicKey())
		Expect(err).Should(BeNil())
		_, err = GetMessage(ciphertext, kp3.PrivateKey())
		Expect(err).Should(Equal(ErrSizeMismatch))
		// A key of the matching size decrypts, even if it is the wrong key.
		_, err = GetMessage(ciphertext, kp2.PrivateKey())
		Expect(err).Should(BeNil())
	})
})

var _ = Describe("Ciphertext algebra", func() {
	var g *group.GqGroup
	var zq *group.ZqGroup
	var rs *random.RandomService
	var kp *KeyPair

	BeforeEach(func() {
		g = testGqGroup()
		zq = group.ZqGroupSameOrderAs(g)
		rs = random.NewRandomService()
		var err error
		kp, err = GenKeyPair(g, 2, rs)
		Expect(err).Should(BeNil())
	})

	encrypt := func(values ...int64) (*Message, *Ciphertext) {
		message, err := NewMessage(gqVector(g, values...))
		Expect(err).Should(BeNil())
		r, err := rs.GenRandomZqElement(zq)
		Expect(err).Should(BeNil())
		ciphertext, err := GetCiphertext(message, r, kp.PublicKey())
		Expect(err).Should(BeNil())
		return message, ciphertext
	}

	It("is multiplicatively homomorphic", func() {
		m1, c1 := encrypt(4, 9)
		m2, c2 := encrypt(2, 8)
		product, err := GetCiphertextProduct(c1, c2)
		Expect(err).Should(BeNil())
		decrypted, err := GetMessage(product, kp.PrivateKey())
		Expect(err).Should(BeNil())
		expected, err := m1.Elements().Multiply(m2.Elements())
		Expect(err).Should(BeNil())
		Expect(decrypted.Elements().Equal(expected)).Should(BeTrue())
	})

	It("has the neutral ciphertext as identity", func() {
		_, c := encrypt(4, 9)
		neutral, err := NeutralCiphertext(g, 2)
		Expect(err).Should(BeNil())
		product, err := GetCiphertextProduct(c, neutral)
		Expect(err).Should(BeNil())
		Expect(product.Equal(c)).Should(BeTrue())
	})

	It("exponentiates all components", func() {
		m, c := encrypt(4, 9)
		two := zqElement(2, zq)
		squared, err := GetCiphertextExponentiation(c, two)
		Expect(err).Should(BeNil())
		decrypted, err := GetMessage(squared, kp.PrivateKey())
		Expect(err).Should(BeNil())
		expected, err := m.Elements().Exponentiate(two)
		Expect(err).Should(BeNil())
		Expect(decrypted.Elements().Equal(expected)).Should(BeTrue())
	})

	It("matches the naive vector exponentiation", func() {
		_, c1 := encrypt(4, 9)
		_, c2 := encrypt(2, 8)
		exponents, err := matrix.NewZqVector([]*group.ZqElement{zqElement(3, zq), zqElement(7, zq)})
		Expect(err).Should(BeNil())
		fast, err := GetCiphertextVectorExponentiation([]*Ciphertext{c1, c2}, exponents)
		Expect(err).Should(BeNil())
		e1, err := GetCiphertextExponentiation(c1, zqElement(3, zq))
		Expect(err).Should(BeNil())
		e2, err := GetCiphertextExponentiation(c2, zqElement(7, zq))
		Expect(err).Should(BeNil())
		naive, err := GetCiphertextProduct(e1, e2)
		Expect(err).Should(BeNil())
		Expect(fast.Equal(naive)).Should(BeTrue())
	})

	It("compresses the tail into the last phi", func() {
		kp3, err := GenKeyPair(g, 3, rs)
		Expect(err).Should(BeNil())
		message, err := NewMessage(gqVector(g, 4, 9, 16))
		Expect(err).Should(BeNil())
		r, err := rs.GenRandomZqElement(zq)
		Expect(err).Should(BeNil())
		c, err := GetCiphertext(message, r, kp3.PublicKey())
		Expect(err).Should(BeNil())
		compressed, err := c.Compress(2)
		Expect(err).Should(BeNil())
		Expect(compressed.Size()).Should(Equal(2))
		Expect(compressed.Gamma().Equal(c.Gamma())).Should(BeTrue())
		first, _ := compressed.Phis().Get(0)
		original, _ := c.Phis().Get(0)
		Expect(first.Equal(original)).Should(BeTrue())
		tail, _ := compressed.Phis().Get(1)
		phi1, _ := c.Phis().Get(1)
		phi2, _ := c.Phis().Get(2)
		expected, err := phi1.Multiply(phi2)
		Expect(err).Should(BeNil())
		Expect(tail.Equal(expected)).Should(BeTrue())

		_, err = c.Compress(3)
		Expect(err).Should(Equal(ErrInvalidCompression))
	})

	It("re-encrypts without changing the plaintext", func() {
		m, c := encrypt(4, 9)
		r, err := rs.GenRandomZqElement(zq)
		Expect(err).Should(BeNil())
		reEncrypted, err := ReEncrypt(c, r, kp.PublicKey())
		Expect(err).Should(BeNil())
		Expect(reEncrypted.Equal(c)).Should(BeFalse())
		decrypted, err := GetMessage(reEncrypted, kp.PrivateKey())
		Expect(err).Should(BeNil())
		Expect(decrypted.Equal(m)).Should(BeTrue())
	})
})

type elgamalVector struct {
	P       string   `json:"p"`
	Q       string   `json:"q"`
	G       string   `json:"g"`
	Pk      []string `json:"pk"`
	Message []string `json:"message"`
	R       string   `json:"r"`
	Gamma   string   `json:"gamma"`
	Phis    []string `json:"phis"`
}

var _ = Describe("JSON corpus", func() {
	It("matches the stored encryption vectors", func() {
		raw, err := os.ReadFile("testdata/elgamal.json")
		Expect(err).Should(BeNil())
		var vectors []elgamalVector
		Expect(json.Unmarshal(raw, &vectors)).Should(BeNil())
		Expect(vectors).ShouldNot(BeEmpty())
		for _, v := range vectors {
			p, _ := new(big.Int).SetString(v.P, 10)
			q, _ := new(big.Int).SetString(v.Q, 10)
			gen, _ := new(big.Int).SetString(v.G, 10)
			g, err := group.NewGqGroup(p, q, gen)
			Expect(err).Should(BeNil())
			zq := group.ZqGroupSameOrderAs(g)

			pkElements := make([]*group.GqElement, len(v.Pk))
			for i, s := range v.Pk {
				value, _ := new(big.Int).SetString(s, 10)
				pkElements[i], err = group.NewGqElement(value, g)
				Expect(err).Should(BeNil())
			}
			pkVector, err := matrix.NewGqVector(pkElements)
			Expect(err).Should(BeNil())
			pk, err := NewPublicKey(pkVector)
			Expect(err).Should(BeNil())

			msgElements := make([]*group.GqElement, len(v.Message))
			for i, s := range v.Message {
				value, _ := new(big.Int).SetString(s, 10)
				msgElements[i], err = group.NewGqElement(value, g)
				Expect(err).Should(BeNil())
			}
			msgVector, err := matrix.NewGqVector(msgElements)
			Expect(err).Should(BeNil())
			message, err := NewMessage(msgVector)
			Expect(err).Should(BeNil())

			rValue, _ := new(big.Int).SetString(v.R, 10)
			r, err := group.NewZqElement(rValue, zq)
			Expect(err).Should(BeNil())

			ciphertext, err := GetCiphertext(message, r, pk)
			Expect(err).Should(BeNil())
			Expect(ciphertext.Gamma().Value().String()).Should(Equal(v.Gamma))
			for i, s := range v.Phis {
				phi, err := ciphertext.Phis().Get(i)
				Expect(err).Should(BeNil())
				Expect(phi.Value().String()).Should(Equal(s))
			}
		}
	})
})
