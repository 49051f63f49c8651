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
package group

import (
	"crypto/rand"
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestGroup(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Group Suite")
}

// The test group: p = 47 = 2*23 + 1, generator 2 (2 = 7^2 mod 47 is a
// quadratic residue).
func testGroup() *GqGroup {
	g, err := NewGqGroup(big.NewInt(47), big.NewInt(23), big.NewInt(2))
	Expect(err).Should(BeNil())
	return g
}

var _ = Describe("GqGroup", func() {
	It("accepts valid parameters", func() {
		g := testGroup()
		Expect(g.P().Int64()).Should(Equal(int64(47)))
		Expect(g.Q().Int64()).Should(Equal(int64(23)))
		Expect(g.Generator().Value().Int64()).Should(Equal(int64(2)))
	})

	DescribeTable("rejects invalid parameters", func(p, q, g int64, expected error) {
		_, err := NewGqGroup(big.NewInt(p), big.NewInt(q), big.NewInt(g))
		Expect(err).Should(Equal(expected))
	},
		Entry("p not prime", int64(48), int64(23), int64(2), ErrNonPrimeParameter),
		Entry("q not prime", int64(47), int64(21), int64(2), ErrNonPrimeParameter),
		Entry("p != 2q+1", int64(47), int64(11), int64(2), ErrNotSafePrime),
		Entry("g = 1", int64(47), int64(23), int64(1), ErrInvalidGenerator),
		Entry("g not in subgroup", int64(47), int64(23), int64(5), ErrInvalidGenerator),
	)

	It("is value-equal by parameters", func() {
		Expect(testGroup().Equal(testGroup())).Should(BeTrue())
		other, err := NewGqGroup(big.NewInt(11), big.NewInt(5), big.NewInt(3))
		Expect(err).Should(BeNil())
		Expect(testGroup().Equal(other)).Should(BeFalse())
	})
})

var _ = Describe("GqElement", func() {
	var g *GqGroup
	var zq *ZqGroup

	BeforeEach(func() {
		g = testGroup()
		zq = ZqGroupSameOrderAs(g)
	})

	It("rejects non-members", func() {
		// 5 is not a quadratic residue mod 47.
		_, err := NewGqElement(big.NewInt(5), g)
		Expect(err).Should(Equal(ErrNotGroupMember))
		_, err = NewGqElement(big.NewInt(0), g)
		Expect(err).Should(Equal(ErrNotGroupMember))
		_, err = NewGqElement(big.NewInt(47), g)
		Expect(err).Should(Equal(ErrNotGroupMember))
	})

	It("multiplies, divides and inverts", func() {
		four, err := NewGqElement(big.NewInt(4), g)
		Expect(err).Should(BeNil())
		two := g.Generator()
		product, err := four.Multiply(two)
		Expect(err).Should(BeNil())
		Expect(product.Value().Int64()).Should(Equal(int64(8)))
		quotient, err := product.Divide(two)
		Expect(err).Should(BeNil())
		Expect(quotient.Equal(four)).Should(BeTrue())
		inverse, err := two.Invert()
		Expect(err).Should(BeNil())
		identity, err := two.Multiply(inverse)
		Expect(err).Should(BeNil())
		Expect(identity.IsIdentity()).Should(BeTrue())
	})

	It("exponentiates with a Zq exponent", func() {
		five, err := NewZqElement(big.NewInt(5), zq)
		Expect(err).Should(BeNil())
		result, err := g.Generator().Exponentiate(five)
		Expect(err).Should(BeNil())
		Expect(result.Value().Int64()).Should(Equal(int64(32)))
	})

	It("rejects exponents of a different order", func() {
		otherZq, err := NewZqGroup(big.NewInt(7))
		Expect(err).Should(BeNil())
		three, err := NewZqElement(big.NewInt(3), otherZq)
		Expect(err).Should(BeNil())
		_, err = g.Generator().Exponentiate(three)
		Expect(err).Should(Equal(ErrDifferentOrders))
	})

	It("builds elements from square roots", func() {
		seven, err := GqElementFromSquareRoot(big.NewInt(7), g)
		Expect(err).Should(BeNil())
		Expect(seven.Value().Int64()).Should(Equal(int64(2)))
		_, err = GqElementFromSquareRoot(big.NewInt(0), g)
		Expect(err).Should(Equal(ErrValueOutOfRange))
	})
})

var _ = Describe("ZqElement", func() {
	var zq *ZqGroup

	BeforeEach(func() {
		zq = ZqGroupSameOrderAs(testGroup())
	})

	It("wraps values in range and rejects the rest", func() {
		_, err := NewZqElement(big.NewInt(22), zq)
		Expect(err).Should(BeNil())
		_, err = NewZqElement(big.NewInt(23), zq)
		Expect(err).Should(Equal(ErrValueOutOfRange))
		_, err = NewZqElement(big.NewInt(-1), zq)
		Expect(err).Should(Equal(ErrValueOutOfRange))
	})

	It("reduces arbitrary values", func() {
		e := NewZqElementReduced(big.NewInt(-1), zq)
		Expect(e.Value().Int64()).Should(Equal(int64(22)))
	})

	It("adds, subtracts, multiplies and negates mod q", func() {
		a, _ := NewZqElement(big.NewInt(20), zq)
		b, _ := NewZqElement(big.NewInt(5), zq)
		sum, err := a.Add(b)
		Expect(err).Should(BeNil())
		Expect(sum.Value().Int64()).Should(Equal(int64(2)))
		difference, err := b.Subtract(a)
		Expect(err).Should(BeNil())
		Expect(difference.Value().Int64()).Should(Equal(int64(8)))
		product, err := a.Multiply(b)
		Expect(err).Should(BeNil())
		Expect(product.Value().Int64()).Should(Equal(int64(8)))
		Expect(a.Negate().Value().Int64()).Should(Equal(int64(3)))
	})
})

var _ = Describe("MultiModExp", func() {
	It("matches naive exponentiation", func() {
		p := big.NewInt(47)
		bases := []*big.Int{big.NewInt(2), big.NewInt(4), big.NewInt(9)}
		exponents := []*big.Int{big.NewInt(13), big.NewInt(7), big.NewInt(22)}
		expected := big.NewInt(1)
		for i := range bases {
			term := new(big.Int).Exp(bases[i], exponents[i], p)
			expected.Mul(expected, term)
			expected.Mod(expected, p)
		}
		result, err := MultiModExp(bases, exponents, p)
		Expect(err).Should(BeNil())
		Expect(result.Cmp(expected)).Should(Equal(0))
	})

	It("handles all-zero exponents", func() {
		result, err := MultiModExp([]*big.Int{big.NewInt(3)}, []*big.Int{big.NewInt(0)}, big.NewInt(47))
		Expect(err).Should(BeNil())
		Expect(result.Int64()).Should(Equal(int64(1)))
	})

	It("rejects mismatched lengths", func() {
		_, err := MultiModExp([]*big.Int{big.NewInt(3)}, nil, big.NewInt(47))
		Expect(err).Should(Equal(ErrMismatchedLengths))
	})

	It("matches large random instances", func() {
		p, _ := new(big.Int).SetString("ffffffffffffffc5", 16)
		bases := make([]*big.Int, 5)
		exponents := make([]*big.Int, 5)
		expected := big.NewInt(1)
		for i := range bases {
			bases[i], _ = rand.Int(rand.Reader, p)
			exponents[i], _ = rand.Int(rand.Reader, p)
			term := new(big.Int).Exp(bases[i], exponents[i], p)
			expected.Mul(expected, term)
			expected.Mod(expected, p)
		}
		result, err := MultiModExp(bases, exponents, p)
		Expect(err).Should(BeNil())
		Expect(result.Cmp(expected)).Should(Equal(0))
	})
})

var _ = Describe("GenGqGroup", func() {
	It("generates a valid small group", func() {
		g, err := GenGqGroup(rand.Reader, 32)
		Expect(err).Should(BeNil())
		Expect(g.P().BitLen()).Should(Equal(32))
		expectedP := new(big.Int).Lsh(g.Q(), 1)
		expectedP.Add(expectedP, big.NewInt(1))
		Expect(g.P().Cmp(expectedP)).Should(Equal(0))
		Expect(g.P().ProbablyPrime(30)).Should(BeTrue())
		Expect(g.Q().ProbablyPrime(30)).Should(BeTrue())
	})
})
