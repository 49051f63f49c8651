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
package matrix

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
)

func TestMatrix(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Matrix Suite")
}

func testGqGroup() *group.GqGroup {
	g, err := group.NewGqGroup(big.NewInt(47), big.NewInt(23), big.NewInt(2))
	Expect(err).Should(BeNil())
	return g
}

func gqElement(v int64, g *group.GqGroup) *group.GqElement {
	e, err := group.NewGqElement(big.NewInt(v), g)
	Expect(err).Should(BeNil())
	return e
}

func zqElement(v int64, z *group.ZqGroup) *group.ZqElement {
	e, err := group.NewZqElement(big.NewInt(v), z)
	Expect(err).Should(BeNil())
	return e
}

func zqVector(z *group.ZqGroup, values ...int64) *ZqVector {
	elements := make([]*group.ZqElement, len(values))
	for i, v := range values {
		elements[i] = zqElement(v, z)
	}
	vector, err := NewZqVector(elements)
	Expect(err).Should(BeNil())
	return vector
}

var _ = Describe("GqVector", func() {
	var g *group.GqGroup
	var zq *group.ZqGroup

	BeforeEach(func() {
		g = testGqGroup()
		zq = group.ZqGroupSameOrderAs(g)
	})

	It("rejects an empty slice without a group", func() {
		_, err := NewGqVector(nil)
		Expect(err).Should(Equal(ErrEmptyWithoutGroup))
	})

	It("builds the empty vector with an explicit group", func() {
		v := EmptyGqVector(g)
		Expect(v.Size()).Should(Equal(0))
		Expect(v.Group().Equal(g)).Should(BeTrue())
	})

	It("preserves insertion order and 0-indexed access", func() {
		v, err := NewGqVector([]*group.GqElement{gqElement(4, g), gqElement(9, g)})
		Expect(err).Should(BeNil())
		first, err := v.Get(0)
		Expect(err).Should(BeNil())
		Expect(first.Value().Int64()).Should(Equal(int64(4)))
		_, err = v.Get(2)
		Expect(err).Should(Equal(ErrIndexOutOfRange))
	})

	It("appends, prepends and concatenates immutably", func() {
		v, err := NewGqVector([]*group.GqElement{gqElement(4, g)})
		Expect(err).Should(BeNil())
		appended, err := v.Append(gqElement(9, g))
		Expect(err).Should(BeNil())
		prepended, err := appended.Prepend(gqElement(2, g))
		Expect(err).Should(BeNil())
		Expect(v.Size()).Should(Equal(1))
		Expect(prepended.Size()).Should(Equal(3))
		head, _ := prepended.Get(0)
		Expect(head.Value().Int64()).Should(Equal(int64(2)))
		both, err := v.Concat(appended)
		Expect(err).Should(BeNil())
		Expect(both.Size()).Should(Equal(3))
	})

	It("multiplies element-wise and exponentiates", func() {
		a, _ := NewGqVector([]*group.GqElement{gqElement(2, g), gqElement(4, g)})
		b, _ := NewGqVector([]*group.GqElement{gqElement(4, g), gqElement(4, g)})
		product, err := a.Multiply(b)
		Expect(err).Should(BeNil())
		first, _ := product.Get(0)
		second, _ := product.Get(1)
		Expect(first.Value().Int64()).Should(Equal(int64(8)))
		Expect(second.Value().Int64()).Should(Equal(int64(16)))

		squared, err := a.Exponentiate(zqElement(2, zq))
		Expect(err).Should(BeNil())
		first, _ = squared.Get(0)
		Expect(first.Value().Int64()).Should(Equal(int64(4)))
	})

	It("multi-exponentiates against a Zq vector", func() {
		bases, _ := NewGqVector([]*group.GqElement{gqElement(2, g), gqElement(4, g)})
		result, err := bases.MultiExponentiate(zqVector(zq, 3, 2))
		Expect(err).Should(BeNil())
		// 2^3 * 4^2 = 128 mod 47 = 34
		Expect(result.Value().Int64()).Should(Equal(int64(34)))
	})
})

var _ = Describe("ZqVector", func() {
	var zq *group.ZqGroup

	BeforeEach(func() {
		zq = group.ZqGroupSameOrderAs(testGqGroup())
	})

	It("adds and hadamard-multiplies element-wise", func() {
		a := zqVector(zq, 20, 5)
		b := zqVector(zq, 5, 7)
		sum, err := a.Add(b)
		Expect(err).Should(BeNil())
		Expect(sum.Equal(zqVector(zq, 2, 12))).Should(BeTrue())
		product, err := a.HadamardProduct(b)
		Expect(err).Should(BeNil())
		Expect(product.Equal(zqVector(zq, 8, 12))).Should(BeTrue())
	})

	It("computes inner products and products", func() {
		a := zqVector(zq, 3, 4)
		b := zqVector(zq, 5, 6)
		inner, err := a.InnerProduct(b)
		Expect(err).Should(BeNil())
		// 15 + 24 = 39 mod 23 = 16
		Expect(inner.Value().Int64()).Should(Equal(int64(16)))
		Expect(a.Product().Value().Int64()).Should(Equal(int64(12)))
	})

	It("rejects mismatched sizes", func() {
		_, err := zqVector(zq, 1, 2).Add(zqVector(zq, 1))
		Expect(err).Should(Equal(ErrDifferentSizes))
	})
})

var _ = Describe("ZqMatrix", func() {
	var zq *group.ZqGroup

	BeforeEach(func() {
		zq = group.ZqGroupSameOrderAs(testGqGroup())
	})

	It("builds from rows and transposes", func() {
		m, err := NewZqMatrix([]*ZqVector{zqVector(zq, 1, 2, 3), zqVector(zq, 4, 5, 6)})
		Expect(err).Should(BeNil())
		Expect(m.NumRows()).Should(Equal(2))
		Expect(m.NumColumns()).Should(Equal(3))
		element, err := m.Get(1, 2)
		Expect(err).Should(BeNil())
		Expect(element.Value().Int64()).Should(Equal(int64(6)))

		t := m.Transpose()
		Expect(t.NumRows()).Should(Equal(3))
		Expect(t.NumColumns()).Should(Equal(2))
		element, err = t.Get(2, 1)
		Expect(err).Should(BeNil())
		Expect(element.Value().Int64()).Should(Equal(int64(6)))
		Expect(t.Transpose().Equal(m)).Should(BeTrue())
	})

	It("rejects inconsistent rows", func() {
		_, err := NewZqMatrix([]*ZqVector{zqVector(zq, 1, 2), zqVector(zq, 3)})
		Expect(err).Should(Equal(ErrInconsistentRows))
	})

	It("extracts rows and columns as views", func() {
		m, _ := NewZqMatrix([]*ZqVector{zqVector(zq, 1, 2), zqVector(zq, 3, 4)})
		row, err := m.Row(1)
		Expect(err).Should(BeNil())
		Expect(row.Equal(zqVector(zq, 3, 4))).Should(BeTrue())
		column, err := m.Column(0)
		Expect(err).Should(BeNil())
		Expect(column.Equal(zqVector(zq, 1, 3))).Should(BeTrue())
	})

	It("arranges a vector column by column", func() {
		v := zqVector(zq, 1, 2, 3, 4, 5, 6)
		m, err := ZqMatrixFromVector(v, 3, 2)
		Expect(err).Should(BeNil())
		// Column 0 is (1, 2, 3), column 1 is (4, 5, 6).
		column, err := m.Column(0)
		Expect(err).Should(BeNil())
		Expect(column.Equal(zqVector(zq, 1, 2, 3))).Should(BeTrue())
		column, err = m.Column(1)
		Expect(err).Should(BeNil())
		Expect(column.Equal(zqVector(zq, 4, 5, 6))).Should(BeTrue())

		_, err = ZqMatrixFromVector(v, 4, 2)
		Expect(err).Should(Equal(ErrBadDecomposition))
	})
})
