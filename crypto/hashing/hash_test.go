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
package hashing

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/sha3"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/conversions"
)

func TestHashing(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hashing Suite")
}

func sum256(frames ...[]byte) []byte {
	h := sha3.New256()
	for _, f := range frames {
		h.Write(f)
	}
	return h.Sum(nil)
}

var _ = Describe("RecursiveHash", func() {
	var service *HashService

	BeforeEach(func() {
		service = NewHashService()
	})

	It("tags a byte array with 0x00", func() {
		out, err := service.RecursiveHash(Bytes([]byte{0x61}))
		Expect(err).Should(BeNil())
		Expect(out).Should(Equal(sum256([]byte{0x00}, []byte{0x61})))
	})

	It("tags an integer with 0x01", func() {
		out, err := service.RecursiveHash(Number(big.NewInt(256)))
		Expect(err).Should(BeNil())
		Expect(out).Should(Equal(sum256([]byte{0x01}, []byte{0x01, 0x00})))
	})

	It("tags a string with 0x02", func() {
		out, err := service.RecursiveHash(Text("a"))
		Expect(err).Should(BeNil())
		Expect(out).Should(Equal(sum256([]byte{0x02}, []byte{0x61})))
	})

	It("separates a byte array from the equal UTF-8 string", func() {
		asBytes, err := service.RecursiveHash(Bytes([]byte("a")))
		Expect(err).Should(BeNil())
		asString, err := service.RecursiveHash(Text("a"))
		Expect(err).Should(BeNil())
		Expect(asBytes).ShouldNot(Equal(asString))
	})

	It("hashes a list as the hash of its element hashes", func() {
		out, err := service.RecursiveHash(List(Text("a"), Number(big.NewInt(5))))
		Expect(err).Should(BeNil())
		inner1 := sum256([]byte{0x02}, []byte{0x61})
		inner2 := sum256([]byte{0x01}, []byte{0x05})
		Expect(out).Should(Equal(sum256([]byte{0x03}, inner1, inner2)))
	})

	It("distinguishes a singleton list from its element", func() {
		element, err := service.RecursiveHash(Text("a"))
		Expect(err).Should(BeNil())
		list, err := service.RecursiveHash(List(Text("a")))
		Expect(err).Should(BeNil())
		Expect(list).ShouldNot(Equal(element))
	})

	It("treats multiple arguments as the list of the arguments", func() {
		multi, err := service.RecursiveHash(Text("a"), Number(big.NewInt(5)))
		Expect(err).Should(BeNil())
		asList, err := service.RecursiveHash(List(Text("a"), Number(big.NewInt(5))))
		Expect(err).Should(BeNil())
		Expect(multi).Should(Equal(asList))
	})

	It("follows domain projections", func() {
		out, err := service.RecursiveHash(projected{})
		Expect(err).Should(BeNil())
		direct, err := service.RecursiveHash(Text("projected"))
		Expect(err).Should(BeNil())
		Expect(out).Should(Equal(direct))
	})

	DescribeTable("rejects empty input", func(run func() error) {
		Expect(run()).Should(Equal(ErrEmptyHash))
	},
		Entry("no arguments", func() error {
			_, err := NewHashService().RecursiveHash()
			return err
		}),
		Entry("empty list", func() error {
			_, err := NewHashService().RecursiveHash(HashableList{})
			return err
		}),
		Entry("nested empty list", func() error {
			_, err := NewHashService().RecursiveHash(List(Text("a"), HashableList{}))
			return err
		}),
	)

	It("rejects negative integers", func() {
		_, err := service.RecursiveHash(Number(big.NewInt(-5)))
		Expect(err).Should(Equal(ErrNegativeNumber))
	})
})

var _ = Describe("RecursiveHashOfLength", func() {
	var service *HashService

	BeforeEach(func() {
		service = NewHashService()
	})

	It("produces ceil(l/8) bytes cut to l bits", func() {
		out, err := service.RecursiveHashOfLength(20, Text("a"))
		Expect(err).Should(BeNil())
		Expect(out).Should(HaveLen(3))
		Expect(out[0] & 0xF0).Should(Equal(byte(0)))
	})

	It("matches a direct SHAKE-256 reconstruction", func() {
		x := sha3.NewShake256()
		x.Write([]byte{0x02})
		x.Write([]byte("a"))
		expected := make([]byte, 4)
		x.Read(expected)
		out, err := service.RecursiveHashOfLength(32, Text("a"))
		Expect(err).Should(BeNil())
		Expect(out).Should(Equal(expected))
	})

	It("enforces the minimal output length", func() {
		strict := NewHashServiceWithMinOutputBits(512)
		_, err := strict.RecursiveHashOfLength(64, Text("a"))
		Expect(err).Should(Equal(ErrOutputLengthTooSmall))
	})
})

var _ = Describe("RecursiveHashToZq", func() {
	It("stays below q", func() {
		service := NewHashService()
		q := big.NewInt(23)
		for i := int64(0); i < 50; i++ {
			u, err := service.RecursiveHashToZq(q, Number(big.NewInt(i)))
			Expect(err).Should(BeNil())
			Expect(u.Sign()).Should(BeNumerically(">=", 0))
			Expect(u.Cmp(q)).Should(Equal(-1))
		}
	})

	It("is deterministic", func() {
		service := NewHashService()
		q, _ := new(big.Int).SetString("ffffffffffffffc5", 16)
		first, err := service.RecursiveHashToZq(q, Text("challenge"), Number(big.NewInt(7)))
		Expect(err).Should(BeNil())
		second, err := service.RecursiveHashToZq(q, Text("challenge"), Number(big.NewInt(7)))
		Expect(err).Should(BeNil())
		Expect(first.Cmp(second)).Should(Equal(0))
	})

	It("depends on the argument order", func() {
		service := NewHashService()
		q, _ := new(big.Int).SetString("ffffffffffffffc5", 16)
		first, err := service.RecursiveHashToZq(q, Text("a"), Text("b"))
		Expect(err).Should(BeNil())
		second, err := service.RecursiveHashToZq(q, Text("b"), Text("a"))
		Expect(err).Should(BeNil())
		Expect(first.Cmp(second)).ShouldNot(Equal(0))
	})
})

// projected exercises the domain-projection variant.
type projected struct{}

func (projected) HashableForm() Hashable { return Text("projected") }

var _ = Describe("CutToBitLength interplay", func() {
	It("masks the hash output like the conversion primitive", func() {
		service := NewHashService()
		full, err := service.RecursiveHashOfLength(24, Text("x"))
		Expect(err).Should(BeNil())
		masked, err := conversions.CutToBitLength(full, 24)
		Expect(err).Should(BeNil())
		Expect(masked).Should(Equal(full))
	})
})
