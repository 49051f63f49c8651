// Copyright © 2024 Cipheritall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashing

import (
	"math/big"
)

// Hashable is a value that can be fed to the recursive hash. The closed set of
// variants is: byte array, non-negative integer, string, non-empty list of
// hashables, and any domain type projecting to one of the previous four via
// HashableForm.
type Hashable interface {
	HashableForm() Hashable
}

// HashableByteArray is the byte-array variant.
type HashableByteArray []byte

func (h HashableByteArray) HashableForm() Hashable { return h }

// HashableString is the string variant.
type HashableString string

func (h HashableString) HashableForm() Hashable { return h }

// HashableNumber is the non-negative integer variant.
type HashableNumber struct {
	value *big.Int
}

func (h HashableNumber) HashableForm() Hashable { return h }

// Value returns the wrapped integer.
func (h HashableNumber) Value() *big.Int {
	return new(big.Int).Set(h.value)
}

// HashableList is the ordered list variant. It must be non-empty when hashed.
type HashableList []Hashable

func (h HashableList) HashableForm() Hashable { return h }

// Bytes wraps a byte array.
func Bytes(b []byte) HashableByteArray {
	out := make([]byte, len(b))
	copy(out, b)
	return HashableByteArray(out)
}

// Text wraps a string.
func Text(s string) HashableString {
	return HashableString(s)
}

// Number wraps a non-negative integer. Negativity is rejected at hash time.
func Number(x *big.Int) HashableNumber {
	return HashableNumber{value: new(big.Int).Set(x)}
}

// Uint wraps a machine integer.
func Uint(x uint64) HashableNumber {
	return HashableNumber{value: new(big.Int).SetUint64(x)}
}

// List wraps an ordered sequence of hashables.
func List(vs ...Hashable) HashableList {
	out := make(HashableList, len(vs))
	copy(out, vs)
	return out
}
