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

package mixnet

import (
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/commitment"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
)

// powers returns (x^0, x^1, ..., x^{count-1}).
func powers(x *group.ZqElement, count int) (*matrix.ZqVector, error) {
	elements := make([]*group.ZqElement, count)
	elements[0] = x.Group().One()
	for i := 1; i < count; i++ {
		p, err := elements[i-1].Multiply(x)
		if err != nil {
			return nil, err
		}
		elements[i] = p
	}
	return matrix.NewZqVector(elements)
}

// constantVector returns the vector (v, v, ..., v) of the given size.
func constantVector(v *group.ZqElement, size int) (*matrix.ZqVector, error) {
	elements := make([]*group.ZqElement, size)
	for i := range elements {
		elements[i] = v
	}
	return matrix.NewZqVector(elements)
}

// starMap evaluates the bilinear map a * b = sum_j a_j * b_j * y^{j+1}.
func starMap(a, b *matrix.ZqVector, y *group.ZqElement) (*group.ZqElement, error) {
	if a.Size() != b.Size() {
		return nil, ErrInvalidStatement
	}
	yPower := y
	sum := y.Group().Identity()
	for j := 0; j < a.Size(); j++ {
		aj, err := a.Get(j)
		if err != nil {
			return nil, err
		}
		bj, err := b.Get(j)
		if err != nil {
			return nil, err
		}
		term, err := aj.Multiply(bj)
		if err != nil {
			return nil, err
		}
		term, err = term.Multiply(yPower)
		if err != nil {
			return nil, err
		}
		sum, err = sum.Add(term)
		if err != nil {
			return nil, err
		}
		yPower, err = yPower.Multiply(y)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// linearCombination returns sum_i coefficients_i * vectors_i, a vector.
func linearCombination(vectors []*matrix.ZqVector, coefficients []*group.ZqElement) (*matrix.ZqVector, error) {
	if len(vectors) == 0 || len(vectors) != len(coefficients) {
		return nil, ErrInvalidStatement
	}
	acc, err := vectors[0].MultiplyScalar(coefficients[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(vectors); i++ {
		term, err := vectors[i].MultiplyScalar(coefficients[i])
		if err != nil {
			return nil, err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// scalarCombination returns sum_i coefficients_i * scalars_i.
func scalarCombination(scalars, coefficients []*group.ZqElement) (*group.ZqElement, error) {
	if len(scalars) == 0 || len(scalars) != len(coefficients) {
		return nil, ErrInvalidStatement
	}
	sum := scalars[0].Group().Identity()
	for i := range scalars {
		term, err := scalars[i].Multiply(coefficients[i])
		if err != nil {
			return nil, err
		}
		sum, err = sum.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// commitOne commits to the single value v with randomness r.
func commitOne(ck *commitment.CommitmentKey, v *group.ZqElement, r *group.ZqElement) (*group.GqElement, error) {
	vec, err := matrix.NewZqVector([]*group.ZqElement{v})
	if err != nil {
		return nil, err
	}
	return ck.Commit(vec, r)
}

// ciphertextsHashable projects a ciphertext list to the ordered list of the
// ciphertext projections.
func ciphertextsHashable(cs []*elgamal.Ciphertext) hashing.Hashable {
	out := make(hashing.HashableList, len(cs))
	for i, c := range cs {
		out[i] = c.HashableForm()
	}
	return out
}

// checkCiphertextVector checks a non-empty ciphertext list of uniform size k
// in the given group with k <= keySize.
func checkCiphertextVector(cs []*elgamal.Ciphertext, g *group.GqGroup, keySize int) error {
	if len(cs) == 0 {
		return ErrInvalidStatement
	}
	k := cs[0].Size()
	if k > keySize {
		return ErrInvalidStatement
	}
	for _, c := range cs {
		if c == nil || c.Size() != k || !c.Group().Equal(g) {
			return ErrInvalidStatement
		}
	}
	return nil
}
