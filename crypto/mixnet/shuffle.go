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
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

// Shuffle is the output of GenShuffle: the re-encrypted and permuted
// ciphertexts together with the witness needed to argue correctness.
type Shuffle struct {
	ciphertexts []*elgamal.Ciphertext
	permutation []int
	exponents   *matrix.ZqVector
}

// Ciphertexts returns the shuffled ciphertext list.
func (s *Shuffle) Ciphertexts() []*elgamal.Ciphertext {
	out := make([]*elgamal.Ciphertext, len(s.ciphertexts))
	copy(out, s.ciphertexts)
	return out
}

// Permutation returns the permutation: output i originates from input
// position permutation[i].
func (s *Shuffle) Permutation() []int {
	out := make([]int, len(s.permutation))
	copy(out, s.permutation)
	return out
}

// Exponents returns the re-encryption exponents, one per output position.
func (s *Shuffle) Exponents() *matrix.ZqVector {
	return s.exponents
}

// GenShuffle permutes and re-encrypts the given ciphertexts:
// out_i = ReEncrypt(in_{pi(i)}, rho_i). At least two ciphertexts are needed.
func GenShuffle(rs *random.RandomService, cs []*elgamal.Ciphertext, pk *elgamal.PublicKey) (*Shuffle, error) {
	if len(cs) < 2 {
		return nil, ErrInvalidStatement
	}
	if err := checkCiphertextVector(cs, pk.Group(), pk.Size()); err != nil {
		return nil, err
	}
	n := len(cs)
	pi, err := rs.GenPermutation(n)
	if err != nil {
		return nil, err
	}
	zq := group.ZqGroupSameOrderAs(pk.Group())
	rho, err := rs.GenRandomVector(zq, n)
	if err != nil {
		return nil, err
	}
	out := make([]*elgamal.Ciphertext, n)
	for i := 0; i < n; i++ {
		r, err := rho.Get(i)
		if err != nil {
			return nil, err
		}
		out[i], err = elgamal.ReEncrypt(cs[pi[i]], r, pk)
		if err != nil {
			return nil, err
		}
	}
	return &Shuffle{ciphertexts: out, permutation: pi, exponents: rho}, nil
}
