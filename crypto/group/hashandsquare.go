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

package group

import (
	"errors"
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

// ErrHashTooLongForGroup is returned if the hash output does not fit below
// the group order.
var ErrHashTooLongForGroup = errors.New("hash output length must be smaller than the group order bit length")

// HashAndSquare maps a hashable value into the quadratic-residue group:
// h' = RecursiveHashToZq(q-1, x) + 1 in [1, q-1], result h'^2 mod p.
func HashAndSquare(hs *hashing.HashService, x hashing.Hashable, g *GqGroup) (*GqElement, error) {
	if hs.HashLengthBits() >= g.q.BitLen() {
		return nil, ErrHashTooLongForGroup
	}
	qMinusOne := new(big.Int).Sub(g.q, big1)
	u, err := hs.RecursiveHashToZq(qMinusOne, x)
	if err != nil {
		return nil, err
	}
	root := new(big.Int).Add(u, big1)
	return GqElementFromSquareRoot(root, g)
}
