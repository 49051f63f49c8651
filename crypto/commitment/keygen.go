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

package commitment

import (
	"errors"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

const commitmentKeySeed = "commitmentKey"

// maxKeyDerivationAttempts bounds the counter search per key element. The
// probability of a single rejection is already negligible.
var maxKeyDerivationAttempts = 256

// ErrKeyDerivationFailed is returned if no valid key element was found within
// the attempt bound.
var ErrKeyDerivationFailed = errors.New("commitment key derivation exceeded its attempt bound")

// GenVerifiableCommitmentKey derives a commitment key of size nu
// deterministically from the group parameters, so any verifier can re-derive
// and check it. Element i is HashAndSquare of ("commitmentKey", i, counter),
// with the counter advanced past the identity and the generator.
func GenVerifiableCommitmentKey(hs *hashing.HashService, nu int, g *group.GqGroup) (*CommitmentKey, error) {
	if nu < 1 {
		return nil, ErrEmptyKey
	}
	h, err := deriveKeyElement(hs, 0, g)
	if err != nil {
		return nil, err
	}
	gs := make([]*group.GqElement, nu)
	for i := 1; i <= nu; i++ {
		gs[i-1], err = deriveKeyElement(hs, i, g)
		if err != nil {
			return nil, err
		}
	}
	vector, err := matrix.NewGqVector(gs)
	if err != nil {
		return nil, err
	}
	return NewCommitmentKey(h, vector)
}

// GenRandomCommitmentKey draws a commitment key of size nu with uniform
// exponents. Unlike the verifiable derivation it cannot be re-derived by a
// verifier; it serves groups too small for HashAndSquare.
func GenRandomCommitmentKey(rs *random.RandomService, nu int, g *group.GqGroup) (*CommitmentKey, error) {
	if nu < 1 {
		return nil, ErrEmptyKey
	}
	elements := make([]*group.GqElement, nu+1)
	zq := group.ZqGroupSameOrderAs(g)
	generator := g.Generator()
	for i := range elements {
		for attempt := 0; ; attempt++ {
			if attempt >= maxKeyDerivationAttempts {
				return nil, ErrKeyDerivationFailed
			}
			exponent, err := rs.GenRandomZqElement(zq)
			if err != nil {
				return nil, err
			}
			candidate, err := generator.Exponentiate(exponent)
			if err != nil {
				return nil, err
			}
			if candidate.IsIdentity() || candidate.Equal(generator) {
				continue
			}
			elements[i] = candidate
			break
		}
	}
	gs, err := matrix.NewGqVector(elements[1:])
	if err != nil {
		return nil, err
	}
	return NewCommitmentKey(elements[0], gs)
}

func deriveKeyElement(hs *hashing.HashService, index int, g *group.GqGroup) (*group.GqElement, error) {
	generator := g.Generator()
	for counter := 0; counter < maxKeyDerivationAttempts; counter++ {
		candidate, err := group.HashAndSquare(hs, hashing.List(
			hashing.Text(commitmentKeySeed),
			hashing.Uint(uint64(index)),
			hashing.Uint(uint64(counter)),
		), g)
		if err != nil {
			return nil, err
		}
		if candidate.IsIdentity() || candidate.Equal(generator) {
			continue
		}
		return candidate, nil
	}
	return nil, ErrKeyDerivationFailed
}
