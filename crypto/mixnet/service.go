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

/*
Package mixnet implements the Bayer-Groth argument of a correct shuffle: a
zero-knowledge proof that a ciphertext list is a permutation and
re-encryption of another list.

The shuffle argument composes five sub-arguments: the product argument (which
itself wraps the Hadamard, zero and single-value product arguments) ties the
committed permutation to a public polynomial identity, and the
multi-exponentiation argument ties the committed x-powers of the permutation
to the re-encryption. Every sub-argument is an independently verifiable
Sigma-protocol made non-interactive with the recursive hash-to-Zq challenge.

Verification returns false on a challenge or equation mismatch and reserves
errors for malformed statements. Proof structures are size-checked before any
algebra, so adversarial proofs cannot cause unbounded work.
*/
package mixnet

import (
	"errors"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/commitment"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

var (
	// ErrDifferentGroups is returned if the service parts belong to different groups
	ErrDifferentGroups = errors.New("public key and commitment key belong to different groups")
	// ErrInvalidDimensions is returned if the requested (m, n) decomposition is invalid
	ErrInvalidDimensions = errors.New("invalid matrix dimensions")
	// ErrInvalidStatement is returned if a statement is malformed
	ErrInvalidStatement = errors.New("malformed statement")
	// ErrInvalidWitness is returned if a witness does not satisfy its relation
	ErrInvalidWitness = errors.New("witness does not satisfy the relation")
	// ErrInvalidArgument is returned if a proof structure is malformed
	ErrInvalidArgument = errors.New("malformed argument")
	// ErrKeyTooShort is returned if the commitment key cannot commit rows of size n
	ErrKeyTooShort = errors.New("commitment key shorter than the row size")
)

// ArgumentService generates and verifies shuffle arguments for one public key
// and one commitment key. It is stateless apart from its configuration and
// safe for concurrent use.
type ArgumentService struct {
	pk     *elgamal.PublicKey
	ck     *commitment.CommitmentKey
	random *random.RandomService
	hash   *hashing.HashService
}

// NewArgumentService checks that the keys share one group and wraps them.
func NewArgumentService(pk *elgamal.PublicKey, ck *commitment.CommitmentKey,
	rs *random.RandomService, hs *hashing.HashService) (*ArgumentService, error) {
	if !pk.Group().Equal(ck.Group()) {
		return nil, ErrDifferentGroups
	}
	return &ArgumentService{pk: pk, ck: ck, random: rs, hash: hs}, nil
}

// gqGroup returns the service group.
func (s *ArgumentService) gqGroup() *group.GqGroup {
	return s.pk.Group()
}

// zqGroup returns the exponent group of the service group.
func (s *ArgumentService) zqGroup() *group.ZqGroup {
	return group.ZqGroupSameOrderAs(s.pk.Group())
}

// GetMatrixDimensions decomposes N into (m, n) with N = m*n, m <= n and
// n >= 2, preferring the most balanced split. N must be at least 2.
func GetMatrixDimensions(n int) (int, int, error) {
	if n < 2 {
		return 0, 0, ErrInvalidDimensions
	}
	for i := intSqrt(n); i >= 1; i-- {
		if n%i == 0 && n/i >= 2 {
			return i, n / i, nil
		}
	}
	return 1, n, nil
}

func intSqrt(n int) int {
	i := 1
	for (i+1)*(i+1) <= n {
		i++
	}
	return i
}
