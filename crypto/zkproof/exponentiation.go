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

package zkproof

import (
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

const exponentiationTag = "ExponentiationProof"

/*
	Exponentiation proof: for a vector of bases (g_0 .. g_n-1) and statement
	(y_0 .. y_n-1), proves knowledge of a single x with y_i = g_i^x for all i.
	The homomorphism is phi(x) = (g_0^x, ..., g_n-1^x).
*/

// ExponentiationProof is the challenge and response of an exponentiation proof.
type ExponentiationProof struct {
	e *group.ZqElement
	z *group.ZqElement
}

// NewExponentiationProof wraps a challenge and response of one Zq group.
func NewExponentiationProof(e, z *group.ZqElement) (*ExponentiationProof, error) {
	if !e.Group().Equal(z.Group()) {
		return nil, ErrDifferentGroups
	}
	return &ExponentiationProof{e: e, z: z}, nil
}

// E returns the challenge.
func (p *ExponentiationProof) E() *group.ZqElement { return p.e }

// Z returns the response.
func (p *ExponentiationProof) Z() *group.ZqElement { return p.z }

// Equal reports element-wise equality.
func (p *ExponentiationProof) Equal(other *ExponentiationProof) bool {
	return other != nil && p.e.Equal(other.e) && p.z.Equal(other.z)
}

// HashableForm projects the proof to the list (e, z).
func (p *ExponentiationProof) HashableForm() hashing.Hashable {
	return hashing.List(p.e.HashableForm(), p.z.HashableForm())
}

// PhiExponentiation raises every base to the exponent.
func PhiExponentiation(x *group.ZqElement, bases *matrix.GqVector) (*matrix.GqVector, error) {
	if bases.Size() == 0 {
		return nil, ErrEmptyStatement
	}
	if !bases.Group().HasSameOrderAs(x.Group()) {
		return nil, ErrDifferentOrders
	}
	return bases.Exponentiate(x)
}

// GenExponentiationProof proves y_i = bases_i^x for a common x.
func GenExponentiationProof(rs *random.RandomService, hs *hashing.HashService,
	x *group.ZqElement, bases, y *matrix.GqVector, aux []string) (*ExponentiationProof, error) {

	if err := checkExponentiationStatement(bases, y); err != nil {
		return nil, err
	}
	if !bases.Group().HasSameOrderAs(x.Group()) {
		return nil, ErrDifferentOrders
	}
	b, err := rs.GenRandomZqElement(x.Group())
	if err != nil {
		return nil, err
	}
	return genExponentiationProof(hs, b, x, bases, y, aux)
}

func genExponentiationProof(hs *hashing.HashService, b, x *group.ZqElement,
	bases, y *matrix.GqVector, aux []string) (*ExponentiationProof, error) {

	commitment, err := PhiExponentiation(b, bases)
	if err != nil {
		return nil, err
	}
	e, err := exponentiationChallenge(hs, bases, y, commitment, aux)
	if err != nil {
		return nil, err
	}
	z, err := respond(b, e, x)
	if err != nil {
		return nil, err
	}
	return &ExponentiationProof{e: e, z: z}, nil
}

// VerifyExponentiationProof recomputes the challenge from the reconstructed
// commitment and reports whether it matches.
func VerifyExponentiationProof(hs *hashing.HashService, proof *ExponentiationProof,
	bases, y *matrix.GqVector, aux []string) (bool, error) {

	if err := checkExponentiationStatement(bases, y); err != nil {
		return false, err
	}
	if !bases.Group().HasSameOrderAs(proof.e.Group()) {
		return false, ErrDifferentOrders
	}
	image, err := PhiExponentiation(proof.z, bases)
	if err != nil {
		return false, err
	}
	unblinded, err := y.Exponentiate(proof.e.Negate())
	if err != nil {
		return false, err
	}
	commitment, err := image.Multiply(unblinded)
	if err != nil {
		return false, err
	}
	e, err := exponentiationChallenge(hs, bases, y, commitment, aux)
	if err != nil {
		return false, err
	}
	return e.Equal(proof.e), nil
}

func checkExponentiationStatement(bases, y *matrix.GqVector) error {
	if bases.Size() == 0 || y.Size() == 0 {
		return ErrEmptyStatement
	}
	if bases.Size() != y.Size() {
		return ErrSizeMismatch
	}
	if !bases.Group().Equal(y.Group()) {
		return ErrDifferentGroups
	}
	return nil
}

func exponentiationChallenge(hs *hashing.HashService, bases, y, commitment *matrix.GqVector, aux []string) (*group.ZqElement, error) {
	g := bases.Group()
	f := hashing.List(
		hashing.Number(g.P()),
		hashing.Number(g.Q()),
		bases.HashableForm(),
	)
	return challenge(hs, group.ZqGroupSameOrderAs(g),
		f,
		y.HashableForm(),
		commitment.HashableForm(),
		auxiliaryList(exponentiationTag, nil, aux),
	)
}
