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
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

const plaintextEqualityTag = "PlaintextEqualityProof"

/*
	Plaintext-equality proof: two single-phi ciphertexts c = (c0, c1) under h
	and c' = (c'0, c'1) under h' decrypt to the same message. The preimage is
	the pair of encryption exponents (x, x') and the homomorphism is

		phi(x, x') = (g^x, g^x', h^x / h'^x')

	mapping the preimage onto (c0, c'0, c1/c'1).
*/

// PlaintextEqualityProof is the challenge and the two-element response.
type PlaintextEqualityProof struct {
	e *group.ZqElement
	z *matrix.ZqVector
}

// NewPlaintextEqualityProof wraps a challenge and a response vector of size 2.
func NewPlaintextEqualityProof(e *group.ZqElement, z *matrix.ZqVector) (*PlaintextEqualityProof, error) {
	if z.Size() != 2 {
		return nil, ErrSizeMismatch
	}
	if !e.Group().Equal(z.Group()) {
		return nil, ErrDifferentGroups
	}
	return &PlaintextEqualityProof{e: e, z: z}, nil
}

// E returns the challenge.
func (p *PlaintextEqualityProof) E() *group.ZqElement { return p.e }

// Z returns the response vector.
func (p *PlaintextEqualityProof) Z() *matrix.ZqVector { return p.z }

// Equal reports element-wise equality.
func (p *PlaintextEqualityProof) Equal(other *PlaintextEqualityProof) bool {
	return other != nil && p.e.Equal(other.e) && p.z.Equal(other.z)
}

// HashableForm projects the proof to the list (e, z).
func (p *PlaintextEqualityProof) HashableForm() hashing.Hashable {
	return hashing.List(p.e.HashableForm(), p.z.HashableForm())
}

// PhiPlaintextEquality evaluates the proof homomorphism on (x, x') with the
// public keys h and h'.
func PhiPlaintextEquality(x, xPrime *group.ZqElement, h, hPrime *group.GqElement) (*matrix.GqVector, error) {
	if !h.Group().Equal(hPrime.Group()) {
		return nil, ErrDifferentGroups
	}
	if !h.Group().HasSameOrderAs(x.Group()) || !x.Group().Equal(xPrime.Group()) {
		return nil, ErrDifferentOrders
	}
	g := h.Group().Generator()
	first, err := g.Exponentiate(x)
	if err != nil {
		return nil, err
	}
	second, err := g.Exponentiate(xPrime)
	if err != nil {
		return nil, err
	}
	hx, err := h.Exponentiate(x)
	if err != nil {
		return nil, err
	}
	hPrimeX, err := hPrime.Exponentiate(xPrime)
	if err != nil {
		return nil, err
	}
	third, err := hx.Divide(hPrimeX)
	if err != nil {
		return nil, err
	}
	return matrix.NewGqVector([]*group.GqElement{first, second, third})
}

// GenPlaintextEqualityProof proves that c and cPrime encrypt the same message
// under h and hPrime with exponents x and xPrime.
func GenPlaintextEqualityProof(rs *random.RandomService, hs *hashing.HashService,
	c, cPrime *elgamal.Ciphertext, h, hPrime *group.GqElement,
	x, xPrime *group.ZqElement, aux []string) (*PlaintextEqualityProof, error) {

	if err := checkPlaintextEqualityStatement(c, cPrime, h, hPrime); err != nil {
		return nil, err
	}
	zq := x.Group()
	b0, err := rs.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}
	b1, err := rs.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}
	return genPlaintextEqualityProof(hs, b0, b1, c, cPrime, h, hPrime, x, xPrime, aux)
}

func genPlaintextEqualityProof(hs *hashing.HashService, b0, b1 *group.ZqElement,
	c, cPrime *elgamal.Ciphertext, h, hPrime *group.GqElement,
	x, xPrime *group.ZqElement, aux []string) (*PlaintextEqualityProof, error) {

	commitment, err := PhiPlaintextEquality(b0, b1, h, hPrime)
	if err != nil {
		return nil, err
	}
	e, err := plaintextEqualityChallenge(hs, c, cPrime, h, hPrime, commitment, aux)
	if err != nil {
		return nil, err
	}
	z0, err := respond(b0, e, x)
	if err != nil {
		return nil, err
	}
	z1, err := respond(b1, e, xPrime)
	if err != nil {
		return nil, err
	}
	z, err := matrix.NewZqVector([]*group.ZqElement{z0, z1})
	if err != nil {
		return nil, err
	}
	return &PlaintextEqualityProof{e: e, z: z}, nil
}

// VerifyPlaintextEqualityProof recomputes the challenge from the
// reconstructed commitment and reports whether it matches.
func VerifyPlaintextEqualityProof(hs *hashing.HashService, proof *PlaintextEqualityProof,
	c, cPrime *elgamal.Ciphertext, h, hPrime *group.GqElement, aux []string) (bool, error) {

	if err := checkPlaintextEqualityStatement(c, cPrime, h, hPrime); err != nil {
		return false, err
	}
	if !h.Group().HasSameOrderAs(proof.e.Group()) {
		return false, ErrDifferentOrders
	}
	z0, err := proof.z.Get(0)
	if err != nil {
		return false, err
	}
	z1, err := proof.z.Get(1)
	if err != nil {
		return false, err
	}
	image, err := PhiPlaintextEquality(z0, z1, h, hPrime)
	if err != nil {
		return false, err
	}
	statement, err := plaintextEqualityStatementImage(c, cPrime)
	if err != nil {
		return false, err
	}
	unblinded, err := statement.Exponentiate(proof.e.Negate())
	if err != nil {
		return false, err
	}
	commitment, err := image.Multiply(unblinded)
	if err != nil {
		return false, err
	}
	e, err := plaintextEqualityChallenge(hs, c, cPrime, h, hPrime, commitment, aux)
	if err != nil {
		return false, err
	}
	return e.Equal(proof.e), nil
}

func checkPlaintextEqualityStatement(c, cPrime *elgamal.Ciphertext, h, hPrime *group.GqElement) error {
	if c.Size() != 1 || cPrime.Size() != 1 {
		return ErrSizeMismatch
	}
	if !c.Group().Equal(cPrime.Group()) || !c.Group().Equal(h.Group()) || !h.Group().Equal(hPrime.Group()) {
		return ErrDifferentGroups
	}
	return nil
}

// plaintextEqualityStatementImage returns (c0, c'0, c1/c'1), the image of the
// preimage under phi.
func plaintextEqualityStatementImage(c, cPrime *elgamal.Ciphertext) (*matrix.GqVector, error) {
	c1, err := c.Phis().Get(0)
	if err != nil {
		return nil, err
	}
	cPrime1, err := cPrime.Phis().Get(0)
	if err != nil {
		return nil, err
	}
	quotient, err := c1.Divide(cPrime1)
	if err != nil {
		return nil, err
	}
	return matrix.NewGqVector([]*group.GqElement{c.Gamma(), cPrime.Gamma(), quotient})
}

func plaintextEqualityChallenge(hs *hashing.HashService, c, cPrime *elgamal.Ciphertext,
	h, hPrime *group.GqElement, commitment *matrix.GqVector, aux []string) (*group.ZqElement, error) {

	g := h.Group()
	statement, err := plaintextEqualityStatementImage(c, cPrime)
	if err != nil {
		return nil, err
	}
	c1, err := c.Phis().Get(0)
	if err != nil {
		return nil, err
	}
	cPrime1, err := cPrime.Phis().Get(0)
	if err != nil {
		return nil, err
	}
	f := hashing.List(
		hashing.Number(g.P()),
		hashing.Number(g.Q()),
		hashing.Number(g.Generator().Value()),
		h.HashableForm(),
		hPrime.HashableForm(),
	)
	hAux := auxiliaryList(plaintextEqualityTag, []hashing.Hashable{c1.HashableForm(), cPrime1.HashableForm()}, aux)
	return challenge(hs, group.ZqGroupSameOrderAs(g), f, statement.HashableForm(), commitment.HashableForm(), hAux)
}

// respond computes b + e*x mod q.
func respond(b, e, x *group.ZqElement) (*group.ZqElement, error) {
	ex, err := e.Multiply(x)
	if err != nil {
		return nil, err
	}
	return b.Add(ex)
}
