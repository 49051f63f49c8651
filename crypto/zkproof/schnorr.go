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
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

const schnorrTag = "SchnorrProof"

/*
	Schnorr proof of knowledge of x such that y = g^x.

	Step 1: the prover draws b uniform in Zq and computes c = g^b.
	Step 2: e = RecursiveHashToZq(q, (p,q,g), y, c, ("SchnorrProof", aux...)).
	Step 3: z = b + e*x mod q. The proof is (e, z).

	The verifier computes c' = g^z * y^(-e) and accepts iff the challenge
	recomputed with c' equals e.
*/

// SchnorrProof is the challenge and response of a Schnorr proof.
type SchnorrProof struct {
	e *group.ZqElement
	z *group.ZqElement
}

// NewSchnorrProof wraps a challenge and response of one Zq group.
func NewSchnorrProof(e, z *group.ZqElement) (*SchnorrProof, error) {
	if !e.Group().Equal(z.Group()) {
		return nil, ErrDifferentGroups
	}
	return &SchnorrProof{e: e, z: z}, nil
}

// E returns the challenge.
func (p *SchnorrProof) E() *group.ZqElement { return p.e }

// Z returns the response.
func (p *SchnorrProof) Z() *group.ZqElement { return p.z }

// Equal reports element-wise equality.
func (p *SchnorrProof) Equal(other *SchnorrProof) bool {
	return other != nil && p.e.Equal(other.e) && p.z.Equal(other.z)
}

// HashableForm projects the proof to the list (e, z).
func (p *SchnorrProof) HashableForm() hashing.Hashable {
	return hashing.List(p.e.HashableForm(), p.z.HashableForm())
}

// GenSchnorrProof proves knowledge of x with y = g^x.
func GenSchnorrProof(rs *random.RandomService, hs *hashing.HashService, x *group.ZqElement, y *group.GqElement, aux []string) (*SchnorrProof, error) {
	if !y.Group().HasSameOrderAs(x.Group()) {
		return nil, ErrDifferentOrders
	}
	b, err := rs.GenRandomZqElement(x.Group())
	if err != nil {
		return nil, err
	}
	return genSchnorrProof(hs, b, x, y, aux)
}

func genSchnorrProof(hs *hashing.HashService, b, x *group.ZqElement, y *group.GqElement, aux []string) (*SchnorrProof, error) {
	g := y.Group()
	c, err := g.Generator().Exponentiate(b)
	if err != nil {
		return nil, err
	}
	e, err := schnorrChallenge(hs, y, c, aux)
	if err != nil {
		return nil, err
	}
	ex, err := e.Multiply(x)
	if err != nil {
		return nil, err
	}
	z, err := b.Add(ex)
	if err != nil {
		return nil, err
	}
	return &SchnorrProof{e: e, z: z}, nil
}

// VerifySchnorrProof recomputes the challenge from the reconstructed
// commitment and reports whether it matches.
func VerifySchnorrProof(hs *hashing.HashService, proof *SchnorrProof, y *group.GqElement, aux []string) (bool, error) {
	if !y.Group().HasSameOrderAs(proof.e.Group()) {
		return false, ErrDifferentOrders
	}
	g := y.Group()
	gz, err := g.Generator().Exponentiate(proof.z)
	if err != nil {
		return false, err
	}
	yNegE, err := y.Exponentiate(proof.e.Negate())
	if err != nil {
		return false, err
	}
	c, err := gz.Multiply(yNegE)
	if err != nil {
		return false, err
	}
	e, err := schnorrChallenge(hs, y, c, aux)
	if err != nil {
		return false, err
	}
	return e.Equal(proof.e), nil
}

func schnorrChallenge(hs *hashing.HashService, y, c *group.GqElement, aux []string) (*group.ZqElement, error) {
	g := y.Group()
	return challenge(hs, group.ZqGroupSameOrderAs(g),
		g.HashableForm(),
		y.HashableForm(),
		c.HashableForm(),
		auxiliaryList(schnorrTag, nil, aux),
	)
}
