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
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
)

const multiExponentiationTag = "MultiExponentiationArgument"

/*
	Multi-exponentiation argument: for an m x n ciphertext matrix with rows
	C_1..C_m, a ciphertext C and commitments c_A to the columns a_1..a_m of
	an exponent matrix A, proves

		C = E(1; rho) * prod_i C_i^{a_i}

	The prover blinds A with a random column a_0 and publishes the diagonal
	products E_k of the ciphertext rows against the extended exponent
	columns; E_m is C itself.
*/

// MultiExponentiationStatement is (C-matrix, C, c_A).
type MultiExponentiationStatement struct {
	rows [][]*elgamal.Ciphertext
	c    *elgamal.Ciphertext
	cA   *matrix.GqVector
}

// NewMultiExponentiationStatement wraps an m x n ciphertext matrix, the
// claimed multi-exponentiation product and the exponent commitments.
func NewMultiExponentiationStatement(rows [][]*elgamal.Ciphertext, c *elgamal.Ciphertext, cA *matrix.GqVector) (*MultiExponentiationStatement, error) {
	m := len(rows)
	if m == 0 || cA.Size() != m {
		return nil, ErrInvalidStatement
	}
	n := len(rows[0])
	if n == 0 {
		return nil, ErrInvalidStatement
	}
	g := c.Group()
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrInvalidStatement
		}
		if err := checkCiphertextVector(row, g, c.Size()); err != nil {
			return nil, err
		}
		for _, ct := range row {
			if ct.Size() != c.Size() {
				return nil, ErrInvalidStatement
			}
		}
	}
	if !cA.Group().Equal(g) {
		return nil, ErrInvalidStatement
	}
	return &MultiExponentiationStatement{rows: rows, c: c, cA: cA}, nil
}

// MultiExponentiationWitness is (A, r, rho).
type MultiExponentiationWitness struct {
	a   *matrix.ZqMatrix
	r   *matrix.ZqVector
	rho *group.ZqElement
}

// NewMultiExponentiationWitness wraps the exponent matrix, the commitment
// randomness and the encryption randomness.
func NewMultiExponentiationWitness(a *matrix.ZqMatrix, r *matrix.ZqVector, rho *group.ZqElement) (*MultiExponentiationWitness, error) {
	if a.NumColumns() != r.Size() {
		return nil, ErrInvalidStatement
	}
	if !a.Group().Equal(r.Group()) || !a.Group().Equal(rho.Group()) {
		return nil, ErrInvalidStatement
	}
	return &MultiExponentiationWitness{a: a, r: r, rho: rho}, nil
}

// MultiExponentiationArgument is the proof record.
type MultiExponentiationArgument struct {
	cA0  *group.GqElement
	cB   *matrix.GqVector
	e    []*elgamal.Ciphertext
	aVec *matrix.ZqVector
	r    *group.ZqElement
	b    *group.ZqElement
	s    *group.ZqElement
	tau  *group.ZqElement
}

// HashableForm projects the argument to the ordered list of its fields.
func (a *MultiExponentiationArgument) HashableForm() hashing.Hashable {
	return hashing.List(
		a.cA0.HashableForm(),
		a.cB.HashableForm(),
		ciphertextsHashable(a.e),
		a.aVec.HashableForm(),
		a.r.HashableForm(),
		a.b.HashableForm(),
		a.s.HashableForm(),
		a.tau.HashableForm(),
	)
}

// GenMultiExponentiationArgument proves C = E(1; rho) * prod_i C_i^{a_i}.
func (s *ArgumentService) GenMultiExponentiationArgument(statement *MultiExponentiationStatement,
	witness *MultiExponentiationWitness) (*MultiExponentiationArgument, error) {

	m := len(statement.rows)
	n := len(statement.rows[0])
	if witness.a.NumColumns() != m || witness.a.NumRows() != n {
		return nil, ErrInvalidStatement
	}
	if n > s.ck.Size() {
		return nil, ErrKeyTooShort
	}
	zq := witness.a.Group()
	k := statement.c.Size()

	// Extended exponent columns: As[0] random, As[j] = a_j.
	as := make([]*matrix.ZqVector, m+1)
	var err error
	as[0], err = s.random.GenRandomVector(zq, n)
	if err != nil {
		return nil, err
	}
	for j := 1; j <= m; j++ {
		as[j], err = witness.a.Column(j - 1)
		if err != nil {
			return nil, err
		}
	}
	r0, err := s.random.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}
	cA0, err := s.ck.Commit(as[0], r0)
	if err != nil {
		return nil, err
	}

	// Blinding scalars; index m is pinned to (0, 0, rho).
	bs := make([]*group.ZqElement, 2*m)
	ss := make([]*group.ZqElement, 2*m)
	taus := make([]*group.ZqElement, 2*m)
	for i := 0; i < 2*m; i++ {
		if i == m {
			bs[i] = zq.Identity()
			ss[i] = zq.Identity()
			taus[i] = witness.rho
			continue
		}
		if bs[i], err = s.random.GenRandomZqElement(zq); err != nil {
			return nil, err
		}
		if ss[i], err = s.random.GenRandomZqElement(zq); err != nil {
			return nil, err
		}
		if taus[i], err = s.random.GenRandomZqElement(zq); err != nil {
			return nil, err
		}
	}

	cbs := make([]*group.GqElement, 2*m)
	for i := 0; i < 2*m; i++ {
		cbs[i], err = commitOne(s.ck, bs[i], ss[i])
		if err != nil {
			return nil, err
		}
	}
	cB, err := matrix.NewGqVector(cbs)
	if err != nil {
		return nil, err
	}

	// Diagonal products E_k.
	es := make([]*elgamal.Ciphertext, 2*m)
	for kIdx := 0; kIdx < 2*m; kIdx++ {
		acc, err := s.encryptLifted(bs[kIdx], taus[kIdx], k)
		if err != nil {
			return nil, err
		}
		for i := 1; i <= m; i++ {
			j := kIdx - m + i
			if j < 0 || j > m {
				continue
			}
			term, err := rowExponentiation(statement.rows[i-1], as[j])
			if err != nil {
				return nil, err
			}
			acc, err = elgamal.GetCiphertextProduct(acc, term)
			if err != nil {
				return nil, err
			}
		}
		es[kIdx] = acc
	}

	x, err := s.multiExponentiationChallenge(statement, cA0, cB, es)
	if err != nil {
		return nil, err
	}
	xPowers, err := powers(x, 2*m)
	if err != nil {
		return nil, err
	}
	xp := xPowers.Elements()

	aVec, err := linearCombination(as, xp[:m+1])
	if err != nil {
		return nil, err
	}
	rScalars := make([]*group.ZqElement, m+1)
	rScalars[0] = r0
	for i := 1; i <= m; i++ {
		rScalars[i], err = witness.r.Get(i - 1)
		if err != nil {
			return nil, err
		}
	}
	r, err := scalarCombination(rScalars, xp[:m+1])
	if err != nil {
		return nil, err
	}
	b, err := scalarCombination(bs, xp)
	if err != nil {
		return nil, err
	}
	sScalar, err := scalarCombination(ss, xp)
	if err != nil {
		return nil, err
	}
	tau, err := scalarCombination(taus, xp)
	if err != nil {
		return nil, err
	}

	return &MultiExponentiationArgument{
		cA0:  cA0,
		cB:   cB,
		e:    es,
		aVec: aVec,
		r:    r,
		b:    b,
		s:    sScalar,
		tau:  tau,
	}, nil
}

// VerifyMultiExponentiationArgument re-derives the challenge and checks the
// commitment and ciphertext equations.
func (s *ArgumentService) VerifyMultiExponentiationArgument(statement *MultiExponentiationStatement,
	argument *MultiExponentiationArgument) (bool, error) {

	m := len(statement.rows)
	n := len(statement.rows[0])
	if argument.cA0 == nil || argument.cB == nil || argument.aVec == nil {
		return false, ErrInvalidArgument
	}
	if argument.cB.Size() != 2*m || len(argument.e) != 2*m {
		return false, ErrInvalidArgument
	}
	if argument.aVec.Size() != n {
		return false, ErrInvalidArgument
	}
	if n > s.ck.Size() {
		return false, ErrKeyTooShort
	}
	k := statement.c.Size()
	if err := checkCiphertextVector(argument.e, s.gqGroup(), s.pk.Size()); err != nil {
		return false, err
	}
	if argument.e[0].Size() != k {
		return false, ErrInvalidArgument
	}

	// The pinned index m: commitment to 0 with randomness 0, ciphertext C.
	cbm, err := argument.cB.Get(m)
	if err != nil {
		return false, err
	}
	if !cbm.IsIdentity() {
		return false, nil
	}
	if !argument.e[m].Equal(statement.c) {
		return false, nil
	}

	x, err := s.multiExponentiationChallenge(statement, argument.cA0, argument.cB, argument.e)
	if err != nil {
		return false, err
	}
	xPowers, err := powers(x, 2*m)
	if err != nil {
		return false, err
	}
	xp := xPowers.Elements()

	// cA0 * prod_i cA_i^{x^i} == commit(aVec, r)
	cas := append([]*group.GqElement{argument.cA0}, statement.cA.Elements()...)
	left1, err := group.MultiExponentiate(cas, xp[:m+1])
	if err != nil {
		return false, err
	}
	right1, err := s.ck.Commit(argument.aVec, argument.r)
	if err != nil {
		return false, err
	}
	if !left1.Equal(right1) {
		return false, nil
	}

	// prod_k cB_k^{x^k} == commit(b, s)
	left2, err := group.MultiExponentiate(argument.cB.Elements(), xp)
	if err != nil {
		return false, err
	}
	right2, err := commitOne(s.ck, argument.b, argument.s)
	if err != nil {
		return false, err
	}
	if !left2.Equal(right2) {
		return false, nil
	}

	// prod_k E_k^{x^k} == E(g^b; tau) * prod_i C_i^{x^{m-i} * aVec}
	xpVector, err := matrix.NewZqVector(xp)
	if err != nil {
		return false, err
	}
	left3, err := elgamal.GetCiphertextVectorExponentiation(argument.e, xpVector)
	if err != nil {
		return false, err
	}
	right3, err := s.encryptLifted(argument.b, argument.tau, k)
	if err != nil {
		return false, err
	}
	for i := 1; i <= m; i++ {
		scaled, err := argument.aVec.MultiplyScalar(xp[m-i])
		if err != nil {
			return false, err
		}
		term, err := rowExponentiation(statement.rows[i-1], scaled)
		if err != nil {
			return false, err
		}
		right3, err = elgamal.GetCiphertextProduct(right3, term)
		if err != nil {
			return false, err
		}
	}
	return left3.Equal(right3), nil
}

// encryptLifted encrypts the k-slot message (g^b, ..., g^b) with randomness tau.
func (s *ArgumentService) encryptLifted(b, tau *group.ZqElement, k int) (*elgamal.Ciphertext, error) {
	lifted, err := s.gqGroup().Generator().Exponentiate(b)
	if err != nil {
		return nil, err
	}
	slots := make([]*group.GqElement, k)
	for i := range slots {
		slots[i] = lifted
	}
	vector, err := matrix.NewGqVector(slots)
	if err != nil {
		return nil, err
	}
	message, err := elgamal.NewMessage(vector)
	if err != nil {
		return nil, err
	}
	return elgamal.GetCiphertext(message, tau, s.pk)
}

// rowExponentiation computes prod_j row_j^{exponents_j}.
func rowExponentiation(row []*elgamal.Ciphertext, exponents *matrix.ZqVector) (*elgamal.Ciphertext, error) {
	return elgamal.GetCiphertextVectorExponentiation(row, exponents)
}

func (s *ArgumentService) multiExponentiationChallenge(statement *MultiExponentiationStatement,
	cA0 *group.GqElement, cB *matrix.GqVector, es []*elgamal.Ciphertext) (*group.ZqElement, error) {

	rows := make(hashing.HashableList, len(statement.rows))
	for i, row := range statement.rows {
		rows[i] = ciphertextsHashable(row)
	}
	return s.argumentChallenge(multiExponentiationTag, nil,
		rows,
		statement.c.HashableForm(),
		statement.cA.HashableForm(),
		cA0.HashableForm(),
		cB.HashableForm(),
		ciphertextsHashable(es),
	)
}
