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
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
)

const hadamardTag = "HadamardArgument"

/*
	Hadamard argument: for commitments c_A to the columns a_1..a_m of A
	(m >= 2) and a commitment c_b, proves b = a_1 o a_2 o ... o a_m
	element-wise. The prover commits to the running column products
	B_1 = a_1, B_i = B_{i-1} o a_i, B_m = b and reduces the m-1 product
	steps to a single zero argument via the challenges x and y.
*/

// HadamardStatement is (c_A, c_b).
type HadamardStatement struct {
	cA *matrix.GqVector
	cb *group.GqElement
}

// NewHadamardStatement wraps the column commitments and the product commitment.
func NewHadamardStatement(cA *matrix.GqVector, cb *group.GqElement) (*HadamardStatement, error) {
	if cA.Size() < 2 {
		return nil, ErrInvalidStatement
	}
	if !cA.Group().Equal(cb.Group()) {
		return nil, ErrInvalidStatement
	}
	return &HadamardStatement{cA: cA, cb: cb}, nil
}

// HadamardWitness is the openings (A, r) and (b, s).
type HadamardWitness struct {
	a *matrix.ZqMatrix
	r *matrix.ZqVector
	b *matrix.ZqVector
	s *group.ZqElement
}

// NewHadamardWitness wraps the committed matrix, the product vector and their
// randomness.
func NewHadamardWitness(a *matrix.ZqMatrix, r *matrix.ZqVector, b *matrix.ZqVector, s *group.ZqElement) (*HadamardWitness, error) {
	if a.NumColumns() != r.Size() || a.NumRows() != b.Size() {
		return nil, ErrInvalidStatement
	}
	if !a.Group().Equal(r.Group()) || !a.Group().Equal(b.Group()) || !a.Group().Equal(s.Group()) {
		return nil, ErrInvalidStatement
	}
	return &HadamardWitness{a: a, r: r, b: b, s: s}, nil
}

// HadamardArgument is the proof record: the m-2 intermediate product
// commitments and the zero argument.
type HadamardArgument struct {
	cB   *matrix.GqVector
	zero *ZeroArgument
}

// HashableForm projects the argument to the ordered list of its fields.
func (a *HadamardArgument) HashableForm() hashing.Hashable {
	return hashing.List(a.cB.HashableForm(), a.zero.HashableForm())
}

// GenHadamardArgument proves that c_b commits to the element-wise product of
// the columns committed in c_A.
func (s *ArgumentService) GenHadamardArgument(statement *HadamardStatement, witness *HadamardWitness) (*HadamardArgument, error) {
	m := statement.cA.Size()
	if witness.a.NumColumns() != m {
		return nil, ErrInvalidStatement
	}
	n := witness.a.NumRows()
	if n > s.ck.Size() {
		return nil, ErrKeyTooShort
	}
	zq := witness.a.Group()

	// Running column products B_1..B_m; B_m must equal the witness b.
	bs := make([]*matrix.ZqVector, m)
	var err error
	bs[0], err = witness.a.Column(0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < m; i++ {
		column, err := witness.a.Column(i)
		if err != nil {
			return nil, err
		}
		bs[i], err = bs[i-1].HadamardProduct(column)
		if err != nil {
			return nil, err
		}
	}
	if !bs[m-1].Equal(witness.b) {
		return nil, ErrInvalidWitness
	}

	// Randomness: s_1 = r_1, s_m = s, the rest fresh.
	ss := make([]*group.ZqElement, m)
	ss[0], err = witness.r.Get(0)
	if err != nil {
		return nil, err
	}
	ss[m-1] = witness.s
	for i := 1; i < m-1; i++ {
		ss[i], err = s.random.GenRandomZqElement(zq)
		if err != nil {
			return nil, err
		}
	}

	// Commitments: the first is c_{A_1}, the last is c_b, the middle are new.
	cbs := make([]*group.GqElement, m)
	cbs[0], err = statement.cA.Get(0)
	if err != nil {
		return nil, err
	}
	cbs[m-1] = statement.cb
	for i := 1; i < m-1; i++ {
		cbs[i], err = s.ck.Commit(bs[i], ss[i])
		if err != nil {
			return nil, err
		}
	}
	cBMiddle := matrix.EmptyGqVector(s.gqGroup())
	if m > 2 {
		cBMiddle, err = matrix.NewGqVector(cbs[1 : m-1])
		if err != nil {
			return nil, err
		}
	}

	x, y, err := s.hadamardChallenges(statement, cBMiddle)
	if err != nil {
		return nil, err
	}
	xPowers, err := powers(x, m)
	if err != nil {
		return nil, err
	}
	xp := xPowers.Elements()

	zeroStatement, err := s.hadamardZeroStatement(statement, cbs, xp, y, n)
	if err != nil {
		return nil, err
	}

	// Zero witness columns: (a_2..a_m, -1) against (x^i B_i .. , sum x^i B_{i+1}).
	minusOne, err := constantVector(zq.One().Negate(), n)
	if err != nil {
		return nil, err
	}
	aColumns := make([]*matrix.ZqVector, m)
	rPrime := make([]*group.ZqElement, m)
	for i := 1; i < m; i++ {
		aColumns[i-1], err = witness.a.Column(i)
		if err != nil {
			return nil, err
		}
		rPrime[i-1], err = witness.r.Get(i)
		if err != nil {
			return nil, err
		}
	}
	aColumns[m-1] = minusOne
	rPrime[m-1] = zq.Identity()

	dColumns := make([]*matrix.ZqVector, m)
	sPrime := make([]*group.ZqElement, m)
	for i := 1; i < m; i++ {
		dColumns[i-1], err = bs[i-1].MultiplyScalar(xp[i])
		if err != nil {
			return nil, err
		}
		sPrime[i-1], err = ss[i-1].Multiply(xp[i])
		if err != nil {
			return nil, err
		}
	}
	dColumns[m-1], err = linearCombination(bs[1:m], xp[1:m])
	if err != nil {
		return nil, err
	}
	sPrime[m-1], err = scalarCombination(ss[1:m], xp[1:m])
	if err != nil {
		return nil, err
	}

	aMatrix, err := matrix.NewZqMatrixFromColumns(aColumns)
	if err != nil {
		return nil, err
	}
	dMatrix, err := matrix.NewZqMatrixFromColumns(dColumns)
	if err != nil {
		return nil, err
	}
	rVector, err := matrix.NewZqVector(rPrime)
	if err != nil {
		return nil, err
	}
	sVector, err := matrix.NewZqVector(sPrime)
	if err != nil {
		return nil, err
	}
	zeroWitness, err := NewZeroWitness(aMatrix, dMatrix, rVector, sVector)
	if err != nil {
		return nil, err
	}
	zeroArgument, err := s.GenZeroArgument(zeroStatement, zeroWitness)
	if err != nil {
		return nil, err
	}
	return &HadamardArgument{cB: cBMiddle, zero: zeroArgument}, nil
}

// VerifyHadamardArgument rebuilds the zero statement from the statement and
// the argument commitments and verifies the embedded zero argument.
func (s *ArgumentService) VerifyHadamardArgument(statement *HadamardStatement, argument *HadamardArgument) (bool, error) {
	m := statement.cA.Size()
	if argument.cB == nil || argument.zero == nil || argument.cB.Size() != m-2 {
		return false, ErrInvalidArgument
	}
	n := argument.zero.aVec.Size()
	x, y, err := s.hadamardChallenges(statement, argument.cB)
	if err != nil {
		return false, err
	}
	xPowers, err := powers(x, m)
	if err != nil {
		return false, err
	}
	cbs := make([]*group.GqElement, m)
	cbs[0], err = statement.cA.Get(0)
	if err != nil {
		return false, err
	}
	for i := 1; i < m-1; i++ {
		cbs[i], err = argument.cB.Get(i - 1)
		if err != nil {
			return false, err
		}
	}
	cbs[m-1] = statement.cb
	zeroStatement, err := s.hadamardZeroStatement(statement, cbs, xPowers.Elements(), y, n)
	if err != nil {
		return false, err
	}
	return s.VerifyZeroArgument(zeroStatement, argument.zero)
}

// hadamardZeroStatement assembles the zero statement shared by prover and
// verifier: columns (c_{A_2}..c_{A_m}, c_{-1}) against
// (c_{B_1}^x .. c_{B_{m-1}}^{x^{m-1}}, prod c_{B_{i+1}}^{x^i}).
func (s *ArgumentService) hadamardZeroStatement(statement *HadamardStatement,
	cbs []*group.GqElement, xp []*group.ZqElement, y *group.ZqElement, n int) (*ZeroStatement, error) {

	m := statement.cA.Size()
	zq := s.zqGroup()
	minusOne, err := constantVector(zq.One().Negate(), n)
	if err != nil {
		return nil, err
	}
	cMinusOne, err := s.ck.Commit(minusOne, zq.Identity())
	if err != nil {
		return nil, err
	}
	zcA := make([]*group.GqElement, m)
	for i := 1; i < m; i++ {
		zcA[i-1], err = statement.cA.Get(i)
		if err != nil {
			return nil, err
		}
	}
	zcA[m-1] = cMinusOne

	zcB := make([]*group.GqElement, m)
	for i := 1; i < m; i++ {
		zcB[i-1], err = cbs[i-1].Exponentiate(xp[i])
		if err != nil {
			return nil, err
		}
	}
	zcB[m-1], err = group.MultiExponentiate(cbs[1:m], xp[1:m])
	if err != nil {
		return nil, err
	}

	zcAVector, err := matrix.NewGqVector(zcA)
	if err != nil {
		return nil, err
	}
	zcBVector, err := matrix.NewGqVector(zcB)
	if err != nil {
		return nil, err
	}
	return NewZeroStatement(zcAVector, zcBVector, y)
}

// hadamardChallenges derives x and y; the two derivations differ only in the
// tagged auxiliary list.
func (s *ArgumentService) hadamardChallenges(statement *HadamardStatement, cBMiddle *matrix.GqVector) (*group.ZqElement, *group.ZqElement, error) {
	inputs := []hashing.Hashable{
		statement.cA.HashableForm(),
		statement.cb.HashableForm(),
	}
	if cBMiddle.Size() > 0 {
		inputs = append(inputs, cBMiddle.HashableForm())
	}
	x, err := s.argumentChallenge(hadamardTag, nil, inputs...)
	if err != nil {
		return nil, nil, err
	}
	y, err := s.argumentChallenge(hadamardTag, []string{"1"}, inputs...)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
