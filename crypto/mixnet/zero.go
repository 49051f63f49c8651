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

const zeroTag = "ZeroArgument"

/*
	Zero argument: for committed matrices A and B with columns a_1..a_m and
	b_1..b_m, proves sum_i a_i * b_i = 0 under the bilinear map
	a * b = sum_j a_j b_j y^{j+1}. The prover extends the columns with a
	random a_0 and b_{m+1} and commits to all coefficients d_k of the product
	polynomial; coefficient m+1 is the statement and must be zero.
*/

// ZeroStatement is (c_A, c_B, y).
type ZeroStatement struct {
	cA *matrix.GqVector
	cB *matrix.GqVector
	y  *group.ZqElement
}

// NewZeroStatement wraps the two commitment vectors and the bilinear-map y.
func NewZeroStatement(cA, cB *matrix.GqVector, y *group.ZqElement) (*ZeroStatement, error) {
	if cA.Size() == 0 || cA.Size() != cB.Size() {
		return nil, ErrInvalidStatement
	}
	if !cA.Group().Equal(cB.Group()) {
		return nil, ErrInvalidStatement
	}
	if !cA.Group().HasSameOrderAs(y.Group()) {
		return nil, ErrInvalidStatement
	}
	return &ZeroStatement{cA: cA, cB: cB, y: y}, nil
}

// ZeroWitness is the openings (A, r) and (B, s) of the statement commitments.
type ZeroWitness struct {
	a *matrix.ZqMatrix
	b *matrix.ZqMatrix
	r *matrix.ZqVector
	s *matrix.ZqVector
}

// NewZeroWitness wraps the committed matrices and their randomness.
func NewZeroWitness(a, b *matrix.ZqMatrix, r, s *matrix.ZqVector) (*ZeroWitness, error) {
	if a.NumColumns() != b.NumColumns() || a.NumRows() != b.NumRows() {
		return nil, ErrInvalidStatement
	}
	if r.Size() != a.NumColumns() || s.Size() != b.NumColumns() {
		return nil, ErrInvalidStatement
	}
	if !a.Group().Equal(b.Group()) || !a.Group().Equal(r.Group()) || !a.Group().Equal(s.Group()) {
		return nil, ErrInvalidStatement
	}
	return &ZeroWitness{a: a, b: b, r: r, s: s}, nil
}

// ZeroArgument is the proof record.
type ZeroArgument struct {
	cA0  *group.GqElement
	cBm  *group.GqElement
	cd   *matrix.GqVector
	aVec *matrix.ZqVector
	bVec *matrix.ZqVector
	r    *group.ZqElement
	s    *group.ZqElement
	t    *group.ZqElement
}

// HashableForm projects the argument to the ordered list of its fields.
func (a *ZeroArgument) HashableForm() hashing.Hashable {
	return hashing.List(
		a.cA0.HashableForm(),
		a.cBm.HashableForm(),
		a.cd.HashableForm(),
		a.aVec.HashableForm(),
		a.bVec.HashableForm(),
		a.r.HashableForm(),
		a.s.HashableForm(),
		a.t.HashableForm(),
	)
}

// GenZeroArgument proves sum_i a_i * b_i = 0 for the committed columns.
func (s *ArgumentService) GenZeroArgument(statement *ZeroStatement, witness *ZeroWitness) (*ZeroArgument, error) {
	m := statement.cA.Size()
	if witness.a.NumColumns() != m {
		return nil, ErrInvalidStatement
	}
	n := witness.a.NumRows()
	if n > s.ck.Size() {
		return nil, ErrKeyTooShort
	}
	zq := witness.a.Group()

	// Check the bilinear relation.
	sum := zq.Identity()
	for i := 0; i < m; i++ {
		ai, err := witness.a.Column(i)
		if err != nil {
			return nil, err
		}
		bi, err := witness.b.Column(i)
		if err != nil {
			return nil, err
		}
		term, err := starMap(ai, bi, statement.y)
		if err != nil {
			return nil, err
		}
		sum, err = sum.Add(term)
		if err != nil {
			return nil, err
		}
	}
	if sum.Value().Sign() != 0 {
		return nil, ErrInvalidWitness
	}

	a0, err := s.random.GenRandomVector(zq, n)
	if err != nil {
		return nil, err
	}
	bm, err := s.random.GenRandomVector(zq, n)
	if err != nil {
		return nil, err
	}
	r0, err := s.random.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}
	sm, err := s.random.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}
	cA0, err := s.ck.Commit(a0, r0)
	if err != nil {
		return nil, err
	}
	cBm, err := s.ck.Commit(bm, sm)
	if err != nil {
		return nil, err
	}

	// Extended column lists: As[i] = a_i for i = 0..m, Bs[j-1] = b_j for
	// j = 1..m+1, with a_0 and b_{m+1} the random masks.
	as := make([]*matrix.ZqVector, m+1)
	bs := make([]*matrix.ZqVector, m+1)
	as[0] = a0
	bs[m] = bm
	for i := 1; i <= m; i++ {
		as[i], err = witness.a.Column(i - 1)
		if err != nil {
			return nil, err
		}
		bs[i-1], err = witness.b.Column(i - 1)
		if err != nil {
			return nil, err
		}
	}

	// d_k = sum over i + m + 1 - j = k of a_i * b_j, k = 0..2m.
	ds := make([]*group.ZqElement, 2*m+1)
	for k := range ds {
		ds[k] = zq.Identity()
	}
	for i := 0; i <= m; i++ {
		for j := 1; j <= m+1; j++ {
			k := i + m + 1 - j
			term, err := starMap(as[i], bs[j-1], statement.y)
			if err != nil {
				return nil, err
			}
			ds[k], err = ds[k].Add(term)
			if err != nil {
				return nil, err
			}
		}
	}

	ts := make([]*group.ZqElement, 2*m+1)
	for k := range ts {
		if k == m+1 {
			ts[k] = zq.Identity()
			continue
		}
		ts[k], err = s.random.GenRandomZqElement(zq)
		if err != nil {
			return nil, err
		}
	}
	cds := make([]*group.GqElement, 2*m+1)
	for k := range cds {
		cds[k], err = commitOne(s.ck, ds[k], ts[k])
		if err != nil {
			return nil, err
		}
	}
	cd, err := matrix.NewGqVector(cds)
	if err != nil {
		return nil, err
	}

	x, err := s.zeroChallenge(statement, cA0, cBm, cd)
	if err != nil {
		return nil, err
	}
	xPowers, err := powers(x, 2*m+1)
	if err != nil {
		return nil, err
	}
	xp := xPowers.Elements()

	// aVec = sum_i x^i a_i, r = sum_i x^i r_i
	rs := make([]*group.ZqElement, m+1)
	rs[0] = r0
	for i := 1; i <= m; i++ {
		rs[i], err = witness.r.Get(i - 1)
		if err != nil {
			return nil, err
		}
	}
	aVec, err := linearCombination(as, xp[:m+1])
	if err != nil {
		return nil, err
	}
	rSc, err := scalarCombination(rs, xp[:m+1])
	if err != nil {
		return nil, err
	}

	// bVec = sum_j x^{m+1-j} b_j, s = sum_j x^{m+1-j} s_j
	ss := make([]*group.ZqElement, m+1)
	for j := 1; j <= m; j++ {
		ss[j-1], err = witness.s.Get(j - 1)
		if err != nil {
			return nil, err
		}
	}
	ss[m] = sm
	bCoefficients := make([]*group.ZqElement, m+1)
	for j := 1; j <= m+1; j++ {
		bCoefficients[j-1] = xp[m+1-j]
	}
	bVec, err := linearCombination(bs, bCoefficients)
	if err != nil {
		return nil, err
	}
	sSc, err := scalarCombination(ss, bCoefficients)
	if err != nil {
		return nil, err
	}

	t, err := scalarCombination(ts, xp)
	if err != nil {
		return nil, err
	}

	return &ZeroArgument{
		cA0:  cA0,
		cBm:  cBm,
		cd:   cd,
		aVec: aVec,
		bVec: bVec,
		r:    rSc,
		s:    sSc,
		t:    t,
	}, nil
}

// VerifyZeroArgument re-derives the challenge and checks the three
// commitment equations and that the statement coefficient commits to zero.
func (s *ArgumentService) VerifyZeroArgument(statement *ZeroStatement, argument *ZeroArgument) (bool, error) {
	m := statement.cA.Size()
	if argument.cd.Size() != 2*m+1 {
		return false, ErrInvalidArgument
	}
	n := argument.aVec.Size()
	if n == 0 || argument.bVec.Size() != n {
		return false, ErrInvalidArgument
	}
	if n > s.ck.Size() {
		return false, ErrKeyTooShort
	}

	// The coefficient at m+1 must commit to zero with randomness zero.
	cdStatement, err := argument.cd.Get(m + 1)
	if err != nil {
		return false, err
	}
	if !cdStatement.IsIdentity() {
		return false, nil
	}

	x, err := s.zeroChallenge(statement, argument.cA0, argument.cBm, argument.cd)
	if err != nil {
		return false, err
	}
	xPowers, err := powers(x, 2*m+1)
	if err != nil {
		return false, err
	}
	xp := xPowers.Elements()

	// prod_i c_{A_i}^{x^i} == commit(aVec, r)
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

	// prod_j c_{B_j}^{x^{m+1-j}} == commit(bVec, s)
	cbs := append(statement.cB.Elements(), argument.cBm)
	bCoefficients := make([]*group.ZqElement, m+1)
	for j := 1; j <= m+1; j++ {
		bCoefficients[j-1] = xp[m+1-j]
	}
	left2, err := group.MultiExponentiate(cbs, bCoefficients)
	if err != nil {
		return false, err
	}
	right2, err := s.ck.Commit(argument.bVec, argument.s)
	if err != nil {
		return false, err
	}
	if !left2.Equal(right2) {
		return false, nil
	}

	// prod_k c_{d_k}^{x^k} == commit(aVec * bVec, t)
	left3, err := group.MultiExponentiate(argument.cd.Elements(), xp)
	if err != nil {
		return false, err
	}
	product, err := starMap(argument.aVec, argument.bVec, statement.y)
	if err != nil {
		return false, err
	}
	right3, err := commitOne(s.ck, product, argument.t)
	if err != nil {
		return false, err
	}
	return left3.Equal(right3), nil
}

func (s *ArgumentService) zeroChallenge(statement *ZeroStatement, cA0, cBm *group.GqElement, cd *matrix.GqVector) (*group.ZqElement, error) {
	return s.argumentChallenge(zeroTag, nil,
		statement.y.HashableForm(),
		statement.cA.HashableForm(),
		statement.cB.HashableForm(),
		cA0.HashableForm(),
		cBm.HashableForm(),
		cd.HashableForm(),
	)
}
