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

const singleValueProductTag = "SingleValueProductArgument"

/*
	Single-value product argument: for a commitment c_a to a vector a of size
	n >= 2 and a public b, proves prod_i a_i = b. The prover masks a with a
	random d and the running products b_i = a_1*...*a_i with deltas whose
	first entry is d_1 and last entry is 0, so that the masked running-product
	recurrence can be checked linearly in the challenge.
*/

// SingleValueProductStatement is (c_a, b).
type SingleValueProductStatement struct {
	commitment *group.GqElement
	product    *group.ZqElement
}

// NewSingleValueProductStatement wraps a commitment and the claimed product.
func NewSingleValueProductStatement(c *group.GqElement, b *group.ZqElement) (*SingleValueProductStatement, error) {
	if !c.Group().HasSameOrderAs(b.Group()) {
		return nil, ErrInvalidStatement
	}
	return &SingleValueProductStatement{commitment: c, product: b}, nil
}

// SingleValueProductWitness is the opening (a, r) of the statement commitment.
type SingleValueProductWitness struct {
	a *matrix.ZqVector
	r *group.ZqElement
}

// NewSingleValueProductWitness wraps the committed vector and its randomness.
func NewSingleValueProductWitness(a *matrix.ZqVector, r *group.ZqElement) (*SingleValueProductWitness, error) {
	if a.Size() < 2 {
		return nil, ErrInvalidStatement
	}
	if !a.Group().Equal(r.Group()) {
		return nil, ErrInvalidStatement
	}
	return &SingleValueProductWitness{a: a, r: r}, nil
}

// SingleValueProductArgument is the proof record.
type SingleValueProductArgument struct {
	cd          *group.GqElement
	cLowerDelta *group.GqElement
	cUpperDelta *group.GqElement
	aTilde      *matrix.ZqVector
	bTilde      *matrix.ZqVector
	rTilde      *group.ZqElement
	sTilde      *group.ZqElement
}

// HashableForm projects the argument to the ordered list of its fields.
func (a *SingleValueProductArgument) HashableForm() hashing.Hashable {
	return hashing.List(
		a.cd.HashableForm(),
		a.cLowerDelta.HashableForm(),
		a.cUpperDelta.HashableForm(),
		a.aTilde.HashableForm(),
		a.bTilde.HashableForm(),
		a.rTilde.HashableForm(),
		a.sTilde.HashableForm(),
	)
}

// GenSingleValueProductArgument proves prod_i a_i = b for the committed a.
func (s *ArgumentService) GenSingleValueProductArgument(statement *SingleValueProductStatement,
	witness *SingleValueProductWitness) (*SingleValueProductArgument, error) {

	n := witness.a.Size()
	if n > s.ck.Size() {
		return nil, ErrKeyTooShort
	}
	if !statement.product.Group().Equal(witness.a.Group()) {
		return nil, ErrInvalidStatement
	}
	if !witness.a.Product().Equal(statement.product) {
		return nil, ErrInvalidWitness
	}
	zq := witness.a.Group()
	a := witness.a.Elements()

	// Running products b_i = a_0 * ... * a_i.
	b := make([]*group.ZqElement, n)
	b[0] = a[0]
	var err error
	for i := 1; i < n; i++ {
		b[i], err = b[i-1].Multiply(a[i])
		if err != nil {
			return nil, err
		}
	}

	dVector, err := s.random.GenRandomVector(zq, n)
	if err != nil {
		return nil, err
	}
	d := dVector.Elements()
	rd, err := s.random.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}
	delta := make([]*group.ZqElement, n)
	delta[0] = d[0]
	delta[n-1] = zq.Identity()
	for i := 1; i < n-1; i++ {
		delta[i], err = s.random.GenRandomZqElement(zq)
		if err != nil {
			return nil, err
		}
	}
	s1, err := s.random.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}
	sx, err := s.random.GenRandomZqElement(zq)
	if err != nil {
		return nil, err
	}

	cd, err := s.ck.Commit(dVector, rd)
	if err != nil {
		return nil, err
	}

	// lower_i = -delta_i * d_{i+1}
	lower := make([]*group.ZqElement, n-1)
	for i := 0; i < n-1; i++ {
		lower[i], err = delta[i].Negate().Multiply(d[i+1])
		if err != nil {
			return nil, err
		}
	}
	lowerVector, err := matrix.NewZqVector(lower)
	if err != nil {
		return nil, err
	}
	cLowerDelta, err := s.ck.Commit(lowerVector, s1)
	if err != nil {
		return nil, err
	}

	// upper_i = delta_{i+1} - a_{i+1}*delta_i - b_i*d_{i+1}
	upper := make([]*group.ZqElement, n-1)
	for i := 0; i < n-1; i++ {
		t1, err := a[i+1].Multiply(delta[i])
		if err != nil {
			return nil, err
		}
		t2, err := b[i].Multiply(d[i+1])
		if err != nil {
			return nil, err
		}
		u, err := delta[i+1].Subtract(t1)
		if err != nil {
			return nil, err
		}
		upper[i], err = u.Subtract(t2)
		if err != nil {
			return nil, err
		}
	}
	upperVector, err := matrix.NewZqVector(upper)
	if err != nil {
		return nil, err
	}
	cUpperDelta, err := s.ck.Commit(upperVector, sx)
	if err != nil {
		return nil, err
	}

	x, err := s.singleValueProductChallenge(statement, cd, cLowerDelta, cUpperDelta)
	if err != nil {
		return nil, err
	}

	aTilde := make([]*group.ZqElement, n)
	bTilde := make([]*group.ZqElement, n)
	for i := 0; i < n; i++ {
		xa, err := x.Multiply(a[i])
		if err != nil {
			return nil, err
		}
		aTilde[i], err = xa.Add(d[i])
		if err != nil {
			return nil, err
		}
		xb, err := x.Multiply(b[i])
		if err != nil {
			return nil, err
		}
		bTilde[i], err = xb.Add(delta[i])
		if err != nil {
			return nil, err
		}
	}
	aTildeVector, err := matrix.NewZqVector(aTilde)
	if err != nil {
		return nil, err
	}
	bTildeVector, err := matrix.NewZqVector(bTilde)
	if err != nil {
		return nil, err
	}
	xr, err := x.Multiply(witness.r)
	if err != nil {
		return nil, err
	}
	rTilde, err := xr.Add(rd)
	if err != nil {
		return nil, err
	}
	xsx, err := x.Multiply(sx)
	if err != nil {
		return nil, err
	}
	sTilde, err := xsx.Add(s1)
	if err != nil {
		return nil, err
	}

	return &SingleValueProductArgument{
		cd:          cd,
		cLowerDelta: cLowerDelta,
		cUpperDelta: cUpperDelta,
		aTilde:      aTildeVector,
		bTilde:      bTildeVector,
		rTilde:      rTilde,
		sTilde:      sTilde,
	}, nil
}

// VerifySingleValueProductArgument re-derives the challenge and checks the
// two commitment equations and the boundary conditions.
func (s *ArgumentService) VerifySingleValueProductArgument(statement *SingleValueProductStatement,
	argument *SingleValueProductArgument) (bool, error) {

	n := argument.aTilde.Size()
	if n < 2 || argument.bTilde.Size() != n {
		return false, ErrInvalidArgument
	}
	if n > s.ck.Size() {
		return false, ErrKeyTooShort
	}
	x, err := s.singleValueProductChallenge(statement, argument.cd, argument.cLowerDelta, argument.cUpperDelta)
	if err != nil {
		return false, err
	}

	// c_a^x * c_d == commit(aTilde, rTilde)
	caX, err := statement.commitment.Exponentiate(x)
	if err != nil {
		return false, err
	}
	left1, err := caX.Multiply(argument.cd)
	if err != nil {
		return false, err
	}
	right1, err := s.ck.Commit(argument.aTilde, argument.rTilde)
	if err != nil {
		return false, err
	}
	if !left1.Equal(right1) {
		return false, nil
	}

	// c_Delta^x * c_delta == commit((x*bTilde_{i+1} - bTilde_i*aTilde_{i+1})_i, sTilde)
	e := make([]*group.ZqElement, n-1)
	for i := 0; i < n-1; i++ {
		bNext, err := argument.bTilde.Get(i + 1)
		if err != nil {
			return false, err
		}
		aNext, err := argument.aTilde.Get(i + 1)
		if err != nil {
			return false, err
		}
		bCur, err := argument.bTilde.Get(i)
		if err != nil {
			return false, err
		}
		t1, err := x.Multiply(bNext)
		if err != nil {
			return false, err
		}
		t2, err := bCur.Multiply(aNext)
		if err != nil {
			return false, err
		}
		e[i], err = t1.Subtract(t2)
		if err != nil {
			return false, err
		}
	}
	eVector, err := matrix.NewZqVector(e)
	if err != nil {
		return false, err
	}
	cUpperX, err := argument.cUpperDelta.Exponentiate(x)
	if err != nil {
		return false, err
	}
	left2, err := cUpperX.Multiply(argument.cLowerDelta)
	if err != nil {
		return false, err
	}
	right2, err := s.ck.Commit(eVector, argument.sTilde)
	if err != nil {
		return false, err
	}
	if !left2.Equal(right2) {
		return false, nil
	}

	// bTilde_1 == aTilde_1 and bTilde_n == x*b
	b0, err := argument.bTilde.Get(0)
	if err != nil {
		return false, err
	}
	a0, err := argument.aTilde.Get(0)
	if err != nil {
		return false, err
	}
	if !b0.Equal(a0) {
		return false, nil
	}
	bLast, err := argument.bTilde.Get(n - 1)
	if err != nil {
		return false, err
	}
	xb, err := x.Multiply(statement.product)
	if err != nil {
		return false, err
	}
	return bLast.Equal(xb), nil
}

func (s *ArgumentService) singleValueProductChallenge(statement *SingleValueProductStatement,
	cd, cLowerDelta, cUpperDelta *group.GqElement) (*group.ZqElement, error) {

	return s.argumentChallenge(singleValueProductTag, nil,
		statement.commitment.HashableForm(),
		statement.product.HashableForm(),
		cd.HashableForm(),
		cLowerDelta.HashableForm(),
		cUpperDelta.HashableForm(),
	)
}
