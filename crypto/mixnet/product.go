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

/*
	Product argument: for commitments c_A to the columns of an n x m matrix A
	and a public b, proves prod_{i,j} a_{i,j} = b. For m >= 2 the element-wise
	product of the columns is committed and tied to c_A with a Hadamard
	argument, and its product to b with a single-value product argument. For
	m = 1 the single-value product argument applies directly.
*/

// ProductStatement is (c_A, b).
type ProductStatement struct {
	cA *matrix.GqVector
	b  *group.ZqElement
}

// NewProductStatement wraps the column commitments and the claimed product.
func NewProductStatement(cA *matrix.GqVector, b *group.ZqElement) (*ProductStatement, error) {
	if cA.Size() == 0 {
		return nil, ErrInvalidStatement
	}
	if !cA.Group().HasSameOrderAs(b.Group()) {
		return nil, ErrInvalidStatement
	}
	return &ProductStatement{cA: cA, b: b}, nil
}

// ProductWitness is the opening (A, r) of the column commitments.
type ProductWitness struct {
	a *matrix.ZqMatrix
	r *matrix.ZqVector
}

// NewProductWitness wraps the committed matrix and its randomness.
func NewProductWitness(a *matrix.ZqMatrix, r *matrix.ZqVector) (*ProductWitness, error) {
	if a.NumColumns() != r.Size() {
		return nil, ErrInvalidStatement
	}
	if a.NumRows() < 2 {
		return nil, ErrInvalidStatement
	}
	if !a.Group().Equal(r.Group()) {
		return nil, ErrInvalidStatement
	}
	return &ProductWitness{a: a, r: r}, nil
}

// ProductArgument is the proof record. For m = 1 only the single-value
// product argument is present.
type ProductArgument struct {
	cb       *group.GqElement
	hadamard *HadamardArgument
	svp      *SingleValueProductArgument
}

// HashableForm projects the argument to the ordered list of its fields.
func (a *ProductArgument) HashableForm() hashing.Hashable {
	if a.hadamard == nil {
		return hashing.List(a.svp.HashableForm())
	}
	return hashing.List(a.cb.HashableForm(), a.hadamard.HashableForm(), a.svp.HashableForm())
}

// GenProductArgument proves prod_{i,j} a_{i,j} = b for the committed columns.
func (s *ArgumentService) GenProductArgument(statement *ProductStatement, witness *ProductWitness) (*ProductArgument, error) {
	m := statement.cA.Size()
	if witness.a.NumColumns() != m {
		return nil, ErrInvalidStatement
	}
	if witness.a.NumRows() > s.ck.Size() {
		return nil, ErrKeyTooShort
	}

	if m == 1 {
		column, err := witness.a.Column(0)
		if err != nil {
			return nil, err
		}
		r0, err := witness.r.Get(0)
		if err != nil {
			return nil, err
		}
		ca, err := statement.cA.Get(0)
		if err != nil {
			return nil, err
		}
		svpStatement, err := NewSingleValueProductStatement(ca, statement.b)
		if err != nil {
			return nil, err
		}
		svpWitness, err := NewSingleValueProductWitness(column, r0)
		if err != nil {
			return nil, err
		}
		svp, err := s.GenSingleValueProductArgument(svpStatement, svpWitness)
		if err != nil {
			return nil, err
		}
		return &ProductArgument{svp: svp}, nil
	}

	// Element-wise product of the columns.
	bVec, err := witness.a.Column(0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < m; i++ {
		column, err := witness.a.Column(i)
		if err != nil {
			return nil, err
		}
		bVec, err = bVec.HadamardProduct(column)
		if err != nil {
			return nil, err
		}
	}
	if !bVec.Product().Equal(statement.b) {
		return nil, ErrInvalidWitness
	}
	sRand, err := s.random.GenRandomZqElement(s.zqGroup())
	if err != nil {
		return nil, err
	}
	cb, err := s.ck.Commit(bVec, sRand)
	if err != nil {
		return nil, err
	}

	hadamardStatement, err := NewHadamardStatement(statement.cA, cb)
	if err != nil {
		return nil, err
	}
	hadamardWitness, err := NewHadamardWitness(witness.a, witness.r, bVec, sRand)
	if err != nil {
		return nil, err
	}
	hadamard, err := s.GenHadamardArgument(hadamardStatement, hadamardWitness)
	if err != nil {
		return nil, err
	}

	svpStatement, err := NewSingleValueProductStatement(cb, statement.b)
	if err != nil {
		return nil, err
	}
	svpWitness, err := NewSingleValueProductWitness(bVec, sRand)
	if err != nil {
		return nil, err
	}
	svp, err := s.GenSingleValueProductArgument(svpStatement, svpWitness)
	if err != nil {
		return nil, err
	}
	return &ProductArgument{cb: cb, hadamard: hadamard, svp: svp}, nil
}

// VerifyProductArgument verifies the embedded Hadamard and single-value
// product arguments against the statement.
func (s *ArgumentService) VerifyProductArgument(statement *ProductStatement, argument *ProductArgument) (bool, error) {
	m := statement.cA.Size()
	if argument.svp == nil {
		return false, ErrInvalidArgument
	}

	if m == 1 {
		if argument.hadamard != nil || argument.cb != nil {
			return false, ErrInvalidArgument
		}
		ca, err := statement.cA.Get(0)
		if err != nil {
			return false, err
		}
		svpStatement, err := NewSingleValueProductStatement(ca, statement.b)
		if err != nil {
			return false, err
		}
		return s.VerifySingleValueProductArgument(svpStatement, argument.svp)
	}

	if argument.hadamard == nil || argument.cb == nil {
		return false, ErrInvalidArgument
	}
	hadamardStatement, err := NewHadamardStatement(statement.cA, argument.cb)
	if err != nil {
		return false, err
	}
	ok, err := s.VerifyHadamardArgument(hadamardStatement, argument.hadamard)
	if err != nil || !ok {
		return ok, err
	}
	svpStatement, err := NewSingleValueProductStatement(argument.cb, statement.b)
	if err != nil {
		return false, err
	}
	return s.VerifySingleValueProductArgument(svpStatement, argument.svp)
}
