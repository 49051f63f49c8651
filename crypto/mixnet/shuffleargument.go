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
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
)

const shuffleTag = "ShuffleArgument"

/*
	Shuffle argument: proves that C' is a permutation and re-encryption of C.
	The prover commits to the permutation values and to their x-powers, the
	product argument ties both commitments to the public polynomial identity

		prod_i (y*a_i + b_i - z) = prod_i (y*i + x^i - z)

	and the multi-exponentiation argument ties the committed x-powers to the
	re-encryption: prod C_i^{x^i} = E(1; rho_hat) * prod C'_i^{b_i}.
*/

// ShuffleStatement is the pair of ciphertext lists (C, C').
type ShuffleStatement struct {
	cs      []*elgamal.Ciphertext
	csPrime []*elgamal.Ciphertext
}

// NewShuffleStatement wraps the input and output ciphertext lists.
func NewShuffleStatement(cs, csPrime []*elgamal.Ciphertext) (*ShuffleStatement, error) {
	if len(cs) < 2 || len(cs) != len(csPrime) {
		return nil, ErrInvalidStatement
	}
	g := cs[0].Group()
	k := cs[0].Size()
	if err := checkCiphertextVector(cs, g, k); err != nil {
		return nil, err
	}
	if err := checkCiphertextVector(csPrime, g, k); err != nil {
		return nil, err
	}
	if csPrime[0].Size() != k {
		return nil, ErrInvalidStatement
	}
	return &ShuffleStatement{cs: cs, csPrime: csPrime}, nil
}

// ShuffleWitness is the permutation and the re-encryption exponents.
type ShuffleWitness struct {
	permutation []int
	rho         *matrix.ZqVector
}

// NewShuffleWitness wraps a permutation of [0, N) and the exponent vector.
func NewShuffleWitness(permutation []int, rho *matrix.ZqVector) (*ShuffleWitness, error) {
	if len(permutation) != rho.Size() {
		return nil, ErrInvalidStatement
	}
	seen := make([]bool, len(permutation))
	for _, p := range permutation {
		if p < 0 || p >= len(permutation) || seen[p] {
			return nil, ErrInvalidStatement
		}
		seen[p] = true
	}
	return &ShuffleWitness{permutation: permutation, rho: rho}, nil
}

// ShuffleArgument is the proof record.
type ShuffleArgument struct {
	cA       *matrix.GqVector
	cB       *matrix.GqVector
	product  *ProductArgument
	multiExp *MultiExponentiationArgument
	m, n     int
}

// M returns the number of matrix columns of the argument.
func (a *ShuffleArgument) M() int { return a.m }

// N returns the number of matrix rows of the argument.
func (a *ShuffleArgument) N() int { return a.n }

// HashableForm projects the argument to the ordered list of its fields.
func (a *ShuffleArgument) HashableForm() hashing.Hashable {
	return hashing.List(
		a.cA.HashableForm(),
		a.cB.HashableForm(),
		a.product.HashableForm(),
		a.multiExp.HashableForm(),
		hashing.Uint(uint64(a.m)),
		hashing.Uint(uint64(a.n)),
	)
}

// GenShuffleArgument proves that the statement's C' re-encrypts and permutes
// C under the witness. N = m*n with n >= 2.
func (s *ArgumentService) GenShuffleArgument(statement *ShuffleStatement, witness *ShuffleWitness, m, n int) (*ShuffleArgument, error) {
	bigN := len(statement.cs)
	if m < 1 || n < 2 || m*n != bigN {
		return nil, ErrInvalidDimensions
	}
	if n > s.ck.Size() {
		return nil, ErrKeyTooShort
	}
	if len(witness.permutation) != bigN {
		return nil, ErrInvalidStatement
	}
	zq := s.zqGroup()

	// Commit to the permutation values.
	aElements := make([]*group.ZqElement, bigN)
	for i, p := range witness.permutation {
		aElements[i] = group.NewZqElementReduced(big.NewInt(int64(p)), zq)
	}
	aVector, err := matrix.NewZqVector(aElements)
	if err != nil {
		return nil, err
	}
	aMatrix, err := matrix.ZqMatrixFromVector(aVector, n, m)
	if err != nil {
		return nil, err
	}
	r, err := s.random.GenRandomVector(zq, m)
	if err != nil {
		return nil, err
	}
	cA, err := s.ck.CommitMatrix(aMatrix, r)
	if err != nil {
		return nil, err
	}

	x, err := s.shuffleChallengeX(statement, cA)
	if err != nil {
		return nil, err
	}
	xPowers, err := powers(x, bigN)
	if err != nil {
		return nil, err
	}
	xp := xPowers.Elements()

	// Commit to the x-powers of the permutation.
	bElements := make([]*group.ZqElement, bigN)
	for i, p := range witness.permutation {
		bElements[i] = xp[p]
	}
	bVector, err := matrix.NewZqVector(bElements)
	if err != nil {
		return nil, err
	}
	bMatrix, err := matrix.ZqMatrixFromVector(bVector, n, m)
	if err != nil {
		return nil, err
	}
	sRand, err := s.random.GenRandomVector(zq, m)
	if err != nil {
		return nil, err
	}
	cB, err := s.ck.CommitMatrix(bMatrix, sRand)
	if err != nil {
		return nil, err
	}

	y, z, err := s.shuffleChallengesYZ(statement, cA, cB)
	if err != nil {
		return nil, err
	}

	// Product argument over d - z with d = y*a + b.
	ya, err := aVector.MultiplyScalar(y)
	if err != nil {
		return nil, err
	}
	d, err := ya.Add(bVector)
	if err != nil {
		return nil, err
	}
	negZVec, err := constantVector(z.Negate(), bigN)
	if err != nil {
		return nil, err
	}
	dMinusZ, err := d.Add(negZVec)
	if err != nil {
		return nil, err
	}
	eMatrix, err := matrix.ZqMatrixFromVector(dMinusZ, n, m)
	if err != nil {
		return nil, err
	}
	yr, err := r.MultiplyScalar(y)
	if err != nil {
		return nil, err
	}
	t, err := yr.Add(sRand)
	if err != nil {
		return nil, err
	}
	cE, err := s.shuffleProductCommitments(cA, cB, y, z, n)
	if err != nil {
		return nil, err
	}
	bProd, err := s.shuffleProductValue(x, y, z, bigN)
	if err != nil {
		return nil, err
	}
	productStatement, err := NewProductStatement(cE, bProd)
	if err != nil {
		return nil, err
	}
	productWitness, err := NewProductWitness(eMatrix, t)
	if err != nil {
		return nil, err
	}
	productArgument, err := s.GenProductArgument(productStatement, productWitness)
	if err != nil {
		return nil, err
	}

	// Multi-exponentiation argument over the shuffled list.
	rhoHat, err := bVector.InnerProduct(witness.rho)
	if err != nil {
		return nil, err
	}
	rhoHat = rhoHat.Negate()
	rows := ciphertextRows(statement.csPrime, m, n)
	cStatement, err := elgamal.GetCiphertextVectorExponentiation(statement.cs, xPowers)
	if err != nil {
		return nil, err
	}
	multiExpStatement, err := NewMultiExponentiationStatement(rows, cStatement, cB)
	if err != nil {
		return nil, err
	}
	multiExpWitness, err := NewMultiExponentiationWitness(bMatrix, sRand, rhoHat)
	if err != nil {
		return nil, err
	}
	multiExpArgument, err := s.GenMultiExponentiationArgument(multiExpStatement, multiExpWitness)
	if err != nil {
		return nil, err
	}

	return &ShuffleArgument{
		cA:       cA,
		cB:       cB,
		product:  productArgument,
		multiExp: multiExpArgument,
		m:        m,
		n:        n,
	}, nil
}

// VerifyShuffleArgument re-derives the challenges and verifies the embedded
// product and multi-exponentiation arguments.
func (s *ArgumentService) VerifyShuffleArgument(statement *ShuffleStatement, argument *ShuffleArgument) (bool, error) {
	bigN := len(statement.cs)
	m, n := argument.m, argument.n
	if argument.cA == nil || argument.cB == nil || argument.product == nil || argument.multiExp == nil {
		return false, ErrInvalidArgument
	}
	if m < 1 || n < 2 || m*n != bigN {
		return false, ErrInvalidArgument
	}
	if argument.cA.Size() != m || argument.cB.Size() != m {
		return false, ErrInvalidArgument
	}
	if n > s.ck.Size() {
		return false, ErrKeyTooShort
	}

	x, err := s.shuffleChallengeX(statement, argument.cA)
	if err != nil {
		return false, err
	}
	y, z, err := s.shuffleChallengesYZ(statement, argument.cA, argument.cB)
	if err != nil {
		return false, err
	}
	xPowers, err := powers(x, bigN)
	if err != nil {
		return false, err
	}

	cE, err := s.shuffleProductCommitments(argument.cA, argument.cB, y, z, n)
	if err != nil {
		return false, err
	}
	bProd, err := s.shuffleProductValue(x, y, z, bigN)
	if err != nil {
		return false, err
	}
	productStatement, err := NewProductStatement(cE, bProd)
	if err != nil {
		return false, err
	}
	ok, err := s.VerifyProductArgument(productStatement, argument.product)
	if err != nil || !ok {
		return ok, err
	}

	rows := ciphertextRows(statement.csPrime, m, n)
	cStatement, err := elgamal.GetCiphertextVectorExponentiation(statement.cs, xPowers)
	if err != nil {
		return false, err
	}
	multiExpStatement, err := NewMultiExponentiationStatement(rows, cStatement, argument.cB)
	if err != nil {
		return false, err
	}
	return s.VerifyMultiExponentiationArgument(multiExpStatement, argument.multiExp)
}

// shuffleProductCommitments computes cE_j = cA_j^y * cB_j * commit(-z .. -z; 0).
func (s *ArgumentService) shuffleProductCommitments(cA, cB *matrix.GqVector, y, z *group.ZqElement, n int) (*matrix.GqVector, error) {
	zq := s.zqGroup()
	negZ, err := constantVector(z.Negate(), n)
	if err != nil {
		return nil, err
	}
	cMinusZ, err := s.ck.Commit(negZ, zq.Identity())
	if err != nil {
		return nil, err
	}
	out := make([]*group.GqElement, cA.Size())
	for j := 0; j < cA.Size(); j++ {
		caj, err := cA.Get(j)
		if err != nil {
			return nil, err
		}
		cbj, err := cB.Get(j)
		if err != nil {
			return nil, err
		}
		cajY, err := caj.Exponentiate(y)
		if err != nil {
			return nil, err
		}
		cd, err := cajY.Multiply(cbj)
		if err != nil {
			return nil, err
		}
		out[j], err = cd.Multiply(cMinusZ)
		if err != nil {
			return nil, err
		}
	}
	return matrix.NewGqVector(out)
}

// shuffleProductValue computes prod_{i=0}^{N-1} (y*i + x^i - z).
func (s *ArgumentService) shuffleProductValue(x, y, z *group.ZqElement, bigN int) (*group.ZqElement, error) {
	zq := s.zqGroup()
	prod := zq.One()
	xPower := zq.One()
	for i := 0; i < bigN; i++ {
		iElement := group.NewZqElementReduced(big.NewInt(int64(i)), zq)
		yi, err := y.Multiply(iElement)
		if err != nil {
			return nil, err
		}
		term, err := yi.Add(xPower)
		if err != nil {
			return nil, err
		}
		term, err = term.Subtract(z)
		if err != nil {
			return nil, err
		}
		prod, err = prod.Multiply(term)
		if err != nil {
			return nil, err
		}
		xPower, err = xPower.Multiply(x)
		if err != nil {
			return nil, err
		}
	}
	return prod, nil
}

// ciphertextRows arranges a list of m*n ciphertexts into m rows of n.
func ciphertextRows(cs []*elgamal.Ciphertext, m, n int) [][]*elgamal.Ciphertext {
	rows := make([][]*elgamal.Ciphertext, m)
	for i := 0; i < m; i++ {
		rows[i] = cs[i*n : (i+1)*n]
	}
	return rows
}

func (s *ArgumentService) shuffleChallengeX(statement *ShuffleStatement, cA *matrix.GqVector) (*group.ZqElement, error) {
	return s.argumentChallenge(shuffleTag, nil,
		ciphertextsHashable(statement.cs),
		ciphertextsHashable(statement.csPrime),
		cA.HashableForm(),
	)
}

func (s *ArgumentService) shuffleChallengesYZ(statement *ShuffleStatement, cA, cB *matrix.GqVector) (*group.ZqElement, *group.ZqElement, error) {
	inputs := []hashing.Hashable{
		ciphertextsHashable(statement.cs),
		ciphertextsHashable(statement.csPrime),
		cA.HashableForm(),
		cB.HashableForm(),
	}
	y, err := s.argumentChallenge(shuffleTag, []string{"1"}, inputs...)
	if err != nil {
		return nil, nil, err
	}
	z, err := s.argumentChallenge(shuffleTag, []string{"0"}, inputs...)
	if err != nil {
		return nil, nil, err
	}
	return y, z, nil
}
