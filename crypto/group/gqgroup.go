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

package group

import (
	"errors"
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

var (
	// ErrNonPrimeParameter is returned if p or q is not prime
	ErrNonPrimeParameter = errors.New("group parameter is not prime")
	// ErrNotSafePrime is returned if p != 2q+1
	ErrNotSafePrime = errors.New("p must equal 2q+1")
	// ErrInvalidGenerator is returned if g is not a generator of the order-q subgroup
	ErrInvalidGenerator = errors.New("g is not a generator of the subgroup")
	// ErrNotGroupMember is returned if a value is not a member of the group
	ErrNotGroupMember = errors.New("value is not a group member")
	// ErrDifferentGroups is returned if the operands belong to different groups
	ErrDifferentGroups = errors.New("operands belong to different groups")
	// ErrDifferentOrders is returned if the exponent group order differs from the base group order
	ErrDifferentOrders = errors.New("exponent group order differs from base group order")
	// ErrValueOutOfRange is returned if a value is outside the permitted range
	ErrValueOutOfRange = errors.New("value out of range")

	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// GqGroup is the multiplicative subgroup of order q of (Z/pZ)*, where
// p = 2q+1 and both p and q are prime. Two groups are equal if their
// parameters are equal. A GqGroup is immutable and safe to share.
type GqGroup struct {
	p *big.Int
	q *big.Int
	g *big.Int
}

// NewGqGroup validates (p, q, g) and returns the group. g must lie in
// [2, p-1] and generate the order-q subgroup.
func NewGqGroup(p, q, g *big.Int) (*GqGroup, error) {
	if !p.ProbablyPrime(30) || !q.ProbablyPrime(30) {
		return nil, ErrNonPrimeParameter
	}
	expectedP := new(big.Int).Lsh(q, 1)
	expectedP.Add(expectedP, big1)
	if p.Cmp(expectedP) != 0 {
		return nil, ErrNotSafePrime
	}
	if g.Cmp(big2) < 0 || g.Cmp(p) >= 0 {
		return nil, ErrInvalidGenerator
	}
	if !isGroupMember(g, p, q) {
		return nil, ErrInvalidGenerator
	}
	return &GqGroup{
		p: new(big.Int).Set(p),
		q: new(big.Int).Set(q),
		g: new(big.Int).Set(g),
	}, nil
}

// P returns the field order p.
func (g *GqGroup) P() *big.Int {
	return new(big.Int).Set(g.p)
}

// Q returns the group order q.
func (g *GqGroup) Q() *big.Int {
	return new(big.Int).Set(g.q)
}

// Generator returns the group generator as an element.
func (g *GqGroup) Generator() *GqElement {
	return &GqElement{value: new(big.Int).Set(g.g), group: g}
}

// Identity returns the identity element 1.
func (g *GqGroup) Identity() *GqElement {
	return &GqElement{value: big.NewInt(1), group: g}
}

// Equal reports whether the two groups have the same parameters.
func (g *GqGroup) Equal(other *GqGroup) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}
	return g.p.Cmp(other.p) == 0 && g.q.Cmp(other.q) == 0 && g.g.Cmp(other.g) == 0
}

// HasSameOrderAs reports whether the Zq group has order q.
func (g *GqGroup) HasSameOrderAs(z *ZqGroup) bool {
	return z != nil && g.q.Cmp(z.q) == 0
}

// HashableForm projects the group to the list (p, q, g). Every Fiat-Shamir
// challenge of this library starts with this list.
func (g *GqGroup) HashableForm() hashing.Hashable {
	return hashing.List(hashing.Number(g.p), hashing.Number(g.q), hashing.Number(g.g))
}

func isGroupMember(v, p, q *big.Int) bool {
	if v.Cmp(big1) < 0 || v.Cmp(p) >= 0 {
		return false
	}
	return new(big.Int).Exp(v, q, p).Cmp(big1) == 0
}
