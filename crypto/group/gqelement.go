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
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

// GqElement is an immutable member of a GqGroup. Arithmetic returns new
// elements and never mutates the receiver.
type GqElement struct {
	value *big.Int
	group *GqGroup
}

// NewGqElement checks membership of value in the group and wraps it.
func NewGqElement(value *big.Int, group *GqGroup) (*GqElement, error) {
	if !isGroupMember(value, group.p, group.q) {
		return nil, ErrNotGroupMember
	}
	return &GqElement{value: new(big.Int).Set(value), group: group}, nil
}

// GqElementFromSquareRoot returns r^2 mod p, which is always a member of the
// quadratic-residue group. r must lie in [1, p).
func GqElementFromSquareRoot(r *big.Int, group *GqGroup) (*GqElement, error) {
	if r.Cmp(big1) < 0 || r.Cmp(group.p) >= 0 {
		return nil, ErrValueOutOfRange
	}
	v := new(big.Int).Mul(r, r)
	v.Mod(v, group.p)
	return &GqElement{value: v, group: group}, nil
}

// Value returns a copy of the element value.
func (e *GqElement) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Group returns the element's group.
func (e *GqElement) Group() *GqGroup {
	return e.group
}

// Multiply returns e * other mod p.
func (e *GqElement) Multiply(other *GqElement) (*GqElement, error) {
	if !e.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	v := new(big.Int).Mul(e.value, other.value)
	v.Mod(v, e.group.p)
	return &GqElement{value: v, group: e.group}, nil
}

// Exponentiate returns e^exponent mod p. The exponent group must have the
// same order q as the base group.
func (e *GqElement) Exponentiate(exponent *ZqElement) (*GqElement, error) {
	if e.group.q.Cmp(exponent.group.q) != 0 {
		return nil, ErrDifferentOrders
	}
	v := new(big.Int).Exp(e.value, exponent.value, e.group.p)
	return &GqElement{value: v, group: e.group}, nil
}

// Divide returns e / other mod p.
func (e *GqElement) Divide(other *GqElement) (*GqElement, error) {
	inv, err := other.Invert()
	if err != nil {
		return nil, err
	}
	return e.Multiply(inv)
}

// Invert returns the multiplicative inverse of e.
func (e *GqElement) Invert() (*GqElement, error) {
	v := new(big.Int).ModInverse(e.value, e.group.p)
	if v == nil {
		return nil, ErrNotGroupMember
	}
	return &GqElement{value: v, group: e.group}, nil
}

// IsIdentity reports whether e is the identity element.
func (e *GqElement) IsIdentity() bool {
	return e.value.Cmp(big1) == 0
}

// Equal reports value and group equality.
func (e *GqElement) Equal(other *GqElement) bool {
	if other == nil {
		return false
	}
	return e.group.Equal(other.group) && e.value.Cmp(other.value) == 0
}

// HashableForm projects the element to its integer value.
func (e *GqElement) HashableForm() hashing.Hashable {
	return hashing.Number(e.value)
}
