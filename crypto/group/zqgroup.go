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

// ErrSmallOrder is returned if the group order is below 2.
var ErrSmallOrder = errors.New("group order must be at least 2")

// ZqGroup is the ring of integers modulo q. Two groups are equal if their
// orders are equal.
type ZqGroup struct {
	q *big.Int
}

// NewZqGroup returns the ring Z/qZ.
func NewZqGroup(q *big.Int) (*ZqGroup, error) {
	if q.Cmp(big2) < 0 {
		return nil, ErrSmallOrder
	}
	return &ZqGroup{q: new(big.Int).Set(q)}, nil
}

// ZqGroupSameOrderAs returns the Zq group matching the order of the Gq group.
func ZqGroupSameOrderAs(g *GqGroup) *ZqGroup {
	return &ZqGroup{q: new(big.Int).Set(g.q)}
}

// Q returns the group order.
func (z *ZqGroup) Q() *big.Int {
	return new(big.Int).Set(z.q)
}

// Equal reports whether the two groups have the same order.
func (z *ZqGroup) Equal(other *ZqGroup) bool {
	if z == other {
		return true
	}
	if other == nil {
		return false
	}
	return z.q.Cmp(other.q) == 0
}

// Identity returns the additive identity 0.
func (z *ZqGroup) Identity() *ZqElement {
	return &ZqElement{value: big.NewInt(0), group: z}
}

// One returns the multiplicative unit 1.
func (z *ZqGroup) One() *ZqElement {
	return &ZqElement{value: big.NewInt(1), group: z}
}

// ZqElement is an immutable member of a ZqGroup.
type ZqElement struct {
	value *big.Int
	group *ZqGroup
}

// NewZqElement checks 0 <= value < q and wraps it.
func NewZqElement(value *big.Int, group *ZqGroup) (*ZqElement, error) {
	if value.Sign() < 0 || value.Cmp(group.q) >= 0 {
		return nil, ErrValueOutOfRange
	}
	return &ZqElement{value: new(big.Int).Set(value), group: group}, nil
}

// NewZqElementReduced wraps value mod q. Negative values reduce into [0, q).
func NewZqElementReduced(value *big.Int, group *ZqGroup) *ZqElement {
	v := new(big.Int).Mod(value, group.q)
	return &ZqElement{value: v, group: group}
}

// Value returns a copy of the element value.
func (e *ZqElement) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Group returns the element's group.
func (e *ZqElement) Group() *ZqGroup {
	return e.group
}

// Add returns e + other mod q.
func (e *ZqElement) Add(other *ZqElement) (*ZqElement, error) {
	if !e.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	v := new(big.Int).Add(e.value, other.value)
	v.Mod(v, e.group.q)
	return &ZqElement{value: v, group: e.group}, nil
}

// Subtract returns e - other mod q.
func (e *ZqElement) Subtract(other *ZqElement) (*ZqElement, error) {
	if !e.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	v := new(big.Int).Sub(e.value, other.value)
	v.Mod(v, e.group.q)
	return &ZqElement{value: v, group: e.group}, nil
}

// Multiply returns e * other mod q.
func (e *ZqElement) Multiply(other *ZqElement) (*ZqElement, error) {
	if !e.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	v := new(big.Int).Mul(e.value, other.value)
	v.Mod(v, e.group.q)
	return &ZqElement{value: v, group: e.group}, nil
}

// Negate returns -e mod q.
func (e *ZqElement) Negate() *ZqElement {
	v := new(big.Int).Neg(e.value)
	v.Mod(v, e.group.q)
	return &ZqElement{value: v, group: e.group}
}

// Equal reports value and group equality.
func (e *ZqElement) Equal(other *ZqElement) bool {
	if other == nil {
		return false
	}
	return e.group.Equal(other.group) && e.value.Cmp(other.value) == 0
}

// HashableForm projects the element to its integer value.
func (e *ZqElement) HashableForm() hashing.Hashable {
	return hashing.Number(e.value)
}
