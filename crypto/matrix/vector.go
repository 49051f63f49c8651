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

package matrix

import (
	"errors"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

var (
	// ErrEmptyWithoutGroup is returned when building an empty container without a group
	ErrEmptyWithoutGroup = errors.New("an empty container needs an explicit group")
	// ErrDifferentGroups is returned if elements do not share one group
	ErrDifferentGroups = errors.New("elements belong to different groups")
	// ErrDifferentSizes is returned if the operand sizes differ
	ErrDifferentSizes = errors.New("operands differ in size")
	// ErrIndexOutOfRange is returned on out-of-range element access
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNilElement is returned if an element is nil
	ErrNilElement = errors.New("nil element")
)

// GqVector is an immutable ordered sequence of GqElements sharing one group.
type GqVector struct {
	group    *group.GqGroup
	elements []*group.GqElement
}

// NewGqVector builds a vector from a non-empty slice of elements of one group.
func NewGqVector(elements []*group.GqElement) (*GqVector, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyWithoutGroup
	}
	for _, e := range elements {
		if e == nil {
			return nil, ErrNilElement
		}
	}
	g := elements[0].Group()
	for _, e := range elements[1:] {
		if !e.Group().Equal(g) {
			return nil, ErrDifferentGroups
		}
	}
	out := make([]*group.GqElement, len(elements))
	copy(out, elements)
	return &GqVector{group: g, elements: out}, nil
}

// EmptyGqVector builds the empty vector over the given group.
func EmptyGqVector(g *group.GqGroup) *GqVector {
	return &GqVector{group: g}
}

// Size returns the number of elements.
func (v *GqVector) Size() int {
	return len(v.elements)
}

// Group returns the common group.
func (v *GqVector) Group() *group.GqGroup {
	return v.group
}

// Get returns the i-th element, 0-indexed.
func (v *GqVector) Get(i int) (*group.GqElement, error) {
	if i < 0 || i >= len(v.elements) {
		return nil, ErrIndexOutOfRange
	}
	return v.elements[i], nil
}

// Elements returns a copy of the element slice.
func (v *GqVector) Elements() []*group.GqElement {
	out := make([]*group.GqElement, len(v.elements))
	copy(out, v.elements)
	return out
}

// Append returns a new vector with e appended.
func (v *GqVector) Append(e *group.GqElement) (*GqVector, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	if !e.Group().Equal(v.group) {
		return nil, ErrDifferentGroups
	}
	out := make([]*group.GqElement, 0, len(v.elements)+1)
	out = append(out, v.elements...)
	out = append(out, e)
	return &GqVector{group: v.group, elements: out}, nil
}

// Prepend returns a new vector with e prepended.
func (v *GqVector) Prepend(e *group.GqElement) (*GqVector, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	if !e.Group().Equal(v.group) {
		return nil, ErrDifferentGroups
	}
	out := make([]*group.GqElement, 0, len(v.elements)+1)
	out = append(out, e)
	out = append(out, v.elements...)
	return &GqVector{group: v.group, elements: out}, nil
}

// Concat returns the concatenation of v and other.
func (v *GqVector) Concat(other *GqVector) (*GqVector, error) {
	if !v.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	out := make([]*group.GqElement, 0, len(v.elements)+len(other.elements))
	out = append(out, v.elements...)
	out = append(out, other.elements...)
	return &GqVector{group: v.group, elements: out}, nil
}

// Multiply returns the element-wise product of v and other.
func (v *GqVector) Multiply(other *GqVector) (*GqVector, error) {
	if !v.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	if len(v.elements) != len(other.elements) {
		return nil, ErrDifferentSizes
	}
	out := make([]*group.GqElement, len(v.elements))
	for i := range v.elements {
		p, err := v.elements[i].Multiply(other.elements[i])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return &GqVector{group: v.group, elements: out}, nil
}

// Exponentiate raises every element to the given exponent.
func (v *GqVector) Exponentiate(exponent *group.ZqElement) (*GqVector, error) {
	out := make([]*group.GqElement, len(v.elements))
	for i := range v.elements {
		e, err := v.elements[i].Exponentiate(exponent)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return &GqVector{group: v.group, elements: out}, nil
}

// MultiExponentiate computes prod_i v_i^exponents_i.
func (v *GqVector) MultiExponentiate(exponents *ZqVector) (*group.GqElement, error) {
	if len(v.elements) != exponents.Size() {
		return nil, ErrDifferentSizes
	}
	return group.MultiExponentiate(v.elements, exponents.elements)
}

// Equal reports element-wise equality.
func (v *GqVector) Equal(other *GqVector) bool {
	if other == nil || len(v.elements) != len(other.elements) || !v.group.Equal(other.group) {
		return false
	}
	for i := range v.elements {
		if !v.elements[i].Equal(other.elements[i]) {
			return false
		}
	}
	return true
}

// HashableForm projects the vector to the ordered list of its elements.
func (v *GqVector) HashableForm() hashing.Hashable {
	out := make(hashing.HashableList, len(v.elements))
	for i, e := range v.elements {
		out[i] = e.HashableForm()
	}
	return out
}

// ZqVector is an immutable ordered sequence of ZqElements sharing one group.
type ZqVector struct {
	group    *group.ZqGroup
	elements []*group.ZqElement
}

// NewZqVector builds a vector from a non-empty slice of elements of one group.
func NewZqVector(elements []*group.ZqElement) (*ZqVector, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyWithoutGroup
	}
	for _, e := range elements {
		if e == nil {
			return nil, ErrNilElement
		}
	}
	g := elements[0].Group()
	for _, e := range elements[1:] {
		if !e.Group().Equal(g) {
			return nil, ErrDifferentGroups
		}
	}
	out := make([]*group.ZqElement, len(elements))
	copy(out, elements)
	return &ZqVector{group: g, elements: out}, nil
}

// EmptyZqVector builds the empty vector over the given group.
func EmptyZqVector(g *group.ZqGroup) *ZqVector {
	return &ZqVector{group: g}
}

// Size returns the number of elements.
func (v *ZqVector) Size() int {
	return len(v.elements)
}

// Group returns the common group.
func (v *ZqVector) Group() *group.ZqGroup {
	return v.group
}

// Get returns the i-th element, 0-indexed.
func (v *ZqVector) Get(i int) (*group.ZqElement, error) {
	if i < 0 || i >= len(v.elements) {
		return nil, ErrIndexOutOfRange
	}
	return v.elements[i], nil
}

// Elements returns a copy of the element slice.
func (v *ZqVector) Elements() []*group.ZqElement {
	out := make([]*group.ZqElement, len(v.elements))
	copy(out, v.elements)
	return out
}

// Append returns a new vector with e appended.
func (v *ZqVector) Append(e *group.ZqElement) (*ZqVector, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	if !e.Group().Equal(v.group) {
		return nil, ErrDifferentGroups
	}
	out := make([]*group.ZqElement, 0, len(v.elements)+1)
	out = append(out, v.elements...)
	out = append(out, e)
	return &ZqVector{group: v.group, elements: out}, nil
}

// Prepend returns a new vector with e prepended.
func (v *ZqVector) Prepend(e *group.ZqElement) (*ZqVector, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	if !e.Group().Equal(v.group) {
		return nil, ErrDifferentGroups
	}
	out := make([]*group.ZqElement, 0, len(v.elements)+1)
	out = append(out, e)
	out = append(out, v.elements...)
	return &ZqVector{group: v.group, elements: out}, nil
}

// Concat returns the concatenation of v and other.
func (v *ZqVector) Concat(other *ZqVector) (*ZqVector, error) {
	if !v.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	out := make([]*group.ZqElement, 0, len(v.elements)+len(other.elements))
	out = append(out, v.elements...)
	out = append(out, other.elements...)
	return &ZqVector{group: v.group, elements: out}, nil
}

// Add returns the element-wise sum of v and other.
func (v *ZqVector) Add(other *ZqVector) (*ZqVector, error) {
	if !v.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	if len(v.elements) != len(other.elements) {
		return nil, ErrDifferentSizes
	}
	out := make([]*group.ZqElement, len(v.elements))
	for i := range v.elements {
		s, err := v.elements[i].Add(other.elements[i])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return &ZqVector{group: v.group, elements: out}, nil
}

// HadamardProduct returns the element-wise product of v and other.
func (v *ZqVector) HadamardProduct(other *ZqVector) (*ZqVector, error) {
	if !v.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	if len(v.elements) != len(other.elements) {
		return nil, ErrDifferentSizes
	}
	out := make([]*group.ZqElement, len(v.elements))
	for i := range v.elements {
		p, err := v.elements[i].Multiply(other.elements[i])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return &ZqVector{group: v.group, elements: out}, nil
}

// MultiplyScalar multiplies every element by the scalar.
func (v *ZqVector) MultiplyScalar(scalar *group.ZqElement) (*ZqVector, error) {
	if !v.group.Equal(scalar.Group()) {
		return nil, ErrDifferentGroups
	}
	out := make([]*group.ZqElement, len(v.elements))
	for i := range v.elements {
		p, err := v.elements[i].Multiply(scalar)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return &ZqVector{group: v.group, elements: out}, nil
}

// InnerProduct returns sum_i v_i * other_i.
func (v *ZqVector) InnerProduct(other *ZqVector) (*group.ZqElement, error) {
	if !v.group.Equal(other.group) {
		return nil, ErrDifferentGroups
	}
	if len(v.elements) != len(other.elements) {
		return nil, ErrDifferentSizes
	}
	sum := v.group.Identity()
	for i := range v.elements {
		p, err := v.elements[i].Multiply(other.elements[i])
		if err != nil {
			return nil, err
		}
		sum, err = sum.Add(p)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Product returns prod_i v_i.
func (v *ZqVector) Product() *group.ZqElement {
	prod := v.group.One()
	for _, e := range v.elements {
		prod, _ = prod.Multiply(e)
	}
	return prod
}

// Equal reports element-wise equality.
func (v *ZqVector) Equal(other *ZqVector) bool {
	if other == nil || len(v.elements) != len(other.elements) || !v.group.Equal(other.group) {
		return false
	}
	for i := range v.elements {
		if !v.elements[i].Equal(other.elements[i]) {
			return false
		}
	}
	return true
}

// HashableForm projects the vector to the ordered list of its elements.
func (v *ZqVector) HashableForm() hashing.Hashable {
	out := make(hashing.HashableList, len(v.elements))
	for i, e := range v.elements {
		out[i] = e.HashableForm()
	}
	return out
}
