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

/*
Package commitment implements the Pedersen vector commitment used by the
shuffle argument.

	commit(a, r) = h^r * prod_i g_i^{a_i}

with key ck = (h, g_1 .. g_nu). A matrix is committed column by column, each
column with its own randomness.
*/
package commitment

import (
	"errors"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
)

var (
	// ErrEmptyKey is returned if the key has no g elements
	ErrEmptyKey = errors.New("commitment key needs at least one g element")
	// ErrInvalidKeyElement is returned if a key element equals the identity or the generator
	ErrInvalidKeyElement = errors.New("commitment key element equals identity or generator")
	// ErrDifferentGroups is returned if the key elements do not share one group
	ErrDifferentGroups = errors.New("key elements belong to different groups")
	// ErrVectorTooLong is returned if the committed vector exceeds the key size
	ErrVectorTooLong = errors.New("vector longer than commitment key")
	// ErrEmptyVector is returned if the committed vector is empty
	ErrEmptyVector = errors.New("cannot commit to an empty vector")
	// ErrSizeMismatch is returned if randomness and matrix sizes differ
	ErrSizeMismatch = errors.New("randomness size does not match the number of columns")
	// ErrDifferentOrders is returned if the committed values have a different order
	ErrDifferentOrders = errors.New("committed values have a different group order")
)

// CommitmentKey is (h, g_1 .. g_nu), all in one GqGroup, each distinct from
// the identity and from the group generator.
type CommitmentKey struct {
	h  *group.GqElement
	gs *matrix.GqVector
}

// NewCommitmentKey validates and wraps the key elements.
func NewCommitmentKey(h *group.GqElement, gs *matrix.GqVector) (*CommitmentKey, error) {
	if gs.Size() == 0 {
		return nil, ErrEmptyKey
	}
	if !h.Group().Equal(gs.Group()) {
		return nil, ErrDifferentGroups
	}
	generator := h.Group().Generator()
	if h.IsIdentity() || h.Equal(generator) {
		return nil, ErrInvalidKeyElement
	}
	for _, g := range gs.Elements() {
		if g.IsIdentity() || g.Equal(generator) {
			return nil, ErrInvalidKeyElement
		}
	}
	return &CommitmentKey{h: h, gs: gs}, nil
}

// H returns the randomness base.
func (ck *CommitmentKey) H() *group.GqElement { return ck.h }

// Gs returns the message bases.
func (ck *CommitmentKey) Gs() *matrix.GqVector { return ck.gs }

// Size returns nu, the maximal committable vector size.
func (ck *CommitmentKey) Size() int { return ck.gs.Size() }

// Group returns the key group.
func (ck *CommitmentKey) Group() *group.GqGroup { return ck.h.Group() }

// HashableForm projects the key to the list (h, g_1 .. g_nu).
func (ck *CommitmentKey) HashableForm() hashing.Hashable {
	out := make(hashing.HashableList, 0, ck.gs.Size()+1)
	out = append(out, ck.h.HashableForm())
	for _, g := range ck.gs.Elements() {
		out = append(out, g.HashableForm())
	}
	return out
}

// Commit computes h^r * prod_i g_i^{a_i}. The vector may be shorter than the
// key; the unused bases are left out.
func (ck *CommitmentKey) Commit(a *matrix.ZqVector, r *group.ZqElement) (*group.GqElement, error) {
	if a.Size() == 0 {
		return nil, ErrEmptyVector
	}
	if a.Size() > ck.Size() {
		return nil, ErrVectorTooLong
	}
	if !ck.Group().HasSameOrderAs(a.Group()) || !a.Group().Equal(r.Group()) {
		return nil, ErrDifferentOrders
	}
	bases := make([]*group.GqElement, 0, a.Size()+1)
	bases = append(bases, ck.h)
	bases = append(bases, ck.gs.Elements()[:a.Size()]...)
	exponents := make([]*group.ZqElement, 0, a.Size()+1)
	exponents = append(exponents, r)
	exponents = append(exponents, a.Elements()...)
	return group.MultiExponentiate(bases, exponents)
}

// CommitMatrix commits every column of a independently, column j with
// randomness r_j, and returns the vector of commitments.
func (ck *CommitmentKey) CommitMatrix(a *matrix.ZqMatrix, r *matrix.ZqVector) (*matrix.GqVector, error) {
	if a.NumColumns() != r.Size() {
		return nil, ErrSizeMismatch
	}
	out := make([]*group.GqElement, a.NumColumns())
	for j := 0; j < a.NumColumns(); j++ {
		column, err := a.Column(j)
		if err != nil {
			return nil, err
		}
		rj, err := r.Get(j)
		if err != nil {
			return nil, err
		}
		c, err := ck.Commit(column, rj)
		if err != nil {
			return nil, err
		}
		out[j] = c
	}
	return matrix.NewGqVector(out)
}
