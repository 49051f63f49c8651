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

// Package zkproof implements the Fiat-Shamir non-interactive zero-knowledge
// proofs of the mix-net: Schnorr, plaintext equality and exponentiation.
// Challenges are derived with the recursive hash-to-Zq primitive over the
// list (p, q, g), the statement, the commitment and a tagged auxiliary list.
// Verifiers recompute the challenge from the exact same inputs in the exact
// same order; a mismatch yields false, never an error.
package zkproof

import (
	"errors"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

var (
	// ErrDifferentGroups is returned if the statement parts belong to different groups
	ErrDifferentGroups = errors.New("statement parts belong to different groups")
	// ErrDifferentOrders is returned if preimage and statement orders differ
	ErrDifferentOrders = errors.New("preimage and statement orders differ")
	// ErrEmptyStatement is returned if the statement is empty
	ErrEmptyStatement = errors.New("statement is empty")
	// ErrSizeMismatch is returned if statement sizes differ
	ErrSizeMismatch = errors.New("statement sizes differ")
)

// challenge derives a Zq challenge from the given hashables.
func challenge(hs *hashing.HashService, zq *group.ZqGroup, values ...hashing.Hashable) (*group.ZqElement, error) {
	u, err := hs.RecursiveHashToZq(zq.Q(), values...)
	if err != nil {
		return nil, err
	}
	return group.NewZqElement(u, zq)
}

// auxiliaryList builds the tagged auxiliary hashable list: the protocol tag,
// optional protocol-specific extras, then the caller-provided strings.
func auxiliaryList(tag string, extras []hashing.Hashable, aux []string) hashing.HashableList {
	out := make(hashing.HashableList, 0, 1+len(extras)+len(aux))
	out = append(out, hashing.Text(tag))
	out = append(out, extras...)
	for _, a := range aux {
		out = append(out, hashing.Text(a))
	}
	return out
}
