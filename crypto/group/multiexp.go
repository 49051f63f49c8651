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
)

const multiExpWindowBits = 4

var (
	// ErrEmptyMultiExp is returned if the base list is empty
	ErrEmptyMultiExp = errors.New("multi-exponentiation needs at least one base")
	// ErrMismatchedLengths is returned if bases and exponents differ in length
	ErrMismatchedLengths = errors.New("bases and exponents differ in length")
)

// MultiModExp computes prod_i bases[i]^exponents[i] mod modulus with a
// simultaneous fixed-window exponentiation (Straus). Every verifier of this
// library runs on it, so each base gets a 2^w-entry table and the squarings
// are shared across all bases.
func MultiModExp(bases, exponents []*big.Int, modulus *big.Int) (*big.Int, error) {
	if len(bases) == 0 {
		return nil, ErrEmptyMultiExp
	}
	if len(bases) != len(exponents) {
		return nil, ErrMismatchedLengths
	}
	if modulus.Cmp(big1) <= 0 {
		return nil, ErrValueOutOfRange
	}
	maxBits := 0
	for _, e := range exponents {
		if e.Sign() < 0 {
			return nil, ErrValueOutOfRange
		}
		if e.BitLen() > maxBits {
			maxBits = e.BitLen()
		}
	}
	if maxBits == 0 {
		return big.NewInt(1), nil
	}

	tableSize := 1 << multiExpWindowBits
	tables := make([][]*big.Int, len(bases))
	for i, b := range bases {
		reduced := new(big.Int).Mod(b, modulus)
		tables[i] = make([]*big.Int, tableSize)
		tables[i][0] = big.NewInt(1)
		for j := 1; j < tableSize; j++ {
			tables[i][j] = new(big.Int).Mul(tables[i][j-1], reduced)
			tables[i][j].Mod(tables[i][j], modulus)
		}
	}

	windows := (maxBits + multiExpWindowBits - 1) / multiExpWindowBits
	result := big.NewInt(1)
	for w := windows - 1; w >= 0; w-- {
		for s := 0; s < multiExpWindowBits; s++ {
			result.Mul(result, result)
			result.Mod(result, modulus)
		}
		pos := w * multiExpWindowBits
		for i, e := range exponents {
			digit := 0
			for b := multiExpWindowBits - 1; b >= 0; b-- {
				digit <<= 1
				if e.Bit(pos+b) == 1 {
					digit |= 1
				}
			}
			if digit != 0 {
				result.Mul(result, tables[i][digit])
				result.Mod(result, modulus)
			}
		}
	}
	return result, nil
}

// MultiExponentiate computes prod_i bases[i]^exponents[i] over a GqGroup.
// All bases must share one group and all exponents one Zq group of the same
// order.
func MultiExponentiate(bases []*GqElement, exponents []*ZqElement) (*GqElement, error) {
	if len(bases) == 0 {
		return nil, ErrEmptyMultiExp
	}
	if len(bases) != len(exponents) {
		return nil, ErrMismatchedLengths
	}
	g := bases[0].group
	rawBases := make([]*big.Int, len(bases))
	rawExponents := make([]*big.Int, len(exponents))
	for i := range bases {
		if !bases[i].group.Equal(g) {
			return nil, ErrDifferentGroups
		}
		if g.q.Cmp(exponents[i].group.q) != 0 {
			return nil, ErrDifferentOrders
		}
		rawBases[i] = bases[i].value
		rawExponents[i] = exponents[i].value
	}
	v, err := MultiModExp(rawBases, rawExponents, g.p)
	if err != nil {
		return nil, err
	}
	return &GqElement{value: v, group: g}, nil
}
