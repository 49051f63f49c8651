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

// Package keyderivation wraps HKDF-Expand over SHA-256 and Argon2id.
package keyderivation

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/conversions"
)

const (
	minPRKSize = 32
	// maxRejectionIterations bounds the feedback loop of ExpandToZq.
	maxRejectionIterations = 256
)

var (
	// ErrShortPRK is returned if the pseudo-random key is shorter than 32 bytes
	ErrShortPRK = errors.New("pseudo-random key must be at least 32 bytes")
	// ErrBadOutputLength is returned if the requested length is out of range
	ErrBadOutputLength = errors.New("requested output length out of range")
	// ErrRejectionLoop is returned when the feedback sampling exceeds its bound
	ErrRejectionLoop = errors.New("rejection sampling exceeded its iteration bound")
)

// Expand derives length bytes from the pseudo-random key and the context
// info with HKDF-Expand(SHA-256). length is bounded by 255 * 32.
func Expand(prk, info []byte, length int) ([]byte, error) {
	if len(prk) < minPRKSize {
		return nil, ErrShortPRK
	}
	if length <= 0 || length > 255*sha256.Size {
		return nil, ErrBadOutputLength
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpandToZq derives an integer uniform in [0, q): each round expands
// max(ceil(bitLen(q)/8), 32) bytes, cuts them to bitLen(q) bits and feeds the
// output back as the next pseudo-random key until the draw is below q.
func ExpandToZq(prk, info []byte, q *big.Int) (*big.Int, error) {
	if q.Sign() <= 0 {
		return nil, ErrBadOutputLength
	}
	bits := q.BitLen()
	byteLength := (bits + 7) / 8
	// The feedback key must stay a valid PRK, so never expand below 32 bytes.
	if byteLength < minPRKSize {
		byteLength = minPRKSize
	}
	key := prk
	for i := 0; i < maxRejectionIterations; i++ {
		h, err := Expand(key, info, byteLength)
		if err != nil {
			return nil, err
		}
		cut, err := conversions.CutToBitLength(h, bits)
		if err != nil {
			return nil, err
		}
		u, err := conversions.ByteArrayToInteger(cut)
		if err != nil {
			return nil, err
		}
		if u.Cmp(q) < 0 {
			return u, nil
		}
		key = h
	}
	return nil, ErrRejectionLoop
}
