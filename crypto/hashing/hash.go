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

package hashing

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/conversions"
)

// One-byte domain tags separating the hashable variants. They guarantee that a
// raw byte array never collides with the UTF-8 bytes of a string, and that a
// list of one element never collides with the bare element.
const (
	tagByteArray = 0x00
	tagNumber    = 0x01
	tagString    = 0x02
	tagList      = 0x03
)

const (
	// maxRejectionIterations bounds the rejection sampling of RecursiveHashToZq.
	// Exceeding it indicates a fatal bug, not bad luck.
	maxRejectionIterations = 256
	// maxProjectionDepth bounds the chain of domain projections.
	maxProjectionDepth = 100
)

var (
	// ErrEmptyHash is returned when hashing no values or an empty list
	ErrEmptyHash = errors.New("cannot hash no values")
	// ErrNegativeNumber is returned when hashing a negative integer
	ErrNegativeNumber = errors.New("cannot hash a negative integer")
	// ErrInvalidHashable is returned when a domain projection never reaches a base variant
	ErrInvalidHashable = errors.New("hashable form does not project to a base variant")
	// ErrOutputLengthTooSmall is returned if the requested XOF output is below the minimum
	ErrOutputLengthTooSmall = errors.New("requested output length is too small")
	// ErrRejectionLoop is returned when rejection sampling exceeds its iteration bound
	ErrRejectionLoop = errors.New("rejection sampling exceeded its iteration bound")

	big1 = big.NewInt(1)
)

// HashService computes recursive hashes with SHA3-256 and variable-length
// recursive hashes with SHAKE-256. It is stateless and safe for concurrent use.
type HashService struct {
	xofMinOutputBits int
}

// NewHashService returns a hash service with the default minimal XOF output
// length of one byte. Production configurations raise the minimum through the
// security level.
func NewHashService() *HashService {
	return &HashService{xofMinOutputBits: 8}
}

// NewHashServiceWithMinOutputBits returns a hash service enforcing the given
// lower bound on RecursiveHashOfLength requests.
func NewHashServiceWithMinOutputBits(bits int) *HashService {
	return &HashService{xofMinOutputBits: bits}
}

// HashLengthBits returns the output length of the underlying hash in bits.
func (s *HashService) HashLengthBits() int {
	return 256
}

// RecursiveHash hashes the given values with SHA3-256. A single value is
// hashed as its tagged variant; two or more values are hashed as the list of
// the values.
func (s *HashService) RecursiveHash(values ...Hashable) ([]byte, error) {
	v, err := single(values)
	if err != nil {
		return nil, err
	}
	return recursiveHash(v, sha3Fixed)
}

// RecursiveHashOfLength hashes the given values with SHAKE-256, producing
// ceil(l/8) bytes cut to the low l bits.
func (s *HashService) RecursiveHashOfLength(l int, values ...Hashable) ([]byte, error) {
	if l < s.xofMinOutputBits {
		return nil, ErrOutputLengthTooSmall
	}
	v, err := single(values)
	if err != nil {
		return nil, err
	}
	byteLength := (l + 7) / 8
	h, err := recursiveHash(v, shakeOfLength(byteLength))
	if err != nil {
		return nil, err
	}
	return conversions.CutToBitLength(h, l)
}

// RecursiveHashToZq maps the given values to an integer uniform in [0, q) by
// rejection sampling on bitLength(q)-bit XOF outputs. Rejected outputs are fed
// back as an additional leading input.
func (s *HashService) RecursiveHashToZq(q *big.Int, values ...Hashable) (*big.Int, error) {
	if q.Cmp(big1) <= 0 {
		return nil, errors.New("q must be greater than 1")
	}
	if len(values) == 0 {
		return nil, ErrEmptyHash
	}
	l := q.BitLen()
	input := values
	for i := 0; i < maxRejectionIterations; i++ {
		h, err := s.RecursiveHashOfLength(l, input...)
		if err != nil {
			return nil, err
		}
		u, err := conversions.ByteArrayToInteger(h)
		if err != nil {
			return nil, err
		}
		if u.Cmp(q) < 0 {
			return u, nil
		}
		input = append([]Hashable{Number(u)}, values...)
	}
	return nil, ErrRejectionLoop
}

// single normalises the argument list: exactly one value is hashed as itself,
// k >= 2 values are hashed as the list of the values.
func single(values []Hashable) (Hashable, error) {
	switch len(values) {
	case 0:
		return nil, ErrEmptyHash
	case 1:
		if values[0] == nil {
			return nil, ErrEmptyHash
		}
		return values[0], nil
	default:
		return List(values...), nil
	}
}

// digestFunc hashes a framed input to a fixed-size output.
type digestFunc func(frames ...[]byte) []byte

func sha3Fixed(frames ...[]byte) []byte {
	h := sha3.New256()
	for _, f := range frames {
		h.Write(f)
	}
	return h.Sum(nil)
}

func shakeOfLength(byteLength int) digestFunc {
	return func(frames ...[]byte) []byte {
		x := sha3.NewShake256()
		for _, f := range frames {
			x.Write(f)
		}
		out := make([]byte, byteLength)
		x.Read(out)
		return out
	}
}

func recursiveHash(v Hashable, digest digestFunc) ([]byte, error) {
	base, err := project(v)
	if err != nil {
		return nil, err
	}
	switch w := base.(type) {
	case HashableByteArray:
		return digest([]byte{tagByteArray}, w), nil
	case HashableNumber:
		if w.value.Sign() < 0 {
			return nil, ErrNegativeNumber
		}
		b, err := conversions.IntegerToByteArray(w.value)
		if err != nil {
			return nil, err
		}
		return digest([]byte{tagNumber}, b), nil
	case HashableString:
		return digest([]byte{tagString}, conversions.StringToByteArray(string(w))), nil
	case HashableList:
		if len(w) == 0 {
			return nil, ErrEmptyHash
		}
		frames := make([][]byte, 0, len(w)+1)
		frames = append(frames, []byte{tagList})
		for _, child := range w {
			d, err := recursiveHash(child, digest)
			if err != nil {
				return nil, err
			}
			frames = append(frames, d)
		}
		return digest(frames...), nil
	default:
		return nil, ErrInvalidHashable
	}
}

// project follows domain projections until a base variant is reached.
func project(v Hashable) (Hashable, error) {
	for i := 0; i < maxProjectionDepth; i++ {
		if v == nil {
			return nil, ErrEmptyHash
		}
		switch v.(type) {
		case HashableByteArray, HashableNumber, HashableString, HashableList:
			return v, nil
		}
		v = v.HashableForm()
	}
	return nil, ErrInvalidHashable
}
