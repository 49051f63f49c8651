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

package random

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/codec"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/conversions"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
)

const (
	// maxRejectionIterations bounds every rejection-sampling loop. Exceeding it
	// indicates a fatal bug, not bad luck.
	maxRejectionIterations = 256
)

var (
	// ErrNonPositiveBound is returned if the upper bound is not positive
	ErrNonPositiveBound = errors.New("upper bound must be positive")
	// ErrNonPositiveLength is returned if the requested length is not positive
	ErrNonPositiveLength = errors.New("length must be positive")
	// ErrRejectionLoop is returned when rejection sampling exceeds its iteration bound
	ErrRejectionLoop = errors.New("rejection sampling exceeded its iteration bound")
	// ErrTooManyCodes is returned if more unique codes are requested than exist
	ErrTooManyCodes = errors.New("more unique codes requested than the code space holds")

	big10 = big.NewInt(10)
)

// RandomService draws uniform values from a CSPRNG. It is stateless apart
// from the CSPRNG handle and safe for concurrent use.
type RandomService struct {
	reader io.Reader
}

// NewRandomService returns a service backed by crypto/rand.
func NewRandomService() *RandomService {
	return &RandomService{reader: rand.Reader}
}

// RandomBytes returns n uniform bytes.
func (s *RandomService) RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrNonPositiveLength
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(s.reader, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenRandomInteger returns a uniform integer in [0, m) by rejection sampling
// on bitLength(m)-bit draws.
func (s *RandomService) GenRandomInteger(m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNonPositiveBound
	}
	bits := m.BitLen()
	byteLength := (bits + 7) / 8
	for i := 0; i < maxRejectionIterations; i++ {
		b, err := s.RandomBytes(byteLength)
		if err != nil {
			return nil, err
		}
		b, err = conversions.CutToBitLength(b, bits)
		if err != nil {
			return nil, err
		}
		x, err := conversions.ByteArrayToInteger(b)
		if err != nil {
			return nil, err
		}
		if x.Cmp(m) < 0 {
			return x, nil
		}
	}
	return nil, ErrRejectionLoop
}

// GenRandomZqElement returns a uniform element of the given Zq group.
func (s *RandomService) GenRandomZqElement(z *group.ZqGroup) (*group.ZqElement, error) {
	x, err := s.GenRandomInteger(z.Q())
	if err != nil {
		return nil, err
	}
	return group.NewZqElement(x, z)
}

// GenRandomVector returns a vector of n independent uniform Zq elements.
func (s *RandomService) GenRandomVector(z *group.ZqGroup, n int) (*matrix.ZqVector, error) {
	if n <= 0 {
		return nil, ErrNonPositiveLength
	}
	elements := make([]*group.ZqElement, n)
	for i := 0; i < n; i++ {
		e, err := s.GenRandomZqElement(z)
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}
	return matrix.NewZqVector(elements)
}

// GenRandomBase16String returns a uniform string of exactly l base16 characters.
func (s *RandomService) GenRandomBase16String(l int) (string, error) {
	return s.genRandomBaseString(l, 4, codec.Base16Encode)
}

// GenRandomBase32String returns a uniform string of exactly l base32 characters.
func (s *RandomService) GenRandomBase32String(l int) (string, error) {
	return s.genRandomBaseString(l, 5, codec.Base32Encode)
}

// GenRandomBase64String returns a uniform string of exactly l base64 characters.
func (s *RandomService) GenRandomBase64String(l int) (string, error) {
	return s.genRandomBaseString(l, 6, codec.Base64Encode)
}

func (s *RandomService) genRandomBaseString(l, bitsPerChar int, encode func([]byte) string) (string, error) {
	if l <= 0 {
		return "", ErrNonPositiveLength
	}
	b, err := s.RandomBytes((l*bitsPerChar + 7) / 8)
	if err != nil {
		return "", err
	}
	return encode(b)[:l], nil
}

// GenUniqueDecimalStrings returns n distinct codes in [0, 10^l), left-padded
// with '0' to exactly l characters.
func (s *RandomService) GenUniqueDecimalStrings(l, n int) ([]string, error) {
	if l <= 0 || n <= 0 {
		return nil, ErrNonPositiveLength
	}
	space := new(big.Int).Exp(big10, big.NewInt(int64(l)), nil)
	if space.Cmp(big.NewInt(int64(n))) < 0 {
		return nil, ErrTooManyCodes
	}
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		x, err := s.GenRandomInteger(space)
		if err != nil {
			return nil, err
		}
		code := x.Text(10)
		for len(code) < l {
			code = "0" + code
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out, nil
}

// GenPermutation returns a uniform permutation of [0, n) as an index slice,
// drawn with a Fisher-Yates shuffle.
func (s *RandomService) GenPermutation(n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrNonPositiveLength
	}
	pi := make([]int, n)
	for i := range pi {
		pi[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j, err := s.GenRandomInteger(big.NewInt(int64(i + 1)))
		if err != nil {
			return nil, err
		}
		k := int(j.Int64())
		pi[i], pi[k] = pi[k], pi[i]
	}
	return pi, nil
}
