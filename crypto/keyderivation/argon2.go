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

package keyderivation

import (
	"errors"

	"golang.org/x/crypto/argon2"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

const (
	// Argon2TagSize is the derived tag size in bytes.
	Argon2TagSize = 32
	// Argon2SaltSize is the salt size in bytes.
	Argon2SaltSize = 16
)

// ErrInvalidSaltSize is returned if the salt is not 16 bytes.
var ErrInvalidSaltSize = errors.New("salt must be 16 bytes")

// Argon2Parameters are the Argon2id cost parameters: memory in KiB,
// parallelism, and iterations.
type Argon2Parameters struct {
	Memory      uint32
	Parallelism uint8
	Iterations  uint32
}

// Argon2Service derives Argon2id tags with fixed cost parameters.
type Argon2Service struct {
	params Argon2Parameters
	random *random.RandomService
}

// NewArgon2Service wraps the cost parameters and a salt source.
func NewArgon2Service(params Argon2Parameters, rs *random.RandomService) *Argon2Service {
	return &Argon2Service{params: params, random: rs}
}

// GenArgon2id draws a fresh 16-byte salt and derives the 32-byte tag of k.
func (s *Argon2Service) GenArgon2id(k []byte) (tag, salt []byte, err error) {
	salt, err = s.random.RandomBytes(Argon2SaltSize)
	if err != nil {
		return nil, nil, err
	}
	tag, err = s.GetArgon2id(k, salt)
	if err != nil {
		return nil, nil, err
	}
	return tag, salt, nil
}

// GetArgon2id derives the 32-byte tag of k with the given salt.
func (s *Argon2Service) GetArgon2id(k, salt []byte) ([]byte, error) {
	if len(salt) != Argon2SaltSize {
		return nil, ErrInvalidSaltSize
	}
	return argon2.IDKey(k, salt, s.params.Iterations, s.params.Memory, s.params.Parallelism, Argon2TagSize), nil
}
