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

// Package securitylevel configures the process-wide security level. Each
// level pins the algorithm suite (SHA3-256, SHAKE-256, HKDF over SHA-256,
// AES-256-GCM, RSASSA-PSS) and the group and symmetric strengths.
package securitylevel

import (
	"errors"
	"sync"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/keyderivation"
)

// SecurityLevel selects the cryptographic strength of the whole process.
type SecurityLevel int

const (
	// TestingOnly is a toy strength for tests: 16-bit symmetric, 48-bit p.
	TestingOnly SecurityLevel = iota
	// Legacy is 112-bit symmetric strength with a 2048-bit p.
	Legacy
	// Extended is 128-bit symmetric strength with a 3072-bit p.
	Extended
)

// ErrAlreadyConfigured is returned if the process level is set twice.
var ErrAlreadyConfigured = errors.New("security level already configured")

var (
	mu         sync.Mutex
	configured *SecurityLevel
)

// Configure pins the process-wide security level. It can be called once,
// at startup.
func Configure(level SecurityLevel) error {
	mu.Lock()
	defer mu.Unlock()
	if configured != nil {
		return ErrAlreadyConfigured
	}
	l := level
	configured = &l
	return nil
}

// Current returns the configured level, defaulting to Extended.
func Current() SecurityLevel {
	mu.Lock()
	defer mu.Unlock()
	if configured == nil {
		return Extended
	}
	return *configured
}

// SymmetricBits returns the symmetric security strength in bits.
func (l SecurityLevel) SymmetricBits() int {
	switch l {
	case TestingOnly:
		return 16
	case Legacy:
		return 112
	default:
		return 128
	}
}

// GroupBits returns the bit length of the group modulus p.
func (l SecurityLevel) GroupBits() int {
	switch l {
	case TestingOnly:
		return 48
	case Legacy:
		return 2048
	default:
		return 3072
	}
}

// String returns the level name.
func (l SecurityLevel) String() string {
	switch l {
	case TestingOnly:
		return "TESTING_ONLY"
	case Legacy:
		return "LEGACY"
	default:
		return "EXTENDED"
	}
}

// HashService returns the hash service of the level. Production levels
// enforce the 512-bit minimum on variable-length hashes; the testing level
// relaxes it so toy groups stay usable.
func (l SecurityLevel) HashService() *hashing.HashService {
	if l == TestingOnly {
		return hashing.NewHashService()
	}
	return hashing.NewHashServiceWithMinOutputBits(512)
}

// Argon2Parameters returns the Argon2id cost parameters of the level.
func (l SecurityLevel) Argon2Parameters() keyderivation.Argon2Parameters {
	if l == TestingOnly {
		return keyderivation.Argon2Parameters{Memory: 16 * 1024, Parallelism: 1, Iterations: 1}
	}
	return keyderivation.Argon2Parameters{Memory: 2 * 1024 * 1024, Parallelism: 4, Iterations: 1}
}
