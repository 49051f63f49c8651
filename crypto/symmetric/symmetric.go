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

// Package symmetric wraps AES-256-GCM authenticated encryption.
package symmetric

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

const (
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce size in bytes.
	NonceSize = 12
)

var (
	// ErrInvalidKeySize is returned if the key is not 32 bytes
	ErrInvalidKeySize = errors.New("key must be 32 bytes")
	// ErrInvalidNonceSize is returned if the nonce is not 12 bytes
	ErrInvalidNonceSize = errors.New("nonce must be 12 bytes")
	// ErrAuthFailure is returned if the authentication tag does not verify
	ErrAuthFailure = errors.New("authentication failed")
)

// Encrypt seals plaintext with AES-256-GCM under key, nonce and the
// additional authenticated data.
func Encrypt(key, nonce, plaintext, aad []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Decrypt opens a ciphertext sealed by Encrypt. A tag mismatch yields
// ErrAuthFailure.
func Decrypt(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceSize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
