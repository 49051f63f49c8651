// Copyright © 2024 Cipheritall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package symmetric

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	plaintext := []byte("ballot box contents")
	aad := []byte("election-2024")

	ciphertext, err := Encrypt(key, nonce, plaintext, aad)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := Decrypt(key, nonce, ciphertext, aad)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecryptRejectsTampering(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	plaintext := []byte("ballot box contents")
	aad := []byte("election-2024")

	ciphertext, err := Encrypt(key, nonce, plaintext, aad)
	require.NoError(t, err)

	flipped := append([]byte(nil), ciphertext...)
	flipped[0] ^= 0x01
	_, err = Decrypt(key, nonce, flipped, aad)
	assert.Equal(t, ErrAuthFailure, err)

	otherKey := bytes.Repeat([]byte{0x43}, KeySize)
	_, err = Decrypt(otherKey, nonce, ciphertext, aad)
	assert.Equal(t, ErrAuthFailure, err)

	otherNonce := bytes.Repeat([]byte{0x25}, NonceSize)
	_, err = Decrypt(key, otherNonce, ciphertext, aad)
	assert.Equal(t, ErrAuthFailure, err)

	_, err = Decrypt(key, nonce, ciphertext, []byte("other"))
	assert.Equal(t, ErrAuthFailure, err)
}

func TestSizesAreEnforced(t *testing.T) {
	_, err := Encrypt(make([]byte, 16), make([]byte, NonceSize), nil, nil)
	assert.Equal(t, ErrInvalidKeySize, err)
	_, err = Encrypt(make([]byte, KeySize), make([]byte, 16), nil, nil)
	assert.Equal(t, ErrInvalidNonceSize, err)
}
