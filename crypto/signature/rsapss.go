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

// Package signature wraps RSASSA-PSS signing with SHA-256/MGF1 over RSA-3072
// keys, the self-signed X.509 certificate lifecycle, and the signature
// service hashing (message, auxiliary) pairs with the recursive hash.
package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
)

// KeySize is the RSA modulus size in bits.
const KeySize = 3072

var (
	// ErrAuthFailure is returned if a signature does not verify
	ErrAuthFailure = errors.New("signature verification failed")
)

var pssOptions = &rsa.PSSOptions{
	SaltLength: rsa.PSSSaltLengthEqualsHash,
	Hash:       crypto.SHA256,
}

// GenKeyPair generates an RSA-3072 key pair.
func GenKeyPair() (*rsa.PrivateKey, error) {
	return rsa.GenerateKey(rand.Reader, KeySize)
}

// Sign signs msg with RSASSA-PSS over its SHA-256 digest.
func Sign(sk *rsa.PrivateKey, msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	return rsa.SignPSS(rand.Reader, sk, crypto.SHA256, digest[:], pssOptions)
}

// Verify reports whether sig is a valid RSASSA-PSS signature of msg.
func Verify(pk *rsa.PublicKey, msg, sig []byte) bool {
	digest := sha256.Sum256(msg)
	return rsa.VerifyPSS(pk, crypto.SHA256, digest[:], sig, pssOptions) == nil
}
