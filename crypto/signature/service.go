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

package signature

import (
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"time"

	"github.com/getamis/sirius/log"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

var (
	// ErrOutOfValidity is returned if the timestamp is outside the certificate window
	ErrOutOfValidity = errors.New("timestamp outside certificate validity window")
	// ErrAuthorityNotFound is returned if no certificate is stored for the authority
	ErrAuthorityNotFound = errors.New("authority certificate not found")
	// ErrUnsupportedKey is returned if a stored certificate does not carry an RSA key
	ErrUnsupportedKey = errors.New("certificate does not carry an RSA public key")
)

// SignatureService signs and verifies (message, auxiliary) pairs. The signed
// payload is RecursiveHash(list(message, auxiliary)); certificates are looked
// up by authority id and checked against the signing time.
type SignatureService struct {
	hash         *hashing.HashService
	signingKey   *rsa.PrivateKey
	certificate  *x509.Certificate
	certificates map[string]*x509.Certificate
	now          func() time.Time
}

// NewSignatureService wraps a signing key with its certificate and a store of
// verification certificates keyed by authority id.
func NewSignatureService(hs *hashing.HashService, sk *rsa.PrivateKey, cert *x509.Certificate,
	certificates map[string]*x509.Certificate) *SignatureService {
	store := make(map[string]*x509.Certificate, len(certificates))
	for id, c := range certificates {
		store[id] = c
	}
	return &SignatureService{
		hash:         hs,
		signingKey:   sk,
		certificate:  cert,
		certificates: store,
		now:          time.Now,
	}
}

// GenSignature checks the signing certificate validity and signs the
// recursive hash of (msg, aux).
func (s *SignatureService) GenSignature(msg, aux hashing.Hashable) ([]byte, error) {
	now := s.now()
	if !checkValidity(s.certificate, now) {
		log.Warn("Signing certificate outside validity window", "notBefore", s.certificate.NotBefore, "notAfter", s.certificate.NotAfter)
		return nil, ErrOutOfValidity
	}
	payload, err := s.hash.RecursiveHash(hashing.List(msg, aux))
	if err != nil {
		return nil, err
	}
	return Sign(s.signingKey, payload)
}

// VerifySignature looks up the authority certificate, checks its validity and
// verifies sig over the recursive hash of (msg, aux).
func (s *SignatureService) VerifySignature(authorityID string, msg, aux hashing.Hashable, sig []byte) (bool, error) {
	cert, ok := s.certificates[authorityID]
	if !ok {
		return false, ErrAuthorityNotFound
	}
	if !checkValidity(cert, s.now()) {
		return false, ErrOutOfValidity
	}
	pk, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return false, ErrUnsupportedKey
	}
	payload, err := s.hash.RecursiveHash(hashing.List(msg, aux))
	if err != nil {
		return false, err
	}
	return Verify(pk, payload, sig), nil
}
