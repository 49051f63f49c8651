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

// Package codec provides the RFC 4648 base16, base32 and base64 codecs with
// strict validation on decode.
package codec

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidEncoding is returned if the input is not a valid encoding.
var ErrInvalidEncoding = errors.New("invalid encoding")

// Base16Encode returns the upper-case hexadecimal encoding of b.
func Base16Encode(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Base16Decode decodes an upper- or lower-case hexadecimal string.
func Base16Decode(s string) ([]byte, error) {
	out, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return out, nil
}

// Base32Encode returns the RFC 4648 base32 encoding of b, with padding.
func Base32Encode(b []byte) string {
	return base32.StdEncoding.EncodeToString(b)
}

// Base32Decode decodes an RFC 4648 base32 string, rejecting any deviation.
func Base32Decode(s string) ([]byte, error) {
	out, err := base32.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return out, nil
}

// Base64Encode returns the RFC 4648 base64 encoding of b, with padding.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64Decode decodes an RFC 4648 base64 string, rejecting any deviation.
func Base64Decode(s string) ([]byte, error) {
	out, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return out, nil
}
