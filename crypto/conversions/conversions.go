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

package conversions

import (
	"errors"
	"math/big"
	"regexp"
	"unicode/utf8"
)

var (
	// ErrNegativeInteger is returned if the integer to convert is negative
	ErrNegativeInteger = errors.New("negative integer")
	// ErrEmptyByteArray is returned if the byte array to convert is empty
	ErrEmptyByteArray = errors.New("empty byte array")
	// ErrInvalidEncoding is returned if the input is not valid UTF-8 or not a decimal string
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrBitLengthOutOfRange is returned if the requested bit length does not fit the input
	ErrBitLengthOutOfRange = errors.New("bit length out of range")

	decimalRegexp = regexp.MustCompile(`^[0-9]+$`)
)

// IntegerToByteArray returns the minimal big-endian unsigned representation of x.
// The representation of zero is a single zero byte.
func IntegerToByteArray(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, ErrNegativeInteger
	}
	if x.Sign() == 0 {
		return []byte{0x00}, nil
	}
	return x.Bytes(), nil
}

// ByteArrayToInteger interprets b as a big-endian unsigned integer.
func ByteArrayToInteger(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, ErrEmptyByteArray
	}
	return new(big.Int).SetBytes(b), nil
}

// StringToByteArray returns the UTF-8 encoding of s.
func StringToByteArray(s string) []byte {
	return []byte(s)
}

// ByteArrayToString decodes b as UTF-8.
func ByteArrayToString(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ErrEmptyByteArray
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}

// IntegerToString returns the decimal representation of x without sign.
func IntegerToString(x *big.Int) (string, error) {
	if x.Sign() < 0 {
		return "", ErrNegativeInteger
	}
	return x.Text(10), nil
}

// StringToInteger parses a decimal string matching ^[0-9]+$.
func StringToInteger(s string) (*big.Int, error) {
	if !decimalRegexp.MatchString(s) {
		return nil, ErrInvalidEncoding
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidEncoding
	}
	return x, nil
}

// CutToBitLength keeps the low n bits of b, big-endian. The result has
// ceil(n/8) bytes; if n is not a multiple of 8 the top byte is masked with
// 2^(n mod 8) - 1.
func CutToBitLength(b []byte, n int) ([]byte, error) {
	if n <= 0 || n > 8*len(b) {
		return nil, ErrBitLengthOutOfRange
	}
	length := (n + 7) / 8
	out := make([]byte, length)
	copy(out, b[len(b)-length:])
	if r := n % 8; r != 0 {
		out[0] &= byte(1<<uint(r)) - 1
	}
	return out, nil
}

// ByteLength returns the number of bytes of the minimal representation of x.
func ByteLength(x *big.Int) (int, error) {
	b, err := IntegerToByteArray(x)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
