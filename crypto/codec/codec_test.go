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
package codec

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codecVector struct {
	Plain  string `json:"plain"`
	Base16 string `json:"base16"`
	Base32 string `json:"base32"`
	Base64 string `json:"base64"`
}

// The RFC 4648 section 10 test vectors, loaded as an external corpus.
func TestRFC4648Vectors(t *testing.T) {
	raw, err := os.ReadFile("testdata/rfc4648.json")
	require.NoError(t, err)
	var vectors []codecVector
	require.NoError(t, json.Unmarshal(raw, &vectors))
	require.NotEmpty(t, vectors)

	for _, v := range vectors {
		plain := []byte(v.Plain)
		assert.Equal(t, v.Base16, Base16Encode(plain))
		assert.Equal(t, v.Base32, Base32Encode(plain))
		assert.Equal(t, v.Base64, Base64Encode(plain))

		decoded, err := Base16Decode(v.Base16)
		require.NoError(t, err)
		assert.Equal(t, plain, decoded)
		decoded, err = Base32Decode(v.Base32)
		require.NoError(t, err)
		assert.Equal(t, plain, decoded)
		decoded, err = Base64Decode(v.Base64)
		require.NoError(t, err)
		assert.Equal(t, plain, decoded)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := Base16Decode("0g")
	assert.Equal(t, ErrInvalidEncoding, err)
	_, err = Base32Decode("1111====")
	assert.Equal(t, ErrInvalidEncoding, err)
	_, err = Base64Decode("a===")
	assert.Equal(t, ErrInvalidEncoding, err)
	// Non-canonical trailing bits are rejected in strict mode.
	_, err = Base64Decode("Zm9=")
	assert.Equal(t, ErrInvalidEncoding, err)
}
