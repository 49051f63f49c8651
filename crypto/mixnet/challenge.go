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

package mixnet

import (
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

// argumentChallenge derives a Zq challenge for one of the sub-arguments. The
// hashable list is, in order: (p, q, g), the public key, the commitment key,
// the statement and commitments of the caller, and the tagged auxiliary list.
// Generators and verifiers of one argument must pass bit-identical values.
func (s *ArgumentService) argumentChallenge(tag string, extraTags []string, values ...hashing.Hashable) (*group.ZqElement, error) {
	inputs := make([]hashing.Hashable, 0, len(values)+4)
	inputs = append(inputs,
		s.gqGroup().HashableForm(),
		s.pk.HashableForm(),
		s.ck.HashableForm(),
	)
	inputs = append(inputs, values...)
	hAux := make(hashing.HashableList, 0, 1+len(extraTags))
	hAux = append(hAux, hashing.Text(tag))
	for _, t := range extraTags {
		hAux = append(hAux, hashing.Text(t))
	}
	inputs = append(inputs, hAux)
	u, err := s.hash.RecursiveHashToZq(s.gqGroup().Q(), inputs...)
	if err != nil {
		return nil, err
	}
	return group.NewZqElement(u, s.zqGroup())
}
