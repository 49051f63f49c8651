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

/*
Package elgamal implements multi-recipient ElGamal over a quadratic-residue
group. One gamma = g^r is shared across k recipients:

	c = (gamma, phi_1 .. phi_k), gamma = g^r, phi_i = m_i * h_i^r

Ciphertexts form a group under element-wise multiplication, which is what the
re-encryption mix-net relies on.
*/
package elgamal

import (
	"errors"
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

var (
	// ErrNonPositiveKeySize is returned if the requested key size is not positive
	ErrNonPositiveKeySize = errors.New("key size must be positive")
	// ErrMessageTooLong is returned if the message has more elements than the public key
	ErrMessageTooLong = errors.New("message longer than public key")
	// ErrSizeMismatch is returned if operand sizes differ
	ErrSizeMismatch = errors.New("operand sizes differ")
	// ErrDifferentGroups is returned if operands belong to different groups
	ErrDifferentGroups = errors.New("operands belong to different groups")
	// ErrInvalidCompression is returned if the compression target size is out of range
	ErrInvalidCompression = errors.New("compression size out of range")

	big2 = big.NewInt(2)
)

// PrivateKey is a vector of exponents x_i in [2, q-1].
type PrivateKey struct {
	exponents *matrix.ZqVector
	gqGroup   *group.GqGroup
}

// PublicKey is the vector (h_1 .. h_k) with h_i = g^{x_i}.
type PublicKey struct {
	elements *matrix.GqVector
}

// KeyPair binds a private key to its public key.
type KeyPair struct {
	privateKey *PrivateKey
	publicKey  *PublicKey
}

// Message is a vector (m_1 .. m_k) of group elements.
type Message struct {
	elements *matrix.GqVector
}

// Ciphertext is (gamma, phi_1 .. phi_k).
type Ciphertext struct {
	gamma *group.GqElement
	phis  *matrix.GqVector
}

// GenKeyPair samples k secrets uniformly in [2, q-1] and derives h_i = g^{x_i}.
// The values 0 and 1 are excluded from the secret-key domain.
func GenKeyPair(g *group.GqGroup, k int, rs *random.RandomService) (*KeyPair, error) {
	if k <= 0 {
		return nil, ErrNonPositiveKeySize
	}
	zq := group.ZqGroupSameOrderAs(g)
	bound := new(big.Int).Sub(g.Q(), big2)
	secrets := make([]*group.ZqElement, k)
	publics := make([]*group.GqElement, k)
	gen := g.Generator()
	for i := 0; i < k; i++ {
		u, err := rs.GenRandomInteger(bound)
		if err != nil {
			return nil, err
		}
		x, err := group.NewZqElement(u.Add(u, big2), zq)
		if err != nil {
			return nil, err
		}
		h, err := gen.Exponentiate(x)
		if err != nil {
			return nil, err
		}
		secrets[i] = x
		publics[i] = h
	}
	sk, err := matrix.NewZqVector(secrets)
	if err != nil {
		return nil, err
	}
	pk, err := matrix.NewGqVector(publics)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		privateKey: &PrivateKey{exponents: sk, gqGroup: g},
		publicKey:  &PublicKey{elements: pk},
	}, nil
}

// PrivateKey returns the private half.
func (kp *KeyPair) PrivateKey() *PrivateKey { return kp.privateKey }

// PublicKey returns the public half.
func (kp *KeyPair) PublicKey() *PublicKey { return kp.publicKey }

// NewPublicKey wraps a vector of public-key elements.
func NewPublicKey(elements *matrix.GqVector) (*PublicKey, error) {
	if elements.Size() == 0 {
		return nil, ErrNonPositiveKeySize
	}
	return &PublicKey{elements: elements}, nil
}

// Size returns the number of recipients.
func (pk *PublicKey) Size() int { return pk.elements.Size() }

// Group returns the key group.
func (pk *PublicKey) Group() *group.GqGroup { return pk.elements.Group() }

// Elements returns the public-key vector.
func (pk *PublicKey) Elements() *matrix.GqVector { return pk.elements }

// HashableForm projects the key to the list of its elements.
func (pk *PublicKey) HashableForm() hashing.Hashable { return pk.elements.HashableForm() }

// Size returns the number of secret exponents.
func (sk *PrivateKey) Size() int { return sk.exponents.Size() }

// Group returns the group the key decrypts in.
func (sk *PrivateKey) Group() *group.GqGroup { return sk.gqGroup }

// Exponents returns the secret exponent vector.
func (sk *PrivateKey) Exponents() *matrix.ZqVector { return sk.exponents }

// NewMessage wraps a non-empty vector of group elements.
func NewMessage(elements *matrix.GqVector) (*Message, error) {
	if elements.Size() == 0 {
		return nil, ErrNonPositiveKeySize
	}
	return &Message{elements: elements}, nil
}

// OnesMessage returns the message (1 .. 1) of size k.
func OnesMessage(g *group.GqGroup, k int) (*Message, error) {
	if k <= 0 {
		return nil, ErrNonPositiveKeySize
	}
	ones := make([]*group.GqElement, k)
	for i := range ones {
		ones[i] = g.Identity()
	}
	v, err := matrix.NewGqVector(ones)
	if err != nil {
		return nil, err
	}
	return &Message{elements: v}, nil
}

// Size returns the number of message elements.
func (m *Message) Size() int { return m.elements.Size() }

// Group returns the message group.
func (m *Message) Group() *group.GqGroup { return m.elements.Group() }

// Elements returns the message vector.
func (m *Message) Elements() *matrix.GqVector { return m.elements }

// Equal reports element-wise equality.
func (m *Message) Equal(other *Message) bool { return m.elements.Equal(other.elements) }

// HashableForm projects the message to the list of its elements.
func (m *Message) HashableForm() hashing.Hashable { return m.elements.HashableForm() }

// GetCiphertext encrypts m with randomness r under pk. The message may be
// shorter than the key; the ciphertext then has one phi per message element
// and the unused key elements are ignored.
func GetCiphertext(m *Message, r *group.ZqElement, pk *PublicKey) (*Ciphertext, error) {
	g := pk.Group()
	if !m.Group().Equal(g) {
		return nil, ErrDifferentGroups
	}
	if m.Size() > pk.Size() {
		return nil, ErrMessageTooLong
	}
	gamma, err := g.Generator().Exponentiate(r)
	if err != nil {
		return nil, err
	}
	phis := make([]*group.GqElement, m.Size())
	for i := 0; i < m.Size(); i++ {
		h, err := pk.elements.Get(i)
		if err != nil {
			return nil, err
		}
		mask, err := h.Exponentiate(r)
		if err != nil {
			return nil, err
		}
		mi, err := m.elements.Get(i)
		if err != nil {
			return nil, err
		}
		phis[i], err = mi.Multiply(mask)
		if err != nil {
			return nil, err
		}
	}
	phiVector, err := matrix.NewGqVector(phis)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{gamma: gamma, phis: phiVector}, nil
}

// GetMessage decrypts c with sk: m_i = phi_i / gamma^{x_i}. The key must have
// exactly as many exponents as the ciphertext has phis.
func GetMessage(c *Ciphertext, sk *PrivateKey) (*Message, error) {
	if !c.Group().Equal(sk.gqGroup) {
		return nil, ErrDifferentGroups
	}
	if c.Size() != sk.Size() {
		return nil, ErrSizeMismatch
	}
	elements := make([]*group.GqElement, c.Size())
	for i := 0; i < c.Size(); i++ {
		x, err := sk.exponents.Get(i)
		if err != nil {
			return nil, err
		}
		mask, err := c.gamma.Exponentiate(x)
		if err != nil {
			return nil, err
		}
		phi, err := c.phis.Get(i)
		if err != nil {
			return nil, err
		}
		elements[i], err = phi.Divide(mask)
		if err != nil {
			return nil, err
		}
	}
	v, err := matrix.NewGqVector(elements)
	if err != nil {
		return nil, err
	}
	return &Message{elements: v}, nil
}

// NeutralCiphertext returns the identity ciphertext (1, 1 .. 1) of size k.
func NeutralCiphertext(g *group.GqGroup, k int) (*Ciphertext, error) {
	if k <= 0 {
		return nil, ErrNonPositiveKeySize
	}
	ones := make([]*group.GqElement, k)
	for i := range ones {
		ones[i] = g.Identity()
	}
	phis, err := matrix.NewGqVector(ones)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{gamma: g.Identity(), phis: phis}, nil
}

// NewCiphertext wraps a gamma and a non-empty phi vector.
func NewCiphertext(gamma *group.GqElement, phis *matrix.GqVector) (*Ciphertext, error) {
	if phis.Size() == 0 {
		return nil, ErrNonPositiveKeySize
	}
	if !gamma.Group().Equal(phis.Group()) {
		return nil, ErrDifferentGroups
	}
	return &Ciphertext{gamma: gamma, phis: phis}, nil
}

// Gamma returns the shared gamma.
func (c *Ciphertext) Gamma() *group.GqElement { return c.gamma }

// Phis returns the phi vector.
func (c *Ciphertext) Phis() *matrix.GqVector { return c.phis }

// Size returns the number of phis.
func (c *Ciphertext) Size() int { return c.phis.Size() }

// Group returns the ciphertext group.
func (c *Ciphertext) Group() *group.GqGroup { return c.gamma.Group() }

// Equal reports element-wise equality.
func (c *Ciphertext) Equal(other *Ciphertext) bool {
	return other != nil && c.gamma.Equal(other.gamma) && c.phis.Equal(other.phis)
}

// HashableForm projects the ciphertext to the list (gamma, phi_1 .. phi_k).
// Callers that persist or transmit ciphertexts use this projection verbatim.
func (c *Ciphertext) HashableForm() hashing.Hashable {
	out := make(hashing.HashableList, 0, c.phis.Size()+1)
	out = append(out, c.gamma.HashableForm())
	for _, e := range c.phis.Elements() {
		out = append(out, e.HashableForm())
	}
	return out
}

// GetCiphertextProduct returns the element-wise product of c and other.
func GetCiphertextProduct(c, other *Ciphertext) (*Ciphertext, error) {
	if c.Size() != other.Size() {
		return nil, ErrSizeMismatch
	}
	gamma, err := c.gamma.Multiply(other.gamma)
	if err != nil {
		return nil, err
	}
	phis, err := c.phis.Multiply(other.phis)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{gamma: gamma, phis: phis}, nil
}

// GetCiphertextExponentiation returns (gamma^a, phi_i^a).
func GetCiphertextExponentiation(c *Ciphertext, a *group.ZqElement) (*Ciphertext, error) {
	gamma, err := c.gamma.Exponentiate(a)
	if err != nil {
		return nil, err
	}
	phis, err := c.phis.Exponentiate(a)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{gamma: gamma, phis: phis}, nil
}

// GetCiphertextVectorExponentiation returns prod_i cs_i^{as_i}, computed slot
// by slot with a simultaneous multi-exponentiation.
func GetCiphertextVectorExponentiation(cs []*Ciphertext, as *matrix.ZqVector) (*Ciphertext, error) {
	if len(cs) == 0 {
		return nil, ErrSizeMismatch
	}
	if len(cs) != as.Size() {
		return nil, ErrSizeMismatch
	}
	k := cs[0].Size()
	g := cs[0].Group()
	gammas := make([]*group.GqElement, len(cs))
	for i, c := range cs {
		if c.Size() != k {
			return nil, ErrSizeMismatch
		}
		if !c.Group().Equal(g) {
			return nil, ErrDifferentGroups
		}
		gammas[i] = c.gamma
	}
	exponents := as.Elements()
	gamma, err := group.MultiExponentiate(gammas, exponents)
	if err != nil {
		return nil, err
	}
	phis := make([]*group.GqElement, k)
	slot := make([]*group.GqElement, len(cs))
	for j := 0; j < k; j++ {
		for i, c := range cs {
			phi, err := c.phis.Get(j)
			if err != nil {
				return nil, err
			}
			slot[i] = phi
		}
		phis[j], err = group.MultiExponentiate(slot, exponents)
		if err != nil {
			return nil, err
		}
	}
	phiVector, err := matrix.NewGqVector(phis)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{gamma: gamma, phis: phiVector}, nil
}

// Compress keeps the first kPrime-1 phis and replaces the tail by its product.
func (c *Ciphertext) Compress(kPrime int) (*Ciphertext, error) {
	if kPrime < 1 || kPrime >= c.Size() {
		return nil, ErrInvalidCompression
	}
	phis := make([]*group.GqElement, kPrime)
	for i := 0; i < kPrime-1; i++ {
		phi, err := c.phis.Get(i)
		if err != nil {
			return nil, err
		}
		phis[i] = phi
	}
	tail := c.Group().Identity()
	for i := kPrime - 1; i < c.Size(); i++ {
		phi, err := c.phis.Get(i)
		if err != nil {
			return nil, err
		}
		tail, err = tail.Multiply(phi)
		if err != nil {
			return nil, err
		}
	}
	phis[kPrime-1] = tail
	phiVector, err := matrix.NewGqVector(phis)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{gamma: c.gamma, phis: phiVector}, nil
}

// ReEncrypt multiplies c by a fresh encryption of the identity message with
// randomness r, preserving the plaintext.
func ReEncrypt(c *Ciphertext, r *group.ZqElement, pk *PublicKey) (*Ciphertext, error) {
	if c.Size() > pk.Size() {
		return nil, ErrMessageTooLong
	}
	ones, err := OnesMessage(pk.Group(), c.Size())
	if err != nil {
		return nil, err
	}
	blinding, err := GetCiphertext(ones, r, pk)
	if err != nil {
		return nil, err
	}
	return GetCiphertextProduct(c, blinding)
}
