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

package group

import (
	"errors"
	"io"
	"math/big"
)

// ErrSmallGroup is returned if the requested modulus size is below 10 bits.
var ErrSmallGroup = errors.New("modulus size must be at least 10 bits")

// GenGqGroup generates a fresh group: a safe prime p = 2q+1 of pBits bits
// with generator 4 = 2^2, which is a quadratic residue and therefore
// generates the order-q subgroup.
func GenGqGroup(rand io.Reader, pBits int) (*GqGroup, error) {
	p, q, err := genSafePrime(rand, pBits)
	if err != nil {
		return nil, err
	}
	return NewGqGroup(p, q, big.NewInt(4))
}

// genSafePrime generates p = 2q+1 with both prime, using a combined sieve:
// candidates for q are stepped by 6 and rejected whenever q or 2q+1 has a
// small prime factor, before the expensive probabilistic tests run.
// The algorithm appears in the paper Safe Prime Generation with a Combined
// Sieve, https://eprint.iacr.org/2003/186.pdf.
func genSafePrime(rand io.Reader, pBits int) (p, q *big.Int, err error) {
	if pBits < 10 {
		return nil, nil, ErrSmallGroup
	}
	const sieveBound = uint64(1024)
	bits := pBits - 1
	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}
	bytes := make([]byte, (bits+7)/8)
	for {
		if _, err := io.ReadFull(rand, bytes); err != nil {
			return nil, nil, err
		}

		// Clear the top bits so the candidate has exactly the requested size,
		// then pin the two most significant bits and make the value odd.
		bytes[0] &= uint8(int(1<<b) - 1)
		if b >= 2 {
			bytes[0] |= 3 << (b - 2)
		} else {
			bytes[0] |= 1
			if len(bytes) > 1 {
				bytes[1] |= 0x80
			}
		}
		bytes[len(bytes)-1] |= 1
		base := new(big.Int).SetBytes(bytes)

		// Align the candidate to q = 5 mod 6, the only residue class where
		// both q and 2q+1 can avoid the factor 3.
		switch mod3(base) {
		case 1:
			base.Add(base, big.NewInt(4))
		case 0:
			base.Add(base, big2)
		}

	NextDelta:
		for delta := uint64(0); delta < sieveBound; delta += 6 {
			candidateQ := new(big.Int).Add(base, new(big.Int).SetUint64(delta))
			for i := range sievePrimeProducts {
				if !passesSieve(candidateQ, sievePrimeProducts[i], sievePrimes[i]) {
					continue NextDelta
				}
			}
			doubled := new(big.Int).Lsh(candidateQ, 1)
			candidateP := new(big.Int).Add(doubled, big1)
			// Pocklington's criterion proves p = 2q+1 prime once q is.
			if new(big.Int).Exp(big2, doubled, candidateP).Cmp(big1) != 0 {
				continue NextDelta
			}
			if candidateP.BitLen() != pBits {
				continue NextDelta
			}
			if !candidateQ.ProbablyPrime(20) {
				continue NextDelta
			}
			return candidateP, candidateQ, nil
		}
	}
}

// passesSieve rejects m when it is 0 or (prime-1)/2 modulo any prime of the
// batch: the first kills q, the second kills 2q+1.
func passesSieve(m *big.Int, product *big.Int, primes []uint64) bool {
	residues := new(big.Int).Mod(m, product).Uint64()
	for _, prime := range primes {
		residue := residues % prime
		if residue == 0 || residue == prime>>1 {
			return false
		}
	}
	return true
}

// mod3 computes m % 3 from the bit pattern, cheaper than a big.Int division.
func mod3(m *big.Int) int {
	odd, even := 0, 0
	for i := 0; i < m.BitLen(); i += 2 {
		if m.Bit(i) != 0 {
			even++
		}
	}
	for i := 1; i < m.BitLen(); i += 2 {
		if m.Bit(i) != 0 {
			odd++
		}
	}
	if even >= odd {
		return (even - odd) % 3
	}
	return ((odd - even) << 1) % 3
}

// Sieve batches: consecutive odd primes grouped so each batch product fits a
// uint64, letting one big.Int reduction serve a whole batch.
var (
	sievePrimes = [][]uint64{
		{5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53},
		{59, 61, 67, 71, 73, 79, 83, 89, 97},
		{101, 103, 107, 109, 113, 127, 131, 137, 139},
		{149, 151, 157, 163, 167, 173, 179, 181},
		{191, 193, 197, 199, 211, 223, 227, 229},
		{233, 239, 241, 251, 257, 263, 269},
		{271, 277, 281, 283, 293, 307, 311},
		{317, 331, 337, 347, 349, 353, 359},
		{367, 373, 379, 383, 389, 397, 401},
		{409, 419, 421, 431, 433, 439, 443},
		{449, 457, 461, 463, 467, 479, 487},
		{491, 499, 503, 509, 521, 523, 541},
		{557, 563, 569, 571, 577, 587},
		{593, 599, 601, 607, 613, 617},
		{619, 631, 641, 643, 647, 653},
		{659, 661, 673, 677, 683, 691},
		{701, 709, 719, 727, 733, 739},
		{743, 751, 757, 761, 769, 773},
		{787, 797, 809, 811, 821, 823},
		{827, 829, 839, 853, 857, 859},
		{863, 877, 881, 883, 887, 907},
		{911, 919, 929, 937, 941, 947},
		{953, 967, 971, 977, 983, 991},
	}
	sievePrimeProducts = []*big.Int{
		new(big.Int).SetUint64(5431526412865007455),
		new(big.Int).SetUint64(70746471270782959),
		new(big.Int).SetUint64(4343678784233766587),
		new(big.Int).SetUint64(538945254996352681),
		new(big.Int).SetUint64(3534749459194562711),
		new(big.Int).SetUint64(61247129307885343),
		new(big.Int).SetUint64(166996819598798201),
		new(big.Int).SetUint64(542676746453092519),
		new(big.Int).SetUint64(1230544604996048471),
		new(big.Int).SetUint64(2618501576975440661),
		new(big.Int).SetUint64(4771180125133726009),
		new(big.Int).SetUint64(9247077179230889629),
		new(big.Int).SetUint64(34508483876655991),
		new(big.Int).SetUint64(49010633640532829),
		new(big.Int).SetUint64(68015277240951437),
		new(big.Int).SetUint64(93667592535644987),
		new(big.Int).SetUint64(140726526226538479),
		new(big.Int).SetUint64(191079950785756457),
		new(big.Int).SetUint64(278064420037666463),
		new(big.Int).SetUint64(361197734649700343),
		new(big.Int).SetUint64(473672212426732757),
		new(big.Int).SetUint64(649424689916978839),
		new(big.Int).SetUint64(851648411420003101),
	}
)
