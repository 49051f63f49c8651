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

package main

import (
	"errors"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/commitment"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/matrix"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/mixnet"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/random"
)

var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Run a verified shuffle over freshly encrypted sample ballots",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("config")
		if path == "" {
			return errors.New("a parameters file is required, run setup first")
		}
		g, err := loadParameters(path)
		if err != nil {
			return err
		}
		count := viper.GetInt("ballots")
		if count < 2 {
			return errors.New("at least two ballots are needed")
		}

		rs := random.NewRandomService()
		hs := hashing.NewHashService()
		zq := group.ZqGroupSameOrderAs(g)

		keyPair, err := elgamal.GenKeyPair(g, 1, rs)
		if err != nil {
			return err
		}
		log.Info("Generated election key", "recipients", 1)

		// Encrypt sample ballots: random group members stand in for votes.
		ballots := make([]*elgamal.Ciphertext, count)
		for i := range ballots {
			exponent, err := rs.GenRandomZqElement(zq)
			if err != nil {
				return err
			}
			vote, err := g.Generator().Exponentiate(exponent)
			if err != nil {
				return err
			}
			voteVector, err := matrix.NewGqVector([]*group.GqElement{vote})
			if err != nil {
				return err
			}
			message, err := elgamal.NewMessage(voteVector)
			if err != nil {
				return err
			}
			r, err := rs.GenRandomZqElement(zq)
			if err != nil {
				return err
			}
			ballots[i], err = elgamal.GetCiphertext(message, r, keyPair.PublicKey())
			if err != nil {
				return err
			}
		}

		m, n, err := mixnet.GetMatrixDimensions(count)
		if err != nil {
			return err
		}
		ck, err := commitment.GenVerifiableCommitmentKey(hs, n, g)
		if errors.Is(err, group.ErrHashTooLongForGroup) {
			log.Warn("Group too small for a verifiable commitment key, drawing a random one")
			ck, err = commitment.GenRandomCommitmentKey(rs, n, g)
		}
		if err != nil {
			return err
		}
		service, err := mixnet.NewArgumentService(keyPair.PublicKey(), ck, rs, hs)
		if err != nil {
			return err
		}

		shuffle, err := mixnet.GenShuffle(rs, ballots, keyPair.PublicKey())
		if err != nil {
			return err
		}
		statement, err := mixnet.NewShuffleStatement(ballots, shuffle.Ciphertexts())
		if err != nil {
			return err
		}
		witness, err := mixnet.NewShuffleWitness(shuffle.Permutation(), shuffle.Exponents())
		if err != nil {
			return err
		}
		argument, err := service.GenShuffleArgument(statement, witness, m, n)
		if err != nil {
			return err
		}
		log.Info("Generated shuffle argument", "ballots", count, "m", m, "n", n)

		ok, err := service.VerifyShuffleArgument(statement, argument)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("shuffle argument did not verify")
		}
		log.Info("Shuffle argument verified")
		return nil
	},
}

func init() {
	mixCmd.Flags().Int("ballots", 10, "number of sample ballots to mix")
	if err := viper.BindPFlag("ballots", mixCmd.Flags().Lookup("ballots")); err != nil {
		panic(err)
	}
}
