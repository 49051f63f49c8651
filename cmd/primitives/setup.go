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
	"crypto/rand"
	"math/big"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/securitylevel"
)

// ElectionParameters is the on-disk form of the group parameters.
type ElectionParameters struct {
	SecurityLevel string `yaml:"securityLevel"`
	P             string `yaml:"p"`
	Q             string `yaml:"q"`
	G             string `yaml:"g"`
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate election group parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelName := viper.GetString("level")
		level := securitylevel.Extended
		switch levelName {
		case "TESTING_ONLY":
			level = securitylevel.TestingOnly
		case "LEGACY":
			level = securitylevel.Legacy
		}
		log.Info("Generating group", "level", level.String(), "bits", level.GroupBits())
		g, err := group.GenGqGroup(rand.Reader, level.GroupBits())
		if err != nil {
			return err
		}
		params := ElectionParameters{
			SecurityLevel: level.String(),
			P:             g.P().Text(16),
			Q:             g.Q().Text(16),
			G:             g.Generator().Value().Text(16),
		}
		out, err := yaml.Marshal(&params)
		if err != nil {
			return err
		}
		path := viper.GetString("config")
		if path == "" {
			path = "election-parameters.yaml"
		}
		if err := os.WriteFile(path, out, 0600); err != nil {
			return err
		}
		log.Info("Wrote parameters", "path", path)
		return nil
	},
}

func init() {
	setupCmd.Flags().String("level", "EXTENDED", "security level: TESTING_ONLY, LEGACY or EXTENDED")
	if err := viper.BindPFlag("level", setupCmd.Flags().Lookup("level")); err != nil {
		panic(err)
	}
}

// loadParameters reads and validates an election-parameters file.
func loadParameters(path string) (*group.GqGroup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	params := ElectionParameters{}
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	p, ok := new(big.Int).SetString(params.P, 16)
	if !ok {
		return nil, os.ErrInvalid
	}
	q, ok := new(big.Int).SetString(params.Q, 16)
	if !ok {
		return nil, os.ErrInvalid
	}
	g, ok := new(big.Int).SetString(params.G, 16)
	if !ok {
		return nil, os.ErrInvalid
	}
	return group.NewGqGroup(p, q, g)
}
