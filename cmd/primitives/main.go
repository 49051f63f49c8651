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

// Command primitives demonstrates the mix-net primitives end to end:
// generating election parameters and running a verified shuffle over them.
package main

import (
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Cipheritall/crypto-primitives-sub006/logger"
)

var rootCmd = &cobra.Command{
	Use:   "primitives",
	Short: "Verifiable e-voting crypto primitives",
	Long:  `Generates election parameters and runs verified re-encryption shuffles.`,
}

func init() {
	logger.SetLogger(log.New())
	rootCmd.PersistentFlags().String("config", "", "path to the parameters file")
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(mixCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("Command failed", "err", err)
		os.Exit(1)
	}
}
