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

// Package logger holds the library-wide logger. The default discards
// everything; binaries install a real logger at startup.
package logger

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the library logger.
func Logger() log.Logger {
	return logger
}

// SetLogger installs a logger for the whole library.
func SetLogger(l log.Logger) {
	logger = l
}

// New returns a child logger carrying the given key-value context.
func New(ctx ...interface{}) log.Logger {
	return logger.New(ctx...)
}
