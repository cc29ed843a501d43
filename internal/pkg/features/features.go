// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package features defines features enabled conditionally via flags.
package features

import (
	"flag"
)

// Config is the feature configuration in use.
type Config struct {
	// ExperimentalValueAwareDedup makes the debugger settings keep a -D flag
	// that repeats an earlier macro name with a different value. By default only
	// the first definition of a macro is kept.
	ExperimentalValueAwareDedup bool
}

var config = &Config{}

// GetConfig retrieves the singleton instance of the features config.
func GetConfig() *Config {
	return config
}

func init() {
	flag.BoolVar(&GetConfig().ExperimentalValueAwareDedup, "experimental_value_aware_dedup", false, "Only drop -D flags of the debugger settings when both the macro name and value repeat an earlier one.")
}
