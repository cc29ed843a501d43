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

// Package quote decides when a processed argument has to be quoted for Xcode.
package quote

import (
	"strings"
)

// Policy selects what, besides a space, makes a token need quotes.
type Policy struct {
	// DoubleQuote quotes tokens containing '"'.
	DoubleQuote bool

	// BuildSetting quotes tokens containing a "$(" that is later closed by ")".
	BuildSetting bool
}

// Needs reports whether tok has to be quoted under p.
func (p Policy) Needs(tok string) bool {
	if strings.Contains(tok, " ") {
		return true
	}
	if p.DoubleQuote && strings.Contains(tok, `"`) {
		return true
	}
	if p.BuildSetting {
		if i := strings.Index(tok, "$("); i >= 0 && strings.Contains(tok[i+2:], ")") {
			return true
		}
	}
	return false
}

// Quote wraps tok in single quotes if it needs them. Single quotes inside a quoted
// token are written as '\''.
func (p Policy) Quote(tok string) string {
	if !p.Needs(tok) {
		return tok
	}
	return "'" + strings.ReplaceAll(tok, "'", `'\''`) + "'"
}

// All quotes every token of toks in place and returns it.
func (p Policy) All(toks []string) []string {
	for i, t := range toks {
		toks[i] = p.Quote(t)
	}
	return toks
}
