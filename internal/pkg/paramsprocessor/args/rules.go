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

package args

import (
	"strings"
)

// Rule describes what happens to the tokens following a flag listed in a Table.
// It is either Unconditional or CompoundLookup.
type Rule interface {
	isRule()
}

// Unconditional discards the flag and the following Unconditional-1 tokens,
// whatever they are.
type Unconditional int

// CompoundLookup is the rule of an indirection flag (such as -Xfrontend). If the
// root name of the next token is a key, the flag and that many following tokens
// are discarded. Otherwise the flag is kept and the next token is scanned normally.
type CompoundLookup map[string]int

func (Unconditional) isRule()  {}
func (CompoundLookup) isRule() {}

// Table maps a flag root name to its rule. Tables are package-level values that
// are never modified after initialization.
type Table map[string]Rule

// Merge returns a new table holding the rules of all given tables. Later tables win.
func Merge(tables ...Table) Table {
	res := Table{}
	for _, t := range tables {
		for k, v := range t {
			res[k] = v
		}
	}
	return res
}

// RootName returns the part of tok before the first "=", so that
// "-mmacosx-version-min=12.0" is looked up as "-mmacosx-version-min".
func RootName(tok string) string {
	root, _, _ := strings.Cut(tok, "=")
	return root
}
