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

// Package args provides the single pass token scanner shared by all params processors.
package args

import (
	log "github.com/golang/glog"
)

// Scanner scans a token stream and drops the tokens selected by its Table.
//
// for a flag with Unconditional(n) in Table, the flag and the next n-1 tokens are
// dropped, e.g. with {"-target": 2}, "-target arm64-apple-ios" is dropped.
// "-flag=value" is looked up by its root name "-flag".
//
// for an indirection flag with a CompoundLookup, e.g.
// {"-Xfrontend": {"-color-diagnostics": 1}}, "-Xfrontend -color-diagnostics" is
// dropped while "-Xfrontend -other" is returned as two tokens.
//
// tokens dropped while a skip is pending are never looked up, so they cannot start
// a new skip.
type Scanner struct {
	// Args are the remaining tokens.
	Args []string

	// Table holds the skip rules.
	Table Table

	skip int
	ctx  Context
}

// Token is a surviving token together with the context that preceded it.
type Token struct {
	Value   string
	Context Context
}

// New returns a scanner over toks.
func New(toks []string, table Table, flags ContextFlags) *Scanner {
	return &Scanner{
		Args:  toks,
		Table: table,
		ctx:   NewContext(flags),
	}
}

// HasNext returns true if there are tokens left to scan. Some of them may still be
// dropped, so Next can return false even when HasNext is true.
func (s *Scanner) HasNext() bool {
	return len(s.Args) > 0
}

// Next returns the next token that survives the skip rules.
// It returns false when the stream is exhausted.
func (s *Scanner) Next() (Token, bool) {
	for len(s.Args) > 0 {
		tok := s.Args[0]
		s.Args = s.Args[1:]
		if s.skip > 0 {
			s.skip--
			continue
		}
		switch r := s.Table[RootName(tok)].(type) {
		case Unconditional:
			s.skip = int(r) - 1
			continue
		case CompoundLookup:
			if len(s.Args) == 0 {
				log.V(1).Infof("Indirection flag %v is the last token, keeping it", tok)
				break
			}
			if n, ok := r[RootName(s.Args[0])]; ok {
				s.skip = n
				continue
			}
		}
		res := Token{Value: tok, Context: s.ctx}
		s.ctx = s.ctx.Advance(tok)
		return res, true
	}
	return Token{}, false
}

// Peek returns the i-th token after the current position without consuming it.
// Pending skips are not applied.
func (s *Scanner) Peek(i int) (string, bool) {
	if i < 0 || i >= len(s.Args) {
		return "", false
	}
	return s.Args[i], true
}

// Discard drops the next n tokens without looking them up or updating the context.
// It returns the dropped tokens.
func (s *Scanner) Discard(n int) []string {
	if n > len(s.Args) {
		n = len(s.Args)
	}
	res := s.Args[:n]
	s.Args = s.Args[n:]
	return res
}

// Context returns the context that the next token will be scanned in.
func (s *Scanner) Context() Context {
	return s.ctx
}
