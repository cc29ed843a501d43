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

// ContextFlags names the indirection flags that open a one-token nested context.
// An empty name disables that context.
type ContextFlags struct {
	// Foreign passes the next token to a foreign compiler, e.g. "-Xcc".
	Foreign string

	// Frontend passes the next token to the compiler frontend, e.g. "-Xfrontend".
	Frontend string
}

// NoContexts is used by variants where every token is processed directly.
var NoContexts = ContextFlags{}

// Context is the scanning state that precedes a token.
type Context struct {
	// Prev is the previous surviving token.
	Prev string

	// Foreign is the last token that was passed to the foreign compiler.
	Foreign string

	// Frontend is the last token that was passed to the compiler frontend.
	Frontend string

	flags      ContextFlags
	prevNested bool
}

// NewContext returns an empty context for the given indirection flags.
func NewContext(flags ContextFlags) Context {
	return Context{flags: flags}
}

// InForeign is true if the token scanned in this context belongs to the foreign compiler.
func (c Context) InForeign() bool {
	return c.flags.Foreign != "" && c.Prev == c.flags.Foreign
}

// InFrontend is true if the token scanned in this context belongs to the compiler frontend.
func (c Context) InFrontend() bool {
	return c.flags.Frontend != "" && c.Prev == c.flags.Frontend
}

// Nested is true if the token scanned in this context belongs to either nested tool.
func (c Context) Nested() bool {
	return c.InForeign() || c.InFrontend()
}

// PrevOuter returns Prev if it was not passed to a nested tool, and "" otherwise.
func (c Context) PrevOuter() string {
	if c.prevNested {
		return ""
	}
	return c.Prev
}

// Advance returns the context that follows tok.
// Foreign and Frontend are only replaced by tokens that live in those contexts, so
// they carry across the indirection flags themselves: in "-Xcc -I -Xcc dir" the
// context of "dir" has Foreign "-I". Any other top level token clears both, so in
// "-Xcc -I -O -Xcc dir" the context of "dir" has no Foreign.
func (c Context) Advance(tok string) Context {
	next := c
	next.Prev = tok
	next.prevNested = c.Nested()
	switch {
	case c.InForeign():
		next.Foreign = tok
	case c.InFrontend():
		next.Frontend = tok
	case tok != c.flags.Foreign && tok != c.flags.Frontend:
		next.Foreign, next.Frontend = "", ""
	}
	return next
}
