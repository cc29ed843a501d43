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

// Package swiftc translates Swift compile params for Xcode.
package swiftc

import (
	"strings"

	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/quote"
	"github.com/bazelbuild/xcparams/internal/pkg/pathtranslator"

	log "github.com/golang/glog"
)

// ContextFlags are the swiftc indirection flags.
var ContextFlags = args.ContextFlags{Foreign: "-Xcc", Frontend: "-Xfrontend"}

// Policy is how processed swiftc arguments are quoted.
var Policy = quote.Policy{DoubleQuote: true, BuildSetting: true}

// Table returns the swiftc skip table.
func Table() args.Table {
	return skipTable
}

// IsSource reports whether tok is a Swift source file given to the compiler.
func IsSource(tok args.Token) bool {
	return !tok.Context.Nested() && !strings.HasPrefix(tok.Value, "-") && strings.HasSuffix(tok.Value, ".swift")
}

// Process translates the swiftc arguments toks into arguments for Xcode's
// OTHER_SWIFT_FLAGS.
//
// Clang paths passed with -Xcc are resolved against PROJECT_DIR since Xcode runs
// clang from there. VFS overlays are resolved against CURRENT_EXECUTION_ROOT in
// every context.
func Process(toks []string) []string {
	s := args.New(toks, skipTable, ContextFlags)
	res := []string{}
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		if IsSource(tok) {
			log.V(2).Infof("Dropping swift source %v", tok.Value)
			continue
		}
		v := rewrite(tok)
		res = append(res, Policy.Quote(pathtranslator.ReplacePlaceholders(v)))
	}
	log.V(1).Infof("Processed %d swiftc arguments into %d", len(toks), len(res))
	return res
}

func rewrite(tok args.Token) string {
	v, ctx := tok.Value, tok.Context
	flags, prev := pathtranslator.Overlays, ctx.PrevOuter()
	switch {
	case ctx.InForeign():
		flags, prev = pathtranslator.ClangFlags, ctx.Foreign
	case ctx.InFrontend():
		prev = ctx.Frontend
	}
	if r, ok := flags.RewriteValue(prev, v); ok {
		return r
	}
	if r, ok := flags.RewriteJoined(v); ok {
		return r
	}
	return v
}
