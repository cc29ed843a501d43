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

// Package lldb derives the settings LLDB needs to import the Swift modules of a
// target from its Swift compile params.
package lldb

import (
	"strings"

	"github.com/bazelbuild/xcparams/internal/pkg/features"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/action/swiftc"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/quote"
	"github.com/bazelbuild/xcparams/internal/pkg/pathtranslator"

	"github.com/samber/lo"

	log "github.com/golang/glog"
)

// Policy is how the clang flags are quoted. Build settings are left bare since
// they are expanded by the consumer of the settings.
var Policy = quote.Policy{DoubleQuote: true}

// Settings are the debugger settings of one target.
type Settings struct {
	// Clang are the extra clang flags, quoted and joined by spaces.
	Clang string `json:"c,omitempty"`

	// Frameworks are the framework search paths.
	Frameworks []string `json:"f,omitempty"`

	// Modules are the Swift module search paths.
	Modules []string `json:"s,omitempty"`
}

var (
	// clangOnly are the top level swiftc flags that only affect clang.
	clangOnly = pathtranslator.NewFlags(
		pathtranslator.Flag{Name: "-iquote", Root: pathtranslator.ProjectDir},
		pathtranslator.Flag{Name: "-isystem", Root: pathtranslator.ProjectDir},
		pathtranslator.Flag{Name: "-idirafter", Root: pathtranslator.ProjectDir},
		pathtranslator.Flag{Name: "-fmodule-map-file=", Root: pathtranslator.ProjectDir},
		pathtranslator.Flag{Name: "-ivfsoverlay", Root: pathtranslator.CurrentExecutionRoot, Equals: true},
	)

	frameworkFlags = pathtranslator.NewFlags(
		pathtranslator.Flag{Name: "-F", Root: pathtranslator.ProjectDir},
		pathtranslator.Flag{Name: "-Fsystem", Root: pathtranslator.ProjectDir},
	)

	moduleFlags = pathtranslator.NewFlags(
		pathtranslator.Flag{Name: "-I", Root: pathtranslator.ProjectDir},
	)
)

// builder collects the settings. Clang flags are kept as arguments of one or two
// tokens so that a flag and its value are deduplicated together.
type builder struct {
	clang      [][]string
	frameworks []string
	modules    []string

	seen       map[string]bool
	valueAware bool
}

// Process derives the debugger settings from the swiftc arguments toks.
//
// Arguments given to clang with -Xcc, and the top level flags that only affect
// clang, make up Clang. Top level -F and -Fsystem paths make up Frameworks, and
// top level -I paths make up Modules. Everything else is dropped.
// Relative paths are resolved against PROJECT_DIR, or CURRENT_EXECUTION_ROOT for
// VFS overlays.
//
// Only the first -D of a macro is kept, as is the first -I or -F of a path and the
// first of identical -fmodule-map-file= flags. With
// --experimental_value_aware_dedup, a -D is only dropped when it repeats both the
// name and the value of an earlier one.
func Process(toks []string) Settings {
	b := &builder{
		seen:       map[string]bool{},
		valueAware: features.GetConfig().ExperimentalValueAwareDedup,
	}
	s := args.New(toks, swiftc.Table(), swiftc.ContextFlags)
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		v, ctx := tok.Value, tok.Context
		switch {
		case v == swiftc.ContextFlags.Foreign, v == swiftc.ContextFlags.Frontend:
			// The next token carries the context.
		case ctx.InForeign():
			b.foreign(s, v)
		case ctx.InFrontend(), swiftc.IsSource(tok):
		default:
			b.topLevel(s, v)
		}
	}
	res := b.settings()
	log.V(1).Infof("Processed %d swiftc arguments into %d clang flags, %d framework and %d module paths",
		len(toks), len(b.clang), len(res.Frameworks), len(res.Modules))
	return res
}

// foreign handles v, a token given to clang with -Xcc. A flag whose value is in the
// next -Xcc token is handled together with it. A flag missing its value is kept
// alone, as is a truncated flag at the top level.
func (b *builder) foreign(s *args.Scanner, v string) {
	f, ok := pathtranslator.ClangFlags.Lookup(v)
	if !ok && v != "-D" {
		if r, ok := pathtranslator.ClangFlags.RewriteJoined(v); ok {
			v = r
		}
		b.addClang(v)
		return
	}
	if xcc, ok := s.Peek(0); !ok || xcc != swiftc.ContextFlags.Foreign {
		b.addClang(v)
		return
	}
	val, ok := s.Peek(1)
	if !ok {
		b.addClang(v)
		return
	}
	s.Discard(2)
	if f.Name != "" {
		val = pathtranslator.RelToRoot(f.Root, val)
	}
	b.addClang(v, val)
}

func (b *builder) topLevel(s *args.Scanner, v string) {
	if f, ok := clangOnly.Lookup(v); ok {
		if val, ok := s.Peek(0); ok {
			s.Discard(1)
			b.addClang(v, pathtranslator.RelToRoot(f.Root, val))
			return
		}
		log.Warningf("%v is the last swiftc argument, keeping it", v)
		b.addClang(v)
		return
	}
	if r, ok := clangOnly.RewriteJoined(v); ok {
		b.addClang(r)
		return
	}
	if p, ok := searchPath(s, frameworkFlags, v); ok {
		b.frameworks = append(b.frameworks, pathtranslator.ReplacePlaceholders(p))
		return
	}
	if p, ok := searchPath(s, moduleFlags, v); ok {
		b.modules = append(b.modules, pathtranslator.ReplacePlaceholders(p))
	}
}

// searchPath returns the resolved path of v if v is one of flags, in either the
// joined or the split shape. A split flag with no value has no path to add.
func searchPath(s *args.Scanner, flags pathtranslator.Flags, v string) (string, bool) {
	if f, ok := flags.Lookup(v); ok {
		val, ok := s.Peek(0)
		if !ok {
			log.Warningf("%v is the last swiftc argument, dropping it", v)
			return "", false
		}
		s.Discard(1)
		return pathtranslator.RelToRoot(f.Root, val), true
	}
	if f, _, val, ok := flags.Match(v); ok {
		return pathtranslator.RelToRoot(f.Root, val), true
	}
	return "", false
}

func (b *builder) addClang(toks ...string) {
	for i, t := range toks {
		toks[i] = pathtranslator.ReplacePlaceholders(t)
	}
	if key, ok := b.dedupKey(toks); ok {
		if b.seen[key] {
			log.V(2).Infof("Dropping duplicate clang flag %q", toks)
			return
		}
		b.seen[key] = true
	}
	b.clang = append(b.clang, toks)
}

// dedupKey returns the key identifying arg among the flags that are only kept once.
func (b *builder) dedupKey(arg []string) (string, bool) {
	joined := strings.Join(arg, "")
	switch {
	case strings.HasPrefix(joined, "-D"):
		if b.valueAware {
			return joined, true
		}
		return args.RootName(joined), true
	case strings.HasPrefix(joined, "-I"), strings.HasPrefix(joined, "-F"):
		return joined, true
	case strings.HasPrefix(joined, "-fmodule-map-file="):
		return joined, true
	}
	return "", false
}

func (b *builder) settings() Settings {
	var clang []string
	for _, arg := range b.clang {
		clang = append(clang, Policy.All(arg)...)
	}
	res := Settings{Clang: strings.Join(clang, " ")}
	if len(b.frameworks) > 0 {
		res.Frameworks = lo.Uniq(b.frameworks)
	}
	if len(b.modules) > 0 {
		res.Modules = lo.Uniq(b.modules)
	}
	return res
}
