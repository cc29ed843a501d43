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

// Package link translates link params for Xcode.
package link

import (
	"fmt"
	"strings"

	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/quote"
	"github.com/bazelbuild/xcparams/internal/pkg/pathtranslator"
	"github.com/bazelbuild/xcparams/internal/pkg/rsp"

	"github.com/bazelbuild/remote-apis-sdks/go/pkg/cache"
	"github.com/bmatcuk/doublestar/v4"

	log "github.com/golang/glog"
)

// SwiftmoduleSegment is appended to the Xcode replacement of a .swiftmodule, which
// Xcode produces as a directory holding one module per architecture.
const SwiftmoduleSegment = "$(NATIVE_ARCH_ACTUAL)-apple-$(SWIFT_PLATFORM_TARGET_PREFIX)$(LLVM_TARGET_TRIPLE_SUFFIX).swiftmodule"

var (
	// Policy is how processed linker arguments are quoted.
	Policy = quote.Policy{BuildSetting: true}

	forceLoadFlags = map[string]bool{
		"-force_load":     true,
		"-Wl,-force_load": true,
	}
)

// Options configures a link processor.
type Options struct {
	// Generated are paths, or doublestar patterns, of files that Xcode produces
	// itself and links on its own.
	Generated []string

	// Replacements maps Bazel paths to the paths Xcode produces for them.
	Replacements map[string]string

	// SelfLinked are the artifacts of the target being linked. Any argument
	// referencing them is dropped, along with a -force_load in front of it.
	SelfLinked []string
}

// Table returns the link skip table.
func Table() args.Table {
	return skipTable
}

type processor struct {
	opts Options
	res  []string

	// filelists holds the filelists read by this run, keyed by path.
	filelists cache.SingleFlight
}

// Process translates the linker arguments toks into arguments for Xcode's
// OTHER_LDFLAGS. It fails if a -filelist cannot be read. Filelists are read
// anew by every call.
func Process(toks []string, opts Options) ([]string, error) {
	p := &processor{opts: opts, res: []string{}}
	s := args.New(toks, skipTable, args.NoContexts)
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		v := tok.Value
		if n := sectionLen(s, v); n >= 0 {
			log.V(2).Infof("Dropping %v section", v)
			s.Discard(n)
			continue
		}
		switch {
		case v == "-filelist":
			path, ok := s.Peek(0)
			if !ok {
				log.Warningf("-filelist is the last linker argument, keeping it")
				p.emit(v)
				continue
			}
			s.Discard(1)
			if path == "" {
				log.Warningf("-filelist has an empty path, keeping it")
				p.emit(v)
				p.emit(path)
				continue
			}
			if err := p.expandFilelist(path); err != nil {
				return nil, err
			}
			continue
		case strings.HasPrefix(v, "-Wl,-filelist,"):
			// ld accepts "-filelist file,dirname"; the dirname is not used by Bazel.
			path, _, _ := strings.Cut(strings.TrimPrefix(v, "-Wl,-filelist,"), ",")
			if path == "" {
				log.Warningf("%v has an empty path, keeping it", v)
				p.emit(v)
				continue
			}
			if err := p.expandFilelist(path); err != nil {
				return nil, err
			}
			continue
		}
		if p.drop(v) {
			continue
		}
		p.emit(p.replace(v))
	}
	log.V(1).Infof("Processed %d linker arguments into %d", len(toks), len(p.res))
	return p.res, nil
}

// sectionLen returns how many tokens after v belong to an entitlements or
// Info.plist section, or -1 if v does not start one.
func sectionLen(s *args.Scanner, v string) int {
	peekIs := func(i int, want string) bool {
		got, ok := s.Peek(i)
		return ok && got == want
	}
	peekSection := func(i int) bool {
		got, ok := s.Peek(i)
		return ok && sections[got]
	}
	switch v {
	case "-sectcreate":
		if peekIs(0, "__TEXT") && peekSection(1) {
			if _, ok := s.Peek(2); ok {
				return 3
			}
		}
	case "-Xlinker":
		if peekIs(0, "-sectcreate") && peekIs(1, "-Xlinker") && peekIs(2, "__TEXT") &&
			peekIs(3, "-Xlinker") && peekSection(4) && peekIs(5, "-Xlinker") {
			if _, ok := s.Peek(6); ok {
				return 7
			}
		}
	default:
		for sect := range sections {
			if strings.HasPrefix(v, "-Wl,-sectcreate,__TEXT,"+sect+",") {
				return 0
			}
		}
	}
	return -1
}

func (p *processor) expandFilelist(path string) error {
	v, err := p.filelists.LoadOrStore(path, func() (interface{}, error) {
		return rsp.ReadLines(path)
	})
	if err != nil {
		return fmt.Errorf("failed to expand -filelist: %w", err)
	}
	lines := v.([]string)
	for _, l := range lines {
		if l == "" || p.drop(l) {
			continue
		}
		p.emit(p.replace(l))
	}
	return nil
}

func (p *processor) emit(v string) {
	p.res = append(p.res, Policy.Quote(pathtranslator.ReplacePlaceholders(v)))
}

func (p *processor) drop(v string) bool {
	if p.selfLinked(v) {
		if n := len(p.res); n > 0 && forceLoadFlags[p.res[n-1]] {
			p.res = p.res[:n-1]
		}
		log.V(2).Infof("Dropping self linked %v", v)
		return true
	}
	if strings.HasPrefix(v, "-") {
		return false
	}
	return strings.HasSuffix(v, ".o") || p.generated(v)
}

func (p *processor) selfLinked(v string) bool {
	for _, self := range p.opts.SelfLinked {
		if v == self || strings.HasSuffix(v, ","+self) || strings.HasSuffix(v, "="+self) {
			return true
		}
	}
	return false
}

func (p *processor) generated(path string) bool {
	for _, g := range p.opts.Generated {
		if g == path {
			return true
		}
		if ok, err := doublestar.Match(g, path); err == nil && ok {
			return true
		}
	}
	return false
}

// replace substitutes the Xcode path for a path token, or for the last
// comma-separated element of a -Wl, flag.
func (p *processor) replace(v string) string {
	prefix, path := "", v
	if strings.HasPrefix(v, "-") {
		i := strings.LastIndex(v, ",")
		if i < 0 {
			return v
		}
		prefix, path = v[:i+1], v[i+1:]
	}
	r, ok := p.opts.Replacements[path]
	if !ok {
		return v
	}
	if strings.HasSuffix(path, ".swiftmodule") {
		r += "/" + SwiftmoduleSegment
	}
	return prefix + r
}
