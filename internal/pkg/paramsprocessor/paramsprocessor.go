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

// Package paramsprocessor translates the params of a Bazel action into the
// build settings Xcode uses for the same target.
package paramsprocessor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/action/cc"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/action/link"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/action/lldb"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/action/swiftc"
	"github.com/bazelbuild/xcparams/internal/pkg/rsp"

	log "github.com/golang/glog"
)

// Variant selects the processor for an action.
type Variant string

const (
	// C processes C and Objective-C compile params.
	C Variant = "c"
	// CXX processes C++ and Objective-C++ compile params.
	CXX Variant = "cxx"
	// Swift processes Swift compile params.
	Swift Variant = "swift"
	// Link processes link params.
	Link Variant = "link"
	// LinkSelf processes link params for the target's own debugging setup,
	// dropping the artifacts the target links from itself.
	LinkSelf Variant = "link-self"
	// SwiftDebugSettings derives LLDB settings from Swift compile params.
	SwiftDebugSettings Variant = "swift-debug-settings"
)

// Variants are all the known variants.
var Variants = []Variant{C, CXX, Swift, Link, LinkSelf, SwiftDebugSettings}

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q, want one of %v", s, Variants)
}

// Options are the inputs of one processor run.
type Options struct {
	// Variant selects the processor.
	Variant Variant `json:"variant"`

	// Output is the file the result is written to.
	Output string `json:"output"`

	// Args are the action arguments. An argument of the form "@path" is a params
	// file holding one argument per line.
	Args []string `json:"args"`

	// Generated are paths, or doublestar patterns, of files Xcode produces itself.
	// Only used by the link variants.
	Generated []string `json:"generated_paths,omitempty"`

	// Replacements maps Bazel paths to the paths Xcode produces for them.
	// Only used by the link variants.
	Replacements map[string]string `json:"replacement_paths,omitempty"`

	// SelfLinked are the artifacts of the target being linked. Only used by
	// the link-self variant.
	SelfLinked []string `json:"self_linked_paths,omitempty"`
}

// Run reads the arguments in opts, processes them with the selected variant and
// writes the result to opts.Output.
func Run(ctx context.Context, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := ParseVariant(string(opts.Variant)); err != nil {
		return err
	}
	if opts.Output == "" {
		return fmt.Errorf("no output path for %v params", opts.Variant)
	}
	toks, err := rsp.Tokens(rsp.FromArgs(opts.Args)...)
	if err != nil {
		return err
	}
	log.V(1).Infof("Processing %d %v arguments into %v", len(toks), opts.Variant, opts.Output)
	switch opts.Variant {
	case C:
		return WriteTokens(opts.Output, cc.Process(toks, cc.C))
	case CXX:
		return WriteTokens(opts.Output, cc.Process(toks, cc.CXX))
	case Swift:
		return WriteTokens(opts.Output, swiftc.Process(toks))
	case SwiftDebugSettings:
		return WriteSettings(opts.Output, lldb.Process(toks))
	}
	linkOpts := link.Options{
		Generated:    opts.Generated,
		Replacements: opts.Replacements,
	}
	if opts.Variant == LinkSelf {
		linkOpts.SelfLinked = opts.SelfLinked
	}
	res, err := link.Process(toks, linkOpts)
	if err != nil {
		return err
	}
	return WriteTokens(opts.Output, res)
}

// WriteTokens writes toks to path, one per line.
func WriteTokens(path string, toks []string) error {
	return write(path, []byte(strings.Join(toks, "\n")+"\n"))
}

// WriteSettings writes s to path as JSON.
func WriteSettings(path string, s lldb.Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal debug settings: %w", err)
	}
	return write(path, b)
}

func write(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
