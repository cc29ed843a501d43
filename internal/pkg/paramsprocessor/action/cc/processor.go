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

// Package cc translates C and C++ compile params for Xcode.
package cc

import (
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/quote"
	"github.com/bazelbuild/xcparams/internal/pkg/pathtranslator"

	log "github.com/golang/glog"
)

// Language selects the skip table.
type Language int

const (
	// C covers C and Objective-C compiles.
	C Language = iota

	// CXX covers C++ and Objective-C++ compiles.
	CXX
)

// Policy is how processed clang arguments are quoted.
var Policy = quote.Policy{BuildSetting: true}

// Table returns the skip table of lang.
func Table(lang Language) args.Table {
	if lang == CXX {
		return cxxSkipTable
	}
	return skipTable
}

// Process translates the clang arguments toks into arguments for Xcode's
// OTHER_CFLAGS / OTHER_CPLUSPLUSFLAGS. Flags that Xcode sets itself are dropped.
func Process(toks []string, lang Language) []string {
	s := args.New(toks, Table(lang), args.NoContexts)
	res := []string{}
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		res = append(res, Policy.Quote(pathtranslator.ReplacePlaceholders(tok.Value)))
	}
	log.V(1).Infof("Processed %d clang arguments into %d", len(toks), len(res))
	return res
}
