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

package cc

import (
	"testing"

	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
	"github.com/google/go-cmp/cmp"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		toks []string
		want []string
	}{{
		name: "deployment target with equals",
		toks: []string{"-mmacosx-version-min=12.0", "-passthrough"},
		want: []string{"-passthrough"},
	}, {
		name: "developer dir placeholder is quoted",
		toks: []string{"-something", "__BAZEL_XCODE_DEVELOPER_DIR__/hi"},
		want: []string{"-something", "'$(DEVELOPER_DIR)/hi'"},
	}, {
		name: "sdk root placeholder",
		toks: []string{"-F__BAZEL_XCODE_SDKROOT__/System/Library/Frameworks"},
		want: []string{"'-F$(SDKROOT)/System/Library/Frameworks'"},
	}, {
		name: "inputs and outputs",
		toks: []string{"-c", "a/b.m", "-o", "bazel-out/b.o", "-MD", "-MF", "bazel-out/b.d", "-fobjc-arc"},
		want: []string{"-fobjc-arc"},
	}, {
		name: "relative paths are kept",
		toks: []string{"-iquote", ".", "-Ibazel-out/include", "-isystem", "external/x"},
		want: []string{"-iquote", ".", "-Ibazel-out/include", "-isystem", "external/x"},
	}, {
		name: "spaces",
		toks: []string{"-DNAME=a b", `-DQ="x"`},
		want: []string{"'-DNAME=a b'", `-DQ="x"`},
	}, {
		name: "wrapped clang prefix maps",
		toks: []string{"DEBUG_PREFIX_MAP_PWD=.", "OSO_PREFIX_MAP_PWD", "-fdebug-prefix-map=/a=b", "-O0"},
		want: []string{"-O0"},
	}, {
		name: "Xclang compound",
		toks: []string{"-Xclang", "-fmodule-map-file-home-is-cwd", "-Xclang", "-fno-validate-pch"},
		want: []string{"-Xclang", "-fno-validate-pch"},
	}, {
		name: "stdlib kept for C",
		toks: []string{"-stdlib=libc++"},
		want: []string{"-stdlib=libc++"},
	}, {
		name: "stdlib dropped for C++",
		lang: CXX,
		toks: []string{"-stdlib=libc++", "-std=c++17"},
		want: []string{"-std=c++17"},
	}, {
		name: "empty",
		toks: nil,
		want: []string{},
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Process(test.toks, test.lang)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Process(%q) returned diff, (-want +got): %s", test.toks, diff)
			}
		})
	}
}

func TestProcessSkipsEveryTableEntry(t *testing.T) {
	for _, lang := range []Language{C, CXX} {
		for flag, rule := range Table(lang) {
			n, ok := rule.(args.Unconditional)
			if !ok {
				continue
			}
			toks := []string{flag}
			for i := 1; i < int(n); i++ {
				toks = append(toks, "filler")
			}
			if got := Process(toks, lang); len(got) != 0 {
				t.Errorf("Process(%q) = %q, want no arguments", toks, got)
			}
		}
	}
}
