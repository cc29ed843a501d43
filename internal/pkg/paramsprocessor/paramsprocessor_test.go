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

package paramsprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bazelbuild/xcparams/internal/pkg/execroot"
	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	er := execroot.Setup(t)
	compile := execroot.AddParams(t, er, "compile.params",
		"-mmacosx-version-min=12.0",
		"-fobjc-arc",
		"-something",
		"__BAZEL_XCODE_DEVELOPER_DIR__/hi",
	)
	swift := execroot.AddParams(t, er, "swift.params",
		"-Xfrontend",
		"-color-diagnostics",
		"-Xfrontend",
		"-import-underlying-module",
		"-iquote",
		"relative/path",
		"a.swift",
	)
	list := execroot.AddParams(t, er, "link.filelist", "bazel-out/main.o", "bazel-out/libA.a", "bazel-out/libSelf.a")
	link := execroot.AddParams(t, er, "link.params",
		"-filelist",
		list,
		"-force_load",
		"bazel-out/libSelf.a",
		"-ObjC",
	)

	tests := []struct {
		name string
		opts Options
		want string
	}{{
		name: "c",
		opts: Options{Variant: C, Args: []string{"@" + compile}},
		want: "-fobjc-arc\n-something\n'$(DEVELOPER_DIR)/hi'\n",
	}, {
		name: "cxx with inline args",
		opts: Options{Variant: CXX, Args: []string{"-stdlib=libc++", "@" + compile, "-std=c++17"}},
		want: "-fobjc-arc\n-something\n'$(DEVELOPER_DIR)/hi'\n-std=c++17\n",
	}, {
		name: "swift",
		opts: Options{Variant: Swift, Args: []string{"@" + swift}},
		want: "-Xfrontend\n-import-underlying-module\n-iquote\nrelative/path\n",
	}, {
		name: "swift debug settings",
		opts: Options{Variant: SwiftDebugSettings, Args: []string{"@" + swift}},
		want: `{"c":"-iquote $(PROJECT_DIR)/relative/path"}`,
	}, {
		name: "link",
		opts: Options{
			Variant:      Link,
			Args:         []string{"@" + link},
			Replacements: map[string]string{"bazel-out/libA.a": "$(BUILD_DIR)/libA.a"},
			SelfLinked:   []string{"bazel-out/libSelf.a"},
		},
		want: "'$(BUILD_DIR)/libA.a'\nbazel-out/libSelf.a\n-force_load\nbazel-out/libSelf.a\n-ObjC\n",
	}, {
		name: "link self",
		opts: Options{
			Variant:    LinkSelf,
			Args:       []string{"@" + link},
			SelfLinked: []string{"bazel-out/libSelf.a"},
		},
		want: "bazel-out/libA.a\n-ObjC\n",
	}, {
		name: "nothing left",
		opts: Options{Variant: C, Args: []string{"-c", "a.m"}},
		want: "\n",
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.opts.Output = filepath.Join(t.TempDir(), "out")
			if err := Run(context.Background(), test.opts); err != nil {
				t.Fatalf("Run(%+v) failed: %v", test.opts, err)
			}
			got := execroot.ReadFile(t, test.opts.Output)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Run(%+v) wrote diff, (-want +got): %s", test.opts, diff)
			}
		})
	}
}

func TestRunMissingParams(t *testing.T) {
	er := execroot.Setup(t)
	out := filepath.Join(er, "out")
	opts := Options{Variant: Swift, Output: out, Args: []string{"@" + filepath.Join(er, "missing.params")}}
	if err := Run(context.Background(), opts); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Run(%+v) returned error %v, want %v", opts, err, os.ErrNotExist)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Run(%+v) wrote %v, want no output", opts, out)
	}
}

func TestRunInvalidOptions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	tests := []struct {
		name string
		ctx  context.Context
		opts Options
	}{
		{name: "unknown variant", ctx: context.Background(), opts: Options{Variant: "objc", Output: out}},
		{name: "no output", ctx: context.Background(), opts: Options{Variant: C}},
		{name: "canceled", ctx: canceled, opts: Options{Variant: C, Output: out}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := Run(test.ctx, test.opts); err == nil {
				t.Errorf("Run(%+v) succeeded, want error", test.opts)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants {
		got, err := ParseVariant(string(v))
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = (%v, %v), want (%v, nil)", v, got, err, v)
		}
	}
	if _, err := ParseVariant("objc"); err == nil {
		t.Errorf("ParseVariant(%q) succeeded, want error", "objc")
	}
}
