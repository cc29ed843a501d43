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

package rsp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bazelbuild/xcparams/internal/pkg/execroot"
	"github.com/google/go-cmp/cmp"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{{
		name:    "new line separated",
		content: "a\nb\nc\n",
		want:    []string{"a", "b", "c"},
	}, {
		name:    "no final terminator",
		content: "a\nb",
		want:    []string{"a", "b"},
	}, {
		name:    "crlf",
		content: "a\r\nb\r\n",
		want:    []string{"a", "b"},
	}, {
		name:    "empty interior line kept",
		content: "a\n\nb\n",
		want:    []string{"a", "", "b"},
	}, {
		name:    "spaces are not separators",
		content: "-DFOO=a b\n",
		want:    []string{"-DFOO=a b"},
	}, {
		name:    "only one terminator stripped",
		content: "a\n\n",
		want:    []string{"a", ""},
	}, {
		name:    "empty file",
		content: "",
		want:    nil,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			er := execroot.Setup(t)
			p := filepath.Join(er, "args.params")
			execroot.AddFileWithContent(t, p, []byte(test.content))

			got, err := ReadLines(p)
			if err != nil {
				t.Fatalf("ReadLines(%v) returned error: %v", p, err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ReadLines(%v) returned diff, (-want +got): %s", p, diff)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		tok  string
		want string
	}{
		{tok: "'a b'", want: "a b"},
		{tok: "''", want: ""},
		{tok: "'", want: "'"},
		{tok: "'a", want: "'a"},
		{tok: "a'", want: "a'"},
		{tok: "\"a\"", want: "\"a\""},
		{tok: "-DX='y'", want: "-DX='y'"},
	}
	for _, test := range tests {
		if got := Unquote(test.tok); got != test.want {
			t.Errorf("Unquote(%q) = %q, want %q", test.tok, got, test.want)
		}
	}
}

func TestTokens(t *testing.T) {
	er := execroot.Setup(t)
	nested := execroot.AddParams(t, er, "nested.params", "-nested", "@deeper.params")
	first := execroot.AddParams(t, er, "first.params", "-a", "'-b c'", "@"+nested, "-d")
	second := execroot.AddParams(t, er, "second.params", "-e")

	got, err := Tokens(
		Group{Args: []string{"-lit"}},
		Group{Path: first},
		Group{Path: second},
		Group{Args: []string{"'-quoted'"}},
	)
	if err != nil {
		t.Fatalf("Tokens() returned error: %v", err)
	}
	want := []string{"-lit", "-a", "-b c", "-nested", "@deeper.params", "-d", "-e", "-quoted"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens() returned diff, (-want +got): %s", diff)
	}
}

func TestTokensMissingFile(t *testing.T) {
	er := execroot.Setup(t)
	missing := filepath.Join(er, "missing.params")
	_, err := Tokens(Group{Path: missing})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Tokens(%v) returned error %v, want os.ErrNotExist", missing, err)
	}
}

func TestTokensMissingNestedFile(t *testing.T) {
	er := execroot.Setup(t)
	p := execroot.AddParams(t, er, "args.params", "-a", "@"+filepath.Join(er, "missing.params"))
	_, err := Tokens(Group{Path: p})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Tokens(%v) returned error %v, want os.ErrNotExist", p, err)
	}
}

func TestFromArgs(t *testing.T) {
	got := FromArgs([]string{"-a", "-b", "@x.params", "@y.params", "-c", "@"})
	want := []Group{
		{Args: []string{"-a", "-b"}},
		{Path: "x.params"},
		{Path: "y.params"},
		{Args: []string{"-c", "@"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromArgs() returned diff, (-want +got): %s", diff)
	}
}
