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

package quote

import (
	"testing"
)

func TestQuote(t *testing.T) {
	all := Policy{DoubleQuote: true, BuildSetting: true}
	spaceOnly := Policy{}
	tests := []struct {
		name   string
		policy Policy
		tok    string
		want   string
	}{{
		name:   "plain",
		policy: all,
		tok:    "-DFOO=1",
		want:   "-DFOO=1",
	}, {
		name:   "space",
		policy: spaceOnly,
		tok:    "-DFOO=a b",
		want:   "'-DFOO=a b'",
	}, {
		name:   "double quote",
		policy: all,
		tok:    `-DFOO="x"`,
		want:   `'-DFOO="x"'`,
	}, {
		name:   "double quote ignored",
		policy: spaceOnly,
		tok:    `-DFOO="x"`,
		want:   `-DFOO="x"`,
	}, {
		name:   "build setting",
		policy: all,
		tok:    "$(DEVELOPER_DIR)/hi",
		want:   "'$(DEVELOPER_DIR)/hi'",
	}, {
		name:   "build setting ignored",
		policy: spaceOnly,
		tok:    "$(PROJECT_DIR)/relative/path",
		want:   "$(PROJECT_DIR)/relative/path",
	}, {
		name:   "closing marker before opening marker",
		policy: all,
		tok:    "a)$(b",
		want:   "a)$(b",
	}, {
		name:   "unclosed marker",
		policy: all,
		tok:    "$(FOO",
		want:   "$(FOO",
	}, {
		name:   "embedded single quote",
		policy: all,
		tok:    "-DNAME=it's here",
		want:   `'-DNAME=it'\''s here'`,
	}, {
		name:   "single quote without trigger",
		policy: all,
		tok:    "-DNAME='x'",
		want:   "-DNAME='x'",
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.policy.Quote(test.tok); got != test.want {
				t.Errorf("Quote(%q) = %q, want %q", test.tok, got, test.want)
			}
		})
	}
}
