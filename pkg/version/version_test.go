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

package version

import (
	"bytes"
	"regexp"
	"testing"
)

var expectedVersionFormat = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\.([a-z0-9]+)$`)

func TestVersionInExpectedFormat(t *testing.T) {
	if v := CurrentVersion(); !expectedVersionFormat.MatchString(v) {
		t.Fatalf("CurrentVersion()=%v not in expected format %v", v, expectedVersionFormat)
	}
}

func TestPrint(t *testing.T) {
	old := versionSHA
	versionSHA = "abc123"
	t.Cleanup(func() { versionSHA = old })

	var b bytes.Buffer
	Print(&b)
	want := "Version: " + versionMajor + "." + versionMinor + "." + versionPatch + ".abc123\n"
	if got := b.String(); got != want {
		t.Errorf("Print() wrote %q, want %q", got, want)
	}
}
