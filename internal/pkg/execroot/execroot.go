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

// Package execroot provides temporary exec roots holding params files for tests.
package execroot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Setup creates a temporary exec root that is removed when the test finishes.
func Setup(t *testing.T) string {
	t.Helper()
	execRoot, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp exec root: %v", err)
	}
	return execRoot
}

// AddFileWithContent creates the file at path with the given content, creating
// parent directories as needed.
func AddFileWithContent(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatalf("Failed to setup directory %v: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to setup file %v: %v", path, err)
	}
}

// AddFilesWithContent creates the given files under the exec root.
func AddFilesWithContent(t *testing.T, execRoot string, files map[string][]byte) {
	t.Helper()
	for f, c := range files {
		AddFileWithContent(t, filepath.Join(execRoot, f), c)
	}
}

// AddParams writes a params file with one argument per line under the exec root and
// returns its absolute path.
func AddParams(t *testing.T, execRoot, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(execRoot, name)
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	AddFileWithContent(t, p, []byte(content))
	return p
}

// ReadFile returns the content of the file at path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %v: %v", path, err)
	}
	return string(b)
}
