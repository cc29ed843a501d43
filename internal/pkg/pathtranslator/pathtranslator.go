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

// Package pathtranslator classifies path arguments and rewrites them for Xcode.
package pathtranslator

import (
	"sort"
	"strings"
)

const (
	// ProjectDir is the Xcode build setting relative paths are resolved against.
	ProjectDir = "$(PROJECT_DIR)"

	// CurrentExecutionRoot is the root that VFS overlay files are resolved against.
	CurrentExecutionRoot = "$(CURRENT_EXECUTION_ROOT)"

	// DeveloperDir is the Xcode build setting for the developer directory.
	DeveloperDir = "$(DEVELOPER_DIR)"

	// SDKRoot is the Xcode build setting for the SDK root.
	SDKRoot = "$(SDKROOT)"

	// BazelDeveloperDir is the sandbox placeholder Bazel uses for DeveloperDir.
	BazelDeveloperDir = "__BAZEL_XCODE_DEVELOPER_DIR__"

	// BazelSDKRoot is the sandbox placeholder Bazel uses for SDKRoot.
	BazelSDKRoot = "__BAZEL_XCODE_SDKROOT__"

	sandboxPrefix = "__BAZEL_XCODE_"
)

var placeholders = strings.NewReplacer(
	BazelDeveloperDir, DeveloperDir,
	BazelSDKRoot, SDKRoot,
)

// ReplacePlaceholders substitutes the Bazel sandbox placeholders in tok with the
// matching Xcode build settings.
func ReplacePlaceholders(tok string) string {
	return placeholders.Replace(tok)
}

// IsAbs reports whether p is absolute, either a real absolute path or one rooted at
// a Bazel sandbox placeholder.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, "/") || strings.HasPrefix(p, sandboxPrefix)
}

// IsBuildSetting reports whether p already starts with an Xcode build setting reference.
func IsBuildSetting(p string) bool {
	return strings.HasPrefix(p, "$(")
}

// RelToRoot resolves p against the root placeholder. Absolute paths, paths already
// expressed with a build setting and empty paths are returned unchanged.
// "." is the root itself.
func RelToRoot(root, p string) string {
	switch {
	case p == "", IsAbs(p), IsBuildSetting(p):
		return p
	case p == ".":
		return root
	}
	return root + "/" + p
}

// Flag is a flag whose value is a path.
type Flag struct {
	// Name is the flag as written, e.g. "-I" or "-fmodule-map-file=".
	// A name ending in "=" only has the glued shape.
	Name string

	// Root is the placeholder relative values are resolved against.
	Root string

	// Equals accepts "-flag=value" in addition to "-flagvalue" and "-flag value".
	Equals bool
}

// Flags is a set of path flags, ordered so that longer names are matched first.
type Flags []Flag

// NewFlags returns the set of the given flags.
func NewFlags(flags ...Flag) Flags {
	fs := append(Flags(nil), flags...)
	sort.SliceStable(fs, func(i, j int) bool {
		return len(fs[i].Name) > len(fs[j].Name)
	})
	return fs
}

// Lookup returns the flag that takes its value from the next token.
func (fs Flags) Lookup(name string) (Flag, bool) {
	for _, f := range fs {
		if f.Name == name && !strings.HasSuffix(f.Name, "=") {
			return f, true
		}
	}
	return Flag{}, false
}

// Match splits tok into the path flag it starts with and its value, for a flag with
// its value in the same token ("-Ipath", "-ivfsoverlay=path",
// "-fmodule-map-file=path"). sep is "=" for the "-flag=value" shape.
// It returns false if tok is not such a flag.
func (fs Flags) Match(tok string) (f Flag, sep, value string, ok bool) {
	for _, f := range fs {
		if !strings.HasPrefix(tok, f.Name) {
			continue
		}
		if tok == f.Name {
			return Flag{}, "", "", false
		}
		value = tok[len(f.Name):]
		if f.Equals && strings.HasPrefix(value, "=") {
			value, sep = value[1:], "="
		}
		return f, sep, value, true
	}
	return Flag{}, "", "", false
}

// RewriteJoined rewrites tok if it is a path flag with its value in the same token.
// It returns false if tok is not such a flag. Empty values are returned unchanged.
func (fs Flags) RewriteJoined(tok string) (string, bool) {
	f, sep, val, ok := fs.Match(tok)
	if !ok {
		return tok, false
	}
	return f.Name + sep + RelToRoot(f.Root, val), true
}

// RewriteValue rewrites value if flag is a path flag that takes its value from the
// next token. It returns false otherwise.
func (fs Flags) RewriteValue(flag, value string) (string, bool) {
	f, ok := fs.Lookup(flag)
	if !ok {
		return value, false
	}
	return RelToRoot(f.Root, value), true
}

// ClangFlags are the clang flags taking a path, as seen by a Swift compile through -Xcc
// or in the clang flags of the debugger settings.
var ClangFlags = NewFlags(
	Flag{Name: "-I", Root: ProjectDir},
	Flag{Name: "-iquote", Root: ProjectDir},
	Flag{Name: "-isystem", Root: ProjectDir},
	Flag{Name: "-idirafter", Root: ProjectDir},
	Flag{Name: "-F", Root: ProjectDir},
	Flag{Name: "-fmodule-map-file=", Root: ProjectDir},
	Flag{Name: "-ivfsoverlay", Root: CurrentExecutionRoot, Equals: true},
)

// SwiftFlags are the swiftc flags taking a path.
var SwiftFlags = NewFlags(
	Flag{Name: "-I", Root: ProjectDir},
	Flag{Name: "-F", Root: ProjectDir},
	Flag{Name: "-Fsystem", Root: ProjectDir},
	Flag{Name: "-vfsoverlay", Root: CurrentExecutionRoot, Equals: true},
)

// Overlays are the VFS overlay flags of ClangFlags and SwiftFlags.
var Overlays = NewFlags(
	Flag{Name: "-ivfsoverlay", Root: CurrentExecutionRoot, Equals: true},
	Flag{Name: "-vfsoverlay", Root: CurrentExecutionRoot, Equals: true},
)
