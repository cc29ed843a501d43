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

// Package version defines the version number printed by xcparams.
package version

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bazelbuild/xcparams/internal/pkg/envflag"

	log "github.com/golang/glog"
)

// These are overridden at link time with -X.
var (
	versionMajor = "0"
	versionMinor = "1"
	versionPatch = "0"

	// versionSHA is the commit xcparams is built from.
	versionSHA = "undefined"

	versionFlag = flag.Bool("version", false, "If provided, print the current binary version and exit.")
)

// PrintAndExitOnVersionFlag parses the flags and, if --version is set, prints the
// current version and exits. If info is true, the version is also logged.
func PrintAndExitOnVersionFlag(info bool) {
	envflag.Parse()
	if info {
		log.Infof("Version: %s", CurrentVersion())
	}
	if *versionFlag {
		Print(os.Stdout)
		os.Exit(0)
	}
}

// Print writes the current version to w.
func Print(w io.Writer) {
	fmt.Fprintf(w, "Version: %s\n", CurrentVersion())
}

// CurrentVersion returns the current version number in semver format, followed
// by the commit.
func CurrentVersion() string {
	return fmt.Sprintf("%s.%s.%s.%s", versionMajor, versionMinor, versionPatch, versionSHA)
}
