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
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
)

// MinOSFlags are the deployment target flags. Xcode derives them from the
// *_DEPLOYMENT_TARGET build settings.
var MinOSFlags = args.Table{
	"-mios-simulator-version-min":     args.Unconditional(1),
	"-miphoneos-version-min":          args.Unconditional(1),
	"-mmacosx-version-min":            args.Unconditional(1),
	"-mtvos-simulator-version-min":    args.Unconditional(1),
	"-mtvos-version-min":              args.Unconditional(1),
	"-mwatchos-simulator-version-min": args.Unconditional(1),
	"-mwatchos-version-min":           args.Unconditional(1),
	"-mxros-simulator-version-min":    args.Unconditional(1),
	"-mxros-version-min":              args.Unconditional(1),
}

var skipTable = args.Merge(MinOSFlags, args.Table{
	// Xcode sets these, and there is no way to unset them.
	"-isysroot": args.Unconditional(2),
	"-target":   args.Unconditional(2),

	// Xcode sets input and output paths.
	"-c":  args.Unconditional(2),
	"-o":  args.Unconditional(2),
	"-MD": args.Unconditional(1),
	"-MF": args.Unconditional(2),
	"-MT": args.Unconditional(2),

	// Xcode controls coloring.
	"-fcolor-diagnostics":    args.Unconditional(1),
	"-fno-color-diagnostics": args.Unconditional(1),

	// Xcode handles PCMs and debug info its own way.
	"-fmodules-cache-path": args.Unconditional(1),
	"-gmodules":            args.Unconditional(1),
	"-fdebug-prefix-map":   args.Unconditional(1),
	"-ffile-prefix-map":    args.Unconditional(1),

	// Xcode handles indexing.
	"-index-store-path":            args.Unconditional(2),
	"-index-ignore-system-symbols": args.Unconditional(1),

	// wrapped_clang specific.
	"DEBUG_PREFIX_MAP_PWD": args.Unconditional(1),
	"OSO_PREFIX_MAP_PWD":   args.Unconditional(1),

	"-Xclang": args.CompoundLookup{
		"-fcolor-diagnostics":           1,
		"-fmodule-map-file-home-is-cwd": 1,
	},
})

var cxxSkipTable = args.Merge(skipTable, args.Table{
	// Set through CLANG_CXX_LIBRARY.
	"-stdlib": args.Unconditional(1),
})
