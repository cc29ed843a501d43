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

package swiftc

import (
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
)

var skipTable = args.Table{
	// Xcode sets output paths.
	"-emit-module-path":      args.Unconditional(2),
	"-emit-objc-header-path": args.Unconditional(2),
	"-emit-object":           args.Unconditional(1),
	"-output-file-map":       args.Unconditional(2),
	"-c":                     args.Unconditional(1),

	// Xcode sets these, and there is no way to unset them.
	"-enable-bare-slash-regex": args.Unconditional(1),
	"-module-name":             args.Unconditional(2),
	"-num-threads":             args.Unconditional(2),
	"-j":                       args.Unconditional(2),
	"-parse-as-library":        args.Unconditional(1),
	"-sdk":                     args.Unconditional(2),
	"-target":                  args.Unconditional(2),

	// Xcode handles PCMs its own way.
	"-module-cache-path": args.Unconditional(2),

	// Xcode handles debug info its own way.
	"-debug-prefix-map":  args.Unconditional(2),
	"-file-prefix-map":   args.Unconditional(2),
	"-gline-tables-only": args.Unconditional(1),

	// Xcode handles indexing.
	"-index-ignore-system-modules": args.Unconditional(1),
	"-index-store-path":            args.Unconditional(2),

	// Controlled by build settings.
	"-enable-batch-mode": args.Unconditional(1),

	"-emit-symbol-graph-dir": args.Unconditional(2),

	// rules_swift worker flags.
	"-Xwrapped-swift": args.Unconditional(1),

	"-Xfrontend": args.CompoundLookup{
		"-color-diagnostics":              1,
		"-no-clang-module-breadcrumbs":    1,
		"-no-serialize-debugging-options": 1,
		"-serialize-debugging-options":    1,
		"-emit-symbol-graph":              1,
	},
	"-Xcc": args.CompoundLookup{
		"-fcolor-diagnostics":    1,
		"-fno-color-diagnostics": 1,
	},
}
