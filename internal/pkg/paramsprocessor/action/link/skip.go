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

package link

import (
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/action/cc"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor/args"
)

var skipTable = args.Merge(cc.MinOSFlags, args.Table{
	// Xcode sets these, and there is no way to unset them.
	"-isysroot": args.Unconditional(2),
	"-target":   args.Unconditional(2),
	"-o":        args.Unconditional(2),

	// Xcode adds these itself.
	"-fobjc-link-runtime":          args.Unconditional(1),
	"-fapplication-extension":      args.Unconditional(1),
	"-headerpad_max_install_names": args.Unconditional(1),
	"-Wl,-objc_abi_version,2":      args.Unconditional(1),

	"-no-canonical-prefixes": args.Unconditional(1),
	"-fcolor-diagnostics":    args.Unconditional(1),

	// wrapped_clang specific.
	"OSO_PREFIX_MAP_PWD": args.Unconditional(1),
})

// sections are the __TEXT sections Xcode creates from the entitlements and
// Info.plist build settings.
var sections = map[string]bool{
	"__entitlements": true,
	"__info_plist":   true,
}
