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

// Main package for the xcparams binary.
//
// xcparams translates the params of a Bazel compile or link action into the build
// settings Xcode uses to build and debug the same target:
//
//	xcparams --variant=swift --output=swift.flags -- @bazel-out/a.swiftc.params
//
// Many actions can be processed in parallel from a manifest:
//
//	xcparams --manifest=jobs.json --parallelism=8
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bazelbuild/xcparams/internal/pkg/batch"
	"github.com/bazelbuild/xcparams/internal/pkg/envflag"
	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor"
	"github.com/bazelbuild/xcparams/internal/pkg/printer"
	"github.com/bazelbuild/xcparams/pkg/version"

	"github.com/bazelbuild/remote-apis-sdks/go/pkg/moreflag"

	log "github.com/golang/glog"
)

var (
	opts        = paramsprocessor.Options{}
	variant     string
	manifest    string
	parallelism int
)

func initFlags() {
	vs := make([]string, len(paramsprocessor.Variants))
	for i, v := range paramsprocessor.Variants {
		vs[i] = string(v)
	}
	flag.StringVar(&variant, "variant", "", fmt.Sprintf("The kind of params to process, one of %s.", strings.Join(vs, ", ")))
	flag.StringVar(&opts.Output, "output", "", "The file to write the processed params to.")
	flag.Var((*moreflag.StringListValue)(&opts.Generated), "generated_paths", "Comma-separated paths, or doublestar patterns, of files Xcode produces itself. They are not passed to the linker.")
	flag.Var((*moreflag.StringMapValue)(&opts.Replacements), "replacement_paths", "Comma-separated pairs in the form bazel_path=xcode_path of linker inputs that Xcode produces at another path.")
	flag.Var((*moreflag.StringListValue)(&opts.SelfLinked), "self_linked_paths", "Comma-separated artifacts of the target being linked. Only used by the link-self variant.")
	flag.StringVar(&manifest, "manifest", "", "A JSON file listing many jobs to process. When set, --variant and --output are ignored.")
	flag.IntVar(&parallelism, "parallelism", 0, "The maximum number of manifest jobs processed at once. All jobs run at once if not positive.")
}

func main() {
	initFlags()
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [-flags] -- <@params|arg>...\n       %v --manifest=<jobs.json> [-flags]\n", path.Base(os.Args[0]), path.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	version.PrintAndExitOnVersionFlag(false)
	envflag.LogAllFlags(1)
	ctx := context.Background()

	if manifest != "" {
		runManifest(ctx)
		return
	}
	v, err := paramsprocessor.ParseVariant(variant)
	if err != nil {
		flag.Usage()
		log.Exitf("Invalid --variant: %v", err)
	}
	if opts.Output == "" {
		flag.Usage()
		log.Exit("No --output provided")
	}
	opts.Variant = v
	opts.Args = flag.Args()
	if err := paramsprocessor.Run(ctx, opts); err != nil {
		log.Exitf("Failed to process %v params: %v", v, err)
	}
}

func runManifest(ctx context.Context) {
	m, err := batch.ReadManifest(manifest)
	if err != nil {
		log.Exitf("%v", err)
	}
	failed := batch.Failed(batch.Run(ctx, m.Jobs, parallelism))
	if len(failed) == 0 {
		printer.Successf("Processed params of %d actions", len(m.Jobs))
		return
	}
	for _, r := range failed {
		printer.Errorf("%v -> %v: %v", r.Job.Variant, r.Job.Output, r.Err)
	}
	log.Exitf("Failed to process %d of %d actions", len(failed), len(m.Jobs))
}
