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

// Package batch processes the params of many actions in parallel.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bazelbuild/xcparams/internal/pkg/paramsprocessor"
	"github.com/bazelbuild/xcparams/internal/pkg/printer"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	log "github.com/golang/glog"
)

// Manifest lists the jobs of a batch.
type Manifest struct {
	Jobs []paramsprocessor.Options `json:"jobs"`
}

// Result is the outcome of one job.
type Result struct {
	Job paramsprocessor.Options
	Err error
}

// ReadManifest reads the manifest at path. Jobs sharing an output are an error.
func ReadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m := &Manifest{}
	if err := json.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %v: %w", path, err)
	}
	dups := lo.FindDuplicatesBy(m.Jobs, func(j paramsprocessor.Options) string {
		return j.Output
	})
	if len(dups) > 0 {
		return nil, fmt.Errorf("manifest %v has more than one job writing %v", path, dups[0].Output)
	}
	return m, nil
}

// Run runs jobs with at most parallelism of them at a time, or all at once when
// parallelism is not positive. A failing job does not stop the others.
// Results are in the order of jobs.
func Run(ctx context.Context, jobs []paramsprocessor.Options, parallelism int) []Result {
	res := make([]Result, len(jobs))
	p := printer.Start(fmt.Sprintf("Processing params of %d actions", len(jobs)), len(jobs))
	g := new(errgroup.Group)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, j := range jobs {
		g.Go(func() error {
			err := paramsprocessor.Run(ctx, j)
			if err != nil {
				log.Errorf("Failed to process %v params into %v: %v", j.Variant, j.Output, err)
			}
			res[i] = Result{Job: j, Err: err}
			p.Advance()
			return nil
		})
	}
	g.Wait()
	p.Done()
	return res
}

// Failed returns the results of the jobs that failed.
func Failed(results []Result) []Result {
	return lo.Filter(results, func(r Result, _ int) bool {
		return r.Err != nil
	})
}
