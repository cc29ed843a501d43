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

// Package printer prints the progress and outcome of batch runs to the console.
package printer

import (
	"sync"

	"github.com/fatih/color"
	log "github.com/golang/glog"
	"github.com/vardius/progress-go"
)

// Progress tracks completed steps. It is safe for concurrent use.
type Progress struct {
	mu      sync.Mutex
	done    int
	advance func()
	stop    func()
}

// Start prints header and starts a progress bar over count steps.
// No bar is shown when count is 0.
func Start(header string, count int) *Progress {
	Infof("%v", header)
	if count == 0 {
		return &Progress{advance: func() {}, stop: func() {}}
	}
	bar := progress.New(1, int64(count), progress.Options{
		Graph: ">",
	})
	bar.Start()
	return &Progress{
		advance: func() { bar.Advance(1) },
		stop: func() {
			if _, err := bar.Stop(); err != nil {
				log.Errorf("Failed to finish progress: %v", err)
			}
		},
	}
}

// Advance marks one more step as completed.
func (p *Progress) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.advance()
}

// Done stops the progress bar and returns the number of completed steps.
func (p *Progress) Done() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stop()
	p.stop = func() {}
	return p.done
}

// Errorf prints an error message to the console.
func Errorf(format string, args ...interface{}) {
	color.Red(format+"\n", args...)
}

// Warningf prints a warning message to the console.
func Warningf(format string, args ...interface{}) {
	color.Yellow(format+"\n", args...)
}

// Infof prints an info message to the console.
func Infof(format string, args ...interface{}) {
	color.Cyan(format+"\n", args...)
}

// Successf prints a success message to the console.
func Successf(format string, args ...interface{}) {
	color.Green(format+"\n", args...)
}
