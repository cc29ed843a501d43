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

// Package rsp provides the ability to read params files and flatten argument groups
// into a single token stream.
package rsp

import (
	"fmt"
	"os"
	"strings"

	log "github.com/golang/glog"
)

// Group is one argument group. It is either a params file (Path set) or a list of
// literal arguments.
type Group struct {
	// Path is a params file whose lines are arguments.
	Path string

	// Args are literal arguments, used when Path is empty.
	Args []string
}

// FromArgs converts command line arguments into groups. An argument of the form
// "@path" names a params file; runs of other arguments form literal groups.
func FromArgs(args []string) []Group {
	var groups []Group
	var literal []string
	for _, a := range args {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			if len(literal) > 0 {
				groups = append(groups, Group{Args: literal})
				literal = nil
			}
			groups = append(groups, Group{Path: a[1:]})
			continue
		}
		literal = append(literal, a)
	}
	if len(literal) > 0 {
		groups = append(groups, Group{Args: literal})
	}
	return groups
}

// Tokens flattens the given groups into one token stream, preserving the order of
// groups and of the arguments within them. Every token is unquoted.
// A params file that cannot be read is an error.
func Tokens(groups ...Group) ([]string, error) {
	var res []string
	for _, g := range groups {
		if g.Path == "" {
			for _, a := range g.Args {
				res = append(res, Unquote(a))
			}
			continue
		}
		toks, err := Parse(g.Path)
		if err != nil {
			return nil, err
		}
		res = append(res, toks...)
	}
	return res, nil
}

// Parse reads the params file at path and returns its arguments, one per line.
// A line of the form "@other" is replaced by the lines of that file. Expansion is
// done once: "@" lines inside the nested file are kept as they are.
func Parse(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, l := range lines {
		if strings.HasPrefix(l, "@") && len(l) > 1 {
			nested, err := ReadLines(l[1:])
			if err != nil {
				return nil, err
			}
			log.V(2).Infof("Expanded %v from params file %v into %d arguments", l, path, len(nested))
			for _, n := range nested {
				res = append(res, Unquote(n))
			}
			continue
		}
		res = append(res, Unquote(l))
	}
	return res, nil
}

// ReadLines returns the lines of the file at path with exactly one line terminator
// stripped from each. Empty lines are kept; a final terminator does not produce an
// extra empty line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file %q: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = trimTerminator(l)
	}
	return lines, nil
}

func trimTerminator(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2]
	}
	return strings.TrimSuffix(line, "\n")
}

// Unquote strips a single pair of single quotes wrapping the whole token, as written
// by the "multiline" params file format. Other tokens are returned unchanged.
func Unquote(tok string) string {
	if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		return tok[1 : len(tok)-1]
	}
	return tok
}
