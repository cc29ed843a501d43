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

// Package envflag sets flags from the command line, environment variables and a
// config file.
package envflag

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	log "github.com/golang/glog"
)

// CfgFlag is the name of the flag holding the config file.
const CfgFlag = "cfg"

// Prefixes are the environment variable prefixes of a flag, highest precedence first.
var Prefixes = []string{"XCPARAMS_", "FLAG_"}

// Parse parses the command line flags with ParseFlagSet, defining the cfg flag.
// It exits on error.
func Parse() {
	if flag.Parsed() {
		return
	}
	cfg := flag.String(CfgFlag, "", "Optional configuration file containing command-line argument settings")
	if err := ParseFlagSet(flag.CommandLine, os.Args[1:], cfg); err != nil {
		log.Exitf("Failed to parse flags: %v", err)
	}
}

// ParseFlagSet sets the flags of fs. A flag given in args wins over one set in the
// environment as XCPARAMS_<name>, which wins over FLAG_<name>. Flags set neither
// way are then read from the config file named by cfg, if any.
func ParseFlagSet(fs *flag.FlagSet, args []string, cfg *string) error {
	if err := setFromEnv(fs); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfg == "" {
		return nil
	}
	values, err := readConfig(*cfg)
	if err != nil {
		return fmt.Errorf("failed reading config file %v: %w", *cfg, err)
	}
	fs.Visit(func(f *flag.Flag) {
		delete(values, f.Name)
	})
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := fs.Set(k, values[k]); err != nil {
			log.Warningf("Failed to set flag %v to %q from %v: %v", k, values[k], *cfg, err)
		}
	}
	return nil
}

func setFromEnv(fs *flag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		for _, prefix := range Prefixes {
			v, ok := os.LookupEnv(prefix + f.Name)
			if !ok {
				continue
			}
			if serr := fs.Set(f.Name, v); serr != nil && err == nil {
				err = fmt.Errorf("invalid value %q for %v%v: %w", v, prefix, f.Name, serr)
			}
			return
		}
	})
	return err
}

// readConfig reads a config file with one flag per line. A name and its value are
// separated by the first '=' or whitespace; a name alone sets a boolean flag.
// Leading dashes are optional, and lines starting with '#' are comments.
func readConfig(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values := make(map[string]string)
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value := line, "true"
		if i := strings.IndexFunc(line, func(r rune) bool { return r == '=' || unicode.IsSpace(r) }); i >= 0 {
			name, value = line[:i], line[i+1:]
		}
		values[strings.TrimPrefix(strings.TrimPrefix(name, "-"), "-")] = value
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// LogAllFlags logs the current values of all flags.
func LogAllFlags(verbosity log.Level) {
	var cmd []string
	flag.VisitAll(func(f *flag.Flag) {
		cmd = append(cmd, fmt.Sprintf("--%v=%v", f.Name, f.Value))
	})
	log.V(verbosity).Infof("Command line flags:\n%s", strings.Join(cmd, " \\\n"))
}
