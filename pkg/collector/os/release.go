// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package os

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const maxReleaseSize = 1 << 16

// Primary location first, then the vendor fallback from os-release(5).
var defaultReleasePaths = []string{
	"/etc/os-release",
	"/usr/lib/os-release",
}

// readRelease parses the first os-release file that exists.
func readRelease(paths []string) (map[string]string, error) {
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", p, err)
		}
		kv, err := parseRelease(io.LimitReader(f, maxReleaseSize))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", p, err)
		}
		return kv, nil
	}
	return nil, fmt.Errorf("no os-release file in %v: %w", paths, os.ErrNotExist)
}

// parseRelease reads KEY=value lines, dropping comments, blank lines, lines
// without '=' and surrounding quotes.
//
//	NAME="Ubuntu"
//	VERSION_ID="24.04"
//	PRETTY_NAME="Ubuntu 24.04.1 LTS"
func parseRelease(r io.Reader) (map[string]string, error) {
	kv := make(map[string]string, 16)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line is not valid UTF-8: %q", line)
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" || value == "" {
			continue
		}
		kv[key] = value
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return kv, nil
}
