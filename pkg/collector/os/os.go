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
	"context"
	"log/slog"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

// Collector reads OS identification from os-release and the kernel release
// from uname.
type Collector struct {
	// ReleasePaths overrides the os-release lookup order. Empty uses the
	// freedesktop.org locations.
	ReleasePaths []string
}

// Release returns OS identification. Hosts without os-release (macOS, BSD)
// yield empty name fields rather than an error.
func (c *Collector) Release(ctx context.Context) (facts.Release, error) {
	slog.Debug("collecting os release")

	if err := ctx.Err(); err != nil {
		return facts.Release{}, err
	}

	var rel facts.Release

	paths := c.ReleasePaths
	if len(paths) == 0 {
		paths = defaultReleasePaths
	}

	kv, err := readRelease(paths)
	if err != nil {
		slog.Debug("os release unavailable", slog.String("error", err.Error()))
	} else {
		rel.Name = kv["NAME"]
		rel.VersionID = kv["VERSION_ID"]
		rel.PrettyName = kv["PRETTY_NAME"]
	}

	kernel, err := kernelRelease()
	if err != nil {
		slog.Debug("uname unavailable", slog.String("error", err.Error()))
	}
	rel.KernelRelease = kernel

	return rel, nil
}
