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

package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pshost "github.com/shirou/gopsutil/v4/host"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

// Collector reads host facts through gopsutil.
type Collector struct {
	// CPUSampleInterval is the window for per-core utilization. Zero compares
	// against the previous sample instead of blocking.
	CPUSampleInterval time.Duration
}

// Host returns the hostname, platform and kernel identity.
func (c *Collector) Host(ctx context.Context) (facts.Host, error) {
	slog.Debug("collecting host identity")

	if err := ctx.Err(); err != nil {
		return facts.Host{}, err
	}

	info, err := pshost.InfoWithContext(ctx)
	if err != nil {
		return facts.Host{}, fmt.Errorf("failed to read host info: %w", err)
	}

	return facts.Host{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
	}, nil
}
