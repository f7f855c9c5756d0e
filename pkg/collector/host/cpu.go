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
	"strings"

	pscpu "github.com/shirou/gopsutil/v4/cpu"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

// CPUs returns one entry per logical core in enumeration order. Utilization is
// measured over CPUSampleInterval.
func (c *Collector) CPUs(ctx context.Context) ([]facts.CPU, error) {
	slog.Debug("collecting cpu table", slog.Duration("interval", c.CPUSampleInterval))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	usage, err := pscpu.PercentWithContext(ctx, c.CPUSampleInterval, true)
	if err != nil {
		return nil, fmt.Errorf("failed to read per-cpu utilization: %w", err)
	}

	infos, err := pscpu.InfoWithContext(ctx)
	if err != nil {
		// vendor and brand stay empty
		slog.Debug("cpu info unavailable", slog.String("error", err.Error()))
		infos = nil
	}

	return buildCPUs(usage, infos), nil
}

// buildCPUs pairs utilization samples with identity entries. Platforms that
// report a single package-level entry share it across all cores.
func buildCPUs(usage []float64, infos []pscpu.InfoStat) []facts.CPU {
	cpus := make([]facts.CPU, 0, len(usage))
	for i, u := range usage {
		cpu := facts.CPU{
			Name:  fmt.Sprintf("cpu%d", i),
			Usage: u,
		}

		var info *pscpu.InfoStat
		switch {
		case len(infos) == len(usage):
			info = &infos[i]
		case len(infos) > 0:
			info = &infos[0]
		}
		if info != nil {
			cpu.VendorID = strings.TrimSpace(info.VendorID)
			cpu.Brand = strings.TrimSpace(info.ModelName)
		}

		cpus = append(cpus, cpu)
	}
	return cpus
}
