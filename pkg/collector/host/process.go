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

	psprocess "github.com/shirou/gopsutil/v4/process"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

const unknownStatus = "Unknown"

// Processes reads the live process table ordered by pid. Processes that exit
// while being read are skipped.
func (c *Collector) Processes(ctx context.Context) ([]facts.Process, error) {
	slog.Debug("collecting process table")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	procs, err := psprocess.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	title := cases.Title(language.English)
	out := make([]facts.Process, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, err := p.NameWithContext(ctx)
		if err != nil {
			slog.Debug("process vanished", slog.Int("pid", int(p.Pid)))
			continue
		}

		fp := facts.Process{
			PID:    p.Pid,
			Name:   name,
			Status: unknownStatus,
		}
		if pct, err := p.CPUPercentWithContext(ctx); err == nil {
			fp.CPUPercent = pct
		}
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			fp.VirtualMemory = mi.VMS
		}
		if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
			fp.Status = statusText(title, st[0])
		}

		out = append(out, fp)
	}

	return out, nil
}

// statusText renders a gopsutil status ("running", "sleep") for display.
func statusText(title cases.Caser, status string) string {
	if status == "" {
		return unknownStatus
	}
	return title.String(status)
}
