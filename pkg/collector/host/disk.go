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

	psdisk "github.com/shirou/gopsutil/v4/disk"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

// Volumes returns the mounted filesystems with their space counters.
// A mount whose usage cannot be read (stale network mount, permission denied)
// is left out.
func (c *Collector) Volumes(ctx context.Context) ([]facts.Volume, error) {
	slog.Debug("collecting volumes")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts, err := psdisk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read mount table: %w", err)
	}

	vols := make([]facts.Volume, 0, len(parts))
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		usage, err := psdisk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			slog.Warn("failed to read volume usage",
				slog.String("mountpoint", p.Mountpoint),
				slog.String("error", err.Error()))
			continue
		}

		vols = append(vols, facts.Volume{
			Name:       p.Device,
			MountPoint: p.Mountpoint,
			FSType:     p.Fstype,
			Total:      usage.Total,
			Available:  usage.Free,
		})
	}

	return vols, nil
}
