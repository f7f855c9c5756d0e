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

	psmem "github.com/shirou/gopsutil/v4/mem"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

// Memory returns RAM and swap counters exactly as the platform reports them.
func (c *Collector) Memory(ctx context.Context) (facts.Memory, error) {
	slog.Debug("collecting memory counters")

	if err := ctx.Err(); err != nil {
		return facts.Memory{}, err
	}

	vm, err := psmem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return facts.Memory{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}

	swap, err := psmem.SwapMemoryWithContext(ctx)
	if err != nil {
		return facts.Memory{}, fmt.Errorf("failed to read swap memory: %w", err)
	}

	return facts.Memory{
		Total:     vm.Total,
		Free:      vm.Free,
		Used:      vm.Used,
		SwapTotal: swap.Total,
		SwapFree:  swap.Free,
		SwapUsed:  swap.Used,
	}, nil
}
