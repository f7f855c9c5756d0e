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

package network

import (
	"context"
	"fmt"
	"log/slog"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

// Collector enumerates network interfaces through gopsutil.
type Collector struct{}

// Interfaces returns every interface in platform order with its bound
// addresses in CIDR form. Interfaces without addresses are included.
func (c *Collector) Interfaces(ctx context.Context) ([]facts.Interface, error) {
	slog.Debug("collecting network interfaces")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	return fromStats(list), nil
}

func fromStats(list []psnet.InterfaceStat) []facts.Interface {
	out := make([]facts.Interface, 0, len(list))
	for _, iface := range list {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}
		out = append(out, facts.Interface{
			Name:  iface.Name,
			MAC:   iface.HardwareAddr,
			MTU:   iface.MTU,
			Flags: iface.Flags,
			Addrs: addrs,
		})
	}
	return out
}
