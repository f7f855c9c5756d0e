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

package snapshotter

import (
	"fmt"
	"log/slog"
	"net/netip"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/sysnet/pkg/errors"
	"github.com/NVIDIA/sysnet/pkg/facts"
)

// Mandatory field names reported in lookup failures.
const (
	fieldHostname   = "hostname"
	fieldOSVersion  = "os-version"
	fieldKernel     = "kernel-version"
	fieldMAC        = "mac"
	fieldDiskName   = "disk-name"
	fieldMountPoint = "mount-point"
	fieldAddress    = "address"
)

// lookupFailed builds the error returned for a missing mandatory fact in strict mode.
func lookupFailed(field string, ctx map[string]any) error {
	if ctx == nil {
		ctx = make(map[string]any, 1)
	}
	ctx["field"] = field
	return errors.NewWithContext(errors.ErrCodeLookupFailed,
		fmt.Sprintf("mandatory host fact %q unavailable", field), ctx)
}

// buildSystemInfo merges host, release, memory and init facts. Cores is set
// by the caller from the CPU table.
func buildSystemInfo(h facts.Host, rel facts.Release, mem facts.Memory, in facts.Init, strict bool) (SystemInfo, error) {
	info := SystemInfo{
		TotalRAM:  mem.Total,
		FreeRAM:   mem.Free,
		UsedRAM:   mem.Used,
		TotalSwap: mem.SwapTotal,
		FreeSwap:  mem.SwapFree,
		UsedSwap:  mem.SwapUsed,
	}

	if h.Hostname != "" {
		info.Hostname = Known(h.Hostname)
	} else if strict {
		return SystemInfo{}, lookupFailed(fieldHostname, nil)
	} else {
		slog.Warn("hostname unavailable")
	}

	name, version := rel.Name, rel.VersionID
	if name == "" {
		name, version = h.Platform, h.PlatformVersion
	}
	switch {
	case name != "" && version != "":
		info.OSVersion = Known(name + " " + version)
	case strict:
		return SystemInfo{}, lookupFailed(fieldOSVersion, map[string]any{"name": name, "version": version})
	case name != "":
		slog.Warn("os version unavailable", slog.String("name", name))
		info.OSVersion = Known(name)
	default:
		slog.Warn("os name unavailable")
	}

	kernel := h.KernelVersion
	if kernel == "" {
		kernel = rel.KernelRelease
	}
	if kernel != "" {
		info.KernelVersion = Known(kernel)
	} else if strict {
		return SystemInfo{}, lookupFailed(fieldKernel, nil)
	} else {
		slog.Warn("kernel version unavailable")
	}

	if in.Name != "" {
		info.Init = Known(strings.TrimSpace(in.Name + " " + in.Version))
	}

	return info, nil
}

// normalizeCPUs keeps enumeration order and synthesizes no aggregate record.
func normalizeCPUs(raw []facts.CPU) []CPU {
	out := make([]CPU, 0, len(raw))
	for _, c := range raw {
		out = append(out, CPU{
			Name:     c.Name,
			Usage:    c.Usage,
			VendorID: c.VendorID,
			Brand:    c.Brand,
		})
	}
	return out
}

// normalizeDisks requires name and mount point to be valid text. Space
// counters are copied verbatim.
func normalizeDisks(raw []facts.Volume, strict bool) ([]Disk, error) {
	out := make([]Disk, 0, len(raw))
	for _, v := range raw {
		name, err := diskText(fieldDiskName, v.Name, strict)
		if err != nil {
			return nil, err
		}
		mount, err := diskText(fieldMountPoint, v.MountPoint, strict)
		if err != nil {
			return nil, err
		}
		out = append(out, Disk{
			Name:           name,
			MountPoint:     mount,
			FSType:         v.FSType,
			TotalSpace:     v.Total,
			AvailableSpace: v.Available,
		})
	}
	return out, nil
}

func diskText(field, s string, strict bool) (string, error) {
	if utf8.ValidString(s) {
		return s, nil
	}
	if strict {
		return "", lookupFailed(field, map[string]any{"raw": strconv.Quote(s)})
	}
	slog.Warn("disk path is not valid text", slog.String("field", field), slog.String("raw", strconv.Quote(s)))
	return strings.ToValidUTF8(s, "\uFFFD"), nil
}

// normalizeInterfaces fans each interface out to one record per bound address.
func normalizeInterfaces(raw []facts.Interface, strict, unaddressed bool) ([]Interface, error) {
	out := make([]Interface, 0, len(raw))
	for _, ifc := range raw {
		mac := Unknown[string]()
		if ifc.MAC != "" {
			mac = Known(ifc.MAC)
		} else if strict && (len(ifc.Addrs) > 0 || unaddressed) {
			// Only interfaces that yield records need a MAC.
			return nil, lookupFailed(fieldMAC, map[string]any{"interface": ifc.Name})
		}

		n := len(out)
		for _, a := range ifc.Addrs {
			ip, prefix, family, err := parseAddr(a)
			if err != nil {
				if strict {
					return nil, errors.WrapWithContext(errors.ErrCodeLookupFailed, "invalid interface address", err,
						map[string]any{"field": fieldAddress, "interface": ifc.Name, "address": a})
				}
				slog.Warn("skipping invalid interface address",
					slog.String("interface", ifc.Name),
					slog.String("address", a),
					slog.String("error", err.Error()))
				continue
			}
			out = append(out, Interface{
				Name:   ifc.Name,
				MAC:    mac,
				IP:     ip.String(),
				Prefix: prefix,
				Family: family,
			})
		}

		if len(out) == n && unaddressed {
			out = append(out, Interface{
				Name:   ifc.Name,
				MAC:    mac,
				Family: FamilyNone,
			})
		}
	}
	return out, nil
}

// parseAddr accepts "addr", "addr/bits" and zoned IPv6 forms ("fe80::1%eth0/64").
// A bare address gets the full-length prefix. Only pure IPv4 is FamilyIPv4;
// IPv4-mapped IPv6 stays FamilyIPv6.
func parseAddr(s string) (netip.Addr, uint8, Family, error) {
	host, bits, hasBits := strings.Cut(strings.TrimSpace(s), "/")
	host, _, _ = strings.Cut(host, "%")

	ip, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, 0, FamilyNone, err
	}

	family := FamilyIPv6
	if ip.Is4() {
		family = FamilyIPv4
	}

	prefix := family.MaxPrefix()
	if hasBits {
		n, err := strconv.ParseUint(bits, 10, 8)
		if err != nil {
			return netip.Addr{}, 0, FamilyNone, fmt.Errorf("invalid prefix length %q: %w", bits, err)
		}
		if uint8(n) > family.MaxPrefix() {
			return netip.Addr{}, 0, FamilyNone, fmt.Errorf("prefix length %d exceeds %d", n, family.MaxPrefix())
		}
		prefix = uint8(n)
	}

	return ip, prefix, family, nil
}
