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

package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/NVIDIA/sysnet/pkg/snapshotter"
)

const (
	tab = "   "

	// RAM, swap and process memory are reported in decimal megabytes per 1000
	// bytes, disk space in binary megabytes.
	memDivisor  = 1000
	diskDivisor = 1024 * 1024
)

// Source is the read side of a host snapshot.
type Source interface {
	SystemInfo() snapshotter.SystemInfo
	CPUs() []snapshotter.CPU
	Disks() []snapshotter.Disk
	Interfaces() []snapshotter.Interface
	Processes(ctx context.Context) ([]snapshotter.Process, error)
}

// Reporter renders snapshot sections as human-readable text.
type Reporter struct {
	w   io.Writer
	src Source
}

// New returns a Reporter writing to w.
func New(w io.Writer, src Source) *Reporter {
	return &Reporter{w: w, src: src}
}

// System writes the host summary. With indent every line is shifted by one tab.
func (r *Reporter) System(indent bool) error {
	bw := bufio.NewWriter(r.w)
	writeSystem(bw, r.src.SystemInfo(), indent)
	return bw.Flush()
}

// Network writes interfaces grouped by name in first-seen order: the name,
// one "ip/prefix" line per address, then the MAC.
func (r *Reporter) Network() error {
	bw := bufio.NewWriter(r.w)
	writeNetwork(bw, r.src.Interfaces())
	return bw.Flush()
}

// CPUs writes one block per logical core.
func (r *Reporter) CPUs() error {
	bw := bufio.NewWriter(r.w)
	writeCPUs(bw, r.src.CPUs())
	return bw.Flush()
}

// Disks writes one block per mounted volume.
func (r *Reporter) Disks() error {
	bw := bufio.NewWriter(r.w)
	writeDisks(bw, r.src.Disks())
	return bw.Flush()
}

// Processes reads the live process table and writes one block per process.
func (r *Reporter) Processes(ctx context.Context) error {
	procs, err := r.src.Processes(ctx)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(r.w)
	for _, p := range procs {
		fmt.Fprintf(bw, "%d - %s\n", p.PID, p.Name)
		fmt.Fprintf(bw, "%sCPU usage: %s%%\n", tab, formatFloat(p.CPUUsage))
		fmt.Fprintf(bw, "%sMem usage: %dMB\n", tab, p.VirtualMemory/memDivisor)
		fmt.Fprintf(bw, "%sStatus: %s\n\n", tab, p.Status)
	}
	return bw.Flush()
}

// All writes the system, network, CPU and disk sections under headings.
func (r *Reporter) All() error {
	bw := bufio.NewWriter(r.w)

	fmt.Fprintln(bw, "System:")
	writeSystem(bw, r.src.SystemInfo(), true)

	fmt.Fprintln(bw, "\nNetwork interfaces:")
	writeNetwork(bw, r.src.Interfaces())

	fmt.Fprintln(bw, "\nCPUs:")
	writeCPUs(bw, r.src.CPUs())

	fmt.Fprintln(bw, "\ndisks:")
	writeDisks(bw, r.src.Disks())

	return bw.Flush()
}

func writeSystem(w io.Writer, s snapshotter.SystemInfo, indent bool) {
	pad := ""
	if indent {
		pad = tab
	}

	fmt.Fprintf(w, "%sHosname: %s\n", pad, s.Hostname)
	fmt.Fprintf(w, "%sOS : %s\n", pad, s.OSVersion)
	fmt.Fprintf(w, "%skernel : %s\n", pad, s.KernelVersion)
	fmt.Fprintf(w, "%sCores : %d\n", pad, s.Cores)
	fmt.Fprintf(w, "%sRAM\n", pad)
	fmt.Fprintf(w, "%s%sTotal RAM: %dMB\n", tab, pad, s.TotalRAM/memDivisor)
	fmt.Fprintf(w, "%s%sFree  RAM: %dMB\n", tab, pad, s.FreeRAM/memDivisor)
	fmt.Fprintf(w, "%s%sUsed  RAM: %dMB\n", tab, pad, s.UsedRAM/memDivisor)
	fmt.Fprintf(w, "%sSwap\n", pad)
	fmt.Fprintf(w, "%s%sTotal Swap: %dMB\n", tab, pad, s.TotalSwap/memDivisor)
	fmt.Fprintf(w, "%s%sFree  Swap: %dMB\n", tab, pad, s.FreeSwap/memDivisor)
	fmt.Fprintf(w, "%s%sUsed  Swap: %dMB\n", tab, pad, s.UsedSwap/memDivisor)
	if s.Init.IsKnown() {
		fmt.Fprintf(w, "%sInit : %s\n", pad, s.Init)
	}
}

// ifaceGroup is every record of one interface.
type ifaceGroup struct {
	name    string
	mac     snapshotter.Fact[string]
	records []snapshotter.Interface
}

func groupInterfaces(ifaces []snapshotter.Interface) []*ifaceGroup {
	var groups []*ifaceGroup
	byName := make(map[string]*ifaceGroup)
	for _, ifc := range ifaces {
		g, ok := byName[ifc.Name]
		if !ok {
			g = &ifaceGroup{name: ifc.Name, mac: ifc.MAC}
			byName[ifc.Name] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, ifc)
	}
	return groups
}

func writeNetwork(w io.Writer, ifaces []snapshotter.Interface) {
	for i, g := range groupInterfaces(ifaces) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g.name)
		for _, ifc := range g.records {
			if ifc.Family == snapshotter.FamilyNone {
				fmt.Fprintf(w, "%sno address\n", tab)
				continue
			}
			fmt.Fprintf(w, "%s%s/%d\n", tab, ifc.IP, ifc.Prefix)
		}
		fmt.Fprintf(w, "%s%s\n", tab, g.mac)
	}
}

func writeCPUs(w io.Writer, cpus []snapshotter.CPU) {
	for _, c := range cpus {
		fmt.Fprintln(w, c.Name)
		fmt.Fprintf(w, "%sUsage: %s%%\n", tab, formatFloat(truncate2(c.Usage)))
		fmt.Fprintf(w, "%sVendor: %s\n", tab, c.VendorID)
		fmt.Fprintf(w, "%sCore: %s\n", tab, c.Brand)
	}
}

func writeDisks(w io.Writer, disks []snapshotter.Disk) {
	for _, d := range disks {
		fmt.Fprintln(w, d.Name)
		fmt.Fprintf(w, "%sMount point : %s\n", tab, d.MountPoint)
		fmt.Fprintf(w, "%sAvailable space : %dMB\n", tab, d.AvailableSpace/diskDivisor)
		fmt.Fprintf(w, "%sTotal space : %dMB\n", tab, d.TotalSpace/diskDivisor)
	}
}

// truncate2 drops digits past the second decimal without rounding.
func truncate2(v float64) float64 {
	return math.Trunc(v*100) / 100
}

// formatFloat prints the shortest single-precision form: 12.34, 0.5, 100.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}
