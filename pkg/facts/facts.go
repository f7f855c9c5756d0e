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

// Package facts holds the raw host facts returned by collectors, shaped the way
// the platform reports them. Empty strings mean the platform did not supply a value;
// normalization into snapshot records happens in pkg/snapshotter.
package facts

// Host is the identity of the running system.
type Host struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
}

// Release is OS identification from os-release and uname.
type Release struct {
	Name          string
	VersionID     string
	PrettyName    string
	KernelRelease string
}

// CPU is one logical core as enumerated by the platform.
type CPU struct {
	Name     string
	VendorID string
	Brand    string
	Usage    float64
}

// Memory holds physical memory and swap counters in bytes.
type Memory struct {
	Total     uint64
	Free      uint64
	Used      uint64
	SwapTotal uint64
	SwapFree  uint64
	SwapUsed  uint64
}

// Volume is one mounted filesystem. Name and MountPoint are the raw bytes the
// mount table reported and may not be valid UTF-8.
type Volume struct {
	Name       string
	MountPoint string
	FSType     string
	Total      uint64
	Available  uint64
}

// Interface is one network interface with its bound addresses in CIDR form.
type Interface struct {
	Name  string
	MAC   string
	MTU   int
	Flags []string
	Addrs []string
}

// Process is one entry of the live process table.
type Process struct {
	PID           int32
	Name          string
	CPUPercent    float64
	VirtualMemory uint64
	Status        string
}

// Init describes the init system.
type Init struct {
	Name    string
	Version string
	State   string
}
