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
	"encoding/json"
	"fmt"
)

const unknownText = "unknown"

// Fact is a host fact that may be unknown on the current platform.
// The zero value is unknown.
type Fact[T any] struct {
	v  T
	ok bool
}

// Known returns a Fact holding v.
func Known[T any](v T) Fact[T] {
	return Fact[T]{v: v, ok: true}
}

// Unknown returns a Fact with no value.
func Unknown[T any]() Fact[T] {
	return Fact[T]{}
}

// Get returns the value and whether it is known.
func (f Fact[T]) Get() (T, bool) {
	return f.v, f.ok
}

// IsKnown reports whether the fact holds a value.
func (f Fact[T]) IsKnown() bool {
	return f.ok
}

// OrElse returns the value, or def when unknown.
func (f Fact[T]) OrElse(def T) T {
	if !f.ok {
		return def
	}
	return f.v
}

// String renders the value, or "unknown".
func (f Fact[T]) String() string {
	if !f.ok {
		return unknownText
	}
	return fmt.Sprint(f.v)
}

// MarshalJSON encodes unknown facts as null.
func (f Fact[T]) MarshalJSON() ([]byte, error) {
	if !f.ok {
		return []byte("null"), nil
	}
	return json.Marshal(f.v)
}

// MarshalYAML encodes unknown facts as null.
func (f Fact[T]) MarshalYAML() (any, error) {
	if !f.ok {
		return nil, nil
	}
	return f.v, nil
}

// Family is the address family tag of an Interface record.
type Family uint8

const (
	// FamilyNone marks the placeholder record of an interface with no address.
	FamilyNone Family = 0
	FamilyIPv4 Family = 4
	FamilyIPv6 Family = 6
)

// MaxPrefix returns the largest valid prefix length for the family.
func (f Family) MaxPrefix() uint8 {
	switch f {
	case FamilyIPv4:
		return 32
	case FamilyIPv6:
		return 128
	default:
		return 0
	}
}

// SystemInfo describes the host as a whole. Memory counters are stored as
// reported; Used is not recomputed from Total and Free.
type SystemInfo struct {
	OSVersion     Fact[string] `json:"osVersion" yaml:"osVersion"`
	KernelVersion Fact[string] `json:"kernelVersion" yaml:"kernelVersion"`
	Hostname      Fact[string] `json:"hostname" yaml:"hostname"`
	Init          Fact[string] `json:"init" yaml:"init"`
	Cores         int          `json:"cores" yaml:"cores"`
	TotalRAM      uint64       `json:"totalRam" yaml:"totalRam"`
	FreeRAM       uint64       `json:"freeRam" yaml:"freeRam"`
	UsedRAM       uint64       `json:"usedRam" yaml:"usedRam"`
	TotalSwap     uint64       `json:"totalSwap" yaml:"totalSwap"`
	FreeSwap      uint64       `json:"freeSwap" yaml:"freeSwap"`
	UsedSwap      uint64       `json:"usedSwap" yaml:"usedSwap"`
}

// CPU is one logical core. Usage is a percentage as reported, not clamped.
type CPU struct {
	Name     string  `json:"name" yaml:"name"`
	Usage    float64 `json:"usage" yaml:"usage"`
	VendorID string  `json:"vendorId" yaml:"vendorId"`
	Brand    string  `json:"brand" yaml:"brand"`
}

// Disk is one mounted volume.
type Disk struct {
	Name           string `json:"name" yaml:"name"`
	MountPoint     string `json:"mountPoint" yaml:"mountPoint"`
	FSType         string `json:"fsType,omitempty" yaml:"fsType,omitempty"`
	TotalSpace     uint64 `json:"totalSpace" yaml:"totalSpace"`
	AvailableSpace uint64 `json:"availableSpace" yaml:"availableSpace"`
}

// Interface is one (interface, address) pair. An interface with N addresses
// yields N records sharing Name and MAC.
type Interface struct {
	Name   string       `json:"name" yaml:"name"`
	MAC    Fact[string] `json:"mac" yaml:"mac"`
	IP     string       `json:"ip,omitempty" yaml:"ip,omitempty"`
	Prefix uint8        `json:"prefix" yaml:"prefix"`
	Family Family       `json:"family" yaml:"family"`
}

// Process is a live process table entry. It is never cached.
type Process struct {
	PID           int32   `json:"pid" yaml:"pid"`
	Name          string  `json:"name" yaml:"name"`
	CPUUsage      float64 `json:"cpuUsage" yaml:"cpuUsage"`
	VirtualMemory uint64  `json:"virtualMemory" yaml:"virtualMemory"`
	Status        string  `json:"status" yaml:"status"`
}
