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
	"context"
	"time"

	"github.com/NVIDIA/sysnet/pkg/header"
	"github.com/NVIDIA/sysnet/pkg/measurement"
)

const (
	// APIGroup is the API group of exported resources.
	APIGroup = "sysnet.nvidia.com"
	// APIVersion is the version of exported resources.
	APIVersion = "v1alpha1"
	// FullAPIVersion is the apiVersion field of exported resources.
	FullAPIVersion = APIGroup + "/" + APIVersion
)

// Snapshot is the exportable form of a Device.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Measurements holds one entry per selected record family.
	Measurements []*measurement.Measurement `json:"measurements" yaml:"measurements"`

	// Processes is set only when the caller attaches a live process table read.
	Processes []Process `json:"processes,omitempty" yaml:"processes,omitempty"`
}

// ProcessList is the exportable form of a live process table read.
type ProcessList struct {
	header.Header `json:",inline" yaml:",inline"`

	Processes []Process `json:"processes" yaml:"processes"`
}

// Snapshot exports the cached records as measurements. With no types every
// family is included, in measurement.Types order.
func (d *Device) Snapshot(types ...measurement.Type) *Snapshot {
	d.mu.RLock()
	st := d.state
	d.mu.RUnlock()

	if len(types) == 0 {
		types = measurement.Types
	}

	opts := []header.Option{
		header.WithKind(header.KindSnapshot),
		header.WithAPIVersion(FullAPIVersion),
		header.WithMetadata(header.MetaID, st.id),
		header.WithMetadata(header.MetaTimestamp, st.collectedAt.Format(time.RFC3339)),
	}
	if d.version != "" {
		opts = append(opts, header.WithMetadata(header.MetaVersion, d.version))
	}
	if h, ok := st.system.Hostname.Get(); ok {
		opts = append(opts, header.WithMetadata(header.MetaHostname, h))
	}

	snap := &Snapshot{
		Header:       *header.New(opts...),
		Measurements: make([]*measurement.Measurement, 0, len(types)),
	}

	for _, t := range types {
		switch t {
		case measurement.TypeSystem:
			snap.Measurements = append(snap.Measurements, systemMeasurement(st.system))
		case measurement.TypeCPU:
			snap.Measurements = append(snap.Measurements, cpuMeasurement(st.cpus))
		case measurement.TypeDisk:
			snap.Measurements = append(snap.Measurements, diskMeasurement(st.disks))
		case measurement.TypeNetwork:
			snap.Measurements = append(snap.Measurements, networkMeasurement(st.interfaces))
		}
	}

	return snap
}

// ProcessList reads the live process table into an exportable list.
func (d *Device) ProcessList(ctx context.Context) (*ProcessList, error) {
	procs, err := d.Processes(ctx)
	if err != nil {
		return nil, err
	}

	pl := &ProcessList{Processes: procs}
	pl.InitWithClock(d.clock, header.KindProcessList, FullAPIVersion, d.version)

	return pl, nil
}

func systemMeasurement(s SystemInfo) *measurement.Measurement {
	b := measurement.NewSubtypeBuilder("host").
		SetInt(measurement.KeyCores, s.Cores).
		SetUint64(measurement.KeyRAMTotal, s.TotalRAM).
		SetUint64(measurement.KeyRAMFree, s.FreeRAM).
		SetUint64(measurement.KeyRAMUsed, s.UsedRAM).
		SetUint64(measurement.KeySwapTotal, s.TotalSwap).
		SetUint64(measurement.KeySwapFree, s.FreeSwap).
		SetUint64(measurement.KeySwapUsed, s.UsedSwap)

	setFact(b, measurement.KeyHostname, s.Hostname)
	setFact(b, measurement.KeyOSVersion, s.OSVersion)
	setFact(b, measurement.KeyKernel, s.KernelVersion)
	setFact(b, measurement.KeyInit, s.Init)

	return measurement.NewMeasurement(measurement.TypeSystem).WithSubtypeBuilder(b).Build()
}

func cpuMeasurement(cpus []CPU) *measurement.Measurement {
	mb := measurement.NewMeasurement(measurement.TypeCPU)
	for _, c := range cpus {
		mb.WithSubtypeBuilder(measurement.NewSubtypeBuilder(c.Name).
			SetFloat64(measurement.KeyUsage, c.Usage).
			SetString(measurement.KeyVendor, c.VendorID).
			SetString(measurement.KeyBrand, c.Brand))
	}
	return mb.Build()
}

func diskMeasurement(disks []Disk) *measurement.Measurement {
	mb := measurement.NewMeasurement(measurement.TypeDisk)
	for _, dk := range disks {
		b := measurement.NewSubtypeBuilder(dk.Name).
			SetString(measurement.KeyMountPoint, dk.MountPoint).
			SetUint64(measurement.KeyTotal, dk.TotalSpace).
			SetUint64(measurement.KeyAvailable, dk.AvailableSpace)
		if dk.FSType != "" {
			b.SetContext("fstype", dk.FSType)
		}
		mb.WithSubtypeBuilder(b)
	}
	return mb.Build()
}

func networkMeasurement(ifaces []Interface) *measurement.Measurement {
	mb := measurement.NewMeasurement(measurement.TypeNetwork)
	for _, ifc := range ifaces {
		b := measurement.NewSubtypeBuilder(ifc.Name).
			SetInt(measurement.KeyFamily, int(ifc.Family))
		setFact(b, measurement.KeyMAC, ifc.MAC)
		if ifc.Family != FamilyNone {
			b.SetString(measurement.KeyIP, ifc.IP).
				SetInt(measurement.KeyPrefix, int(ifc.Prefix))
		}
		mb.WithSubtypeBuilder(b)
	}
	return mb.Build()
}

func setFact(b *measurement.SubtypeBuilder, key string, f Fact[string]) {
	v, ok := f.Get()
	b.SetIfKnown(key, v, ok)
}
