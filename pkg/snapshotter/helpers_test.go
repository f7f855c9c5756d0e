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
	"sync"

	"github.com/NVIDIA/sysnet/pkg/collector"
	"github.com/NVIDIA/sysnet/pkg/facts"
)

// fakeHost is a scripted collector.HostProvider. Fields may be swapped
// between calls to simulate a changing host.
type fakeHost struct {
	mu sync.Mutex

	host      facts.Host
	cpus      []facts.CPU
	memory    facts.Memory
	volumes   []facts.Volume
	processes []facts.Process

	hostErr    error
	cpuErr     error
	volumeErr  error
	processErr error
	calls      int
}

func (f *fakeHost) Host(context.Context) (facts.Host, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.host, f.hostErr
}

func (f *fakeHost) CPUs(context.Context) ([]facts.CPU, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]facts.CPU(nil), f.cpus...), f.cpuErr
}

func (f *fakeHost) Memory(context.Context) (facts.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.memory, nil
}

func (f *fakeHost) Volumes(context.Context) ([]facts.Volume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]facts.Volume(nil), f.volumes...), f.volumeErr
}

func (f *fakeHost) Processes(context.Context) ([]facts.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]facts.Process(nil), f.processes...), f.processErr
}

type fakeNetwork struct {
	mu     sync.Mutex
	ifaces []facts.Interface
	err    error
}

func (f *fakeNetwork) Interfaces(context.Context) ([]facts.Interface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]facts.Interface(nil), f.ifaces...), f.err
}

type fakeRelease struct {
	rel facts.Release
}

func (f *fakeRelease) Release(context.Context) (facts.Release, error) {
	return f.rel, nil
}

type fakeInit struct {
	in  facts.Init
	err error
}

func (f *fakeInit) Init(context.Context) (facts.Init, error) {
	return f.in, f.err
}

type fakeFactory struct {
	host    *fakeHost
	network *fakeNetwork
	release *fakeRelease
	init    *fakeInit
}

var _ collector.Factory = (*fakeFactory)(nil)

func (f *fakeFactory) CreateHostProvider() collector.HostProvider               { return f.host }
func (f *fakeFactory) CreateInterfaceEnumerator() collector.InterfaceEnumerator { return f.network }
func (f *fakeFactory) CreateReleaseReader() collector.ReleaseReader             { return f.release }
func (f *fakeFactory) CreateInitProvider() collector.InitProvider               { return f.init }

// newFakeFactory returns a factory describing a small dual-stack Linux host.
func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		host: &fakeHost{
			host: facts.Host{
				Hostname:        "node-1",
				Platform:        "ubuntu",
				PlatformVersion: "24.04",
				KernelVersion:   "6.8.0-45-generic",
				KernelArch:      "x86_64",
			},
			cpus: []facts.CPU{
				{Name: "cpu0", VendorID: "GenuineIntel", Brand: "Intel(R) Xeon(R)", Usage: 12.345},
				{Name: "cpu1", VendorID: "GenuineIntel", Brand: "Intel(R) Xeon(R)", Usage: 99.999},
			},
			memory: facts.Memory{
				Total: 16_000_000_000, Free: 4_000_000_000, Used: 12_000_000_000,
				SwapTotal: 2_000_000_000, SwapFree: 1_500_000_000, SwapUsed: 500_000_000,
			},
			volumes: []facts.Volume{
				{Name: "/dev/sda1", MountPoint: "/", FSType: "ext4", Total: 1_073_741_824, Available: 536_870_912},
				{Name: "/dev/sdb1", MountPoint: "/data", FSType: "xfs", Total: 2_147_483_648, Available: 2_147_483_648},
			},
			processes: []facts.Process{
				{PID: 42, Name: "sshd", CPUPercent: 0.5, VirtualMemory: 12_000_000, Status: "Sleep"},
				{PID: 1, Name: "systemd", CPUPercent: 0.1, VirtualMemory: 170_000_000, Status: "Sleep"},
			},
		},
		network: &fakeNetwork{
			ifaces: []facts.Interface{
				{Name: "eth0", MAC: "00:11:22:33:44:55", Addrs: []string{"10.0.0.5/24", "fe80::1/64"}},
			},
		},
		release: &fakeRelease{
			rel: facts.Release{Name: "Ubuntu", VersionID: "24.04", KernelRelease: "6.8.0-45-generic"},
		},
		init: &fakeInit{
			in: facts.Init{Name: "systemd", Version: "255", State: "running"},
		},
	}
}
