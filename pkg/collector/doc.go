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

// Package collector provides the interfaces and production implementations that
// read raw host facts for a snapshot.
//
// # Overview
//
// The snapshot core never talks to the operating system directly. It asks four
// providers for platform-shaped facts (pkg/facts) and normalizes them itself:
//
//	type HostProvider interface {
//	    Host(ctx context.Context) (facts.Host, error)
//	    CPUs(ctx context.Context) ([]facts.CPU, error)
//	    Memory(ctx context.Context) (facts.Memory, error)
//	    Volumes(ctx context.Context) ([]facts.Volume, error)
//	    Processes(ctx context.Context) ([]facts.Process, error)
//	}
//
//	type InterfaceEnumerator interface {
//	    Interfaces(ctx context.Context) ([]facts.Interface, error)
//	}
//
// ReleaseReader and InitProvider supply OS identification and init system details.
//
// # Factory Pattern
//
// The Factory interface abstracts provider creation so tests can inject fakes:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithCPUSampleInterval(500 * time.Millisecond),
//	)
//	hp := factory.CreateHostProvider()
//	cpus, err := hp.CPUs(ctx)
//
// # Subpackages
//
//   - collector/host - host identity, CPU table, memory, volumes, processes (gopsutil)
//   - collector/network - interfaces and bound addresses (gopsutil)
//   - collector/os - /etc/os-release and uname
//   - collector/systemd - init system over D-Bus
//
// # Error Handling
//
// Providers return errors when a whole query fails (e.g. the mount table cannot
// be read). Individual missing fields are reported as empty strings; deciding
// whether that is fatal belongs to the snapshot's lookup policy.
package collector
