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

package collector

import (
	"context"

	"github.com/NVIDIA/sysnet/pkg/facts"
)

// HostProvider answers the OS-level queries a snapshot needs. Every call is a
// live query against the host; implementations do not cache.
type HostProvider interface {
	Host(ctx context.Context) (facts.Host, error)
	CPUs(ctx context.Context) ([]facts.CPU, error)
	Memory(ctx context.Context) (facts.Memory, error)
	Volumes(ctx context.Context) ([]facts.Volume, error)
	Processes(ctx context.Context) ([]facts.Process, error)
}

// InterfaceEnumerator lists network interfaces in platform order.
type InterfaceEnumerator interface {
	Interfaces(ctx context.Context) ([]facts.Interface, error)
}

// ReleaseReader reads OS identification.
type ReleaseReader interface {
	Release(ctx context.Context) (facts.Release, error)
}

// InitProvider describes the init system.
type InitProvider interface {
	Init(ctx context.Context) (facts.Init, error)
}
