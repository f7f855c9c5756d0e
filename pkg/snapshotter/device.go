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
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	"github.com/NVIDIA/sysnet/pkg/collector"
)

// Device is a point-in-time snapshot of the host. It is safe for concurrent
// readers; Refresh is the only writer.
type Device struct {
	factory     collector.Factory
	clock       clock.PassiveClock
	version     string
	strict      bool
	unaddressed bool

	// Providers are created once and owned for the Device's lifetime.
	host    collector.HostProvider
	network collector.InterfaceEnumerator
	release collector.ReleaseReader
	init    collector.InitProvider

	mu    sync.RWMutex
	state *state
}

// state is one complete collection pass. It is replaced whole, never mutated.
type state struct {
	id          string
	collectedAt time.Time
	system      SystemInfo
	cpus        []CPU
	disks       []Disk
	interfaces  []Interface
}

// New performs one blocking collection pass and returns the populated
// snapshot. No Device is returned when any subsystem fails.
func New(ctx context.Context, opts ...Option) (*Device, error) {
	d := &Device{
		clock: clock.RealClock{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.factory == nil {
		d.factory = collector.NewDefaultFactory()
	}

	d.host = d.factory.CreateHostProvider()
	d.network = d.factory.CreateInterfaceEnumerator()
	d.release = d.factory.CreateReleaseReader()
	d.init = d.factory.CreateInitProvider()

	st, err := d.collect(ctx)
	if err != nil {
		return nil, err
	}
	d.state = st

	return d, nil
}

// Refresh recomputes every cached record and swaps them in at once. Readers
// see either the previous snapshot or the new one in full. On error the
// previous snapshot is kept.
func (d *Device) Refresh(ctx context.Context) error {
	st, err := d.collect(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	d.mu.Lock()
	d.state = st
	d.mu.Unlock()

	return nil
}

func (d *Device) collect(ctx context.Context) (*state, error) {
	slog.Debug("starting host snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		system     SystemInfo
		cpus       []CPU
		disks      []Disk
		interfaces []Interface
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer observeCollector("system", time.Now())
		var err error
		system, err = d.collectSystem(gctx)
		return err
	})

	g.Go(func() error {
		defer observeCollector("cpu", time.Now())
		raw, err := d.host.CPUs(gctx)
		if err != nil {
			return fmt.Errorf("failed to collect cpus: %w", err)
		}
		cpus = normalizeCPUs(raw)
		return nil
	})

	g.Go(func() error {
		defer observeCollector("disk", time.Now())
		raw, err := d.host.Volumes(gctx)
		if err != nil {
			return fmt.Errorf("failed to collect disks: %w", err)
		}
		disks, err = normalizeDisks(raw, d.strict)
		return err
	})

	g.Go(func() error {
		defer observeCollector("network", time.Now())
		raw, err := d.network.Interfaces(gctx)
		if err != nil {
			return fmt.Errorf("failed to collect interfaces: %w", err)
		}
		interfaces, err = normalizeInterfaces(raw, d.strict, d.unaddressed)
		return err
	})

	if err := g.Wait(); err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		slog.Error("snapshot collection failed", slog.String("error", err.Error()))
		return nil, err
	}

	// Core count is derived from the CPU table so the two always agree.
	system.Cores = len(cpus)

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotRecordCount.WithLabelValues("cpu").Set(float64(len(cpus)))
	snapshotRecordCount.WithLabelValues("disk").Set(float64(len(disks)))
	snapshotRecordCount.WithLabelValues("network").Set(float64(len(interfaces)))

	slog.Debug("snapshot collection complete",
		slog.Int("cpus", len(cpus)),
		slog.Int("disks", len(disks)),
		slog.Int("interfaces", len(interfaces)))

	return &state{
		id:          uuid.NewString(),
		collectedAt: d.clock.Now().UTC(),
		system:      system,
		cpus:        cpus,
		disks:       disks,
		interfaces:  interfaces,
	}, nil
}

func (d *Device) collectSystem(ctx context.Context) (SystemInfo, error) {
	h, err := d.host.Host(ctx)
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to collect host info: %w", err)
	}

	mem, err := d.host.Memory(ctx)
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to collect memory: %w", err)
	}

	rel, err := d.release.Release(ctx)
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to collect os release: %w", err)
	}

	in, err := d.init.Init(ctx)
	if err != nil {
		// Init identity is informational and never mandatory.
		slog.Debug("init system unknown", slog.String("error", err.Error()))
	}

	return buildSystemInfo(h, rel, mem, in, d.strict)
}

// SystemInfo returns the cached host summary.
func (d *Device) SystemInfo() SystemInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.system
}

// CPUs returns a copy of the cached CPU table in core enumeration order.
func (d *Device) CPUs() []CPU {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.state.cpus)
}

// Disks returns a copy of the cached volume table.
func (d *Device) Disks() []Disk {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.state.disks)
}

// Interfaces returns a copy of the cached interface records.
func (d *Device) Interfaces() []Interface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.state.interfaces)
}

// CollectedAt returns when the current snapshot was taken.
func (d *Device) CollectedAt() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.collectedAt
}

// ID returns the unique id of the current snapshot. Refresh assigns a new one.
func (d *Device) ID() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.id
}

// Processes reads the live process table, sorted by pid.
func (d *Device) Processes(ctx context.Context) ([]Process, error) {
	raw, err := d.host.Processes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect processes: %w", err)
	}

	out := make([]Process, 0, len(raw))
	for _, p := range raw {
		out = append(out, Process{
			PID:           p.PID,
			Name:          p.Name,
			CPUUsage:      p.CPUPercent,
			VirtualMemory: p.VirtualMemory,
			Status:        p.Status,
		})
	}
	slices.SortFunc(out, func(a, b Process) int {
		return cmp.Compare(a.PID, b.PID)
	})

	return out, nil
}

func observeCollector(name string, start time.Time) {
	snapshotCollectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
