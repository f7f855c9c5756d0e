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

// Package snapshotter captures and normalizes a point-in-time view of the host.
//
// A Device queries the collector providers once at construction, converts
// their platform-shaped facts into four uniform record families and caches
// them until Refresh:
//
//   - SystemInfo: OS version, kernel, hostname, init system, cores, RAM, swap
//   - CPU: one record per logical core, in enumeration order
//   - Disk: one record per mounted volume
//   - Interface: one record per (interface, bound address) pair
//
// The process table is never cached; Processes reads it live on every call.
//
// # Usage
//
//	dev, err := snapshotter.New(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, c := range dev.CPUs() {
//	    fmt.Println(c.Name, c.Usage)
//	}
//
// Strict lookups, where a missing hostname, OS version, kernel version or MAC
// fails construction:
//
//	dev, err := snapshotter.New(ctx, snapshotter.WithStrictLookups(true))
//	if errors.HasCode(err, errors.ErrCodeLookupFailed) {
//	    ...
//	}
//
// # Unknown Facts
//
// Optional host facts are Fact values. In the default lenient mode a missing
// mandatory fact is recorded as unknown and logged at warn level. Unknown
// facts render as "unknown" and export as null.
//
// # Refresh
//
// Refresh collects a complete new state and swaps it in under a write lock.
// Readers never observe a mix of old and new records. When collection fails
// the previous state remains and the error is returned.
//
// # Concurrency
//
// The four subsystems are collected in parallel with errgroup. A failure in
// any of them cancels the others. Accessors return copies and may be called
// from multiple goroutines.
//
// # Export
//
// Snapshot converts the cached records into measurement form with a header
// carrying the snapshot id, timestamp and hostname, suitable for JSON, YAML
// or table serialization.
package snapshotter
