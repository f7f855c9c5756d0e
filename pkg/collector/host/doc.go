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

// Package host reads host facts through gopsutil.
//
// One Collector answers the HostProvider queries:
//
//   - Host: hostname, platform, platform version, kernel version and arch
//   - CPUs: one entry per logical core, utilization sampled over CPUSampleInterval
//   - Memory: RAM and swap totals, free and used bytes
//   - Volumes: mounted filesystems with total and available bytes
//   - Processes: the live process table, in platform order
//
// Values are passed through without reconciliation; for example Used is not
// recomputed from Total and Free.
package host
