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

// Package report renders host snapshots as human-readable text.
//
// Each section (system, network, CPUs, disks, processes) has its own method on
// Reporter; All prints system, network, CPUs and disks in sequence under
// headings. Formatters only read from their Source. The process section is the
// exception in that it reads the live process table on each call.
//
// Units:
//
//   - RAM, swap and process memory: bytes / 1000, suffixed "MB"
//   - Disk space: bytes / (1024*1024), suffixed "MB"
//   - CPU usage: percent, truncated to two decimals
//
// Facts the host could not report print as "unknown".
package report
