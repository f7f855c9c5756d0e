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

// Package cli implements the sysnet command line.
//
// # Usage
//
//	sysnet [flags]
//
// Section flags are independent booleans and may be combined:
//
//	--system, -s      Host summary: hostname, OS, kernel, cores, RAM, swap
//	--network, -n     Network interfaces grouped by name with every bound address
//	--disks, -d       Mounted volumes with available and total space
//	--cpu, -c         Per-core usage, vendor and brand
//	--all, -a         System, network, CPUs and disks under headings
//	--processes, -p   Live process table sorted by pid
//
// Sections print in the order listed above regardless of flag order. With no
// section selected sysnet performs no host queries, prints nothing and exits 0.
//
// # Other Flags
//
//	--format, -t             text (default), json, yaml, table
//	--output, -o             Write to file instead of stdout
//	--strict                 Fail when hostname, OS, kernel or a MAC is unavailable
//	--include-unaddressed    Report interfaces without an address
//	--cpu-sample-interval    CPU usage sampling window (default 200ms)
//	--log-level              debug, info, warn (default), error
//	--config                 YAML defaults file (default $HOME/.sysnet.yaml)
//	--metrics-textfile       Write collection metrics for the node_exporter textfile collector
//
// # Output Formats
//
// Text:
//   - Human-readable report
//   - Unknown host facts print as "unknown"
//
// JSON and YAML:
//   - A Snapshot resource with kind, apiVersion, metadata and measurements
//   - With --processes the live table is attached under processes
//
// Table:
//   - One FIELD/VALUE row per value with dotted keys
//
// # Environment Variables
//
// Every flag except the section flags can be set with SYSNET_<FLAG>, for
// example SYSNET_FORMAT=json or SYSNET_CPU_SAMPLE_INTERVAL=1s. LOG_LEVEL is
// honored when SYSNET_LOG_LEVEL is not set.
//
// # Exit Codes
//
//	0  Success, including no section selected
//	1  Collection failure, invalid flag or config, or write error
package cli
