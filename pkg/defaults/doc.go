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

// Package defaults provides centralized configuration constants for sysnet.
//
// # Categories
//
//   - Collector timings: collection deadline and CPU sampling window
//   - Output and configuration defaults: report format, config file name, log level
//
// # Usage
//
//	import "github.com/NVIDIA/sysnet/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
//
// # Timing Guidelines
//
//   - Collection: 30s deadline for the whole pass
//   - CPU sampling: short enough for an interactive tool, long enough
//     that per-core utilization is not all zeros
package defaults
