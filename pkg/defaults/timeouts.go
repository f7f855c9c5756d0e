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

package defaults

import "time"

// Collector timings for host fact collection.
const (
	// CollectorTimeout bounds one full collection pass. The underlying OS queries
	// are not themselves cancellable everywhere; the deadline stops waiting on them.
	CollectorTimeout = 30 * time.Second

	// CPUSampleInterval is the window over which per-core utilization is measured.
	// Zero compares against the previous call instead of sleeping.
	CPUSampleInterval = 200 * time.Millisecond
)

// Output and configuration defaults.
const (
	// OutputFormat is the default rendering for reports.
	OutputFormat = "text"

	// ConfigFileName is the file looked up in the user's home directory.
	ConfigFileName = ".sysnet.yaml"

	// LogLevel keeps stderr quiet for an interactive inspection tool.
	LogLevel = "warn"
)
