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

// Package systemd identifies the host's init system through the systemd
// manager D-Bus API.
//
// # Collected Data
//
//   - Version: the systemd manager version (e.g. "255.4-1ubuntu8")
//   - State: the overall system state (running, degraded, starting)
//
// # Usage
//
//	c := &systemd.Collector{}
//	init, err := c.Init(ctx)
//
// # Error Handling
//
// When the system bus is not reachable (containers, macOS, non-systemd
// distributions) Init returns an error carrying errors.ErrCodeUnavailable.
// The snapshot treats that as an unknown init system rather than a failure.
package systemd
