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

// Package header provides the common header for exported sysnet data.
//
// Every exported snapshot carries a Kubernetes-style header so that saved
// output is self-describing:
//
//	kind: Snapshot
//	apiVersion: sysnet.nvidia.com/v1
//	metadata:
//	  id: 0b6f3c1e-8d0b-4d8e-a3a9-1a2b3c4d5e6f
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
//	h := header.New(
//		header.WithKind(header.KindSnapshot),
//		header.WithAPIVersion("sysnet.nvidia.com/v1"),
//		header.WithMetadata(header.MetaVersion, version),
//	)
//
// InitWithClock stamps a fresh id and timestamp from the given clock; tests
// pin the timestamp with a fake clock:
//
//	var h header.Header
//	fc := testingclock.NewFakePassiveClock(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
//	h.InitWithClock(fc, header.KindSnapshot, "sysnet.nvidia.com/v1", "v1.0.0")
package header
