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

// Package os collects operating system identification.
//
// # Collected Data
//
//   - NAME, VERSION_ID, PRETTY_NAME from os-release
//   - the running kernel release from uname(2)
//
// # Data Sources
//
//   - /etc/os-release, falling back to /usr/lib/os-release
//   - uname(2) on Linux, macOS and FreeBSD
//
// # Error Handling
//
// Missing sources are not errors: a host without os-release returns empty
// name fields and the snapshot falls back to the platform facts from
// collector/host. Only context cancellation is returned.
package os
