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

// Package network enumerates network interfaces and their bound addresses.
//
// Addresses are returned as CIDR text exactly as the platform reports them
// (for example "10.0.0.5/24" or "fe80::1/64"); classifying them into IPv4 and
// IPv6 records is done by the snapshot core.
package network
