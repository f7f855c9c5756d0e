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

// Package measurement defines the typed export form of a host snapshot.
//
// # Core Types
//
//   - Type: the record family (System, Network, Disk, CPU)
//   - Measurement: a Type and the Subtypes holding its records
//   - Subtype: one named record of key-value data (e.g. "cpu0", "eth0")
//   - Reading: a type-safe scalar (int, uint64, float64, string, bool)
//
// # Creating Measurements
//
//	m := NewMeasurement(TypeDisk).
//	    WithSubtypeBuilder(
//	        NewSubtypeBuilder("/dev/sda1").
//	            SetString(KeyMountPoint, "/").
//	            SetUint64(KeyTotal, 500107862016),
//	    ).
//	    Build()
//
// Facts the host could not report are omitted from Data rather than
// encoded as zero values:
//
//	b.SetIfKnown(KeyInit, version, ok)
//
// # Accessing Data
//
//	total, err := m.GetSubtype("/dev/sda1").GetUint64(KeyTotal)
//
// # Serialization
//
// The Reading interface marshals to its underlying value in JSON and YAML,
// avoiding wrapper structures in the output.
package measurement
