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

// Package serializer writes structured snapshot data in machine or tabular form.
//
// Supported formats:
//   - JSON: indented structured data
//   - YAML: human-readable structured data
//   - Table: one FIELD/VALUE row per scalar, with dotted keys
//
// Usage:
//
//	w, err := serializer.NewFileWriter(serializer.FormatYAML, "snapshot.yaml")
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//		return err
//	}
//
// Table keys follow json field names; embedded structs do not add a path
// segment. Values implementing fmt.Stringer print through String, so
// snapshotter facts render as their value or "unknown".
package serializer

import "context"

// Serializer writes a value in a configured format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
