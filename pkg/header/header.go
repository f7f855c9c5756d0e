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

package header

import (
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"
)

// Kind represents the type of sysnet resource.
type Kind string

// Valid Kind constants for all sysnet resource types.
const (
	KindSnapshot    Kind = "Snapshot"
	KindProcessList Kind = "ProcessList"
)

// Metadata keys written by InitWithClock and the snapshot exporter.
const (
	MetaTimestamp = "timestamp"
	MetaVersion   = "version"
	MetaID        = "id"
	MetaHostname  = "hostname"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	s := &Header{
		Metadata: make(map[string]string),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Header contains metadata and versioning information for sysnet resources.
// It follows Kubernetes-style resource conventions with Kind, APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the object.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the object.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the object.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// InitWithClock sets Kind and APIVersion and resets Metadata to a fresh id,
// the clock's current UTC time and, when non-empty, the tool version.
func (h *Header) InitWithClock(c clock.PassiveClock, kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata[MetaID] = uuid.NewString()
	h.Metadata[MetaTimestamp] = c.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[MetaVersion] = version
	}
}
