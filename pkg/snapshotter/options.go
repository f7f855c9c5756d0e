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

package snapshotter

import (
	"k8s.io/utils/clock"

	"github.com/NVIDIA/sysnet/pkg/collector"
)

// Option configures a Device.
type Option func(*Device)

// WithFactory sets the collector factory. Defaults to collector.NewDefaultFactory().
func WithFactory(f collector.Factory) Option {
	return func(d *Device) {
		if f != nil {
			d.factory = f
		}
	}
}

// WithStrictLookups makes a missing mandatory fact (hostname, OS version,
// kernel version, MAC, non-text disk path) fail collection with
// errors.ErrCodeLookupFailed instead of recording it as unknown.
func WithStrictLookups(strict bool) Option {
	return func(d *Device) {
		d.strict = strict
	}
}

// WithUnaddressedInterfaces emits one FamilyNone record for every interface
// that has no bound address. By default such interfaces are omitted.
func WithUnaddressedInterfaces(include bool) Option {
	return func(d *Device) {
		d.unaddressed = include
	}
}

// WithClock sets the clock used for collection timestamps.
func WithClock(c clock.PassiveClock) Option {
	return func(d *Device) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithVersion sets the tool version recorded in exported snapshots.
func WithVersion(v string) Option {
	return func(d *Device) {
		d.version = v
	}
}
