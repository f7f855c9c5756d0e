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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"CollectorTimeout", CollectorTimeout, 5 * time.Second, 60 * time.Second},
		{"CPUSampleInterval", CPUSampleInterval, 50 * time.Millisecond, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestSampleIntervalFitsCollectorTimeout(t *testing.T) {
	// Sampling happens inside the collection deadline
	if CPUSampleInterval >= CollectorTimeout {
		t.Errorf("CPUSampleInterval (%v) should be less than CollectorTimeout (%v)",
			CPUSampleInterval, CollectorTimeout)
	}
}

func TestOutputDefaults(t *testing.T) {
	if OutputFormat != "text" {
		t.Errorf("OutputFormat = %q, want text", OutputFormat)
	}
	if ConfigFileName == "" {
		t.Error("ConfigFileName should not be empty")
	}
}
