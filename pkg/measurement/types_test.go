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

package measurement

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestToReading(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"int", 42, 42},
		{"int64", int64(-7), int64(-7)},
		{"uint64", uint64(18446744073709551615), uint64(18446744073709551615)},
		{"float64", 3.14, 3.14},
		{"bool", true, true},
		{"string", "eth0", "eth0"},
		{"fallback", []int{1}, "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToReading(tt.value)
			if got.Any() != tt.want {
				t.Errorf("ToReading(%v).Any() = %v, want %v", tt.value, got.Any(), tt.want)
			}
		})
	}
}

func TestMeasurement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       Measurement
		wantErr bool
	}{
		{"empty type", Measurement{}, true},
		{"no subtypes", Measurement{Type: TypeDisk}, false},
		{"unnamed subtype", Measurement{Type: TypeCPU, Subtypes: []Subtype{{}}}, true},
		{"valid", Measurement{Type: TypeCPU, Subtypes: []Subtype{{Name: "cpu0"}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMeasurement_SubtypesNamed(t *testing.T) {
	m := NewMeasurement(TypeNetwork).
		WithSubtypeBuilder(NewSubtypeBuilder("eth0").SetString(KeyIP, "10.0.0.5")).
		WithSubtypeBuilder(NewSubtypeBuilder("lo").SetString(KeyIP, "127.0.0.1")).
		WithSubtypeBuilder(NewSubtypeBuilder("eth0").SetString(KeyIP, "fe80::1")).
		Build()

	got := m.SubtypesNamed("eth0")
	if len(got) != 2 {
		t.Fatalf("SubtypesNamed(eth0) = %d records, want 2", len(got))
	}
	if ip, _ := got[1].GetString(KeyIP); ip != "fe80::1" {
		t.Errorf("second eth0 ip = %q, want fe80::1", ip)
	}
	if m.GetSubtype("missing") != nil {
		t.Error("GetSubtype(missing) should be nil")
	}
}

func TestSubtype_Getters(t *testing.T) {
	st := NewSubtypeBuilder("sda1").
		SetString(KeyMountPoint, "/").
		SetUint64(KeyTotal, 1000).
		SetFloat64(KeyUsage, 12.5).
		SetIfKnown(KeyInit, "systemd", false).
		Build()

	if v, err := st.GetString(KeyMountPoint); err != nil || v != "/" {
		t.Errorf("GetString = (%q, %v)", v, err)
	}
	if v, err := st.GetUint64(KeyTotal); err != nil || v != 1000 {
		t.Errorf("GetUint64 = (%d, %v)", v, err)
	}
	if v, err := st.GetFloat64(KeyUsage); err != nil || v != 12.5 {
		t.Errorf("GetFloat64 = (%v, %v)", v, err)
	}
	if st.Has(KeyInit) {
		t.Error("unknown fact should not be set")
	}
	if _, err := st.GetString(KeyTotal); err == nil {
		t.Error("GetString on uint64 should fail")
	}
	if _, err := st.GetUint64("missing"); err == nil {
		t.Error("GetUint64 on missing key should fail")
	}
}

func TestSubtype_JSONRoundTrip(t *testing.T) {
	in := NewMeasurement(TypeSystem).
		WithSubtypeBuilder(NewSubtypeBuilder("host").
			SetString(KeyHostname, "node-1").
			SetInt(KeyCores, 8).
			SetContext("source", "gopsutil")).
		Build()

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out Measurement
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	st := out.GetSubtype("host")
	if st == nil {
		t.Fatal("host subtype missing after round trip")
	}
	if v, _ := st.GetString(KeyHostname); v != "node-1" {
		t.Errorf("hostname = %q", v)
	}
	// JSON numbers decode as float64.
	if v, _ := st.GetFloat64(KeyCores); v != 8 {
		t.Errorf("cores = %v", v)
	}
	if st.Context["source"] != "gopsutil" {
		t.Errorf("context = %v", st.Context)
	}
}

func TestSubtype_YAMLRoundTrip(t *testing.T) {
	in := NewMeasurement(TypeDisk).
		WithSubtypeBuilder(NewSubtypeBuilder("/dev/sda1").SetUint64(KeyAvailable, 2048)).
		Build()

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out Measurement
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v, err := out.Subtypes[0].GetUint64(KeyAvailable); err != nil || v != 2048 {
		t.Errorf("available = (%d, %v)", v, err)
	}
}
