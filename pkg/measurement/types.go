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
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Measurement keys exported for consistency across collectors and reports.
const (
	// System keys
	KeyHostname  = "hostname"
	KeyOSVersion = "os-version"
	KeyKernel    = "kernel"
	KeyInit      = "init"
	KeyCores     = "cores"
	KeyRAMTotal  = "ram-total"
	KeyRAMFree   = "ram-free"
	KeyRAMUsed   = "ram-used"
	KeySwapTotal = "swap-total"
	KeySwapFree  = "swap-free"
	KeySwapUsed  = "swap-used"

	// CPU keys
	KeyVendor = "vendor"
	KeyBrand  = "brand"
	KeyUsage  = "usage"

	// Disk keys
	KeyMountPoint = "mount-point"
	KeyAvailable  = "available"
	KeyTotal      = "total"

	// Network keys
	KeyMAC    = "mac"
	KeyIP     = "ip"
	KeyPrefix = "prefix"
	KeyFamily = "family"
)

// Type represents the category of a measurement (e.g., System, CPU, Disk).
type Type string

// String returns the string representation of the measurement Type.
func (mt Type) String() string {
	return string(mt)
}

const (
	TypeSystem  Type = "System"
	TypeCPU     Type = "CPU"
	TypeDisk    Type = "Disk"
	TypeNetwork Type = "Network"
)

// Types is the list of all supported measurement types in report order.
var Types = []Type{
	TypeSystem,
	TypeNetwork,
	TypeDisk,
	TypeCPU,
}

// Measurement holds every record of one Type. Each record is a Subtype.
type Measurement struct {
	Type     Type      `json:"type" yaml:"type"`
	Subtypes []Subtype `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
}

// Subtype is a single named record. Keys whose host fact is unknown are
// absent from Data.
type Subtype struct {
	Name    string             `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Data    map[string]Reading `json:"data" yaml:"data"`
	Context map[string]string  `json:"context,omitempty" yaml:"context,omitempty"`
}

// UnmarshalJSON custom unmarshaler for Subtype to handle Reading interface
func (st *Subtype) UnmarshalJSON(data []byte) error {
	var tmp struct {
		Name    string            `json:"subtype"`
		Data    map[string]any    `json:"data"`
		Context map[string]string `json:"context"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	st.fill(tmp.Name, tmp.Data, tmp.Context)
	return nil
}

// UnmarshalYAML custom unmarshaler for Subtype to handle Reading interface
func (st *Subtype) UnmarshalYAML(node *yaml.Node) error {
	var tmp struct {
		Name    string            `yaml:"subtype"`
		Data    map[string]any    `yaml:"data"`
		Context map[string]string `yaml:"context"`
	}
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	st.fill(tmp.Name, tmp.Data, tmp.Context)
	return nil
}

func (st *Subtype) fill(name string, data map[string]any, ctx map[string]string) {
	st.Name = name
	st.Context = ctx
	st.Data = make(map[string]Reading, len(data))
	for k, v := range data {
		st.Data[k] = ToReading(v)
	}
}

// AllowedScalar is a constraint (compile-time) for what we allow as readings.
type AllowedScalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool |
		~string
}

// Reading is a *runtime* interface (so it can be stored in a map with mixed types).
type Reading interface {
	isReading()
	Any() any
	String() string

	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Scalar wraps an allowed scalar type.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isReading() {}

func (s Scalar[T]) Any() any { return s.V }

// String returns the string representation of the underlying scalar value.
func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}

// MarshalJSON makes the JSON value be the underlying scalar (not an object wrapper).
func (s Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML makes the YAML value be the underlying scalar (not an object wrapper).
func (s Scalar[T]) MarshalYAML() (any, error) {
	return s.V, nil
}

// UnmarshalJSON unmarshals a JSON value into the underlying scalar.
func (s *Scalar[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.V)
}

// UnmarshalYAML unmarshals a YAML value into the underlying scalar.
func (s *Scalar[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&s.V)
}

// ToReading creates a Reading from any allowed scalar type.
// If the type is not allowed, it returns a string representation.
func ToReading(v any) Reading {
	switch val := v.(type) {
	case int:
		return Int(val)
	case int64:
		return Int64(val)
	case uint:
		return Uint(val)
	case uint64:
		return Uint64(val)
	case float64:
		return Float64(val)
	case bool:
		return Bool(val)
	case string:
		return Str(val)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}

// Convenience constructors for each allowed scalar type.
func Int(v int) Reading         { return &Scalar[int]{V: v} }
func Int64(v int64) Reading     { return &Scalar[int64]{V: v} }
func Uint(v uint) Reading       { return &Scalar[uint]{V: v} }
func Uint64(v uint64) Reading   { return &Scalar[uint64]{V: v} }
func Float64(v float64) Reading { return &Scalar[float64]{V: v} }
func Bool(v bool) Reading       { return &Scalar[bool]{V: v} }
func Str(v string) Reading      { return &Scalar[string]{V: v} }

// Validate checks if the measurement is properly formed. A measurement with
// no subtypes is valid: a host may have no disks or no addressed interfaces.
func (m *Measurement) Validate() error {
	if m.Type == "" {
		return errors.New("measurement type cannot be empty")
	}
	for i, st := range m.Subtypes {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("subtype[%d]: %w", i, err)
		}
	}
	return nil
}

// GetSubtype retrieves the first subtype with the given name, returning nil if not found.
func (m *Measurement) GetSubtype(name string) *Subtype {
	for i := range m.Subtypes {
		if m.Subtypes[i].Name == name {
			return &m.Subtypes[i]
		}
	}
	return nil
}

// SubtypesNamed returns every subtype with the given name. Interfaces carry
// one subtype per address.
func (m *Measurement) SubtypesNamed(name string) []Subtype {
	var out []Subtype
	for _, st := range m.Subtypes {
		if st.Name == name {
			out = append(out, st)
		}
	}
	return out
}

// Validate checks if the subtype is properly formed.
func (st *Subtype) Validate() error {
	if st.Name == "" {
		return errors.New("subtype name cannot be empty")
	}
	return nil
}

// Has checks if a key exists in the subtype data.
func (st *Subtype) Has(key string) bool {
	_, exists := st.Data[key]
	return exists
}

// Get retrieves a reading by key, returning nil if not found.
func (st *Subtype) Get(key string) Reading {
	return st.Data[key]
}

// GetString attempts to retrieve a string value, returning an error if not found or wrong type.
func (st *Subtype) GetString(key string) (string, error) {
	reading := st.Data[key]
	if reading == nil {
		return "", fmt.Errorf("key %q not found", key)
	}
	v, ok := reading.Any().(string)
	if !ok {
		return "", fmt.Errorf("key %q is not a string", key)
	}
	return v, nil
}

// GetUint64 attempts to retrieve a uint64 value, returning an error if not found or wrong type.
func (st *Subtype) GetUint64(key string) (uint64, error) {
	reading := st.Data[key]
	if reading == nil {
		return 0, fmt.Errorf("key %q not found", key)
	}
	switch v := reading.Any().(type) {
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case int:
		// JSON and YAML decode small integers as int.
		if v >= 0 {
			return uint64(v), nil
		}
	}
	return 0, fmt.Errorf("key %q is not an unsigned integer", key)
}

// GetFloat64 attempts to retrieve a float64 value, returning an error if not found or wrong type.
func (st *Subtype) GetFloat64(key string) (float64, error) {
	reading := st.Data[key]
	if reading == nil {
		return 0, fmt.Errorf("key %q not found", key)
	}
	v, ok := reading.Any().(float64)
	if !ok {
		return 0, fmt.Errorf("key %q is not a float64", key)
	}
	return v, nil
}
