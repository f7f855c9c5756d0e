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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/sysnet/pkg/errors"
)

func TestParse(t *testing.T) {
	in := `
format: yaml
output: /tmp/out.yaml
strict: true
includeUnaddressed: false
cpuSampleInterval: 500ms
logLevel: info
metricsTextfile: /tmp/sysnet.prom
`
	cfg, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "/tmp/out.yaml", cfg.Output)
	require.NotNil(t, cfg.Strict)
	assert.True(t, *cfg.Strict)
	require.NotNil(t, cfg.IncludeUnaddressed)
	assert.False(t, *cfg.IncludeUnaddressed)
	require.NotNil(t, cfg.CPUSampleInterval)
	assert.Equal(t, 500*time.Millisecond, *cfg.CPUSampleInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/tmp/sysnet.prom", cfg.MetricsTextfile)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", "colour: red\n"},
		{"bad format", "format: xml\n"},
		{"bad log level", "logLevel: loud\n"},
		{"negative interval", "cpuSampleInterval: -1s\n"},
		{"bad interval", "cpuSampleInterval: soon\n"},
		{"not a map", "- a\n- b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: TABLE\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TABLE", cfg.Format)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	require.NoError(t, os.WriteFile(filepath.Join(home, ".sysnet.yaml"), []byte("logLevel: debug\n"), 0o600))
	cfg, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.sysnet.yaml", DefaultPath())
}
