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
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/sysnet/pkg/defaults"
	"github.com/NVIDIA/sysnet/pkg/errors"
)

const maxConfigSize = 1 << 20

// Formats accepted in the format key.
var Formats = []string{defaults.OutputFormat, "json", "yaml", "table"}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config holds defaults for the command-line flags. Unset keys leave the
// built-in defaults in place.
type Config struct {
	Format             string         `yaml:"format"`
	Output             string         `yaml:"output"`
	Strict             *bool          `yaml:"strict"`
	IncludeUnaddressed *bool          `yaml:"includeUnaddressed"`
	CPUSampleInterval  *time.Duration `yaml:"cpuSampleInterval"`
	LogLevel           string         `yaml:"logLevel"`
	MetricsTextfile    string         `yaml:"metricsTextfile"`
}

// DefaultPath returns $HOME/.sysnet.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaults.ConfigFileName)
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(io.LimitReader(f, maxConfigSize))
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath. A missing file yields an empty Config.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return &Config{}, nil
	}
	cfg, err := Load(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Parse decodes YAML config from r. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Format != "" && !slices.Contains(Formats, strings.ToLower(c.Format)) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported format %q", c.Format),
			map[string]any{"supported": Formats})
	}
	if c.LogLevel != "" && !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported log level %q", c.LogLevel),
			map[string]any{"supported": logLevels})
	}
	if c.CPUSampleInterval != nil && *c.CPUSampleInterval < 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "cpuSampleInterval cannot be negative")
	}
	return nil
}
