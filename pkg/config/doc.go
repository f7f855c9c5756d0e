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

// Package config loads optional defaults for the sysnet command line from a
// YAML file.
//
// The file is read from --config, or $HOME/.sysnet.yaml when present:
//
//	format: yaml
//	output: /var/tmp/host.yaml
//	strict: true
//	includeUnaddressed: false
//	cpuSampleInterval: 500ms
//	logLevel: info
//	metricsTextfile: /var/lib/node_exporter/textfile/sysnet.prom
//
// Precedence, highest first: explicit flag, SYSNET_* environment variable,
// config file, built-in default. Unknown keys are rejected so typos surface
// as errors instead of silently doing nothing.
package config
