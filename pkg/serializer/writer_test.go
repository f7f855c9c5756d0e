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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/sysnet/pkg/errors"
)

type label struct{ v string }

func (l label) String() string { return "<" + l.v + ">" }

type inner struct {
	Mount string `json:"mountPoint"`
	Total uint64 `json:"total"`
}

type Meta struct {
	Kind string `json:"kind"`
}

type outer struct {
	Meta   `json:",inline"`
	Name   string            `json:"name"`
	Tag    label             `json:"tag"`
	Disks  []inner           `json:"disks"`
	Labels map[string]string `json:"labels"`
	Skip   string            `json:"-"`
	Ptr    *inner            `json:"ptr"`
	hidden string
}

func sample() outer {
	return outer{
		Meta: Meta{Kind: "Snapshot"},
		Name: "node-1",
		Tag:  label{v: "x"},
		Disks: []inner{
			{Mount: "/", Total: 1024},
			{Mount: "/data", Total: 2048},
		},
		Labels: map[string]string{"b": "2", "a": "1"},
		Skip:   "never",
		hidden: "never",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{" table ", FormatTable, false},
		{"text", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("xml").IsUnknown())
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.TODO(), map[string]int{"cores": 8}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 8, got["cores"])
	assert.Contains(t, buf.String(), "\n  \"cores\"")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.TODO(), map[string]string{"hostname": "node-1"}))

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "node-1", got["hostname"])
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.TODO(), sample()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	keys := make([]string, 0, len(lines))
	for _, l := range lines[2:] {
		keys = append(keys, strings.Fields(l)[0])
	}
	assert.Equal(t, []string{
		"kind",
		"name",
		"tag",
		"disks.[0].mountPoint",
		"disks.[0].total",
		"disks.[1].mountPoint",
		"disks.[1].total",
		"labels.a",
		"labels.b",
		"ptr",
	}, keys)

	assert.True(t, strings.HasPrefix(lines[0], "FIELD"))
	assert.Contains(t, buf.String(), "<x>")
	assert.Contains(t, buf.String(), "<nil>")
	assert.NotContains(t, buf.String(), "never")

	// Values start in the same column.
	col := strings.Index(lines[0], "VALUE")
	for _, l := range lines[2:] {
		assert.Equal(t, ' ', rune(l[col-1]), l)
		assert.NotEqual(t, ' ', rune(l[col]), l)
	}
}

func TestWriter_SerializeTable_WideRunes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.TODO(), map[string]string{"名前": "x", "ab": "y"}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	// "名前" occupies four cells, so both rows pad to the same display width.
	assert.Equal(t, "ab     y", lines[2])
	assert.Equal(t, "名前   x", lines[3])
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.TODO(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.TODO(), 42))
	assert.Contains(t, buf.String(), "value  42")
}

func TestWriter_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(Format("xml"), &buf).Serialize(context.TODO(), 1)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	cancel()

	var buf bytes.Buffer
	assert.Error(t, NewWriter(FormatJSON, &buf).Serialize(ctx, 1))
	assert.Empty(t, buf.String())
}

func TestNewWriter_NilOutput(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	assert.Equal(t, os.Stdout, w.output)
	assert.NoError(t, w.Close())
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w, err := NewFileWriter(FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, w.Serialize(context.TODO(), map[string]string{"a": "b"}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"b"}`, string(data))
}

func TestNewFileWriter_EmptyPath(t *testing.T) {
	w, err := NewFileWriter(FormatYAML, "  ")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w.output)
}

func TestNewFileWriter_InvalidPath(t *testing.T) {
	_, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}
