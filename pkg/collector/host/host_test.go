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

package host

import (
	"context"
	"errors"
	"testing"

	pscpu "github.com/shirou/gopsutil/v4/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func TestBuildCPUs(t *testing.T) {
	tests := []struct {
		name       string
		usage      []float64
		infos      []pscpu.InfoStat
		wantVendor []string
		wantBrand  []string
	}{
		{
			name:  "one info per core",
			usage: []float64{10, 20},
			infos: []pscpu.InfoStat{
				{VendorID: "GenuineIntel", ModelName: "Xeon A"},
				{VendorID: "GenuineIntel", ModelName: "Xeon B"},
			},
			wantVendor: []string{"GenuineIntel", "GenuineIntel"},
			wantBrand:  []string{"Xeon A", "Xeon B"},
		},
		{
			name:       "single package entry shared",
			usage:      []float64{1, 2, 3},
			infos:      []pscpu.InfoStat{{VendorID: "Apple", ModelName: " Apple M2 "}},
			wantVendor: []string{"Apple", "Apple", "Apple"},
			wantBrand:  []string{"Apple M2", "Apple M2", "Apple M2"},
		},
		{
			name:       "no info available",
			usage:      []float64{5},
			wantVendor: []string{""},
			wantBrand:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildCPUs(tt.usage, tt.infos)
			require.Len(t, got, len(tt.usage))
			for i, cpu := range got {
				assert.Equal(t, tt.usage[i], cpu.Usage)
				assert.Equal(t, tt.wantVendor[i], cpu.VendorID)
				assert.Equal(t, tt.wantBrand[i], cpu.Brand)
			}
			assert.Equal(t, "cpu0", got[0].Name)
		})
	}
}

func TestBuildCPUs_Empty(t *testing.T) {
	assert.Empty(t, buildCPUs(nil, []pscpu.InfoStat{{VendorID: "x"}}))
}

func TestStatusText(t *testing.T) {
	title := cases.Title(language.English)
	tests := map[string]string{
		"running": "Running",
		"sleep":   "Sleep",
		"zombie":  "Zombie",
		"":        unknownStatus,
	}
	for in, want := range tests {
		assert.Equal(t, want, statusText(title, in), "status %q", in)
	}
}

func TestCollector_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	cancel()

	c := &Collector{}

	_, err := c.Host(ctx)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = c.CPUs(ctx)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = c.Memory(ctx)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = c.Volumes(ctx)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = c.Processes(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCollector_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.TODO()
	c := &Collector{}

	h, err := c.Host(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, h.Hostname)

	cpus, err := c.CPUs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cpus)
	for _, cpu := range cpus {
		assert.GreaterOrEqual(t, cpu.Usage, 0.0)
	}

	mem, err := c.Memory(ctx)
	require.NoError(t, err)
	assert.Positive(t, mem.Total)

	vols, err := c.Volumes(ctx)
	require.NoError(t, err)
	for _, v := range vols {
		assert.LessOrEqual(t, v.Available, v.Total, "volume %s", v.MountPoint)
	}

	procs, err := c.Processes(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, procs)
	for i := 1; i < len(procs); i++ {
		assert.Less(t, procs[i-1].PID, procs[i].PID)
	}
}
