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

package systemd

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/sysnet/pkg/errors"
	"github.com/NVIDIA/sysnet/pkg/facts"
)

const initName = "systemd"

// managerConn is the subset of *dbus.Conn used to read manager properties.
type managerConn interface {
	GetManagerProperty(prop string) (string, error)
	Close()
}

func dialSystemd(ctx context.Context) (managerConn, error) {
	return dbus.NewSystemdConnectionContext(ctx)
}

// Collector reads init system identity from the systemd manager over D-Bus.
type Collector struct {
	dial func(ctx context.Context) (managerConn, error)
}

// Init returns the systemd version and overall system state. Hosts without
// a reachable system bus return an ErrCodeUnavailable error.
func (c *Collector) Init(ctx context.Context) (facts.Init, error) {
	slog.Debug("collecting init system")

	if err := ctx.Err(); err != nil {
		return facts.Init{}, err
	}

	dial := c.dial
	if dial == nil {
		dial = dialSystemd
	}

	conn, err := dial(ctx)
	if err != nil {
		return facts.Init{}, errors.Wrap(errors.ErrCodeUnavailable, "failed to connect to systemd", err)
	}
	defer conn.Close()

	version, err := managerProperty(conn, "Version")
	if err != nil {
		return facts.Init{}, errors.Wrap(errors.ErrCodeUnavailable, "failed to read systemd version", err)
	}

	// SystemState is informational only.
	state, err := managerProperty(conn, "SystemState")
	if err != nil {
		slog.Debug("systemd state unavailable", slog.String("error", err.Error()))
	}

	return facts.Init{
		Name:    initName,
		Version: version,
		State:   state,
	}, nil
}

// managerProperty reads a property and strips the D-Bus variant quoting.
func managerProperty(conn managerConn, prop string) (string, error) {
	v, err := conn.GetManagerProperty(prop)
	if err != nil {
		return "", err
	}
	if s, err := strconv.Unquote(v); err == nil {
		return s, nil
	}
	return strings.Trim(v, `"`), nil
}
