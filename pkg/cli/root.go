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

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/sysnet/pkg/collector"
	"github.com/NVIDIA/sysnet/pkg/config"
	"github.com/NVIDIA/sysnet/pkg/defaults"
	"github.com/NVIDIA/sysnet/pkg/errors"
	"github.com/NVIDIA/sysnet/pkg/logging"
	"github.com/NVIDIA/sysnet/pkg/measurement"
	"github.com/NVIDIA/sysnet/pkg/report"
	"github.com/NVIDIA/sysnet/pkg/serializer"
	"github.com/NVIDIA/sysnet/pkg/snapshotter"
)

const (
	name           = "sysnet"
	versionDefault = "dev"
	envPrefix      = "SYSNET_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flag names.
const (
	flagSystem          = "system"
	flagNetwork         = "network"
	flagDisks           = "disks"
	flagCPU             = "cpu"
	flagAll             = "all"
	flagProcesses       = "processes"
	flagFormat          = "format"
	flagOutput          = "output"
	flagStrict          = "strict"
	flagUnaddressed     = "include-unaddressed"
	flagSampleInterval  = "cpu-sample-interval"
	flagLogLevel        = "log-level"
	flagConfig          = "config"
	flagMetricsTextfile = "metrics-textfile"
)

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := newRootCmd(os.Stdout, nil).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func envVars(flag string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
}

// newRootCmd builds the sysnet command. A nil factory uses the production collectors.
func newRootCmd(out io.Writer, factory collector.Factory) *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Report host system, CPU, disk, network and process information",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `Takes one snapshot of the host and prints the selected sections.
Sections are printed in the order system, network, disks, cpu, all, processes
regardless of the order the flags are given. With no section selected nothing
is collected or printed.

Examples:
  sysnet -s -n
  sysnet --all --format yaml --output host.yaml
  sysnet -p --format table`,
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: flagSystem, Aliases: []string{"s"}, Usage: "Print system info"},
			&cli.BoolFlag{Name: flagNetwork, Aliases: []string{"n"}, Usage: "Print network info"},
			&cli.BoolFlag{Name: flagDisks, Aliases: []string{"d"}, Usage: "Print disks info"},
			&cli.BoolFlag{Name: flagCPU, Aliases: []string{"c"}, Usage: "Print CPUs info"},
			&cli.BoolFlag{Name: flagAll, Aliases: []string{"a"}, Usage: "Print system, network, CPU and disk info"},
			&cli.BoolFlag{Name: flagProcesses, Aliases: []string{"p"}, Usage: "List all processes"},
			&cli.StringFlag{
				Name:    flagFormat,
				Aliases: []string{"t"},
				Usage:   fmt.Sprintf("Output format (%s)", strings.Join(config.Formats, ", ")),
				Value:   defaults.OutputFormat,
				Sources: envVars(flagFormat),
			},
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "Write output to file instead of stdout",
				Sources: envVars(flagOutput),
			},
			&cli.BoolFlag{
				Name:    flagStrict,
				Usage:   "Fail when a mandatory host fact (hostname, OS, kernel, MAC) is unavailable",
				Sources: envVars(flagStrict),
			},
			&cli.BoolFlag{
				Name:    flagUnaddressed,
				Usage:   "Report interfaces that have no bound address",
				Sources: envVars(flagUnaddressed),
			},
			&cli.DurationFlag{
				Name:    flagSampleInterval,
				Usage:   "Window over which per-core CPU usage is measured",
				Value:   defaults.CPUSampleInterval,
				Sources: envVars(flagSampleInterval),
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				Value:   defaults.LogLevel,
				Sources: cli.EnvVars(envPrefix+"LOG_LEVEL", logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   fmt.Sprintf("Config file (default $HOME/%s)", defaults.ConfigFileName),
				Sources: envVars(flagConfig),
			},
			&cli.StringFlag{
				Name:    flagMetricsTextfile,
				Usage:   "Write collection metrics in node_exporter textfile format",
				Sources: envVars(flagMetricsTextfile),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sel := selectionFrom(cmd)
			if sel.empty() {
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			opts, err := resolveOptions(cmd, cfg)
			if err != nil {
				return err
			}

			logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.logLevel)

			return run(ctx, out, factory, sel, opts)
		},
	}
}

// selection is the set of requested sections.
type selection struct {
	system, network, disks, cpu, all, processes bool
}

func selectionFrom(cmd *cli.Command) selection {
	return selection{
		system:    cmd.Bool(flagSystem),
		network:   cmd.Bool(flagNetwork),
		disks:     cmd.Bool(flagDisks),
		cpu:       cmd.Bool(flagCPU),
		all:       cmd.Bool(flagAll),
		processes: cmd.Bool(flagProcesses),
	}
}

func (s selection) empty() bool {
	return !s.system && !s.network && !s.disks && !s.cpu && !s.all && !s.processes
}

// types returns the snapshot families to export, in print order without duplicates.
func (s selection) types() []measurement.Type {
	var out []measurement.Type
	add := func(t measurement.Type) {
		for _, e := range out {
			if e == t {
				return
			}
		}
		out = append(out, t)
	}
	if s.system {
		add(measurement.TypeSystem)
	}
	if s.network {
		add(measurement.TypeNetwork)
	}
	if s.disks {
		add(measurement.TypeDisk)
	}
	if s.cpu {
		add(measurement.TypeCPU)
	}
	if s.all {
		for _, t := range measurement.Types {
			add(t)
		}
	}
	return out
}

// options are the resolved non-section settings.
type options struct {
	format          string
	output          string
	strict          bool
	unaddressed     bool
	sampleInterval  time.Duration
	logLevel        string
	metricsTextfile string
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String(flagConfig); path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// resolveOptions applies precedence: flag or env, then config file, then default.
func resolveOptions(cmd *cli.Command, cfg *config.Config) (options, error) {
	o := options{
		format:          cmd.String(flagFormat),
		output:          cmd.String(flagOutput),
		strict:          cmd.Bool(flagStrict),
		unaddressed:     cmd.Bool(flagUnaddressed),
		sampleInterval:  cmd.Duration(flagSampleInterval),
		logLevel:        cmd.String(flagLogLevel),
		metricsTextfile: cmd.String(flagMetricsTextfile),
	}

	if cfg != nil {
		if !cmd.IsSet(flagFormat) && cfg.Format != "" {
			o.format = cfg.Format
		}
		if !cmd.IsSet(flagOutput) && cfg.Output != "" {
			o.output = cfg.Output
		}
		if !cmd.IsSet(flagStrict) && cfg.Strict != nil {
			o.strict = *cfg.Strict
		}
		if !cmd.IsSet(flagUnaddressed) && cfg.IncludeUnaddressed != nil {
			o.unaddressed = *cfg.IncludeUnaddressed
		}
		if !cmd.IsSet(flagSampleInterval) && cfg.CPUSampleInterval != nil {
			o.sampleInterval = *cfg.CPUSampleInterval
		}
		if !cmd.IsSet(flagLogLevel) && cfg.LogLevel != "" {
			o.logLevel = cfg.LogLevel
		}
		if !cmd.IsSet(flagMetricsTextfile) && cfg.MetricsTextfile != "" {
			o.metricsTextfile = cfg.MetricsTextfile
		}
	}

	o.format = strings.ToLower(strings.TrimSpace(o.format))
	if o.format != defaults.OutputFormat {
		if _, err := serializer.ParseFormat(o.format); err != nil {
			return options{}, err
		}
	}
	if o.sampleInterval < 0 {
		return options{}, errors.New(errors.ErrCodeInvalidRequest, "cpu-sample-interval cannot be negative")
	}

	return o, nil
}

func run(ctx context.Context, stdout io.Writer, factory collector.Factory, sel selection, o options) error {
	if factory == nil {
		factory = collector.NewDefaultFactory(collector.WithCPUSampleInterval(o.sampleInterval))
	}

	if o.metricsTextfile != "" {
		defer writeMetrics(o.metricsTextfile)
	}

	cctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
	defer cancel()

	dev, err := snapshotter.New(cctx,
		snapshotter.WithFactory(factory),
		snapshotter.WithStrictLookups(o.strict),
		snapshotter.WithUnaddressedInterfaces(o.unaddressed),
		snapshotter.WithVersion(version),
	)
	if err != nil {
		return fmt.Errorf("failed to collect host snapshot: %w", err)
	}

	emit := func(w io.Writer) error {
		if o.format == defaults.OutputFormat {
			return printText(cctx, w, dev, sel)
		}
		return printStructured(cctx, w, dev, sel, serializer.Format(o.format))
	}

	if o.output == "" {
		return emit(stdout)
	}

	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", o.output, err)
	}
	if err := writeAndClose(f, emit); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", o.output, err)
	}
	return nil
}

// writeAndClose runs emit against wc and always closes it. A close error is
// returned only when emit succeeded.
func writeAndClose(wc io.WriteCloser, emit func(io.Writer) error) error {
	if err := emit(wc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

func printText(ctx context.Context, w io.Writer, dev *snapshotter.Device, sel selection) error {
	r := report.New(w, dev)

	steps := []struct {
		on bool
		fn func() error
	}{
		{sel.system, func() error { return r.System(false) }},
		{sel.network, r.Network},
		{sel.disks, r.Disks},
		{sel.cpu, r.CPUs},
		{sel.all, r.All},
		{sel.processes, func() error { return r.Processes(ctx) }},
	}
	for _, s := range steps {
		if !s.on {
			continue
		}
		if err := s.fn(); err != nil {
			return err
		}
	}
	return nil
}

func printStructured(ctx context.Context, w io.Writer, dev *snapshotter.Device, sel selection, format serializer.Format) error {
	sw := serializer.NewWriter(format, w)

	types := sel.types()
	if len(types) == 0 {
		pl, err := dev.ProcessList(ctx)
		if err != nil {
			return err
		}
		return sw.Serialize(ctx, pl)
	}

	snap := dev.Snapshot(types...)
	if sel.processes {
		procs, err := dev.Processes(ctx)
		if err != nil {
			return err
		}
		snap.Processes = procs
	}
	return sw.Serialize(ctx, snap)
}

func writeMetrics(path string) {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		slog.Error("failed to write metrics textfile", slog.String("path", path), slog.String("error", err.Error()))
	}
}
