package collector

import (
	"time"

	"github.com/NVIDIA/sysnet/pkg/collector/host"
	"github.com/NVIDIA/sysnet/pkg/collector/network"
	"github.com/NVIDIA/sysnet/pkg/collector/os"
	"github.com/NVIDIA/sysnet/pkg/collector/systemd"
	"github.com/NVIDIA/sysnet/pkg/defaults"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHostProvider() HostProvider
	CreateInterfaceEnumerator() InterfaceEnumerator
	CreateReleaseReader() ReleaseReader
	CreateInitProvider() InitProvider
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	CPUSampleInterval time.Duration
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithCPUSampleInterval sets the window used to measure per-core utilization.
func WithCPUSampleInterval(d time.Duration) Option {
	return func(f *DefaultFactory) {
		if d >= 0 {
			f.CPUSampleInterval = d
		}
	}
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		CPUSampleInterval: defaults.CPUSampleInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateHostProvider creates the gopsutil-backed host collector.
func (f *DefaultFactory) CreateHostProvider() HostProvider {
	return &host.Collector{
		CPUSampleInterval: f.CPUSampleInterval,
	}
}

// CreateInterfaceEnumerator creates the network interface collector.
func (f *DefaultFactory) CreateInterfaceEnumerator() InterfaceEnumerator {
	return &network.Collector{}
}

// CreateReleaseReader creates the os-release collector.
func (f *DefaultFactory) CreateReleaseReader() ReleaseReader {
	return &os.Collector{}
}

// CreateInitProvider creates the systemd collector.
func (f *DefaultFactory) CreateInitProvider() InitProvider {
	return &systemd.Collector{}
}
