package engine

import (
	"time"

	"github.com/luca-simonetti/exchange-core/pkg/config"
)

// Options represents configuration options for the Engine.
type Options struct {
	SnapshotInterval    time.Duration
	SnapshotOffsetDelta int64
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		SnapshotInterval:    30 * time.Second,
		SnapshotOffsetDelta: 1000,
	}
}

// EngineOptionsFromConfig builds engine options from the service
// configuration. Unset values keep their defaults.
func EngineOptionsFromConfig(cfg *config.Config) *Options {
	opts := DefaultEngineOptions()
	if cfg.SnapshotConfig.Interval > 0 {
		opts.SnapshotInterval = cfg.SnapshotConfig.Interval
	}
	if cfg.SnapshotConfig.OffsetDelta > 0 {
		opts.SnapshotOffsetDelta = cfg.SnapshotConfig.OffsetDelta
	}
	return opts
}
