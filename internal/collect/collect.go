// Package collect harvests the system metrics shown by the dashboard panels.
package collect

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sysdash/internal/logger"
	"sysdash/internal/telemetry"
)

// Snapshot is one harvest of every metric source.
type Snapshot struct {
	Disks []Disk
	Temps []Temp
	At    time.Time
}

// Harvester produces snapshots. Implemented by *Collector; tests inject fakes.
type Harvester interface {
	Harvest(ctx context.Context) (Snapshot, error)
}

// Usage is the capacity of one mounted filesystem in bytes.
type Usage struct {
	Total, Used, Free uint64
}

// StatfsFunc reports filesystem usage for a mount point.
type StatfsFunc func(path string) (Usage, error)

// Collector reads disk and sensor data from a proc/sys tree.
// It keeps the previous I/O counters to turn them into rates.
type Collector struct {
	root   string
	statfs StatfsFunc
	now    func() time.Time

	mu     sync.Mutex
	prev   map[string]ioCounters
	prevAt time.Time
}

// Option configures a Collector.
type Option func(*Collector)

// WithRoot reads proc and sys files below root instead of "/".
func WithRoot(root string) Option {
	return func(c *Collector) { c.root = root }
}

// WithStatfs overrides the filesystem usage probe.
func WithStatfs(fn StatfsFunc) Option {
	return func(c *Collector) { c.statfs = fn }
}

// WithClock overrides the time source used for rates.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// New creates a Collector reading the live system.
func New(opts ...Option) *Collector {
	c := &Collector{
		root:   "/",
		statfs: statfs,
		now:    time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Collector) path(rel string) string {
	return filepath.Join(c.root, rel)
}

// Harvest collects one snapshot. Disk data is required; missing sensors are
// not an error since many machines expose none.
func (c *Collector) Harvest(ctx context.Context) (Snapshot, error) {
	ctx, span := telemetry.Tracer("sysdash/collect").Start(ctx, "collect.harvest")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	disks, err := c.disks(ctx, now)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Snapshot{}, fmt.Errorf("collecting disks: %w", err)
	}

	temps, err := readTemps(c.path("sys/class/hwmon"))
	if err != nil {
		logger.For("collect").Debug("no temperature sensors", "err", err)
	}

	span.SetAttributes(
		attribute.Int("sysdash.disks", len(disks)),
		attribute.Int("sysdash.temps", len(temps)),
	)
	return Snapshot{Disks: disks, Temps: temps, At: now}, nil
}
