package collect

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sysdash/internal/logger"
)

// sectorSize is the unit of the sector counters in /proc/diskstats.
const sectorSize = 512

// Disk is one mounted block device.
type Disk struct {
	Name  string // device name, e.g. "sda1"
	Mount string
	Usage
	ReadRate  float64 // bytes per second
	WriteRate float64
	HasRate   bool // false until two harvests have been seen
}

// UsedPercent returns used space as a percentage of the total.
func (d Disk) UsedPercent() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Used) / float64(d.Total) * 100
}

type mountEntry struct {
	device string
	mount  string
}

type ioCounters struct {
	readBytes, writeBytes uint64
}

func (c *Collector) disks(ctx context.Context, now time.Time) ([]Disk, error) {
	f, err := os.Open(c.path("proc/mounts"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mounts, err := parseMounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading mounts: %w", err)
	}

	counters := map[string]ioCounters{}
	if sf, err := os.Open(c.path("proc/diskstats")); err == nil {
		counters, err = parseDiskstats(sf)
		sf.Close()
		if err != nil {
			return nil, fmt.Errorf("reading diskstats: %w", err)
		}
	}

	log := logger.For("collect")
	elapsed := now.Sub(c.prevAt).Seconds()
	var disks []Disk
	for _, m := range mounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		usage, err := c.statfs(m.mount)
		if err != nil {
			log.Debug("statfs failed", "mount", m.mount, "err", err)
			continue
		}
		d := Disk{Name: path.Base(m.device), Mount: m.mount, Usage: usage}
		kname := c.kernelName(m.device)
		cur, ok := counters[kname]
		prev, seen := c.prev[kname]
		if ok && seen && elapsed > 0 && cur.readBytes >= prev.readBytes && cur.writeBytes >= prev.writeBytes {
			d.ReadRate = float64(cur.readBytes-prev.readBytes) / elapsed
			d.WriteRate = float64(cur.writeBytes-prev.writeBytes) / elapsed
			d.HasRate = true
		}
		disks = append(disks, d)
	}

	c.prev = counters
	c.prevAt = now
	return disks, nil
}

// kernelName returns the name /proc/diskstats uses for device. Mapper and
// by-uuid paths are symlinks to the kernel node (/dev/mapper/vg-root ->
// ../dm-0), so they are resolved first.
func (c *Collector) kernelName(device string) string {
	if resolved, err := filepath.EvalSymlinks(c.path(device)); err == nil {
		return filepath.Base(resolved)
	}
	return path.Base(device)
}

// parseMounts returns block-device mounts, one per device, in file order.
// Pseudo filesystems (proc, tmpfs, cgroup, ...) have no /dev device and are
// skipped.
func parseMounts(r io.Reader) ([]mountEntry, error) {
	seen := make(map[string]bool)
	var out []mountEntry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		if seen[fields[0]] {
			continue
		}
		seen[fields[0]] = true
		out = append(out, mountEntry{
			device: fields[0],
			mount:  unescapeMount(fields[1]),
		})
	}
	return out, sc.Err()
}

// unescapeMount decodes the octal escapes (\040 for space) the kernel uses
// in mount paths.
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseDiskstats reads cumulative read/write byte counters per device.
// Field layout: major minor name reads merged sectors_read ms writes merged
// sectors_written ...
func parseDiskstats(r io.Reader) (map[string]ioCounters, error) {
	out := make(map[string]ioCounters)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 10 {
			continue
		}
		read, err := strconv.ParseUint(fields[5], 10, 64)
		if err != nil {
			continue
		}
		written, err := strconv.ParseUint(fields[9], 10, 64)
		if err != nil {
			continue
		}
		out[fields[2]] = ioCounters{readBytes: read * sectorSize, writeBytes: written * sectorSize}
	}
	return out, sc.Err()
}
