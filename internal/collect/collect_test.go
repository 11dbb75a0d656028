package collect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMounts = `/dev/sda1 / ext4 rw,relatime 0 0
proc /proc proc rw,nosuid 0 0
tmpfs /run tmpfs rw 0 0
/dev/sdb1 /mnt/My\040Data xfs rw 0 0
/dev/sda1 /var/lib/docker ext4 rw 0 0
/dev/nvme0n1p2 /broken ext4 rw 0 0
`

func writeFile(t *testing.T, root, rel, data string) {
	t.Helper()
	p := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
}

func diskstats(sda1Read, sda1Write uint64) string {
	return strings.Join([]string{
		"   8       0 sda 100 0 9000 0 50 0 9000 0 0 0 0",
		"   8       1 sda1 10 0 " + strconv.FormatUint(sda1Read, 10) + " 0 5 0 " + strconv.FormatUint(sda1Write, 10) + " 0 0 0 0",
		"   8      17 sdb1 1 0 8 0 1 0 8 0 0 0 0",
	}, "\n") + "\n"
}

func fakeStatfs(path string) (Usage, error) {
	switch path {
	case "/":
		return Usage{Total: 100, Used: 40, Free: 60}, nil
	case "/mnt/My Data":
		return Usage{Total: 1000, Used: 1000, Free: 0}, nil
	}
	return Usage{}, errors.New("no such mount")
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newFixture(t *testing.T) (string, *fakeClock, *Collector) {
	root := t.TempDir()
	writeFile(t, root, "proc/mounts", testMounts)
	writeFile(t, root, "proc/diskstats", diskstats(1000, 2000))
	writeFile(t, root, "sys/class/hwmon/hwmon0/name", "coretemp\n")
	writeFile(t, root, "sys/class/hwmon/hwmon0/temp1_input", "45500\n")
	writeFile(t, root, "sys/class/hwmon/hwmon0/temp1_label", "Package id 0\n")
	writeFile(t, root, "sys/class/hwmon/hwmon0/temp2_input", "39000\n")
	writeFile(t, root, "sys/class/hwmon/hwmon1/temp1_input", "garbage\n")

	clock := &fakeClock{t: time.Unix(1000, 0)}
	c := New(WithRoot(root), WithStatfs(fakeStatfs), WithClock(clock.now))
	return root, clock, c
}

func TestHarvest_Disks(t *testing.T) {
	_, _, c := newFixture(t)

	snap, err := c.Harvest(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Disks, 2, "pseudo filesystems, duplicates and statfs failures are skipped")

	root := snap.Disks[0]
	assert.Equal(t, "sda1", root.Name)
	assert.Equal(t, "/", root.Mount)
	assert.Equal(t, Usage{Total: 100, Used: 40, Free: 60}, root.Usage)
	assert.InDelta(t, 40.0, root.UsedPercent(), 0.001)
	assert.False(t, root.HasRate, "no rate on first harvest")

	data := snap.Disks[1]
	assert.Equal(t, "sdb1", data.Name)
	assert.Equal(t, "/mnt/My Data", data.Mount)
	assert.Equal(t, time.Unix(1000, 0), snap.At)
}

func TestHarvest_Rates(t *testing.T) {
	root, clock, c := newFixture(t)

	_, err := c.Harvest(context.Background())
	require.NoError(t, err)

	// 2 seconds later sda1 read 1024 more sectors and wrote 2048 more.
	clock.t = clock.t.Add(2 * time.Second)
	writeFile(t, root, "proc/diskstats", diskstats(1000+1024, 2000+2048))

	snap, err := c.Harvest(context.Background())
	require.NoError(t, err)
	sda1 := snap.Disks[0]
	require.True(t, sda1.HasRate)
	assert.InDelta(t, 1024*512/2.0, sda1.ReadRate, 0.001)
	assert.InDelta(t, 2048*512/2.0, sda1.WriteRate, 0.001)

	sdb1 := snap.Disks[1]
	require.True(t, sdb1.HasRate)
	assert.Zero(t, sdb1.ReadRate)
}

func TestHarvest_CounterResetHasNoRate(t *testing.T) {
	root, clock, c := newFixture(t)
	_, err := c.Harvest(context.Background())
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Second)
	writeFile(t, root, "proc/diskstats", diskstats(0, 0))
	snap, err := c.Harvest(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Disks[0].HasRate)
}

func TestHarvest_Temps(t *testing.T) {
	_, _, c := newFixture(t)
	snap, err := c.Harvest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Temp{
		{Sensor: "coretemp Package id 0", Celsius: 45.5},
		{Sensor: "coretemp temp2", Celsius: 39},
	}, snap.Temps)
}

func TestHarvest_MissingSensorsIsNotAnError(t *testing.T) {
	root, _, c := newFixture(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "sys")))

	snap, err := c.Harvest(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Temps)
	assert.Len(t, snap.Disks, 2)
}

func TestHarvest_MissingMountsFails(t *testing.T) {
	c := New(WithRoot(t.TempDir()), WithStatfs(fakeStatfs))
	_, err := c.Harvest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collecting disks")
}

func TestHarvest_Cancelled(t *testing.T) {
	_, _, c := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Harvest(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnescapeMount(t *testing.T) {
	assert.Equal(t, "/mnt/a b", unescapeMount(`/mnt/a\040b`))
	assert.Equal(t, "/plain", unescapeMount("/plain"))
	assert.Equal(t, `/bad\0`, unescapeMount(`/bad\0`))
}

func TestDisk_UsedPercentZeroTotal(t *testing.T) {
	assert.Zero(t, Disk{}.UsedPercent())
}

func TestHarvest_MapperDeviceRates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "proc/mounts", "/dev/mapper/vg-root / ext4 rw 0 0\n")
	writeFile(t, root, "dev/dm-0", "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dev/mapper"), 0o755))
	require.NoError(t, os.Symlink("../dm-0", filepath.Join(root, "dev/mapper/vg-root")))
	stats := func(read uint64) string {
		return " 253       0 dm-0 10 0 " + strconv.FormatUint(read, 10) + " 0 5 0 0 0 0 0 0\n"
	}
	writeFile(t, root, "proc/diskstats", stats(100))

	clock := &fakeClock{t: time.Unix(1000, 0)}
	c := New(WithRoot(root), WithStatfs(fakeStatfs), WithClock(clock.now))
	_, err := c.Harvest(context.Background())
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Second)
	writeFile(t, root, "proc/diskstats", stats(104))
	snap, err := c.Harvest(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Disks, 1)

	d := snap.Disks[0]
	assert.Equal(t, "vg-root", d.Name)
	require.True(t, d.HasRate)
	assert.InDelta(t, 4*512.0, d.ReadRate, 0.001)
}
