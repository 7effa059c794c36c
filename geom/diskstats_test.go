package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstat-go/gstat/model"
)

// A 20-field line from a 5.5+ kernel, with discard and flush groups.
const sdaLine = "   8       0 sda 100 5 2048 300 200 10 4096 700 4 1500 2500 50 2 1024 80 7 120"

// A 14-field line from an older kernel.
const vdaLine = " 252       0 vda 10 0 80 5 20 0 160 9 0 12 21"

func TestParseDiskstatLine(t *testing.T) {
	dev, ok := parseDiskstatLine(sdaLine)
	require.True(t, ok)

	assert.Equal(t, "sda", dev.Identity.Name)
	assert.Equal(t, 1, dev.Identity.Rank)
	assert.Equal(t, model.KindProvider, dev.Identity.Kind)

	st := dev.Stats
	assert.Equal(t, uint64(100), st.Read.Ops)
	assert.Equal(t, uint64(2048*512), st.Read.Bytes)
	assert.InDelta(t, 0.3, st.Read.DurationSec, 1e-9)
	assert.Equal(t, uint64(200), st.Write.Ops)
	assert.Equal(t, uint64(4096*512), st.Write.Bytes)
	assert.InDelta(t, 0.7, st.Write.DurationSec, 1e-9)
	assert.Equal(t, uint64(4), st.InFlight)
	assert.InDelta(t, 1.5, st.BusyTimeSec, 1e-9)
	assert.Equal(t, uint64(50), st.Delete.Ops)
	assert.Equal(t, uint64(1024*512), st.Delete.Bytes)
	assert.InDelta(t, 0.08, st.Delete.DurationSec, 1e-9)
	assert.Equal(t, uint64(7), st.Other.Ops)
	assert.InDelta(t, 0.12, st.Other.DurationSec, 1e-9)
}

func TestParseDiskstatLineOldKernel(t *testing.T) {
	dev, ok := parseDiskstatLine(vdaLine)
	require.True(t, ok)
	assert.Equal(t, "vda", dev.Identity.Name)
	assert.Zero(t, dev.Stats.Delete.Ops)
	assert.Zero(t, dev.Stats.Other.Ops)
}

func TestParseDiskstatLineShort(t *testing.T) {
	_, ok := parseDiskstatLine("8 0 sda 1 2 3")
	assert.False(t, ok)
	_, ok = parseDiskstatLine("")
	assert.False(t, ok)
}

func TestDeviceRank(t *testing.T) {
	tests := []struct {
		name string
		rank int
	}{
		{"sda", 1},
		{"sda1", 2},
		{"sdab", 1},
		{"vda", 1},
		{"vda2", 2},
		{"xvda", 1},
		{"nvme0n1", 1},
		{"nvme0n1p3", 2},
		{"mmcblk0", 1},
		{"mmcblk0p1", 2},
		{"dm-0", 1},
		{"md127", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rank, deviceRank(tt.name))
		})
	}
}

func TestSample(t *testing.T) {
	dir := t.TempDir()
	stats := filepath.Join(dir, "diskstats")
	uptime := filepath.Join(dir, "uptime")
	require.NoError(t, os.WriteFile(stats, []byte(sdaLine+"\n"+vdaLine+"\n"), 0600))
	require.NoError(t, os.WriteFile(uptime, []byte("12345.67 99999.99\n"), 0600))

	s := &DiskstatsSampler{statsPath: stats, uptimePath: uptime}
	snap, err := s.Sample()
	require.NoError(t, err)

	require.Len(t, snap.Devices, 2)
	assert.Equal(t, "sda", snap.Devices[0].Identity.Name)
	assert.Equal(t, "vda", snap.Devices[1].Identity.Name)
	assert.InDelta(t, 12345.67, snap.Uptime.Seconds(), 1e-6)
	assert.False(t, snap.Timestamp.IsZero())
}

func TestSampleMissingFile(t *testing.T) {
	s := &DiskstatsSampler{statsPath: filepath.Join(t.TempDir(), "nope")}
	_, err := s.Sample()
	assert.Error(t, err)
}
