package geom

import (
	"fmt"
	"strings"
	"time"

	"github.com/gstat-go/gstat/model"
	"github.com/gstat-go/gstat/util"
)

const sectorSize = 512 // /proc/diskstats sector counts are always 512-byte units

// DiskstatsSampler reads per-device I/O counters from /proc/diskstats.
type DiskstatsSampler struct {
	statsPath  string
	uptimePath string
}

// NewDiskstatsSampler returns a sampler over the live procfs.
func NewDiskstatsSampler() *DiskstatsSampler {
	return &DiskstatsSampler{
		statsPath:  "/proc/diskstats",
		uptimePath: "/proc/uptime",
	}
}

func (s *DiskstatsSampler) Sample() (model.Snapshot, error) {
	lines, err := util.ReadFileLines(s.statsPath)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read %s: %w", s.statsPath, err)
	}

	snap := model.Snapshot{
		Timestamp: time.Now(),
		Uptime:    s.uptime(),
	}
	for _, line := range lines {
		dev, ok := parseDiskstatLine(line)
		if !ok {
			continue
		}
		snap.Devices = append(snap.Devices, dev)
	}
	return snap, nil
}

func (s *DiskstatsSampler) uptime() time.Duration {
	lines, err := util.ReadFileLines(s.uptimePath)
	if err != nil || len(lines) == 0 {
		return 0
	}
	fields := strings.Fields(lines[0])
	if len(fields) == 0 {
		return 0
	}
	sec, err := time.ParseDuration(fields[0] + "s")
	if err != nil {
		return 0
	}
	return sec
}

// parseDiskstatLine parses one /proc/diskstats line.
// Fields: major minor name reads reads_merged sectors_read read_ms
// writes writes_merged sectors_written write_ms inflight io_ms
// weighted_io_ms [discards discards_merged sectors_discarded discard_ms]
// [flushes flush_ms]
// Discard and flush groups exist on 4.18+/5.5+ kernels and map to the
// delete and other operation classes.
func parseDiskstatLine(line string) (model.Device, bool) {
	f := strings.Fields(line)
	if len(f) < 14 {
		return model.Device{}, false
	}
	name := f[2]
	dev := model.Device{
		Identity: model.DeviceIdentity{
			Name: name,
			Rank: deviceRank(name),
			Kind: model.KindProvider,
		},
		Stats: model.DevStats{
			Read: model.ClassStats{
				Ops:         util.ParseUint64(f[3]),
				Bytes:       util.ParseUint64(f[5]) * sectorSize,
				DurationSec: float64(util.ParseUint64(f[6])) / 1000,
			},
			Write: model.ClassStats{
				Ops:         util.ParseUint64(f[7]),
				Bytes:       util.ParseUint64(f[9]) * sectorSize,
				DurationSec: float64(util.ParseUint64(f[10])) / 1000,
			},
			InFlight:    util.ParseUint64(f[11]),
			BusyTimeSec: float64(util.ParseUint64(f[12])) / 1000,
		},
	}
	if len(f) >= 18 {
		dev.Stats.Delete = model.ClassStats{
			Ops:         util.ParseUint64(f[14]),
			Bytes:       util.ParseUint64(f[16]) * sectorSize,
			DurationSec: float64(util.ParseUint64(f[17])) / 1000,
		}
	}
	if len(f) >= 20 {
		dev.Stats.Other = model.ClassStats{
			Ops:         util.ParseUint64(f[18]),
			DurationSec: float64(util.ParseUint64(f[19])) / 1000,
		}
	}
	return dev, true
}

// deviceRank maps a device name to its topological rank: 1 for whole
// disks, 2 for partitions and mapped devices layered above them.
func deviceRank(name string) int {
	if isWholeDisk(name) {
		return 1
	}
	return 2
}

// isWholeDisk returns true if the name looks like a whole disk device
// rather than a partition.
func isWholeDisk(name string) bool {
	// NVMe: nvme0n1 is a disk, nvme0n1p1 is a partition
	if strings.HasPrefix(name, "nvme") {
		return !strings.Contains(name[4:], "p")
	}
	// mmcblk0 is a disk, mmcblk0p1 is a partition
	if strings.HasPrefix(name, "mmcblk") {
		return !strings.Contains(name[6:], "p")
	}
	// sd*, vd*, xvd*, hd*: disk has only letters after the prefix
	for _, prefix := range []string{"sd", "vd", "xvd", "hd"} {
		if strings.HasPrefix(name, prefix) {
			for _, c := range name[len(prefix):] {
				if c < 'a' || c > 'z' {
					return false
				}
			}
			return true
		}
	}
	// dm-*, md*, loop*, zd*: no partition suffix convention; treat as disks
	return true
}
