package model

import "time"

// DeviceKind distinguishes entities that produce I/O statistics from
// consumers layered above them. Consumers are never rendered.
type DeviceKind int

const (
	KindProvider DeviceKind = iota
	KindConsumer
)

// DeviceIdentity identifies one monitored device within a sample.
// Identities are values, re-resolved every sample: a device can appear
// or disappear between two snapshots, so nothing here is assumed
// stable across samples except the name itself.
type DeviceIdentity struct {
	Name string
	Rank int // topological depth; 1 = physical device
	Kind DeviceKind
}

// ClassStats holds the cumulative counters for one operation class
// (read, write, delete or other).
type ClassStats struct {
	Ops         uint64
	Bytes       uint64
	DurationSec float64 // total time spent servicing this class
}

// DevStats is one device's cumulative counter set at a point in time.
type DevStats struct {
	Read   ClassStats
	Write  ClassStats
	Delete ClassStats
	Other  ClassStats

	BusyTimeSec float64 // total time with at least one outstanding op
	InFlight    uint64  // instantaneous queue length
}

// Device pairs an identity with its counters for one sample.
type Device struct {
	Identity DeviceIdentity
	Stats    DevStats
}

// Snapshot holds all per-device counters captured at one instant.
// Timestamp carries Go's monotonic clock reading, so elapsed time
// between two snapshots is immune to wall-clock adjustment.
type Snapshot struct {
	Timestamp time.Time
	Uptime    time.Duration // time since boot; etime for the first sample
	Devices   []Device
}
