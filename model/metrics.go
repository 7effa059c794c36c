package model

// ClassRate holds derived per-second metrics for one operation class.
type ClassRate struct {
	OpsPerSec float64
	KBPerOp   float64 // average transfer size
	KBPerSec  float64
	MsPerOp   float64 // average service time
}

// MetricRecord is the derived, per-device, per-sample view of a
// device's activity. All rate fields are non-negative; a counter that
// went backwards is treated as a reset and contributes a zero delta.
type MetricRecord struct {
	QueueDepth uint64
	OpsPerSec  float64 // all classes combined

	Read   ClassRate
	Write  ClassRate
	Delete ClassRate
	Other  ClassRate

	BusyPct float64 // 0..100
}

// Record is one row of the dashboard: an identity plus its metrics.
type Record struct {
	Identity DeviceIdentity
	Metrics  MetricRecord
}
