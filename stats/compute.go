// Package stats turns raw counter snapshots into per-device rate
// records and orders them for display.
package stats

import (
	"github.com/gstat-go/gstat/model"
	"github.com/gstat-go/gstat/util"
)

// Compute derives one MetricRecord per producer device in curr,
// preserving curr's device order. prev may be nil on the first sample,
// in which case rates are computed since boot against zero counters
// (like iostat's first line). Devices present only in prev are
// dropped; devices new in curr get zero rates. Consumer-kind entries
// are discarded.
func Compute(prev *model.Snapshot, curr model.Snapshot) []model.Record {
	var etime float64
	prevStats := make(map[string]model.DevStats)
	if prev != nil {
		etime = curr.Timestamp.Sub(prev.Timestamp).Seconds()
		for _, d := range prev.Devices {
			prevStats[d.Identity.Name] = d.Stats
		}
	} else {
		etime = curr.Uptime.Seconds()
	}

	recs := make([]model.Record, 0, len(curr.Devices))
	for _, d := range curr.Devices {
		if d.Identity.Kind != model.KindProvider {
			continue
		}
		p, seen := prevStats[d.Identity.Name]
		if prev != nil && !seen {
			// Newly appeared: no basis for a delta yet.
			recs = append(recs, model.Record{Identity: d.Identity})
			continue
		}
		recs = append(recs, model.Record{
			Identity: d.Identity,
			Metrics:  diff(p, d.Stats, etime),
		})
	}
	return recs
}

// diff computes rates between two counter sets of the same device.
// etime <= 0 yields all-zero rates. A class whose counters decreased
// (device reset) contributes zero deltas without affecting the other
// classes.
func diff(prev, curr model.DevStats, etime float64) model.MetricRecord {
	r := model.MetricRecord{QueueDepth: curr.InFlight}
	if etime <= 0 {
		return r
	}
	r.Read = classRate(prev.Read, curr.Read, etime)
	r.Write = classRate(prev.Write, curr.Write, etime)
	r.Delete = classRate(prev.Delete, curr.Delete, etime)
	r.Other = classRate(prev.Other, curr.Other, etime)
	r.OpsPerSec = r.Read.OpsPerSec + r.Write.OpsPerSec +
		r.Delete.OpsPerSec + r.Other.OpsPerSec
	r.BusyPct = util.Clamp01(util.DeltaF(prev.BusyTimeSec, curr.BusyTimeSec)/etime) * 100
	return r
}

func classRate(prev, curr model.ClassStats, etime float64) model.ClassRate {
	ops := util.Delta(prev.Ops, curr.Ops)
	bytes := util.Delta(prev.Bytes, curr.Bytes)
	dur := util.DeltaF(prev.DurationSec, curr.DurationSec)

	cr := model.ClassRate{
		OpsPerSec: float64(ops) / etime,
		KBPerSec:  float64(bytes) / 1024 / etime,
	}
	if ops > 0 {
		cr.KBPerOp = float64(bytes) / 1024 / float64(ops)
		cr.MsPerOp = dur * 1000 / float64(ops)
	}
	return cr
}
