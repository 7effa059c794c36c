// Package geom provides the counter-snapshot source: an interface over
// an OS statistics subsystem plus a Linux /proc/diskstats
// implementation. The rest of the program only sees model.Snapshot
// values, so a devstat- or GEOM-backed sampler can replace the Linux
// one without touching the dashboard core.
package geom

import "github.com/gstat-go/gstat/model"

// Sampler produces point-in-time cumulative counter snapshots.
// Sample is called synchronously from the refresh loop.
type Sampler interface {
	Sample() (model.Snapshot, error)
}
