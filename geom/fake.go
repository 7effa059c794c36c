package geom

import "github.com/gstat-go/gstat/model"

// FakeSampler replays queued snapshots; used by tests.
type FakeSampler struct {
	Snaps []model.Snapshot
	Err   error
	calls int
}

func (f *FakeSampler) Sample() (model.Snapshot, error) {
	if f.Err != nil {
		return model.Snapshot{}, f.Err
	}
	if len(f.Snaps) == 0 {
		return model.Snapshot{}, nil
	}
	i := f.calls
	if i >= len(f.Snaps) {
		i = len(f.Snaps) - 1
	}
	f.calls++
	return f.Snaps[i], nil
}
