package model

import "time"

// ViewState is the single mutable dashboard state. It is created at
// startup from the persisted config (or defaults), mutated only by the
// interactive controller, and written back on every mutating command
// and at shutdown. Session-only state (paused, focused row) lives in
// the UI model and is not persisted, matching gstat(8) behavior.
type ViewState struct {
	SortCol  string        `json:"sort"`     // column id, "" = snapshot order
	Reverse  bool          `json:"reverse"`  // ascending instead of descending
	Include  string        `json:"filter"`   // include regex, "" = all
	Exclude  string        `json:"exclude"`  // exclude regex, "" = none
	Auto     bool          `json:"auto"`     // only devices >= 0.1% busy
	Physical bool          `json:"physical"` // only rank-1 devices
	Interval time.Duration `json:"interval_ns"`
	Columns  uint32        `json:"columns"` // visible-column bitmask
}
