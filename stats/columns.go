package stats

import (
	"fmt"
	"strings"

	"github.com/gstat-go/gstat/model"
)

// ColumnID indexes the static column registry. The order matches
// gstat(8)'s display order and the bit positions of the persisted
// visibility mask.
type ColumnID int

const (
	ColQueue ColumnID = iota
	ColOps
	ColReadOps
	ColReadKBPerOp
	ColReadKBPerSec
	ColReadMs
	ColWriteOps
	ColWriteKBPerOp
	ColWriteKBPerSec
	ColWriteMs
	ColDeleteOps
	ColDeleteKBPerOp
	ColDeleteKBPerSec
	ColDeleteMs
	ColOtherOps
	ColOtherMs
	ColBusy
	ColName
	NumColumns
)

// DefaultMask is the default visible-column set: queue, total ops,
// read and write rate/latency groups, %busy and the device name.
const DefaultMask uint32 = 0x30377

// Column describes one metric column of the dashboard table.
type Column struct {
	ID       ColumnID
	Name     string // long name, shown in the column selector
	Header   string
	Width    int  // fixed cell width; Name is sized to the longest name
	Always   bool // not toggleable; the identifying column
	Sortable bool
}

var columns = [NumColumns]Column{
	{ColQueue, "Queue depth", "L(q)", 5, false, true},
	{ColOps, "IOPs", " ops/s", 7, false, true},
	{ColReadOps, "Read IOPs", "   r/s", 7, false, true},
	{ColReadKBPerOp, "Read size", "kB/r", 5, false, true},
	{ColReadKBPerSec, "Read throughput", "kB/s r", 7, false, true},
	{ColReadMs, "Read latency", "  ms/r", 7, false, true},
	{ColWriteOps, "Write IOPs", "   w/s", 7, false, true},
	{ColWriteKBPerOp, "Write size", "kB/w", 5, false, true},
	{ColWriteKBPerSec, "Write throughput", "kB/s w", 7, false, true},
	{ColWriteMs, "Write latency", "  ms/w", 7, false, true},
	{ColDeleteOps, "Delete IOPs", "   d/s", 7, false, true},
	{ColDeleteKBPerOp, "Delete size", "kB/d", 5, false, true},
	{ColDeleteKBPerSec, "Delete throughput", "kB/s d", 7, false, true},
	{ColDeleteMs, "Delete latency", "  ms/d", 7, false, true},
	{ColOtherOps, "Other IOPs", "   o/s", 7, false, true},
	{ColOtherMs, "Other latency", "  ms/o", 7, false, true},
	{ColBusy, "Percent busy", " %busy", 7, false, true},
	{ColName, "Name", "Name", 10, true, true},
}

// Key returns the column's stable id, used in the config file and on
// the command line.
func (c Column) Key() string {
	return strings.TrimSpace(c.Header)
}

// All returns the registry in display order.
func All() []Column {
	return columns[:]
}

// Lookup resolves a column by its trimmed header (the id used on the
// command line and in the config file).
func Lookup(name string) (ColumnID, bool) {
	name = strings.TrimSpace(name)
	for _, c := range columns {
		if strings.TrimSpace(c.Header) == name {
			return c.ID, true
		}
	}
	return 0, false
}

// IsSortable reports whether the table can be ordered by id.
func IsSortable(id ColumnID) bool {
	return id >= 0 && id < NumColumns && columns[id].Sortable
}

// IsVisible reports whether id is set in the visibility mask. The
// name column is always visible regardless of the mask.
func IsVisible(mask uint32, id ColumnID) bool {
	if columns[id].Always {
		return true
	}
	return mask&(1<<uint(id)) != 0
}

// Visible returns the visible columns in display order.
func Visible(mask uint32) []Column {
	var out []Column
	for _, c := range columns {
		if IsVisible(mask, c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// MaskWithLegacy applies the gstat(8) -d, -o and -s switches on top of
// a visibility mask.
func MaskWithLegacy(mask uint32, delete, other, size bool) uint32 {
	if delete {
		mask |= 1<<uint(ColDeleteOps) | 1<<uint(ColDeleteKBPerSec) | 1<<uint(ColDeleteMs)
	}
	if other {
		mask |= 1<<uint(ColOtherOps) | 1<<uint(ColOtherMs)
	}
	if size {
		mask |= 1<<uint(ColReadKBPerOp) | 1<<uint(ColWriteKBPerOp)
		if delete {
			mask |= 1 << uint(ColDeleteKBPerOp)
		}
	}
	return mask
}

// Format renders one cell at the column's fixed width. The name column
// is returned unpadded; the layout engine sizes it.
func Format(r model.Record, id ColumnID) string {
	m := r.Metrics
	switch id {
	case ColQueue:
		return fmt.Sprintf("%4d", m.QueueDepth)
	case ColOps:
		return fmt.Sprintf("%6.0f", m.OpsPerSec)
	case ColReadOps:
		return fmt.Sprintf("%6.0f", m.Read.OpsPerSec)
	case ColReadKBPerOp:
		return fmt.Sprintf("%4.0f", m.Read.KBPerOp)
	case ColReadKBPerSec:
		return fmt.Sprintf("%6.0f", m.Read.KBPerSec)
	case ColReadMs:
		return fmt.Sprintf("%6.1f", m.Read.MsPerOp)
	case ColWriteOps:
		return fmt.Sprintf("%6.0f", m.Write.OpsPerSec)
	case ColWriteKBPerOp:
		return fmt.Sprintf("%4.0f", m.Write.KBPerOp)
	case ColWriteKBPerSec:
		return fmt.Sprintf("%6.0f", m.Write.KBPerSec)
	case ColWriteMs:
		return fmt.Sprintf("%6.1f", m.Write.MsPerOp)
	case ColDeleteOps:
		return fmt.Sprintf("%6.0f", m.Delete.OpsPerSec)
	case ColDeleteKBPerOp:
		return fmt.Sprintf("%4.0f", m.Delete.KBPerOp)
	case ColDeleteKBPerSec:
		return fmt.Sprintf("%6.0f", m.Delete.KBPerSec)
	case ColDeleteMs:
		return fmt.Sprintf("%6.1f", m.Delete.MsPerOp)
	case ColOtherOps:
		return fmt.Sprintf("%6.0f", m.Other.OpsPerSec)
	case ColOtherMs:
		return fmt.Sprintf("%6.1f", m.Other.MsPerOp)
	case ColBusy:
		return fmt.Sprintf("%6.1f", m.BusyPct)
	case ColName:
		return r.Identity.Name
	}
	return ""
}

// sortValue extracts the numeric sort key for id. The name column has
// no numeric key and is compared as a string by the sorter.
func sortValue(r model.Record, id ColumnID) float64 {
	m := r.Metrics
	switch id {
	case ColQueue:
		return float64(m.QueueDepth)
	case ColOps:
		return m.OpsPerSec
	case ColReadOps:
		return m.Read.OpsPerSec
	case ColReadKBPerOp:
		return m.Read.KBPerOp
	case ColReadKBPerSec:
		return m.Read.KBPerSec
	case ColReadMs:
		return m.Read.MsPerOp
	case ColWriteOps:
		return m.Write.OpsPerSec
	case ColWriteKBPerOp:
		return m.Write.KBPerOp
	case ColWriteKBPerSec:
		return m.Write.KBPerSec
	case ColWriteMs:
		return m.Write.MsPerOp
	case ColDeleteOps:
		return m.Delete.OpsPerSec
	case ColDeleteKBPerOp:
		return m.Delete.KBPerOp
	case ColDeleteKBPerSec:
		return m.Delete.KBPerSec
	case ColDeleteMs:
		return m.Delete.MsPerOp
	case ColOtherOps:
		return m.Other.OpsPerSec
	case ColOtherMs:
		return m.Other.MsPerOp
	case ColBusy:
		return m.BusyPct
	}
	return 0
}
