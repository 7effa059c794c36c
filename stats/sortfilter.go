package stats

import (
	"regexp"
	"sort"

	"github.com/gstat-go/gstat/model"
)

// autoBusyPct is the -a threshold: devices below 0.1% busy are hidden.
const autoBusyPct = 0.1

// Filters holds the compiled, per-cycle filter set. It is rebuilt from
// ViewState each cycle; nothing here is cached per device.
type Filters struct {
	Physical bool
	Auto     bool
	Include  *regexp.Regexp
	Exclude  *regexp.Regexp
}

// FiltersFromState compiles the state's regexes. An unparseable
// pattern is an error; the controller validates patterns before they
// reach the state, so this only fails on a hand-edited config.
func FiltersFromState(st model.ViewState) (Filters, error) {
	f := Filters{Physical: st.Physical, Auto: st.Auto}
	var err error
	if st.Include != "" {
		if f.Include, err = regexp.Compile(st.Include); err != nil {
			return Filters{}, err
		}
	}
	if st.Exclude != "" {
		if f.Exclude, err = regexp.Compile(st.Exclude); err != nil {
			return Filters{}, err
		}
	}
	return f, nil
}

// Apply reduces and orders the differencer's output for display:
// rank filter, include regex, exclude regex, auto filter, then a
// stable sort on the selected column. An empty result is valid.
// The input slice is not modified.
func Apply(recs []model.Record, f Filters, sortCol ColumnID, haveSort, reverse bool) []model.Record {
	out := make([]model.Record, 0, len(recs))
	for _, r := range recs {
		if f.Physical && r.Identity.Rank != 1 {
			continue
		}
		if f.Include != nil && !f.Include.MatchString(r.Identity.Name) {
			continue
		}
		if f.Exclude != nil && f.Exclude.MatchString(r.Identity.Name) {
			continue
		}
		if f.Auto && r.Metrics.BusyPct < autoBusyPct {
			continue
		}
		out = append(out, r)
	}

	if !haveSort || !IsSortable(sortCol) {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], sortCol, reverse)
	})
	return out
}

// less orders descending by default (busiest first), ascending when
// reversed; ties always break by name ascending for determinism.
func less(a, b model.Record, col ColumnID, reverse bool) bool {
	if col == ColName {
		if reverse {
			return a.Identity.Name > b.Identity.Name
		}
		return a.Identity.Name < b.Identity.Name
	}
	av, bv := sortValue(a, col), sortValue(b, col)
	if av == bv {
		return a.Identity.Name < b.Identity.Name
	}
	if reverse {
		return av < bv
	}
	return av > bv
}
