package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstat-go/gstat/model"
)

func rec(name string, rank int, busy float64, rps float64) model.Record {
	return model.Record{
		Identity: model.DeviceIdentity{Name: name, Rank: rank, Kind: model.KindProvider},
		Metrics: model.MetricRecord{
			BusyPct: busy,
			Read:    model.ClassRate{OpsPerSec: rps},
		},
	}
}

func names(recs []model.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Identity.Name
	}
	return out
}

func mustFilters(t *testing.T, st model.ViewState) Filters {
	t.Helper()
	f, err := FiltersFromState(st)
	require.NoError(t, err)
	return f
}

func TestApplyIncludeExclude(t *testing.T) {
	// include ^da, exclude da1$, auto off: of {da0, da1, cd0} only da0 passes.
	recs := []model.Record{
		rec("da0", 1, 50, 10),
		rec("da1", 1, 50, 10),
		rec("cd0", 1, 50, 10),
	}
	f := mustFilters(t, model.ViewState{Include: "^da", Exclude: "da1$"})
	got := Apply(recs, f, 0, false, false)
	assert.Equal(t, []string{"da0"}, names(got))
}

func TestApplyRankFilter(t *testing.T) {
	recs := []model.Record{
		rec("da0", 1, 0, 0),
		rec("da0p1", 2, 0, 0),
	}
	f := mustFilters(t, model.ViewState{Physical: true})
	got := Apply(recs, f, 0, false, false)
	assert.Equal(t, []string{"da0"}, names(got))
}

func TestApplyAutoFilter(t *testing.T) {
	recs := []model.Record{
		rec("idle", 1, 0.05, 0),
		rec("busy", 1, 0.1, 0),
		rec("busier", 1, 42, 0),
	}
	f := mustFilters(t, model.ViewState{Auto: true})
	got := Apply(recs, f, 0, false, false)
	assert.Equal(t, []string{"busy", "busier"}, names(got))
}

func TestApplySortDescendingWithNameTieBreak(t *testing.T) {
	recs := []model.Record{
		rec("dc", 1, 0, 5),
		rec("db", 1, 0, 9),
		rec("da", 1, 0, 5),
	}
	got := Apply(recs, Filters{}, ColReadOps, true, false)
	assert.Equal(t, []string{"db", "da", "dc"}, names(got))

	// Tie-break order is independent of input order.
	rev := []model.Record{recs[2], recs[1], recs[0]}
	got = Apply(rev, Filters{}, ColReadOps, true, false)
	assert.Equal(t, []string{"db", "da", "dc"}, names(got))
}

func TestApplyReverse(t *testing.T) {
	recs := []model.Record{
		rec("da", 1, 0, 5),
		rec("db", 1, 0, 9),
	}
	got := Apply(recs, Filters{}, ColReadOps, true, true)
	assert.Equal(t, []string{"da", "db"}, names(got))
}

func TestApplySortByName(t *testing.T) {
	recs := []model.Record{
		rec("db", 1, 0, 0),
		rec("da", 1, 0, 0),
	}
	got := Apply(recs, Filters{}, ColName, true, false)
	assert.Equal(t, []string{"da", "db"}, names(got))

	got = Apply(recs, Filters{}, ColName, true, true)
	assert.Equal(t, []string{"db", "da"}, names(got))
}

func TestApplyIdempotent(t *testing.T) {
	recs := []model.Record{
		rec("da2", 2, 3, 7),
		rec("da0", 1, 1, 9),
		rec("da1", 1, 2, 9),
	}
	f := mustFilters(t, model.ViewState{Include: "^da"})
	first := Apply(recs, f, ColReadOps, true, false)
	second := Apply(first, f, ColReadOps, true, false)
	assert.Equal(t, first, second)
}

func TestApplyEmptyResultIsValid(t *testing.T) {
	recs := []model.Record{rec("da0", 1, 0, 0)}
	f := mustFilters(t, model.ViewState{Include: "^nomatch"})
	got := Apply(recs, f, ColReadOps, true, false)
	assert.Empty(t, got)

	got = Apply(nil, Filters{}, ColReadOps, true, false)
	assert.Empty(t, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	recs := []model.Record{
		rec("db", 1, 0, 1),
		rec("da", 1, 0, 2),
	}
	Apply(recs, Filters{}, ColReadOps, true, false)
	assert.Equal(t, []string{"db", "da"}, names(recs))
}

func TestFiltersFromStateRejectsBadPattern(t *testing.T) {
	_, err := FiltersFromState(model.ViewState{Include: "("})
	assert.Error(t, err)
	_, err = FiltersFromState(model.ViewState{Exclude: "["})
	assert.Error(t, err)
}
