package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstat-go/gstat/stats"
)

func TestMinPanelWidthDefaults(t *testing.T) {
	// Default columns: 5 + 7*8 + name(10) + 9 separators = 80 columns,
	// the classic gstat(8) width.
	cols := stats.Visible(stats.DefaultMask)
	assert.Equal(t, 80, minPanelWidth(cols, 8))
}

func TestMinPanelWidthGrowsWithName(t *testing.T) {
	cols := stats.Visible(stats.DefaultMask)
	base := minPanelWidth(cols, 10)
	long := minPanelWidth(cols, 25)
	assert.Equal(t, base+15, long, "name column grows, never truncates")
}

func TestNameWidthFloor(t *testing.T) {
	assert.Equal(t, 10, nameWidth(0))
	assert.Equal(t, 10, nameWidth(4))
	assert.Equal(t, 17, nameWidth(17))
}

func TestLayoutSinglePanelWhenNarrow(t *testing.T) {
	// Terminal narrower than one panel: still exactly one panel.
	panels := layoutPanels(10, 40, 80)
	require.Len(t, panels, 1)
	assert.Equal(t, panel{start: 0, end: 10}, panels[0])
}

func TestLayoutSinglePanelWhenNoRoomForTwo(t *testing.T) {
	// Room for one panel but not two: one full-width panel with every
	// device in order.
	panels := layoutPanels(6, 100, 80)
	require.Len(t, panels, 1)
	assert.Equal(t, panel{start: 0, end: 6}, panels[0])
}

func TestLayoutSideBySide(t *testing.T) {
	// 7 devices over 3 panels: ceil(7/3) = 3, block-wise in order.
	panels := layoutPanels(7, 250, 80)
	require.Len(t, panels, 3)
	assert.Equal(t, panel{start: 0, end: 3}, panels[0])
	assert.Equal(t, panel{start: 3, end: 6}, panels[1])
	assert.Equal(t, panel{start: 6, end: 7}, panels[2])
}

func TestLayoutPanelsCappedByDevices(t *testing.T) {
	panels := layoutPanels(2, 500, 80)
	require.Len(t, panels, 2)
	assert.Equal(t, panel{start: 0, end: 1}, panels[0])
	assert.Equal(t, panel{start: 1, end: 2}, panels[1])
}

func TestLayoutEmpty(t *testing.T) {
	panels := layoutPanels(0, 200, 80)
	require.Len(t, panels, 1)
	assert.Equal(t, panel{start: 0, end: 0}, panels[0])
}
