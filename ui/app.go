// Package ui implements the interactive dashboard: a bubbletea model
// that owns the view state, drives the sample/render loop and
// persists every state mutation.
package ui

import (
	"regexp"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/gstat-go/gstat/config"
	"github.com/gstat-go/gstat/geom"
	"github.com/gstat-go/gstat/model"
	"github.com/gstat-go/gstat/stats"
)

// minInterval is the floor for '<'; halving can never reach zero.
const minInterval = 100 * time.Millisecond

// mode discriminates the interactive states. Rendering and input
// dispatch both switch on it.
type mode int

const (
	modeNormal mode = iota
	modeFilterInclude
	modeFilterExclude
	modeColumns
)

type tickMsg time.Time

// Model is the bubbletea model.
type Model struct {
	sampler geom.Sampler
	log     zerolog.Logger
	cfgPath string

	st model.ViewState

	width  int
	height int

	// Session-only interactive state.
	mode     mode
	paused   bool
	selected int // focused row, index into the filtered set

	filterInput textinput.Model
	filterErr   string
	colCursor   int // column selector focus, index into Toggleable()

	prev    *model.Snapshot
	recs    []model.Record
	pollErr error
}

// NewModel builds the dashboard model. first is the initial snapshot,
// already taken by the caller so that a broken sampler fails the
// process before the terminal enters raw mode.
func NewModel(sampler geom.Sampler, st model.ViewState, first model.Snapshot, cfgPath string, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "regex"
	ti.CharLimit = 128

	return Model{
		sampler:     sampler,
		log:         log,
		cfgPath:     cfgPath,
		st:          st,
		filterInput: ti,
		prev:        &first,
		recs:        stats.Compute(nil, first),
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.st.Interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused {
			m.sample()
		}
		return m, tick(m.st.Interval)

	case tea.KeyMsg:
		switch m.mode {
		case modeFilterInclude, modeFilterExclude:
			return m.updateFilterPrompt(msg)
		case modeColumns:
			return m.updateColumnSelector(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.save()
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
		if !m.paused {
			// Refresh immediately after unpause.
			m.sample()
		}
	case "+":
		m.cycleSort(1)
		m.save()
	case "-":
		m.cycleSort(-1)
		m.save()
	case "r":
		m.st.Reverse = !m.st.Reverse
		m.save()
	case "<":
		m.st.Interval /= 2
		if m.st.Interval < minInterval {
			m.st.Interval = minInterval
		}
		m.save()
	case ">":
		m.st.Interval *= 2
		m.save()
	case "a":
		m.st.Auto = !m.st.Auto
		m.save()
		m.clampSelected()
	case "p":
		m.st.Physical = !m.st.Physical
		m.save()
		m.clampSelected()
	case "f":
		m.mode = modeFilterInclude
		m.openFilterPrompt()
		return m, textinput.Blink
	case "F":
		m.mode = modeFilterExclude
		m.openFilterPrompt()
		return m, textinput.Blink
	case "delete":
		if id, ok := stats.Lookup(m.st.SortCol); ok && !stats.All()[id].Always {
			m.st.Columns &^= 1 << uint(id)
			m.save()
		}
	case "insert":
		m.mode = modeColumns
		m.colCursor = 0
	case "down", "j":
		m.selected++
		m.clampSelected()
	case "up", "k":
		m.selected--
		m.clampSelected()
	}
	return m, nil
}

// openFilterPrompt starts a fresh pattern entry. Submitting an empty
// pattern clears the filter, so the prompt never prefills the old one.
func (m *Model) openFilterPrompt() {
	m.filterErr = ""
	m.filterInput.SetValue("")
	m.filterInput.Focus()
}

func (m Model) updateFilterPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		pattern := m.filterInput.Value()
		if pattern != "" {
			if _, err := regexp.Compile(pattern); err != nil {
				m.filterErr = err.Error()
				return m, nil
			}
		}
		// An empty pattern clears the filter.
		if m.mode == modeFilterInclude {
			m.st.Include = pattern
		} else {
			m.st.Exclude = pattern
		}
		m.mode = modeNormal
		m.filterInput.Blur()
		m.save()
		m.clampSelected()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterErr = ""
	return m, cmd
}

func (m Model) updateColumnSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := Toggleable()
	switch msg.String() {
	case "down", "j":
		m.colCursor = (m.colCursor + 1) % len(cols)
	case "up", "k":
		m.colCursor--
		if m.colCursor < 0 {
			m.colCursor = len(cols) - 1
		}
	case " ":
		// Each toggle is persisted immediately, not deferred to exit.
		m.st.Columns ^= 1 << uint(cols[m.colCursor].ID)
		m.save()
	case "esc", "enter", "q":
		m.mode = modeNormal
	}
	return m, nil
}

// Toggleable returns the columns the selector can flip, in display
// order. The name column is excluded: the layout engine depends on it.
func Toggleable() []stats.Column {
	var out []stats.Column
	for _, c := range stats.All() {
		if !c.Always {
			out = append(out, c)
		}
	}
	return out
}

// sample polls the snapshot source and recomputes the rate records.
// A failed poll keeps the previous data on screen and surfaces a
// transient indicator; it never ends the session.
func (m *Model) sample() {
	snap, err := m.sampler.Sample()
	if err != nil {
		m.pollErr = err
		m.log.Warn().Err(err).Msg("snapshot poll failed")
		return
	}
	m.pollErr = nil
	m.recs = stats.Compute(m.prev, snap)
	m.prev = &snap
	m.clampSelected()
}

// visible applies the current filters and sort to the raw records.
// Pure with respect to the state: the same state and records always
// produce the same sequence.
func (m *Model) visible() []model.Record {
	f, err := stats.FiltersFromState(m.st)
	if err != nil {
		// Unparseable pattern from a hand-edited config: show all
		// rather than nothing.
		m.log.Warn().Err(err).Msg("invalid filter in state")
		f = stats.Filters{Physical: m.st.Physical, Auto: m.st.Auto}
	}
	id, ok := stats.Lookup(m.st.SortCol)
	return stats.Apply(m.recs, f, id, ok, m.st.Reverse)
}

// clampSelected keeps the focused row valid: clamped at both ends, and
// when rows disappear the nearest remaining row is reselected.
func (m *Model) clampSelected() {
	n := len(m.visible())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// cycleSort advances the sort column through the visible sortable
// columns, passing through "no sort" after either end.
func (m *Model) cycleSort(dir int) {
	cur, have := stats.Lookup(m.st.SortCol)
	idx := -1
	if have {
		idx = int(cur)
	}
	for {
		idx += dir
		if idx < -1 {
			idx = int(stats.NumColumns) - 1
		} else if idx >= int(stats.NumColumns) {
			idx = -1
		}
		if idx == -1 {
			m.st.SortCol = ""
			return
		}
		c := stats.All()[idx]
		if c.Sortable && stats.IsVisible(m.st.Columns, c.ID) {
			m.st.SortCol = c.Key()
			return
		}
	}
}

// save persists the view state. Failures (read-only filesystem, no
// home directory) are logged and ignored; the in-memory state stays
// authoritative for the session.
func (m *Model) save() {
	if err := config.Save(m.cfgPath, m.st); err != nil {
		m.log.Warn().Err(err).Msg("config save failed")
	}
}

// State returns the final view state, persisted by the caller after
// the program exits.
func (m Model) State() model.ViewState {
	return m.st
}
