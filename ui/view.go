package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/gstat-go/gstat/model"
	"github.com/gstat-go/gstat/stats"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	recs := m.visible()
	visCols := stats.Visible(m.st.Columns)
	maxName := 0
	for _, r := range recs {
		if len(r.Identity.Name) > maxName {
			maxName = len(r.Identity.Name)
		}
	}
	nw := nameWidth(maxName)
	minW := minPanelWidth(visCols, maxName)

	bodyH := m.height - 1 // one footer line
	var body string
	switch m.mode {
	case modeFilterInclude, modeFilterExclude:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.renderFilterPrompt())
	case modeColumns:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.renderColumnSelector())
	default:
		panels := layoutPanels(len(recs), m.width, minW)
		blocks := make([]string, 0, len(panels))
		for _, p := range panels {
			blocks = append(blocks, m.renderPanel(recs, p, visCols, nw, bodyH))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
		if len(recs) == 0 {
			body += "\n" + dimStyle.Render("(no matching devices)")
		}
	}

	return body + "\n" + m.renderFooter(recs)
}

// renderPanel renders one row range as a fixed-width table block.
func (m Model) renderPanel(recs []model.Record, p panel, cols []stats.Column, nw, maxH int) string {
	var sb strings.Builder

	hdr := make([]string, 0, len(cols))
	for _, c := range cols {
		cell := padCell(c.Header, c, nw)
		if c.Key() == m.st.SortCol {
			cell = sortHdrStyle.Render(cell)
		} else {
			cell = headerStyle.Render(cell)
		}
		hdr = append(hdr, cell)
	}
	sb.WriteString(strings.Join(hdr, " "))

	rows := p.end - p.start
	if rows > maxH-1 {
		rows = maxH - 1 // header takes one line
	}
	for i := 0; i < rows; i++ {
		r := recs[p.start+i]
		sb.WriteString("\n")
		if p.start+i == m.selected {
			sb.WriteString(selectedStyle.Render(plainRow(r, cols, nw)))
			continue
		}
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cell := padCell(stats.Format(r, c.ID), c, nw)
			if c.ID == stats.ColBusy {
				cell = busyStyle(r.Metrics.BusyPct).Render(cell)
			}
			cells = append(cells, cell)
		}
		sb.WriteString(strings.Join(cells, " "))
	}
	return sb.String()
}

// plainRow renders a row without per-cell styling, for the focus
// highlight to cover the whole line.
func plainRow(r model.Record, cols []stats.Column, nw int) string {
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, padCell(stats.Format(r, c.ID), c, nw))
	}
	return strings.Join(cells, " ")
}

// padCell pads a cell to its column width; the name column is
// left-aligned, everything else right-aligned.
func padCell(s string, c stats.Column, nw int) string {
	if c.ID == stats.ColName {
		return fmt.Sprintf("%-*s", nw, s)
	}
	return fmt.Sprintf("%*s", c.Width, s)
}

func (m Model) renderFilterPrompt() string {
	title := "Include filter"
	if m.mode == modeFilterExclude {
		title = "Exclude filter"
	}
	var sb strings.Builder
	sb.WriteString(title + "\n")
	sb.WriteString(m.filterInput.View())
	if m.filterErr != "" {
		sb.WriteString("\n" + errStyle.Render(m.filterErr))
	}
	sb.WriteString("\n" + dimStyle.Render("enter apply (empty clears) · esc cancel"))
	return popupStyle.Width(44).Render(sb.String())
}

func (m Model) renderColumnSelector() string {
	var sb strings.Builder
	sb.WriteString("Select columns\n")
	for i, c := range Toggleable() {
		cursor := "  "
		if i == m.colCursor {
			cursor = "> "
		}
		mark := "[ ]"
		if stats.IsVisible(m.st.Columns, c.ID) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, c.Name)
		if i == m.colCursor {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(dimStyle.Render("space toggle · esc close"))
	return popupStyle.Render(sb.String())
}

func (m Model) renderFooter(recs []model.Record) string {
	hints := dimStyle.Render("space pause · +/- sort · r reverse · f/F filter · ins cols · del hide · </> speed · q quit")

	var status []string
	if m.pollErr != nil {
		status = append(status, errStyle.Render("! poll failed"))
	}
	if m.paused {
		status = append(status, pausedStyle.Render("PAUSED"))
	}
	var bps float64
	for _, r := range recs {
		bps += (r.Metrics.Read.KBPerSec + r.Metrics.Write.KBPerSec) * 1024
	}
	status = append(status, fmt.Sprintf("%s/s", humanize.IBytes(uint64(bps))))
	status = append(status, m.st.Interval.String())

	right := strings.Join(status, "  ")
	gap := m.width - lipgloss.Width(hints) - lipgloss.Width(right)
	if gap < 1 {
		return right
	}
	return hints + strings.Repeat(" ", gap) + right
}
