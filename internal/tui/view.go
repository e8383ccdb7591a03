package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-cards/internal/render"
)

const (
	appTitle    = "Random users"
	listHelp    = "↑/↓ move  enter details  s sort  i about  q quit"
	popupHelp   = "esc close  c copy email  q quit"
	minListRows = 5
	// title, sort line, blank lines, status and help around the list
	chromeRows = 10
)

func (m cardsModel) View() string {
	snap := m.surface.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	if m.loading {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n")

	if snap.Revealed {
		b.WriteString(sortStyle.Render("Sort: "+snap.Sort.Label()) + "\n\n")
		b.WriteString(m.listView(snap.Cards))
	} else {
		b.WriteString("\nLoading users...\n")
	}

	if snap.Popup != nil {
		b.WriteString("\n" + popupView(snap))
	}

	if m.showInfo {
		b.WriteString("\n" + renderBuildInfo(m.buildInfo) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	help := listHelp
	if snap.Popup != nil {
		help = popupHelp
	}
	b.WriteString("\n" + helpStyle.Render(help))

	return appStyle.Render(b.String())
}

func (m cardsModel) listView(cards []render.TextCard) string {
	if len(cards) == 0 {
		return "No users\n"
	}

	from, to := visibleRange(len(cards), m.cursor, m.height)

	var b strings.Builder
	for i := from; i < to; i++ {
		line := fmt.Sprintf("  %s", cards[i].Name)
		if i == m.cursor {
			line = cursorStyle.Render("> " + cards[i].Name)
		}
		b.WriteString(line + "\n")
	}
	if to-from < len(cards) {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(cards))) + "\n")
	}
	return b.String()
}

// visibleRange returns the window of list rows that fits height with the
// cursor inside it. Zero height means unknown and shows everything.
func visibleRange(total, cursor, height int) (int, int) {
	if height <= 0 {
		return 0, total
	}
	rows := max(height-chromeRows, minListRows)
	if total <= rows {
		return 0, total
	}

	from := max(cursor-rows/2, 0)
	from = min(from, total-rows)
	return from, from + rows
}

func popupView(snap render.TextSnapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(snap.PopupTitle) + "\n\n")
	for _, row := range snap.Popup {
		b.WriteString(labelStyle.Render(row.Label+":") + " " + row.Value + "\n")
	}
	return overlayBoxStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}
