package tui

import (
	"context"

	"github.com/MKhiriev/go-user-cards/internal/controller"
	"github.com/MKhiriev/go-user-cards/internal/render"
	"github.com/MKhiriev/go-user-cards/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type cardsModel struct {
	ctx       context.Context
	ctrl      Controller
	surface   *render.TextSurface
	buildInfo models.AppBuildInfo

	spinner  spinner.Model
	loading  bool
	cursor   int
	height   int
	showInfo bool
	status   string
	errMsg   string
}

func newCardsModel(ctx context.Context, ctrl Controller, surface *render.TextSurface, buildInfo models.AppBuildInfo) cardsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return cardsModel{
		ctx:       ctx,
		ctrl:      ctrl,
		surface:   surface,
		buildInfo: buildInfo,
		spinner:   s,
		loading:   true,
	}
}

func (m cardsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdStartup(m.ctx, m.ctrl))
}

func (m cardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startupDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeStartupError(msg.err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case copiedMsg:
		m.status = "Email copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = msg.err.Error()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m cardsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, keys.info) {
		m.showInfo = !m.showInfo
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	if _, open := m.ctrl.OpenPopup(); open {
		switch {
		case key.Matches(msg, keys.esc):
			m.ctrl.ClickPopup(controller.BackdropTarget())
		case key.Matches(msg, keys.copy):
			if email := m.surface.Snapshot().PopupEmail; email != "" {
				return m, cmdCopyToClipboard(email)
			}
		}
		return m, nil
	}

	cards := m.surface.Snapshot().Cards
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(cards)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if m.cursor < len(cards) {
			m.ctrl.ClickCard(controller.CardTarget(cards[m.cursor].ID))
		}
	case key.Matches(msg, keys.sort):
		m.cursor = m.resort(cards)
	}

	return m, nil
}

// resort toggles the order and returns the new cursor position, keeping it
// on the same user.
func (m cardsModel) resort(before []render.TextCard) int {
	var selected string
	if m.cursor < len(before) {
		selected = before[m.cursor].ID
	}

	m.ctrl.ChangeSort(m.ctrl.Sort().Toggle())

	for i, card := range m.surface.Snapshot().Cards {
		if card.ID == selected {
			return i
		}
	}
	return 0
}
