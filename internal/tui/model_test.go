package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-cards/internal/controller"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/mock"
	"github.com/MKhiriev/go-user-cards/internal/render"
	"github.com/MKhiriev/go-user-cards/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testUser(id, first, email string) models.User {
	return models.User{
		ID:        id,
		TitleName: "mr",
		FirstName: first,
		LastName:  "doe",
		Contacts:  models.Contacts{City: "york", Email: email},
	}
}

// newTestModel runs the startup command of a fresh model and feeds its
// result back, as the program loop would.
func newTestModel(t *testing.T, users []models.User, fetchErr error) (cardsModel, *controller.Controller, *render.TextSurface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUserService(ctrl)
	svc.EXPECT().LoadBatch(gomock.Any()).Return(users, fetchErr)

	surface := render.NewTextSurface()
	c := controller.New(svc, surface, logger.Nop())
	m := newCardsModel(context.Background(), c, surface, models.NewAppBuildInfo("1.0.0", "", "abc"))

	msg := cmdStartup(m.ctx, c)()
	updated, _ := m.Update(msg)
	return updated.(cardsModel), c, surface
}

func press(t *testing.T, m cardsModel, keys ...tea.KeyMsg) (cardsModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		m = updated.(cardsModel)
	}
	return m, cmd
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = orig })
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func escKey() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func downKey() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }
func upKey() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyUp} }

func threeUsers() []models.User {
	return []models.User{
		testUser("1", "carl", "carl@example.com"),
		testUser("2", "amy", "amy@example.com"),
		testUser("3", "bea", "bea@example.com"),
	}
}

func TestModel_StartupDone(t *testing.T) {
	m, _, _ := newTestModel(t, threeUsers(), nil)

	assert.False(t, m.loading)
	assert.Empty(t, m.errMsg)

	view := m.View()
	assert.Contains(t, view, "Sort: Default order")
	assert.Contains(t, view, "Mr. Carl Doe")
	assert.Contains(t, view, "Mr. Amy Doe")
}

func TestModel_StartupFailed(t *testing.T) {
	m, c, _ := newTestModel(t, nil, errors.New("Problem getting users (429)"))

	assert.False(t, m.loading)
	assert.Empty(t, c.Users())

	view := m.View()
	assert.Contains(t, view, "Error: Problem getting users (429)")
	assert.Contains(t, view, "No users")
	assert.Contains(t, view, "Sort: Default order")
}

func TestModel_KeysIgnoredWhileLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := render.NewTextSurface()
	c := controller.New(mock.NewMockUserService(ctrl), surface, logger.Nop())
	m := newCardsModel(context.Background(), c, surface, models.NewAppBuildInfo("1.0.0", "", "abc"))

	m, _ = press(t, m, downKey(), enterKey())

	assert.Equal(t, 0, m.cursor)
	_, open := c.OpenPopup()
	assert.False(t, open)
	assert.Contains(t, m.View(), "Loading users...")
}

func TestModel_CursorMovement(t *testing.T) {
	m, _, _ := newTestModel(t, threeUsers(), nil)

	m, _ = press(t, m, downKey(), runeKey('j'), downKey())
	assert.Equal(t, 2, m.cursor, "cursor stops at the last card")

	m, _ = press(t, m, upKey(), runeKey('k'), upKey())
	assert.Equal(t, 0, m.cursor, "cursor stops at the first card")
}

func TestModel_OpenAndClosePopup(t *testing.T) {
	m, c, surface := newTestModel(t, threeUsers(), nil)

	m, _ = press(t, m, downKey(), enterKey())
	id, open := c.OpenPopup()
	require.True(t, open)
	assert.Equal(t, "2", id)

	view := m.View()
	assert.Contains(t, view, "Email: amy@example.com")
	assert.Contains(t, view, "City: York")

	// list keys are inactive while the popup is shown
	m, _ = press(t, m, downKey())
	assert.Equal(t, 1, m.cursor)

	m, _ = press(t, m, escKey())
	_, open = c.OpenPopup()
	assert.False(t, open)
	assert.Nil(t, surface.Snapshot().Popup)
}

func TestModel_ToggleSortKeepsSelection(t *testing.T) {
	m, c, _ := newTestModel(t, threeUsers(), nil)

	m, _ = press(t, m, runeKey('s'))
	assert.Equal(t, models.SortDescending, c.Sort())
	assert.Equal(t, "carl", c.Users()[0].FirstName)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "Sort: Reverse order")

	m, _ = press(t, m, runeKey('s'))
	assert.Equal(t, models.SortAscending, c.Sort())
	assert.Equal(t, 2, m.cursor, "cursor follows carl to the end")
}

func TestModel_CopyEmail(t *testing.T) {
	var copied string
	stubClipboard(t, func(text string) error {
		copied = text
		return nil
	})

	m, _, _ := newTestModel(t, threeUsers(), nil)

	_, cmd := press(t, m, runeKey('c'))
	assert.Nil(t, cmd, "copy works only inside the popup")

	m, cmd = press(t, m, enterKey(), runeKey('c'))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, copiedMsg{}, msg)
	assert.Equal(t, "carl@example.com", copied)

	updated, clear := m.Update(msg)
	m = updated.(cardsModel)
	assert.Equal(t, "Email copied", m.status)
	assert.NotNil(t, clear)

	updated, _ = m.Update(clearStatusMsg{})
	assert.Empty(t, updated.(cardsModel).status)
}

func TestModel_CopyFailed(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard") })

	m, _, _ := newTestModel(t, threeUsers(), nil)
	m, cmd := press(t, m, enterKey(), runeKey('c'))
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	assert.Contains(t, updated.(cardsModel).errMsg, "no clipboard")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, threeUsers(), nil)

	for _, k := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_BuildInfoToggle(t *testing.T) {
	m, _, _ := newTestModel(t, threeUsers(), nil)

	m, _ = press(t, m, runeKey('i'))
	assert.True(t, m.showInfo)
	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Date:    N/A")

	m, _ = press(t, m, runeKey('i'))
	assert.NotContains(t, m.View(), "Version:")
}

func TestHumanizeStartupError(t *testing.T) {
	assert.Empty(t, humanizeStartupError(nil))
	assert.Equal(t, "No network or the randomuser API is unreachable",
		humanizeStartupError(errors.New(`Problem getting users request: Get "https://x": dial tcp: lookup x: no such host`)))
	assert.Equal(t, "Problem getting users (429)", humanizeStartupError(errors.New("Problem getting users (429)")))
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name             string
		total, cursor, h int
		from, to         int
	}{
		{name: "unknown height", total: 50, cursor: 10, h: 0, from: 0, to: 50},
		{name: "fits", total: 4, cursor: 3, h: 40, from: 0, to: 4},
		{name: "top", total: 50, cursor: 0, h: 20, from: 0, to: 10},
		{name: "middle", total: 50, cursor: 25, h: 20, from: 20, to: 30},
		{name: "bottom", total: 50, cursor: 49, h: 20, from: 40, to: 50},
		{name: "tiny terminal", total: 50, cursor: 0, h: 3, from: 0, to: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := visibleRange(tt.total, tt.cursor, tt.h)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}
