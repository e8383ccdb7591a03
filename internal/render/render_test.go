package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-cards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alice() models.User {
	return models.User{
		ID:        "id-1",
		TitleName: "ms",
		FirstName: "alice",
		LastName:  "smith",
		Contacts: models.Contacts{
			Street: "1 high st",
			City:   "london",
			State:  "greater london",
			Email:  "alice@example.com",
			Phone:  "020 7946 0000",
		},
		Avatar: models.Avatar{Medium: "https://img/med/a.jpg", Large: "https://img/large/a.jpg"},
	}
}

func bob() models.User {
	return models.User{
		ID:        "id-2",
		TitleName: "mr",
		FirstName: "bob",
		LastName:  "jones",
		Contacts:  models.Contacts{City: "leeds", State: "west yorkshire", Email: "bob@example.com"},
		Avatar:    models.Avatar{Medium: "https://img/med/b.jpg", Large: "https://img/large/b.jpg"},
	}
}

func TestPopupRows(t *testing.T) {
	rows := PopupRows(alice())

	assert.Equal(t, []Row{
		{Label: "Street", Value: "1 high st"},
		{Label: "City", Value: "London"},
		{Label: "State", Value: "Greater london"},
		{Label: "Email", Value: "alice@example.com"},
		{Label: "Phone number", Value: "020 7946 0000"},
	}, rows)
}

func TestHTMLSurface_InitialState(t *testing.T) {
	s := NewHTMLSurface()
	snap := s.Snapshot()

	assert.Empty(t, snap.Cards)
	assert.True(t, snap.PopupHidden)
	assert.Empty(t, snap.Popup)
	assert.Equal(t, 0.0, snap.ListOpacity)
	assert.Equal(t, 0.0, snap.SortOpacity)
	assert.Equal(t, models.SortAscending, snap.Sort)
}

func TestHTMLSurface_AppendCard(t *testing.T) {
	s := NewHTMLSurface()
	s.AppendCard(alice())
	s.AppendCard(bob())

	snap := s.Snapshot()
	require.Len(t, snap.Cards, 2)
	require.NoError(t, s.Err())

	first := string(snap.Cards[0])
	assert.Contains(t, first, `<article class="user-card" data-id="id-1">`)
	assert.Contains(t, first, `src="https://img/med/a.jpg"`)
	assert.Contains(t, first, "Ms. Alice Smith")
	assert.Contains(t, first, `action="/users/id-1/popup"`)
	assert.Contains(t, string(snap.Cards[1]), "Mr. Bob Jones")
}

func TestHTMLSurface_ClearCards(t *testing.T) {
	s := NewHTMLSurface()
	s.AppendCard(alice())
	s.ClearCards()

	assert.Empty(t, s.Snapshot().Cards)
}

func TestHTMLSurface_Popup(t *testing.T) {
	s := NewHTMLSurface()

	s.ShowPopup(alice())
	snap := s.Snapshot()
	assert.False(t, snap.PopupHidden)

	popup := string(snap.Popup)
	assert.True(t, strings.HasPrefix(popup, `<div class="popup">`))
	assert.Contains(t, popup, `src="https://img/large/a.jpg"`)
	assert.Contains(t, popup, "<span>Street:</span>1 high st")
	assert.Contains(t, popup, "<span>City:</span>London")
	assert.Contains(t, popup, "<span>State:</span>Greater london")
	assert.Contains(t, popup, "<span>Email:</span>alice@example.com")
	assert.Contains(t, popup, "<span>Phone number:</span>020 7946 0000")

	s.ShowPopup(bob())
	popup = string(s.Snapshot().Popup)
	assert.Contains(t, popup, "bob@example.com")
	assert.NotContains(t, popup, "alice@example.com")

	s.HidePopup()
	snap = s.Snapshot()
	assert.True(t, snap.PopupHidden)
	assert.Empty(t, snap.Popup)
}

func TestHTMLSurface_EscapesUserData(t *testing.T) {
	u := alice()
	u.FirstName = "<script>"

	s := NewHTMLSurface()
	s.AppendCard(u)

	card := string(s.Snapshot().Cards[0])
	assert.NotContains(t, card, "<script>")
	assert.Contains(t, card, "&lt;script&gt;")
}

func TestHTMLSurface_Reveal(t *testing.T) {
	s := NewHTMLSurface()
	s.Reveal()

	snap := s.Snapshot()
	assert.Equal(t, 1.0, snap.ListOpacity)
	assert.Equal(t, 1.0, snap.SortOpacity)
}

func TestHTMLSurface_Page(t *testing.T) {
	s := NewHTMLSurface()
	s.AppendCard(alice())
	s.SetSortSelection(models.SortDescending)

	page, err := s.Page()
	require.NoError(t, err)

	assert.Contains(t, page, `class="sort-selection"`)
	assert.Contains(t, page, `<option value="Default order">Default order</option>`)
	assert.Contains(t, page, `<option value="Reverse order" selected>Reverse order</option>`)
	assert.Contains(t, page, `data-id="id-1"`)
	assert.Contains(t, page, `class="popup-container hidden"`)
	assert.Contains(t, page, "opacity: 0")

	s.Reveal()
	s.ShowPopup(alice())
	page, err = s.Page()
	require.NoError(t, err)

	assert.Contains(t, page, `class="popup-container"`)
	assert.Contains(t, page, `<div class="popup">`)
	assert.Contains(t, page, "opacity: 1")
}

func TestTextSurface(t *testing.T) {
	s := NewTextSurface()
	s.AppendCard(alice())
	s.AppendCard(bob())

	snap := s.Snapshot()
	assert.Equal(t, []TextCard{
		{ID: "id-1", Name: "Ms. Alice Smith", Avatar: "https://img/med/a.jpg"},
		{ID: "id-2", Name: "Mr. Bob Jones", Avatar: "https://img/med/b.jpg"},
	}, snap.Cards)
	assert.Nil(t, snap.Popup)
	assert.False(t, snap.Revealed)

	s.ShowPopup(bob())
	snap = s.Snapshot()
	require.Len(t, snap.Popup, 5)
	assert.Equal(t, "bob@example.com", snap.PopupEmail)
	assert.Equal(t, "Mr. Bob Jones", snap.PopupTitle)

	s.HidePopup()
	s.Reveal()
	s.ClearCards()
	snap = s.Snapshot()
	assert.Nil(t, snap.Popup)
	assert.Empty(t, snap.PopupEmail)
	assert.True(t, snap.Revealed)
	assert.Empty(t, snap.Cards)
}

func TestTextSurface_String(t *testing.T) {
	s := NewTextSurface()
	s.SetSortSelection(models.SortDescending)
	s.AppendCard(alice())
	s.ShowPopup(alice())

	out := s.String()
	assert.Contains(t, out, "Sort: Reverse order\n")
	assert.Contains(t, out, "  1. Ms. Alice Smith\n")
	assert.Contains(t, out, "  City: London\n")
	assert.Contains(t, out, "  Phone number: 020 7946 0000\n")
}

func TestSurfaces_ConcurrentReads(t *testing.T) {
	html := NewHTMLSurface()
	text := NewTextSurface()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			html.AppendCard(alice())
			text.AppendCard(alice())
			_ = html.Snapshot()
			_ = text.String()
		})
	}
	wg.Wait()

	assert.Len(t, html.Snapshot().Cards, 8)
	assert.Len(t, text.Snapshot().Cards, 8)
}
