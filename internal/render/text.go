package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-cards/models"
)

// TextCard is one line of the user list.
type TextCard struct {
	ID     string
	Name   string
	Avatar string
}

// TextSnapshot is a consistent copy of the regions of a [TextSurface].
// Popup is nil while the overlay is hidden.
type TextSnapshot struct {
	Cards      []TextCard
	Popup      []Row
	PopupEmail string
	PopupTitle string
	Revealed   bool
	Sort       models.SortDirection
}

// TextSurface keeps every region as plain text. It is safe for concurrent
// use.
type TextSurface struct {
	mu sync.RWMutex

	cards      []TextCard
	popup      []Row
	popupEmail string
	popupTitle string
	revealed   bool
	sort       models.SortDirection
}

func NewTextSurface() *TextSurface {
	return &TextSurface{}
}

func (s *TextSurface) AppendCard(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append(s.cards, TextCard{ID: u.ID, Name: u.FullName(), Avatar: u.Avatar.Medium})
}

func (s *TextSurface) ClearCards() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = nil
}

func (s *TextSurface) ShowPopup(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = PopupRows(u)
	s.popupEmail = u.Contacts.Email
	s.popupTitle = u.FullName()
}

func (s *TextSurface) HidePopup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = nil
	s.popupEmail = ""
	s.popupTitle = ""
}

func (s *TextSurface) SetSortSelection(dir models.SortDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = dir
}

func (s *TextSurface) Reveal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revealed = true
}

func (s *TextSurface) Snapshot() TextSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := TextSnapshot{
		Cards:      make([]TextCard, len(s.cards)),
		PopupEmail: s.popupEmail,
		PopupTitle: s.popupTitle,
		Revealed:   s.revealed,
		Sort:       s.sort,
	}
	copy(snap.Cards, s.cards)
	if s.popup != nil {
		snap.Popup = make([]Row, len(s.popup))
		copy(snap.Popup, s.popup)
	}

	return snap
}

// String renders the surface as plain lines: the sort label, one line per
// card and the popup rows when it is open.
func (s *TextSurface) String() string {
	snap := s.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Sort: %s\n", snap.Sort.Label())
	for i, card := range snap.Cards {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, card.Name)
	}
	if snap.Popup != nil {
		fmt.Fprintf(&b, "\n%s\n", snap.PopupTitle)
		for _, row := range snap.Popup {
			fmt.Fprintf(&b, "  %s: %s\n", row.Label, row.Value)
		}
	}

	return b.String()
}
