package render

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-cards/models"
)

const cardTemplate = `<article class="user-card" data-id="{{.ID}}">
  <img class="user-card_img" src="{{.Avatar.Medium}}" alt="Avatar" />
  <h3 class="user-card_name">{{.FullName}}</h3>
  <form class="user-card_open" method="post" action="/users/{{.ID}}/popup"><button type="submit">Details</button></form>
</article>`

const popupTemplate = `<div class="popup">
  <img class="popup_img" src="{{.User.Avatar.Large}}" alt="Avatar" />
  <div class="popup_data">
{{- range .Rows}}
    <p class="popup_row"><span>{{.Label}}:</span>{{.Value}}</p>
{{- end}}
  </div>
</div>`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Users</title>
  <style>
    .users-container, .sort-selection { transition: opacity .3s; }
    .popup-container { position: fixed; inset: 0; background: rgba(0,0,0,.5); }
    .popup-container.hidden { display: none; }
    .popup-backdrop { position: absolute; inset: 0; }
    .popup-backdrop button { width: 100%; height: 100%; opacity: 0; }
    .popup { position: relative; margin: 10vh auto; max-width: 28rem; background: #fff; padding: 1rem; }
  </style>
</head>
<body>
  <form class="sort-selection" method="post" action="/sort" style="opacity: {{.SortOpacity}}">
    <select name="order" onchange="this.form.submit()">
{{- range .Options}}
      <option value="{{.Label}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
    </select>
    <noscript><button type="submit">Sort</button></noscript>
  </form>
  <section class="users-container" style="opacity: {{.ListOpacity}}">
{{- range .Cards}}
{{.}}
{{- end}}
  </section>
  <div class="popup-container{{if .PopupHidden}} hidden{{end}}">
    <form class="popup-backdrop" method="post" action="/popup/close"><button type="submit">Close</button></form>
{{- if .Popup}}
{{.Popup}}
{{- end}}
  </div>
</body>
</html>
`

var (
	cardTmpl  = template.Must(template.New("card").Parse(cardTemplate))
	popupTmpl = template.Must(template.New("popup").Parse(popupTemplate))
	pageTmpl  = template.Must(template.New("page").Parse(pageTemplate))
)

// HTMLSnapshot is a consistent copy of the regions of an [HTMLSurface].
type HTMLSnapshot struct {
	Cards       []template.HTML
	Popup       template.HTML
	PopupHidden bool
	ListOpacity float64
	SortOpacity float64
	Sort        models.SortDirection
}

type sortOption struct {
	Label    string
	Selected bool
}

// HTMLSurface renders every region as an HTML fragment. It is safe for
// concurrent use.
type HTMLSurface struct {
	mu sync.RWMutex

	cards       []template.HTML
	popup       template.HTML
	popupHidden bool
	listOpacity float64
	sortOpacity float64
	sort        models.SortDirection

	err error
}

func NewHTMLSurface() *HTMLSurface {
	return &HTMLSurface{
		popupHidden: true,
		listOpacity: opacityHidden,
		sortOpacity: opacityHidden,
	}
}

func (s *HTMLSurface) AppendCard(u models.User) {
	fragment, err := execute(cardTmpl, u)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return
	}
	s.cards = append(s.cards, fragment)
}

func (s *HTMLSurface) ClearCards() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = nil
}

func (s *HTMLSurface) ShowPopup(u models.User) {
	fragment, err := execute(popupTmpl, struct {
		User models.User
		Rows []Row
	}{User: u, Rows: PopupRows(u)})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return
	}
	s.popup = fragment
	s.popupHidden = false
}

func (s *HTMLSurface) HidePopup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = ""
	s.popupHidden = true
}

func (s *HTMLSurface) SetSortSelection(dir models.SortDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = dir
}

func (s *HTMLSurface) Reveal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listOpacity = opacityVisible
	s.sortOpacity = opacityVisible
}

// Err returns the last template execution error, if any.
func (s *HTMLSurface) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Snapshot returns a copy of all regions.
func (s *HTMLSurface) Snapshot() HTMLSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]template.HTML, len(s.cards))
	copy(cards, s.cards)

	return HTMLSnapshot{
		Cards:       cards,
		Popup:       s.popup,
		PopupHidden: s.popupHidden,
		ListOpacity: s.listOpacity,
		SortOpacity: s.sortOpacity,
		Sort:        s.sort,
	}
}

// Page renders the whole document around the current regions.
func (s *HTMLSurface) Page() (string, error) {
	snap := s.Snapshot()

	options := make([]sortOption, 0, len(SortOptions))
	for _, dir := range SortOptions {
		options = append(options, sortOption{Label: dir.Label(), Selected: dir == snap.Sort})
	}

	page, err := execute(pageTmpl, struct {
		HTMLSnapshot
		Options []sortOption
	}{HTMLSnapshot: snap, Options: options})
	if err != nil {
		return "", err
	}

	return string(page), nil
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}
