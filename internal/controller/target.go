package controller

import "slices"

// Class names the controller dispatches on.
const (
	ClassUserCard       = "user-card"
	ClassUserCardImage  = "user-card_img"
	ClassUsersContainer = "users-container"
	ClassPopupContainer = "popup-container"
	ClassPopup          = "popup"
	ClassPopupRow       = "popup_row"
)

// Target is the element an interaction landed on, together with its chain
// of ancestors.
type Target struct {
	Classes []string
	DataID  string
	Parent  *Target
}

// HasClass reports whether t carries class. A nil target has no classes.
func (t *Target) HasClass(class string) bool {
	if t == nil {
		return false
	}
	return slices.Contains(t.Classes, class)
}

// Closest returns t or its nearest ancestor carrying class, or nil.
func (t *Target) Closest(class string) *Target {
	for el := t; el != nil; el = el.Parent {
		if el.HasClass(class) {
			return el
		}
	}
	return nil
}

// CardTarget is a click on the avatar inside the card of user id.
func CardTarget(id string) *Target {
	list := &Target{Classes: []string{ClassUsersContainer}}
	card := &Target{Classes: []string{ClassUserCard}, DataID: id, Parent: list}
	return &Target{Classes: []string{ClassUserCardImage}, Parent: card}
}

// BackdropTarget is a click on the popup overlay outside the popup.
func BackdropTarget() *Target {
	return &Target{Classes: []string{ClassPopupContainer}}
}

// PopupContentTarget is a click on a row inside the popup.
func PopupContentTarget() *Target {
	popup := &Target{Classes: []string{ClassPopup}, Parent: BackdropTarget()}
	return &Target{Classes: []string{ClassPopupRow}, Parent: popup}
}
