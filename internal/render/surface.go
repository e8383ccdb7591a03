// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render holds the rendering surfaces the controller draws on.
//
// A [Surface] has three regions: the user list, the popup overlay and the
// sort selector. Both list and selector start transparent and become opaque
// on [Surface.Reveal]. Two implementations are provided: [HTMLSurface] for
// the web client and [TextSurface] for the terminal client.
package render

import (
	"github.com/MKhiriev/go-user-cards/internal/utils"
	"github.com/MKhiriev/go-user-cards/models"
)

//go:generate mockgen -source=surface.go -destination=../mock/surface_mock.go -package=mock

// Surface is the output side of the controller.
type Surface interface {
	// AppendCard adds one card at the end of the user list.
	AppendCard(u models.User)
	// ClearCards empties the user list.
	ClearCards()
	// ShowPopup replaces the popup content with u's details and shows the
	// overlay.
	ShowPopup(u models.User)
	// HidePopup hides the overlay and drops its content.
	HidePopup()
	// SetSortSelection marks dir as the selected sort option.
	SetSortSelection(dir models.SortDirection)
	// Reveal makes the user list and the sort selector fully opaque.
	Reveal()
}

// Row is one labeled line of the popup.
type Row struct {
	Label string
	Value string
}

// PopupRows lists the contact details shown for u. City and state are
// capitalized, the rest is shown as received.
func PopupRows(u models.User) []Row {
	return []Row{
		{Label: "Street", Value: u.Contacts.Street},
		{Label: "City", Value: utils.CapitalizeFirst(u.Contacts.City)},
		{Label: "State", Value: utils.CapitalizeFirst(u.Contacts.State)},
		{Label: "Email", Value: u.Contacts.Email},
		{Label: "Phone number", Value: u.Contacts.Phone},
	}
}

// SortOptions are the selector entries in display order.
var SortOptions = []models.SortDirection{models.SortAscending, models.SortDescending}

const (
	opacityHidden  = 0.0
	opacityVisible = 1.0
)
