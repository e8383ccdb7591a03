// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller owns the user collection and translates interactions
// into [render.Surface] calls.
//
// One [Controller] serves one page lifetime: it fetches a single batch on
// [Controller.Startup], keeps the users in display order and tracks which
// user the popup is open for. Events are handled one at a time.
package controller

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/render"
	"github.com/MKhiriev/go-user-cards/internal/service"
	"github.com/MKhiriev/go-user-cards/models"
)

type Controller struct {
	mu sync.Mutex

	service service.UserService
	surface render.Surface

	collection []models.User
	openPopup  *string
	sort       models.SortDirection
	started    bool
	loaded     bool
	startupErr error
	revealed   bool

	logger *logger.Logger
}

func New(users service.UserService, surface render.Surface, log *logger.Logger) *Controller {
	return &Controller{
		service: users,
		surface: surface,
		logger:  log,
	}
}

// Startup fetches the batch and renders one card per user in API order.
// The list and sort selector are revealed afterwards whether the fetch
// succeeded or not. Only the first call fetches; later calls return
// [ErrAlreadyStarted].
//
// The fetch runs without holding the event lock, so interactions that
// arrive meanwhile see an empty collection.
func (c *Controller) Startup(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	c.mu.Unlock()

	users, err := c.service.LoadBatch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.reveal()

	if err != nil {
		c.logger.Err(err).Msg("error loading users")
		c.startupErr = err
		return err
	}

	for _, u := range users {
		c.collection = append(c.collection, u)
		c.surface.AppendCard(u)
	}
	c.loaded = true

	c.logger.Debug().Int("count", len(users)).Msg("cards rendered")
	return nil
}

func (c *Controller) reveal() {
	c.surface.Reveal()
	c.revealed = true
}

// ClickCard opens the popup for the card containing target. Clicks outside
// any card and clicks on cards whose user is unknown are ignored.
func (c *Controller) ClickCard(target *Target) {
	card := target.Closest(ClassUserCard)
	if card == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.openLocked(card.DataID)
}

// OpenByID opens the popup for user id.
func (c *Controller) OpenByID(id string) {
	c.ClickCard(CardTarget(id))
}

func (c *Controller) openLocked(id string) {
	idx := c.indexLocked(id)
	if idx < 0 {
		c.logger.Warn().Str("user_id", id).Msg("card refers to unknown user")
		return
	}

	c.surface.ShowPopup(c.collection[idx])
	c.openPopup = &id
}

// ClickPopup closes the popup when target is the overlay itself. Clicks on
// the popup content are ignored.
func (c *Controller) ClickPopup(target *Target) {
	if !target.HasClass(ClassPopupContainer) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openPopup == nil {
		return
	}
	c.surface.HidePopup()
	c.openPopup = nil
}

// ClosePopup closes the popup if one is open.
func (c *Controller) ClosePopup() {
	c.ClickPopup(BackdropTarget())
}

// ChangeSort reorders the collection by first name and rebuilds the list.
// Users with equal first names keep their relative order.
func (c *Controller) ChangeSort(dir models.SortDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slices.SortStableFunc(c.collection, func(a, b models.User) int {
		if dir == models.SortDescending {
			return b.CompareByFirstName(a)
		}
		return a.CompareByFirstName(b)
	})
	c.sort = dir

	c.surface.SetSortSelection(dir)
	c.surface.ClearCards()
	for _, u := range c.collection {
		c.surface.AppendCard(u)
	}

	c.logger.Debug().Stringer("order", dir).Int("count", len(c.collection)).Msg("cards re-sorted")
}

// Users returns a copy of the collection in display order.
func (c *Controller) Users() []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.collection)
}

// User looks up a user by id.
func (c *Controller) User(id string) (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return models.User{}, false
	}
	return c.collection[idx], true
}

// OpenPopup returns the id of the user whose popup is shown.
func (c *Controller) OpenPopup() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openPopup == nil {
		return "", false
	}
	return *c.openPopup, true
}

func (c *Controller) Sort() models.SortDirection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

func (c *Controller) Revealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealed
}

// Loaded reports whether the startup fetch succeeded.
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// StartupErr returns the error the startup fetch failed with, if any.
func (c *Controller) StartupErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startupErr
}

func (c *Controller) indexLocked(id string) int {
	return slices.IndexFunc(c.collection, func(u models.User) bool {
		return u.ID == id
	})
}
