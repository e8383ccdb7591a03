package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-cards/internal/controller"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/utils"
	"github.com/MKhiriev/go-user-cards/models"
	"github.com/go-chi/chi/v5"
)

const sortFormField = "order"

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, err := h.page.Page()
	if err != nil {
		log.Err(err).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteHTML(w, page, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing page")
	}
}

// users lists the collection in display order. When the startup fetch
// failed the error label is returned instead.
func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.controller.StartupErr(); err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, h.controller.Users(), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing users")
	}
}

func (h *Handler) sort(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid sort form")
		http.Error(w, ErrInvalidSortForm.Error(), http.StatusBadRequest)
		return
	}

	h.controller.ChangeSort(models.ParseSortDirection(r.PostForm.Get(sortFormField)))
	backToPage(w, r)
}

func (h *Handler) openPopup(w http.ResponseWriter, r *http.Request) {
	h.controller.ClickCard(controller.CardTarget(chi.URLParam(r, "id")))
	backToPage(w, r)
}

func (h *Handler) closePopup(w http.ResponseWriter, r *http.Request) {
	h.controller.ClickPopup(controller.BackdropTarget())
	backToPage(w, r)
}

func backToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
