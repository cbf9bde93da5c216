package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hurghada-dream/go_backend/internal/catalog"
	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/errs"
)

// ListActivities supports ?q= for a name search and ?day=0..6 for the
// activities running on that weekday.
func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	raw := query.Get("day")
	if raw == "" {
		writeJSON(w, http.StatusOK, h.Catalog.Search(query.Get("q")))
		return
	}

	day, err := strconv.Atoi(raw)
	if err != nil || day < 0 || day > 6 {
		h.writeError(w, r, errs.Validation("activities.list", "day must be a weekday between 0 and 6"))
		return
	}
	if query.Get("q") == "" {
		writeJSON(w, http.StatusOK, h.Catalog.AvailableOn(day))
		return
	}
	writeJSON(w, http.StatusOK, catalog.FilterDay(h.Catalog.Search(query.Get("q")), day))
}

func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var draft activity.Draft
	if err := decodeBody(r, &draft); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.Catalog.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var draft activity.Draft
	if err := decodeBody(r, &draft); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.Catalog.Update(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
