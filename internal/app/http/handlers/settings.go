package handlers

import (
	"net/http"
	"strings"

	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/domain/money"
	"hurghada-dream/go_backend/internal/domain/settings"
)

type settingsResponse struct {
	settings.Settings
	Synced bool `json:"synced"`
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, settingsResponse{Settings: h.Settings.Get().Masked(), Synced: h.Catalog.Synced()})
}

// SaveSettings stores agency metadata. Fields present in the body replace the
// current ones, empty strings included; absent fields are kept. A changed
// remote endpoint or key is picked up on the next start.
func (h *Handlers) SaveSettings(w http.ResponseWriter, r *http.Request) {
	next := h.Settings.Get().Masked()
	if err := decodeBody(r, &next); err != nil {
		h.writeError(w, r, err)
		return
	}
	if !next.Currency.IsValid() {
		h.writeError(w, r, errs.Validation("settings.save", "currency must be one of "+currencyList()))
		return
	}
	saved := h.Settings.Save(r.Context(), next)
	writeJSON(w, http.StatusOK, settingsResponse{Settings: saved.Masked(), Synced: h.Catalog.Synced()})
}

func currencyList() string {
	codes := make([]string, 0, 3)
	for _, c := range money.Currencies() {
		codes = append(codes, c.String())
	}
	return strings.Join(codes, ", ")
}
