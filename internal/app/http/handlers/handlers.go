package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"hurghada-dream/go_backend/internal/catalog"
	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/domain/quote/pdf"
	"hurghada-dream/go_backend/internal/domain/settings"
	"hurghada-dream/go_backend/internal/infra/logger"
)

type Handlers struct {
	Catalog  *catalog.Store
	Settings *settings.Store
	PDF      pdf.Generator
	Log      *logger.Logger

	drafts *drafts
	now    func() time.Time
}

// New builds the handlers. Quote drafts untouched for draftTTL are dropped;
// zero means DefaultDraftTTL.
func New(cat *catalog.Store, st *settings.Store, gen pdf.Generator, log *logger.Logger, draftTTL time.Duration) *Handlers {
	if log == nil {
		log = logger.Nop()
	}
	return &Handlers{
		Catalog:  cat,
		Settings: st,
		PDF:      gen,
		Log:      log,
		drafts:   newDrafts(draftTTL),
		now:      time.Now,
	}
}

type errorResponse struct {
	Error string    `json:"error"`
	Code  errs.Kind `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindSyncWrite:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)
	status := statusFor(kind)
	if status >= http.StatusInternalServerError {
		h.Log.Error(r.Context(), "request failed", err)
	}
	writeJSON(w, status, errorResponse{Error: errs.Message(err), Code: kind})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return errs.Validation("decode", "invalid JSON body: "+err.Error())
	}
	return nil
}
