package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/domain/money"
	"hurghada-dream/go_backend/internal/domain/quote"
)

type quoteResponse struct {
	quote.Quote
	Totals    quote.Totals `json:"totals"`
	Formatted formatted    `json:"formatted"`
}

type formatted struct {
	Subtotal string   `json:"subtotal"`
	Discount string   `json:"discount"`
	Total    string   `json:"total"`
	Lines    []string `json:"lines"`
}

func toResponse(q quote.Quote) quoteResponse {
	t := q.Totals()
	lines := make([]string, 0, len(q.Items))
	for _, it := range q.Items {
		lines = append(lines, money.Format(it.LineTotal(), string(it.Currency)))
	}
	return quoteResponse{
		Quote:  q,
		Totals: t,
		Formatted: formatted{
			Subtotal: money.FormatAmount(t.Subtotal, t.Currency),
			Discount: money.FormatAmount(t.DiscountAmount, t.Currency),
			Total:    money.FormatAmount(t.Total, t.Currency),
			Lines:    lines,
		},
	}
}

// detailsPatch only overwrites the fields present in the body.
type detailsPatch struct {
	Date            *string `json:"date"`
	Client          *string `json:"client"`
	Hotel           *string `json:"hotel"`
	Phone           *string `json:"phone"`
	Notes           *string `json:"notes"`
	DiscountPercent any     `json:"discountPercent"`
}

func (p detailsPatch) apply(b *quote.Builder) error {
	d := b.Quote().Details
	for dst, src := range map[*string]*string{
		&d.Date:   p.Date,
		&d.Client: p.Client,
		&d.Hotel:  p.Hotel,
		&d.Phone:  p.Phone,
		&d.Notes:  p.Notes,
	} {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	b.SetDetails(d)

	if p.DiscountPercent != nil {
		pct, ok := coerceFloat(p.DiscountPercent)
		if !ok {
			return errs.Validation("quote.discount", "discountPercent must be a number")
		}
		b.SetDiscount(pct)
	}
	return nil
}

// coerceFloat accepts JSON numbers and numeric strings, with a comma as
// decimal separator.
func coerceFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case string:
		f, err = strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", "."), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var patch detailsPatch
	if r.ContentLength != 0 {
		if err := decodeBody(r, &patch); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	b := quote.NewBuilder(h.Settings.Get().DefaultCurrency(), h.now())
	if err := patch.apply(b); err != nil {
		h.writeError(w, r, err)
		return
	}
	id := h.drafts.put(b)
	h.Log.Info(h.Log.WithField(r.Context(), "quote_id", id), "quote draft created")
	writeJSON(w, http.StatusCreated, toResponse(b.Quote()))
}

func (h *Handlers) builder(w http.ResponseWriter, r *http.Request) (*quote.Builder, bool) {
	id := chi.URLParam(r, "id")
	b, ok := h.drafts.get(id)
	if !ok {
		h.writeError(w, r, errs.NotFound("quote.get", "quote %s not found", id))
		return nil, false
	}
	return b, true
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	b, ok := h.builder(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toResponse(b.Quote()))
}

func (h *Handlers) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	b, ok := h.builder(w, r)
	if !ok {
		return
	}
	var patch detailsPatch
	if err := decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := patch.apply(b); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(b.Quote()))
}

func (h *Handlers) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.drafts.delete(id) {
		h.writeError(w, r, errs.NotFound("quote.delete", "quote %s not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	ActivityID string       `json:"activityId"`
	Adults     int          `json:"adults"`
	Children   int          `json:"children"`
	Infants    int          `json:"infants"`
	Extra      *quote.Extra `json:"extra"`
}

func (h *Handlers) AddQuoteItem(w http.ResponseWriter, r *http.Request) {
	b, ok := h.builder(w, r)
	if !ok {
		return
	}
	var req addItemRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	var act *activity.Activity
	if req.ActivityID != "" {
		if found, ok := h.Catalog.Get(req.ActivityID); ok {
			act = &found
		}
	}
	counts := quote.Counts{Adults: req.Adults, Children: req.Children, Infants: req.Infants}
	if _, err := b.AddFromActivity(act, counts, req.Extra); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(b.Quote()))
}

func (h *Handlers) SetQuoteItemQty(w http.ResponseWriter, r *http.Request) {
	b, ok := h.builder(w, r)
	if !ok {
		return
	}
	var req struct {
		Qty any `json:"qty"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	itemID := chi.URLParam(r, "itemID")
	if !b.SetQty(itemID, quote.CoerceQty(req.Qty)) {
		h.writeError(w, r, errs.NotFound("quote.item", "item %s not found", itemID))
		return
	}
	writeJSON(w, http.StatusOK, toResponse(b.Quote()))
}

func (h *Handlers) RemoveQuoteItem(w http.ResponseWriter, r *http.Request) {
	b, ok := h.builder(w, r)
	if !ok {
		return
	}
	b.RemoveItem(chi.URLParam(r, "itemID"))
	writeJSON(w, http.StatusOK, toResponse(b.Quote()))
}

func (h *Handlers) QuoteText(w http.ResponseWriter, r *http.Request) {
	b, ok := h.builder(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(quote.RenderText(b.Quote(), h.Settings.Get().Agency())))
}

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	b, ok := h.builder(w, r)
	if !ok {
		return
	}
	q := b.Quote()
	body, err := h.PDF.Generate(q, h.Settings.Get().Agency())
	if err != nil {
		h.writeError(w, r, errs.Wrap(errs.KindInternal, "quote.pdf", err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="devis-%s.pdf"`, q.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
