package quote

import (
	"fmt"
	"strconv"
	"strings"

	"hurghada-dream/go_backend/internal/domain/money"
	"hurghada-dream/go_backend/internal/domain/settings"
)

// RenderText is the plain-text export of q, one line per item.
func RenderText(q Quote, agency settings.Agency) string {
	t := q.Totals()

	lines := []string{
		agency.Name,
		agency.Address,
		"Tél: " + agency.Phone,
		"Date: " + q.Date,
		"",
		"Client: " + q.Client,
		"Hôtel: " + q.Hotel,
	}
	if q.Phone != "" {
		lines = append(lines, "Téléphone: "+q.Phone)
	}
	lines = append(lines, "", "Détail :")
	for _, it := range q.Items {
		lines = append(lines, fmt.Sprintf("- %s × %d = %s", it.Name, it.Qty, money.Format(it.LineTotal(), string(it.Currency))))
	}
	lines = append(lines,
		"",
		"Sous-total: "+money.FormatAmount(t.Subtotal, t.Currency),
		"Remise: "+FormatPercent(q.DiscountPercent)+"%",
		"Total: "+money.FormatAmount(t.Total, t.Currency),
	)
	if q.Notes != "" {
		lines = append(lines, "", "Notes: "+q.Notes)
	}
	return strings.Join(lines, "\n")
}

// FormatPercent prints a discount without trailing zeros: 10, 12.5.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
