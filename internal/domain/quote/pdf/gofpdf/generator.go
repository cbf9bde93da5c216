package gofpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hurghada-dream/go_backend/internal/domain/money"
	"hurghada-dream/go_backend/internal/domain/quote"
	"hurghada-dream/go_backend/internal/domain/settings"
)

const font = "Helvetica"

type Generator struct {
	now func() time.Time
}

func New() *Generator { return &Generator{now: time.Now} }

func (g *Generator) Generate(q quote.Quote, agency settings.Agency) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Devis "+agency.Name, true)
	pdf.AddPage()

	pdf.SetFont(font, "B", 16)
	pdf.Cell(120, 10, tr("Devis"))
	pdf.SetFont(font, "", 10)
	pdf.CellFormat(0, 5, tr("Date : "+q.Date), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, tr("Tél : "+agency.Phone), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(font, "B", 12)
	pdf.Cell(0, 6, tr(agency.Name))
	pdf.Ln(6)
	pdf.SetFont(font, "", 10)
	if agency.Address != "" {
		pdf.Cell(0, 5, tr(agency.Address))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	for _, row := range [][2]string{
		{"Client", q.Client},
		{"Hôtel / Chambre", q.Hotel},
		{"Téléphone", q.Phone},
	} {
		if row[1] == "" {
			continue
		}
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s : %s", row[0], row[1])))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont(font, "B", 11)
	pdf.Cell(100, 7, tr("Activité"))
	pdf.Cell(30, 7, "PU")
	pdf.Cell(20, 7, tr("Qté"))
	pdf.Cell(30, 7, "Total")
	pdf.Ln(8)

	pdf.SetFont(font, "", 10)
	for _, it := range q.Items {
		pdf.Cell(100, 6, tr(trim(it.Name, 55)))
		pdf.Cell(30, 6, tr(money.Format(it.UnitPrice, string(it.Currency))))
		pdf.Cell(20, 6, fmt.Sprintf("%d", it.Qty))
		pdf.Cell(30, 6, tr(money.Format(it.LineTotal(), string(it.Currency))))
		pdf.Ln(6)
	}
	if len(q.Items) == 0 {
		pdf.Cell(0, 6, tr("Aucune activité."))
		pdf.Ln(6)
	}

	t := q.Totals()
	pdf.Ln(4)
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(0, 6, tr("Sous-total : "+money.FormatAmount(t.Subtotal, t.Currency)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr("Remise : "+quote.FormatPercent(t.DiscountPercent)+"%"), "", 1, "R", false, 0, "")
	pdf.SetFont(font, "B", 12)
	pdf.CellFormat(0, 8, tr("Total : "+money.FormatAmount(t.Total, t.Currency)), "", 1, "R", false, 0, "")

	if q.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont(font, "", 10)
		pdf.MultiCell(0, 5, tr("Notes : "+q.Notes), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont(font, "", 8)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Généré le %s", g.now().Format("02/01/2006 15:04"))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
