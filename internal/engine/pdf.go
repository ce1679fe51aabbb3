package engine

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"go-process-dashboard/internal/model"
	"go-process-dashboard/pkg/utils"
)

const pdfTitle = "Controle de Processos — Dados Filtrados"

// pdfColumnWeights mirrors exportHeader; the wide columns (process id, link,
// observation) carry free text, the rest are fixed-width fields.
var pdfColumnWeights = []float64{50, 50, 40, 32, 28, 32, 60, 60, 80}

// WritePDF renders the subset as a landscape A4 table and returns the file
// bytes. Same column order as the xlsx export; the value column is shown
// with Brazilian number formatting.
func WritePDF(subset model.Dataset) (*bytes.Buffer, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(false, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 24
	var total float64
	for _, w := range pdfColumnWeights {
		total += w
	}
	widths := make([]float64, len(pdfColumnWeights))
	for i, w := range pdfColumnWeights {
		widths[i] = w / total * usable
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 8, tr(pdfTitle), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(17, 24, 39)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(209, 213, 219)
		for i, h := range exportHeader {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(17, 24, 39)
	}
	writeHeader()

	for i, rec := range subset {
		if pdf.GetY()+6 > pageH-12 {
			pdf.AddPage()
			writeHeader()
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(248, 250, 252)
		}
		date := ""
		if rec.CommitmentDate != nil {
			date = rec.CommitmentDate.Format("02/01/2006")
		}
		cells := []string{
			rec.Campaign,
			rec.Secretariat,
			rec.Agency,
			strings.TrimPrefix(utils.FormatCurrency(rec.Value), "R$ "),
			rec.Competency.String(),
			date,
			rec.ProcessID,
			rec.Link,
			rec.Observation,
		}
		for j, c := range cells {
			align := "L"
			if j == 3 {
				align = "R"
			}
			pdf.CellFormat(widths[j], 6, fitCell(pdf, tr(c), widths[j]-2), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return &buf, nil
}

// fitCell trims s to the cell width. s is already cp1252-encoded, a
// single-byte encoding, so byte slicing never splits a character.
func fitCell(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	b := []byte(s)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+"...") > width {
		b = b[:len(b)-1]
	}
	return string(b) + "..."
}
