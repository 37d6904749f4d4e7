package medical

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jwalitptl/medlink-api/internal/model"
)

// ExportPDF renders a record as a one-page PDF and returns it with a
// suggested file name.
func (s *Service) ExportPDF(ctx context.Context, id string) ([]byte, string, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := recordPDF(r).Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render record pdf: %w", err)
	}
	return buf.Bytes(), fileName(r), nil
}

// recordPDF lays out the record. Core fonts are cp1252, so every string
// from the record goes through the unicode translator.
func recordPDF(r *model.MedicalRecord) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 10, "Medlink", "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 13)
	pdf.MultiCell(0, 8, tr(r.Title), "", "L", false)
	pdf.Ln(2)

	detail(pdf, "Date", r.Date)
	detail(pdf, "Type", r.Type.Label())
	if r.DoctorName != "" {
		detail(pdf, "Doctor", tr(r.DoctorName))
	}
	if r.FileName != "" {
		detail(pdf, "Attachment", tr(r.FileName))
	}

	if r.Notes != nil {
		pdf.Ln(4)
		section(pdf, "Subjective", tr(r.Notes.Subjective))
		section(pdf, "Objective", tr(r.Notes.Objective))
		section(pdf, "Assessment", tr(r.Notes.Assessment))
		section(pdf, "Plan", tr(r.Notes.Plan))
	}
	return pdf
}

func detail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(35, 8, label, "1", 0, "", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, value, "1", 1, "", false, 0, "")
}

func section(pdf *gofpdf.Fpdf, heading, body string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if body == "" {
		body = "-"
	}
	pdf.MultiCell(0, 5, body, "", "L", false)
	pdf.Ln(2)
}

func fileName(r *model.MedicalRecord) string {
	slug := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		case c >= 'A' && c <= 'Z':
			return c + 'a' - 'A'
		default:
			return '_'
		}
	}, r.Title)
	return fmt.Sprintf("%s_%s.pdf", strings.Trim(slug, "_"), r.Date)
}
