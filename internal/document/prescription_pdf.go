// Package document renders printable documents from patient records.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"hospital-dashboard/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

// PrescriptionPDF renders one prescription as an A4 ordonnance.
func PrescriptionPDF(patient *entity.Patient, prescription *entity.Prescription) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Ordonnance"), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(prescription.Physician))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Le %s", prescription.Date)), "", 0, "R", false, 0, "")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "ORDONNANCE", "", 0, "C", false, 0, "")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Patient : %s", patient.FullName)))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Né(e) le : %s", patient.BirthDate)))
	pdf.Ln(7)
	if patient.NationalID != "" {
		pdf.Cell(0, 8, tr(fmt.Sprintf("N° Sécurité sociale : %s", patient.NationalID)))
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	for _, line := range strings.Split(prescription.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 7, tr("- "+line), "", "L", false)
	}

	pdf.Ln(20)
	pdf.SetFont("Arial", "I", 11)
	pdf.CellFormat(0, 8, tr("Signature"), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render prescription pdf: %w", err)
	}
	return &buf, nil
}
