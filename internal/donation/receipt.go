package donation

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// BuildReceiptPDF renders a one-page donation receipt.
func BuildReceiptPDF(r Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Donation Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Receipt No: %s", r.ReceiptNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("02 Jan 2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Donor", r.DonorName},
		{"Email", r.DonorEmail},
		{"Amount", fmt.Sprintf("%.2f %s", r.Amount, r.Currency)},
		{"Attributed To", r.TargetLabel},
		{"Transaction ID", r.TransactionID},
		{"Donation Date", r.DonatedAt.Format("02 Jan 2006 15:04")},
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(130, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for your generous support. This receipt acknowledges your donation and may be used for tax purposes where applicable.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}
