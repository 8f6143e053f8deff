package reports

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders a flat report table into PDF, Excel or Word bytes.
type Exporter interface {
	Export(format string, t table) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

// Export returns the rendered bytes, a filename and the MIME content type.
func (e *exporter) Export(format string, t table) ([]byte, string, string, error) {
	switch format {
	case FormatPDF:
		return e.exportPDF(t)
	case FormatExcel:
		return e.exportExcel(t)
	case FormatWord:
		return e.exportWord(t)
	default:
		return nil, "", "", fmt.Errorf("unsupported report format: %s", format)
	}
}

func (e *exporter) exportPDF(t table) ([]byte, string, string, error) {
	orientation := "P"
	if len(t.Headers) > 5 {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, t.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	for i, h := range t.Headers {
		pdf.CellFormat(t.Widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range t.Rows {
		for i, cell := range row {
			align := "L"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(t.Widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}
	return buf.Bytes(), fileName(t.Title, "pdf"), "application/pdf", nil
}

func (e *exporter) exportExcel(t table) ([]byte, string, string, error) {
	f := excelize.NewFile()
	sheet := t.Title
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", "", err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", "", err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, row := range t.Rows {
		for cIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, "", "", err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", "", err
	}
	return buf.Bytes(), fileName(t.Title, "xlsx"),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
}

func (e *exporter) exportWord(t table) ([]byte, string, string, error) {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(t.Title).Size("32").Bold()

	doc.AddParagraph()

	for _, row := range t.Rows {
		para := doc.AddParagraph()
		for i, cell := range row {
			text := fmt.Sprintf("%s: %s", t.Headers[i], cell)
			if i > 0 {
				text = "    " + text
			}
			run := para.AddText(text)
			if i == 0 {
				run.Bold()
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, "", "", err
	}
	return buf.Bytes(), fileName(t.Title, "docx"),
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
}

func fileName(title, ext string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '_')
		}
	}
	return fmt.Sprintf("%s.%s", string(out), ext)
}
