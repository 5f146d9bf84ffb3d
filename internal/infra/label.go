package infra

// Printable barcode label generation using go-pdf/fpdf. One label per
// recipe or production order: title, code line, and the scannable Code 128
// image. Output goes to storagePath/fileName.

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// GenerateLabelPDF writes an 80×50mm label PDF and returns its absolute path.
func GenerateLabelPDF(storagePath, fileName, title, code, barcodeID string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("label: create storage dir: %w", err)
	}

	img, err := RenderCode128PNG(barcodeID, 400, 120)
	if err != nil {
		return "", fmt.Errorf("label: render barcode: %w", err)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 80, Ht: 50},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, code, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	imgName := "barcode-" + barcodeID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img))
	pdf.ImageOptions(imgName, 10, 18, 60, 18, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetY(38)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, barcodeID, "", 1, "C", false, 0, "")

	filePath := filepath.Join(storagePath, fileName)
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("label: write pdf: %w", err)
	}
	return filePath, nil
}
