package infra

// xlsx export with embedded scannable barcodes. One workbook, one sheet:
// a header row, then one row per entity that carries a barcode_id, with the
// rendered Code 128 image in the last column. A failed render degrades to a
// row without its image rather than aborting the export.

import (
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	barcodePNGWidth  = 200
	barcodePNGHeight = 60
	barcodeRowHeight = 48
)

// BarcodeRow is one export line: cell values for every column except the
// last, which receives the rendered image of BarcodeID.
type BarcodeRow struct {
	Values    []string
	BarcodeID string
}

// BuildBarcodeWorkbook renders the workbook and returns the xlsx bytes.
func BuildBarcodeWorkbook(sheet string, headers []string, rows []BarcodeRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for n, row := range rows {
		rowNum := n + 2
		for i, v := range row.Values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}

		img, err := RenderCode128PNG(row.BarcodeID, barcodePNGWidth, barcodePNGHeight)
		if err != nil {
			log.Warn().Err(err).Str("barcode_id", row.BarcodeID).
				Msg("export: barcode render failed, writing row without image")
			continue
		}
		cell, err := excelize.CoordinatesToCellName(len(headers), rowNum)
		if err != nil {
			return nil, err
		}
		if err := f.AddPictureFromBytes(sheet, cell, &excelize.Picture{
			Extension: ".png",
			File:      img,
			Format:    &excelize.GraphicOptions{ScaleX: 0.75, ScaleY: 0.8},
		}); err != nil {
			log.Warn().Err(err).Str("barcode_id", row.BarcodeID).
				Msg("export: embedding barcode image failed, writing row without image")
			continue
		}
		_ = f.SetRowHeight(sheet, rowNum, barcodeRowHeight)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
