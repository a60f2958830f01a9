package export

import (
	"github.com/xuri/excelize/v2"

	"gowkb/internal/errors"
)

const sheetName = "WaveFunction"

// ExcelWriter saves a run as a spreadsheet: one row per sample with the
// density precomputed, plus the run metadata in the top-left corner of a
// second sheet.
type ExcelWriter struct{}

// Write saves the sheet to path as an xlsx workbook.
func (ExcelWriter) Write(path string, s Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.ExportError("excel", err)
	}

	headers := []string{"Position", "Re", "Im", "Density"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.ExportError("excel", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return errors.ExportError("excel", err)
		}
	}

	for i, pt := range s.Samples {
		row := i + 2
		density := real(pt.Y)*real(pt.Y) + imag(pt.Y)*imag(pt.Y)
		values := []float64{pt.X, real(pt.Y), imag(pt.Y), density}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return errors.ExportError("excel", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return errors.ExportError("excel", err)
			}
		}
	}

	const metaSheet = "Run"
	if _, err := f.NewSheet(metaSheet); err != nil {
		return errors.ExportError("excel", err)
	}
	meta := [][2]interface{}{
		{"RunID", s.RunID},
		{"Potential", s.Potential},
		{"Level", s.Level},
		{"Energy", s.Energy},
	}
	for i, kv := range meta {
		keyCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.ExportError("excel", err)
		}
		valCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return errors.ExportError("excel", err)
		}
		if err := f.SetCellValue(metaSheet, keyCell, kv[0]); err != nil {
			return errors.ExportError("excel", err)
		}
		if err := f.SetCellValue(metaSheet, valCell, kv[1]); err != nil {
			return errors.ExportError("excel", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExportError("excel", err)
	}
	return nil
}
