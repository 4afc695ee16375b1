package sheet

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/harrisonrobin/lifestyle/pkg/model"
)

// ReadFile reads sheetName from a workbook on disk.
func ReadFile(path, sheetName string) ([]model.RawTaskRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, sheetName)
}

// Read reads sheetName from an .xlsx/.xlsm workbook. Cells are read without
// number formatting, so dates, times and durations arrive as serials.
func Read(r io.Reader, sheetName string) ([]model.RawTaskRow, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer wb.Close()

	if idx, err := wb.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("couldn't find a sheet named '%s': %w", sheetName, ErrSheetNotFound)
	}

	raw, err := wb.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheetName, err)
	}

	records := make([][]model.Value, 0, len(raw))
	for i, rec := range raw {
		values := make([]model.Value, len(rec))
		for j, cell := range rec {
			values[j] = cellValue(cell, cellType(wb, sheetName, j+1, i+1))
		}
		records = append(records, values)
	}
	header, body := splitHeader(records)
	return Decode(header, body), nil
}

// cellType reports how the workbook stores a cell. Cells that can't be looked
// up count as unset, which is how numbers without an explicit type are stored.
func cellType(wb *excelize.File, sheetName string, col, row int) excelize.CellType {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return excelize.CellTypeUnset
	}
	typ, err := wb.GetCellType(sheetName, name)
	if err != nil {
		return excelize.CellTypeUnset
	}
	return typ
}

// cellValue maps a raw cell to a Value. Only numeric cells become serials;
// a string cell holding "45" stays text.
func cellValue(s string, typ excelize.CellType) model.Value {
	if strings.TrimSpace(s) == "" {
		return model.Empty()
	}
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return model.Text(s)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return model.Serial(f)
	}
	return model.Text(s)
}
