// Package sheet decodes "Daily Tasks" tables into raw task rows.
package sheet

import (
	"errors"
	"strings"

	"github.com/harrisonrobin/lifestyle/pkg/model"
)

// DefaultSheetName is the sheet lifestyle reads tasks from.
const DefaultSheetName = "Daily Tasks"

var ErrSheetNotFound = errors.New("sheet not found")

type column int

const (
	colUnknown column = iota
	colDate
	colDayOfWeek
	colCategory
	colTask
	colStart
	colDuration
	colEnd
	colComments
)

var headerColumns = map[string]column{
	"date":          colDate,
	"day of week":   colDayOfWeek,
	"task category": colCategory,
	"task":          colTask,
	"start":         colStart,
	"duration":      colDuration,
	"end":           colEnd,
	"comments":      colComments,
}

// Decode maps records onto RawTaskRow by header name. Header matching ignores
// case and surrounding spaces; unknown columns are ignored, missing cells are
// empty and rows with only blank cells are skipped.
func Decode(header []string, records [][]model.Value) []model.RawTaskRow {
	cols := make([]column, len(header))
	for i, h := range header {
		cols[i] = headerColumns[strings.ToLower(strings.TrimSpace(h))]
	}

	rows := make([]model.RawTaskRow, 0, len(records))
	for _, rec := range records {
		if blank(rec) {
			continue
		}
		var r model.RawTaskRow
		for i, v := range rec {
			if i >= len(cols) {
				break
			}
			switch cols[i] {
			case colDate:
				r.Date = v
			case colDayOfWeek:
				r.DayOfWeek = v
			case colCategory:
				r.Category = v
			case colTask:
				r.TaskName = v
			case colStart:
				r.Start = v
			case colDuration:
				r.Duration = v
			case colEnd:
				r.End = v
			case colComments:
				r.Comments = v
			}
		}
		rows = append(rows, r)
	}
	return rows
}

// DecodeCells is Decode for sources that hand out untyped cells, such as the
// Sheets API. The first non-blank record is the header.
func DecodeCells(cells [][]interface{}) []model.RawTaskRow {
	records := make([][]model.Value, 0, len(cells))
	for _, rec := range cells {
		values := make([]model.Value, len(rec))
		for i, c := range rec {
			values[i] = model.FromCell(c)
		}
		records = append(records, values)
	}
	header, body := splitHeader(records)
	return Decode(header, body)
}

func splitHeader(records [][]model.Value) ([]string, [][]model.Value) {
	for i, rec := range records {
		if blank(rec) {
			continue
		}
		header := make([]string, len(rec))
		for j, v := range rec {
			header[j] = v.String()
		}
		return header, records[i+1:]
	}
	return nil, nil
}

func blank(rec []model.Value) bool {
	for _, v := range rec {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}
