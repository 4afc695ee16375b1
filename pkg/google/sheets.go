package google

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/harrisonrobin/lifestyle/pkg/logger"
	"github.com/harrisonrobin/lifestyle/pkg/model"
	"github.com/harrisonrobin/lifestyle/pkg/sheet"
)

// SheetsClient reads task rows from one Google Sheets document.
type SheetsClient struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewSheetsClient wraps an existing Sheets service.
func NewSheetsClient(srv *sheets.Service, spreadsheetID string) *SheetsClient {
	return &SheetsClient{srv: srv, spreadsheetID: spreadsheetID}
}

// SheetTitles lists the document's sheet names.
func (c *SheetsClient) SheetTitles(ctx context.Context) ([]string, error) {
	doc, err := c.srv.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve spreadsheet %s: %w", c.spreadsheetID, err)
	}
	titles := make([]string, 0, len(doc.Sheets))
	for _, s := range doc.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// ReadRows reads sheetName with unformatted values, so dates and times arrive
// as spreadsheet serials just like in a downloaded workbook.
func (c *SheetsClient) ReadRows(ctx context.Context, sheetName string) ([]model.RawTaskRow, error) {
	if sheetName == "" {
		sheetName = sheet.DefaultSheetName
	}

	titles, err := c.SheetTitles(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, t := range titles {
		if t == sheetName {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("couldn't find a sheet named '%s': %w", sheetName, sheet.ErrSheetNotFound)
	}

	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, quoteSheet(sheetName)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet '%s': %w", sheetName, err)
	}

	rows := sheet.DecodeCells(resp.Values)
	logger.Debug("read sheet", "spreadsheet", c.spreadsheetID, "sheet", sheetName, "rows", len(rows))
	return rows, nil
}

// quoteSheet turns a sheet name into an A1 range covering the whole sheet.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
