package google

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/harrisonrobin/lifestyle/pkg/auth"
)

// NewClient creates a Sheets client for spreadsheetID using the cached OAuth
// token, running the authorization flow when needed.
func NewClient(ctx context.Context, spreadsheetID string) (*SheetsClient, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("no spreadsheet id given")
	}

	client, err := auth.GetClient(ctx, auth.Scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client for Sheets API: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Sheets client: %w", err)
	}

	return NewSheetsClient(srv, spreadsheetID), nil
}
