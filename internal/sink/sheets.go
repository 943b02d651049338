package sink

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"OchiqMuloqot/entity"
)

// SheetsSync mirrors registrations to a Google spreadsheet via a
// service account. It is strictly best-effort: the durable CSV already
// holds the record by the time Sync runs.
type SheetsSync struct {
	service       *sheets.Service
	spreadsheetID string
	writeRange    string
}

// Credentials resolves the service account JSON, preferring inline
// content over a file path.
func Credentials(inline, file string) ([]byte, error) {
	if inline != "" {
		return []byte(inline), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return data, nil
}

func NewSheetsSync(ctx context.Context, credentialsJSON []byte, spreadsheetID, writeRange string) (*SheetsSync, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	if writeRange == "" {
		writeRange = "A1"
	}

	return &SheetsSync{
		service:       service,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
	}, nil
}

func (s *SheetsSync) Name() string { return "sheets" }

func (s *SheetsSync) Sync(ctx context.Context, rec *entity.Registration) error {
	cells := rec.Row()
	row := make([]any, len(cells))
	for i, v := range cells {
		row[i] = v
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, s.writeRange, &sheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to spreadsheet: %w", err)
	}
	return nil
}
