package gsuite

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetHeader is the first row of every intake spreadsheet.
var SheetHeader = []any{"Name", "Email", "Phone", "Date"}

// IntakeSheets manages the one-spreadsheet-per-day candidate intake.
type IntakeSheets struct {
	service *sheets.Service
}

// NewSheetsService creates a Sheets client from the given options.
func NewSheetsService(ctx context.Context, opts ...option.ClientOption) (*sheets.Service, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return service, nil
}

func NewIntakeSheets(service *sheets.Service) *IntakeSheets {
	return &IntakeSheets{service: service}
}

// CreateDailySheet creates "Candidates_<date>" with a header row and returns
// its spreadsheet id.
func (s *IntakeSheets) CreateDailySheet(ctx context.Context, date string) (string, error) {
	created, err := s.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: "Candidates_" + date},
	}).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create sheet for %s: %w", date, err)
	}

	_, err = s.service.Spreadsheets.Values.Update(created.SpreadsheetId, "A1:D1", &sheets.ValueRange{
		Values: [][]any{SheetHeader},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("write header for %s: %w", date, err)
	}
	return created.SpreadsheetId, nil
}

// AppendRow adds one candidate row below the existing data.
func (s *IntakeSheets) AppendRow(ctx context.Context, spreadsheetID string, row []any) error {
	_, err := s.service.Spreadsheets.Values.Append(spreadsheetID, "A:D", &sheets.ValueRange{
		Values: [][]any{row},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// ReadRows returns every data row (header excluded).
func (s *IntakeSheets) ReadRows(ctx context.Context, spreadsheetID string) ([][]any, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, "A2:D").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return resp.Values, nil
}
