package repo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"SurveyBot/model"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetTable is the part of a spreadsheet the survey writes to.
type SheetTable interface {
	FirstRow(ctx context.Context) ([]string, error)
	// SetFirstRow replaces the whole first row with row.
	SetFirstRow(ctx context.Context, row []string) error
	AppendRow(ctx context.Context, row []string) error
}

// GoogleSheetsClient appends survey rows to a worksheet whose first row is kept equal to
// model.Header.
type GoogleSheetsClient struct {
	table SheetTable
	mu    sync.Mutex
}

// NewGoogleSheetsClient connects with a service account and verifies the header of the
// worksheet. An empty worksheetName selects the first sheet.
func NewGoogleSheetsClient(ctx context.Context, serviceAccountFile, spreadsheetID, worksheetName string) (*GoogleSheetsClient, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(serviceAccountFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating sheets service: %w", err)
	}

	title, err := resolveWorksheet(ctx, service, spreadsheetID, worksheetName)
	if err != nil {
		return nil, err
	}

	return OpenSheet(ctx, &sheetsTable{
		service:       service,
		spreadsheetID: spreadsheetID,
		title:         title,
	})
}

// OpenSheet wraps table and repairs its header before returning.
func OpenSheet(ctx context.Context, table SheetTable) (*GoogleSheetsClient, error) {
	c := &GoogleSheetsClient{table: table}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureHeader(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Append writes one row below the header verified by OpenSheet.
func (c *GoogleSheetsClient) Append(ctx context.Context, s Submission) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.table.AppendRow(ctx, s.Row); err != nil {
		return fmt.Errorf("error appending row to sheet: %w", err)
	}
	return nil
}

func (c *GoogleSheetsClient) ensureHeader(ctx context.Context) error {
	row, err := c.table.FirstRow(ctx)
	if err != nil {
		return fmt.Errorf("error reading sheet header: %w", err)
	}

	switch {
	case len(row) == 0:
		log.Info().Msg("sheet is empty, writing header")
	case !slices.Equal(row, model.Header):
		log.Warn().Strs("found", row).Msg("sheet header does not match, replacing it")
	default:
		return nil
	}

	if err := c.table.SetFirstRow(ctx, model.Header); err != nil {
		return fmt.Errorf("error writing sheet header: %w", err)
	}
	return nil
}

type sheetsTable struct {
	service       *sheets.Service
	spreadsheetID string
	title         string
}

func resolveWorksheet(ctx context.Context, service *sheets.Service, spreadsheetID, name string) (string, error) {
	spreadsheet, err := service.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error opening spreadsheet %s: %w", spreadsheetID, err)
	}
	if len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil {
		return "", fmt.Errorf("spreadsheet %s has no worksheets", spreadsheetID)
	}
	if name == "" {
		return spreadsheet.Sheets[0].Properties.Title, nil
	}
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("worksheet %q not found in spreadsheet %s", name, spreadsheetID)
}

func (t *sheetsTable) a1(cells string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(t.title, "'", "''"), cells)
}

func (t *sheetsTable) FirstRow(ctx context.Context) ([]string, error) {
	resp, err := t.service.Spreadsheets.Values.Get(t.spreadsheetID, t.a1("1:1")).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	row := make([]string, len(resp.Values[0]))
	for i, v := range resp.Values[0] {
		row[i] = fmt.Sprint(v)
	}
	return row, nil
}

func (t *sheetsTable) SetFirstRow(ctx context.Context, row []string) error {
	_, err := t.service.Spreadsheets.Values.Clear(t.spreadsheetID, t.a1("1:1"), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return err
	}
	_, err = t.service.Spreadsheets.Values.Update(t.spreadsheetID, t.a1("A1"), valueRange(row)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

func (t *sheetsTable) AppendRow(ctx context.Context, row []string) error {
	_, err := t.service.Spreadsheets.Values.Append(t.spreadsheetID, t.a1("A1"), valueRange(row)).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func valueRange(row []string) *sheets.ValueRange {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{cells}}
}
