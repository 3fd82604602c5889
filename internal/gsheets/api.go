package gsheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"
	userEntered         = "USER_ENTERED"
)

// api is the subset of the Google Drive and Sheets APIs the client uses
type api interface {
	// findSpreadsheets returns the ids of spreadsheets named exactly title
	findSpreadsheets(ctx context.Context, title string) ([]string, error)
	sheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	getValues(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error)
	updateValue(ctx context.Context, spreadsheetID, rng, value string) error
}

type googleAPI struct {
	sheets *sheets.Service
	drive  *drive.Service
}

func newGoogleAPI(ctx context.Context, credsPath string) (*googleAPI, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(credsPath),
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveReadonlyScope),
	}

	sheetsService, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &googleAPI{sheets: sheetsService, drive: driveService}, nil
}

func (g *googleAPI) findSpreadsheets(ctx context.Context, title string) ([]string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(title), spreadsheetMimeType)

	list, err := g.drive.Files.List().
		Q(q).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search spreadsheet %q: %w", title, err)
	}

	ids := make([]string, 0, len(list.Files))
	for _, f := range list.Files {
		ids = append(ids, f.Id)
	}
	return ids, nil
}

func (g *googleAPI) sheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	doc, err := g.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	titles := make([]string, 0, len(doc.Sheets))
	for _, s := range doc.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (g *googleAPI) getValues(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error) {
	resp, err := g.sheets.Spreadsheets.Values.Get(spreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rng, err)
	}
	return resp.Values, nil
}

func (g *googleAPI) updateValue(ctx context.Context, spreadsheetID, rng, value string) error {
	_, err := g.sheets.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).
		ValueInputOption(userEntered).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", rng, err)
	}
	return nil
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
