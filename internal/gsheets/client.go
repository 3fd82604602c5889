package gsheets

import (
	"context"
	"fmt"
	"sync"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/astro-attendance/attendance-bot/pkg/a1"
)

// Client opens worksheets by spreadsheet title through a service account.
// Spreadsheet ids are looked up once per title and then reused.
type Client struct {
	api api

	mu  sync.Mutex
	ids map[string]string
}

// New authenticates with the service account key at credsPath
func New(ctx context.Context, credsPath string) (*Client, error) {
	g, err := newGoogleAPI(ctx, credsPath)
	if err != nil {
		return nil, err
	}
	return newClient(g), nil
}

func newClient(api api) *Client {
	return &Client{api: api, ids: make(map[string]string)}
}

func (c *Client) OpenWorksheet(ctx context.Context, spreadsheetTitle, worksheetTitle string) (contract.Worksheet, error) {
	id, err := c.spreadsheetID(ctx, spreadsheetTitle)
	if err != nil {
		return nil, err
	}

	titles, err := c.api.sheetTitles(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, t := range titles {
		if t == worksheetTitle {
			return &worksheet{api: c.api, spreadsheetID: id, title: worksheetTitle}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q in %q", contract.ErrSheetNotFound, worksheetTitle, spreadsheetTitle)
}

func (c *Client) spreadsheetID(ctx context.Context, title string) (string, error) {
	c.mu.Lock()
	id, ok := c.ids[title]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	ids, err := c.api.findSpreadsheets(ctx, title)
	if err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", contract.ErrSpreadsheetNotFound, title)
	case 1:
	default:
		return "", fmt.Errorf("%w: %d spreadsheets are named %q", contract.ErrSpreadsheetNotFound, len(ids), title)
	}

	c.mu.Lock()
	c.ids[title] = ids[0]
	c.mu.Unlock()

	return ids[0], nil
}

type worksheet struct {
	api           api
	spreadsheetID string
	title         string
}

func (w *worksheet) Title() string {
	return w.title
}

func (w *worksheet) FindAll(ctx context.Context, text string) ([]entity.Cell, error) {
	values, err := w.api.getValues(ctx, w.spreadsheetID, a1.Sheet(w.title))
	if err != nil {
		return nil, err
	}
	return findInGrid(values, text), nil
}

func (w *worksheet) Cell(ctx context.Context, row, col int) (entity.Cell, error) {
	values, err := w.api.getValues(ctx, w.spreadsheetID, a1.Cell(w.title, row, col))
	if err != nil {
		return entity.Cell{}, err
	}

	cell := entity.Cell{Row: row, Col: col}
	if len(values) > 0 && len(values[0]) > 0 {
		cell.Value = fmt.Sprint(values[0][0])
	}
	return cell, nil
}

func (w *worksheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	return w.api.updateValue(ctx, w.spreadsheetID, a1.Cell(w.title, row, col), value)
}

// findInGrid returns the 1-based coordinates of every value whose text equals text,
// row by row. The grid starts at A1.
func findInGrid(values [][]interface{}, text string) []entity.Cell {
	var cells []entity.Cell
	for r, row := range values {
		for c, v := range row {
			s := fmt.Sprint(v)
			if s == text {
				cells = append(cells, entity.Cell{Row: r + 1, Col: c + 1, Value: s})
			}
		}
	}
	return cells
}
