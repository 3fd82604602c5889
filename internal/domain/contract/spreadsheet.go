package contract

import (
	"context"
	"errors"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

var (
	// ErrSpreadsheetNotFound is returned when no spreadsheet has the requested title
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	// ErrSheetNotFound is returned when the spreadsheet has no worksheet with the requested title
	ErrSheetNotFound = errors.New("worksheet not found")
)

// SpreadsheetClient opens worksheets of spreadsheet documents by their titles
type SpreadsheetClient interface {
	OpenWorksheet(ctx context.Context, spreadsheetTitle, worksheetTitle string) (Worksheet, error)
}

// Worksheet is a grid of text cells addressed by 1-based row and column
type Worksheet interface {
	Title() string
	// FindAll returns every cell whose displayed text equals text exactly
	FindAll(ctx context.Context, text string) ([]entity.Cell, error)
	Cell(ctx context.Context, row, col int) (entity.Cell, error)
	UpdateCell(ctx context.Context, row, col int, value string) error
}
