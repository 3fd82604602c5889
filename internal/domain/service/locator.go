package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain"
	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/astro-attendance/attendance-bot/pkg/a1"
)

var (
	ErrDateNotFound         = errors.New("lecture date not found in sheet")
	ErrStudentNotFound      = errors.New("student not found in sheet")
	ErrStudentAmbiguous     = errors.New("student name appears more than once in sheet")
	ErrInvalidSlot          = errors.New("lecture slot must be positive")
	ErrLectureTitleNotFound = errors.New("lecture title cell is empty")
)

// locator finds attendance cells by their text: the month worksheet, the
// date anchor cell and the student's row. Sheets are edited by hand, so no
// coordinates are cached between operations.
type locator struct {
	sheets contract.SpreadsheetClient
}

func newLocator(sheets contract.SpreadsheetClient) *locator {
	return &locator{sheets: sheets}
}

func (l *locator) OpenMonthSheet(ctx context.Context, tenant entity.Tenant, day time.Time) (contract.Worksheet, error) {
	title, err := domain.MonthSheetTitle(day)
	if err != nil {
		return nil, err
	}

	sheet, err := l.sheets.OpenWorksheet(ctx, tenant.SpreadsheetTitle, title)
	if err != nil {
		return nil, fmt.Errorf("failed to open worksheet %q of %q: %w", title, tenant.SpreadsheetTitle, err)
	}
	return sheet, nil
}

// FindDateAnchor returns the only cell whose text is day as DD.MM.YYYY
func (l *locator) FindDateAnchor(ctx context.Context, sheet contract.Worksheet, day time.Time) (entity.Cell, error) {
	text := day.Format(domain.DateLayout)

	cells, err := sheet.FindAll(ctx, text)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to search for date %s: %w", text, err)
	}

	switch len(cells) {
	case 0:
		return entity.Cell{}, fmt.Errorf("%w: %s in sheet %s", ErrDateNotFound, text, sheet.Title())
	case 1:
		return cells[0], nil
	default:
		return entity.Cell{}, fmt.Errorf("%w: %s found %d times in sheet %s", ErrDateNotFound, text, len(cells), sheet.Title())
	}
}

// LectureCell returns the cell one row below the date anchor and slot-1 columns to its right
func (l *locator) LectureCell(ctx context.Context, sheet contract.Worksheet, day time.Time, slot int) (entity.Cell, error) {
	if slot < 1 {
		return entity.Cell{}, fmt.Errorf("%w: got %d", ErrInvalidSlot, slot)
	}

	anchor, err := l.FindDateAnchor(ctx, sheet, day)
	if err != nil {
		return entity.Cell{}, err
	}

	cell, err := sheet.Cell(ctx, anchor.Row+1, anchor.Col+slot-1)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to read lecture cell: %w", err)
	}

	log.Printf("Lecture cell for %s #%d is row %d, column %s", day.Format(domain.DateLayout), slot, cell.Row, a1.ColumnLetter(cell.Col))
	return cell, nil
}

func (l *locator) StudentRow(ctx context.Context, sheet contract.Worksheet, studentName string) (int, error) {
	cells, err := sheet.FindAll(ctx, studentName)
	if err != nil {
		return 0, fmt.Errorf("failed to search for student %q: %w", studentName, err)
	}

	switch len(cells) {
	case 0:
		return 0, fmt.Errorf("%w: %q in sheet %s", ErrStudentNotFound, studentName, sheet.Title())
	case 1:
		return cells[0].Row, nil
	default:
		return 0, fmt.Errorf("%w: %q found %d times in sheet %s", ErrStudentAmbiguous, studentName, len(cells), sheet.Title())
	}
}

func (l *locator) Mark(ctx context.Context, sheet contract.Worksheet, row, col int, marker string) error {
	if err := sheet.UpdateCell(ctx, row, col, marker); err != nil {
		return fmt.Errorf("failed to write %s at %s: %w", marker, a1.Cell(sheet.Title(), row, col), err)
	}
	return nil
}

// LectureTitle reads the name of the lecture held in slot on day
func (l *locator) LectureTitle(ctx context.Context, tenant entity.Tenant, day time.Time, slot int) (string, error) {
	sheet, err := l.OpenMonthSheet(ctx, tenant, day)
	if err != nil {
		return "", err
	}

	cell, err := l.LectureCell(ctx, sheet, day, slot)
	if err != nil {
		return "", err
	}

	if cell.Value == "" {
		return "", fmt.Errorf("%w: %s (%s) #%d at %s", ErrLectureTitleNotFound,
			day.Format(domain.DateLayout), day.Weekday(), slot, a1.Cell(sheet.Title(), cell.Row, cell.Col))
	}
	return cell.Value, nil
}

// MarkStudent writes marker into the student's row under the lecture column and returns the written cell
func (l *locator) MarkStudent(ctx context.Context, tenant entity.Tenant, day time.Time, slot int, studentName, marker string) (entity.Cell, error) {
	log.Printf("Marking student %s as %s", studentName, marker)

	sheet, err := l.OpenMonthSheet(ctx, tenant, day)
	if err != nil {
		return entity.Cell{}, err
	}

	row, err := l.StudentRow(ctx, sheet, studentName)
	if err != nil {
		return entity.Cell{}, err
	}

	lecture, err := l.LectureCell(ctx, sheet, day, slot)
	if err != nil {
		return entity.Cell{}, err
	}

	if err := l.Mark(ctx, sheet, row, lecture.Col, marker); err != nil {
		return entity.Cell{}, err
	}

	log.Printf("Marked student %s as %s in sheet %s at row %d, column %s",
		studentName, marker, sheet.Title(), row, a1.ColumnLetter(lecture.Col))

	return entity.Cell{Row: row, Col: lecture.Col, Value: marker}, nil
}
