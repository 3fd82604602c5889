// Package a1 converts between 1-based spreadsheet coordinates and A1 notation.
package a1

import (
	"fmt"
	"strings"
)

// ColumnLetter returns the A1 column name for a 1-based column index:
// 1 is "A", 26 is "Z", 27 is "AA". It returns "" for indexes below 1.
func ColumnLetter(col int) string {
	if col < 1 {
		return ""
	}

	var b []byte
	for col > 0 {
		col--
		b = append(b, byte('A'+col%26))
		col /= 26
	}

	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ColumnIndex is the inverse of ColumnLetter. Lower case letters are accepted.
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("empty column name")
	}

	col := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", letters)
		}
		col = col*26 + int(r-'A'+1)
	}
	return col, nil
}

// Cell renders a single cell reference such as 'Квітень'!F6. Sheet titles are
// always quoted so that non-latin and spaced titles stay valid.
func Cell(sheetTitle string, row, col int) string {
	return fmt.Sprintf("%s!%s%d", quote(sheetTitle), ColumnLetter(col), row)
}

// Sheet renders a range that covers the whole worksheet.
func Sheet(sheetTitle string) string {
	return quote(sheetTitle)
}

func quote(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
