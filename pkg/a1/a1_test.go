package a1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		name string
		col  int
		want string
	}{
		{name: "first column", col: 1, want: "A"},
		{name: "last single letter", col: 26, want: "Z"},
		{name: "first double letter", col: 27, want: "AA"},
		{name: "end of A block", col: 52, want: "AZ"},
		{name: "start of B block", col: 53, want: "BA"},
		{name: "last double letter", col: 702, want: "ZZ"},
		{name: "first triple letter", col: 703, want: "AAA"},
		{name: "zero is invalid", col: 0, want: ""},
		{name: "negative is invalid", col: -3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnLetter(tt.col))
		})
	}
}

func TestColumnLetter_SingleLetters(t *testing.T) {
	for col := 1; col <= 26; col++ {
		assert.Equal(t, string(rune('A'+col-1)), ColumnLetter(col))
	}
}

func TestColumnIndex_RoundTrip(t *testing.T) {
	for col := 1; col <= 20000; col++ {
		got, err := ColumnIndex(ColumnLetter(col))
		require.NoError(t, err)
		require.Equal(t, col, got, "round trip failed for %d", col)
	}
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		want    int
		wantErr bool
	}{
		{name: "upper case", letters: "AZ", want: 52},
		{name: "lower case", letters: "zz", want: 702},
		{name: "empty", letters: "", wantErr: true},
		{name: "digits", letters: "A1", wantErr: true},
		{name: "cyrillic", letters: "Б", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColumnIndex(tt.letters)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCell(t *testing.T) {
	assert.Equal(t, "'Квітень'!F6", Cell("Квітень", 6, 6))
	assert.Equal(t, "'O''Neil sheet'!AA10", Cell("O'Neil sheet", 10, 27))
	assert.Equal(t, "'Травень'", Sheet("Травень"))
}
