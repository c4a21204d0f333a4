// Package spreadsheet reads and writes the tabular files used for person import and export.
package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	apperrors "dealspace-backend/internal/errors"

	"github.com/xuri/excelize/v2"
)

// ErrMissingHeader is returned when a file has no header row
var ErrMissingHeader = errors.New("file has no header row")

// Row is a data row keyed by normalized header name. Number is the 1-based
// line in the source file, so the header is row 1 and data starts at row 2.
type Row struct {
	Number int
	Values map[string]string
}

// Get returns the trimmed value of a column
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Values[column])
}

// Empty reports whether every cell of the row is blank
func (r Row) Empty() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Format is a supported import file format
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFromFilename picks the format from the file extension
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	}
	return "", apperrors.ErrUnsupportedImportFormat
}

// ReadRows parses the file and returns its non-empty data rows
func ReadRows(format Format, r io.Reader) ([]Row, error) {
	var records [][]string
	var err error

	switch format {
	case FormatXLSX:
		records, err = readXLSX(r)
	case FormatCSV:
		records, err = readCSV(r)
	default:
		return nil, apperrors.ErrUnsupportedImportFormat
	}
	if err != nil {
		return nil, err
	}

	return toRows(records)
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrMissingHeader
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)

	// Strip UTF-8 BOM written by spreadsheet tools
	if head, err := br.Peek(3); err == nil && bytes.Equal(head, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return records, nil
}

func toRows(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, ErrMissingHeader
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = NormalizeHeader(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row := Row{Number: i + 2, Values: make(map[string]string, len(headers))}
		for col, header := range headers {
			if header == "" || col >= len(record) {
				continue
			}
			row.Values[header] = record[col]
		}
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NormalizeHeader lowercases a header and turns spaces and dashes into underscores
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	return h
}
