package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Table is a header-keyed view of a delimited document.
type Table struct {
	// Header holds the raw header cells in column order.
	Header []string
	// Rows maps each raw header cell to the row's value for that column.
	Rows []map[string]string
	// Errors collects malformed records. A record with a wrong field count is
	// reported here but still kept in Rows.
	Errors []error
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrNotText is reported for a document that is not delimited text, such as
// a spreadsheet published as xlsx instead of CSV.
var ErrNotText = errors.New("document is not delimited text")

// ParseCSV reads a comma-delimited document with a header row. Blank lines
// are skipped. Quotes are lenient: a bare quote inside an unquoted field is
// kept as a literal character and an unterminated quoted field runs to the
// end of the document. Records with a wrong field count are reported in
// Table.Errors but kept.
func ParseCSV(data []byte) *Table {
	t := &Table{}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		t.Errors = append(t.Errors, ErrNotText)
		return t
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return t
	}

	if err != nil {
		t.Errors = append(t.Errors, fmt.Errorf("header: %w", err))
		return t
	}

	t.Header = header

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			t.Errors = append(t.Errors, err)
			break
		}

		if len(record) != len(header) {
			line, _ := r.FieldPos(0)
			t.Errors = append(t.Errors, fmt.Errorf("line %d: expected %d fields, got %d", line, len(header), len(record)))
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}

		t.Rows = append(t.Rows, row)
	}

	return t
}
