// Package roster reads uploaded CSV rosters and writes CSV exports.
//
// Interviewers keep round-wise shortlists as spreadsheets; the roster upload
// endpoint accepts those files directly instead of making staff paste
// registration numbers into JSON.
package roster

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	strutil "recruitdesk/pkg/platform/strings"
)

var (
	ErrNoHeaders              = errors.New("no header row detected in roster file")
	ErrMissingRegNumberColumn = errors.New("roster file has no registration number column")
	ErrNoIdentifiers          = errors.New("roster file contains no registration numbers")
)

// regNumberAliases are the header spellings accepted for the registration
// number column, compared after lowercasing and stripping spaces and
// underscores.
var regNumberAliases = []string{
	"registernumber",
	"registrationnumber",
	"regnumber",
	"regno",
	"ranumber",
}

// ParseIdentifiers extracts the registration number column from a CSV
// roster. The first row must be a header; rows missing the column are
// skipped, and duplicates collapse to the first occurrence.
func ParseIdentifiers(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeaders
		}
		return nil, err
	}

	col := findRegNumberColumn(header)
	if col < 0 {
		return nil, ErrMissingRegNumberColumn
	}

	var identifiers []string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(row) {
			continue
		}
		identifiers = append(identifiers, row[col])
	}

	identifiers = strutil.DedupeAndTrim(identifiers)
	if len(identifiers) == 0 {
		return nil, ErrNoIdentifiers
	}
	return identifiers, nil
}

func findRegNumberColumn(header []string) int {
	for i, name := range header {
		normalized := normalizeHeader(name)
		for _, alias := range regNumberAliases {
			if normalized == alias {
				return i
			}
		}
	}
	return -1
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, "-", "")
	return name
}

// ExportHeader is the column layout of registration exports.
var ExportHeader = []string{"Name", "Registration Number", "Email", "Phone", "Registered At", "Round"}

// ExportRow is one line of a registration export.
type ExportRow struct {
	Name           string
	RegisterNumber string
	Email          string
	Phone          string
	RegisteredAt   string
	Round          string
}

// WriteExport streams rows as CSV.
func WriteExport(w io.Writer, rows []ExportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Name, row.RegisterNumber, row.Email, row.Phone, row.RegisteredAt, row.Round}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
