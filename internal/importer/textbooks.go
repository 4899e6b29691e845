package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/validation"
	"github.com/xuri/excelize/v2"
)

// Column positions of a catalog sheet. The first row is a header and is
// skipped; header text is not checked.
const (
	colLevel = iota
	colSubject
	colName
	colDuration
	minColumns = colName + 1
)

// TextbookRow is one catalog line as read from a sheet.
type TextbookRow struct {
	Line     int      `name:"line"`
	Level    string   `name:"level" validate:"notblank"`
	Subject  string   `name:"subject" validate:"notblank"`
	Name     string   `name:"name" validate:"notblank"`
	Duration *float64 `name:"duration" validate:"omitnil,gte=0"`
}

// Textbook converts the row to a catalog entry.
func (r TextbookRow) Textbook() *domain.MasterTextbook {
	return &domain.MasterTextbook{
		Subject:  r.Subject,
		Level:    domain.Level(r.Level),
		Name:     r.Name,
		Duration: r.Duration,
	}
}

// Issue is a problem found on one line.
type Issue struct {
	Line   int
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s", i.Line, i.Reason)
}

// TextbookSheet is the parsed content of a catalog file.
type TextbookSheet struct {
	Rows []TextbookRow
	// Skipped rows are missing a required cell, fail validation, or repeat
	// an earlier (subject, level, name).
	Skipped []Issue
	// Warnings are accepted rows with a non-numeric duration read as 0.
	Warnings []Issue
}

// ReadTextbookFile reads a .csv, .xlsx or .xlsm catalog. sheet selects the
// worksheet of a workbook; empty means the first sheet.
func ReadTextbookFile(path, sheet string) (*TextbookSheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return ReadTextbookCSV(f)
	case ".xlsx", ".xlsm":
		wb, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("opening workbook %s: %w", path, err)
		}
		defer wb.Close()
		return ReadTextbookWorkbook(wb, sheet)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// ReadTextbookCSV parses catalog rows from CSV.
func ReadTextbookCSV(r io.Reader) (*TextbookSheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		records = append(records, rec)
	}
	return parseTextbookRecords(records), nil
}

// ReadTextbookWorkbook parses catalog rows from a workbook sheet.
func ReadTextbookWorkbook(wb *excelize.File, sheet string) (*TextbookSheet, error) {
	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return parseTextbookRecords(rows), nil
}

func parseTextbookRecords(records [][]string) *TextbookSheet {
	out := &TextbookSheet{}
	type key struct{ subject, level, name string }
	seen := make(map[key]int)

	for i, rec := range records {
		line := i + 1
		if i == 0 || blankRecord(rec) {
			continue
		}
		if len(rec) < minColumns {
			out.Skipped = append(out.Skipped, Issue{Line: line, Reason: "missing columns"})
			continue
		}

		row := TextbookRow{
			Line:    line,
			Level:   strings.ToLower(strings.TrimSpace(rec[colLevel])),
			Subject: strings.TrimSpace(rec[colSubject]),
			Name:    strings.TrimSpace(rec[colName]),
		}
		if len(rec) > colDuration {
			d, ok := parseDuration(rec[colDuration])
			row.Duration = d
			if !ok {
				out.Warnings = append(out.Warnings, Issue{Line: line, Reason: fmt.Sprintf("duration %q is not a number, using 0", rec[colDuration])})
			}
		}

		if errs := validation.Struct(row); errs != nil {
			out.Skipped = append(out.Skipped, Issue{Line: line, Reason: validation.Summary(errs)})
			continue
		}

		k := key{row.Subject, row.Level, row.Name}
		if first, dup := seen[k]; dup {
			out.Skipped = append(out.Skipped, Issue{Line: line, Reason: fmt.Sprintf("duplicate of line %d", first)})
			continue
		}
		seen[k] = line
		out.Rows = append(out.Rows, row)
	}
	return out
}

// parseDuration reads an hours cell. Blank is absent; anything that is not
// a number becomes 0 and reports ok=false.
func parseDuration(cell string) (*float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		zero := 0.0
		return &zero, false
	}
	return &v, true
}

func blankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
