package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RowSource yields data rows after the header. Next returns io.EOF when
// the source is exhausted. An error wrapping ErrMalformedRow affects only
// the current row; any other error is fatal for the load.
type RowSource interface {
	Next() ([]string, error)
	Close() error
}

// OpenSource opens path as a CSV file, or as an XLSX workbook when the
// extension is .xlsx. The header row is consumed.
func OpenSource(path string) (RowSource, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return openXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	src, err := newCSVSource(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return src, nil
}

type csvSource struct {
	r      *csv.Reader
	closer io.Closer
	empty  bool
}

// NewCSVSource reads delimited rows from r. The first row is the header.
func NewCSVSource(r io.Reader) (RowSource, error) {
	return newCSVSource(io.NopCloser(r))
}

func newCSVSource(rc io.ReadCloser) (*csvSource, error) {
	r := csv.NewReader(rc)
	// Row shape is validated per row, not per file.
	r.FieldsPerRecord = -1
	s := &csvSource{r: r, closer: rc}

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			s.empty = true
			return s, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return s, nil
}

func (s *csvSource) Next() ([]string, error) {
	if s.empty {
		return nil, io.EOF
	}
	row, err := s.r.Read()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, perr)
		}
		return nil, err
	}
	return row, nil
}

func (s *csvSource) Close() error { return s.closer.Close() }

type xlsxSource struct {
	file  *excelize.File
	rows  *excelize.Rows
	width int
}

func openXLSX(path string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("opening workbook: %s has no sheets", path)
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	s := &xlsxSource{file: f, rows: rows}
	if rows.Next() {
		header, err := rows.Columns()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("reading header: %w", err)
		}
		s.width = len(header)
	}
	return s, nil
}

func (s *xlsxSource) Next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	// Stored values, not display text: numbers lose their number format and
	// dates arrive as serials.
	cols, err := s.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	// Excel drops trailing empty cells; pad so they reach the blank gate
	// like their CSV counterparts.
	for len(cols) < s.width {
		cols = append(cols, "")
	}
	return cols, nil
}

func (s *xlsxSource) Close() error {
	if s.rows != nil {
		s.rows.Close()
	}
	return s.file.Close()
}
