package parse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nodeadmin/geneweaver-core/schema"
)

// DefaultHeaderSearchRows is how many leading rows FindHeader inspects when
// callers have no better bound.
const DefaultHeaderSearchRows = 5

// Workbook reads gene data out of an .xlsx upload. Row indexes are 0-based
// and an empty sheet name means the active sheet.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook opens the workbook at path. Callers must Close it.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f}, nil
}

// ReadWorkbook opens a workbook from r.
func ReadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

func (w *Workbook) Close() error { return w.f.Close() }

// SheetNames lists the sheets in workbook order.
func (w *Workbook) SheetNames() []string { return w.f.GetSheetList() }

func (w *Workbook) sheet(name string) string {
	if name == "" {
		return w.f.GetSheetName(w.f.GetActiveSheetIndex())
	}
	return name
}

func (w *Workbook) rows(sheet string) ([][]string, error) {
	sheet = w.sheet(sheet)
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// FindHeader looks for a header row among the first maxRows rows. A row is
// a header when it has more than one cell, none of them empty or numeric,
// and the row after it has the same width. It returns the row index, or -1.
func (w *Workbook) FindHeader(sheet string, maxRows int) (bool, int, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return false, -1, err
	}
	for i := 0; i < maxRows && i+1 < len(rows); i++ {
		if looksLikeHeader(rows[i]) && len(rows[i+1]) == len(rows[i]) {
			return true, i, nil
		}
	}
	return false, -1, nil
}

func looksLikeHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return false
		}
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			return false
		}
	}
	return true
}

// HasHeader reports whether FindHeader finds a header in the default window.
func (w *Workbook) HasHeader(sheet string) (bool, error) {
	ok, _, err := w.FindHeader(sheet, DefaultHeaderSearchRows)
	return ok, err
}

// Headers returns the detected header row and its index. With no header it
// returns nil and -1.
func (w *Workbook) Headers(sheet string) ([]string, int, error) {
	ok, idx, err := w.FindHeader(sheet, DefaultHeaderSearchRows)
	if err != nil || !ok {
		return nil, idx, err
	}
	row, err := w.ReadRow(sheet, idx)
	return row, idx, err
}

// ReadRow returns the cells of row idx.
func (w *Workbook) ReadRow(sheet string, idx int) ([]string, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(rows) {
		return nil, fmt.Errorf("sheet %q has no row %d", w.sheet(sheet), idx)
	}
	return rows[idx], nil
}

// ReadRows returns up to n rows starting at row start.
func (w *Workbook) ReadRows(sheet string, n, start int) ([][]string, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= len(rows) || n <= 0 {
		return [][]string{}, nil
	}
	end := min(start+n, len(rows))
	return rows[start:end], nil
}

// ReadMetadata returns the free-text rows above the header, one string per
// row with its non-empty cells joined by commas.
func (w *Workbook) ReadMetadata(sheet string) ([]string, error) {
	_, idx, err := w.Headers(sheet)
	if err != nil {
		return nil, err
	}
	rows, err := w.ReadRows(sheet, idx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			c = strings.TrimSpace(strings.ReplaceAll(c, "\ufeff", ""))
			if c != "" {
				cells = append(cells, c)
			}
		}
		out = append(out, strings.Join(cells, ","))
	}
	return out, nil
}

// ReadToMaps uses row start as column names and returns every row below it
// keyed by those names.
func (w *Workbook) ReadToMaps(sheet string, start int) ([]map[string]string, error) {
	return w.ReadToMapsN(sheet, -1, start)
}

// ReadToMapsN is ReadToMaps limited to n data rows. A negative n reads all.
func (w *Workbook) ReadToMapsN(sheet string, n, start int) ([]map[string]string, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= len(rows) {
		return nil, fmt.Errorf("sheet %q has no row %d", w.sheet(sheet), start)
	}
	headers := rows[start]
	data := rows[start+1:]
	if n >= 0 && n < len(data) {
		data = data[:n]
	}

	out := make([]map[string]string, 0, len(data))
	for _, row := range data {
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				m[h] = row[i]
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// GeneValuesFromRows converts spreadsheet rows into gene values using the
// given column indexes. Rows with an empty symbol are skipped.
func GeneValuesFromRows(rows [][]string, symbolCol, valueCol int) ([]schema.GeneValue, error) {
	if symbolCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("negative column index (%d, %d)", symbolCol, valueCol)
	}
	values := make([]schema.GeneValue, 0, len(rows))
	for i, row := range rows {
		if symbolCol >= len(row) || strings.TrimSpace(row[symbolCol]) == "" {
			continue
		}
		symbol := strings.TrimSpace(row[symbolCol])
		if valueCol >= len(row) {
			return nil, fmt.Errorf("%w: row %d has no value for %s", ErrInvalidValueLine, i, symbol)
		}
		raw := strings.TrimSpace(row[valueCol])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d value %q for %s is not a number", ErrInvalidValueLine, i, raw, symbol)
		}
		values = append(values, schema.NewGeneValue(symbol, v))
	}
	return values, nil
}
