// Package excel reads the source workbook, one named sheet at a time.
// Sheets are independent of each other; callers probe optional sheets
// with HasSheet before extracting.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// MissingSheetError reports a requested sheet that is absent from the
// workbook.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Sheet)
}

// Workbook wraps an open spreadsheet file.
type Workbook struct {
	file *excelize.File
	path string
}

// Open opens the workbook at path. The caller must Close it.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{file: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Path returns the workbook file path.
func (w *Workbook) Path() string {
	return w.path
}

// Sheets lists the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// HasSheet reports whether the named sheet exists. Matching is exact;
// sheet names are contract, not discovered at runtime.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.file.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// Extract returns the header row and the data rows of the named sheet,
// in sheet order. Cells are returned as formatted strings, exactly as a
// user sees them.
//
// A sheet with a header but no data rows yields an empty row slice. A
// completely empty sheet yields a nil header and no rows. A missing
// sheet yields a MissingSheetError.
func (w *Workbook) Extract(name string) (header []string, rows [][]string, err error) {
	if !w.HasSheet(name) {
		return nil, nil, &MissingSheetError{Sheet: name}
	}

	all, err := w.file.GetRows(name)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}
