package xlsxgrid

import (
	"errors"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-treegrid/statictree"
)

// ReadFirstSheet reads the first sheet of an Excel file
// as a flat statictree.List.
//
// If headerRow is true the first sheet row is returned as titles
// and not part of the list.
// Trailing empty cells of a row make it a jagged row of the list,
// the column count of the list is the length of its longest row.
// Merged cells only hold their value in the top left cell.
//
// Returns ErrEmptySheet if the sheet has no rows.
func ReadFirstSheet(reader io.Reader, headerRow bool) (list *statictree.List, titles []string, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	return readSheet(f, sheet, headerRow)
}

// ReadSheet reads the sheet with the passed name like ReadFirstSheet.
func ReadSheet(reader io.Reader, sheet string, headerRow bool) (list *statictree.List, titles []string, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if !slices.Contains(f.GetSheetList(), sheet) {
		return nil, nil, ErrSheetNotExist{SheetName: sheet}
	}
	return readSheet(f, sheet, headerRow)
}

func readSheet(f *excelize.File, sheet string, headerRow bool) (*statictree.List, []string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	// Remove empty rows at the end
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptySheet
	}
	var titles []string
	if headerRow {
		titles, rows = rows[0], rows[1:]
	}
	columns := len(titles)
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	return statictree.NewList(columns, rows...), titles, nil
}
