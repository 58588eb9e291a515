// Package xlsxgrid writes the visible columns of a tree as Excel sheet
// and reads flat sheets back as statictree.List branches.
//
// Blank cells sharing one anchor cell are merged with that anchor
// using Excel merged cells.
//
// The package uses the excelize library (github.com/xuri/excelize/v2).
//
// Example usage:
//
//	tree, _ := statictree.New(root)
//	err := xlsxgrid.NewWriter().
//	    WithHeaderTitles("Name", "Count").
//	    Write(ctx, file, tree, nil, "Groceries")
package xlsxgrid

import (
	"context"
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-treegrid"
)

// Writer writes a treegrid.ExpansionSource as Excel sheet.
//
// Writer is immutable after creation, all With methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	titles      []string
	cellText    treegrid.CellTextFunc
	mergeBlanks bool
}

// NewWriter returns a Writer merging blank cells with their anchors.
func NewWriter() *Writer {
	return &Writer{
		cellText:    treegrid.BranchCellText,
		mergeBlanks: true,
	}
}

// Write writes the visible columns of source in the display order
// of permutation as a workbook with a single sheet to dest.
// An empty sheet name keeps the default name of excelize.
func (w *Writer) Write(ctx context.Context, dest io.Writer, source treegrid.ExpansionSource, permutation *treegrid.ColumnPermutation, sheet string) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	defaultSheet := f.GetSheetName(0)
	if sheet == "" {
		sheet = defaultSheet
	} else if sheet != defaultSheet {
		err = f.SetSheetName(defaultSheet, sheet)
		if err != nil {
			return err
		}
	}
	err = w.WriteSheet(ctx, f, sheet, source, permutation)
	if err != nil {
		return err
	}
	return f.Write(dest)
}

// WriteSheet writes the visible columns of source in the display order
// of permutation to sheet of f, creating the sheet if it does not exist.
// A nil permutation shows all columns in native order.
func (w *Writer) WriteSheet(ctx context.Context, f *excelize.File, sheet string, source treegrid.ExpansionSource, permutation *treegrid.ColumnPermutation) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if permutation == nil {
		var err error
		permutation, err = treegrid.NewIdentityColumnPermutation(source.ColumnCount(), false)
		if err != nil {
			return err
		}
	}
	texts, err := treegrid.ViewStrings(ctx, source, permutation, 0, w.cellText)
	if err != nil {
		return err
	}
	var cells []treegrid.MergedCell
	if w.mergeBlanks {
		cells, err = treegrid.MergeCells(ctx, source, permutation)
		if err != nil {
			return err
		}
	}
	_, err = f.NewSheet(sheet)
	if err != nil {
		return err
	}

	firstRow := 1
	if w.titles != nil {
		for col := range permutation.VisibleColumnCount() {
			native, err := permutation.GetNativeColumn(col)
			if err != nil {
				return err
			}
			if native >= len(w.titles) {
				continue
			}
			err = setCellStr(f, sheet, col, firstRow, w.titles[native])
			if err != nil {
				return err
			}
		}
		firstRow++
	}

	if !w.mergeBlanks {
		for row, rowTexts := range texts {
			for col, text := range rowTexts {
				err = setCellStr(f, sheet, col, firstRow+row, text)
				if err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, cell := range cells {
		if cell.AnchorRow != treegrid.NullIndex {
			err = setCellStr(f, sheet, cell.Column, firstRow+cell.Row, texts[cell.AnchorRow][cell.AnchorColumn])
			if err != nil {
				return err
			}
		}
		if cell.RowSpan == 1 && cell.ColumnSpan == 1 {
			continue
		}
		topLeft, err := excelize.CoordinatesToCellName(cell.Column+1, firstRow+cell.Row)
		if err != nil {
			return err
		}
		bottomRight, err := excelize.CoordinatesToCellName(cell.Column+cell.ColumnSpan, firstRow+cell.Row+cell.RowSpan-1)
		if err != nil {
			return err
		}
		err = f.MergeCell(sheet, topLeft, bottomRight)
		if err != nil {
			return err
		}
	}
	return nil
}

// setCellStr sets the zero based display column col
// of the one based sheet row to text.
func setCellStr(f *excelize.File, sheet string, col, row int, text string) error {
	if text == "" {
		return nil
	}
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}
	return f.SetCellStr(sheet, name, text)
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderTitles returns a copy of the writer that writes
// a header row with titles indexed by native column.
// Passing nil removes the header row.
func (w *Writer) WithHeaderTitles(titles ...string) *Writer {
	mod := w.clone()
	mod.titles = titles
	return mod
}

// WithCellText returns a copy of the writer using cellText
// to get the text of the cells.
// Passing nil restores treegrid.BranchCellText.
func (w *Writer) WithCellText(cellText treegrid.CellTextFunc) *Writer {
	mod := w.clone()
	mod.cellText = cellText
	if cellText == nil {
		mod.cellText = treegrid.BranchCellText
	}
	return mod
}

// WithMergeBlanks returns a copy of the writer that merges blank cells
// with their anchor cell or writes every cell on its own.
func (w *Writer) WithMergeBlanks(mergeBlanks bool) *Writer {
	mod := w.clone()
	mod.mergeBlanks = mergeBlanks
	return mod
}
