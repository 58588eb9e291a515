// Package htmlgrid writes the visible columns of a tree as HTML table.
//
// Blank cells sharing one anchor cell are merged with that anchor
// into a single table cell using rowspan and colspan,
// so expanded child rows show below their parent cells
// the way a tree grid displays them.
//
// Example usage:
//
//	tree, _ := statictree.New(root)
//	err := htmlgrid.NewWriter().
//	    WithHeaderTitles("Name", "Count").
//	    WithTableClass("tree").
//	    Write(ctx, os.Stdout, tree, nil, "Groceries")
package htmlgrid

import (
	"context"
	"html/template"
	"io"
	"strings"

	"github.com/domonda/go-treegrid"
)

// Writer writes a treegrid.ExpansionSource as HTML table.
//
// Writer is immutable after creation, all With methods return
// a new Writer instance with the modified configuration.
// All cell texts are HTML escaped.
type Writer struct {
	tableClass     string
	titles         []string
	cellText       treegrid.CellTextFunc
	mergeBlanks    bool
	headerTemplate *template.Template
	rowTemplate    *template.Template
	footerTemplate *template.Template
}

// NewWriter returns a Writer merging blank cells
// with their anchors using the standard templates.
func NewWriter() *Writer {
	return &Writer{
		cellText:       treegrid.BranchCellText,
		mergeBlanks:    true,
		headerTemplate: HeaderTemplate,
		rowTemplate:    RowTemplate,
		footerTemplate: FooterTemplate,
	}
}

// Write writes the visible columns of source in the display order
// of permutation as HTML table to dest.
// A nil permutation shows all columns in native order.
// The caption strings are joined with spaces.
func (w *Writer) Write(ctx context.Context, dest io.Writer, source treegrid.ExpansionSource, permutation *treegrid.ColumnPermutation, caption ...string) error {
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

	var (
		numCols   = permutation.VisibleColumnCount()
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    strings.Join(caption, " "),
			},
			Cells: make([]CellTemplateContext, 0, numCols),
		}
	)

	err = w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.titles != nil {
		templData.IsHeaderRow = true
		for col := range numCols {
			native, err := permutation.GetNativeColumn(col)
			if err != nil {
				return err
			}
			var title string
			if native < len(w.titles) {
				title = w.titles[native]
			}
			templData.Cells = append(templData.Cells, CellTemplateContext{
				Raw:     template.HTML(template.HTMLEscapeString(title)), //#nosec G203
				RowSpan: 1,
				ColSpan: 1,
			})
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	var cells []treegrid.MergedCell
	if w.mergeBlanks {
		cells, err = treegrid.MergeCells(ctx, source, permutation)
		if err != nil {
			return err
		}
	} else {
		cells = singleCells(len(texts), numCols)
	}
	for row := range texts {
		templData.Cells = templData.Cells[:0]
		for len(cells) > 0 && cells[0].Row == row {
			cell := cells[0]
			cells = cells[1:]
			var text string
			if cell.AnchorRow != treegrid.NullIndex {
				text = texts[cell.AnchorRow][cell.AnchorColumn]
			}
			templData.Cells = append(templData.Cells, CellTemplateContext{
				Raw:     template.HTML(template.HTMLEscapeString(text)), //#nosec G203
				RowSpan: cell.RowSpan,
				ColSpan: cell.ColumnSpan,
			})
		}

		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func singleCells(numRows, numCols int) []treegrid.MergedCell {
	cells := make([]treegrid.MergedCell, 0, numRows*numCols)
	for row := range numRows {
		for col := range numCols {
			cells = append(cells, treegrid.MergedCell{
				Row:          row,
				Column:       col,
				RowSpan:      1,
				ColumnSpan:   1,
				AnchorRow:    row,
				AnchorColumn: col,
			})
		}
	}
	return cells
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
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

func (w *Writer) WithTemplate(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}
