package csvgrid

import (
	"bytes"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-treegrid"
)

// Padding of written fields to the width of their column.
type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes the visible columns of a treegrid.SectionSource as CSV.
//
// Every display column is read with its own treegrid.ColumnItemEnumerator,
// blank cells are written as empty fields unless WithRepeatAnchors is set.
//
// A Writer is immutable, the With methods return modified copies.
type Writer struct {
	format           Format
	titles           []string
	cellText         treegrid.CellTextFunc
	indent           string
	repeatAnchors    bool
	padding          Padding
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
}

// NewWriter returns a Writer using ';' as separator,
// "\r\n" as newline and UTF-8 encoding.
func NewWriter() *Writer {
	return &Writer{
		format:       *NewFormat(";"),
		cellText:     treegrid.BranchCellText,
		padding:      NoPadding,
		escapeQuotes: `""`,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// ViewStrings returns the cells of the visible columns of source
// in the display order of permutation, which can be nil to
// display all columns in native order.
// If header titles are set, the first row holds them.
func (w *Writer) ViewStrings(ctx context.Context, source treegrid.SectionSource, permutation *treegrid.ColumnPermutation) ([][]string, error) {
	if permutation == nil {
		var err error
		permutation, err = treegrid.NewIdentityColumnPermutation(source.ColumnCount(), false)
		if err != nil {
			return nil, err
		}
	}
	var header []string
	if w.titles != nil {
		header = make([]string, permutation.VisibleColumnCount())
		for col := range header {
			native, err := permutation.GetNativeColumn(col)
			if err != nil {
				return nil, err
			}
			if native < len(w.titles) {
				header[col] = w.titles[native]
			}
		}
	}

	var options treegrid.EnumerateOption
	if w.repeatAnchors {
		options |= treegrid.EnumerateReturnBlankAnchors
	}
	cellText := w.cellText
	if w.indent != "" {
		cellText = func(item treegrid.ColumnItem) string {
			str := w.cellText(item)
			if item.DisplayColumn == 0 && !item.Blank {
				str = strings.Repeat(w.indent, item.Level) + str
			}
			return str
		}
	}
	rows, err := treegrid.ViewStrings(ctx, source, permutation, options, cellText)
	if err != nil {
		return nil, err
	}
	if header != nil {
		rows = append([][]string{header}, rows...)
	}
	return rows, nil
}

// Write writes the visible columns of source as CSV to dest.
func (w *Writer) Write(ctx context.Context, dest io.Writer, source treegrid.SectionSource, permutation *treegrid.ColumnPermutation) error {
	err := w.format.Validate()
	if err != nil {
		return err
	}
	rows, err := w.ViewStrings(ctx, source, permutation)
	if err != nil {
		return err
	}
	var encoding charset.Encoding
	if !isUTF8(w.format.Encoding) {
		encoding, err = charset.GetEncoding(w.format.Encoding)
		if err != nil {
			return err
		}
	}

	var widths []int
	if w.padding != NoPadding {
		widths = columnWidths(rows)
	}
	delimiter, _ := utf8.DecodeRuneInString(w.format.Separator)
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, row := range rows {
		for col, str := range row {
			if col > 0 {
				rowBuf.WriteRune(delimiter)
			}
			str = w.escapeString(str, delimiter)
			if widths == nil {
				rowBuf.WriteString(str)
				continue
			}
			var (
				padTotal = widths[col] - utf8.RuneCountInString(str)
				padLeft  = 0
				padRight = 0
			)
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
			rowBuf.WriteString(strings.Repeat(" ", padLeft))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", padRight))
		}
		rowBuf.WriteString(w.format.Newline)

		line := rowBuf.Bytes()
		if encoding != nil {
			line, err = encoding.Encode(line)
			if err != nil {
				return err
			}
		}
		_, err = dest.Write(line)
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// WriteFile writes the visible columns of source as CSV to file.
func (w *Writer) WriteFile(ctx context.Context, file fs.File, source treegrid.SectionSource, permutation *treegrid.ColumnPermutation) error {
	var buf bytes.Buffer
	err := w.Write(ctx, &buf, source, permutation)
	if err != nil {
		return err
	}
	return file.WriteAll(buf.Bytes())
}

func (w *Writer) escapeString(str string, delimiter rune) string {
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, delimiter) || strings.ContainsRune(str, '\n'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		if len(row) > len(widths) {
			widths = append(widths, make([]int, len(row)-len(widths))...)
		}
		for col, str := range row {
			widths[col] = max(widths[col], utf8.RuneCountInString(str))
		}
	}
	return widths
}

// WithFormat returns a copy of the writer using format.
// The format is validated when writing.
func (w *Writer) WithFormat(format Format) *Writer {
	mod := w.clone()
	mod.format = format
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

// WithIndent returns a copy of the writer that prefixes
// the cells of the first display column with indent once per tree level.
func (w *Writer) WithIndent(indent string) *Writer {
	mod := w.clone()
	mod.indent = indent
	return mod
}

// WithRepeatAnchors returns a copy of the writer that fills
// blank cells attached to a cell above with the text of that cell.
func (w *Writer) WithRepeatAnchors(repeatAnchors bool) *Writer {
	mod := w.clone()
	mod.repeatAnchors = repeatAnchors
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}
