// Package csvgrid writes the visible columns of a tree as CSV
// in the display order of a treegrid.ColumnPermutation.
package csvgrid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
)

// Format describes the encoding and structure of written CSV.
//
// Example:
//
//	format := &csvgrid.Format{
//	    Encoding:  "UTF-8",
//	    Separator: ",",
//	    Newline:   "\r\n",
//	}
type Format struct {
	// Encoding of the written bytes,
	// any name known to the go-types charset package.
	Encoding string `json:"encoding"`

	// Separator is the field delimiter, must be a single character.
	Separator string `json:"separator"`

	// Newline is one of "\n", "\r\n" or "\n\r".
	Newline string `json:"newline"`
}

// NewFormat returns a UTF-8 Format with "\r\n" newlines
// and the passed separator.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error if the format can't be written.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvgrid.Format")
	case f.Encoding == "":
		return errors.New("missing csvgrid.Format.Encoding")
	case len([]rune(f.Separator)) != 1:
		return fmt.Errorf("invalid csvgrid.Format.Separator %q", f.Separator)
	case f.Newline != "\n" && f.Newline != "\r\n" && f.Newline != "\n\r":
		return fmt.Errorf("invalid csvgrid.Format.Newline %q", f.Newline)
	}
	if !isUTF8(f.Encoding) {
		_, err := charset.GetEncoding(f.Encoding)
		if err != nil {
			return err
		}
	}
	return nil
}

func isUTF8(encoding string) bool {
	switch strings.ToUpper(encoding) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}
