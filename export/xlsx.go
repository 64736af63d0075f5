// Package export writes analysis histories as spreadsheets.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mmuldo/colorlab/history"
	"github.com/mmuldo/colorlab/palette"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the analyses are written to.
const SheetName = "Analyses"

// ErrEmpty is returned when there is nothing to export.
var ErrEmpty = errors.New("no analyses to export")

// Header is the first row of the sheet.
var Header = []string{
	"Date/Time", "Sample Name",
	"Ref HEX", "Ref RGB", "Ref L*", "Ref a*", "Ref b*",
	"Sel HEX", "Sel RGB", "Sel L*", "Sel a*", "Sel b*",
	"Delta E", "Interpretation",
}

// FileName is the default export file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("color_analysis_%s.xlsx", now.Format("2006-01-02"))
}

// Row formats one record. Numbers are fixed to two decimals; the distance
// and interpretation are taken from the record, never recomputed.
func Row(r history.Record, loc *time.Location) []string {
	row := []string{r.Timestamp.In(loc).Format("2006-01-02 15:04:05"), r.Name}
	if r.Name == "" {
		row[1] = "Unnamed"
	}
	row = append(row, colorCells(r.Reference)...)
	row = append(row, colorCells(r.Sampled)...)
	return append(row, fixed(r.DeltaE), r.Interpret().Label)
}

func colorCells(c palette.Color) []string {
	return []string{
		strings.ToUpper(c.Hex),
		fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B),
		fixed(c.Lab.L),
		fixed(c.Lab.A),
		fixed(c.Lab.B),
	}
}

func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Workbook builds a workbook holding h, one record per row after the header.
func Workbook(h history.History, loc *time.Location) (*excelize.File, error) {
	if len(h) == 0 {
		return nil, ErrEmpty
	}

	f := excelize.NewFile()
	if e := f.SetSheetName("Sheet1", SheetName); e != nil {
		f.Close()
		return nil, e
	}

	if e := setRow(f, 1, Header); e != nil {
		f.Close()
		return nil, e
	}
	for i, r := range h {
		if e := setRow(f, i+2, Row(r, loc)); e != nil {
			f.Close()
			return nil, e
		}
	}
	return f, nil
}

func setRow(f *excelize.File, n int, values []string) error {
	cell, e := excelize.CoordinatesToCellName(1, n)
	if e != nil {
		return e
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &row)
}

// Write encodes h as an xlsx workbook to w.
func Write(w io.Writer, h history.History, loc *time.Location) error {
	f, e := Workbook(h, loc)
	if e != nil {
		return e
	}
	defer f.Close()

	_, e = f.WriteTo(w)
	return e
}

// Save writes h as an xlsx workbook to path.
func Save(path string, h history.History, loc *time.Location) error {
	f, e := Workbook(h, loc)
	if e != nil {
		return e
	}
	defer f.Close()

	return f.SaveAs(path)
}
