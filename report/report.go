// Package report renders palettes, comparisons and histories as text or HTML.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/colorlab/compare"
	"github.com/mmuldo/colorlab/history"
	"github.com/mmuldo/colorlab/palette"
)

// Format selects a template set.
type Format string

const (
	Text Format = "text"
	HTML Format = "html"
)

var (
	textTpl = pongo2.Must(pongo2.FromString(textTemplate))
	htmlTpl = pongo2.Must(pongo2.FromString(htmlTemplate))
)

// Color is the display form of a palette color.
type Color struct {
	Hex       string
	RGB       string
	Lab       string
	Lightness string
	Active    bool
}

// Row is the display form of a history record.
type Row struct {
	Index  int
	Name   string
	Time   string
	Ref    Color
	Sel    Color
	DeltaE string
	Label  string
	Class  string
}

// Comparison is the display form of the colors currently in play.
type Comparison struct {
	HasRef bool
	HasSel bool
	Ref    Color
	Sel    Color
	DeltaE string
	// CIEDE2000 of the same pair, shown for information only.
	DeltaE2000 string
	Label      string
	Class      string
}

// Data is everything a report shows. Any part may be empty.
type Data struct {
	Title      string
	Palette    []Color
	Comparison *Comparison
	History    []Row
}

// NewColor formats c for display.
func NewColor(c palette.Color) Color {
	return Color{
		Hex:       strings.ToUpper(c.Hex),
		RGB:       c.RGBString(),
		Lab:       c.LabString(),
		Lightness: strconv.FormatFloat(c.Lab.L, 'f', 2, 64),
	}
}

// NewPalette formats p, marking the color matching the active reference.
func NewPalette(p palette.Palette, active *palette.Color) []Color {
	out := make([]Color, len(p))
	for i, c := range p {
		out[i] = NewColor(c)
		out[i].Active = active != nil && active.Same(c)
	}
	return out
}

// NewComparison formats the reference and selected colors and, when both
// are present, their difference.
func NewComparison(ref, sel *palette.Color) *Comparison {
	cmp := &Comparison{}
	if ref != nil {
		cmp.HasRef, cmp.Ref = true, NewColor(*ref)
	}
	if sel != nil {
		cmp.HasSel, cmp.Sel = true, NewColor(*sel)
	}
	if ref != nil && sel != nil {
		res := compare.Compare(ref.Lab, sel.Lab)
		cmp.DeltaE = strconv.FormatFloat(res.DeltaE, 'f', 2, 64)
		cmp.DeltaE2000 = strconv.FormatFloat(res.DeltaE2000, 'f', 2, 64)
		cmp.Label = res.Interpretation.Label
		cmp.Class = res.Interpretation.SeverityClass
	}
	return cmp
}

// NewHistory formats h, with times shown in loc.
func NewHistory(h history.History, loc *time.Location) []Row {
	out := make([]Row, len(h))
	for i, r := range h {
		in := r.Interpret()
		out[i] = Row{
			Index:  i,
			Name:   r.Name,
			Time:   r.Timestamp.In(loc).Format("2006-01-02 15:04:05"),
			Ref:    NewColor(r.Reference),
			Sel:    NewColor(r.Sampled),
			DeltaE: strconv.FormatFloat(r.DeltaE, 'f', 2, 64),
			Label:  in.Label,
			Class:  in.SeverityClass,
		}
		// keep the values as they were displayed when the record was saved
		if r.Formatted != nil {
			out[i].Ref.RGB, out[i].Ref.Lab = r.Formatted.Reference.RGB, r.Formatted.Reference.Lab
			out[i].Sel.RGB, out[i].Sel.Lab = r.Formatted.Sampled.RGB, r.Formatted.Sampled.Lab
		}
	}
	return out
}

// Render writes d to w in the given format.
func Render(w io.Writer, f Format, d Data) error {
	var tpl *pongo2.Template
	switch f {
	case Text:
		tpl = textTpl
	case HTML:
		tpl = htmlTpl
	default:
		return fmt.Errorf("'%s' is not a supported report format", f)
	}

	ctxt := pongo2.Context{
		"title":         d.Title,
		"palette":       d.Palette,
		"history":       d.History,
		"hasComparison": d.Comparison != nil,
	}
	if d.Comparison != nil {
		ctxt["comparison"] = *d.Comparison
	}
	return tpl.ExecuteWriter(ctxt, w)
}
