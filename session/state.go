// Package session holds the state of one interactive analysis: the loaded
// image, the selected and reference colors, the palette and the history. The
// color math it calls is stateless; State is passed around explicitly.
package session

import (
	"errors"
	"time"

	"github.com/mmuldo/colorlab/compare"
	"github.com/mmuldo/colorlab/history"
	"github.com/mmuldo/colorlab/palette"
	"github.com/mmuldo/colorlab/sampler"
)

var (
	ErrNoImage     = errors.New("no image loaded")
	ErrNoSelection = errors.New("no color selected")
	ErrNoReference = errors.New("no reference color")
)

// State is not safe for concurrent use; callers serialize sampling requests.
type State struct {
	Image      *sampler.Buffer
	Reference  *palette.Color
	Selected   *palette.Color
	SampleSize int
	LastX      int
	LastY      int

	Palette palette.Palette
	History history.History
}

// New returns a State with the default sample size.
func New(p palette.Palette, h history.History) *State {
	return &State{SampleSize: sampler.DefaultWindow, Palette: p, History: h}
}

// SetImage replaces the loaded image and clears both colors in play.
func (s *State) SetImage(b *sampler.Buffer) {
	s.Image = b
	s.Reference = nil
	s.Selected = nil
}

// Select samples the image around (x, y), clamped to the image, and makes the
// result the selected color.
func (s *State) Select(x, y int) (palette.Color, error) {
	if s.Image == nil {
		return palette.Color{}, ErrNoImage
	}
	x, y = s.Image.ClampPoint(x, y)
	s.LastX, s.LastY = x, y

	c := palette.New(s.Image.AverageColor(x, y, s.SampleSize))
	s.Selected = &c
	return c, nil
}

// SetSampleSize changes the window size and re-samples the last point if a
// color is selected.
func (s *State) SetSampleSize(size int) error {
	if e := sampler.ValidateWindow(size); e != nil {
		return e
	}
	s.SampleSize = size
	if s.Selected != nil && s.Image != nil {
		_, e := s.Select(s.LastX, s.LastY)
		return e
	}
	return nil
}

// SetReference makes c the active reference color.
func (s *State) SetReference(c palette.Color) {
	s.Reference = &c
}

// UseSelectedAsReference promotes the selected color to reference.
func (s *State) UseSelectedAsReference() error {
	if s.Selected == nil {
		return ErrNoSelection
	}
	s.SetReference(*s.Selected)
	return nil
}

// AddSelectedToPalette adds the selected color to the palette, reporting
// false if it was already there.
func (s *State) AddSelectedToPalette() (bool, error) {
	if s.Selected == nil {
		return false, ErrNoSelection
	}
	return s.Palette.Add(*s.Selected), nil
}

// RemovePaletteColor removes the palette color at i and clears the reference
// if it was that color.
func (s *State) RemovePaletteColor(i int) (palette.Color, error) {
	c, e := s.Palette.Remove(i)
	if e != nil {
		return c, e
	}
	if s.Reference != nil && s.Reference.Same(c) {
		s.Reference = nil
	}
	return c, nil
}

// Comparison compares the selected color against the reference. ok is false
// unless both are set.
func (s *State) Comparison() (res compare.Result, ok bool) {
	if s.Reference == nil || s.Selected == nil {
		return res, false
	}
	return compare.Compare(s.Reference.Lab, s.Selected.Lab), true
}

// SaveAnalysis records the current comparison at the front of the history.
func (s *State) SaveAnalysis(name string, now time.Time) (history.Record, error) {
	if s.Reference == nil {
		return history.Record{}, ErrNoReference
	}
	if s.Selected == nil {
		return history.Record{}, ErrNoSelection
	}
	r := history.New(name, *s.Reference, *s.Selected, now)
	s.History.Prepend(r)
	return r, nil
}
