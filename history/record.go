// Package history models saved color analyses.
package history

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mmuldo/colorlab/compare"
	"github.com/mmuldo/colorlab/palette"
)

// ErrIndex is returned for history positions that do not exist.
var ErrIndex = errors.New("history index out of range")

// Formatted is a display snapshot of one color taken when the record was
// saved.
type Formatted struct {
	RGB string `json:"rgb"`
	Lab string `json:"lab"`
}

// Record is one saved comparison of a sampled color against a reference.
type Record struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name,omitempty"`
	Reference      palette.Color           `json:"referenceColor"`
	Sampled        palette.Color           `json:"sampledColor"`
	DeltaE         float64                 `json:"deltaE"`
	Interpretation *compare.Interpretation `json:"interpretation,omitempty"`
	Timestamp      time.Time               `json:"timestamp"`
	Formatted      *Snapshot               `json:"formatted,omitempty"`
}

// Snapshot holds the formatted values of both colors of a record.
type Snapshot struct {
	Reference Formatted `json:"reference"`
	Sampled   Formatted `json:"sampled"`
}

// New builds a record from a reference and a sampled color. The distance and
// interpretation come from compare so they match what was displayed.
func New(name string, ref, sel palette.Color, now time.Time) Record {
	res := compare.Compare(ref.Lab, sel.Lab)
	r := Record{
		ID:             uuid.NewString(),
		Name:           name,
		Reference:      ref,
		Sampled:        sel,
		DeltaE:         res.DeltaE,
		Interpretation: &res.Interpretation,
		Timestamp:      now.UTC(),
	}
	r.Formatted = &Snapshot{
		Reference: Formatted{RGB: ref.RGBString(), Lab: ref.LabString()},
		Sampled:   Formatted{RGB: sel.RGBString(), Lab: sel.LabString()},
	}
	return r
}

// Interpret returns the stored interpretation, or derives one from DeltaE for
// records saved without it.
func (r Record) Interpret() compare.Interpretation {
	if r.Interpretation != nil {
		return *r.Interpretation
	}
	return compare.Interpret(r.DeltaE)
}

// History is a list of records, newest first.
type History []Record

// Prepend puts r at the front.
func (h *History) Prepend(r Record) {
	*h = append(History{r}, *h...)
}

// Remove deletes and returns the record at i.
func (h *History) Remove(i int) (Record, error) {
	if i < 0 || i >= len(*h) {
		return Record{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(*h))
	}
	r := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return r, nil
}

type byNewest History

func (h byNewest) Len() int           { return len(h) }
func (h byNewest) Less(i, j int) bool { return h[i].Timestamp.After(h[j].Timestamp) }
func (h byNewest) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Sort orders h newest first, keeping the relative order of equal timestamps.
func (h History) Sort() {
	sort.Stable(byNewest(h))
}
