package compare

import "github.com/mmuldo/colorlab/colorspace"

// Result is a comparison between a reference and a sampled color. It is never
// cached; callers recompute it from the two colors in play.
type Result struct {
	DeltaE         float64
	DeltaE2000     float64
	Severity       Severity
	Interpretation Interpretation
}

// Compare computes the difference of sample against reference.
func Compare(reference, sample colorspace.Lab) Result {
	d := DeltaE(sample, reference)
	s := SeverityOf(d)
	return Result{
		DeltaE:         d,
		DeltaE2000:     DeltaE2000(reference, sample),
		Severity:       s,
		Interpretation: Interpretation{Label: s.Label(), SeverityClass: s.Class()},
	}
}
