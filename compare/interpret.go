package compare

import "fmt"

// Severity is one of six ordered perceptual difference levels.
type Severity int

const (
	Imperceptible Severity = iota
	JustPerceptible
	Perceptible
	ClearlyPerceptible
	Significant
	VeryDifferent
)

type level struct {
	upper float64 // exclusive
	name  string
	label string
	class string
}

// lower bound of each level is the previous level's upper bound
var levels = [...]level{
	Imperceptible:      {1, "imperceptible", "Imperceptible difference", "badge-imperceptible"},
	JustPerceptible:    {2, "just perceptible", "Just perceptible difference", "badge-slight"},
	Perceptible:        {3.5, "perceptible", "Perceptible difference (trained observer)", "badge-noticeable"},
	ClearlyPerceptible: {5, "clearly perceptible", "Clearly perceptible difference", "badge-clear"},
	Significant:        {10, "significant", "Significant difference", "badge-significant"},
	VeryDifferent:      {0, "very different", "Very different colors", "badge-very-different"},
}

func (s Severity) String() string {
	if s < Imperceptible || s > VeryDifferent {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return levels[s].name
}

// Label is the human readable description of s.
func (s Severity) Label() string {
	if s < Imperceptible || s > VeryDifferent {
		return s.String()
	}
	return levels[s].label
}

// Class is the presentation tag of s.
func (s Severity) Class() string {
	if s < Imperceptible || s > VeryDifferent {
		return ""
	}
	return levels[s].class
}

// Interpretation is the persisted form of a Severity.
type Interpretation struct {
	Label         string `json:"label"`
	SeverityClass string `json:"severityClass"`
}

// SeverityOf buckets a CIE76 distance. Intervals are closed below, open above;
// anything from 10 up is VeryDifferent.
func SeverityOf(deltaE float64) Severity {
	for s := Imperceptible; s < VeryDifferent; s++ {
		if deltaE < levels[s].upper {
			return s
		}
	}
	return VeryDifferent
}

// Interpret returns the label and severity class for a CIE76 distance.
func Interpret(deltaE float64) Interpretation {
	s := SeverityOf(deltaE)
	return Interpretation{Label: s.Label(), SeverityClass: s.Class()}
}

// Severity maps the interpretation back to its level by severity class.
func (i Interpretation) Severity() (Severity, bool) {
	for s := Imperceptible; s <= VeryDifferent; s++ {
		if levels[s].class == i.SeverityClass {
			return s, true
		}
	}
	return 0, false
}
