// Package compare measures the difference between two Lab colors and buckets
// it into perceptual severity levels.
package compare

import (
	"math"

	"github.com/jkl1337/go-chromath/deltae"
	"github.com/mmuldo/colorlab/colorspace"
)

var klch = &deltae.KLChDefault

// DeltaE returns the CIE76 color difference, the Euclidean distance between
// lab1 and lab2.
func DeltaE(lab1, lab2 colorspace.Lab) float64 {
	dl := lab1.L - lab2.L
	da := lab1.A - lab2.A
	db := lab1.B - lab2.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE2000 returns the CIEDE2000 difference of sample against std. It is
// informational only; Interpret always takes a CIE76 value.
func DeltaE2000(std, sample colorspace.Lab) float64 {
	return deltae.CIE2000(std.ToChromath(), sample.ToChromath(), klch)
}
