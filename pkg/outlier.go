package zsplit

import (
	"slices"

	"github.com/jgbaldwinbrown/iterh"
	"gonum.org/v1/gonum/stat/distuv"
)

// BiggestOutlier returns the bar with the largest z-score in field. The
// second return is false for an empty input.
func BiggestOutlier(zbars []ZBar, field Field) (ZBar, bool) {
	var best ZBar
	started := false
	for _, z := range zbars {
		if !started || field.Z(best) < field.Z(z) {
			best = z
			started = true
		}
	}
	return best, started
}

// MaxZ expects a non-empty zbars.
func MaxZ(zbars []ZBar, field Field) float64 {
	return iterh.Max(slices.Values(field.ZValues(zbars)))
}

// AboveThreshold keeps the bars whose z-score in field exceeds thresholdZ.
// These are the points drawn in the upper gradient color.
func AboveThreshold(zbars []ZBar, field Field, thresholdZ float64) []ZBar {
	var out []ZBar
	for _, z := range zbars {
		if field.Z(z) > thresholdZ {
			out = append(out, z)
		}
	}
	return out
}

// ObservedTail is the fraction of bars above thresholdZ in field.
func ObservedTail(zbars []ZBar, field Field, thresholdZ float64) float64 {
	if len(zbars) == 0 {
		return 0
	}
	return float64(len(AboveThreshold(zbars, field, thresholdZ))) / float64(len(zbars))
}

// ExpectedTail is the probability mass of a standard normal above thresholdZ.
func ExpectedTail(thresholdZ float64) float64 {
	return distuv.UnitNormal.Survival(thresholdZ)
}
