package grading

import "fmt"

// Classification is a performance band derived from a predicted exam score.
type Classification string

const (
	Excellent Classification = "Excellent"
	Good      Classification = "Good"
	Average   Classification = "Average"
	Weak      Classification = "Weak"
)

// Lower bounds (inclusive) of each band. Anything below AverageThreshold is Weak.
const (
	ExcellentThreshold = 90.0
	GoodThreshold      = 75.0
	AverageThreshold   = 60.0
)

// AllClassifications returns the bands in descending order of score.
func AllClassifications() []Classification {
	return []Classification{Excellent, Good, Average, Weak}
}

// Classify maps a score to its band. It is defined for every float64:
// scores outside [0, 100] use the same thresholds, and NaN falls through to Weak.
func Classify(score float64) Classification {
	switch {
	case score >= ExcellentThreshold:
		return Excellent
	case score >= GoodThreshold:
		return Good
	case score >= AverageThreshold:
		return Average
	default:
		return Weak
	}
}

// Valid reports whether c is one of the four known bands.
func (c Classification) Valid() bool {
	switch c {
	case Excellent, Good, Average, Weak:
		return true
	}
	return false
}

// Rank orders bands from 0 (Weak) to 3 (Excellent). Unknown values rank -1.
func (c Classification) Rank() int {
	switch c {
	case Excellent:
		return 3
	case Good:
		return 2
	case Average:
		return 1
	case Weak:
		return 0
	}
	return -1
}

// ParseClassification matches s exactly (case-sensitive) against the known bands.
func ParseClassification(s string) (Classification, error) {
	c := Classification(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown classification %q", s)
	}
	return c, nil
}
