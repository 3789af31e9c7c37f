package grading

import (
	"math"
	"testing"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Classification
	}{
		{100, Excellent},
		{90.0, Excellent},
		{89.9, Good},
		{75.0, Good},
		{74.9, Average},
		{60.0, Average},
		{59.9, Weak},
		{0, Weak},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClassify_OutOfRangeScores(t *testing.T) {
	tests := []struct {
		score float64
		want  Classification
	}{
		{150, Excellent},
		{-20, Weak},
		{math.Inf(1), Excellent},
		{math.Inf(-1), Weak},
		{math.NaN(), Weak},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestParseClassification(t *testing.T) {
	for _, c := range AllClassifications() {
		got, err := ParseClassification(string(c))
		if err != nil {
			t.Fatalf("ParseClassification(%q): %v", c, err)
		}
		if got != c {
			t.Errorf("got %q, want %q", got, c)
		}
	}

	for _, bad := range []string{"Great", "excellent", "", " Good"} {
		if _, err := ParseClassification(bad); err == nil {
			t.Errorf("ParseClassification(%q) should fail", bad)
		}
	}
}

func TestRank_DescendingOrder(t *testing.T) {
	all := AllClassifications()
	for i := 1; i < len(all); i++ {
		if all[i-1].Rank() <= all[i].Rank() {
			t.Errorf("%q (rank %d) should outrank %q (rank %d)",
				all[i-1], all[i-1].Rank(), all[i], all[i].Rank())
		}
	}
	if Classification("Great").Rank() != -1 {
		t.Error("unknown classification should rank -1")
	}
}
