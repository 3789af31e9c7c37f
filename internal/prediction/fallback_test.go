package prediction

import (
	"context"
	"testing"

	"github.com/abhisek/scorecast/internal/grading"
	"github.com/abhisek/scorecast/internal/student"
)

func scenarioTwo() student.Input {
	in := student.Default()
	in.AttendancePercentage = 100
	in.StudyHoursPerDay = 8
	return in
}

func TestEstimate_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		in    student.Input
		score float64
		class grading.Classification
	}{
		{"standard student", student.Default(), 59.0, grading.Weak},
		{"full attendance, long study", scenarioTwo(), 90.0, grading.Excellent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.in); got != tt.score {
				t.Fatalf("Estimate = %v, want %v", got, tt.score)
			}
			res, err := NewFallbackPredictor(DefaultWeights()).Predict(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("fallback returned error: %v", err)
			}
			if res.Classification != tt.class {
				t.Fatalf("classification = %s, want %s", res.Classification, tt.class)
			}
			if res.Source != SourceFallback || res.Insights != FallbackInsight {
				t.Fatalf("unexpected provenance: %+v", res)
			}
		})
	}
}

func TestEstimate_Clamps(t *testing.T) {
	low := student.Default()
	low.AttendancePercentage = 0
	low.StudyHoursPerDay = 0
	low.SleepHours = 0
	low.SocialMediaHours = 24
	if got := Estimate(low); got != 0.0 {
		t.Fatalf("negative raw should clamp to 0, got %v", got)
	}

	high := student.Default()
	high.AttendancePercentage = 100
	high.StudyHoursPerDay = 24
	high.SleepHours = 24
	high.SocialMediaHours = 0
	if got := Estimate(high); got != 100.0 {
		t.Fatalf("raw above 100 should clamp to 100, got %v", got)
	}
}

// Halves round away from zero: raw 0.25 becomes 0.3, not 0.2.
func TestEstimate_RoundsHalfAwayFromZero(t *testing.T) {
	in := student.Input{
		SleepHours:                   0.125,
		DietQuality:                  student.DietFair,
		MentalHealthRating:           5,
		PartTimeJob:                  student.No,
		ExtracurricularParticipation: student.No,
	}
	if raw := DefaultWeights().Raw(in); raw != 0.25 {
		t.Fatalf("raw = %v, want 0.25", raw)
	}
	if got := Estimate(in); got != 0.3 {
		t.Fatalf("Estimate = %v, want 0.3", got)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	in := student.Default()
	in.StudyHoursPerDay = 4.37
	first := Estimate(in)
	for range 100 {
		if got := Estimate(in); got != first {
			t.Fatalf("Estimate not deterministic: %v then %v", first, got)
		}
	}
}

// The estimator only looks at attendance, study, sleep and social media.
// The other six fields are an accepted limitation and must not move the score.
func TestEstimate_IgnoresLifestyleFields(t *testing.T) {
	base := student.Default()
	want := Estimate(base)

	varied := base
	varied.NetflixHours = 12
	varied.ExerciseFrequency = 7
	varied.DietQuality = student.DietPoor
	varied.MentalHealthRating = 1
	varied.PartTimeJob = student.Yes
	varied.ExtracurricularParticipation = student.Yes

	if got := Estimate(varied); got != want {
		t.Fatalf("ignored fields changed the score: %v != %v", got, want)
	}
}

func TestFallback_ClassificationMatchesScore(t *testing.T) {
	f := NewFallbackPredictor(DefaultWeights())
	for attendance := 0.0; attendance <= 100; attendance += 12.5 {
		for study := 0.0; study <= 12; study += 1.5 {
			for social := 0.0; social <= 10; social += 2.5 {
				in := student.Default()
				in.AttendancePercentage = attendance
				in.StudyHoursPerDay = study
				in.SocialMediaHours = social

				res, _ := f.Predict(context.Background(), in)
				if want := grading.Classify(Estimate(in)); res.Classification != want {
					t.Fatalf("input %+v: classification %s, want %s", in, res.Classification, want)
				}
			}
		}
	}
}

func TestWeights_Custom(t *testing.T) {
	w := Weights{Attendance: 1}
	in := student.Default()
	if got := w.Estimate(in); got != 85 {
		t.Fatalf("attendance-only weights: got %v, want 85", got)
	}
}
