package student

import (
	"fmt"
	"math"
)

// Field names as they appear on the wire.
const (
	FieldStudyHours      = "study_hours_per_day"
	FieldSleepHours      = "sleep_hours"
	FieldAttendance      = "attendance_percentage"
	FieldSocialMedia     = "social_media_hours"
	FieldNetflix         = "netflix_hours"
	FieldExercise        = "exercise_frequency"
	FieldDiet            = "diet_quality"
	FieldMentalHealth    = "mental_health_rating"
	FieldPartTimeJob     = "part_time_job"
	FieldExtracurricular = "extracurricular_participation"
)

// Domain bounds, inclusive on both ends.
const (
	MaxHoursPerDay  = 24.0
	MaxAttendance   = 100.0
	MaxExerciseDays = 7
	MinMentalHealth = 1
	MaxMentalHealth = 10
)

// ValidationError names the first field of a record that is missing,
// malformed or out of its domain.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// Validate checks every field against its domain. Out-of-range values are
// rejected, never clamped. The first failing field, in declaration order,
// is reported.
func (in Input) Validate() error {
	hours := []struct {
		field string
		value float64
		max   float64
	}{
		{FieldStudyHours, in.StudyHoursPerDay, MaxHoursPerDay},
		{FieldSleepHours, in.SleepHours, MaxHoursPerDay},
		{FieldAttendance, in.AttendancePercentage, MaxAttendance},
		{FieldSocialMedia, in.SocialMediaHours, MaxHoursPerDay},
		{FieldNetflix, in.NetflixHours, MaxHoursPerDay},
	}
	for _, h := range hours {
		if err := checkRange(h.field, h.value, 0, h.max); err != nil {
			return err
		}
	}

	if in.ExerciseFrequency < 0 || in.ExerciseFrequency > MaxExerciseDays {
		return &ValidationError{
			Field:  FieldExercise,
			Value:  in.ExerciseFrequency,
			Reason: fmt.Sprintf("must be within [0, %d]", MaxExerciseDays),
		}
	}
	if !in.DietQuality.Valid() {
		return &ValidationError{
			Field:  FieldDiet,
			Value:  string(in.DietQuality),
			Reason: "must be one of Poor, Fair, Good",
		}
	}
	if in.MentalHealthRating < MinMentalHealth || in.MentalHealthRating > MaxMentalHealth {
		return &ValidationError{
			Field:  FieldMentalHealth,
			Value:  in.MentalHealthRating,
			Reason: fmt.Sprintf("must be within [%d, %d]", MinMentalHealth, MaxMentalHealth),
		}
	}
	if !in.PartTimeJob.Valid() {
		return &ValidationError{Field: FieldPartTimeJob, Value: string(in.PartTimeJob), Reason: "must be Yes or No"}
	}
	if !in.ExtracurricularParticipation.Valid() {
		return &ValidationError{
			Field:  FieldExtracurricular,
			Value:  string(in.ExtracurricularParticipation),
			Reason: "must be Yes or No",
		}
	}
	return nil
}

func checkRange(field string, v, lo, hi float64) *ValidationError {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	if v < lo || v > hi {
		return &ValidationError{
			Field:  field,
			Value:  v,
			Reason: fmt.Sprintf("must be within [%g, %g]", lo, hi),
		}
	}
	return nil
}
