package student

import "math"

// Candidate is an untrusted input record as received from a form, a file or
// an HTTP body. Pointer fields distinguish "absent" from zero. Integer fields
// are decoded as floats so a fractional value is reported against its field
// instead of failing the whole decode.
type Candidate struct {
	StudyHoursPerDay             *float64 `json:"study_hours_per_day" yaml:"study_hours_per_day"`
	SleepHours                   *float64 `json:"sleep_hours" yaml:"sleep_hours"`
	AttendancePercentage         *float64 `json:"attendance_percentage" yaml:"attendance_percentage"`
	SocialMediaHours             *float64 `json:"social_media_hours" yaml:"social_media_hours"`
	NetflixHours                 *float64 `json:"netflix_hours" yaml:"netflix_hours"`
	ExerciseFrequency            *float64 `json:"exercise_frequency" yaml:"exercise_frequency"`
	DietQuality                  *string  `json:"diet_quality" yaml:"diet_quality"`
	MentalHealthRating           *float64 `json:"mental_health_rating" yaml:"mental_health_rating"`
	PartTimeJob                  *string  `json:"part_time_job" yaml:"part_time_job"`
	ExtracurricularParticipation *string  `json:"extracurricular_participation" yaml:"extracurricular_participation"`
}

// CandidateFrom converts an Input back into a fully populated Candidate.
func CandidateFrom(in Input) Candidate {
	exercise := float64(in.ExerciseFrequency)
	mental := float64(in.MentalHealthRating)
	diet := string(in.DietQuality)
	job := string(in.PartTimeJob)
	extra := string(in.ExtracurricularParticipation)
	return Candidate{
		StudyHoursPerDay:             &in.StudyHoursPerDay,
		SleepHours:                   &in.SleepHours,
		AttendancePercentage:         &in.AttendancePercentage,
		SocialMediaHours:             &in.SocialMediaHours,
		NetflixHours:                 &in.NetflixHours,
		ExerciseFrequency:            &exercise,
		DietQuality:                  &diet,
		MentalHealthRating:           &mental,
		PartTimeJob:                  &job,
		ExtracurricularParticipation: &extra,
	}
}

// Normalize checks that every field is present and well-typed, builds an
// Input and validates it. It is pure.
func (c Candidate) Normalize() (Input, error) {
	present := []struct {
		field string
		ok    bool
	}{
		{FieldStudyHours, c.StudyHoursPerDay != nil},
		{FieldSleepHours, c.SleepHours != nil},
		{FieldAttendance, c.AttendancePercentage != nil},
		{FieldSocialMedia, c.SocialMediaHours != nil},
		{FieldNetflix, c.NetflixHours != nil},
		{FieldExercise, c.ExerciseFrequency != nil},
		{FieldDiet, c.DietQuality != nil},
		{FieldMentalHealth, c.MentalHealthRating != nil},
		{FieldPartTimeJob, c.PartTimeJob != nil},
		{FieldExtracurricular, c.ExtracurricularParticipation != nil},
	}
	for _, p := range present {
		if !p.ok {
			return Input{}, &ValidationError{Field: p.field, Reason: "is required"}
		}
	}

	exercise, err := wholeNumber(FieldExercise, *c.ExerciseFrequency)
	if err != nil {
		return Input{}, err
	}
	mental, err := wholeNumber(FieldMentalHealth, *c.MentalHealthRating)
	if err != nil {
		return Input{}, err
	}

	in := Input{
		StudyHoursPerDay:             *c.StudyHoursPerDay,
		SleepHours:                   *c.SleepHours,
		AttendancePercentage:         *c.AttendancePercentage,
		SocialMediaHours:             *c.SocialMediaHours,
		NetflixHours:                 *c.NetflixHours,
		ExerciseFrequency:            exercise,
		DietQuality:                  DietQuality(*c.DietQuality),
		MentalHealthRating:           mental,
		PartTimeJob:                  YesNo(*c.PartTimeJob),
		ExtracurricularParticipation: YesNo(*c.ExtracurricularParticipation),
	}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// wholeNumber rejects NaN, infinities and fractional values. Range checks are
// left to Validate so the error message carries the domain.
func wholeNumber(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	if v != math.Trunc(v) {
		return 0, &ValidationError{Field: field, Value: v, Reason: "must be a whole number"}
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &ValidationError{Field: field, Value: v, Reason: "is out of range"}
	}
	return int(v), nil
}
