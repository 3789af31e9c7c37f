package student

// DietQuality is the self-reported diet quality.
type DietQuality string

const (
	DietPoor DietQuality = "Poor"
	DietFair DietQuality = "Fair"
	DietGood DietQuality = "Good"
)

// Valid reports whether d is one of the declared literals (case-sensitive).
func (d DietQuality) Valid() bool {
	return d == DietPoor || d == DietFair || d == DietGood
}

// YesNo is a two-valued answer used by the job and extracurricular fields.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// Valid reports whether v is exactly "Yes" or "No".
func (v YesNo) Valid() bool {
	return v == Yes || v == No
}

// Input is a validated set of behavioral metrics for one student.
// Construct it through Candidate.Normalize or call Validate before use.
type Input struct {
	StudyHoursPerDay             float64     `json:"study_hours_per_day" yaml:"study_hours_per_day"`
	SleepHours                   float64     `json:"sleep_hours" yaml:"sleep_hours"`
	AttendancePercentage         float64     `json:"attendance_percentage" yaml:"attendance_percentage"`
	SocialMediaHours             float64     `json:"social_media_hours" yaml:"social_media_hours"`
	NetflixHours                 float64     `json:"netflix_hours" yaml:"netflix_hours"`
	ExerciseFrequency            int         `json:"exercise_frequency" yaml:"exercise_frequency"` // days per week
	DietQuality                  DietQuality `json:"diet_quality" yaml:"diet_quality"`
	MentalHealthRating           int         `json:"mental_health_rating" yaml:"mental_health_rating"` // 1-10
	PartTimeJob                  YesNo       `json:"part_time_job" yaml:"part_time_job"`
	ExtracurricularParticipation YesNo       `json:"extracurricular_participation" yaml:"extracurricular_participation"`
}

// Default returns the "standard student" profile: average habits drawn from
// the reference dataset.
func Default() Input {
	return Input{
		StudyHoursPerDay:             3,
		SleepHours:                   7,
		AttendancePercentage:         85,
		SocialMediaHours:             2,
		NetflixHours:                 1,
		ExerciseFrequency:            3,
		DietQuality:                  DietFair,
		MentalHealthRating:           7,
		PartTimeJob:                  No,
		ExtracurricularParticipation: No,
	}
}
