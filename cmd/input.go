package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/scorecast/internal/student"
)

// Per-field flags of predict and oracle prompt.
const (
	flagStudyHours      = "study-hours"
	flagSleepHours      = "sleep-hours"
	flagAttendance      = "attendance"
	flagSocialMedia     = "social-media"
	flagNetflix         = "netflix"
	flagExercise        = "exercise"
	flagDiet            = "diet"
	flagMentalHealth    = "mental-health"
	flagPartTimeJob     = "part-time-job"
	flagExtracurricular = "extracurricular"
	flagInput           = "input"
)

func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64(flagStudyHours, 0, "Study hours per day (0-24)")
	f.Float64(flagSleepHours, 0, "Sleep hours per night (0-24)")
	f.Float64(flagAttendance, 0, "Attendance percentage (0-100)")
	f.Float64(flagSocialMedia, 0, "Social media hours per day (0-24)")
	f.Float64(flagNetflix, 0, "Streaming hours per day (0-24)")
	f.Float64(flagExercise, 0, "Exercise sessions per week (0-7)")
	f.String(flagDiet, "", "Diet quality: Poor, Fair or Good")
	f.Float64(flagMentalHealth, 0, "Mental health rating (1-10)")
	f.String(flagPartTimeJob, "", "Part-time job: Yes or No")
	f.String(flagExtracurricular, "", "Extracurricular participation: Yes or No")
	f.StringP(flagInput, "i", "", "Read the record from a JSON or YAML file (- for stdin)")
}

// candidateFromFlags builds a Candidate from the flags that were set.
// Unset flags stay nil so Normalize reports them as missing.
func candidateFromFlags(cmd *cobra.Command) student.Candidate {
	f := cmd.Flags()
	num := func(name string) *float64 {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetFloat64(name)
		return &v
	}
	str := func(name string) *string {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetString(name)
		return &v
	}
	return student.Candidate{
		StudyHoursPerDay:             num(flagStudyHours),
		SleepHours:                   num(flagSleepHours),
		AttendancePercentage:         num(flagAttendance),
		SocialMediaHours:             num(flagSocialMedia),
		NetflixHours:                 num(flagNetflix),
		ExerciseFrequency:            num(flagExercise),
		DietQuality:                  str(flagDiet),
		MentalHealthRating:           num(flagMentalHealth),
		PartTimeJob:                  str(flagPartTimeJob),
		ExtracurricularParticipation: str(flagExtracurricular),
	}
}

// anyFieldFlagSet reports whether a per-field flag was given.
func anyFieldFlagSet(cmd *cobra.Command) bool {
	for _, name := range []string{
		flagStudyHours, flagSleepHours, flagAttendance, flagSocialMedia, flagNetflix,
		flagExercise, flagDiet, flagMentalHealth, flagPartTimeJob, flagExtracurricular,
	} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// readCandidate resolves the record from --input or the per-field flags.
func readCandidate(cmd *cobra.Command) (student.Candidate, error) {
	path, _ := cmd.Flags().GetString(flagInput)
	if path == "" {
		return candidateFromFlags(cmd), nil
	}
	if anyFieldFlagSet(cmd) {
		return student.Candidate{}, fmt.Errorf("use --%s or the per-field flags, not both", flagInput)
	}

	data, err := readSource(cmd, path)
	if err != nil {
		return student.Candidate{}, err
	}
	var c student.Candidate
	if err := decode(path, data, &c); err != nil {
		return student.Candidate{}, err
	}
	return c, nil
}

// readCandidates loads a batch file: a JSON array or YAML sequence of
// records, or an object with an "inputs" list.
func readCandidates(cmd *cobra.Command, path string) ([]student.Candidate, error) {
	data, err := readSource(cmd, path)
	if err != nil {
		return nil, err
	}

	var list []student.Candidate
	if err := decode(path, data, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Inputs []student.Candidate `json:"inputs" yaml:"inputs"`
	}
	if err := decode(path, data, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Inputs == nil {
		return nil, fmt.Errorf("%s: expected a list of records or an object with an inputs list", path)
	}
	return wrapped.Inputs, nil
}

// decode parses YAML for .yaml/.yml files and JSON otherwise.
func decode(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return nil
}

func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
