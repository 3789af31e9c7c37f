package prediction

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDatasetContext(t *testing.T) {
	ctx := DefaultDatasetContext()
	header := strings.SplitN(ctx, "\n", 2)[0]
	for _, col := range []string{"study_hours_per_day", "attendance_percentage", "exam_score"} {
		if !strings.Contains(header, col) {
			t.Errorf("header missing %s: %s", col, header)
		}
	}
	if strings.Count(ctx, "\n") < 10 {
		t.Error("embedded dataset should contain sample rows")
	}
}

func TestLoadDatasetContext(t *testing.T) {
	dir := t.TempDir()

	custom := filepath.Join(dir, "custom.csv")
	if err := os.WriteFile(custom, []byte("\na,b\n1,2\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadDatasetContext(custom)
	if err != nil {
		t.Fatalf("LoadDatasetContext failed: %v", err)
	}
	if got != "a,b\n1,2" {
		t.Errorf("got %q", got)
	}

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDatasetContext(empty); err == nil {
		t.Error("expected error for empty dataset")
	}

	if _, err := LoadDatasetContext(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}

	def, err := LoadDatasetContext("")
	if err != nil || def != DefaultDatasetContext() {
		t.Errorf("empty path should return the embedded dataset")
	}
}
