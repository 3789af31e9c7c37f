package prediction

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed dataset_context.csv
var embeddedDataset string

// DefaultDatasetContext returns the reference sample shipped with the binary.
func DefaultDatasetContext() string {
	return strings.TrimSpace(embeddedDataset)
}

// LoadDatasetContext reads the dataset context from path, or returns the
// embedded sample when path is empty. The content is not parsed.
func LoadDatasetContext(path string) (string, error) {
	if path == "" {
		return DefaultDatasetContext(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read dataset context: %w", err)
	}
	ctx := strings.TrimSpace(string(data))
	if ctx == "" {
		return "", fmt.Errorf("dataset context %s is empty", path)
	}
	return ctx, nil
}
