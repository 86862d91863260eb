package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

// LoadFromFile reads career profiles from a JSON file and validates them.
func LoadFromFile(path string) ([]domain.CareerProfile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var careers []domain.CareerProfile
	if err := json.Unmarshal(b, &careers); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := Validate(careers); err != nil {
		return nil, err
	}
	return careers, nil
}
