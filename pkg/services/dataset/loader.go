// Package dataset loads caller-supplied financial datasets from disk and
// prepares them for time-series calculations.
//
// Dataset files are flat key -> number maps. They are parsed with
// encoding/json and yaml.v3 directly because statement identifiers are
// case-sensitive (is.NetRevenue) and config loaders normalize key case.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

// Suffixes of the time-series convention: <name>_t is the current period
// value, <name>_t-1 the prior period value.
const (
	CurrentSuffix = "_t"
	PriorSuffix   = "_t-1"
)

// Load reads a dataset file, picking the decoder from the extension
// (.json, .yaml, .yml).
func Load(path string) (domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var values map[string]float64
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &values); err != nil {
			return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .json, .yaml or .yml)", ext)
	}

	return domain.Dataset(values), nil
}

// MergePeriods flattens two periods of the same dataset into one, keying the
// current period with the _t suffix and the prior period with _t-1. The core
// has no notion of time; this is how callers encode it.
func MergePeriods(current, prior domain.Dataset) domain.Dataset {
	merged := make(domain.Dataset, len(current)+len(prior))
	for key, value := range current {
		merged[key+CurrentSuffix] = value
	}
	for key, value := range prior {
		merged[key+PriorSuffix] = value
	}
	return merged
}
