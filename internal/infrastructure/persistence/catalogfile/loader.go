// Package catalogfile loads the supplement catalog from a JSON file,
// falling back to the built-in catalog when no path is configured.
// The catalog is loaded once per process and shared by reference.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/vitabox/v1/internal/domain/catalog"
)

var validate = validator.New()

// Load reads and validates the catalog at path. An empty path loads
// the built-in default catalog.
func Load(path string) (*catalog.Catalog, error) {
	entries := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read catalog file: %w", err)
		}
		entries = nil
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("could not parse catalog file: %w", err)
		}
	}

	for _, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("catalog entry %q invalid: %w", e.ID, err)
		}
	}

	return catalog.New(entries)
}
