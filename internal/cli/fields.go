package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dpshade/draftsmith/internal/errors"
)

// collectFieldValues merges --fields-file content with --field overrides.
// Flag values win over file values so a user can patch a saved answer set
// without editing it.
func collectFieldValues(fieldsFile string, fieldFlags []string) (map[string]string, error) {
	values := make(map[string]string)

	if fieldsFile != "" {
		data, err := os.ReadFile(fieldsFile)
		if err != nil {
			return nil, errors.InvalidInputError(fmt.Sprintf("cannot read fields file: %v", err))
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.InvalidInputError(fmt.Sprintf("fields file is not a flat key: value mapping: %v", err))
		}
	}

	for _, pair := range fieldFlags {
		key, value, err := splitFieldPair(pair)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}

func splitFieldPair(pair string) (string, string, error) {
	idx := strings.Index(pair, "=")
	if idx <= 0 {
		return "", "", errors.InvalidInputError(fmt.Sprintf("field %q is not in key=value form", pair))
	}
	return strings.TrimSpace(pair[:idx]), pair[idx+1:], nil
}
