package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/movekit/movekit/pkg/errors"
)

// GenerateContent renders a starter movekit.toml with every value commented
// out, so dropping the file in place changes nothing until a line is
// uncommented.
func GenerateContent() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}

	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigParse, "failed to marshal config")
	}

	return commentOutValues(string(out)), nil
}

// commentOutValues comments every assignment line, leaving section headers,
// comments, and blank lines untouched
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
