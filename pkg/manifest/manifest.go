// Package manifest edits a generated project's package.json. Rewrites are
// deterministic (alphabetical key order, two-space indent) so regenerated
// projects stay diff-stable.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/logging"
)

// Dependency manifest sections searched when removing an entry
var dependencySections = []string{"dependencies", "devDependencies"}

// Manifest is a loaded package.json
type Manifest struct {
	path string
	data map[string]interface{}
}

// Load reads and parses the package.json at path
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to read manifest %s", path)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse manifest %s", path)
	}

	return &Manifest{path: path, data: data}, nil
}

// HasDependency reports whether name appears in any dependency section
func (m *Manifest) HasDependency(name string) bool {
	for _, section := range dependencySections {
		if deps, ok := m.data[section].(map[string]interface{}); ok {
			if _, found := deps[name]; found {
				return true
			}
		}
	}
	return false
}

// RemoveDependency drops name from every dependency section it appears in
// and reports whether anything was removed
func (m *Manifest) RemoveDependency(name string) bool {
	logger := logging.GetLogger("manifest")

	removed := false
	for _, section := range dependencySections {
		if deps, ok := m.data[section].(map[string]interface{}); ok {
			if _, found := deps[name]; found {
				delete(deps, name)
				removed = true
				logger.Debug().
					Str("dependency", name).
					Str("section", section).
					Msg("Removed manifest dependency")
			}
		}
	}
	return removed
}

// Write rewrites the manifest in place. encoding/json emits map keys in
// sorted order, which gives the stable formatting the contract requires.
func (m *Manifest) Write() error {
	out, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to marshal manifest %s", m.path)
	}
	out = append(out, '\n')

	if err := os.WriteFile(m.path, out, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to write manifest %s", m.path)
	}
	return nil
}
