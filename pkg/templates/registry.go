// Package templates maintains the catalog of scaffoldable project templates.
// The catalog ships embedded in the binary; the template file trees live on
// disk under the configured templates root.
package templates

import (
	_ "embed"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/logging"
)

// Template identifiers. These are the stable dispatch keys used by the
// variant resolver and the environment synthesizer.
const (
	Boilerplate  = "boilerplate-template"
	NFTMinting   = "nft-minting-dapp-template"
	TokenMinting = "token-minting-dapp-template"
	ClickerGame  = "clicker-game-tg-mini-app-template"
)

// DocFile is the markdown document bundled at the root of every template dir
const DocFile = "README.md"

// Template describes one scaffoldable project skeleton
type Template struct {
	ID              string `yaml:"id"`
	DisplayName     string `yaml:"display_name"`
	Dir             string `yaml:"dir"`
	DocURL          string `yaml:"doc_url"`
	VideoURL        string `yaml:"video_url,omitempty"`
	SigningVariants bool   `yaml:"signing_variants,omitempty"`
}

// Path returns the template's absolute directory under the given root
func (t Template) Path(root string) string {
	return filepath.Join(root, t.Dir)
}

// DocPath returns the template's bundled markdown doc under the given root
func (t Template) DocPath(root string) string {
	return filepath.Join(root, t.Dir, DocFile)
}

type catalog struct {
	Templates []Template `yaml:"templates"`
}

//go:embed templates.yaml
var embeddedCatalog []byte

// Registry resolves template identifiers to descriptors
type Registry struct {
	templates []Template
	byID      map[string]Template
}

// NewRegistry loads the embedded catalog. If the templates root carries its
// own templates.yaml, that file replaces the embedded one.
func NewRegistry(root string) (*Registry, error) {
	logger := logging.GetLogger("templates")

	data := embeddedCatalog
	if root != "" {
		override := filepath.Join(root, "templates.yaml")
		if b, err := os.ReadFile(override); err == nil {
			logger.Debug().Str("path", override).Msg("Using on-disk template catalog")
			data = b
		}
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse template catalog")
	}

	byID := make(map[string]Template, len(c.Templates))
	for _, t := range c.Templates {
		byID[t.ID] = t
	}

	logger.Debug().Int("count", len(c.Templates)).Msg("Template catalog loaded")

	return &Registry{templates: c.Templates, byID: byID}, nil
}

// All returns every template in catalog order
func (r *Registry) All() []Template {
	return r.templates
}

// Get resolves a template identifier. An unknown identifier is a fatal input
// error, never a silently-skipped step.
func (r *Registry) Get(id string) (Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return Template{}, errors.Newf(errors.ErrTemplateNotFound,
			"unknown template %q", id).WithDetail("template", id)
	}
	return t, nil
}
