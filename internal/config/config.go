package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/notelink/notelink/internal/keywords"
)

// DefaultMaxBytes caps how large a note may be before its frontmatter is
// ignored by the keyword source.
const DefaultMaxBytes = 1 << 20

// FileConfig is the on-disk YAML configuration shape for the vault keyword
// source. All fields are optional; nil means "use the default".
type FileConfig struct {
	Include      *string `yaml:"include"`
	Exclude      *string `yaml:"exclude"`
	MaxBytes     *int64  `yaml:"max_bytes"`
	UseFilenames *bool   `yaml:"use_filenames"`
	UseAliases   *bool   `yaml:"use_aliases"`
	WholeWord    *bool   `yaml:"whole_word"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a vault-local config file in the given root. It
// supports .notelink.yml/.yaml and notelink.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range []string{".notelink.yml", ".notelink.yaml", "notelink.yml", "notelink.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no local config")
}

// Vault maps the config onto a keyword source rooted at root, applying
// defaults for unset fields: filenames and aliases both contribute, and
// oversized notes lose only their aliases.
func (fc FileConfig) Vault(root string) keywords.Vault {
	v := keywords.Vault{
		Root:         root,
		IncludeGlobs: splitGlobs(fc.Include),
		ExcludeGlobs: splitGlobs(fc.Exclude),
		MaxBytes:     DefaultMaxBytes,
		UseFilenames: true,
		UseAliases:   true,
	}
	if fc.MaxBytes != nil {
		v.MaxBytes = *fc.MaxBytes
	}
	if fc.UseFilenames != nil {
		v.UseFilenames = *fc.UseFilenames
	}
	if fc.UseAliases != nil {
		v.UseAliases = *fc.UseAliases
	}
	return v
}

// WholeWordDefault reports the configured default for whole-word filtering;
// enabled unless the config says otherwise.
func (fc FileConfig) WholeWordDefault() bool {
	if fc.WholeWord == nil {
		return true
	}
	return *fc.WholeWord
}

// splitGlobs parses a comma-separated glob list.
func splitGlobs(s *string) []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, p := range strings.Split(*s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
