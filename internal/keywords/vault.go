package keywords

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Vault derives a keyword dictionary from a directory of markdown notes:
// each note contributes its file name (without extension) and, optionally,
// the aliases listed in its YAML frontmatter.
type Vault struct {
	Root         string
	IncludeGlobs []string
	ExcludeGlobs []string
	MaxBytes     int64
	UseFilenames bool
	UseAliases   bool
}

// frontmatter is the subset of note metadata the source reads.
type frontmatter struct {
	Aliases []string `yaml:"aliases"`
}

// Collect walks the vault and returns the normalized keyword set. Unreadable
// or oversized notes are skipped rather than failing the walk; only a broken
// traversal itself is an error.
func (v Vault) Collect() ([]string, error) {
	var words []string
	err := filepath.WalkDir(v.Root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if p != v.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(v.Root, p)
		if !strings.EqualFold(filepath.Ext(rel), ".md") {
			return nil
		}
		if !v.allowed(rel) {
			return nil
		}
		if v.UseFilenames {
			base := filepath.Base(rel)
			words = append(words, strings.TrimSuffix(base, filepath.Ext(base)))
		}
		if !v.UseAliases {
			return nil
		}
		if info, infoErr := d.Info(); infoErr == nil && v.MaxBytes > 0 && info.Size() > v.MaxBytes {
			return nil
		}
		b, readErr := os.ReadFile(p)
		if readErr != nil {
			return nil
		}
		words = append(words, aliases(b)...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault %s: %w", v.Root, err)
	}
	return Normalize(words), nil
}

// allowed applies include/exclude globs with forward-slash semantics.
// Include globs, when present, act as a positive filter; excludes are
// subtracted last. Patterns also match against the base name so "*.md"
// style globs behave intuitively at any depth.
func (v Vault) allowed(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	if len(v.IncludeGlobs) > 0 && !matchAny(rp, v.IncludeGlobs) {
		return false
	}
	if matchAny(rp, v.ExcludeGlobs) {
		return false
	}
	return true
}

func matchAny(path string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

// aliases extracts the frontmatter aliases list from a note body. Notes
// without a leading --- block, or whose frontmatter fails to parse, simply
// contribute no aliases.
func aliases(b []byte) []string {
	body := string(b)
	if !strings.HasPrefix(body, "---\n") && !strings.HasPrefix(body, "---\r\n") {
		return nil
	}
	rest := body[strings.Index(body, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil
	}
	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil
	}
	return fm.Aliases
}
