// Package config loads notelink's vault-source configuration from local YAML
// files. It only shapes how the keyword dictionary is derived; the matcher
// itself takes no configuration beyond the per-call whole-word flag.
package config
