package jsoncompare

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Rules is the file representation of a comparison policy, the shape the CLI
// and test fixtures describe policy in. Decoding is strict: unknown fields
// are an error, catching typos in rule names early.
type Rules struct {
	Mode             string                       `yaml:"mode"`
	IgnorePaths      []string                     `yaml:"ignorePaths"`
	IgnoreOrderPaths []string                     `yaml:"ignoreOrderPaths"`
	RenamePaths      map[string]map[string]string `yaml:"renamePaths"`
	IgnoreValues     map[string][]interface{}     `yaml:"ignoreValues"`
	Tolerance        map[string]string            `yaml:"tolerance"`
	UniqueKeys       []string                     `yaml:"uniqueKeys"`
	StringJSONPaths  []string                     `yaml:"stringJsonPaths"`
	MaxQuadraticLen  int                          `yaml:"maxQuadraticLen"`
}

// LoadRules reads and decodes a YAML rules file
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	rules, err := ParseRules(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes a YAML rules document from r
func ParseRules(r io.Reader) (*Rules, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	rules := &Rules{}
	if err := dec.Decode(rules); err != nil {
		if err == io.EOF {
			return rules, nil
		}
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return rules, nil
}

// Options translates the file representation into comparator Options.
// Duration bounds use Go syntax ("500ms", "2s").
func (r *Rules) Options() ([]Option, error) {
	var opts []Option
	if len(r.IgnorePaths) > 0 {
		opts = append(opts, OptionIgnorePaths(r.IgnorePaths...))
	}
	if len(r.IgnoreOrderPaths) > 0 {
		opts = append(opts, OptionIgnoreOrderPaths(r.IgnoreOrderPaths...))
	}
	for parent, renames := range r.RenamePaths {
		for from, to := range renames {
			opts = append(opts, OptionRenameKey(parent, from, to))
		}
	}
	for path, values := range r.IgnoreValues {
		opts = append(opts, OptionIgnoreValues(path, values...))
	}
	for path, bound := range r.Tolerance {
		d, err := time.ParseDuration(bound)
		if err != nil {
			return nil, fmt.Errorf("tolerance for %s: %w", path, err)
		}
		opts = append(opts, OptionTolerance(path, d))
	}
	if len(r.UniqueKeys) > 0 {
		opts = append(opts, OptionUniqueKeys(r.UniqueKeys...))
	}
	if len(r.StringJSONPaths) > 0 {
		opts = append(opts, OptionStringJSONPaths(r.StringJSONPaths...))
	}
	if r.MaxQuadraticLen != 0 {
		opts = append(opts, OptionMaxQuadraticLen(r.MaxQuadraticLen))
	}
	return opts, nil
}

// Comparator builds a ready comparator from the rules. fallbackMode applies
// when the file doesn't name a mode.
func (r *Rules) Comparator(fallbackMode Mode, extra ...Option) (*Comparator, error) {
	mode := fallbackMode
	if r.Mode != "" {
		parsed, err := ParseMode(r.Mode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}
	opts, err := r.Options()
	if err != nil {
		return nil, err
	}
	return New(mode, append(opts, extra...)...)
}
