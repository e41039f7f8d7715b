// Package codegen drives the plugin from a codegen YAML configuration.
package codegen

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/vvakame/apollowrap/plugin"
)

// Config is the decoded codegen configuration file.
type Config struct {
	Schema    StringList         `yaml:"schema,omitempty"`
	Documents StringList         `yaml:"documents,omitempty"`
	Generates map[string]*Target `yaml:"generates"`

	// BaseDir is the directory of the configuration file. Relative paths resolve against it.
	BaseDir string `yaml:"-"`
}

// Target is one generated output file.
type Target struct {
	Plugins []*PluginRef           `yaml:"plugins"`
	Config  map[string]interface{} `yaml:"config,omitempty"`
}

// PluginRef is a plugins entry, either a bare name or a single-key map holding inline config.
type PluginRef struct {
	Name   string
	Config map[string]interface{}
}

// StringList accepts a single string or a sequence of strings.
type StringList []string

var _ yaml.InterfaceUnmarshaler = (*StringList)(nil)
var _ yaml.InterfaceUnmarshaler = (*PluginRef)(nil)

func (l *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*l = nil
	case string:
		*l = StringList{v}
	case []interface{}:
		list := make(StringList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("string expected, got %T", item)
			}
			list = append(list, s)
		}
		*l = list
	default:
		return fmt.Errorf("string or list of strings expected, got %T", v)
	}

	return nil
}

func (p *PluginRef) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case string:
		p.Name = v
		return nil
	case map[string]interface{}:
		if len(v) != 1 {
			return fmt.Errorf("plugin entry must have exactly one key, got %d", len(v))
		}
		for name, cfg := range v {
			p.Name = name
			switch cfg := cfg.(type) {
			case nil:
			case map[string]interface{}:
				p.Config = cfg
			default:
				return fmt.Errorf("plugin %s: config must be a mapping, got %T", name, cfg)
			}
		}
		return nil
	default:
		return fmt.Errorf("plugin entry must be a string or a mapping, got %T", v)
	}
}

// LoadConfig reads and decodes the configuration file at path.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)

	return cfg, nil
}

// ParseConfig decodes a configuration file body.
func ParseConfig(b []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Generates) == 0 {
		return nil, errors.New("generates must have at least one target")
	}
	for path, target := range cfg.Generates {
		if target == nil || len(target.Plugins) == 0 {
			return nil, fmt.Errorf("%s: plugins must have at least one entry", path)
		}
		for _, ref := range target.Plugins {
			if ref == nil || ref.Name == "" {
				return nil, fmt.Errorf("%s: plugin name must not be empty", path)
			}
		}
	}

	return cfg, nil
}

// TargetPaths returns the output paths in sorted order.
func (cfg *Config) TargetPaths() []string {
	paths := make([]string, 0, len(cfg.Generates))
	for path := range cfg.Generates {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths
}

// Resolve joins a path from the configuration with BaseDir unless it is absolute.
func (cfg *Config) Resolve(path string) string {
	if filepath.IsAbs(path) || cfg.BaseDir == "" {
		return path
	}
	return filepath.Join(cfg.BaseDir, path)
}

// Entries returns the plugin tags of the target in configuration order.
func (t *Target) Entries() []*plugin.Entry {
	entries := make([]*plugin.Entry, 0, len(t.Plugins))
	for _, ref := range t.Plugins {
		entries = append(entries, &plugin.Entry{Kind: plugin.Kind(ref.Name)})
	}
	return entries
}

// Lookup returns the first plugin entry with name.
func (t *Target) Lookup(name string) (*PluginRef, bool) {
	for _, ref := range t.Plugins {
		if ref.Name == name {
			return ref, true
		}
	}
	return nil, false
}

// PluginConfig decodes the config for the wrapper plugin.
// Inline plugin keys override the target config.
func (t *Target) PluginConfig() (*plugin.Config, error) {
	merged := make(map[string]interface{}, len(t.Config))
	for k, v := range t.Config {
		merged[k] = v
	}
	if ref, ok := t.Lookup(plugin.Name); ok {
		for k, v := range ref.Config {
			merged[k] = v
		}
	}

	b, err := yaml.Marshal(merged)
	if err != nil {
		return nil, err
	}
	cfg := &plugin.Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s config: %w", plugin.Name, err)
	}

	return cfg, nil
}
