package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes one configured remote log location mapped to a
// local storage folder.
type Source struct {
	Name        string `yaml:"name"`
	DownloadURL string `yaml:"download_url"`
	FileListURL string `yaml:"file_list_url"`
	AuthKey     string `yaml:"auth_key,omitempty"`
	FolderPath  string `yaml:"folder_path"`
}

// Config represents a sources.yaml configuration file.
type Config struct {
	Sources []Source `yaml:"sources"`
}

// Load reads and validates a sources configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config %s: %v", path, errs[0])
	}

	for i := range cfg.Sources {
		cfg.Sources[i].applyDefaults()
	}

	return &cfg, nil
}

// Validate checks the configuration for structural correctness.
func (c *Config) Validate() []error {
	var errs []error

	if len(c.Sources) == 0 {
		errs = append(errs, fmt.Errorf("config must define at least one source"))
	}

	seen := make(map[string]bool)
	for i, s := range c.Sources {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("source %d: name is required", i))
			continue
		}
		if seen[s.Name] {
			errs = append(errs, fmt.Errorf("source %q: duplicate name", s.Name))
		}
		seen[s.Name] = true

		if s.DownloadURL == "" {
			errs = append(errs, fmt.Errorf("source %q: download_url is required", s.Name))
		}
		if s.FileListURL == "" {
			errs = append(errs, fmt.Errorf("source %q: file_list_url is required", s.Name))
		}
	}

	return errs
}

// FindSource returns the named source, or nil when it is not configured.
func (c *Config) FindSource(name string) *Source {
	for i := range c.Sources {
		if c.Sources[i].Name == name {
			return &c.Sources[i]
		}
	}
	return nil
}

// applyDefaults fills a source's folder path when the config omits it:
// each source gets its own folder named after it, so files downloaded
// for one source never mix into another's table.
func (s *Source) applyDefaults() {
	if s.FolderPath == "" {
		s.FolderPath = filepath.Join("all_logs", s.Name)
	}
}
