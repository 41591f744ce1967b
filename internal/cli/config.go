package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config carries file-based defaults for the eval command. Flags that were
// explicitly set on the command line win over config values. The API token
// has no config key on purpose; it comes from --github-token or GITHUB_TOKEN.
type Config struct {
	// Filters is the filter definition file path.
	Filters string `yaml:"filters"`
	// Source is the changed-file source name.
	Source string `yaml:"source"`
	// Quantifier is the aggregation mode ("any" or "all").
	Quantifier string `yaml:"quantifier"`
	// Repo is the "owner/name" slug for the github-pr source.
	Repo string `yaml:"repo"`
	// PullNumber is the pull request number for the github-pr source.
	PullNumber int `yaml:"pull_number"`
	// Base is the base revision for the git-diff source.
	Base string `yaml:"base"`
	// Output is the CI output file path.
	Output string `yaml:"output"`
	// ListFiles also emits per-filter matched file lists.
	ListFiles bool `yaml:"list_files"`
	// Report is the JSON evaluation report path.
	Report string `yaml:"report"`
	// Select limits emitted filters to names matching these globs.
	Select []string `yaml:"select"`
	// SelectExclude drops filters with names matching these globs.
	SelectExclude []string `yaml:"select_exclude"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
