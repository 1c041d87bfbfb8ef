package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration loaded from YAML. API keys are
// not configured here; they come from the environment.
type Config struct {
	Recording     Recording     `yaml:"recording"`
	Transcription Transcription `yaml:"transcription"`
	Summary       Summary       `yaml:"summary"`
	History       History       `yaml:"history"`
}

type Recording struct {
	OutputDir string `yaml:"output_dir"`
}

type Transcription struct {
	OutputDir string `yaml:"output_dir"`
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	Timeout   int    `yaml:"timeout"` // seconds
}

type Summary struct {
	OutputDir   string  `yaml:"output_dir"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

type History struct {
	Path string `yaml:"path"`
}

// defaultSearchPaths are tried in order when no --config flag is given.
func defaultSearchPaths() []string {
	paths := []string{"config.yml", "config.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "meetcap", "config.yml"))
	}
	return paths
}

// Load reads the configuration from path, or from the default locations when
// path is empty, and validates that the required sections are present.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, p := range defaultSearchPaths() {
			if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
				path = p
				break
			}
		}
		if path == "" {
			return nil, fmt.Errorf("no configuration file found. Create config.yml or specify a path with --config")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Required sections are checked on the raw document so that an empty
	// section is accepted but a missing one is not.
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	for _, section := range []string{"recording", "transcription", "summary"} {
		if _, ok := raw[section]; !ok {
			return nil, fmt.Errorf("missing required section: %s", section)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = "whisper"
	}
	if c.Transcription.Timeout == 0 {
		c.Transcription.Timeout = 300
	}
	if c.History.Path == "" {
		c.History.Path = "meetcap.db"
	}
}

// TranscriptionTimeout returns the transcription timeout as a duration.
func (c *Config) TranscriptionTimeout() time.Duration {
	return time.Duration(c.Transcription.Timeout) * time.Second
}

// OutputPath returns the full output path for a file in the given section
// ("recording", "transcription" or "summary"), creating the output directory
// as needed. With useDateSubdir the file goes into a YYYY-MM subdirectory
// derived from the filename, which must start with a YYYY-MM-DD date.
func (c *Config) OutputPath(section, filename string, useDateSubdir bool) (string, error) {
	var outputDir string
	switch section {
	case "recording":
		outputDir = c.Recording.OutputDir
	case "transcription":
		outputDir = c.Transcription.OutputDir
	case "summary":
		outputDir = c.Summary.OutputDir
	default:
		return "", fmt.Errorf("invalid section: %s", section)
	}
	if outputDir == "" {
		return "", fmt.Errorf("output_dir not configured for %s", section)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	if useDateSubdir {
		datePrefix := filename
		if len(datePrefix) > 7 {
			datePrefix = datePrefix[:7]
		}
		if len(strings.Split(datePrefix, "-")) != 2 {
			return "", fmt.Errorf("invalid filename format for date subdirectory: %s", filename)
		}
		subdir := filepath.Join(outputDir, datePrefix)
		if err := os.MkdirAll(subdir, 0o755); err != nil {
			return "", fmt.Errorf("creating date subdirectory: %w", err)
		}
		return filepath.Join(subdir, filename), nil
	}
	return filepath.Join(outputDir, filename), nil
}
