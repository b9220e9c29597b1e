package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultModel is the Gemini image generation model used when no
	// override is configured.
	DefaultModel = "gemini-2.5-flash-image-preview"

	// DefaultPrompt is the fixed instruction sent with every photo.
	DefaultPrompt = "Transform this photo into a rainy day in Dhaka, Bangladesh: " +
		"heavy monsoon clouds, wet reflective streets, cycle rickshaws with rain covers, " +
		"and people under colorful umbrellas. Keep the original subjects and composition intact."

	// DefaultMaxUploadBytes caps uploads at 10MB.
	DefaultMaxUploadBytes = 10 * 1024 * 1024

	defaultConfigFile = "rainify.yaml"
)

// Config holds everything the server and CLI need to talk to Gemini.
// The API key comes from the environment only and is never read from YAML.
type Config struct {
	APIKey         string `yaml:"-"`
	Model          string `yaml:"model"`
	Prompt         string `yaml:"prompt"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// Load builds a Config from defaults, an optional YAML file, and the
// environment, in that order of precedence. When path is empty,
// rainify.yaml is used if it exists.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Model:          DefaultModel,
		Prompt:         DefaultPrompt,
		MaxUploadBytes: DefaultMaxUploadBytes,
	}

	optional := false
	if path == "" {
		path = defaultConfigFile
		optional = true
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && optional:
		// No config file is fine, defaults and env cover everything.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")

	if model := os.Getenv("RAINIFY_MODEL"); model != "" {
		cfg.Model = model
	}
	if prompt := os.Getenv("RAINIFY_PROMPT"); prompt != "" {
		cfg.Prompt = prompt
	}
	if raw := os.Getenv("RAINIFY_MAX_UPLOAD_BYTES"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
}
