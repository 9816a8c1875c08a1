package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Models   ModelsConfig   `koanf:"models"`
	Selector SelectorConfig `koanf:"selector"`
	Store    StoreConfig    `koanf:"store"`
}

type ServerConfig struct {
	LogLevel string `koanf:"log_level"`
}

type ModelsConfig struct {
	// Default handles everyday prompts; Advanced is routed to when the
	// selector trips on a trigger keyword.
	Default   string   `koanf:"default"`
	Advanced  string   `koanf:"advanced"`
	MaxTokens int      `koanf:"max_tokens"`
	Betas     []string `koanf:"betas"`
	APIKey    string   `koanf:"api_key"`
}

type SelectorConfig struct {
	Triggers []string `koanf:"triggers"`
}

type StoreConfig struct {
	TranscriptEnabled bool   `koanf:"transcript_enabled"`
	TranscriptPath    string `koanf:"transcript_path"`
}

const (
	DefaultServerLogLevel = "info"
	DefaultModelDefault   = "claude-sonnet-4-5-20250929"
	DefaultModelAdvanced  = "claude-opus-4-5-20251101"
	DefaultModelMaxTokens = 4096
	DefaultBetaFlag       = "advanced-tool-use-2025-11-20"
)

// DefaultSelectorTriggers routes to the advanced model; matching is
// case-insensitive substring containment.
func DefaultSelectorTriggers() []string {
	return []string{"architect", "design", "complex", "analyze all"}
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	// Hardcoded Defaults
	defaults := map[string]interface{}{
		"server.log_level":         DefaultServerLogLevel,
		"models.default":           DefaultModelDefault,
		"models.advanced":          DefaultModelAdvanced,
		"models.max_tokens":        DefaultModelMaxTokens,
		"models.betas":             []string{DefaultBetaFlag},
		"selector.triggers":        DefaultSelectorTriggers(),
		"store.transcript_enabled": true,
		"store.transcript_path":    "",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Config file loading
	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			globalPath := filepath.Join(home, ".kawasemi", "config.yaml")
			if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
				slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
			}
		}
	}

	// Environment Variables
	k.Load(env.Provider("KAWASEMI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "KAWASEMI_")), "_", ".", -1)
	}), nil)

	// CLI Flags
	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	// Post-Process: Inject standard Env Var if missing. Absence is not
	// validated here; a missing key surfaces when the service rejects
	// the call.
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && cfg.Models.APIKey == "" {
		cfg.Models.APIKey = key
	}

	return &cfg, nil
}
