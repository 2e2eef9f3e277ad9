package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kochan17/taskdash/internal/domain"
)

// Repo identifies one GitHub repository to pull issues from.
type Repo struct {
	Owner string `yaml:"owner"`
	Name  string `yaml:"name"`
	// Project is the display name used in the task table. Defaults to the
	// repository name when empty.
	Project string `yaml:"project"`
}

// Config represents the application configuration
type Config struct {
	DBPath      string `yaml:"db_path"`
	LogLevel    string `yaml:"log_level"`
	Output      string `yaml:"output"`
	GitHubToken string `yaml:"-"` // secret, env/dotenv only
	GraphQLURL  string `yaml:"graphql_url"`
	BoardOwner  string `yaml:"board_owner"` // GitHub user whose Projects V2 boards are synced ("" = skip)
	Repos       []Repo `yaml:"repos"`
}

// Load loads configuration from multiple sources with precedence:
// 1. Environment variables
// 2. ./.env.local (dotenv) - walks up parent directories to find it
// 3. ~/.config/taskdash/config.yaml (YAML)
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:   "info",
		Output:     "table",
		GraphQLURL: "https://api.github.com/graphql",
	}

	// Load .env.local if it exists (walking up parent directories)
	if envPath := findEnvLocal(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	// Load ~/.config/taskdash/config.yaml if it exists
	if err := loadYAMLConfig(cfg); err != nil {
		// YAML config is optional, so we don't fail if it doesn't exist
	}

	// Override with environment variables
	if dbPath := getEnvOrFile("TASKDASH_DB_PATH", "TASKDASH_DB_PATH_FILE"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if token := getEnvOrFile("GITHUB_TOKEN", "GITHUB_TOKEN_FILE"); token != "" {
		cfg.GitHubToken = strings.TrimSpace(token)
	}
	if url := os.Getenv("TASKDASH_GRAPHQL_URL"); url != "" {
		cfg.GraphQLURL = url
	}
	if owner := os.Getenv("TASKDASH_BOARD_OWNER"); owner != "" {
		cfg.BoardOwner = owner
	}
	if logLevel := os.Getenv("TASKDASH_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if output := os.Getenv("TASKDASH_OUTPUT"); output != "" {
		cfg.Output = output
	}

	// Set defaults if not configured
	if cfg.DBPath == "" {
		// Check for project-local database first
		if _, err := os.Stat(".taskdash/taskdash.db"); err == nil {
			cfg.DBPath = ".taskdash/taskdash.db"
		} else {
			// Fall back to user-global database
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			cfg.DBPath = filepath.Join(homeDir, ".local", "share", "taskdash", "taskdash.db")
		}
	}

	return cfg, nil
}

// RequireToken returns the GitHub token, or a ConfigurationError telling the
// operator where to put it. Sync must not proceed without it.
func (c *Config) RequireToken() (string, error) {
	if c.GitHubToken == "" {
		return "", &domain.ConfigurationError{
			Key:         "GITHUB_TOKEN",
			Remediation: "Set GITHUB_TOKEN in the environment or in .env.local, then re-run sync.",
		}
	}
	return c.GitHubToken, nil
}

// loadYAMLConfig loads configuration from ~/.config/taskdash/config.yaml
func loadYAMLConfig(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(homeDir, ".config", "taskdash", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// getEnvOrFile gets an environment variable value, or reads it from a file
// if the _FILE variant is set
func getEnvOrFile(envVar, fileVar string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}

	if filePath := os.Getenv(fileVar); filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			return string(data)
		}
	}

	return ""
}

// findEnvLocal searches for .env.local starting from cwd and walking up
// parent directories. Stops at the user's home directory.
// Returns the path to .env.local if found, empty string otherwise.
func findEnvLocal() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// If we can't get home dir, just check cwd
		if _, err := os.Stat(".env.local"); err == nil {
			return ".env.local"
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Clean paths for reliable comparison
	homeDir = filepath.Clean(homeDir)
	dir := filepath.Clean(cwd)

	for {
		envPath := filepath.Join(dir, ".env.local")
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}

		// Stop if we've reached home directory
		if dir == homeDir {
			break
		}

		// Get parent directory
		parent := filepath.Dir(dir)

		// Stop if we've reached the filesystem root
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}
