package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kochan17/taskdash/internal/domain"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := setHome(t)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("TASKDASH_DB_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GraphQLURL != "https://api.github.com/graphql" {
		t.Errorf("GraphQLURL = %q", cfg.GraphQLURL)
	}
	want := filepath.Join(home, ".local", "share", "taskdash", "taskdash.db")
	if cfg.DBPath != want {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, want)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want table", cfg.Output)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setHome(t)
	t.Setenv("TASKDASH_DB_PATH", "/tmp/override.db")
	t.Setenv("GITHUB_TOKEN", "ghp_secret")
	t.Setenv("TASKDASH_GRAPHQL_URL", "http://localhost:9999/graphql")
	t.Setenv("TASKDASH_BOARD_OWNER", "kochan17")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DBPath != "/tmp/override.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.GitHubToken != "ghp_secret" {
		t.Errorf("GitHubToken = %q", cfg.GitHubToken)
	}
	if cfg.GraphQLURL != "http://localhost:9999/graphql" {
		t.Errorf("GraphQLURL = %q", cfg.GraphQLURL)
	}
	if cfg.BoardOwner != "kochan17" {
		t.Errorf("BoardOwner = %q", cfg.BoardOwner)
	}
}

func TestLoadTokenFromFile(t *testing.T) {
	home := setHome(t)
	t.Setenv("GITHUB_TOKEN", "")

	tokenPath := filepath.Join(home, "token")
	if err := os.WriteFile(tokenPath, []byte("ghp_from_file\n"), 0600); err != nil {
		t.Fatalf("failed to write token file: %v", err)
	}
	t.Setenv("GITHUB_TOKEN_FILE", tokenPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GitHubToken != "ghp_from_file" {
		t.Errorf("GitHubToken = %q, want trimmed file contents", cfg.GitHubToken)
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	home := setHome(t)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("TASKDASH_DB_PATH", "")

	configDir := filepath.Join(home, ".config", "taskdash")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	yaml := `db_path: /tmp/yaml.db
board_owner: kochan17
repos:
  - owner: kochan17
    name: co-co
    project: co-co
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DBPath != "/tmp/yaml.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if len(cfg.Repos) != 1 || cfg.Repos[0].Owner != "kochan17" || cfg.Repos[0].Name != "co-co" {
		t.Errorf("Repos = %+v", cfg.Repos)
	}
}

func TestRequireToken(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.RequireToken()

	var confErr *domain.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if confErr.Key != "GITHUB_TOKEN" {
		t.Errorf("Key = %q", confErr.Key)
	}

	cfg.GitHubToken = "tok"
	token, err := cfg.RequireToken()
	if err != nil || token != "tok" {
		t.Errorf("RequireToken() = %q, %v", token, err)
	}
}
