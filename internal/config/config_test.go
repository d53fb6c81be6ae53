package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("YC_API_KEY", "key")
	t.Setenv("YC_FOLDER_ID", "folder")
	t.Setenv("DB_PATH", "")
}

func TestLoad(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BotToken != "token" || cfg.ApiKey != "key" || cfg.FolderId != "folder" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DbPath != defaultDbPath {
		t.Fatalf("expected default db path, got %q", cfg.DbPath)
	}
}

func TestLoad_DbPathOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PATH", "/tmp/history.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DbPath != "/tmp/history.db" {
		t.Fatalf("expected override, got %q", cfg.DbPath)
	}
}

func TestLoad_RequiredVars(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing bot token", "TELEGRAM_BOT_TOKEN"},
		{"missing api key", "YC_API_KEY"},
		{"missing folder id", "YC_FOLDER_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error when %s is empty", tt.unset)
			}
		})
	}
}
