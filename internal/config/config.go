package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
)

const defaultDbPath = "dialog_history.db"

type Config struct {
	BotToken string
	ApiKey   string
	FolderId string
	DbPath   string
}

func Load() (c Config, err error) {
	// .env является необязательным: в проде переменные приходят из окружения
	_ = godotenv.Load()

	c = Config{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ApiKey:   os.Getenv("YC_API_KEY"),
		FolderId: os.Getenv("YC_FOLDER_ID"),
		DbPath:   os.Getenv("DB_PATH"),
	}

	if c.DbPath == "" {
		c.DbPath = defaultDbPath
	}

	if c.BotToken == "" {
		return c, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.ApiKey == "" {
		return c, fmt.Errorf("YC_API_KEY is required")
	}
	if c.FolderId == "" {
		return c, fmt.Errorf("YC_FOLDER_ID is required")
	}

	return c, nil
}
