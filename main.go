package main

import (
	"context"
	"database/sql"
	"dialogbot/internal/ai_model/yandex"
	internalbot "dialogbot/internal/bot"
	"dialogbot/internal/cache"
	"dialogbot/internal/config"
	msgsqlite "dialogbot/internal/db/message/sqlite"
	storage "dialogbot/internal/db/sqlite"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/natefinch/lumberjack.v2"
)

const cacheCapacity = 500

var (
	cmd internalbot.Handler
	clr internalbot.Handler
	txt internalbot.Handler
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite3", cfg.DbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatal(err)
	}
	registry := storage.NewRegistry(db)
	defer func(registry *storage.Registry) {
		if err := registry.Shutdown(); err != nil {
			log.Println(err)
		}
	}(registry)

	repository := msgsqlite.NewRepositorySQlite(registry)
	if err := repository.Init(ctx); err != nil {
		log.Fatal("Cannot initialize repository: ", err, " ", cfg.DbPath)
	}

	model := yandex.NewAiModelYandex(cfg.ApiKey, cfg.FolderId, repository)

	responses, err := cache.New(cacheCapacity)
	if err != nil {
		log.Fatal(err)
	}

	cmd = internalbot.NewCommandHandler()
	clr = internalbot.NewClearHandler(repository, responses)
	txt = internalbot.NewTextHandler(model, responses)

	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(handleText))
	if err != nil {
		log.Fatal(err)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, cmd.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, cmd.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/clear", bot.MatchTypeExact, clr.Handle)

	log.Println("----- Бот запущен -----")
	b.Start(ctx)
	log.Println("----- Бот остановлен -----")
}

func handleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	if update.Message.Text != "" {
		txt.Handle(ctx, b, update)
	}
}

func setupLogging() {
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   "logs/bot.log",
		MaxSize:    5, // мегабайт
		MaxBackups: 3,
	}))
}
