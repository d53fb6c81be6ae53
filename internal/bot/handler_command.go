package bot

import (
	"context"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"log"
)

const welcomeText = "👋 Привет! Я полезный ассистент\n\n" +
	"Отвечаю кратко и по делу.\n" +
	"Доступные команды:\n" +
	"/clear - очистить историю диалога\n\n" +
	"Просто напиши свой вопрос!"

// CommandHandler отвечает на /start и /help статичным приветствием.
type CommandHandler struct{}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{}
}

func (h *CommandHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if err := sendReply(ctx, b, chatID, update.Message.ID, welcomeText); err != nil {
		log.Printf("[CommandHandler.Handle] send error chatID=%d err=%v", chatID, err)
		return
	}
	log.Printf("[CommandHandler.Handle] welcome sent chatID=%d", chatID)
}
