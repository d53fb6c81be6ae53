package bot

import (
	"context"
	"dialogbot/internal/ai_model"
	"dialogbot/internal/cache"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"log"
	"strings"
	"unicode/utf8"
)

const (
	// Сообщения длиннее отклоняются без обращения к модели.
	maxMessageRunes = 500
	// Предел запроса к модели, более длинный текст обрезается.
	promptRuneLimit = 300

	greetingReplyText = "Привет! Чем помочь?"
	tooLongReply      = "⚠️ Сообщение слишком длинное. Максимум 500 символов."
)

var greetings = []string{"привет", "здравствуй"}

type TextHandler struct {
	Model ai_model.AiModel
	Cache *cache.ResponseCache
}

func NewTextHandler(model ai_model.AiModel, c *cache.ResponseCache) *TextHandler {
	return &TextHandler{Model: model, Cache: c}
}

func (h *TextHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	if needsCompletion(text) {
		if _, err := b.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionTyping,
		}); err != nil {
			log.Printf("[TextHandler.Handle] chat action error chatID=%d err=%v", chatID, err)
		}
	}

	if err := sendReply(ctx, b, chatID, update.Message.ID, h.reply(ctx, chatID, text)); err != nil {
		log.Printf("[TextHandler.Handle] send error chatID=%d err=%v", chatID, err)
		return
	}
	log.Printf("[TextHandler.Handle] reply sent chatID=%d", chatID)
}

// reply решает судьбу входящего текста: дешёвые локальные ответы
// разбираются на месте, остальное идёт через кеш к модели.
func (h *TextHandler) reply(ctx context.Context, chatID int64, text string) string {
	if greeting, ok := greetingReply(text); ok {
		return greeting
	}
	if utf8.RuneCountInString(text) > maxMessageRunes {
		return tooLongReply
	}
	return h.Cache.GetOrCompute(ctx, chatID, truncateRunes(text, promptRuneLimit), h.Model.Complete)
}

func greetingReply(text string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, greeting := range greetings {
		if lower == greeting {
			return greetingReplyText, true
		}
	}
	return "", false
}

func needsCompletion(text string) bool {
	if _, ok := greetingReply(text); ok {
		return false
	}
	return utf8.RuneCountInString(text) <= maxMessageRunes
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
