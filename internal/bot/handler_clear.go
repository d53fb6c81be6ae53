package bot

import (
	"context"
	"dialogbot/internal/cache"
	"dialogbot/internal/db/message"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"log"
)

const (
	clearSuccessReply = "🗑️ История диалога очищена!"
	clearFailureReply = "❌ Не удалось очистить историю"
)

// ClearHandler обрабатывает /clear: удаляет историю чата и сбрасывает
// кеш ответов. Кеш общий, поэтому сбрасывается целиком для всех чатов.
type ClearHandler struct {
	Repository message.Repository
	Cache      *cache.ResponseCache
}

func NewClearHandler(r message.Repository, c *cache.ResponseCache) *ClearHandler {
	return &ClearHandler{Repository: r, Cache: c}
}

func (h *ClearHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	reply := h.clear(ctx, chatID)
	if err := sendReply(ctx, b, chatID, update.Message.ID, reply); err != nil {
		log.Printf("[ClearHandler.Handle] send error chatID=%d err=%v", chatID, err)
	}
}

func (h *ClearHandler) clear(ctx context.Context, chatID int64) string {
	if err := h.Repository.Clear(ctx, chatID); err != nil {
		log.Printf("[ClearHandler.clear] clear error chatID=%d err=%v", chatID, err)
		return clearFailureReply
	}
	h.Cache.Purge()
	log.Printf("[ClearHandler.clear] history cleared chatID=%d", chatID)
	return clearSuccessReply
}
