package bot

import (
	"context"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// sendReply отвечает цитированием исходного сообщения пользователя.
func sendReply(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string) error {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: messageID,
		},
	})
	return err
}
