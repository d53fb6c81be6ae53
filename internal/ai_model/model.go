package ai_model

import "context"

// AiModel отвечает на запрос пользователя с учётом истории диалога.
// Ошибки не пробрасываются: реализация возвращает готовую для
// отправки пользователю строку, включая запасные ответы при сбоях.
type AiModel interface {
	Complete(ctx context.Context, chatID int64, prompt string) string
}
