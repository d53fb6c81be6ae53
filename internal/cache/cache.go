package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

type promptKey struct {
	ChatID int64
	Prompt string
}

// ResponseCache запоминает ответы модели по паре (чат, запрос).
// Вместимость ограничена, старые записи вытесняются по LRU.
type ResponseCache struct {
	entries *lru.Cache[promptKey, string]
}

func New(capacity int) (*ResponseCache, error) {
	entries, err := lru.New[promptKey, string](capacity)
	if err != nil {
		return nil, err
	}
	return &ResponseCache{entries: entries}, nil
}

// GetOrCompute возвращает закешированный ответ либо вычисляет и сохраняет новый.
// Два одновременных промаха по одному ключу могут вычислить ответ дважды,
// это допустимая гонка: сохранится последний результат.
func (c *ResponseCache) GetOrCompute(ctx context.Context, chatID int64, prompt string, compute func(ctx context.Context, chatID int64, prompt string) string) string {
	key := promptKey{ChatID: chatID, Prompt: prompt}
	if reply, ok := c.entries.Get(key); ok {
		return reply
	}

	reply := compute(ctx, chatID, prompt)
	c.entries.Add(key, reply)
	return reply
}

// Purge сбрасывает кеш целиком для всех чатов.
func (c *ResponseCache) Purge() {
	c.entries.Purge()
}

func (c *ResponseCache) Len() int {
	return c.entries.Len()
}
