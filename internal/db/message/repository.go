package message

import "context"

type Repository interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, chatID int64, role string, content string) error
	Recent(ctx context.Context, chatID int64, limit int) ([]Message, error)
	Clear(ctx context.Context, chatID int64) error
}
