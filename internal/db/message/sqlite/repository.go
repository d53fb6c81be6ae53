package sqlite

import (
	msg "dialogbot/internal/db/message"
	storage "dialogbot/internal/db/sqlite"
	"context"
	"database/sql"
	"fmt"
	"log"
)

type RepositorySQlite struct {
	reg *storage.Registry
}

func NewRepositorySQlite(reg *storage.Registry) *RepositorySQlite {
	return &RepositorySQlite{reg: reg}
}

func (r *RepositorySQlite) Init(ctx context.Context) error {
	conn, err := r.reg.Checkout(ctx)
	if err != nil {
		return fmt.Errorf("checkout connection: %w", err)
	}
	defer r.reg.Checkin(conn)

	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			log.Printf("[message/RepositorySQlite.Init] pragma failed: %q err=%v", pragma, err)
			return fmt.Errorf("apply pragma: %w", err)
		}
	}

	for _, stmt := range []string{createTable, createChatIdIndex, createTimestampIndex, createCleanupTrigger} {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			log.Println("[message/RepositorySQlite.Init] failed to create schema:", err)
			return fmt.Errorf("create schema: %w", err)
		}
	}

	log.Println("[message/RepositorySQlite.Init] schema ready")
	return nil
}

func (r *RepositorySQlite) Append(ctx context.Context, chatID int64, role string, content string) error {
	conn, err := r.reg.Checkout(ctx)
	if err != nil {
		return fmt.Errorf("checkout connection: %w", err)
	}
	defer r.reg.Checkin(conn)

	if _, err := conn.ExecContext(ctx, insertMessage, chatID, role, content); err != nil {
		log.Printf("[message/RepositorySQlite.Append] chatID=%d role=%s err=%v", chatID, role, err)
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *RepositorySQlite) Recent(ctx context.Context, chatID int64, limit int) (messages []msg.Message, err error) {
	conn, err := r.reg.Checkout(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout connection: %w", err)
	}
	defer r.reg.Checkin(conn)

	rows, err := conn.QueryContext(ctx, selectRecent, chatID, limit)
	if err != nil {
		log.Printf("[message/RepositorySQlite.Recent] chatID=%d err=%v", chatID, err)
		return nil, fmt.Errorf("select recent messages: %w", err)
	}
	defer func(rows *sql.Rows) {
		if cerr := rows.Close(); cerr != nil {
			log.Println("[message/RepositorySQlite.Recent] failed to close rows:", cerr)
		}
	}(rows)

	for rows.Next() {
		var m msg.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			log.Printf("[message/RepositorySQlite.Recent] failed to scan row: %v", err)
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[message/RepositorySQlite.Recent] rows error: %v", err)
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	// запрос отдаёт свежие первыми, истории нужен хронологический порядок
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *RepositorySQlite) Clear(ctx context.Context, chatID int64) error {
	conn, err := r.reg.Checkout(ctx)
	if err != nil {
		return fmt.Errorf("checkout connection: %w", err)
	}
	defer r.reg.Checkin(conn)

	res, err := conn.ExecContext(ctx, deleteByChatId, chatID)
	if err != nil {
		log.Printf("[message/RepositorySQlite.Clear] chatID=%d err=%v", chatID, err)
		return fmt.Errorf("delete messages: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil {
		log.Printf("[message/RepositorySQlite.Clear] chatID=%d deleted=%d", chatID, rows)
	}
	return nil
}
