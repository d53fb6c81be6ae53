package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
)

var ErrRegistryClosed = errors.New("connection registry is closed")

// Registry выдаёт воркерам отдельные соединения к встраиваемой БД.
// Соединение создаётся лениво при первом Checkout, после Checkin
// переиспользуется следующим воркером. Shutdown закрывает всё разом.
type Registry struct {
	db     *sql.DB
	mu     sync.Mutex
	idle   []*sql.Conn
	opened int
	closed bool
}

func NewRegistry(db *sql.DB) *Registry {
	return &Registry{db: db}
}

func (r *Registry) Checkout(ctx context.Context) (*sql.Conn, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	if n := len(r.idle); n > 0 {
		conn := r.idle[n-1]
		r.idle = r.idle[:n-1]
		r.mu.Unlock()
		return conn, nil
	}
	r.mu.Unlock()

	conn, err := r.db.Conn(ctx)
	if err != nil {
		log.Println("[Registry.Checkout] failed to open connection:", err)
		return nil, err
	}

	r.mu.Lock()
	r.opened++
	r.mu.Unlock()
	return conn, nil
}

func (r *Registry) Checkin(conn *sql.Conn) {
	if conn == nil {
		return
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		if err := conn.Close(); err != nil {
			log.Println("[Registry.Checkin] close after shutdown:", err)
		}
		return
	}
	r.idle = append(r.idle, conn)
	r.mu.Unlock()
}

// Shutdown закрывает все учтённые соединения и саму БД.
// Безопасен, если соединения ни разу не запрашивались.
func (r *Registry) Shutdown() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	idle := r.idle
	opened := r.opened
	r.idle = nil
	r.mu.Unlock()

	var firstErr error
	for _, conn := range idle {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := r.db.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	log.Printf("[Registry.Shutdown] closed %d idle connections (%d opened total)", len(idle), opened)
	return firstErr
}
