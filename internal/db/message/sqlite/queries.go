package sqlite

import "fmt"

const (
	tableName     = "messages"
	colChatId     = "chat_id"
	colRole       = "role"
	colContent    = "content"
	colTimestamp  = "timestamp"
	retentionDays = 7
)

// Прагмы действуют на соединение, на котором выполняется Init;
// journal_mode сохраняется в самом файле БД.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA cache_size = -10000",
}

var createTable = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  %s INTEGER NOT NULL,
  %s TEXT NOT NULL,
  %s TEXT NOT NULL,
  %s DATETIME DEFAULT CURRENT_TIMESTAMP
);`,
	tableName,
	colChatId,
	colRole,
	colContent,
	colTimestamp,
)

var createChatIdIndex = fmt.Sprintf(
	`CREATE INDEX IF NOT EXISTS idx_chat_id ON %s(%s);`,
	tableName, colChatId,
)

var createTimestampIndex = fmt.Sprintf(
	`CREATE INDEX IF NOT EXISTS idx_timestamp ON %s(%s);`,
	tableName, colTimestamp,
)

// Ретеншен привязан к вставке: триггер срабатывает после каждого INSERT
// и удаляет строки старше окна хранения по всем чатам сразу.
var createCleanupTrigger = fmt.Sprintf(`
CREATE TRIGGER IF NOT EXISTS cleanup_old_messages
AFTER INSERT ON %s
BEGIN
  DELETE FROM %s
  WHERE %s < datetime('now', '-%d days');
END;`,
	tableName,
	tableName,
	colTimestamp, retentionDays,
)

var insertMessage = fmt.Sprintf(`
INSERT INTO %s (%s, %s, %s)
VALUES (?, ?, ?);`,
	tableName,
	colChatId, colRole, colContent,
)

// Хвост истории читается в обратном порядке, вызывающий разворачивает его
// обратно в хронологический. id добивает ничью внутри одной секунды.
var selectRecent = fmt.Sprintf(`
SELECT id, %s, %s, %s, %s
FROM %s
WHERE %s = ?
ORDER BY %s DESC, id DESC
LIMIT ?;`,
	colChatId, colRole, colContent, colTimestamp,
	tableName,
	colChatId,
	colTimestamp,
)

var deleteByChatId = fmt.Sprintf(`
DELETE FROM %s
WHERE %s = ?;`,
	tableName,
	colChatId,
)
