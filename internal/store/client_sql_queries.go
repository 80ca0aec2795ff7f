package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sign-in/models"
)

const sessionsTable = "sessions"

var sessionColumns = []string{"id", "user_id", "provider", "token", "navigation", "created_at"}

// SQLite takes '?' placeholders.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertSessionQuery(record models.SessionRecord) (string, []any, error) {
	navigation := []byte(record.Navigation)
	if len(navigation) == 0 {
		navigation = []byte("null")
	}

	return sqliteBuilder.
		Insert(sessionsTable).
		Columns("user_id", "provider", "token", "navigation", "created_at").
		Values(record.UserID, record.Provider, record.Token, string(navigation), record.CreatedAt.UTC()).
		ToSql()
}

func buildSelectLatestSessionQuery() (string, []any, error) {
	return sqliteBuilder.
		Select(sessionColumns...).
		From(sessionsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
}
