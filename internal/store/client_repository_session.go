package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, record models.SessionRecord) (int64, error) {
	log := logger.FromContext(ctx)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	query, args, err := buildInsertSessionQuery(record)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("provider", record.Provider).
			Msg("failed to insert session")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to read inserted id")
		return 0, fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}

	return id, nil
}

func (s *sessionRepository) GetLatestSession(ctx context.Context) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLatestSessionQuery()
	if err != nil {
		return models.SessionRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record     models.SessionRecord
		navigation sql.NullString
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.UserID,
		&record.Provider,
		&record.Token,
		&navigation,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionRecord{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.GetLatestSession").Msg("failed to scan session row")
		return models.SessionRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if navigation.Valid && navigation.String != "null" {
		record.Navigation = []byte(navigation.String)
	}

	return record, nil
}
