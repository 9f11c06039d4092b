package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/models"
)

type historyRepository struct {
	*DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, ids IDGenerator, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (h *historyRepository) Save(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	if entry.ID == "" {
		entry.ID = h.ids.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = h.now().UTC()
	}

	query, args, err := buildInsertHistoryQuery(entry)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Save").
			Str("id", entry.ID).
			Msg("failed to insert history entry")
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil || affected == 0 {
		return models.HistoryEntry{}, ErrHistoryNotSaved
	}

	return entry, nil
}

func (h *historyRepository) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := buildListHistoryQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.List").
			Int("limit", limit).
			Msg("failed to query history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0, limit)
	for rows.Next() {
		var (
			entry     models.HistoryEntry
			cipherID  string
			operation string
		)
		if err = rows.Scan(
			&entry.ID,
			&cipherID,
			&operation,
			&entry.Mode,
			&entry.Success,
			&entry.Filename,
			&entry.Size,
			&entry.Error,
			&entry.CreatedAt,
			&entry.Digest,
		); err != nil {
			log.Err(err).Str("func", "historyRepository.List").Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.CipherID = models.CipherID(cipherID)
		entry.Operation = models.Operation(operation)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (h *historyRepository) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneHistoryQuery(olderThan.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Prune").
			Time("older_than", olderThan).
			Msg("failed to prune history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
