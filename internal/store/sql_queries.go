// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cipher-desk/models"
)

const historyTable = "history"

var historyColumns = []string{
	"id",
	"cipher_id",
	"operation",
	"mode",
	"success",
	"filename",
	"size",
	"error",
	"created_at",
	"digest",
}

// sqlite uses ? placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertHistoryQuery(entry models.HistoryEntry) (string, []any, error) {
	return builder.
		Insert(historyTable).
		Columns(historyColumns...).
		Values(
			entry.ID,
			entry.CipherID.String(),
			string(entry.Operation),
			entry.Mode,
			entry.Success,
			entry.Filename,
			entry.Size,
			entry.Error,
			entry.CreatedAt,
			entry.Digest,
		).
		ToSql()
}

func buildListHistoryQuery(limit int) (string, []any, error) {
	return builder.
		Select(historyColumns...).
		From(historyTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildPruneHistoryQuery(olderThan time.Time) (string, []any, error) {
	return builder.
		Delete(historyTable).
		Where(sq.Lt{"created_at": olderThan}).
		ToSql()
}
