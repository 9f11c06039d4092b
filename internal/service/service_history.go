package service

import (
	"context"

	"github.com/MKhiriev/go-cipher-desk/internal/store"
	"github.com/MKhiriev/go-cipher-desk/models"
)

// DefaultHistoryLimit is the number of entries shown in the history pane.
const DefaultHistoryLimit = 20

type historyService struct {
	repo store.HistoryRepository
}

func NewHistoryService(repo store.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

func (h *historyService) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if h.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return h.repo.List(ctx, limit)
}
