package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cipher-desk/internal/mock"
	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo)
	ctx := context.Background()

	want := []models.HistoryEntry{{ID: "b"}, {ID: "a"}}
	repo.EXPECT().List(ctx, 5).Return(want, nil)

	got, err := svc.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHistoryService_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo)

	repo.EXPECT().List(gomock.Any(), DefaultHistoryLimit).Return(nil, nil)

	_, err := svc.Recent(context.Background(), 0)
	assert.NoError(t, err)
}

func TestHistoryService_Disabled(t *testing.T) {
	_, err := NewHistoryService(nil).Recent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}
