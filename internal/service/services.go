package service

import (
	"github.com/MKhiriev/go-cipher-desk/internal/adapter"
	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/internal/store"
)

// ClientServices groups the client use cases.
type ClientServices struct {
	Submission SubmissionController
	History    HistoryService
	PruneJob   HistoryPruneJob
}

func NewClientServices(storages *store.ClientStorages, transformAdapter adapter.TransformAdapter, clipboard Clipboard, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Submission: NewSubmissionController(transformAdapter, storages.Artifacts, storages.History, clipboard, logger),
		History:    NewHistoryService(storages.History),
		PruneJob:   NewHistoryPruneJob(storages.History, logger),
	}
}
