package http

import (
	"time"

	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/store"
)

type Handler struct {
	probes store.ProbeStorage
	now    func() time.Time

	logger *logger.Logger
}

func NewHandler(storages *store.Storages, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		probes: storages.ProbeStorage,
		now:    time.Now,
		logger: logger,
	}
}
