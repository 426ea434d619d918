package handler

import (
	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/handler/http"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(storages *store.Storages, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}
	if storages == nil {
		storages = store.NewStorages(store.DefaultProbeCapacity)
	}

	return &Handlers{HTTP: http.NewHandler(storages, logger)}, nil
}
