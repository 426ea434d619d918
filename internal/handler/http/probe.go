package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/probe-doctor/internal/app"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/models"
)

const (
	statusSuccess = "success"
	statusError   = "error"
	statusOK      = "ok"

	maxBodyBytes = 1 << 20
)

// receiveProbe accepts a probe payload on POST /. Any JSON body is accepted;
// bodies that are not a probe object are recorded as legacy data with the
// fields left empty.
func (h *Handler) receiveProbe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := readBody(w, r)
	if err != nil {
		log.Warn().Err(err).Msg("rejecting probe")
		respond(w, r, models.ServerResponse{Status: statusError, Message: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	received := models.ReceivedProbe{
		TraceID:    traceIDFromContext(r.Context()),
		ReceivedAt: h.now(),
	}
	if err = json.Unmarshal(body, &received.ProbePayload); err != nil {
		log.Info().Int("bytes", len(body)).Msg("received debug data (legacy format)")
	}

	if received.HypothesisID != "" && received.Message != "" {
		log.Info().
			Str("hypothesis", received.HypothesisID).
			Str("message", received.Message).
			Msg("received probe")
	}

	h.probes.Add(received)
	respond(w, r, models.ServerResponse{Status: statusSuccess, Message: app.MsgDataReceived}, http.StatusOK)
}

// health answers GET /health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.ServerResponse{Status: statusOK}, http.StatusOK)
}

// listProbes answers GET /logs with the retained payloads, oldest first.
func (h *Handler) listProbes(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.LogsResponse{Status: statusSuccess, Logs: h.probes.List()}, http.StatusOK)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.ServerResponse{Status: statusError, Message: app.MsgRouteNotFound}, http.StatusNotFound)
}

func respond(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := writeJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}
	return body, nil
}
