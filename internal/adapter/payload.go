package adapter

import (
	"time"

	"github.com/MKhiriev/probe-doctor/models"
)

// PayloadSource is reported as state.source in probe payloads built here.
const PayloadSource = "probe-doctor"

// NewPayload builds the test payload sent by the check and send commands.
func NewPayload(hypothesisID, message string, now time.Time) models.ProbePayload {
	return models.ProbePayload{
		HypothesisID: hypothesisID,
		Message:      message,
		State: map[string]any{
			"test":      true,
			"source":    PayloadSource,
			"timestamp": now.Format(time.RFC3339Nano),
		},
	}
}
