// Package telemetry records anonymous scaffold events. Reporting is strictly
// best-effort: a failed or slow report never surfaces to the user.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/movekit/movekit/pkg/logging"
	"github.com/movekit/movekit/pkg/types"
)

const requestTimeout = 5 * time.Second

// Event is one recorded scaffold invocation
type Event struct {
	EventID       string `json:"event_id"`
	Command       string `json:"command"`
	ProjectName   string `json:"project_name"`
	Template      string `json:"template"`
	Framework     string `json:"framework"`
	Network       string `json:"network"`
	SigningOption string `json:"signing_option,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// NewEvent builds an event for a completed scaffold run
func NewEvent(command string, sel types.Selections) Event {
	return Event{
		EventID:       uuid.NewString(),
		Command:       command,
		ProjectName:   sel.ProjectName,
		Template:      sel.TemplateID,
		Framework:     string(sel.Framework),
		Network:       string(sel.Network),
		SigningOption: string(sel.SigningOption),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

// Reporter records events, fire-and-forget
type Reporter interface {
	Record(ctx context.Context, ev Event)
}

// HTTPReporter posts events as JSON to a collection endpoint
type HTTPReporter struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPReporter creates a reporter for the given endpoint
func NewHTTPReporter(endpoint string) *HTTPReporter {
	return &HTTPReporter{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: requestTimeout},
	}
}

// Record posts the event. Failures are logged at debug level and swallowed.
func (r *HTTPReporter) Record(ctx context.Context, ev Event) {
	logger := logging.GetLogger("telemetry")

	body, err := json.Marshal(ev)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to encode telemetry event")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to build telemetry request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		logger.Debug().Err(err).Msg("Telemetry request failed")
		return
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug().
		Str("eventId", ev.EventID).
		Int("status", resp.StatusCode).
		Msg("Telemetry event recorded")
}

// NopReporter drops every event (--no-telemetry or config opt-out)
type NopReporter struct{}

// Record does nothing
func (NopReporter) Record(ctx context.Context, ev Event) {}
