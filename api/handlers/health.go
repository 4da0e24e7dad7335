// ABOUTME: Health handler reports liveness and the number of configured sources
// ABOUTME: Served at /healthz outside the /api prefix

package handlers

import (
	"context"
	"net/http"
	"time"

	"newsbrief-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports liveness
type HealthHandler struct {
	sources int
	now     func() time.Time
}

// NewHealthHandler creates a health handler; now defaults to time.Now
func NewHealthHandler(sources int, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{sources: sources, now: now}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness probe",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the healthz operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /healthz
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:  "ok",
			Time:    h.now().UTC(),
			Sources: h.sources,
		},
	}, nil
}
