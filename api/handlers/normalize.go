// ABOUTME: Normalization handler exposes the text cleaner and time annotator over HTTP
// ABOUTME: Useful for clients that receive raw feed text from elsewhere

package handlers

import (
	"context"
	"net/http"

	"newsbrief-api/api/dto/requests"
	"newsbrief-api/api/dto/responses"
	"newsbrief-api/core/interfaces"
	"newsbrief-api/pkg/utils/html"

	"github.com/danielgtaylor/huma/v2"
)

// NormalizeHandler handles text normalization requests
type NormalizeHandler struct {
	annotator interfaces.TimeAnnotator
}

// NewNormalizeHandler creates a new normalization handler
func NewNormalizeHandler(annotator interfaces.TimeAnnotator) *NormalizeHandler {
	return &NormalizeHandler{annotator: annotator}
}

// RegisterRoutes registers normalization routes
func (h *NormalizeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "normalizeText",
		Method:      http.MethodPost,
		Path:        "/api/normalize",
		Summary:     "Clean feed text",
		Description: "Decodes entities, strips markup and collapses whitespace; optionally turns a timestamp into minutes from now",
		Tags:        []string{"Normalize"},
	}, h.Normalize)
}

// NormalizeInput defines the input for the normalizeText operation
type NormalizeInput struct {
	Body requests.NormalizeRequest
}

// NormalizeOutput defines the output for the normalizeText operation
type NormalizeOutput struct {
	Body responses.NormalizeResponse
}

// Normalize handles POST /api/normalize
func (h *NormalizeHandler) Normalize(ctx context.Context, input *NormalizeInput) (*NormalizeOutput, error) {
	var text string
	if input.Body.Text != nil {
		text = *input.Body.Text
	}

	return &NormalizeOutput{
		Body: responses.NormalizeResponse{
			Text:    html.CleanText(text),
			Decoded: html.DecodeEntities(text),
			Minutes: h.annotator.MinutesFromISO(input.Body.Published),
		},
	}, nil
}
