// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"newsbrief-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if stderrors.Is(err, errors.ErrNoSources) {
		return huma.Error503ServiceUnavailable(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Timed out fetching feed", err)
	}

	if apiErr, ok := errors.AsExternalAPI(err); ok {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return huma.Error429TooManyRequests("Rate limited by feed host", err)
		}
		// Anything else the feed host did wrong is a bad gateway for our caller
		return huma.Error502BadGateway("Feed source unavailable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
