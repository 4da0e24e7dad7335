// Package api provides the HTTP API layer for Newsbrief.
// It uses the Huma framework on a chi router for OpenAPI documentation
// and request validation.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware chain and static mount
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging, request IDs and per-IP rate limiting
//
// # Endpoints
//
//	GET  /api/articles   merged articles from configured sources, paginated
//	GET  /api/feed       one feed by URL
//	GET  /api/sources    configured sources
//	POST /api/normalize  clean a piece of text and annotate a timestamp
//	GET  /healthz        liveness
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewFeedHandler(feedService, cfg.Feeds.Sources).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", humaAPI.Adapter())
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Domain errors are mapped to
// status codes in handlers/errors.go: unreachable or invalid feeds are 502,
// feed timeouts 504 and a server without sources 503.
package api
