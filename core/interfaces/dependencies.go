// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Groups the collaborators the feed pipeline needs from the outside world

package interfaces

import "time"

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient fetches feed documents
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Clock supplies "now" for time annotation; nil means time.Now
	Clock func() time.Time
}
