package interfaces

// Logger defines the structured logger used throughout the application.
// Implementations live under infrastructure/logger (logrus, zap).
//
// Example usage:
//
//	logger.Warn("Skipping source", map[string]interface{}{
//		"source": "lemonde",
//		"error":  err.Error(),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs problems that did not stop the operation, such as one
	// source failing while the others succeed.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything. Services fall back to it when no logger is
// wired so they never need nil checks.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
