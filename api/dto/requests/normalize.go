// ABOUTME: Request DTOs for the normalization endpoint
// ABOUTME: Raw text and an optional timestamp to annotate

package requests

// NormalizeRequest is the body of POST /api/normalize
type NormalizeRequest struct {
	// Text is raw feed text, possibly with markup and entities; absent or
	// null is treated as ""
	Text *string `json:"text,omitempty" required:"false" nullable:"true" maxLength:"1048576" doc:"Raw feed text to clean"`

	// Published is an optional timestamp to turn into minutes from now
	Published string `json:"published,omitempty" doc:"ISO-8601 or RFC 1123 timestamp" example:"2024-03-10T12:05:00Z"`
}
