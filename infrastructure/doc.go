// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - http/standard: net/http client with a timeout and feed Accept headers, no retries
// - logger: structured JSON logging on logrus or zap, with optional rotating file output
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(15*time.Second,
//	    standard.WithTransport(&middleware.LoggingRoundTripper{Logger: log}))
//	resp, err := client.Get(ctx, "https://example.com/feed.rss")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	log, err := logger.New(logger.Config{Backend: logger.BackendZap, Level: "info"})
//	defer log.Close()
//	log.Info("Fetched feed", map[string]interface{}{
//	    "url":      feedURL,
//	    "articles": 12,
//	})
package infrastructure
