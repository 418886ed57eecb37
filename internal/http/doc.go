// Package http provides the HTTP client used for remote gallery images.
//
// The Client in this package handles:
//   - User-Agent headers
//   - File size retrieval via HEAD requests
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(10 * time.Second))
//
//	// Fetch an HTML collection
//	html, err := client.GetString(ctx, "https://example.com/gallery.html")
//
//	// Fetch image bytes
//	data, err := client.Get(ctx, "https://example.com/photo.jpg")
package http
