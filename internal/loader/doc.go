// Package loader fetches gallery images and turns them into thumbnails for
// the terminal lightbox.
//
// # Loader
//
// The Loader coordinates the whole process:
//
//  1. Read local files or fetch http(s) images
//  2. Retry failed fetches with exponential backoff
//  3. Decode JPEG, PNG and GIF data
//  4. Scale to the configured thumbnail size
//
// # Basic Usage
//
//	l := loader.NewLoader(settings, func(event loader.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	thumbs, err := l.Load(ctx, images)
//	for _, t := range thumbs {
//	    if t.Err != nil {
//	        continue // already reported
//	    }
//	    draw(t.Pixels)
//	}
//
// # Concurrency
//
// settings.MaxConcurrentImageLoads limits how many images are loaded in
// parallel. Results keep the order of the input.
//
// # Retry Logic
//
// Remote fetches are retried up to settings.LoadMaxRetries times, waiting
// LoadRetryCooldown * LoadRetryExponent^try seconds between attempts.
package loader
