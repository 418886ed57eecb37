package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/handiism/deskwidgets/internal/config"
	"github.com/handiism/deskwidgets/internal/http"
	ioutils "github.com/handiism/deskwidgets/internal/io"
	"github.com/handiism/deskwidgets/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrTooLarge is returned for images above the configured byte limit.
var ErrTooLarge = errors.New("image too large")

// Thumbnail is the result of loading one gallery image.
type Thumbnail struct {
	Image  model.Image
	Pixels *image.RGBA // nil when Err is set
	Format string
	Err    error
}

// Loader fetches, decodes and scales gallery images.
type Loader struct {
	settings     *config.Settings
	httpClient   *http.Client
	imageService *ioutils.ImageService

	total  int32
	loaded int32
	failed int32

	onProgress func(ProgressEvent)
}

// NewLoader creates a new Loader.
func NewLoader(settings *config.Settings, onProgress func(ProgressEvent)) *Loader {
	return &Loader{
		settings:     settings,
		httpClient:   http.NewClient(http.WithTimeout(settings.HTTPTimeout())),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// Load loads every image concurrently. The result has one Thumbnail per
// image, in the same order. A failed image is reported and carries its error;
// it does not stop the others. The returned error is only set when ctx is
// cancelled.
func (l *Loader) Load(ctx context.Context, images []model.Image) ([]Thumbnail, error) {
	atomic.AddInt32(&l.total, int32(len(images)))
	thumbs := make([]Thumbnail, len(images))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(l.settings.MaxConcurrentImageLoads, 1))

	for i, img := range images {
		g.Go(func() error {
			thumbs[i] = l.load(gctx, img)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return thumbs, err
	}
	if err := ctx.Err(); err != nil {
		return thumbs, err
	}

	failed := 0
	for _, t := range thumbs {
		if t.Err != nil {
			failed++
		}
	}
	if failed == 0 {
		l.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d image(s)", len(images)), Level: LevelSuccess})
	} else {
		l.progress(ProgressEvent{Message: fmt.Sprintf("Finished loading, %d image(s) failed", failed), Level: LevelWarning})
	}
	return thumbs, nil
}

// LoadOne loads a single image and counts it towards the total.
func (l *Loader) LoadOne(ctx context.Context, img model.Image) Thumbnail {
	atomic.AddInt32(&l.total, 1)
	return l.load(ctx, img)
}

func (l *Loader) load(ctx context.Context, img model.Image) Thumbnail {
	thumb := Thumbnail{Image: img}

	data, err := l.fetchWithRetry(ctx, img)
	if err == nil {
		var decoded image.Image
		decoded, thumb.Format, err = l.imageService.Decode(data)
		if err == nil {
			thumb.Pixels = l.imageService.Thumbnail(ctx, decoded, l.settings.ThumbnailMaxWidth, l.settings.ThumbnailMaxHeight)
			if thumb.Pixels == nil {
				err = ctx.Err()
			}
		}
	}

	if err != nil {
		thumb.Err = err
		atomic.AddInt32(&l.failed, 1)
		l.progress(ProgressEvent{Message: fmt.Sprintf("Error loading %s: %v", img.Source, err), Level: LevelError})
		return thumb
	}

	atomic.AddInt32(&l.loaded, 1)
	l.progress(ProgressEvent{Message: fmt.Sprintf("Loaded: %s", img.Label()), Level: LevelVerbose})
	return thumb
}

// GetProgress returns how many images were loaded, failed, and requested.
func (l *Loader) GetProgress() (loaded, failed, total int32) {
	return atomic.LoadInt32(&l.loaded), atomic.LoadInt32(&l.failed), atomic.LoadInt32(&l.total)
}

func (l *Loader) fetchWithRetry(ctx context.Context, img model.Image) ([]byte, error) {
	if !img.IsRemote() {
		return l.readLocal(img.Source)
	}

	if l.settings.MaxImageBytes > 0 {
		if size, err := l.httpClient.GetFileSize(ctx, img.Source); err == nil && size > l.settings.MaxImageBytes {
			return nil, fmt.Errorf("%s (%d bytes): %w", img.Source, size, ErrTooLarge)
		}
	}

	var data []byte
	var err error
	retries := max(l.settings.LoadMaxRetries, 1)
	for tries := 0; tries < retries; tries++ {
		data, err = l.httpClient.Get(ctx, img.Source)
		if err == nil || ctx.Err() != nil {
			break
		}
		if tries+1 < retries {
			l.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, retries, img.Source), Level: LevelWarning})
			l.waitForRetry(ctx, tries)
		}
	}
	return data, err
}

func (l *Loader) readLocal(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if l.settings.MaxImageBytes > 0 && info.Size() > l.settings.MaxImageBytes {
		return nil, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrTooLarge)
	}
	return os.ReadFile(path)
}

func (l *Loader) waitForRetry(ctx context.Context, tries int) {
	cooldown := l.settings.LoadRetryCooldown * math.Pow(l.settings.LoadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (l *Loader) progress(event ProgressEvent) {
	if l.onProgress != nil {
		l.onProgress(event)
	}
}
