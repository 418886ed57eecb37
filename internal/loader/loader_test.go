package loader

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/deskwidgets/internal/config"
	"github.com/handiism/deskwidgets/internal/model"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.ThumbnailMaxWidth = 16
	s.ThumbnailMaxHeight = 16
	s.LoadRetryCooldown = 0
	return s
}

type eventLog struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (e *eventLog) add(ev ProgressEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *eventLog) count(level ProgressLevel) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, ev := range e.events {
		if ev.Level == level {
			n++
		}
	}
	return n
}

func TestLoader_LocalImagesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.png")
	small := filepath.Join(dir, "small.png")
	require.NoError(t, os.WriteFile(big, pngBytes(t, 64, 32), 0644))
	require.NoError(t, os.WriteFile(small, pngBytes(t, 8, 8), 0644))

	var log eventLog
	l := NewLoader(testSettings(), log.add)
	thumbs, err := l.Load(context.Background(), []model.Image{{Source: big}, {Source: small}})
	require.NoError(t, err)
	require.Len(t, thumbs, 2)

	require.NoError(t, thumbs[0].Err)
	assert.Equal(t, big, thumbs[0].Image.Source)
	assert.Equal(t, "png", thumbs[0].Format)
	assert.Equal(t, image.Rect(0, 0, 16, 8), thumbs[0].Pixels.Bounds())
	assert.Equal(t, image.Rect(0, 0, 8, 8), thumbs[1].Pixels.Bounds())

	loaded, failed, total := l.GetProgress()
	assert.Equal(t, int32(2), loaded)
	assert.Equal(t, int32(0), failed)
	assert.Equal(t, int32(2), total)
	assert.Equal(t, 1, log.count(LevelSuccess))
}

func TestLoader_LoadOneCountsTowardsTotal(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	added := filepath.Join(dir, "added.png")
	require.NoError(t, os.WriteFile(first, pngBytes(t, 4, 4), 0644))
	require.NoError(t, os.WriteFile(added, pngBytes(t, 4, 4), 0644))

	l := NewLoader(testSettings(), nil)
	_, err := l.Load(context.Background(), []model.Image{{Source: first}})
	require.NoError(t, err)

	thumb := l.LoadOne(context.Background(), model.Image{Source: added})
	require.NoError(t, thumb.Err)

	loaded, failed, total := l.GetProgress()
	assert.Equal(t, int32(2), loaded)
	assert.Equal(t, int32(0), failed)
	assert.Equal(t, int32(2), total)
}

func TestLoader_FailuresAreNotFatal(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(good, pngBytes(t, 4, 4), 0644))
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0644))

	var log eventLog
	l := NewLoader(testSettings(), log.add)
	thumbs, err := l.Load(context.Background(), []model.Image{
		{Source: filepath.Join(dir, "missing.png")},
		{Source: junk},
		{Source: good},
	})
	require.NoError(t, err)

	assert.Error(t, thumbs[0].Err)
	assert.Error(t, thumbs[1].Err)
	assert.Nil(t, thumbs[1].Pixels)
	assert.NoError(t, thumbs[2].Err)
	assert.Equal(t, 2, log.count(LevelError))
	assert.Equal(t, 1, log.count(LevelWarning))
}

func TestLoader_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 32, 32), 0644))

	settings := testSettings()
	settings.MaxImageBytes = 10
	thumb := NewLoader(settings, nil).LoadOne(context.Background(), model.Image{Source: path})

	assert.True(t, errors.Is(thumb.Err, ErrTooLarge))
}

func TestLoader_RemoteRetries(t *testing.T) {
	data := pngBytes(t, 4, 4)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			return
		}
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	var log eventLog
	thumb := NewLoader(testSettings(), log.add).LoadOne(context.Background(), model.Image{Source: srv.URL + "/a.png"})

	require.NoError(t, thumb.Err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, 2, log.count(LevelWarning))
}

func TestLoader_RemoteGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	settings := testSettings()
	settings.LoadMaxRetries = 2
	thumb := NewLoader(settings, nil).LoadOne(context.Background(), model.Image{Source: srv.URL + "/gone.png"})

	require.Error(t, thumb.Err)
	assert.Contains(t, thumb.Err.Error(), "404")
}

func TestLoader_Cancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 4, 4), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(testSettings(), nil).Load(ctx, []model.Image{{Source: path}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "verbose", LevelVerbose.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "success", LevelSuccess.String())
}
