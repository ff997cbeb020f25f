package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lecture-assistant/internal/audio"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup

	mu       sync.Mutex
	inflight map[string]bool
}

// Start handles recordings already waiting in the input directory, then
// monitors it for new ones until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Recording watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: .webm, .mp3, .wav, .ogg, .aac, .m4a and video (.mp4, .mov, .mkv, .avi, .m4v)")

	if err := w.enqueueExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Recording watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create == fsnotify.Create {
				if !w.isRecording(event.Name) {
					w.logger.Debug(ctx, "Ignoring non-recording file: %s", event.Name)
					continue
				}

				w.logger.Info(ctx, "New recording detected: %s", event.Name)

				// Small delay to ensure file is fully written
				time.Sleep(w.settleDelay)

				if err := w.dispatch(ctx, event.Name); err != nil {
					return err
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch runs the handler in a goroutine once a semaphore slot is free.
// A path already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, filePath string) error {
	if !w.claim(filePath) {
		w.logger.Debug(ctx, "Already processing: %s", filePath)
		return nil
	}

	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer func() { <-w.semaphore }() // Release semaphore
			defer w.release(filePath)

			if err := w.handler(ctx, filePath); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
			}
		}()
		return nil
	case <-ctx.Done():
		w.release(filePath)
		return ctx.Err()
	}
}

func (w *implWatcher) claim(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inflight[path] {
		return false
	}
	w.inflight[path] = true
	return true
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inflight, path)
}

func (w *implWatcher) enqueueExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		if !w.isRecording(path) {
			continue
		}
		w.logger.Info(ctx, "Pending recording found: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isRecording checks if the file has a supported audio or video extension
func (w *implWatcher) isRecording(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return audio.IsAudioFile(path) || audio.IsVideoFile(path)
}
