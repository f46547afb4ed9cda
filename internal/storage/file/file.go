// Package file stores each key as a JSON file in a data directory, the layout
// used for data/projects.json.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"portfolio.dev/internal/storage"
)

const fileExt = ".json"

// Store reads <dir>/<key>.json on demand. While Watch is running, reads are
// cached and invalidated by filesystem events.
type Store struct {
	dir    string
	logger *zap.Logger

	mu       sync.RWMutex
	cache    map[string][]byte
	gen      uint64
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	doneCh   chan struct{}
	watching bool
}

// Open creates a Store rooted at dir, creating the directory if needed.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{
		dir:    filepath.Clean(dir),
		logger: logger,
		cache:  make(map[string][]byte),
	}, nil
}

// Path returns the file backing key.
func (s *Store) Path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

// Get returns the contents of the file for key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	cached, ok := s.cache[key]
	watching, gen := s.watching, s.gen
	s.mu.RUnlock()
	if ok {
		return append([]byte(nil), cached...), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if watching {
		s.mu.Lock()
		// An event that arrived during the read makes data possibly stale.
		if s.watching && s.gen == gen {
			s.cache[key] = data
		}
		s.mu.Unlock()
	}
	return append([]byte(nil), data...), nil
}

// Put writes value to the file for key through a temp file and rename.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.Path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", path, err)
	}

	s.invalidate(key)
	return nil
}

// Watch starts invalidating cached reads when files in the data directory
// change. It returns immediately; call Close to stop.
func (s *Store) Watch(ctx context.Context) error {
	s.mu.Lock()
	if s.watcher != nil {
		s.mu.Unlock()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		s.mu.Unlock()
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	s.watcher = watcher
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.watching = true
	s.mu.Unlock()

	s.logger.Info("watching data directory", zap.String("dir", s.dir))
	go s.run(ctx, watcher, s.stopCh, s.doneCh)
	return nil
}

// Close stops the watcher, if any.
func (s *Store) Close() error {
	s.mu.Lock()
	watcher := s.watcher
	if watcher == nil {
		s.mu.Unlock()
		return nil
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.watcher = nil
	s.watching = false
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	close(stopCh)
	<-doneCh
	return watcher.Close()
}

func (s *Store) run(ctx context.Context, watcher *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	for {
		select {
		case <-ctx.Done():
			// Without events the cache can no longer be trusted.
			s.mu.Lock()
			s.watching = false
			s.mu.Unlock()
			s.flush()
			return
		case <-stopCh:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("data directory watch error", zap.Error(err))
			s.flush()
		}
	}
}

func (s *Store) handleEvent(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, fileExt) || strings.HasPrefix(name, ".") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	key := strings.TrimSuffix(name, fileExt)
	s.logger.Debug("data file changed", zap.String("key", key), zap.String("op", event.Op.String()))
	s.invalidate(key)
}

func (s *Store) invalidate(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.gen++
	s.mu.Unlock()
}

func (s *Store) flush() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.gen++
	s.mu.Unlock()
}
