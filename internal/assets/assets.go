// Package assets loads files from the resource directory, caches them and
// optionally watches the directory for edits.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Manager reads files relative to a resource directory.
type Manager struct {
	root  string
	cache *Cache
	log   *zap.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewManager creates a manager rooted at dir.
func NewManager(dir string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		root:  dir,
		cache: NewCache(),
		log:   log,
	}
}

// Path joins name onto the resource directory.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.root, name)
}

// Load returns the contents of name, from the cache when possible.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	data, err := os.ReadFile(m.Path(name))
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", name, err)
	}
	m.cache.Set(name, data)
	return data, nil
}

// LoadText returns name as a string, or fallback when the file does not exist.
// Other read errors are returned.
func (m *Manager) LoadText(name, fallback string) (string, error) {
	data, err := m.Load(name)
	if errors.Is(err, os.ErrNotExist) {
		m.log.Debug("asset missing, using built-in", zap.String("name", name))
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Invalidate drops name from the cache.
func (m *Manager) Invalidate(name string) {
	m.cache.Delete(name)
}

// Cache returns the underlying cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Watch starts watching the resource directory. Each created, written,
// renamed or removed file is dropped from the cache and its name relative to
// the root is sent on Changes. Calling Watch twice is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(m.root); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", m.root, err)
	}

	m.watcher = w
	m.changes = make(chan string, 16)
	m.done = make(chan struct{})
	m.wg.Add(1)
	go m.run(w, m.changes, m.done)

	m.log.Info("watching assets", zap.String("dir", m.root))
	return nil
}

// Changes returns the change notifications. It is nil until Watch succeeds.
func (m *Manager) Changes() <-chan string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.changes
}

func (m *Manager) run(w *fsnotify.Watcher, changes chan<- string, done <-chan struct{}) {
	defer m.wg.Done()
	defer close(changes)

	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name, err := filepath.Rel(m.root, e.Name)
			if err != nil {
				name = filepath.Base(e.Name)
			}
			m.Invalidate(name)
			m.log.Debug("asset changed", zap.String("name", name), zap.Stringer("op", e.Op))

			select {
			case changes <- name:
			default:
				// The consumer drains once per frame; a full buffer already
				// guarantees a reload.
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			m.log.Warn("asset watcher error", zap.Error(err))

		case <-done:
			return
		}
	}
}

// Close stops the watcher and clears the cache.
func (m *Manager) Close() {
	m.mu.Lock()
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if w != nil {
		close(m.done)
		m.wg.Wait()
		w.Close()
	}
	m.cache.Clear()
}

// Cache is an in-memory cache of file contents.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an entry.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an entry.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Delete removes an entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear empties the cache and resets statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
