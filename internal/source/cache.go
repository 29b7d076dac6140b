package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"arkmotors/internal/sheets"
	"arkmotors/pkg/models"
)

// Cache holds loaded snapshots keyed by the signature of their backing
// files. A changed file gives a new signature, so stale snapshots are never
// returned; entries also expire after the TTL, which is the only way a
// Google Sheets source is refreshed.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	snapshot  *models.Snapshot
	expiresAt time.Time
}

// NewCache creates a snapshot cache. A TTL of zero disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Load returns the cached snapshot for the loader's sources or loads a new one
func (c *Cache) Load(ctx context.Context, l *Loader) (*models.Snapshot, error) {
	key := Signature(l.Source, l.LegacyDir)

	if snap, ok := c.get(key); ok {
		l.log.Debug().Str("origin", snap.Origin).Msg("Using cached snapshot")
		return snap, nil
	}

	snap, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.set(key, snap)
	return snap, nil
}

func (c *Cache) get(key string) (*models.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.snapshot, true
}

func (c *Cache) set(key string, snap *models.Snapshot) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{snapshot: snap, expiresAt: now.Add(c.ttl)}
}

// Len returns the number of cached snapshots, expired ones included
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Signature identifies the current state of a source pair: the sheet URL, or
// path, size and modification time of every workbook that would be read.
func Signature(source, legacyDir string) string {
	var b strings.Builder
	if sheets.IsSheetURL(source) {
		b.WriteString(source)
	} else if source != "" {
		b.WriteString(fileSignature(source))
	}

	if legacyDir != "" {
		for _, s := range LegacySchemas() {
			b.WriteByte('|')
			b.WriteString(fileSignature(filepath.Join(legacyDir, s.File)))
		}
	}
	return b.String()
}

func fileSignature(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return path + ":-"
	}
	return fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
}
