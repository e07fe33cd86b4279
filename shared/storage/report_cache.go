package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

const cacheFileName = "channel_reports.json"

// ReportCache keeps channel reports on disk so repeated requests within the
// TTL are answered without re-fetching the channel.
type ReportCache struct {
	filePath string
	entries  map[string]CachedReport
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
}

// CachedReport is one cache entry as stored on disk.
type CachedReport struct {
	Key      string                `json:"key"`
	StoredAt time.Time             `json:"stored_at"`
	Report   *models.ChannelReport `json:"report"`
}

// NewReportCache opens the cache stored in dataDir, dropping expired entries.
func NewReportCache(dataDir string, ttl time.Duration) (*ReportCache, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cache := &ReportCache{
		filePath: filepath.Join(dataDir, cacheFileName),
		entries:  make(map[string]CachedReport),
		ttl:      ttl,
		now:      time.Now,
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load report cache: %w", err)
	}

	cache.cleanup()

	return cache, nil
}

// CacheKey normalizes a channel reference so "@Handle" and "@handle " share an entry.
func CacheKey(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

// Get returns the report stored under key if it is younger than the TTL.
func (c *ReportCache) Get(key string) (*models.ChannelReport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[CacheKey(key)]
	if !exists || !c.fresh(entry) {
		return nil, false
	}
	return entry.Report, true
}

// Put stores a report and persists the cache.
func (c *ReportCache) Put(key string, report *models.ChannelReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := CacheKey(key)
	c.entries[k] = CachedReport{Key: k, StoredAt: c.now(), Report: report}
	return c.save()
}

// Len returns the number of entries, including any that expired since load.
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Prune removes expired entries and persists the result.
func (c *ReportCache) Prune() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cleanup() == 0 {
		return nil
	}
	return c.save()
}

func (c *ReportCache) fresh(entry CachedReport) bool {
	return c.now().Sub(entry.StoredAt) < c.ttl
}

func (c *ReportCache) cleanup() int {
	removed := 0
	for key, entry := range c.entries {
		if !c.fresh(entry) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *ReportCache) load() error {
	file, err := os.Open(c.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	var stored []CachedReport
	if err := json.NewDecoder(file).Decode(&stored); err != nil {
		return fmt.Errorf("failed to decode cache data: %w", err)
	}

	for _, entry := range stored {
		c.entries[entry.Key] = entry
	}

	return nil
}

func (c *ReportCache) save() error {
	stored := make([]CachedReport, 0, len(c.entries))
	for _, entry := range c.entries {
		stored = append(stored, entry)
	}

	file, err := os.Create(c.filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stored)
}
