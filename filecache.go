package pompub

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

type fileCacheEntry struct {
	partial  Partial
	warnings []LoadWarning
	modTime  time.Time
}

// FileCache memoizes parsed file-backed sources keyed by absolute path.
// An entry stays valid while its recorded modification time is not older
// than the file's current one; touching the file invalidates it on the next
// call. The cache is safe for concurrent callers: parallel subprojects
// asking for the same file share a single in-flight parse.
//
// A cache lives for as long as its owner keeps it: the package default
// engine holds one for the whole process, tests construct their own for
// isolation. Entries are never explicitly evicted.
type FileCache struct {
	parse func(path string) (Partial, []LoadWarning, error)

	mu      sync.RWMutex
	entries map[string]fileCacheEntry
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewFileCache returns an empty cache backed by the properties-file parser.
func NewFileCache() *FileCache {
	return &FileCache{
		parse:   parsePropertiesFile,
		entries: make(map[string]fileCacheEntry),
	}
}

// Hits returns how many calls were answered from cache.
func (c *FileCache) Hits() int64 {
	return c.hits.Load()
}

// Misses returns how many calls required a fresh parse.
func (c *FileCache) Misses() int64 {
	return c.misses.Load()
}

// GetOrLoad returns the parsed partial for the properties file at path,
// from cache when the file has not changed since it was parsed.
//
// Absence and unreadability are not errors: a missing file yields an empty
// partial, an unreadable or non-regular file an empty partial plus a
// warning. The returned error is reserved for being unable to resolve the
// path at all.
func (c *FileCache) GetOrLoad(path string) (Partial, []LoadWarning, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Partial{}, nil, fmt.Errorf("resolve properties path %s: %w", path, err)
	}

	fi, statErr := os.Stat(abs)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return Partial{}, nil, nil
		}
		return Partial{}, []LoadWarning{{
			Source:  SourceProperties,
			Path:    abs,
			Message: fmt.Sprintf("cannot stat properties file: %v", statErr),
		}}, nil
	}
	if !fi.Mode().IsRegular() {
		return Partial{}, []LoadWarning{{
			Source:  SourceProperties,
			Path:    abs,
			Message: "properties path is not a regular file",
		}}, nil
	}

	c.mu.RLock()
	entry, ok := c.entries[abs]
	c.mu.RUnlock()
	if ok && !entry.modTime.Before(fi.ModTime()) {
		c.hits.Add(1)
		return entry.partial.Clone(), append([]LoadWarning(nil), entry.warnings...), nil
	}

	c.misses.Add(1)
	v, _, _ := c.group.Do(abs, func() (any, error) {
		// Another caller may have finished the load while we queued.
		c.mu.RLock()
		e, cached := c.entries[abs]
		c.mu.RUnlock()
		if cached && !e.modTime.Before(fi.ModTime()) {
			return e, nil
		}

		partial, warnings, parseErr := c.parse(abs)
		if parseErr != nil {
			partial = Partial{}
			warnings = append(warnings, LoadWarning{
				Source:  SourceProperties,
				Path:    abs,
				Message: fmt.Sprintf("cannot read properties file: %v", parseErr),
			})
		}
		e = fileCacheEntry{partial: partial, warnings: warnings, modTime: fi.ModTime()}

		c.mu.Lock()
		c.entries[abs] = e
		c.mu.Unlock()
		return e, nil
	})

	entry = v.(fileCacheEntry)
	return entry.partial.Clone(), append([]LoadWarning(nil), entry.warnings...), nil
}
