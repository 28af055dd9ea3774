package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// cacheSchemaVersion must change whenever CachePayload changes.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 value, compatible with source.File.Hash.
type Digest [32]byte

// CacheKey combines the content hash of a file with the fingerprint of
// the active rules.
func CacheKey(content Digest, fingerprint string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	_, _ = h.Write([]byte(fingerprint))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CachePayload is the stored lint result of one file.
type CachePayload struct {
	Schema   uint16
	Path     string
	Findings []CachedFinding
}

// CachedFinding is a violation before line resolution and directives.
type CachedFinding struct {
	Rule        string
	Description string
	Kind        uint8
	Error       CachedError
	Start, End  uint32
}

// CachedError mirrors rules.ViolationError.
type CachedError struct {
	Kind      uint8
	Tag       uint8
	CustomTag string
	Name      string
	Msg       string
}

// Cache stores lint results on disk keyed by CacheKey. It is safe for
// concurrent use; a nil *Cache is a disabled cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache opens the cache under $XDG_CACHE_HOME/<app>, falling back to
// ~/.cache/<app>.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "locating cache directory")
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenCacheDir(filepath.Join(base, app))
}

// OpenCacheDir opens a cache rooted at dir.
func OpenCacheDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating cache directory %s", dir)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) Dir() string { return c.dir }

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "lint", hexKey[:2], hexKey+".mp")
}

// Put writes payload under key, replacing any previous entry atomically.
func (c *Cache) Put(key Digest, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrap(err, "creating cache entry directory")
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating cache entry")
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = errors.Wrap(rmErr, "removing temporary cache entry")
		}
	}()

	payload.Schema = cacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "encoding cache entry")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing cache entry")
	}
	return errors.Wrap(os.Rename(f.Name(), p), "storing cache entry")
}

// Get reads the payload stored under key. Entries written with another
// schema version are reported as missing.
func (c *Cache) Get(key Digest) (*CachePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "opening cache entry")
	}
	defer f.Close()

	var payload CachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, errors.Wrap(err, "decoding cache entry")
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll removes every entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return errors.Wrap(os.RemoveAll(filepath.Join(c.dir, "lint")), "clearing cache")
}
