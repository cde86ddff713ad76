package sentry_ext

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	// repeatWindow is how long an error stays muted after being sent.
	repeatWindow = 5 * time.Minute

	defaultCacheSize = 100
)

// cache remembers when errors were last sent to Sentry.
type cache struct {
	*lru.Cache
}

func newCache(size int) (*cache, error) {
	if size == 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &cache{c}, nil
}

// shouldCapture reports whether the error should be sent.
//
// Errors are keyed by a hash of their message. An error sent within the
// repeat window is skipped; otherwise its timestamp is refreshed.
func (c *cache) shouldCapture(err error) bool {
	h := md5.New()
	h.Write([]byte(err.Error()))
	hash := hex.EncodeToString(h.Sum(nil))

	now := time.Now()
	if lastSent, exists := c.Get(hash); exists {
		if now.Sub(lastSent.(time.Time)) < repeatWindow {
			return false
		}
	}

	c.Add(hash, now)
	return true
}
