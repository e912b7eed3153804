package marketdata

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// memoryCache is an http.RoundTripper keeping successful GET responses in
// memory for a while.
type memoryCache struct {
	base    http.RoundTripper
	entries *cache.Cache
	log     *zap.Logger
}

// NewCachingTransport returns a transport keeping the successful GET
// responses of base for ttl. A nil base means http.DefaultTransport.
func NewCachingTransport(base http.RoundTripper, ttl time.Duration, log *zap.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &memoryCache{base: base, entries: cache.New(ttl, 2*ttl), log: log}
}

func (c *memoryCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := req.URL.String()
	if content, ok := c.entries.Get(key); ok {
		resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content.([]byte))), req)
		if err == nil { // Cache hit
			c.log.Debug("http-cache-hit", zap.String("url", key))
			return resp, nil
		}
		c.entries.Delete(key)
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.log.Debug("http-get", zap.String("url", key), zap.String("status", resp.Status))
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		c.log.Warn("http-cache-write", zap.String("url", key), zap.Error(err))
		return resp, nil
	}
	c.entries.SetDefault(key, content)
	return resp, nil
}
