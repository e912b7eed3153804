package marketdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/etnz/bperf/date"
	"go.uber.org/zap"
)

// Options configures Open.
type Options struct {
	// Select is the jsonpath expression selecting the records when the source
	// is a single JSON document. Empty means the source is JSONL.
	Select string
	// Holidays are the days, on top of weekends, that are not business days.
	Holidays []date.Date
	// Client is used for http(s) sources. Nil means http.DefaultClient.
	Client *http.Client
	// Logger receives decoding events. Nil means no logging.
	Logger *zap.Logger
}

// Open reads a store from source, a file path or an http(s) URL.
func Open(ctx context.Context, source string, opts Options) (*Store, error) {
	s := NewStore(date.NewCalendar(opts.Holidays...), opts.Logger)

	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err := get(ctx, opts.Client, source)
		if err != nil {
			return nil, err
		}
		r = body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q for reading: %w", source, err)
		}
		r = f
	}
	defer r.Close()

	decode := s.Decode
	if opts.Select != "" {
		decode = func(name string, r io.Reader) error { return s.DecodeDocument(name, r, opts.Select) }
	}
	if err := decode(source, r); err != nil {
		return nil, err
	}
	return s, nil
}

// get performs an HTTP GET request and returns the response body.
func get(ctx context.Context, client *http.Client, addr string) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot http GET %s: %w", addr, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot http GET %s: %w", addr, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return resp.Body, nil
}
