package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/npillmayer/aoc/config"
	"golang.org/x/time/rate"
)

// Literal is an input source providing a fixed text for every puzzle.
type Literal string

// Input returns the literal text.
func (l Literal) Input(context.Context, int, int) (string, error) {
	return string(l), nil
}

// ErrNoSession is flagged if input has to be fetched, but no session
// credentials file can be found.
var ErrNoSession = errors.New("input: no session credentials found")

// HTTPError is returned for a non-success HTTP response.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("input: GET %s: %s", e.URL, e.Status)
}

// Temporary reports whether a retry might succeed.
func (e *HTTPError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Loader acquires puzzle inputs from a local cache, fetching and caching
// them if necessary.
type Loader struct {
	CacheRoot   string       // puzzle files are cached in <CacheRoot>/aoc/<year>/
	BaseURL     string       // puzzle site, e.g. https://adventofcode.com
	SessionFile string       // name of the credentials file
	SearchDir   string       // directory to start the credentials search from; "" is the working dir
	Client      *http.Client // nil means http.DefaultClient
	Limiter     *rate.Limiter
	MaxTries    uint

	backoff func() backoff.BackOff // for tests
}

// NewLoader creates a loader from a configuration.
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		CacheRoot:   cfg.CacheDir,
		BaseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		SessionFile: cfg.SessionFile,
		Client:      &http.Client{Timeout: 30 * time.Second},
		Limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		MaxTries:    uint(cfg.MaxTries),
	}
}

// CachePath is the path of the cache file for a puzzle's input.
func (l *Loader) CachePath(year, day int) string {
	return filepath.Join(l.CacheRoot, "aoc", fmt.Sprint(year), fmt.Sprintf("day%02d", day))
}

// DescriptionPath is the path of the cache file for a puzzle's description.
func (l *Loader) DescriptionPath(year, day int) string {
	return l.CachePath(year, day) + ".html"
}

// Input returns the input text for a puzzle, from the cache if possible.
func (l *Loader) Input(ctx context.Context, year, day int) (string, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", l.BaseURL, year, day)
	return l.cachedOrFetch(ctx, l.CachePath(year, day), url)
}

// Description returns the HTML page describing a puzzle, from the cache if
// possible.
func (l *Loader) Description(ctx context.Context, year, day int) (string, error) {
	url := fmt.Sprintf("%s/%d/day/%d", l.BaseURL, year, day)
	return l.cachedOrFetch(ctx, l.DescriptionPath(year, day), url)
}

func (l *Loader) cachedOrFetch(ctx context.Context, path, url string) (string, error) {
	content, err := os.ReadFile(path)
	if err == nil {
		tracer().Debugf("using cached %s", path)
		return string(content), nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	session, err := l.session()
	if err != nil {
		return "", err
	}
	body, err := l.fetch(ctx, url, session)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return "", err
	}
	tracer().Infof("cached %d bytes from %s in %s", len(body), url, path)
	return string(body), nil
}

// session reads the session token from the nearest credentials file.
func (l *Loader) session() (string, error) {
	dir := l.SearchDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	path, err := config.FindUpwards(dir, l.SessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: no file %s in %s or its parents", ErrNoSession, l.SessionFile, dir)
	} else if err != nil {
		return "", err
	}
	token, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if s := strings.TrimSpace(string(token)); s != "" {
		return s, nil
	}
	return "", fmt.Errorf("%w: %s is empty", ErrNoSession, path)
}

// fetch GETs url, retrying transient failures.
func (l *Loader) fetch(ctx context.Context, url, session string) ([]byte, error) {
	tries := l.MaxTries
	if tries == 0 {
		tries = 1
	}
	var b backoff.BackOff = backoff.NewExponentialBackOff()
	if l.backoff != nil {
		b = l.backoff()
	}
	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		if l.Limiter != nil {
			if err := l.Limiter.Wait(ctx); err != nil {
				return nil, backoff.Permanent(err)
			}
		}
		tracer().Debugf("GET %s (attempt %d)", url, attempt)
		body, err := l.get(ctx, url, session)
		var herr *HTTPError
		if errors.As(err, &herr) && !herr.Temporary() {
			return nil, backoff.Permanent(err)
		}
		return body, err
	}
	notify := func(err error, wait time.Duration) {
		tracer().Infof("fetching %s failed: %v; retrying in %v", url, err, wait)
	}
	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(tries),
		backoff.WithNotify(notify),
	)
}

func (l *Loader) get(ctx context.Context, url, session string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	req.Header.Set("User-Agent", "github.com/npillmayer/aoc")
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &HTTPError{URL: url, StatusCode: res.StatusCode, Status: res.Status}
	}
	return io.ReadAll(res.Body)
}
