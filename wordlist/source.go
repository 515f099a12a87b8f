package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/antchfx/htmlquery"
	"github.com/lai323/vocabcard/category"
	"github.com/spf13/afero"
	"golang.org/x/net/html/charset"
)

const userAgent = "vocabcard/1.0 (+https://github.com/lai323/vocabcard)"

// Source retrieves the raw text of a category resource.
type Source interface {
	Fetch(ctx context.Context, id string) (string, error)
	// List reports the category ids the source can serve.
	List(ctx context.Context) ([]string, error)
}

// LoadError is returned when a resource cannot be retrieved. Status is the
// HTTP status code, or 0 when no response was received.
type LoadError struct {
	Category string
	Status   int
	Err      error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("Failed to load %s data: status %d", e.Category, e.Status)
	}
	return fmt.Sprintf("Failed to load %s data: %s", e.Category, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewSource picks an HTTP source for http(s) locations and a directory
// source otherwise.
func NewSource(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{
			BaseURL: location,
			Client:  &http.Client{Timeout: timeout},
		}
	}
	return &FsSource{Fs: afero.NewOsFs(), Dir: location}
}

type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s *HTTPSource) client() *http.Client {
	if s.Client == nil {
		return http.DefaultClient
	}
	return s.Client
}

func (s *HTTPSource) resourceURL(id string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + url.PathEscape(category.ResourcePath(id))
}

func (s *HTTPSource) get(ctx context.Context, rawurl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("user-agent", userAgent)
	req.Header.Set("accept", "text/csv,text/plain,text/html;q=0.9,*/*;q=0.8")
	req.Header.Set("cache-control", "max-age=0")
	return s.client().Do(req)
}

func (s *HTTPSource) Fetch(ctx context.Context, id string) (string, error) {
	resp, err := s.get(ctx, s.resourceURL(id))
	if err != nil {
		return "", &LoadError{Category: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &LoadError{Category: id, Status: resp.StatusCode, Err: fmt.Errorf("%s", resp.Status)}
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &LoadError{Category: id, Err: err}
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", &LoadError{Category: id, Err: err}
	}
	return string(b), nil
}

// List reads the index page at BaseURL and collects the links that name a
// resource.
func (s *HTTPSource) List(ctx context.Context) ([]string, error) {
	base := strings.TrimRight(s.BaseURL, "/") + "/"
	resp, err := s.get(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", base, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list %s: status %s", base, resp.Status)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", base, err)
	}
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", base, err)
	}

	seen := map[string]bool{}
	ids := []string{}
	for _, a := range htmlquery.Find(doc, `//a[@href]`) {
		href := htmlquery.SelectAttr(a, "href")
		if u, err := url.Parse(href); err == nil {
			href = u.Path
		}
		name, err := url.PathUnescape(path.Base(href))
		if err != nil {
			continue
		}
		id, ok := category.IDFromResource(name)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// FsSource serves resources from a directory.
type FsSource struct {
	Fs  afero.Fs
	Dir string
}

func (s *FsSource) Fetch(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &LoadError{Category: id, Err: err}
	}
	file := path.Join(s.Dir, category.ResourcePath(id))
	b, err := afero.ReadFile(s.Fs, file)
	if err != nil {
		return "", &LoadError{Category: id, Err: err}
	}
	return string(b), nil
}

func (s *FsSource) List(ctx context.Context) ([]string, error) {
	infos, err := afero.ReadDir(s.Fs, s.Dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Dir, err)
	}
	ids := []string{}
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if id, ok := category.IDFromResource(info.Name()); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
