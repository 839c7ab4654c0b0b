// Package remote fetches templates from a remote repository over HTTP.
//
// The repository exposes files at <rawURL>/<path> and a recursive listing at
// treeURL in the form {"tree":[{"path":"…","type":"blob"|"tree"}]}.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"

	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/manifest"
	"github.com/magicappdev/cli/internal/output"
)

// DefaultTimeout bounds a single request when no http.Client is supplied.
const DefaultTimeout = 30 * time.Second

// maxFileSize caps downloaded file bodies.
const maxFileSize = 4 << 20

// Entry is one item of the repository tree listing.
type Entry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type == "tree"
}

type treeResponse struct {
	Tree []Entry `json:"tree"`
}

// Client talks to a remote template repository. It never retries; callers
// decide on retry policy.
type Client struct {
	rawURL  string
	treeURL string
	http    *http.Client
	fs      afero.Fs
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithFs sets the filesystem Download writes to.
func WithFs(fs afero.Fs) Option {
	return func(cl *Client) {
		cl.fs = fs
	}
}

// NewClient creates a client for the repository at rawURL with tree listing
// at treeURL.
func NewClient(rawURL, treeURL string, opts ...Option) *Client {
	c := &Client{
		rawURL:  strings.TrimSuffix(rawURL, "/"),
		treeURL: treeURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultTimeout}
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	return c
}

// FetchFile returns the text of the file at p, relative to the repository root.
func (c *Client) FetchFile(ctx context.Context, p string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(p, "/"))
	if !filepath.IsLocal(clean) {
		return "", fmt.Errorf("%w: remote path %q", generator.ErrPathEscape, p)
	}
	body, err := c.get(ctx, c.rawURL+"/"+clean)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ListTree returns the repository listing.
func (c *Client) ListTree(ctx context.Context) ([]Entry, error) {
	body, err := c.get(ctx, c.treeURL)
	if err != nil {
		return nil, err
	}
	var resp treeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding tree listing: %w", oerrors.ErrConnectivity, err)
	}
	return resp.Tree, nil
}

// ListTemplates returns the names of top-level directories holding a
// template manifest, sorted.
func (c *Client) ListTemplates(ctx context.Context) ([]string, error) {
	entries, err := c.ListTree(ctx)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		dir, file := path.Split(e.Path)
		dir = strings.TrimSuffix(dir, "/")
		if file == manifest.FileName && dir != "" && !strings.Contains(dir, "/") {
			names = append(names, dir)
		}
	}
	slices.Sort(names)
	return names, nil
}

// FetchManifest downloads and decodes <name>/template.yaml.
func (c *Client) FetchManifest(ctx context.Context, name string) (*manifest.Manifest, error) {
	data, err := c.FetchFile(ctx, path.Join(name, manifest.FileName))
	if err != nil {
		return nil, err
	}
	m, err := manifest.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	return m, nil
}

// FetchTemplate downloads the template called name with all of its sources.
func (c *Client) FetchTemplate(ctx context.Context, name string) (generator.Template, error) {
	m, err := c.FetchManifest(ctx, name)
	if err != nil {
		return generator.Template{}, err
	}
	return m.Template(c.resolver(ctx, name))
}

// Download copies <name>/template.yaml and every source it references into
// dest, preserving the repository layout, so the result can be loaded with
// manifest.LoadFile.
func (c *Client) Download(ctx context.Context, name, dest string) (*manifest.Manifest, error) {
	raw, err := c.FetchFile(ctx, path.Join(name, manifest.FileName))
	if err != nil {
		return nil, err
	}
	m, err := manifest.Decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}

	files := map[string]string{manifest.FileName: raw}
	resolve := c.resolver(ctx, name)
	for _, f := range m.Files {
		if f.Source == "" {
			continue
		}
		text, err := resolve(f.Source)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", f.Path, err)
		}
		files[f.Source] = text
	}

	for rel, text := range files {
		target := filepath.Join(dest, filepath.FromSlash(path.Clean(rel)))
		if err := c.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		if err := afero.WriteFile(c.fs, target, []byte(text), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
	}
	output.Debug("downloaded template", "name", name, "dest", dest, "files", len(files))
	return m, nil
}

func (c *Client) resolver(ctx context.Context, name string) manifest.Resolver {
	return func(source string) (string, error) {
		clean := path.Clean(source)
		if !filepath.IsLocal(clean) {
			return "", fmt.Errorf("%w: source %q", generator.ErrPathEscape, source)
		}
		return c.FetchFile(ctx, path.Join(name, clean))
	}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	output.Debug("GET", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, oerrors.NewConnectivityError(
			err.Error(),
			map[string]string{"URL": url},
			"check your network connection and the remote.rawURL/remote.treeURL settings",
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: GET %s: %s", oerrors.ErrNotFound, url, resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", oerrors.ErrConnectivity, url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", oerrors.ErrConnectivity, url, err)
	}
	if len(body) > maxFileSize {
		return nil, oerrors.Wrap(oerrors.ErrValidation,
			fmt.Sprintf("GET %s: response exceeds %d bytes", url, maxFileSize))
	}
	return body, nil
}
