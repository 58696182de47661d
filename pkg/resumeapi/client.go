// Package resumeapi is a thin client for the resumes backend REST API.
package resumeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/artem13815/resumeboard/pkg/resume"
)

// Error is returned for any non-2xx response.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed %d: %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("request failed %d: %s", e.Status, e.Body)
}

var reAbsolute = regexp.MustCompile(`(?i)^https?://`)

// Client talks to the resumes backend. Base URL and token may be changed at runtime.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	token   string
	httpDo  *http.Client
}

func New(baseURL, token string) *Client {
	// no client timeout: calls are bounded by ctx only
	c := &Client{httpDo: &http.Client{}}
	c.Configure(baseURL, token)
	return c
}

// WithHTTPClient replaces the underlying http.Client (tests, custom transports).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.httpDo = h
	return c
}

// Configure sets the base URL (trailing slash dropped) and the bearer token.
func (c *Client) Configure(baseURL, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	c.token = strings.TrimSpace(token)
}

func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

func (c *Client) url(path string) string {
	if reAbsolute.MatchString(path) {
		return path
	}
	base := c.BaseURL()
	p := strings.TrimPrefix(path, "/")
	if base == "" {
		return "/" + p
	}
	return base + "/" + p
}

// ListParams are the list query parameters; zero values are omitted.
type ListParams struct {
	Search   string
	Position string
	Sort     string
	Page     int
	PerPage  int
}

func (p ListParams) query() string {
	v := url.Values{}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Position != "" {
		v.Set("position", p.Position)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("perPage", strconv.Itoa(p.PerPage))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ListResumes returns the backend's resumes, or nil, nil when it answers 204.
func (c *Client) ListResumes(ctx context.Context, p ListParams) ([]resume.Record, error) {
	var out []resume.Record
	ok, err := c.do(ctx, http.MethodGet, "/api/resumes"+p.query(), nil, &out)
	if err != nil || !ok {
		return nil, err
	}
	return out, nil
}

// GetResume returns nil, nil when the backend answers 204.
func (c *Client) GetResume(ctx context.Context, id string) (*resume.Record, error) {
	var out resume.Record
	ok, err := c.do(ctx, http.MethodGet, "/api/resumes/"+url.PathEscape(id), nil, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// CreateResume posts metadata and returns the created record.
func (c *Client) CreateResume(ctx context.Context, metadata any) (*resume.Record, error) {
	var out resume.Record
	ok, err := c.do(ctx, http.MethodPost, "/api/resumes", metadata, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResume(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/resumes/"+url.PathEscape(id), nil, nil)
	return err
}

// Presigned is the presign endpoint's answer.
type Presigned struct {
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
	PublicURL string `json:"publicUrl"`
}

func (c *Client) PresignUpload(ctx context.Context, filename, contentType string) (*Presigned, error) {
	body := map[string]string{"filename": filename, "contentType": contentType}
	var out Presigned
	ok, err := c.do(ctx, http.MethodPost, "/api/uploads/presign", body, &out)
	if err != nil {
		return nil, err
	}
	if !ok || out.UploadURL == "" {
		return nil, fmt.Errorf("presign %s: empty upload url", filename)
	}
	return &out, nil
}

// PutPresigned uploads the file body to a presigned URL. No bearer token is attached.
func (c *Client) PutPresigned(ctx context.Context, uploadURL, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// UploadPDF is the fallback upload: a multipart form with the file under "file".
// The created resource is decoded into a record.
func (c *Client) UploadPDF(ctx context.Context, filename, contentType string, file io.Reader) (*resume.Record, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read upload %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/uploads", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	var out resume.Record
	ok, err := c.send(req, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do sends a JSON request. ok is false when the response had no content.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return false, err
		}
		body = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return false, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) (bool, error) {
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return false, err
	}
	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return true, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	data, _ := io.ReadAll(resp.Body)
	return &Error{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
}
