package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL    = "https://firestore.googleapis.com"
	DefaultDatabaseID = "(default)"
	DefaultPageSize   = 1000

	statusNotFound = "NOT_FOUND"
)

// Config holds the settings for the Firestore REST client.
type Config struct {
	BaseURL             string
	ProjectID           string
	DatabaseID          string
	APIKey              string
	Timeout             time.Duration
	MaxRequestPerMinute int
}

// Client issues document CRUD calls against the Firestore REST API.
type Client interface {
	List(ctx context.Context, collection string, pageSize int) ([]Document, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	Create(ctx context.Context, collection string, doc Document) (*Document, error)
	// Patch updates exactly the fields named in mask; fields of doc outside the mask are ignored by the server
	// and fields in the mask but missing from doc are removed. It fails with apperror.ErrNotFound when the
	// document does not exist.
	Patch(ctx context.Context, collection, id string, doc Document, mask []string) (*Document, error)
	Delete(ctx context.Context, collection, id string) error
}

// Option customizes the client.
type Option func(*client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

type client struct {
	cfg            Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewClient creates a Firestore REST client.
func NewClient(cfg Config, log *logger.Logger, opts ...Option) Client {
	cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)
	if cfg.DatabaseID == "" {
		cfg.DatabaseID = DefaultDatabaseID
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.MaxRequestPerMinute))
	}

	c := &client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		requestLimiter: rate.NewLimiter(limit, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// normalizeBaseURL keeps only scheme and host: documentsPath adds the API version itself.
func normalizeBaseURL(raw string) string {
	base := strings.TrimRight(raw, "/")
	base = strings.TrimSuffix(base, "/v1")
	if base == "" {
		return DefaultBaseURL
	}
	return base
}

func (c *client) documentsPath(collection, id string) string {
	p := fmt.Sprintf("/v1/projects/%s/databases/%s/documents/%s",
		url.PathEscape(c.cfg.ProjectID), c.cfg.DatabaseID, url.PathEscape(collection))
	if id != "" {
		p += "/" + url.PathEscape(id)
	}
	return p
}

func (c *client) buildURL(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	if c.cfg.APIKey != "" {
		query.Set("key", c.cfg.APIKey)
	}
	u := c.cfg.BaseURL + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// List returns one page of documents of the collection, in store order.
func (c *client) List(ctx context.Context, collection string, pageSize int) ([]Document, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(pageSize))

	var resp listDocumentsResponse
	if err := c.do(ctx, "list", http.MethodGet, c.documentsPath(collection, ""), query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Documents == nil {
		return []Document{}, nil
	}
	return resp.Documents, nil
}

// Get reads one document.
func (c *client) Get(ctx context.Context, collection, id string) (*Document, error) {
	var doc Document
	if err := c.do(ctx, "get", http.MethodGet, c.documentsPath(collection, id), nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores a new document and returns it with its server-assigned name.
func (c *client) Create(ctx context.Context, collection string, doc Document) (*Document, error) {
	body := Document{Fields: doc.Fields}
	var created Document
	if err := c.do(ctx, "create", http.MethodPost, c.documentsPath(collection, ""), nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Patch updates the masked fields of an existing document.
func (c *client) Patch(ctx context.Context, collection, id string, doc Document, mask []string) (*Document, error) {
	query := url.Values{}
	for _, field := range mask {
		query.Add("updateMask.fieldPaths", field)
	}
	query.Set("currentDocument.exists", "true")

	body := Document{Fields: doc.Fields}
	var updated Document
	if err := c.do(ctx, "patch", http.MethodPatch, c.documentsPath(collection, id), query, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a document. The REST API treats deleting an absent document as success.
func (c *client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, c.documentsPath(collection, id), nil, nil, nil)
}

func (c *client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
	}

	if err := c.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return &apperror.TransportError{Op: op, Err: err}
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", op, err)
		}
		c.log.DebugContext(ctx, "Firestore request payload", append(fields, zap.ByteString("payload", b))...)
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), payload)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return &apperror.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to send request to Firestore", fields...)
		return &apperror.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to read response body from Firestore", fields...)
		return &apperror.TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		transportErr := &apperror.TransportError{Op: op, StatusCode: resp.StatusCode}
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			transportErr.Status = apiErr.Error.Status
			transportErr.Message = apiErr.Error.Message
		} else {
			transportErr.Message = string(respBody)
		}

		// A bare 404 without the NOT_FOUND status comes from a wrong URL, not a missing document.
		if resp.StatusCode == http.StatusNotFound && transportErr.Status == statusNotFound {
			c.log.DebugContext(ctx, "Firestore document not found", fields...)
			return apperror.NewNotFound("document", strings.TrimPrefix(path, c.documentsPath("", "")))
		}
		fields = append(fields, zap.Int("status_code", resp.StatusCode), zap.String("status", transportErr.Status))
		c.log.ErrorContext(ctx, "Received non-OK response from Firestore", fields...)
		return transportErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return apperror.NewMapping(op, fmt.Sprintf("invalid response body: %v", err))
	}
	return nil
}
