package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/Slymcode/cipmn-crm/pkg/apierr"
	"github.com/Slymcode/cipmn-crm/pkg/fanout"
	"github.com/Slymcode/cipmn-crm/pkg/logger"
	"github.com/Slymcode/cipmn-crm/pkg/sessionstore"
)

// Gateway translates the uniform CRUD contract into REST calls against
// the backend. Zero value is not usable; use New.
type Gateway struct {
	cfg    Config
	store  sessionstore.Store
	client *http.Client
	log    *slog.Logger
}

// Option configures a Gateway at construction time.
type Option func(*Gateway)

// WithHTTPClient replaces the default HTTP client, e.g. for custom
// transports or tests.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.client = client
		}
	}
}

// WithLogger attaches a logger for request-level debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gateway) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Gateway over the given backend and session store.
func New(cfg Config, store sessionstore.Store, opts ...Option) (*Gateway, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if store == nil {
		return nil, ErrMissingStore
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	g := &Gateway{
		cfg:   cfg,
		store: store,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// APIURL returns the configured backend root.
func (g *Gateway) APIURL() string { return g.cfg.BaseURL }

// List fetches a page of a resource collection.
func (g *Gateway) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	body, err := g.send(ctx, apiRequest{
		method: http.MethodGet,
		path:   req.Resource,
		query:  req.query(),
	})
	if err != nil {
		return nil, err
	}

	var data []Record
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, apierr.New("", 0)
	}
	return &ListResult{Data: data, Total: len(data)}, nil
}

// GetOne fetches a single record by id.
func (g *Gateway) GetOne(ctx context.Context, req GetRequest) (Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	body, err := g.send(ctx, apiRequest{
		method: http.MethodGet,
		path:   req.Resource + "/" + req.ID,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Create creates a record.
func (g *Gateway) Create(ctx context.Context, req CreateRequest) (Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	body, err := g.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    req.Resource,
		payload: req.Variables,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Update partially updates a record.
func (g *Gateway) Update(ctx context.Context, req UpdateRequest) (Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	body, err := g.send(ctx, apiRequest{
		method:  http.MethodPatch,
		path:    req.Resource + "/" + req.ID,
		payload: req.Variables,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Delete removes a record and returns the deleted record when the backend
// echoes it back, or nil on an empty confirmation body.
func (g *Gateway) Delete(ctx context.Context, req DeleteRequest) (Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	body, err := g.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   req.Resource + "/" + req.ID,
	})
	if err != nil {
		return nil, err
	}
	return decodeDataEnvelope(body)
}

// GetMany fetches several records concurrently. Results follow the order
// of req.IDs, not completion order.
func (g *Gateway) GetMany(ctx context.Context, req GetManyRequest) ([]Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	return fanout.Collect(ctx, req.IDs, func(ctx context.Context, id string) (Record, error) {
		return g.GetOne(ctx, GetRequest{Resource: req.Resource, ID: id})
	})
}

// CreateMany creates several records concurrently, preserving item order.
func (g *Gateway) CreateMany(ctx context.Context, req CreateManyRequest) ([]Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	return fanout.Collect(ctx, req.Items, func(ctx context.Context, item map[string]any) (Record, error) {
		return g.Create(ctx, CreateRequest{Resource: req.Resource, Variables: item})
	})
}

// UpdateMany applies the same variables to every id concurrently via PUT,
// preserving id order.
func (g *Gateway) UpdateMany(ctx context.Context, req UpdateManyRequest) ([]Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	return fanout.Collect(ctx, req.IDs, func(ctx context.Context, id string) (Record, error) {
		body, err := g.send(ctx, apiRequest{
			method:  http.MethodPut,
			path:    req.Resource + "/" + id,
			payload: req.Variables,
		})
		if err != nil {
			return nil, err
		}
		return decodeRecord(body)
	})
}

// DeleteMany removes several records concurrently, preserving id order.
func (g *Gateway) DeleteMany(ctx context.Context, req DeleteManyRequest) ([]Record, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	return fanout.Collect(ctx, req.IDs, func(ctx context.Context, id string) (Record, error) {
		return g.Delete(ctx, DeleteRequest{Resource: req.Resource, ID: id})
	})
}

// Custom calls an arbitrary endpoint outside the resource convention and
// returns the raw response body, so binary endpoints (barcode images)
// work alongside JSON ones.
func (g *Gateway) Custom(ctx context.Context, req CustomRequest) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	return g.send(ctx, apiRequest{
		method:  req.Method,
		path:    strings.TrimLeft(req.Path, "/"),
		query:   req.Query,
		payload: req.Payload,
		headers: req.Headers,
	})
}

// apiRequest is the internal wire-request description shared by all
// operations.
type apiRequest struct {
	method  string
	path    string
	query   url.Values
	payload any
	headers map[string]string
}

// send executes one request: marshal, inject headers and credential,
// optional transport-fault retry, then normalize the response. The
// returned body is only valid when the error is nil.
func (g *Gateway) send(ctx context.Context, r apiRequest) ([]byte, error) {
	var payload []byte
	if r.payload != nil {
		var err error
		if payload, err = json.Marshal(r.payload); err != nil {
			return nil, apierr.Transport(err)
		}
	}

	reqURL := g.cfg.BaseURL + "/" + r.path
	if len(r.query) > 0 {
		reqURL += "?" + r.query.Encode()
	}

	start := time.Now()
	status, body, err := g.attemptWithRetry(ctx, r, reqURL, payload)
	if err != nil {
		g.log.DebugContext(ctx, "request failed",
			slog.String("method", r.method),
			slog.String("url", reqURL),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return nil, apierr.Transport(err)
	}

	g.log.DebugContext(ctx, "request completed",
		slog.String("method", r.method),
		slog.String("url", reqURL),
		slog.Int("status", status),
		slog.Duration("duration", time.Since(start)),
	)

	if apiErr := apierr.Normalize(status, body); apiErr != nil {
		return nil, apiErr
	}
	return body, nil
}

// attemptWithRetry wraps the raw attempt in bounded fibonacci backoff with
// jitter when retries are configured. Only transport faults are retried;
// any received response, whatever its status, stops the loop.
func (g *Gateway) attemptWithRetry(ctx context.Context, r apiRequest, reqURL string, payload []byte) (int, []byte, error) {
	if g.cfg.RetryAttempts <= 0 {
		return g.attempt(ctx, r, reqURL, payload)
	}

	interval := g.cfg.RetryInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	backoff := retry.WithMaxRetries(
		uint64(g.cfg.RetryAttempts),
		retry.WithJitterPercent(10, retry.NewFibonacci(interval)),
	)

	var status int
	var body []byte
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var attemptErr error
		status, body, attemptErr = g.attempt(ctx, r, reqURL, payload)
		if attemptErr != nil {
			return retry.RetryableError(attemptErr)
		}
		return nil
	})
	return status, body, err
}

// attempt performs a single HTTP round trip and reads the full body.
func (g *Gateway) attempt(ctx context.Context, r apiRequest, reqURL string, payload []byte) (int, []byte, error) {
	var reader io.Reader = http.NoBody
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, reqURL, reader)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if sess, err := g.store.Get(ctx); err == nil && sess.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}
	// Caller-supplied headers win, including Authorization overrides.
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func decodeRecord(body []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, apierr.New("", 0)
	}
	return rec, nil
}

// decodeDataEnvelope handles endpoints that wrap the record in a {data}
// envelope, falling back to a bare record or an empty confirmation body.
func decodeDataEnvelope(body []byte) (Record, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var envelope struct {
		Data Record `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	return decodeRecord(body)
}
