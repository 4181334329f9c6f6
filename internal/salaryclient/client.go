package salaryclient

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

	"go-payroll/internal/salary"
)

// Client talks to the salary REST API. Every method is a single request with
// no retry; callers decide how to surface a failure.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New expects baseURL to include the API prefix, e.g. http://host/api/v1.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Pagination struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  *Pagination     `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) GetStructure(ctx context.Context, employeeID string) (salary.EmployeeSalaryResponse, error) {
	var out salary.EmployeeSalaryResponse
	_, err := c.do(ctx, http.MethodGet, "/salary/"+url.PathEscape(employeeID)+"/structure", nil, nil, &out)
	return out, err
}

func (c *Client) GetMine(ctx context.Context) (salary.EmployeeSalaryResponse, error) {
	var out salary.EmployeeSalaryResponse
	_, err := c.do(ctx, http.MethodGet, "/salary/me", nil, nil, &out)
	return out, err
}

func (c *Client) List(ctx context.Context, page, pageSize int) ([]salary.StructureResponse, Pagination, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	path := "/salary"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []salary.StructureResponse
	meta, err := c.do(ctx, http.MethodGet, path, nil, nil, &out)
	if meta == nil {
		meta = &Pagination{}
	}
	return out, *meta, err
}

func (c *Client) SaveStructure(ctx context.Context, employeeID string, form StructureForm) (salary.EmployeeSalaryResponse, error) {
	var out salary.EmployeeSalaryResponse
	payload, err := form.payload()
	if err != nil {
		return out, err
	}
	_, err = c.do(ctx, http.MethodPut, "/salary/"+url.PathEscape(employeeID)+"/structure", payload, nil, &out)
	return out, err
}

// AddComponent sends idempotencyKey as Idempotency-Key when it is not empty,
// so a resubmitted form does not create a second line.
func (c *Client) AddComponent(ctx context.Context, employeeID string, form ComponentForm, idempotencyKey string) (salary.ComponentResponse, error) {
	var out salary.ComponentResponse
	payload, err := form.payload()
	if err != nil {
		return out, err
	}

	var header http.Header
	if idempotencyKey != "" {
		header = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}
	_, err = c.do(ctx, http.MethodPost, "/salary/"+url.PathEscape(employeeID)+"/components", payload, header, &out)
	return out, err
}

func (c *Client) UpdateComponent(ctx context.Context, employeeID, componentID string, patch ComponentPatch) (salary.ComponentResponse, error) {
	var out salary.ComponentResponse
	payload, err := patch.payload()
	if err != nil {
		return out, err
	}
	_, err = c.do(ctx, http.MethodPatch, componentPath(employeeID, componentID), payload, nil, &out)
	return out, err
}

func (c *Client) DeleteComponent(ctx context.Context, employeeID, componentID string) error {
	_, err := c.do(ctx, http.MethodDelete, componentPath(employeeID, componentID), nil, nil, nil)
	return err
}

func componentPath(employeeID, componentID string) string {
	return "/salary/" + url.PathEscape(employeeID) + "/components/" + url.PathEscape(componentID)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	header http.Header,
	out any,
) (*Pagination, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Code:    "HTTP_ERROR",
			Message: http.StatusText(resp.StatusCode),
		}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	return env.Meta, nil
}
