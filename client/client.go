// Package client is a typed Go client for the portfolio API. It builds its
// requests from the shared contract so the server and client cannot drift.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deepakagg123/deepakagg123.github.io/contract"
	"github.com/deepakagg123/deepakagg123.github.io/models"
)

// APIError is a non-2xx response decoded into the contract's error shape.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error (status %d, field %s): %s", e.StatusCode, e.Field, e.Message)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile fetches the site owner's profile.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, contract.ProfileGet, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile upserts the profile and returns the stored row.
func (c *Client) UpdateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	var updated models.Profile
	if err := c.do(ctx, contract.ProfileUpdate, nil, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Publications lists all publications, newest year first.
func (c *Client) Publications(ctx context.Context) ([]models.Publication, error) {
	var publications []models.Publication
	if err := c.do(ctx, contract.PublicationsList, nil, nil, &publications); err != nil {
		return nil, err
	}
	return publications, nil
}

// SelectedPublications lists only the publications flagged for the featured
// view. The filter is applied client-side, matching the home page rendering.
func (c *Client) SelectedPublications(ctx context.Context) ([]models.Publication, error) {
	publications, err := c.Publications(ctx)
	if err != nil {
		return nil, err
	}

	selected := publications[:0]
	for _, publication := range publications {
		if publication.IsSelected {
			selected = append(selected, publication)
		}
	}
	return selected, nil
}

func (c *Client) CreatePublication(ctx context.Context, publication models.Publication) (*models.Publication, error) {
	var created models.Publication
	if err := c.do(ctx, contract.PublicationsCreate, nil, publication, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePublication(ctx context.Context, id int, update models.UpdatePublication) (*models.Publication, error) {
	var updated models.Publication
	if err := c.do(ctx, contract.PublicationsUpdate, map[string]any{"id": id}, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePublication(ctx context.Context, id int) error {
	return c.do(ctx, contract.PublicationsDelete, map[string]any{"id": id}, nil, nil)
}

// Projects lists all projects.
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, contract.ProjectsList, nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	var created models.Project
	if err := c.do(ctx, contract.ProjectsCreate, nil, project, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int, update models.UpdateProject) (*models.Project, error) {
	var updated models.Project
	if err := c.do(ctx, contract.ProjectsUpdate, map[string]any{"id": id}, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.do(ctx, contract.ProjectsDelete, map[string]any{"id": id}, nil, nil)
}

// News lists all news items, newest first.
func (c *Client) News(ctx context.Context) ([]models.NewsItem, error) {
	var items []models.NewsItem
	if err := c.do(ctx, contract.NewsList, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateNews(ctx context.Context, item models.NewsItem) (*models.NewsItem, error) {
	var created models.NewsItem
	if err := c.do(ctx, contract.NewsCreate, nil, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteNews(ctx context.Context, id int) error {
	return c.do(ctx, contract.NewsDelete, map[string]any{"id": id}, nil, nil)
}

// do executes one contract operation: substitute path parameters, send the
// JSON body, and decode either the success shape into out or the error shape
// into an APIError.
func (c *Client) do(ctx context.Context, route contract.Route, params map[string]any, body, out any) error {
	url := c.baseURL + route.URL(params)

	var reqBody *bytes.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, url, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = "unparseable error response"
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
