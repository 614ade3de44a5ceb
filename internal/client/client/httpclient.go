package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// HTTPClient talks to the CreatorPilot REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for baseURL. Authenticated calls carry the
// token returned by tokens at the time of the request.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, common.ErrNoBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{next: http.DefaultTransport, tokens: tokens},
		},
	}, nil
}

// call sends one request and reads the whole answer. Only transport-level
// failures are returned as errors; status handling is left to the caller.
func (c *HTTPClient) call(ctx context.Context, method, path string, in any) (*response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", common.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrNetwork, path, err)
	}

	return &response{path: path, status: resp.StatusCode, body: data}, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) authenticate(ctx context.Context, path, email string, password []byte) (string, error) {
	resp, err := c.call(anonymous(ctx), http.MethodPost, path, credentials{Email: email, Password: string(password)})
	if err != nil {
		return "", err
	}

	var out struct {
		Token string `json:"token"`
		errorBody
	}
	if err := resp.decode(&out); err != nil {
		return "", err
	}
	if !resp.ok() || out.Token == "" {
		return "", &common.ServerError{Kind: common.ErrAuthentication, Status: resp.status, Message: out.text(msgAuthFailed)}
	}
	return out.Token, nil
}

// Login exchanges credentials for a session token.
func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	return c.authenticate(ctx, "/api/login", email, password)
}

// Register creates an account and returns its session token.
func (c *HTTPClient) Register(ctx context.Context, email string, password []byte) (string, error) {
	return c.authenticate(ctx, "/api/register", email, password)
}

// GenerateChapters asks the backend to split transcript into chapters.
func (c *HTTPClient) GenerateChapters(ctx context.Context, transcript string, format models.Format) (string, error) {
	in := struct {
		Transcript string        `json:"transcript"`
		Format     models.Format `json:"format"`
	}{transcript, format}

	resp, err := c.call(ctx, http.MethodPost, "/api/generate-chapters", in)
	if err != nil {
		return "", err
	}

	var out struct {
		Chapters string `json:"chapters"`
		errorBody
	}
	if err := resp.decode(&out); err != nil {
		return "", err
	}
	if !resp.ok() || out.Chapters == "" {
		return "", &common.ServerError{Kind: common.ErrRequest, Status: resp.status, Message: out.text(msgChaptersFailed)}
	}
	return out.Chapters, nil
}

// GenerateTitles asks the backend for title suggestions.
func (c *HTTPClient) GenerateTitles(ctx context.Context, transcript string) (string, error) {
	in := struct {
		Transcript string `json:"transcript"`
	}{transcript}

	resp, err := c.call(ctx, http.MethodPost, "/api/generate-titles", in)
	if err != nil {
		return "", err
	}

	var out struct {
		Titles string `json:"titles"`
		errorBody
	}
	if err := resp.decode(&out); err != nil {
		return "", err
	}
	if !resp.ok() || out.Titles == "" {
		return "", &common.ServerError{Kind: common.ErrRequest, Status: resp.status, Message: out.text(msgTitlesFailed)}
	}
	return out.Titles, nil
}

// GetProfile loads the current user's profile.
func (c *HTTPClient) GetProfile(ctx context.Context) (models.Profile, error) {
	resp, err := c.call(ctx, http.MethodGet, "/api/profile", nil)
	if err != nil {
		return models.Profile{}, err
	}
	if !resp.ok() {
		return models.Profile{}, resp.failure(common.ErrRequest, msgProfileFailed)
	}

	var p models.Profile
	if err := resp.decode(&p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// UpdateProfile stores p and returns the profile as saved by the server.
// A 2xx answer without a body echoes p back.
func (c *HTTPClient) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	resp, err := c.call(ctx, http.MethodPut, "/api/profile", p)
	if err != nil {
		return models.Profile{}, err
	}
	if !resp.ok() {
		return models.Profile{}, resp.failure(common.ErrRequest, msgProfileSave)
	}

	saved := p
	if err := resp.decode(&saved); err != nil {
		return models.Profile{}, err
	}
	return saved, nil
}

// ListHistory returns the current user's past generations.
func (c *HTTPClient) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	resp, err := c.call(ctx, http.MethodGet, "/api/history", nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.failure(common.ErrRequest, msgHistoryFailed)
	}

	records := make([]models.HistoryRecord, 0)
	if err := resp.decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteHistory removes one history record.
func (c *HTTPClient) DeleteHistory(ctx context.Context, id string) error {
	resp, err := c.call(ctx, http.MethodDelete, "/api/history/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.failure(common.ErrRequest, msgHistoryDelete)
	}
	return nil
}

// ListUsers returns the user directory. Requires an admin or owner token.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	resp, err := c.call(ctx, http.MethodGet, "/api/admin/users", nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.failure(common.ErrRequest, msgUsersFailed)
	}

	users := make([]models.UserSummary, 0)
	if err := resp.decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// ToggleAdmin flips the admin flag of user id and returns the server's
// record of that user.
func (c *HTTPClient) ToggleAdmin(ctx context.Context, id string) (models.UserSummary, error) {
	resp, err := c.call(ctx, http.MethodPut, "/api/admin/toggle-admin/"+url.PathEscape(id), nil)
	if err != nil {
		return models.UserSummary{}, err
	}
	if !resp.ok() {
		return models.UserSummary{}, resp.failure(common.ErrRequest, msgToggleFailed)
	}

	var out struct {
		User *models.UserSummary `json:"user"`
	}
	if err := resp.decode(&out); err != nil {
		return models.UserSummary{}, err
	}
	if out.User == nil {
		return models.UserSummary{}, fmt.Errorf("%w: toggle-admin response without user", common.ErrNetwork)
	}
	return *out.User, nil
}

var _ Client = (*HTTPClient)(nil)
