package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

const (
	signInPath = "/api/auth/signin"
	signUpPath = "/api/auth/signup"
	notesPath  = "/api/notes"

	maxResponseBytes = 4 << 20
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HTTPClient implements Client over the diary JSON API.
type HTTPClient struct {
	baseURL      string
	httpClient   *http.Client
	log          logging.Logger
	newRequestID func() string
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (for example "http://localhost:8080"). timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		log:          log,
		newRequestID: uuid.NewString,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, auth Header, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}

	requestID := c.newRequestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range auth {
		req.Header.Set(name, value)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started))

	return resp.StatusCode, respBody, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// messageFromBody extracts a user-facing message from an error or
// confirmation body: {"message": ...}, {"error": ...} or a bare JSON string.
func messageFromBody(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"message", "error"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	return ""
}

func newAuthError(status int, body []byte) *AuthError {
	msg := messageFromBody(body)
	if msg == "" {
		msg = fmt.Sprintf("request failed with status code %d", status)
	}
	return &AuthError{Status: status, Message: msg, Err: &RemoteError{Status: status, Body: string(body)}}
}

func (c *HTTPClient) SignIn(ctx context.Context, username, password string) ([]byte, error) {
	status, body, err := c.do(ctx, http.MethodPost, signInPath, nil, credentials{Username: username, Password: password})
	if err != nil {
		return nil, &AuthError{Message: err.Error(), Err: err}
	}
	if !isSuccess(status) {
		return nil, newAuthError(status, body)
	}
	return body, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, username, password string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, signUpPath, nil, credentials{Username: username, Password: password})
	if err != nil {
		return "", &AuthError{Message: err.Error(), Err: err}
	}
	if !isSuccess(status) {
		return "", newAuthError(status, body)
	}

	if msg := messageFromBody(body); msg != "" {
		return msg, nil
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *HTTPClient) ListNotes(ctx context.Context, auth Header) ([]models.Note, error) {
	status, body, err := c.do(ctx, http.MethodGet, notesPath, auth, nil)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if !isSuccess(status) {
		return nil, &RemoteError{Status: status, Body: string(body)}
	}

	var dtos []models.NoteDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	notes := make([]models.Note, 0, len(dtos))
	for _, d := range dtos {
		notes = append(notes, d.ToModel())
	}
	return notes, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, auth Header, content string) error {
	status, body, err := c.do(ctx, http.MethodPost, notesPath, auth, models.CreateNoteRequest{Content: content})
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	if !isSuccess(status) {
		return &RemoteError{Status: status, Body: string(body)}
	}
	return nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, auth Header, id int64) error {
	status, body, err := c.do(ctx, http.MethodDelete, notesPath+"/"+strconv.FormatInt(id, 10), auth, nil)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if !isSuccess(status) {
		return &RemoteError{Status: status, Body: string(body)}
	}
	return nil
}
