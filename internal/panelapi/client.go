package panelapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/panelmart/pkg/clients"
	"go.uber.org/zap"
)

var (
	ErrAuthFailed       = errors.New("panel authentication failed")
	ErrUsernameConflict = errors.New("username already exists on panel")
	ErrUserNotFound     = errors.New("user not found on panel")
)

// APIError carries the upstream status and detail for remote failures that
// are not one of the recognized sentinel cases.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("panel api error (HTTP %d): %s", e.StatusCode, e.Detail)
}

// UserPayload is the panel's user object. Raw keeps the verbatim response so
// the mirror can store it untouched.
type UserPayload struct {
	Username       string `json:"username"`
	Expire         int64  `json:"expire"`
	DataLimit      int64  `json:"data_limit"`
	CreatorAdminID int    `json:"creator_admin_id"`

	Raw json.RawMessage `json:"-"`
}

type Usage struct {
	Download  int64 `json:"download"`
	Upload    int64 `json:"upload"`
	Total     int64 `json:"total"`
	DataLimit int64 `json:"data_limit"`
}

type CreateUserParams struct {
	Username       string
	CreatorAdminID int
	Proxies        json.RawMessage
	Inbounds       json.RawMessage
	ExpireAt       *int64
	DataLimitBytes *int64
	TelegramID     string
	Note           string
}

type GatewayI interface {
	Authenticate(baseURL, username, password string) (string, error)
	CreateUser(baseURL, token string, params CreateUserParams) (*UserPayload, error)
	UpdateUser(baseURL, token, username string, fields map[string]any) (*UserPayload, error)
	ListUsers(baseURL, token string) ([]UserPayload, error)
	GetUsage(baseURL, token, username string) (*Usage, error)
}

type Client struct {
	client clients.HTTPClientI
}

func New(client clients.HTTPClientI) *Client {
	return &Client{client: client}
}

func apiURL(baseURL, path string) string {
	return strings.TrimSuffix(baseURL, "/") + path
}

func authHeaders(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	h.Set("Accept", "application/json")
	return h
}

func parseDetail(body []byte) string {
	var resp struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		return string(body)
	}
	var s string
	if err := json.Unmarshal(resp.Detail, &s); err == nil {
		return s
	}
	return string(resp.Detail)
}

func parseUser(body []byte) (*UserPayload, error) {
	var user UserPayload
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("can't parse panel user payload: %w", err)
	}
	if user.Username == "" {
		return nil, &APIError{StatusCode: http.StatusOK, Detail: "user payload missing username"}
	}
	user.Raw = json.RawMessage(body)
	return &user, nil
}

func (c *Client) Authenticate(baseURL, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.client.Send(http.MethodPost, apiURL(baseURL, "/api/admin/token"), headers, []byte(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("panel token request failed: %w", err)
	}
	if status != http.StatusOK {
		zap.L().Warn("panel authentication rejected", zap.Int("status", status))
		return "", fmt.Errorf("%w: HTTP %d: %s", ErrAuthFailed, status, parseDetail(body))
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.AccessToken == "" {
		return "", fmt.Errorf("%w: malformed token response", ErrAuthFailed)
	}
	return resp.AccessToken, nil
}

func (c *Client) CreateUser(baseURL, token string, params CreateUserParams) (*UserPayload, error) {
	payload := map[string]any{"username": params.Username}
	if params.Proxies != nil {
		payload["proxies"] = params.Proxies
	}
	if params.Inbounds != nil {
		payload["inbounds"] = params.Inbounds
	}
	if params.ExpireAt != nil {
		payload["expire"] = *params.ExpireAt
	}
	if params.DataLimitBytes != nil {
		payload["data_limit"] = *params.DataLimitBytes
	}
	if params.CreatorAdminID != 0 {
		payload["admin_id"] = params.CreatorAdminID
	}
	if params.TelegramID != "" {
		payload["tg_id"] = params.TelegramID
	}
	if params.Note != "" {
		payload["note"] = params.Note
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("can't marshal create payload: %w", err)
	}

	headers := authHeaders(token)
	headers.Set("Content-Type", "application/json")

	status, respBody, err := c.client.Send(http.MethodPost, apiURL(baseURL, "/api/user"), headers, body)
	if err != nil {
		return nil, fmt.Errorf("panel create request failed: %w", err)
	}
	switch {
	case status == http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", ErrUsernameConflict, parseDetail(respBody))
	case status != http.StatusOK && status != http.StatusCreated:
		return nil, &APIError{StatusCode: status, Detail: parseDetail(respBody)}
	}

	return parseUser(respBody)
}

func (c *Client) UpdateUser(baseURL, token, username string, fields map[string]any) (*UserPayload, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("can't marshal update payload: %w", err)
	}

	headers := authHeaders(token)
	headers.Set("Content-Type", "application/json")

	status, respBody, err := c.client.Send(http.MethodPatch, apiURL(baseURL, "/api/user/"+url.PathEscape(username)), headers, body)
	if err != nil {
		return nil, fmt.Errorf("panel update request failed: %w", err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, parseDetail(respBody))
	case status != http.StatusOK:
		return nil, &APIError{StatusCode: status, Detail: parseDetail(respBody)}
	}

	return parseUser(respBody)
}

func (c *Client) ListUsers(baseURL, token string) ([]UserPayload, error) {
	status, respBody, _, err := c.client.Get(apiURL(baseURL, "/api/users"), authHeaders(token))
	if err != nil {
		return nil, fmt.Errorf("panel list request failed: %w", err)
	}
	if status != http.StatusOK {
		return nil, &APIError{StatusCode: status, Detail: parseDetail(respBody)}
	}

	var resp struct {
		Users []json.RawMessage `json:"users"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("can't parse panel user list: %w", err)
	}

	users := make([]UserPayload, 0, len(resp.Users))
	for _, raw := range resp.Users {
		var user UserPayload
		if err := json.Unmarshal(raw, &user); err != nil {
			zap.L().Warn("skipping unparsable panel user", zap.Error(err))
			continue
		}
		user.Raw = raw
		users = append(users, user)
	}
	return users, nil
}

func (c *Client) GetUsage(baseURL, token, username string) (*Usage, error) {
	status, respBody, _, err := c.client.Get(apiURL(baseURL, "/api/user/"+url.PathEscape(username)+"/usage"), authHeaders(token))
	if err != nil {
		return nil, fmt.Errorf("panel usage request failed: %w", err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, parseDetail(respBody))
	case status != http.StatusOK:
		return nil, &APIError{StatusCode: status, Detail: parseDetail(respBody)}
	}

	var usage Usage
	if err := json.Unmarshal(respBody, &usage); err != nil {
		return nil, fmt.Errorf("can't parse usage response: %w", err)
	}
	return &usage, nil
}
