package panelapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubHTTPClient struct {
	sendFn func(method, url string, headers http.Header, body []byte) (int, []byte, error)
	getFn  func(url string, headers http.Header) (int, []byte, http.Header, error)

	lastMethod string
	lastURL    string
	lastBody   []byte
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) { return nil, nil }

func (s *stubHTTPClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	s.lastMethod = http.MethodGet
	s.lastURL = url
	return s.getFn(url, headers)
}

func (s *stubHTTPClient) Send(method, url string, headers http.Header, body []byte) (int, []byte, error) {
	s.lastMethod = method
	s.lastURL = url
	s.lastBody = body
	return s.sendFn(method, url, headers, body)
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectToken string
		expectError error
	}{
		{
			name:        "Successful login",
			status:      http.StatusOK,
			body:        `{"access_token":"tok-123"}`,
			expectToken: "tok-123",
		},
		{
			name:        "Bad credentials",
			status:      http.StatusUnauthorized,
			body:        `{"detail":"invalid username or password"}`,
			expectError: ErrAuthFailed,
		},
		{
			name:        "Malformed response",
			status:      http.StatusOK,
			body:        `{}`,
			expectError: ErrAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubHTTPClient{
				sendFn: func(method, url string, headers http.Header, body []byte) (int, []byte, error) {
					return tt.status, []byte(tt.body), nil
				},
			}
			client := New(stub)

			token, err := client.Authenticate("https://panel.example.com/", "admin", "secret")
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectToken, token)
			assert.Equal(t, "https://panel.example.com/api/admin/token", stub.lastURL)
		})
	}
}

func TestCreateUser(t *testing.T) {
	expire := int64(1900000000)
	limit := int64(5 << 30)

	tests := []struct {
		name        string
		status      int
		body        string
		expectError error
		expectAPI   bool
	}{
		{
			name:   "Created",
			status: http.StatusOK,
			body:   `{"username":"alice","expire":1900000000,"data_limit":5368709120,"creator_admin_id":7}`,
		},
		{
			name:        "Username conflict",
			status:      http.StatusConflict,
			body:        `{"detail":"User already exists"}`,
			expectError: ErrUsernameConflict,
		},
		{
			name:      "Upstream failure",
			status:    http.StatusInternalServerError,
			body:      `{"detail":"boom"}`,
			expectAPI: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubHTTPClient{
				sendFn: func(method, url string, headers http.Header, body []byte) (int, []byte, error) {
					return tt.status, []byte(tt.body), nil
				},
			}
			client := New(stub)

			user, err := client.CreateUser("https://panel.example.com", "tok", CreateUserParams{
				Username:       "alice",
				CreatorAdminID: 7,
				ExpireAt:       &expire,
				DataLimitBytes: &limit,
			})
			switch {
			case tt.expectError != nil:
				assert.ErrorIs(t, err, tt.expectError)
			case tt.expectAPI:
				var apiErr *APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Equal(t, "boom", apiErr.Detail)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, expire, user.Expire)
				assert.JSONEq(t, tt.body, string(user.Raw))

				var sent map[string]any
				assert.NoError(t, json.Unmarshal(stub.lastBody, &sent))
				assert.Equal(t, "alice", sent["username"])
				assert.Equal(t, float64(7), sent["admin_id"])
				assert.Equal(t, float64(limit), sent["data_limit"])
				assert.Equal(t, http.MethodPost, stub.lastMethod)
				assert.Equal(t, "https://panel.example.com/api/user", stub.lastURL)
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	stub := &stubHTTPClient{
		sendFn: func(method, url string, headers http.Header, body []byte) (int, []byte, error) {
			return http.StatusOK, []byte(`{"username":"bob","expire":42}`), nil
		},
	}
	client := New(stub)

	user, err := client.UpdateUser("https://panel.example.com", "tok", "bob", map[string]any{"expire": 42})
	assert.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, http.MethodPatch, stub.lastMethod)
	assert.Equal(t, "https://panel.example.com/api/user/bob", stub.lastURL)
}

func TestListUsers(t *testing.T) {
	body := `{"users":[
		{"username":"alice","creator_admin_id":7},
		{"username":"carol","creator_admin_id":9}
	]}`
	stub := &stubHTTPClient{
		getFn: func(url string, headers http.Header) (int, []byte, http.Header, error) {
			return http.StatusOK, []byte(body), nil, nil
		},
	}
	client := New(stub)

	users, err := client.ListUsers("https://panel.example.com", "tok")
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, 7, users[0].CreatorAdminID)
	assert.NotEmpty(t, users[1].Raw)
}

func TestGetUsage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectError error
	}{
		{
			name:   "Usage returned",
			status: http.StatusOK,
			body:   `{"download":100,"upload":50,"total":150,"data_limit":1000}`,
		},
		{
			name:        "User absent on panel",
			status:      http.StatusNotFound,
			body:        `{"detail":"User not found"}`,
			expectError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubHTTPClient{
				getFn: func(url string, headers http.Header) (int, []byte, http.Header, error) {
					return tt.status, []byte(tt.body), nil, nil
				},
			}
			client := New(stub)

			usage, err := client.GetUsage("https://panel.example.com", "tok", "alice")
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(150), usage.Total)
			assert.Equal(t, "https://panel.example.com/api/user/alice/usage", stub.lastURL)
		})
	}
}
