package rollcallsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the public endpoints of a rollcall server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthSession is an authenticated handle holding a bearer credential.
type AuthSession struct {
	client *Client
	token  string
	auth   AuthResponse
}

// NewAuthSession wraps an existing bearer credential.
func (c *Client) NewAuthSession(token string) *AuthSession {
	return &AuthSession{client: c, token: token, auth: AuthResponse{Token: token}}
}

// Token returns the bearer credential.
func (s *AuthSession) Token() string { return s.token }

// Login returns the response of the login that created the session.
func (s *AuthSession) Login() AuthResponse { return s.auth }

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RequestOTP(ctx context.Context, phone string) (*RequestOTPResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/request-otp", "", RequestOTPRequest{Phone: phone})
	if err != nil {
		return nil, err
	}
	var out RequestOTPResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (*AuthSession, error) {
	return c.login(ctx, "/api/auth/verify-otp", VerifyOTPRequest{Phone: phone, Code: code}, http.StatusOK)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthSession, error) {
	return c.login(ctx, "/api/auth/register", req, http.StatusCreated)
}

func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthSession, error) {
	return c.login(ctx, "/api/auth/login", LoginRequest{Identifier: identifier, Password: password}, http.StatusOK)
}

func (c *Client) AdminLogin(ctx context.Context, username, password string) (*AuthSession, error) {
	return c.login(ctx, "/api/admin/login", AdminLoginRequest{Username: username, Password: password}, http.StatusOK)
}

func (c *Client) login(ctx context.Context, path string, body any, status int) (*AuthSession, error) {
	resp, err := c.do(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := decodeJSON(resp, &out, status); err != nil {
		return nil, err
	}
	return &AuthSession{client: c, token: out.Token, auth: out}, nil
}
