package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// LoginRequest is the payload for /auth/login/.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// RegisterRequest is the payload for /auth/register/.
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Login authenticates with the backend and persists the resulting
// session. On rejection the session stays anonymous and nothing is
// persisted.
func (c *Client) Login(ctx context.Context, username, password string, rememberMe bool) (*domain.User, error) {
	c.session.SetAuthenticating()

	var resp struct {
		Access  string       `json:"access"`
		Refresh string       `json:"refresh,omitempty"`
		User    *domain.User `json:"user,omitempty"`
	}
	err := c.post(ctx, "/auth/login/", LoginRequest{Username: username, Password: password, RememberMe: rememberMe}, &resp)
	if err != nil {
		c.session.SetAnonymous()
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	if resp.Access == "" {
		c.session.SetAnonymous()
		return nil, fmt.Errorf("client.Login: no access token in response")
	}

	user := resp.User
	if user == nil {
		user = &domain.User{Username: username}
	}
	if err := c.session.SetAuthenticated(resp.Access, resp.Refresh, *user); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return user, nil
}

// Register creates a new account. Validation failures come back as an
// *APIError with a field-error map.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if err := c.post(ctx, "/auth/register/", req, nil); err != nil {
		return fmt.Errorf("client.Register: %w", err)
	}
	return nil
}

// Logout tells the server best-effort, then clears local credentials
// unconditionally.
func (c *Client) Logout(ctx context.Context) error {
	c.doJSON(ctx, http.MethodPost, "/auth/logout/", nil, nil, nil) //nolint:errcheck // server-side logout is best-effort
	if err := c.session.Clear(); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}
