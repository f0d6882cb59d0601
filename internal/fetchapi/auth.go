package fetchapi

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login opens a session. On success the service sets an HttpOnly cookie that
// the client's jar replays on every later call.
func (c *Client) Login(ctx context.Context, name, email string) error {
	return c.doRequest(ctx, OpLogin, http.MethodPost, "/auth/login", loginRequest{Name: name, Email: email}, nil)
}

// Logout ends the session on the service.
func (c *Client) Logout(ctx context.Context) error {
	return c.doRequest(ctx, OpLogout, http.MethodPost, "/auth/logout", nil, nil)
}
