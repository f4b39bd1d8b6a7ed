package gymapi

import (
	"context"

	"gymdesk/models"
)

// LoginResult carries the token and the identity returned by POST /login.
// The identity is left raw; callers normalize it at the boundary.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.RawProfile `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and the account identity.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	err := c.Post(ctx, "/login", loginRequest{Email: email, Password: password}, &res)
	return res, err
}

// Me returns the identity bound to the currently attached token.
func (c *Client) Me(ctx context.Context) (models.RawProfile, error) {
	var raw models.RawProfile
	err := c.Get(ctx, "/me", &raw)
	return raw, err
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.Post(ctx, "/register", req, nil)
}
