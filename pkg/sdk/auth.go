package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// LoginInput carries the credentials for password authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the server's answer to a successful login: the bearer
// token plus the identity it represents, so no extra round trip is needed.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login authenticates against POST /users/login. It performs no local
// validation and no persistence; the Session layers both on top.
func (c *Client) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	var result LoginResult
	if err := c.doRaw(ctx, http.MethodPost, "/users/login", input, &result, false); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login response contained no token")
	}
	return &result, nil
}

// Me resolves the current bearer token to the identity it represents via
// GET /users/me.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
