package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// RegisterUserInput carries the fields of the admin panel's user form.
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateUserInput carries a user edit. Password is optional; when empty
// the server keeps the current one.
type UpdateUserInput struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// ListUsers returns all user accounts. ADMIN-only server-side.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// RegisterUser creates a new user account via POST /users/register.
func (c *Client) RegisterUser(ctx context.Context, input RegisterUserInput) (*User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if input.Role == "" {
		input.Role = RoleAttendant
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	var user User
	if err := c.do(ctx, http.MethodPost, "/users/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser edits an existing user account.
func (c *Client) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Role != "" && !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	var user User
	if err := c.do(ctx, http.MethodPut, "/users/"+id, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}
