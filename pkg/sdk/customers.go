package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateCustomerInput carries the fields of the customer form.
type CreateCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UpdateCustomerInput carries a customer edit. Active is a pointer so the
// active/inactive toggle can be flipped independently of the other fields.
type UpdateCustomerInput struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// ListCustomers returns the full customer directory.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer fetches one customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	var customer Customer
	if err := c.do(ctx, http.MethodGet, "/customers/"+id, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer registers a new customer.
func (c *Client) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*Customer, error) {
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: customer name and email are required", ErrInvalidInput)
	}
	var customer Customer
	if err := c.do(ctx, http.MethodPost, "/customers", input, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer edits an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id string, input UpdateCustomerInput) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	var customer Customer
	if err := c.do(ctx, http.MethodPut, "/customers/"+id, input, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}
