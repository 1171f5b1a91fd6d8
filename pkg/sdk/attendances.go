package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateAttendanceInput carries the fields of the attendance form.
type CreateAttendanceInput struct {
	CustomerID string           `json:"customerId"`
	Subject    string           `json:"subject"`
	Notes      string           `json:"notes,omitempty"`
	Channel    Channel          `json:"channel"`
	Status     AttendanceStatus `json:"status"`
}

// UpdateAttendanceInput carries an attendance edit. Zero-valued fields are
// left unchanged by the server.
type UpdateAttendanceInput struct {
	Subject string           `json:"subject,omitempty"`
	Notes   string           `json:"notes,omitempty"`
	Channel Channel          `json:"channel,omitempty"`
	Status  AttendanceStatus `json:"status,omitempty"`
}

// ListAttendances returns the attendance log.
func (c *Client) ListAttendances(ctx context.Context) ([]Attendance, error) {
	var attendances []Attendance
	if err := c.do(ctx, http.MethodGet, "/attendances", nil, &attendances); err != nil {
		return nil, err
	}
	return attendances, nil
}

// CreateAttendance opens a new attendance for a customer. Channel defaults
// to CALL and status to OPEN, mirroring the attendance form's defaults.
func (c *Client) CreateAttendance(ctx context.Context, input CreateAttendanceInput) (*Attendance, error) {
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	if input.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if input.Channel == "" {
		input.Channel = ChannelCall
	}
	if input.Status == "" {
		input.Status = AttendanceOpen
	}
	if !input.Channel.Valid() {
		return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, input.Channel)
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}

	var attendance Attendance
	if err := c.do(ctx, http.MethodPost, "/attendances", input, &attendance); err != nil {
		return nil, err
	}
	return &attendance, nil
}

// UpdateAttendance edits an existing attendance.
func (c *Client) UpdateAttendance(ctx context.Context, id string, input UpdateAttendanceInput) (*Attendance, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: attendance id is required", ErrInvalidInput)
	}
	if input.Channel != "" && !input.Channel.Valid() {
		return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, input.Channel)
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}

	var attendance Attendance
	if err := c.do(ctx, http.MethodPut, "/attendances/"+id, input, &attendance); err != nil {
		return nil, err
	}
	return &attendance, nil
}
