package sdk

import (
	"fmt"
	"time"
)

// Role is the authorization role carried by every user account.
type Role string

const (
	RoleAttendant Role = "ATTENDANT"
	RoleSeller    Role = "SELLER"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether the role is one of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAttendant, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: unknown role %q (expected ATTENDANT, SELLER or ADMIN)", ErrInvalidInput, s)
	}
	return role, nil
}

// User is the resolved identity of an authenticated account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Customer is a directory entry in the customer panel.
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Active          bool      `json:"active"`
	AttendanceCount int       `json:"attendanceCount,omitempty"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// AttendanceStatus tracks whether an attendance is still being handled.
type AttendanceStatus string

const (
	AttendanceOpen   AttendanceStatus = "OPEN"
	AttendanceClosed AttendanceStatus = "CLOSED"
)

// Valid reports whether the status is a known value.
func (s AttendanceStatus) Valid() bool {
	return s == AttendanceOpen || s == AttendanceClosed
}

// Channel is the contact channel an attendance arrived through.
type Channel string

const (
	ChannelCall     Channel = "CALL"
	ChannelEmail    Channel = "EMAIL"
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelMeeting  Channel = "MEETING"
	ChannelOther    Channel = "OTHER"
)

// Valid reports whether the channel is a known value.
func (c Channel) Valid() bool {
	switch c {
	case ChannelCall, ChannelEmail, ChannelWhatsApp, ChannelMeeting, ChannelOther:
		return true
	}
	return false
}

// AttendanceUser is the abbreviated user record embedded in an attendance.
type AttendanceUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Attendance is a ticket in the attendance log.
type Attendance struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId"`
	UserID     string           `json:"userId,omitempty"`
	Channel    Channel          `json:"channel"`
	Subject    string           `json:"subject"`
	Notes      string           `json:"notes,omitempty"`
	Status     AttendanceStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt,omitempty"`
	Customer   *Customer        `json:"customer,omitempty"`
	User       *AttendanceUser  `json:"user,omitempty"`
}
