package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

func TestCreateAttendanceDefaults(t *testing.T) {
	var got sdk.CreateAttendanceInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/attendances", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(sdk.Attendance{
			ID:         "a1",
			CustomerID: got.CustomerID,
			Subject:    got.Subject,
			Channel:    got.Channel,
			Status:     got.Status,
		})
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	attendance, err := client.CreateAttendance(context.Background(), sdk.CreateAttendanceInput{
		CustomerID: "c1",
		Subject:    "Pedido atrasado",
	})
	require.NoError(t, err)

	// Form defaults: new attendances open on the CALL channel.
	assert.Equal(t, sdk.ChannelCall, got.Channel)
	assert.Equal(t, sdk.AttendanceOpen, got.Status)
	assert.Equal(t, "a1", attendance.ID)
}

func TestUpdateCustomerActiveToggle(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/customers/c1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(sdk.Customer{ID: "c1", Name: "Loja Azul", Email: "contato@azul.com", Active: false})
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	inactive := false
	customer, err := client.UpdateCustomer(context.Background(), "c1", sdk.UpdateCustomerInput{Active: &inactive})
	require.NoError(t, err)

	// Only the toggle goes over the wire; untouched fields stay out of the body.
	assert.Equal(t, map[string]any{"active": false}, body)
	assert.False(t, customer.Active)
}

func TestListUsersAndDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]sdk.User{
			{ID: "1", Name: "Ana", Email: "ana@example.com", Role: sdk.RoleAdmin},
			{ID: "2", Name: "Bia", Email: "bia@example.com", Role: sdk.RoleAttendant},
		})
	})
	deleted := ""
	mux.HandleFunc("DELETE /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, sdk.RoleAdmin, users[0].Role)

	require.NoError(t, client.DeleteUser(context.Background(), "2"))
	assert.Equal(t, "2", deleted)
}

func TestRegisterUserDefaultsRole(t *testing.T) {
	var got sdk.RegisterUserInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(sdk.User{ID: "3", Name: got.Name, Email: got.Email, Role: got.Role})
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	user, err := client.RegisterUser(context.Background(), sdk.RegisterUserInput{
		Name:     "Caio",
		Email:    "caio@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, sdk.RoleAttendant, got.Role)
	assert.Equal(t, sdk.RoleAttendant, user.Role)
}
