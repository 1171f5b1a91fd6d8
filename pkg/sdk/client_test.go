package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

func TestClientAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode([]sdk.Customer{})
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	client.SetBearerToken("t1")

	_, err := client.ListCustomers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer t1", gotAuth)
	_, err = uuid.Parse(gotRequestID)
	assert.NoError(t, err, "X-Request-Id must be a uuid")
}

func TestClientWithOAuth2Transport(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]sdk.Customer{})
	}))
	defer srv.Close()

	// The CLI provider builds the http.Client this way from persisted
	// credentials; the SDK must work with the token living in the transport.
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "t2", TokenType: "Bearer"})
	httpClient := oauth2.NewClient(context.Background(), source)

	client := sdk.NewClient(srv.URL, sdk.WithHTTPClient(httpClient))
	_, err := client.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t2", gotAuth)
}

func TestClientMapsErrorResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "customer not found"})
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	_, err := client.GetCustomer(context.Background(), "42")
	require.Error(t, err)

	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "customer not found", apiErr.Message)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.Contains(t, apiErr.Error(), "customer not found")
	assert.False(t, sdk.IsUnauthorized(err))
}

func TestClientErrorWithoutBodyUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	_, err := client.ListUsers(context.Background())

	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "Internal Server Error")
}

func TestClientUnauthorizedHookFires(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	var fired int
	client.OnUnauthorized(func() { fired++ })

	_, err := client.ListAttendances(context.Background())
	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err))
	assert.Equal(t, 1, fired)
}

func TestClientLocalValidationSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.GetCustomer(ctx, "")
	assert.ErrorIs(t, err, sdk.ErrInvalidInput)
	_, err = client.CreateCustomer(ctx, sdk.CreateCustomerInput{Name: "Ana"})
	assert.ErrorIs(t, err, sdk.ErrInvalidInput)
	_, err = client.CreateAttendance(ctx, sdk.CreateAttendanceInput{CustomerID: "c1"})
	assert.ErrorIs(t, err, sdk.ErrInvalidInput)
	_, err = client.CreateAttendance(ctx, sdk.CreateAttendanceInput{CustomerID: "c1", Subject: "s", Channel: "FAX"})
	assert.ErrorIs(t, err, sdk.ErrInvalidInput)
	_, err = client.RegisterUser(ctx, sdk.RegisterUserInput{Name: "Ana", Email: "a@b.co", Password: "pw", Role: "ROOT"})
	assert.ErrorIs(t, err, sdk.ErrInvalidInput)
	err = client.DeleteUser(ctx, "")
	assert.ErrorIs(t, err, sdk.ErrInvalidInput)
}
