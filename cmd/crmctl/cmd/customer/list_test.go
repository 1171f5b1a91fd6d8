package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

func TestFilterCustomers(t *testing.T) {
	customers := []sdk.Customer{
		{ID: "1", Name: "Loja Azul", Email: "contato@azul.com", Phone: "11999990000", Active: true},
		{ID: "2", Name: "Mercado Verde", Email: "sac@verde.com", Phone: "21988880000", Active: false},
		{ID: "3", Name: "Padaria Central", Email: "oi@central.com", Active: true},
	}

	got := filterCustomers(customers, "azul", "all")
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Search matches email and phone too.
	got = filterCustomers(customers, "sac@", "all")
	assert.Len(t, got, 1)
	got = filterCustomers(customers, "2198", "all")
	assert.Len(t, got, 1)

	got = filterCustomers(customers, "", "active")
	assert.Len(t, got, 2)
	got = filterCustomers(customers, "", "inactive")
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = filterCustomers(customers, "verde", "active")
	assert.Empty(t, got)
}
