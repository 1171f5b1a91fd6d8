package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStoreAt(t.TempDir())
	require.NoError(t, err)

	_, err = store.LoadCredentials()
	assert.ErrorIs(t, err, sdk.ErrNoCredentials)

	creds := &sdk.Credentials{Token: "t1", TokenType: "Bearer"}
	require.NoError(t, store.SaveCredentials(creds))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "t1", loaded.Token)
	assert.Equal(t, "Bearer", loaded.TokenType)

	require.NoError(t, store.DeleteCredentials())
	_, err = store.LoadCredentials()
	assert.ErrorIs(t, err, sdk.ErrNoCredentials)

	// Deleting twice is fine: already-absent credentials are not an error.
	require.NoError(t, store.DeleteCredentials())
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStoreAt(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveCredentials(&sdk.Credentials{Token: "old", TokenType: "Bearer"}))
	require.NoError(t, store.SaveCredentials(&sdk.Credentials{Token: "new", TokenType: "Bearer"}))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.Token)
}
