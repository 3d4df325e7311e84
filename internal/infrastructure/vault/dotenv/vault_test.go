package dotenv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/infrastructure/vault/dotenv"
)

func TestGetSecret_FromEnvironment(t *testing.T) {
	// Arrange
	vault, err := dotenv.NewVault()
	require.NoError(t, err)
	t.Setenv("INSIGHT_TEST_SECRET", "env-value")

	// Act
	value, err := vault.GetSecret(context.Background(), "dotenv://INSIGHT_TEST_SECRET")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env-value", value)
}

func TestStoreSecret_ThenGetSecret(t *testing.T) {
	// Arrange
	vault, err := dotenv.NewVault()
	require.NoError(t, err)
	ctx := context.Background()

	// Act
	uri, err := vault.StoreSecret(ctx, "RUNTIME_SECRET", "stored-value")
	require.NoError(t, err)

	value, err := vault.GetSecret(ctx, uri)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "dotenv://RUNTIME_SECRET", uri)
	assert.Equal(t, "stored-value", value)
}

func TestGetSecret_Missing(t *testing.T) {
	// Arrange
	vault, err := dotenv.NewVault()
	require.NoError(t, err)

	// Act
	_, err = vault.GetSecret(context.Background(), "dotenv://NO_SUCH_SECRET")

	// Assert
	assert.Error(t, err)
}

func TestPingAndClose(t *testing.T) {
	// Arrange
	vault, err := dotenv.NewVault()
	require.NoError(t, err)

	// Act / Assert
	assert.NoError(t, vault.Ping(context.Background()))
	assert.NoError(t, vault.Close())
}
