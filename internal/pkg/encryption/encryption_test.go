package encryption_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/pkg/encryption"
)

// testKey is a fixed 32-byte key for tests. The underscore keeps it out
// of the base64 alphabet so the raw-bytes path is exercised.
const testKey = "0123456789abcdef_123456789abcdef"

func TestNewAESEncryptor_RawKey(t *testing.T) {
	// Act
	encryptor, err := encryption.NewAESEncryptor(testKey)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, encryptor)
}

func TestNewAESEncryptor_Base64Key(t *testing.T) {
	// Arrange
	key := base64.StdEncoding.EncodeToString([]byte(testKey))

	// Act
	encryptor, err := encryption.NewAESEncryptor(key)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, encryptor)
}

func TestNewAESEncryptor_InvalidKeyLength(t *testing.T) {
	// Act
	encryptor, err := encryption.NewAESEncryptor("tooshort")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, encryptor)
	assert.Contains(t, err.Error(), "must be 32 bytes")
}

func TestAESEncryptor_EncryptDecrypt(t *testing.T) {
	// Arrange
	encryptor, err := encryption.NewAESEncryptor(testKey)
	require.NoError(t, err)
	plaintext := []byte(`{"decision":"SLM","confidence":83}`)

	// Act
	ciphertext, err := encryptor.Encrypt(plaintext)
	require.NoError(t, err)
	decrypted, err := encryptor.Decrypt(ciphertext)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
	assert.NotContains(t, ciphertext, "SLM")
}

func TestAESEncryptor_NonceMakesCiphertextUnique(t *testing.T) {
	// Arrange
	encryptor, err := encryption.NewAESEncryptor(testKey)
	require.NoError(t, err)
	plaintext := []byte("same input")

	// Act
	first, err := encryptor.Encrypt(plaintext)
	require.NoError(t, err)
	second, err := encryptor.Encrypt(plaintext)
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first, second)
}

func TestAESEncryptor_DecryptTamperedCiphertext(t *testing.T) {
	// Arrange
	encryptor, err := encryption.NewAESEncryptor(testKey)
	require.NoError(t, err)
	ciphertext, err := encryptor.Encrypt([]byte("payload"))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	// Act
	_, err = encryptor.Decrypt(tampered)

	// Assert
	assert.Error(t, err)
}

func TestAESEncryptor_DecryptInvalidInput(t *testing.T) {
	// Arrange
	encryptor, err := encryption.NewAESEncryptor(testKey)
	require.NoError(t, err)

	// Act / Assert
	_, err = encryptor.Decrypt("not base64 !!!")
	assert.Error(t, err)

	_, err = encryptor.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.Error(t, err)
}

func TestNoOpEncryptor_RoundTrip(t *testing.T) {
	// Arrange
	encryptor := encryption.NewNoOpEncryptor()
	plaintext := []byte("development payload")

	// Act
	encoded, err := encryptor.Encrypt(plaintext)
	require.NoError(t, err)
	decoded, err := encryptor.Decrypt(encoded)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, plaintext, decoded)
}
