package pii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/pii"
)

func TestDetect_SSN(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("My SSN is 123-45-6789")

	// Assert
	require.Len(t, matches, 1)
	assert.Equal(t, models.PIITypeSSN, matches[0].Type)
	assert.Equal(t, "123-45-6789", matches[0].Value)
	assert.Equal(t, "[REDACTED:ssn]", matches[0].Masked)
}

func TestDetect_CreditCard(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("card number 4111-1111-1111-1111 was declined")

	// Assert
	require.Len(t, matches, 1)
	assert.Equal(t, models.PIITypeCreditCard, matches[0].Type)
}

func TestDetect_EmailAndPhone_SortedByOffset(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("Reach me at jane.doe@example.com or 555-123-4567")

	// Assert
	require.Len(t, matches, 2)
	assert.Equal(t, models.PIITypeEmail, matches[0].Type)
	assert.Equal(t, models.PIITypePhone, matches[1].Type)
	assert.Less(t, matches[0].Start, matches[1].Start)
}

func TestDetect_AccountNumber(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("my account number: 12345678 is locked")

	// Assert
	require.Len(t, matches, 1)
	assert.Equal(t, models.PIITypeAccountNumber, matches[0].Type)
}

func TestDetect_DateOfBirth(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("born on 04/15/1987")

	// Assert
	require.Len(t, matches, 1)
	assert.Equal(t, models.PIITypeDOB, matches[0].Type)
}

func TestDetect_Address(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("I live at 42 Elm Street in Springfield")

	// Assert
	require.Len(t, matches, 1)
	assert.Equal(t, models.PIITypeAddress, matches[0].Type)
}

func TestDetect_NoPII(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("What are the wire transfer fees?")

	// Assert
	assert.Empty(t, matches)
}

func TestDetect_OverlappingSpans_EarlierPatternWins(t *testing.T) {
	// Arrange - the credit card digits would also match the phone
	// pattern; the card pattern is checked first and keeps the span
	detector := pii.NewDetector()

	// Act
	matches := detector.Detect("pay with 4111 1111 1111 1111 today")

	// Assert
	require.Len(t, matches, 1)
	assert.Equal(t, models.PIITypeCreditCard, matches[0].Type)
}

func TestScrub_ReplacesAllSpans(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	scrubbed := detector.Scrub("SSN 123-45-6789, email jane.doe@example.com")

	// Assert
	assert.Equal(t, "SSN [REDACTED:ssn], email [REDACTED:email]", scrubbed)
	assert.NotContains(t, scrubbed, "123-45-6789")
	assert.NotContains(t, scrubbed, "jane.doe@example.com")
}

func TestScrub_NoPII_Unchanged(t *testing.T) {
	// Arrange
	detector := pii.NewDetector()

	// Act
	scrubbed := detector.Scrub("nothing sensitive here")

	// Assert
	assert.Equal(t, "nothing sensitive here", scrubbed)
}
