package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsDateOnlyAndRFC3339(t *testing.T) {
	dateOnly, err := ParseDate("2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), dateOnly)

	rfc, err := ParseDate("2026-02-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, rfc.Hour())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("01/02/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseDurationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("nonsense", time.Minute))
}
