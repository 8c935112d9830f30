package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("01/01/2024")
	assert.Error(t, err)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
