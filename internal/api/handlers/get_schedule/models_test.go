package get_schedule

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	req, err := ParseQuery(url.Values{"start": {"2024-01-07"}, "days": {"14"}})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), req.StartDate)
	assert.Equal(t, 14, req.NumberOfDays)

	req, err = ParseQuery(url.Values{})
	require.NoError(t, err)
	assert.True(t, req.StartDate.IsZero())
	assert.Zero(t, req.NumberOfDays)

	_, err = ParseQuery(url.Values{"start": {"07/01/2024"}})
	assert.Error(t, err)

	_, err = ParseQuery(url.Values{"days": {"three"}})
	assert.Error(t, err)
}
