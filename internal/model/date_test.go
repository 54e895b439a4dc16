package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", d.String())

	_, err = ParseDate("10-03-2025")
	assert.Error(t, err)
	_, err = ParseDate("2025-13-01")
	assert.Error(t, err)
}

func TestDateEqualIgnoresClock(t *testing.T) {
	morning := DateOf(time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC))
	evening := DateOf(time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC))
	assert.True(t, morning.Equal(evening))
	assert.False(t, morning.Equal(NewDate(2025, time.March, 11)))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local)))
	assert.Equal(t, "2025-03-10", d.String())

	require.NoError(t, d.Scan([]byte("2024-12-31")))
	assert.Equal(t, "2024-12-31", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(3.14))
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2025, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-02"`), &d))
	assert.Equal(t, "2025-06-02", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}
