package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"05:30", "05:30", true},
		{"05:30:15", "05:30", true},
		{" 20:00 ", "20:00", true},
		{"25:00", "", false},
		{"five", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		if !c.ok {
			assert.Error(t, err, "input %q", c.input)
			continue
		}
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got.String())
	}
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan(time.Date(2025, time.March, 10, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, "17:45", tod.String())

	require.NoError(t, tod.Scan([]byte("06:15:00")))
	assert.Equal(t, "06:15", tod.String())

	require.NoError(t, tod.Scan("13:05:30"))
	assert.Equal(t, "13:05", tod.String())

	require.NoError(t, tod.Scan(nil))
	assert.True(t, tod.IsZero())

	assert.Error(t, tod.Scan(42))
}

func TestTimeOfDayValue(t *testing.T) {
	v, err := NewTimeOfDay(5, 30).Value()
	require.NoError(t, err)
	assert.Equal(t, "05:30:00", v)
}

func TestTimeOfDayJSON(t *testing.T) {
	b, err := json.Marshal(NewTimeOfDay(19, 5))
	require.NoError(t, err)
	assert.Equal(t, `"19:05"`, string(b))

	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"04:45"`), &tod))
	assert.Equal(t, "04:45", tod.String())

	assert.Error(t, json.Unmarshal([]byte(`"late"`), &tod))
	assert.Error(t, json.Unmarshal([]byte(`123`), &tod))
}

func TestPrayerTimesJSONNames(t *testing.T) {
	fajr := NewTimeOfDay(5, 30)
	pt := PrayerTimes{FajrAzanTime: &fajr}

	b, err := json.Marshal(pt)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "05:30", m["FajrAzanTime"])
	assert.Contains(t, m, "IshaIqamahTime")
	assert.Nil(t, m["IshaIqamahTime"])
}
