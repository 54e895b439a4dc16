package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahapp/salah-server/internal/model"
)

func tod(hour, minute int) *model.TimeOfDay {
	t := model.NewTimeOfDay(hour, minute)
	return &t
}

func fixedClock(d model.Date) func() time.Time {
	return func() time.Time { return d.Time }
}

func timingOn(masjidID int, date model.Date) model.SalahTiming {
	return model.SalahTiming{
		MasjidID: masjidID,
		Date:     date,
		PrayerTimes: model.PrayerTimes{
			FajrAzanTime:   tod(5, 12),
			FajrIqamahTime: tod(5, 30),
		},
	}
}

func TestResolveTimingExactMatch(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()

	exact := timingOn(1, today)
	exact.ID = 42
	store.timings = append(store.timings, exact, timingOn(1, model.NewDate(2024, time.March, 19)))
	store.defaults[1] = model.DefaultSchedule{
		MasjidID:    1,
		PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(5, 0)},
	}

	r := NewResolverAt(store, fixedClock(today))
	got, err := r.ResolveTiming(1, today)
	require.NoError(t, err)
	require.NotNil(t, got)

	// exact row wins over the default, verbatim
	assert.Equal(t, 42, got.ID)
	assert.Equal(t, tod(5, 12), got.FajrAzanTime)
	assert.False(t, got.IsDefault)
	assert.False(t, got.IsFallback)
}

func TestResolveTimingDefaultForToday(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.timings = append(store.timings,
		timingOn(1, model.NewDate(2024, time.January, 1)),
		timingOn(1, model.NewDate(2024, time.March, 15)),
	)
	store.defaults[1] = model.DefaultSchedule{
		ID:       7,
		MasjidID: 1,
		PrayerTimes: model.PrayerTimes{
			FajrAzanTime:     tod(5, 0),
			IshaIqamahTime:   tod(20, 45),
			JummahAzanTime:   tod(13, 0),
			JummahIqamahTime: tod(13, 30),
		},
	}

	r := NewResolverAt(store, fixedClock(today))
	got, err := r.ResolveTiming(1, today)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.IsDefault)
	assert.False(t, got.IsFallback)
	assert.Equal(t, tod(5, 0), got.FajrAzanTime)
	assert.Equal(t, tod(20, 45), got.IshaIqamahTime)
	assert.Equal(t, tod(13, 0), got.JummahAzanTime)
	assert.True(t, got.Date.Equal(today))
	assert.Nil(t, got.IslamicDate)
}

func TestResolveTimingDefaultIsPureRead(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	stamp := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	store.defaults[1] = model.DefaultSchedule{
		MasjidID:    1,
		PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(5, 0)},
		LastUpdated: stamp,
	}

	r := NewResolverAt(store, fixedClock(today))
	_, err := r.ResolveTiming(1, today)
	require.NoError(t, err)

	// serving the default must not touch the stored template
	assert.Equal(t, stamp, store.defaults[1].LastUpdated)
}

func TestResolveTimingFallbackLatest(t *testing.T) {
	// masjid M: rows on 2024-01-01 and 2024-03-15, default set, today 2024-03-20
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.timings = append(store.timings,
		timingOn(1, model.NewDate(2024, time.January, 1)),
		timingOn(1, model.NewDate(2024, time.March, 15)),
	)
	store.defaults[1] = model.DefaultSchedule{
		MasjidID:    1,
		PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(5, 0)},
	}

	r := NewResolverAt(store, fixedClock(today))

	// 2024-02-01 is not today: the latest row serves even though its date
	// (2024-03-15) is after the query date
	got, err := r.ResolveTiming(1, model.NewDate(2024, time.February, 1))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsFallback)
	assert.False(t, got.IsDefault)
	assert.True(t, got.Date.Equal(model.NewDate(2024, time.March, 15)))
}

func TestResolveTimingFutureDateSkipsDefault(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.timings = append(store.timings, timingOn(1, model.NewDate(2024, time.March, 15)))
	store.defaults[1] = model.DefaultSchedule{
		MasjidID:    1,
		PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(5, 0)},
	}

	r := NewResolverAt(store, fixedClock(today))
	got, err := r.ResolveTiming(1, model.NewDate(2024, time.March, 25))
	require.NoError(t, err)
	require.NotNil(t, got)

	// the default only serves the current day; any other date falls back
	assert.True(t, got.IsFallback)
	assert.True(t, got.Date.Equal(model.NewDate(2024, time.March, 15)))
}

func TestResolveTimingDefaultOnlyMasjid(t *testing.T) {
	// masjid N: zero rows, default set
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.defaults[2] = model.DefaultSchedule{
		MasjidID:    2,
		PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(5, 0)},
	}

	r := NewResolverAt(store, fixedClock(today))

	got, err := r.ResolveTiming(2, today)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDefault)

	// yesterday: no rows to fall back on, so nothing resolves
	got, err = r.ResolveTiming(2, model.NewDate(2024, time.March, 19))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveTimingNothingAnywhere(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()

	r := NewResolverAt(store, fixedClock(today))
	got, err := r.ResolveTiming(9, today)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveTimingStoreErrorPropagates(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	boom := errors.New("connection refused")
	store.failWith = boom

	r := NewResolverAt(store, fixedClock(today))
	_, err := r.ResolveTiming(1, today)
	assert.ErrorIs(t, err, boom)
}
