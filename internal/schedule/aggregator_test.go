package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/model"
)

func fakeMasjid(id int, name string) model.MasjidSummary {
	return model.MasjidSummary{
		Masjid:    model.Masjid{ID: id, Name: name, Address: "12 Main Rd", CityID: 1},
		CityName:  "Hyderabad",
		StateName: "Telangana",
	}
}

func TestDailyScheduleMasjidNotFound(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()

	r := NewResolverAt(store, fixedClock(today))
	_, err := r.DailySchedule(99, today)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDailyScheduleEmptyIsSuccess(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.masjids[1] = fakeMasjid(1, "Masjid-e-Noor")

	r := NewResolverAt(store, fixedClock(today))
	got, err := r.DailySchedule(1, today)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Nil(t, got.SalahTiming)
	assert.Nil(t, got.AdditionalTimings)
	assert.NotNil(t, got.SpecialEvents)
	assert.Empty(t, got.SpecialEvents)
	assert.Equal(t, "Masjid-e-Noor", got.Masjid.Name)
}

func TestDailyScheduleCopiesIslamicDate(t *testing.T) {
	date := model.NewDate(2024, time.March, 15)
	store := newFakeStore()
	store.masjids[1] = fakeMasjid(1, "Masjid-e-Noor")

	islamic := "5 Ramadan 1445"
	timing := timingOn(1, date)
	timing.IslamicDate = &islamic
	store.timings = append(store.timings, timing)

	r := NewResolverAt(store, fixedClock(model.NewDate(2024, time.March, 20)))
	got, err := r.DailySchedule(1, date)
	require.NoError(t, err)

	require.NotNil(t, got.SalahTiming)
	require.NotNil(t, got.IslamicDate)
	assert.Equal(t, islamic, *got.IslamicDate)
	assert.Equal(t, "Masjid-e-Noor", got.SalahTiming.MasjidName)
}

func TestDailyScheduleAdditionalTimingsFallback(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.masjids[1] = fakeMasjid(1, "Masjid-e-Noor")
	store.additional = append(store.additional,
		model.AdditionalTimings{MasjidID: 1, Date: model.NewDate(2024, time.March, 10), SunriseTime: tod(6, 20)},
		model.AdditionalTimings{MasjidID: 1, Date: model.NewDate(2024, time.March, 18), SunriseTime: tod(6, 12)},
	)

	r := NewResolverAt(store, fixedClock(today))

	// no exact row for today and no default table for additional timings:
	// the latest row serves, with no today gate
	got, err := r.DailySchedule(1, today)
	require.NoError(t, err)
	require.NotNil(t, got.AdditionalTimings)
	assert.True(t, got.AdditionalTimings.Date.Equal(model.NewDate(2024, time.March, 18)))
	assert.Equal(t, tod(6, 12), got.AdditionalTimings.SunriseTime)
}

func TestDailyScheduleEventsExactDateOnly(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.masjids[1] = fakeMasjid(1, "Masjid-e-Noor")
	store.events = append(store.events,
		model.SpecialEvent{MasjidID: 1, EventName: "Qirat night", EventDate: model.NewDate(2024, time.March, 19)},
		model.SpecialEvent{MasjidID: 1, EventName: "Tafseer dars", EventDate: today},
		model.SpecialEvent{MasjidID: 2, EventName: "Other masjid", EventDate: today},
	)

	r := NewResolverAt(store, fixedClock(today))
	got, err := r.DailySchedule(1, today)
	require.NoError(t, err)

	require.Len(t, got.SpecialEvents, 1)
	assert.Equal(t, "Tafseer dars", got.SpecialEvents[0].EventName)
}

func TestDailyScheduleUsesDefaultForToday(t *testing.T) {
	today := model.NewDate(2024, time.March, 20)
	store := newFakeStore()
	store.masjids[1] = fakeMasjid(1, "Masjid-e-Noor")
	store.defaults[1] = model.DefaultSchedule{
		MasjidID:    1,
		PrayerTimes: model.PrayerTimes{DhuhrAzanTime: tod(13, 15)},
	}

	r := NewResolverAt(store, fixedClock(today))
	got, err := r.DailySchedule(1, today)
	require.NoError(t, err)

	require.NotNil(t, got.SalahTiming)
	assert.True(t, got.SalahTiming.IsDefault)
	assert.Equal(t, tod(13, 15), got.SalahTiming.DhuhrAzanTime)
	assert.Nil(t, got.IslamicDate)
}
