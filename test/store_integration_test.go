package test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/model"
	"github.com/salahapp/salah-server/internal/schedule"
)

func tod(h, m int) *model.TimeOfDay {
	t := model.NewTimeOfDay(h, m)
	return &t
}

// seedMasjid creates a state, a city and a masjid with unique names so the
// suite can re-run against the same database.
func seedMasjid(t *testing.T, store db.Store) *model.MasjidSummary {
	t.Helper()
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	state, err := store.CreateState("State " + suffix)
	require.NoError(t, err)

	city, err := store.CreateCity("City "+suffix, state.ID)
	require.NoError(t, err)

	masjid, err := store.CreateMasjid(model.Masjid{
		Name:    "Masjid " + suffix,
		Address: "1 Test Street",
		CityID:  city.ID,
	})
	require.NoError(t, err)
	return masjid
}

func TestStoreIntegration(t *testing.T) {
	requireDB(t)
	store := db.TestStore

	t.Run("Locations", func(t *testing.T) {
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())

		state, err := store.CreateState("Punjab " + suffix)
		assert.NoError(t, err)
		assert.Greater(t, state.ID, 0)

		err = store.UpdateState(state.ID, "Punjab Renamed "+suffix)
		assert.NoError(t, err)

		city, err := store.CreateCity("Lahore "+suffix, state.ID)
		assert.NoError(t, err)
		assert.Equal(t, state.ID, city.StateID)

		cities, err := store.ListCitiesByState(state.ID)
		assert.NoError(t, err)
		assert.Len(t, cities, 1)

		err = store.DeleteState(state.ID)
		assert.NoError(t, err)

		_, err = store.GetCityByID(city.ID)
		assert.True(t, errors.Is(err, db.ErrNotFound), "cascade should remove the city")
	})

	t.Run("Masjids", func(t *testing.T) {
		masjid := seedMasjid(t, store)

		fetched, err := store.GetMasjidByID(masjid.ID)
		assert.NoError(t, err)
		assert.Equal(t, masjid.Name, fetched.Name)
		assert.NotEmpty(t, fetched.CityName)
		assert.NotEmpty(t, fetched.StateName)

		lat, lon := 31.5204, 74.3587
		err = store.UpdateMasjid(masjid.ID, db.MasjidPatch{Latitude: &lat, Longitude: &lon})
		assert.NoError(t, err)

		withCoords, err := store.ListMasjidsWithCoordinates()
		assert.NoError(t, err)
		found := false
		for _, m := range withCoords {
			if m.ID == masjid.ID {
				found = true
				assert.Equal(t, lat, *m.Latitude)
			}
		}
		assert.True(t, found)

		listed, total, err := store.ListMasjids(db.MasjidFilter{
			Search:     masjid.Name,
			PageNumber: 1,
			PageSize:   10,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, listed, 1)

		err = store.SetMasjidPhoto(masjid.ID, "/uploads/test.jpg")
		assert.NoError(t, err)
		fetched, _ = store.GetMasjidByID(masjid.ID)
		assert.Equal(t, "/uploads/test.jpg", *fetched.PhotoURL)
	})

	t.Run("SalahTimings", func(t *testing.T) {
		masjid := seedMasjid(t, store)
		date := model.NewDate(2025, time.March, 10)

		timing, err := store.CreateSalahTiming(model.SalahTiming{
			MasjidID: masjid.ID,
			Date:     date,
			PrayerTimes: model.PrayerTimes{
				FajrAzanTime:   tod(5, 30),
				FajrIqamahTime: tod(5, 45),
				IshaAzanTime:   tod(20, 0),
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "05:30", timing.FajrAzanTime.String())

		// second row for the same masjid and date must conflict
		_, err = store.CreateSalahTiming(model.SalahTiming{MasjidID: masjid.ID, Date: date})
		assert.True(t, errors.Is(err, db.ErrDuplicate))

		err = store.UpdateSalahTiming(timing.ID, db.SalahTimingPatch{
			PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(5, 35)},
		})
		assert.NoError(t, err)

		updated, err := store.GetSalahTimingByID(timing.ID)
		assert.NoError(t, err)
		assert.Equal(t, "05:35", updated.FajrAzanTime.String())
		// untouched fields survive the partial update
		assert.Equal(t, "05:45", updated.FajrIqamahTime.String())

		later := model.NewDate(2025, time.March, 12)
		_, err = store.CreateSalahTiming(model.SalahTiming{MasjidID: masjid.ID, Date: later})
		assert.NoError(t, err)

		latest, err := store.GetLatestSalahTiming(masjid.ID)
		assert.NoError(t, err)
		assert.True(t, latest.Date.Equal(later))

		timings, err := store.ListSalahTimingsByMasjid(masjid.ID, &date, &later)
		assert.NoError(t, err)
		assert.Len(t, timings, 2)
	})

	t.Run("DefaultSchedules", func(t *testing.T) {
		masjid := seedMasjid(t, store)

		ds, err := store.CreateDefaultSchedule(model.DefaultSchedule{
			MasjidID: masjid.ID,
			PrayerTimes: model.PrayerTimes{
				FajrAzanTime: tod(5, 15),
				IshaAzanTime: tod(20, 30),
			},
		})
		assert.NoError(t, err)
		assert.False(t, ds.LastUpdated.IsZero())

		// one template per masjid
		_, err = store.CreateDefaultSchedule(model.DefaultSchedule{MasjidID: masjid.ID})
		assert.True(t, errors.Is(err, db.ErrDuplicate))

		before := ds.LastUpdated
		time.Sleep(10 * time.Millisecond)
		err = store.UpdateDefaultSchedule(ds.ID, model.PrayerTimes{FajrAzanTime: tod(5, 20)})
		assert.NoError(t, err)

		updated, err := store.GetDefaultScheduleByMasjid(masjid.ID)
		assert.NoError(t, err)
		assert.Equal(t, "05:20", updated.FajrAzanTime.String())
		assert.Equal(t, "20:30", updated.IshaAzanTime.String())
		assert.True(t, updated.LastUpdated.After(before))
	})

	t.Run("AdditionalTimingsAndEvents", func(t *testing.T) {
		masjid := seedMasjid(t, store)
		date := model.NewDate(2025, time.March, 10)

		at, err := store.CreateAdditionalTimings(model.AdditionalTimings{
			MasjidID:    masjid.ID,
			Date:        date,
			SunriseTime: tod(6, 40),
			IftarTime:   tod(18, 20),
		})
		assert.NoError(t, err)

		err = store.UpdateAdditionalTimings(at.ID, db.AdditionalTimingsPatch{SunsetTime: tod(18, 15)})
		assert.NoError(t, err)

		fetched, err := store.GetAdditionalTimingsByMasjidAndDate(masjid.ID, date)
		assert.NoError(t, err)
		assert.Equal(t, "06:40", fetched.SunriseTime.String())
		assert.Equal(t, "18:15", fetched.SunsetTime.String())

		event, err := store.CreateSpecialEvent(model.SpecialEvent{
			MasjidID:  masjid.ID,
			EventName: "Eid Prayer",
			EventDate: date,
			EventTime: tod(8, 0),
		})
		assert.NoError(t, err)

		events, err := store.ListSpecialEventsByMasjidAndDate(masjid.ID, date)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, "Eid Prayer", events[0].EventName)

		upcoming, err := store.ListUpcomingSpecialEvents(masjid.ID, model.NewDate(2025, time.March, 1))
		assert.NoError(t, err)
		assert.Len(t, upcoming, 1)

		err = store.DeleteSpecialEvent(event.ID)
		assert.NoError(t, err)
	})

	t.Run("Admins", func(t *testing.T) {
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())
		username := "admin" + suffix
		email := fmt.Sprintf("admin%s@example.com", suffix)

		admin, err := store.CreateAdmin(username, email, "hashed", nil)
		assert.NoError(t, err)

		byName, err := store.GetAdminByUsername(username)
		assert.NoError(t, err)
		assert.Equal(t, admin.ID, byName.ID)

		fullName := "Test Admin"
		err = store.UpdateAdminProfile(admin.ID, email, &fullName)
		assert.NoError(t, err)

		byEmail, err := store.GetAdminByEmail(email)
		assert.NoError(t, err)
		assert.Equal(t, fullName, *byEmail.FullName)
	})
}

// TestResolveThroughSQL drives the resolver against real rows instead of a
// fake store.
func TestResolveThroughSQL(t *testing.T) {
	requireDB(t)
	store := db.TestStore

	masjid := seedMasjid(t, store)
	exact := model.NewDate(2025, time.June, 1)

	_, err := store.CreateSalahTiming(model.SalahTiming{
		MasjidID:    masjid.ID,
		Date:        exact,
		PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(4, 45)},
	})
	require.NoError(t, err)

	_, err = store.CreateDefaultSchedule(model.DefaultSchedule{
		MasjidID:    masjid.ID,
		PrayerTimes: model.PrayerTimes{FajrAzanTime: tod(5, 0)},
	})
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC) }
	resolver := schedule.NewResolverAt(store, now)

	// exact row wins
	resolved, err := resolver.ResolveTiming(masjid.ID, exact)
	require.NoError(t, err)
	assert.False(t, resolved.IsDefault)
	assert.False(t, resolved.IsFallback)
	assert.Equal(t, "04:45", resolved.FajrAzanTime.String())

	// today without a row serves the default template
	resolved, err = resolver.ResolveTiming(masjid.ID, model.NewDate(2025, time.June, 2))
	require.NoError(t, err)
	assert.True(t, resolved.IsDefault)
	assert.Equal(t, "05:00", resolved.FajrAzanTime.String())

	// any other uncovered date falls back to the latest row
	resolved, err = resolver.ResolveTiming(masjid.ID, model.NewDate(2025, time.June, 10))
	require.NoError(t, err)
	assert.True(t, resolved.IsFallback)
	assert.True(t, resolved.Date.Equal(exact))

	ds, err := resolver.DailySchedule(masjid.ID, exact)
	require.NoError(t, err)
	assert.Equal(t, masjid.Name, ds.SalahTiming.MasjidName)
	assert.NotNil(t, ds.SpecialEvents)
}
