// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/salahapp/salah-server/internal/model"
)

type Store interface {
	// geographic hierarchy
	ListStates() ([]model.State, error)
	GetStateByID(id int) (*model.State, error)
	CreateState(name string) (*model.State, error)
	UpdateState(id int, name string) error
	DeleteState(id int) error
	ListCitiesByState(stateID int) ([]model.City, error)
	GetCityByID(id int) (*model.City, error)
	CreateCity(name string, stateID int) (*model.City, error)
	UpdateCity(id int, name *string, stateID *int) error
	DeleteCity(id int) error

	// masjids
	ListMasjids(filter MasjidFilter) ([]model.MasjidSummary, int, error)
	GetMasjidByID(id int) (*model.MasjidSummary, error)
	ListMasjidsWithCoordinates() ([]model.MasjidSummary, error)
	CreateMasjid(m model.Masjid) (*model.MasjidSummary, error)
	UpdateMasjid(id int, patch MasjidPatch) error
	SetMasjidPhoto(id int, photoURL string) error
	DeleteMasjid(id int) error

	// per-date salah timings
	GetSalahTimingByID(id int) (*model.SalahTiming, error)
	GetSalahTimingByMasjidAndDate(masjidID int, date model.Date) (*model.SalahTiming, error)
	GetLatestSalahTiming(masjidID int) (*model.SalahTiming, error)
	ListSalahTimingsByMasjid(masjidID int, startDate, endDate *model.Date) ([]model.SalahTiming, error)
	CreateSalahTiming(t model.SalahTiming) (*model.SalahTiming, error)
	UpdateSalahTiming(id int, patch SalahTimingPatch) error
	DeleteSalahTiming(id int) error

	// default schedule template (at most one per masjid)
	GetDefaultScheduleByID(id int) (*model.DefaultSchedule, error)
	GetDefaultScheduleByMasjid(masjidID int) (*model.DefaultSchedule, error)
	CreateDefaultSchedule(s model.DefaultSchedule) (*model.DefaultSchedule, error)
	UpdateDefaultSchedule(id int, patch model.PrayerTimes) error
	DeleteDefaultSchedule(id int) error

	// daily additional timings
	GetAdditionalTimingsByID(id int) (*model.AdditionalTimings, error)
	GetAdditionalTimingsByMasjidAndDate(masjidID int, date model.Date) (*model.AdditionalTimings, error)
	GetLatestAdditionalTimings(masjidID int) (*model.AdditionalTimings, error)
	CreateAdditionalTimings(t model.AdditionalTimings) (*model.AdditionalTimings, error)
	UpdateAdditionalTimings(id int, patch AdditionalTimingsPatch) error
	DeleteAdditionalTimings(id int) error

	// special events
	GetSpecialEventByID(id int) (*model.SpecialEvent, error)
	ListSpecialEventsByMasjidAndDate(masjidID int, date model.Date) ([]model.SpecialEvent, error)
	ListUpcomingSpecialEvents(masjidID int, from model.Date) ([]model.SpecialEvent, error)
	CreateSpecialEvent(e model.SpecialEvent) (*model.SpecialEvent, error)
	UpdateSpecialEvent(id int, patch SpecialEventPatch) error
	DeleteSpecialEvent(id int) error

	// admin accounts
	GetAdminByID(id int) (*model.Admin, error)
	GetAdminByUsername(username string) (*model.Admin, error)
	GetAdminByEmail(email string) (*model.Admin, error)
	CreateAdmin(username, email, hashedPassword string, fullName *string) (*model.Admin, error)
	UpdateAdminProfile(id int, email string, fullName *string) error
}

// MasjidFilter narrows and pages masjid listings.
type MasjidFilter struct {
	CityID     *int
	Search     string
	PageNumber int
	PageSize   int
}

// MasjidPatch carries a partial masjid update; nil fields are left untouched.
type MasjidPatch struct {
	Name          *string
	Address       *string
	CityID        *int
	Latitude      *float64
	Longitude     *float64
	ContactNumber *string
	ImamName      *string
}

// SalahTimingPatch carries a partial timing update; nil fields are left
// untouched.
type SalahTimingPatch struct {
	Date        *model.Date
	IslamicDate *string
	model.PrayerTimes
}

// AdditionalTimingsPatch carries a partial additional-timings update.
type AdditionalTimingsPatch struct {
	Date         *model.Date
	SunriseTime  *model.TimeOfDay
	SunsetTime   *model.TimeOfDay
	ZawalTime    *model.TimeOfDay
	TahajjudTime *model.TimeOfDay
	SehriEndTime *model.TimeOfDay
	IftarTime    *model.TimeOfDay
}

// SpecialEventPatch carries a partial special-event update.
type SpecialEventPatch struct {
	EventName   *string
	EventDate   *model.Date
	EventTime   *model.TimeOfDay
	Description *string
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	if conn == nil {
		conn = DB
	}
	return &pgStore{db: conn}
}
