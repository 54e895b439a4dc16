package schedule

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/model"
)

// ResolvedTiming is the single prayer-timing view served for one masjid and
// date, tagged with where it came from. Exactly one of the three sources
// holds: an exact date match (both flags false), the default schedule
// template (IsDefault), or the masjid's latest recorded row (IsFallback).
type ResolvedTiming struct {
	model.SalahTiming
	MasjidName string `json:"MasjidName"`
	IsDefault  bool   `json:"IsDefault"`
	IsFallback bool   `json:"IsFallback"`
}

// DailySchedule combines the resolved prayer timing with the day's
// additional timings and special events for one masjid.
type DailySchedule struct {
	Date              model.Date               `json:"Date"`
	IslamicDate       *string                  `json:"IslamicDate"`
	Masjid            model.MasjidSummary      `json:"Masjid"`
	SalahTiming       *ResolvedTiming          `json:"SalahTiming"`
	AdditionalTimings *model.AdditionalTimings `json:"AdditionalTimings"`
	SpecialEvents     []model.SpecialEvent     `json:"SpecialEvents"`
}

// Store is the slice of the persistence layer the resolver reads from.
// db.Store satisfies it.
type Store interface {
	GetMasjidByID(id int) (*model.MasjidSummary, error)
	GetSalahTimingByMasjidAndDate(masjidID int, date model.Date) (*model.SalahTiming, error)
	GetLatestSalahTiming(masjidID int) (*model.SalahTiming, error)
	GetDefaultScheduleByMasjid(masjidID int) (*model.DefaultSchedule, error)
	GetAdditionalTimingsByMasjidAndDate(masjidID int, date model.Date) (*model.AdditionalTimings, error)
	GetLatestAdditionalTimings(masjidID int) (*model.AdditionalTimings, error)
	ListSpecialEventsByMasjidAndDate(masjidID int, date model.Date) ([]model.SpecialEvent, error)
}

// Resolver decides which prayer-timing record to present for a masjid and
// date. It never writes; serving the default schedule leaves the stored
// template untouched.
type Resolver struct {
	store Store
	now   func() time.Time
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store, now: time.Now}
}

// NewResolverAt pins the resolver's clock; used by tests and anything else
// that needs a deterministic "today".
func NewResolverAt(store Store, now func() time.Time) *Resolver {
	return &Resolver{store: store, now: now}
}

// ResolveTiming applies the three-tier precedence:
//
//  1. exact (masjid, date) row
//  2. default schedule, only when date is the current calendar day
//  3. the masjid's latest row by date, past or future
//
// Returns (nil, nil) when the masjid has no rows and no applicable default;
// the caller decides whether that is a 404 or an empty schedule.
func (r *Resolver) ResolveTiming(masjidID int, date model.Date) (*ResolvedTiming, error) {
	timing, err := r.store.GetSalahTimingByMasjidAndDate(masjidID, date)
	if err == nil {
		return &ResolvedTiming{SalahTiming: *timing}, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	if date.Equal(model.DateOf(r.now())) {
		ds, err := r.store.GetDefaultScheduleByMasjid(masjidID)
		if err == nil {
			return &ResolvedTiming{
				SalahTiming: model.SalahTiming{
					MasjidID:    masjidID,
					Date:        date,
					PrayerTimes: ds.PrayerTimes,
				},
				IsDefault: true,
			}, nil
		}
		if !errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
	}

	latest, err := r.store.GetLatestSalahTiming(masjidID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ResolvedTiming{SalahTiming: *latest, IsFallback: true}, nil
}

// DailySchedule assembles the composite view for one masjid and date. The
// masjid must exist; everything else may legitimately be absent, so a
// schedule with no timing, no additional timings and no events is still a
// successful result.
func (r *Resolver) DailySchedule(masjidID int, date model.Date) (*DailySchedule, error) {
	masjid, err := r.store.GetMasjidByID(masjidID)
	if err != nil {
		return nil, err
	}

	timing, err := r.ResolveTiming(masjidID, date)
	if err != nil {
		return nil, err
	}
	if timing != nil && timing.MasjidName == "" {
		timing.MasjidName = masjid.Name
	}

	additional, err := r.resolveAdditionalTimings(masjidID, date)
	if err != nil {
		return nil, err
	}

	events, err := r.store.ListSpecialEventsByMasjidAndDate(masjidID, date)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Msg("daily schedule events lookup failed")
		return nil, err
	}
	if events == nil {
		events = []model.SpecialEvent{}
	}

	ds := &DailySchedule{
		Date:              date,
		Masjid:            *masjid,
		SalahTiming:       timing,
		AdditionalTimings: additional,
		SpecialEvents:     events,
	}
	if timing != nil {
		ds.IslamicDate = timing.IslamicDate
	}
	return ds, nil
}

// resolveAdditionalTimings uses the simpler two-tier rule: exact date match,
// else the masjid's latest row. There is no default template for additional
// timings, and no today gate.
func (r *Resolver) resolveAdditionalTimings(masjidID int, date model.Date) (*model.AdditionalTimings, error) {
	exact, err := r.store.GetAdditionalTimingsByMasjidAndDate(masjidID, date)
	if err == nil {
		return exact, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	latest, err := r.store.GetLatestAdditionalTimings(masjidID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return latest, nil
}
