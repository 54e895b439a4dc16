package schedule

import (
	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/model"
)

// fakeStore is an in-memory Store for resolver tests.
type fakeStore struct {
	masjids    map[int]model.MasjidSummary
	timings    []model.SalahTiming
	defaults   map[int]model.DefaultSchedule
	additional []model.AdditionalTimings
	events     []model.SpecialEvent

	// when set, every lookup fails with this error
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		masjids:  make(map[int]model.MasjidSummary),
		defaults: make(map[int]model.DefaultSchedule),
	}
}

func (f *fakeStore) GetMasjidByID(id int) (*model.MasjidSummary, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	m, ok := f.masjids[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &m, nil
}

func (f *fakeStore) GetSalahTimingByMasjidAndDate(masjidID int, date model.Date) (*model.SalahTiming, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, t := range f.timings {
		if t.MasjidID == masjidID && t.Date.Equal(date) {
			out := t
			return &out, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeStore) GetLatestSalahTiming(masjidID int) (*model.SalahTiming, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var latest *model.SalahTiming
	for i := range f.timings {
		t := f.timings[i]
		if t.MasjidID != masjidID {
			continue
		}
		if latest == nil || t.Date.After(latest.Date.Time) {
			latest = &t
		}
	}
	if latest == nil {
		return nil, db.ErrNotFound
	}
	out := *latest
	return &out, nil
}

func (f *fakeStore) GetDefaultScheduleByMasjid(masjidID int) (*model.DefaultSchedule, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	ds, ok := f.defaults[masjidID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &ds, nil
}

func (f *fakeStore) GetAdditionalTimingsByMasjidAndDate(masjidID int, date model.Date) (*model.AdditionalTimings, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, t := range f.additional {
		if t.MasjidID == masjidID && t.Date.Equal(date) {
			out := t
			return &out, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeStore) GetLatestAdditionalTimings(masjidID int) (*model.AdditionalTimings, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var latest *model.AdditionalTimings
	for i := range f.additional {
		t := f.additional[i]
		if t.MasjidID != masjidID {
			continue
		}
		if latest == nil || t.Date.After(latest.Date.Time) {
			latest = &t
		}
	}
	if latest == nil {
		return nil, db.ErrNotFound
	}
	out := *latest
	return &out, nil
}

func (f *fakeStore) ListSpecialEventsByMasjidAndDate(masjidID int, date model.Date) ([]model.SpecialEvent, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.SpecialEvent
	for _, e := range f.events {
		if e.MasjidID == masjidID && e.EventDate.Equal(date) {
			out = append(out, e)
		}
	}
	return out, nil
}
