package db

import (
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
)

const timingColumns = `
	id, masjid_id, date, islamic_date,
	fajr_azan_time, fajr_iqamah_time,
	dhuhr_azan_time, dhuhr_iqamah_time,
	asr_azan_time, asr_iqamah_time,
	maghrib_azan_time, maghrib_iqamah_time,
	isha_azan_time, isha_iqamah_time,
	jummah_azan_time, jummah_iqamah_time`

func (s *pgStore) GetSalahTimingByID(id int) (*model.SalahTiming, error) {
	var t model.SalahTiming
	q := `SELECT` + timingColumns + ` FROM salah_timings WHERE id = $1;`
	if err := s.db.Get(&t, q, id); err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

func (s *pgStore) GetSalahTimingByMasjidAndDate(masjidID int, date model.Date) (*model.SalahTiming, error) {
	var t model.SalahTiming
	q := `SELECT` + timingColumns + ` FROM salah_timings WHERE masjid_id = $1 AND date = $2;`
	if err := s.db.Get(&t, q, masjidID, date); err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

// GetLatestSalahTiming returns the masjid's newest row by calendar date,
// whether that date is in the past or the future.
func (s *pgStore) GetLatestSalahTiming(masjidID int) (*model.SalahTiming, error) {
	var t model.SalahTiming
	q := `SELECT` + timingColumns + `
		FROM salah_timings
		WHERE masjid_id = $1
		ORDER BY date DESC
		LIMIT 1;`
	if err := s.db.Get(&t, q, masjidID); err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

func (s *pgStore) ListSalahTimingsByMasjid(masjidID int, startDate, endDate *model.Date) ([]model.SalahTiming, error) {
	var out []model.SalahTiming
	q := `SELECT` + timingColumns + `
		FROM salah_timings
		WHERE masjid_id = $1
		AND ($2::date IS NULL OR date >= $2)
		AND ($3::date IS NULL OR date <= $3)
		ORDER BY date;`
	if err := s.db.Select(&out, q, masjidID, startDate, endDate); err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Msg("ListSalahTimingsByMasjid failed")
		return nil, wrapError(err)
	}
	return out, nil
}

func (s *pgStore) CreateSalahTiming(t model.SalahTiming) (*model.SalahTiming, error) {
	var created model.SalahTiming
	q := `
	INSERT INTO salah_timings (
		masjid_id, date, islamic_date,
		fajr_azan_time, fajr_iqamah_time,
		dhuhr_azan_time, dhuhr_iqamah_time,
		asr_azan_time, asr_iqamah_time,
		maghrib_azan_time, maghrib_iqamah_time,
		isha_azan_time, isha_iqamah_time,
		jummah_azan_time, jummah_iqamah_time)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING` + timingColumns + `;`
	if err := s.db.Get(&created, q,
		t.MasjidID, t.Date, t.IslamicDate,
		t.FajrAzanTime, t.FajrIqamahTime,
		t.DhuhrAzanTime, t.DhuhrIqamahTime,
		t.AsrAzanTime, t.AsrIqamahTime,
		t.MaghribAzanTime, t.MaghribIqamahTime,
		t.IshaAzanTime, t.IshaIqamahTime,
		t.JummahAzanTime, t.JummahIqamahTime,
	); err != nil {
		log.Error().Err(err).Int("masjid_id", t.MasjidID).Msg("CreateSalahTiming failed")
		return nil, wrapError(err)
	}
	return &created, nil
}

func (s *pgStore) UpdateSalahTiming(id int, patch SalahTimingPatch) error {
	res, err := s.db.Exec(`
		UPDATE salah_timings
		SET date = COALESCE($2, date),
		islamic_date = COALESCE($3, islamic_date),
		fajr_azan_time = COALESCE($4, fajr_azan_time),
		fajr_iqamah_time = COALESCE($5, fajr_iqamah_time),
		dhuhr_azan_time = COALESCE($6, dhuhr_azan_time),
		dhuhr_iqamah_time = COALESCE($7, dhuhr_iqamah_time),
		asr_azan_time = COALESCE($8, asr_azan_time),
		asr_iqamah_time = COALESCE($9, asr_iqamah_time),
		maghrib_azan_time = COALESCE($10, maghrib_azan_time),
		maghrib_iqamah_time = COALESCE($11, maghrib_iqamah_time),
		isha_azan_time = COALESCE($12, isha_azan_time),
		isha_iqamah_time = COALESCE($13, isha_iqamah_time),
		jummah_azan_time = COALESCE($14, jummah_azan_time),
		jummah_iqamah_time = COALESCE($15, jummah_iqamah_time)
		WHERE id = $1;`,
		id, patch.Date, patch.IslamicDate,
		patch.FajrAzanTime, patch.FajrIqamahTime,
		patch.DhuhrAzanTime, patch.DhuhrIqamahTime,
		patch.AsrAzanTime, patch.AsrIqamahTime,
		patch.MaghribAzanTime, patch.MaghribIqamahTime,
		patch.IshaAzanTime, patch.IshaIqamahTime,
		patch.JummahAzanTime, patch.JummahIqamahTime,
	)
	if err != nil {
		log.Error().Err(err).Int("salah_id", id).Msg("UpdateSalahTiming failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteSalahTiming(id int) error {
	res, err := s.db.Exec(`DELETE FROM salah_timings WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("salah_id", id).Msg("DeleteSalahTiming failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
