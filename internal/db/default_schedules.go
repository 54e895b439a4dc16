package db

import (
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
)

const defaultScheduleColumns = `
	id, masjid_id,
	fajr_azan_time, fajr_iqamah_time,
	dhuhr_azan_time, dhuhr_iqamah_time,
	asr_azan_time, asr_iqamah_time,
	maghrib_azan_time, maghrib_iqamah_time,
	isha_azan_time, isha_iqamah_time,
	jummah_azan_time, jummah_iqamah_time,
	last_updated`

func (s *pgStore) GetDefaultScheduleByID(id int) (*model.DefaultSchedule, error) {
	var ds model.DefaultSchedule
	q := `SELECT` + defaultScheduleColumns + ` FROM default_schedules WHERE id = $1;`
	if err := s.db.Get(&ds, q, id); err != nil {
		return nil, wrapError(err)
	}
	return &ds, nil
}

func (s *pgStore) GetDefaultScheduleByMasjid(masjidID int) (*model.DefaultSchedule, error) {
	var ds model.DefaultSchedule
	q := `SELECT` + defaultScheduleColumns + ` FROM default_schedules WHERE masjid_id = $1;`
	if err := s.db.Get(&ds, q, masjidID); err != nil {
		return nil, wrapError(err)
	}
	return &ds, nil
}

// CreateDefaultSchedule inserts the masjid's template row. The unique index
// on masjid_id enforces one-per-masjid; a second create reports ErrDuplicate
// and leaves the existing row untouched.
func (s *pgStore) CreateDefaultSchedule(ds model.DefaultSchedule) (*model.DefaultSchedule, error) {
	var created model.DefaultSchedule
	q := `
	INSERT INTO default_schedules (
		masjid_id,
		fajr_azan_time, fajr_iqamah_time,
		dhuhr_azan_time, dhuhr_iqamah_time,
		asr_azan_time, asr_iqamah_time,
		maghrib_azan_time, maghrib_iqamah_time,
		isha_azan_time, isha_iqamah_time,
		jummah_azan_time, jummah_iqamah_time,
		last_updated)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
	RETURNING` + defaultScheduleColumns + `;`
	if err := s.db.Get(&created, q,
		ds.MasjidID,
		ds.FajrAzanTime, ds.FajrIqamahTime,
		ds.DhuhrAzanTime, ds.DhuhrIqamahTime,
		ds.AsrAzanTime, ds.AsrIqamahTime,
		ds.MaghribAzanTime, ds.MaghribIqamahTime,
		ds.IshaAzanTime, ds.IshaIqamahTime,
		ds.JummahAzanTime, ds.JummahIqamahTime,
	); err != nil {
		log.Error().Err(err).Int("masjid_id", ds.MasjidID).Msg("CreateDefaultSchedule failed")
		return nil, wrapError(err)
	}
	return &created, nil
}

// UpdateDefaultSchedule applies a partial update; only non-nil fields
// overwrite stored values. last_updated always advances.
func (s *pgStore) UpdateDefaultSchedule(id int, patch model.PrayerTimes) error {
	res, err := s.db.Exec(`
		UPDATE default_schedules
		SET fajr_azan_time = COALESCE($2, fajr_azan_time),
		fajr_iqamah_time = COALESCE($3, fajr_iqamah_time),
		dhuhr_azan_time = COALESCE($4, dhuhr_azan_time),
		dhuhr_iqamah_time = COALESCE($5, dhuhr_iqamah_time),
		asr_azan_time = COALESCE($6, asr_azan_time),
		asr_iqamah_time = COALESCE($7, asr_iqamah_time),
		maghrib_azan_time = COALESCE($8, maghrib_azan_time),
		maghrib_iqamah_time = COALESCE($9, maghrib_iqamah_time),
		isha_azan_time = COALESCE($10, isha_azan_time),
		isha_iqamah_time = COALESCE($11, isha_iqamah_time),
		jummah_azan_time = COALESCE($12, jummah_azan_time),
		jummah_iqamah_time = COALESCE($13, jummah_iqamah_time),
		last_updated = now()
		WHERE id = $1;`,
		id,
		patch.FajrAzanTime, patch.FajrIqamahTime,
		patch.DhuhrAzanTime, patch.DhuhrIqamahTime,
		patch.AsrAzanTime, patch.AsrIqamahTime,
		patch.MaghribAzanTime, patch.MaghribIqamahTime,
		patch.IshaAzanTime, patch.IshaIqamahTime,
		patch.JummahAzanTime, patch.JummahIqamahTime,
	)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("UpdateDefaultSchedule failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteDefaultSchedule(id int) error {
	res, err := s.db.Exec(`DELETE FROM default_schedules WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("DeleteDefaultSchedule failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
