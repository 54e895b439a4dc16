package db

import (
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
)

const additionalColumns = `
	id, masjid_id, date,
	sunrise_time, sunset_time, zawal_time,
	tahajjud_time, sehri_end_time, iftar_time`

func (s *pgStore) GetAdditionalTimingsByID(id int) (*model.AdditionalTimings, error) {
	var t model.AdditionalTimings
	q := `SELECT` + additionalColumns + ` FROM daily_additional_timings WHERE id = $1;`
	if err := s.db.Get(&t, q, id); err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

func (s *pgStore) GetAdditionalTimingsByMasjidAndDate(masjidID int, date model.Date) (*model.AdditionalTimings, error) {
	var t model.AdditionalTimings
	q := `SELECT` + additionalColumns + ` FROM daily_additional_timings WHERE masjid_id = $1 AND date = $2;`
	if err := s.db.Get(&t, q, masjidID, date); err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

func (s *pgStore) GetLatestAdditionalTimings(masjidID int) (*model.AdditionalTimings, error) {
	var t model.AdditionalTimings
	q := `SELECT` + additionalColumns + `
		FROM daily_additional_timings
		WHERE masjid_id = $1
		ORDER BY date DESC
		LIMIT 1;`
	if err := s.db.Get(&t, q, masjidID); err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

func (s *pgStore) CreateAdditionalTimings(t model.AdditionalTimings) (*model.AdditionalTimings, error) {
	var created model.AdditionalTimings
	q := `
	INSERT INTO daily_additional_timings (
		masjid_id, date,
		sunrise_time, sunset_time, zawal_time,
		tahajjud_time, sehri_end_time, iftar_time)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING` + additionalColumns + `;`
	if err := s.db.Get(&created, q,
		t.MasjidID, t.Date,
		t.SunriseTime, t.SunsetTime, t.ZawalTime,
		t.TahajjudTime, t.SehriEndTime, t.IftarTime,
	); err != nil {
		log.Error().Err(err).Int("masjid_id", t.MasjidID).Msg("CreateAdditionalTimings failed")
		return nil, wrapError(err)
	}
	return &created, nil
}

func (s *pgStore) UpdateAdditionalTimings(id int, patch AdditionalTimingsPatch) error {
	res, err := s.db.Exec(`
		UPDATE daily_additional_timings
		SET date = COALESCE($2, date),
		sunrise_time = COALESCE($3, sunrise_time),
		sunset_time = COALESCE($4, sunset_time),
		zawal_time = COALESCE($5, zawal_time),
		tahajjud_time = COALESCE($6, tahajjud_time),
		sehri_end_time = COALESCE($7, sehri_end_time),
		iftar_time = COALESCE($8, iftar_time)
		WHERE id = $1;`,
		id, patch.Date,
		patch.SunriseTime, patch.SunsetTime, patch.ZawalTime,
		patch.TahajjudTime, patch.SehriEndTime, patch.IftarTime,
	)
	if err != nil {
		log.Error().Err(err).Int("additional_id", id).Msg("UpdateAdditionalTimings failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteAdditionalTimings(id int) error {
	res, err := s.db.Exec(`DELETE FROM daily_additional_timings WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("additional_id", id).Msg("DeleteAdditionalTimings failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
