package db

import (
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
)

const eventColumns = `
	id, masjid_id, event_name, event_date, event_time, description`

func (s *pgStore) GetSpecialEventByID(id int) (*model.SpecialEvent, error) {
	var e model.SpecialEvent
	q := `SELECT` + eventColumns + ` FROM special_events WHERE id = $1;`
	if err := s.db.Get(&e, q, id); err != nil {
		return nil, wrapError(err)
	}
	return &e, nil
}

func (s *pgStore) ListSpecialEventsByMasjidAndDate(masjidID int, date model.Date) ([]model.SpecialEvent, error) {
	var out []model.SpecialEvent
	q := `SELECT` + eventColumns + `
		FROM special_events
		WHERE masjid_id = $1 AND event_date = $2
		ORDER BY event_time NULLS LAST, id;`
	if err := s.db.Select(&out, q, masjidID, date); err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Msg("ListSpecialEventsByMasjidAndDate failed")
		return nil, wrapError(err)
	}
	return out, nil
}

func (s *pgStore) ListUpcomingSpecialEvents(masjidID int, from model.Date) ([]model.SpecialEvent, error) {
	var out []model.SpecialEvent
	q := `SELECT` + eventColumns + `
		FROM special_events
		WHERE masjid_id = $1 AND event_date >= $2
		ORDER BY event_date, event_time NULLS LAST;`
	if err := s.db.Select(&out, q, masjidID, from); err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Msg("ListUpcomingSpecialEvents failed")
		return nil, wrapError(err)
	}
	return out, nil
}

func (s *pgStore) CreateSpecialEvent(e model.SpecialEvent) (*model.SpecialEvent, error) {
	var created model.SpecialEvent
	q := `
	INSERT INTO special_events (masjid_id, event_name, event_date, event_time, description)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING` + eventColumns + `;`
	if err := s.db.Get(&created, q,
		e.MasjidID, e.EventName, e.EventDate, e.EventTime, e.Description,
	); err != nil {
		log.Error().Err(err).Int("masjid_id", e.MasjidID).Msg("CreateSpecialEvent failed")
		return nil, wrapError(err)
	}
	return &created, nil
}

func (s *pgStore) UpdateSpecialEvent(id int, patch SpecialEventPatch) error {
	res, err := s.db.Exec(`
		UPDATE special_events
		SET event_name = COALESCE($2, event_name),
		event_date = COALESCE($3, event_date),
		event_time = COALESCE($4, event_time),
		description = COALESCE($5, description)
		WHERE id = $1;`,
		id, patch.EventName, patch.EventDate, patch.EventTime, patch.Description,
	)
	if err != nil {
		log.Error().Err(err).Int("event_id", id).Msg("UpdateSpecialEvent failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteSpecialEvent(id int) error {
	res, err := s.db.Exec(`DELETE FROM special_events WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("event_id", id).Msg("DeleteSpecialEvent failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
