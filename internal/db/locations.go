package db

import (
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
)

func (s *pgStore) ListStates() ([]model.State, error) {
	var out []model.State
	const q = `SELECT id, name FROM states ORDER BY name;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListStates failed")
		return nil, wrapError(err)
	}
	return out, nil
}

func (s *pgStore) GetStateByID(id int) (*model.State, error) {
	var st model.State
	if err := s.db.Get(&st, `SELECT id, name FROM states WHERE id = $1;`, id); err != nil {
		return nil, wrapError(err)
	}
	return &st, nil
}

func (s *pgStore) CreateState(name string) (*model.State, error) {
	var st model.State
	const q = `INSERT INTO states (name) VALUES ($1) RETURNING id, name;`
	if err := s.db.Get(&st, q, name); err != nil {
		log.Error().Err(err).Msg("CreateState failed")
		return nil, wrapError(err)
	}
	return &st, nil
}

func (s *pgStore) UpdateState(id int, name string) error {
	res, err := s.db.Exec(`UPDATE states SET name = $2 WHERE id = $1;`, id, name)
	if err != nil {
		log.Error().Err(err).Int("state_id", id).Msg("UpdateState failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteState(id int) error {
	res, err := s.db.Exec(`DELETE FROM states WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("state_id", id).Msg("DeleteState failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) ListCitiesByState(stateID int) ([]model.City, error) {
	var out []model.City
	const q = `SELECT id, name, state_id FROM cities WHERE state_id = $1 ORDER BY name;`
	if err := s.db.Select(&out, q, stateID); err != nil {
		log.Error().Err(err).Int("state_id", stateID).Msg("ListCitiesByState failed")
		return nil, wrapError(err)
	}
	return out, nil
}

func (s *pgStore) GetCityByID(id int) (*model.City, error) {
	var c model.City
	if err := s.db.Get(&c, `SELECT id, name, state_id FROM cities WHERE id = $1;`, id); err != nil {
		return nil, wrapError(err)
	}
	return &c, nil
}

func (s *pgStore) CreateCity(name string, stateID int) (*model.City, error) {
	var c model.City
	const q = `INSERT INTO cities (name, state_id) VALUES ($1, $2) RETURNING id, name, state_id;`
	if err := s.db.Get(&c, q, name, stateID); err != nil {
		log.Error().Err(err).Msg("CreateCity failed")
		return nil, wrapError(err)
	}
	return &c, nil
}

func (s *pgStore) UpdateCity(id int, name *string, stateID *int) error {
	res, err := s.db.Exec(`
		UPDATE cities
		SET name = COALESCE($2, name),
		state_id = COALESCE($3, state_id)
		WHERE id = $1;`, id, name, stateID)
	if err != nil {
		log.Error().Err(err).Int("city_id", id).Msg("UpdateCity failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteCity(id int) error {
	res, err := s.db.Exec(`DELETE FROM cities WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("city_id", id).Msg("DeleteCity failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
