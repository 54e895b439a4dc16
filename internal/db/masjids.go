package db

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
)

const masjidColumns = `
	m.id, m.name, m.address, m.city_id, m.latitude, m.longitude,
	m.contact_number, m.imam_name, m.photo_url, m.created_at, m.updated_at,
	c.name AS city_name, st.name AS state_name`

const masjidJoin = `
	FROM masjids m
	JOIN cities c ON c.id = m.city_id
	JOIN states st ON st.id = c.state_id`

func (s *pgStore) ListMasjids(filter MasjidFilter) ([]model.MasjidSummary, int, error) {
	where := []string{"TRUE"}
	args := []any{}
	if filter.CityID != nil {
		args = append(args, *filter.CityID)
		where = append(where, fmt.Sprintf("m.city_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("(m.name ILIKE $%d OR m.address ILIKE $%d)", len(args), len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQ := `SELECT count(*)` + masjidJoin + ` WHERE ` + cond + `;`
	if err := s.db.Get(&total, countQ, args...); err != nil {
		log.Error().Err(err).Msg("ListMasjids count failed")
		return nil, 0, wrapError(err)
	}

	args = append(args, filter.PageSize, (filter.PageNumber-1)*filter.PageSize)
	listQ := `SELECT` + masjidColumns + masjidJoin + ` WHERE ` + cond +
		fmt.Sprintf(` ORDER BY m.name LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	var out []model.MasjidSummary
	if err := s.db.Select(&out, listQ, args...); err != nil {
		log.Error().Err(err).Msg("ListMasjids failed")
		return nil, 0, wrapError(err)
	}
	return out, total, nil
}

func (s *pgStore) GetMasjidByID(id int) (*model.MasjidSummary, error) {
	var m model.MasjidSummary
	q := `SELECT` + masjidColumns + masjidJoin + ` WHERE m.id = $1;`
	if err := s.db.Get(&m, q, id); err != nil {
		return nil, wrapError(err)
	}
	return &m, nil
}

func (s *pgStore) ListMasjidsWithCoordinates() ([]model.MasjidSummary, error) {
	var out []model.MasjidSummary
	q := `SELECT` + masjidColumns + masjidJoin +
		` WHERE m.latitude IS NOT NULL AND m.longitude IS NOT NULL ORDER BY m.id;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListMasjidsWithCoordinates failed")
		return nil, wrapError(err)
	}
	return out, nil
}

func (s *pgStore) CreateMasjid(m model.Masjid) (*model.MasjidSummary, error) {
	var id int
	const q = `
	INSERT INTO masjids (name, address, city_id, latitude, longitude, contact_number, imam_name, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING id;`
	if err := s.db.Get(&id, q,
		m.Name, m.Address, m.CityID, m.Latitude, m.Longitude, m.ContactNumber, m.ImamName,
	); err != nil {
		log.Error().Err(err).Msg("CreateMasjid failed")
		return nil, wrapError(err)
	}
	return s.GetMasjidByID(id)
}

func (s *pgStore) UpdateMasjid(id int, patch MasjidPatch) error {
	res, err := s.db.Exec(`
		UPDATE masjids
		SET name = COALESCE($2, name),
		address = COALESCE($3, address),
		city_id = COALESCE($4, city_id),
		latitude = COALESCE($5, latitude),
		longitude = COALESCE($6, longitude),
		contact_number = COALESCE($7, contact_number),
		imam_name = COALESCE($8, imam_name),
		updated_at = now()
		WHERE id = $1;`,
		id, patch.Name, patch.Address, patch.CityID, patch.Latitude, patch.Longitude,
		patch.ContactNumber, patch.ImamName,
	)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", id).Msg("UpdateMasjid failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) SetMasjidPhoto(id int, photoURL string) error {
	res, err := s.db.Exec(`
		UPDATE masjids
		SET photo_url = $2,
		updated_at = now()
		WHERE id = $1;`, id, photoURL)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", id).Msg("SetMasjidPhoto failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteMasjid(id int) error {
	res, err := s.db.Exec(`DELETE FROM masjids WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", id).Msg("DeleteMasjid failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
