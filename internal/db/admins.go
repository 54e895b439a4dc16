package db

import (
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
)

const adminColumns = `
	id, username, email, hashed_password, full_name, created_at, updated_at`

func (s *pgStore) GetAdminByID(id int) (*model.Admin, error) {
	var a model.Admin
	q := `SELECT` + adminColumns + ` FROM admins WHERE id = $1;`
	if err := s.db.Get(&a, q, id); err != nil {
		return nil, wrapError(err)
	}
	return &a, nil
}

func (s *pgStore) GetAdminByUsername(username string) (*model.Admin, error) {
	var a model.Admin
	q := `SELECT` + adminColumns + ` FROM admins WHERE lower(username) = lower($1);`
	if err := s.db.Get(&a, q, username); err != nil {
		return nil, wrapError(err)
	}
	return &a, nil
}

func (s *pgStore) GetAdminByEmail(email string) (*model.Admin, error) {
	var a model.Admin
	q := `SELECT` + adminColumns + ` FROM admins WHERE lower(email) = lower($1);`
	if err := s.db.Get(&a, q, email); err != nil {
		return nil, wrapError(err)
	}
	return &a, nil
}

func (s *pgStore) CreateAdmin(username, email, hashedPassword string, fullName *string) (*model.Admin, error) {
	var a model.Admin
	q := `
	INSERT INTO admins (username, email, hashed_password, full_name, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING` + adminColumns + `;`
	if err := s.db.Get(&a, q, username, email, hashedPassword, fullName); err != nil {
		log.Error().Err(err).Str("username", username).Msg("CreateAdmin failed")
		return nil, wrapError(err)
	}
	return &a, nil
}

func (s *pgStore) UpdateAdminProfile(id int, email string, fullName *string) error {
	res, err := s.db.Exec(`
		UPDATE admins
		SET email = $2,
		full_name = COALESCE($3, full_name),
		updated_at = now()
		WHERE id = $1;`, id, email, fullName)
	if err != nil {
		log.Error().Err(err).Int("admin_id", id).Msg("UpdateAdminProfile failed")
		return wrapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
