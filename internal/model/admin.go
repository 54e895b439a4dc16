package model

import "time"

type Admin struct {
	ID             int       `db:"id" json:"AdminId"`
	Username       string    `db:"username" json:"Username"`
	Email          string    `db:"email" json:"Email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	FullName       *string   `db:"full_name" json:"FullName"`
	CreatedAt      time.Time `db:"created_at" json:"CreatedAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"UpdatedAt"`
}
